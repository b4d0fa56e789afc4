package core

import (
	"sort"
	"sync"

	"github.com/dkeye/VoiceFeed/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomImpl is a threadsafe in-memory room.
type roomImpl struct {
	room   *domain.Room
	mu     sync.RWMutex
	byUser map[domain.UserID]*domain.Member
}

func NewRoomService(room *domain.Room) RoomService {
	return &roomImpl{
		room:   room,
		byUser: make(map[domain.UserID]*domain.Member),
	}
}

func (r *roomImpl) Room() *domain.Room { return r.room }

func (r *roomImpl) Member(id domain.UserID) (*domain.Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byUser[id]
	return m, ok
}

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}

func (r *roomImpl) AddMember(m *domain.Member) {
	u := m.UserID()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[u] = m
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("user", string(u)).Msg("member added")
}

func (r *roomImpl) RemoveMember(id domain.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[id]; !ok {
		return
	}
	delete(r.byUser, id)
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("user", string(id)).Msg("member removed")
}

// MembersSnapshot is ordered by user id.
func (r *roomImpl) MembersSnapshot() []MemberDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MemberDTO, 0, len(r.byUser))
	for _, m := range r.byUser {
		dto := MemberDTO{ID: m.UserID(), Mute: m.Mute}
		if m.User != nil {
			dto.Username = m.User.Username
		}
		out = append(out, dto)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
