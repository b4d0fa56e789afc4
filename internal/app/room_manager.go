package app

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/VoiceFeed/internal/core"
	"github.com/dkeye/VoiceFeed/internal/domain"
)

type RoomManager struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomService
}

func NewRoomManager() *RoomManager {
	return &RoomManager{rooms: make(map[domain.RoomID]core.RoomService)}
}

func (m *RoomManager) CreateRoom(name domain.RoomName) core.RoomService {
	room := core.NewRoomService(&domain.Room{
		ID:   domain.RoomID(uuid.NewString()),
		Name: name,
	})
	m.mu.Lock()
	m.rooms[room.Room().ID] = room
	m.mu.Unlock()
	log.Info().Str("module", "app.rooms").Str("room", string(room.Room().ID)).Str("name", string(name)).Msg("room created")
	return room
}

func (m *RoomManager) GetRoom(id domain.RoomID) (core.RoomService, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[id]
	return room, ok
}

// List is ordered by room name, then id.
func (m *RoomManager) List() []core.RoomInfo {
	m.mu.RLock()
	out := make([]core.RoomInfo, 0, len(m.rooms))
	for id, r := range m.rooms {
		out = append(out, core.RoomInfo{ID: id, Name: r.Room().Name, MemberCount: r.MemberCount()})
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *RoomManager) StopRoom(id domain.RoomID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[id]; ok {
		delete(m.rooms, id)
		log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room stopped")
	}
}
