package app

import (
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/VoiceFeed/internal/core"
	"github.com/dkeye/VoiceFeed/internal/domain"
)

var (
	ErrFeedExists   = errors.New("feed already exists")
	ErrFeedNotFound = errors.New("feed not found")
)

type feedKey struct {
	User    domain.UserID
	Purpose domain.Purpose
}

// Registry indexes feeds by room. A user has at most one feed per
// purpose in a room.
type Registry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]map[feedKey]*core.CallFeed
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[domain.RoomID]map[feedKey]*core.CallFeed)}
}

func (r *Registry) Add(feed *core.CallFeed) error {
	key := feedKey{User: feed.UserID, Purpose: feed.Purpose}
	r.mu.Lock()
	defer r.mu.Unlock()
	feeds, ok := r.rooms[feed.RoomID()]
	if !ok {
		feeds = make(map[feedKey]*core.CallFeed)
		r.rooms[feed.RoomID()] = feeds
	}
	if _, ok := feeds[key]; ok {
		return ErrFeedExists
	}
	feeds[key] = feed
	log.Info().Str("module", "app.registry").Str("room", string(feed.RoomID())).Str("user", string(feed.UserID)).Str("purpose", string(feed.Purpose)).Msg("feed added")
	return nil
}

func (r *Registry) Get(room domain.RoomID, user domain.UserID, purpose domain.Purpose) (*core.CallFeed, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	feed, ok := r.rooms[room][feedKey{User: user, Purpose: purpose}]
	return feed, ok
}

func (r *Registry) Remove(room domain.RoomID, user domain.UserID, purpose domain.Purpose) (*core.CallFeed, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	feeds, ok := r.rooms[room]
	if !ok {
		return nil, false
	}
	key := feedKey{User: user, Purpose: purpose}
	feed, ok := feeds[key]
	if !ok {
		return nil, false
	}
	delete(feeds, key)
	if len(feeds) == 0 {
		delete(r.rooms, room)
	}
	log.Info().Str("module", "app.registry").Str("room", string(room)).Str("user", string(user)).Str("purpose", string(purpose)).Msg("feed removed")
	return feed, true
}

// ByRoom returns the room's feeds ordered by user, then by purpose value
// (m.screenshare before m.usermedia).
func (r *Registry) ByRoom(room domain.RoomID) []*core.CallFeed {
	r.mu.RLock()
	out := make([]*core.CallFeed, 0, len(r.rooms[room]))
	for _, f := range r.rooms[room] {
		out = append(out, f)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].Purpose < out[j].Purpose
	})
	return out
}
