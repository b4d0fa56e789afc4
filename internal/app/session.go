package app

import (
	"github.com/dkeye/VoiceFeed/internal/core"
	"github.com/dkeye/VoiceFeed/internal/domain"
)

// Session is the logged-in user's view of the rooms it can see.
type Session struct {
	User  *domain.User
	Rooms *RoomManager
}

var _ core.Client = (*Session)(nil)

func NewSession(user *domain.User, rooms *RoomManager) *Session {
	return &Session{User: user, Rooms: rooms}
}

func (s *Session) GetRoom(id domain.RoomID) (core.RoomService, bool) {
	return s.Rooms.GetRoom(id)
}

func (s *Session) UserID() domain.UserID {
	return s.User.ID
}
