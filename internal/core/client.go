package core

import "github.com/dkeye/VoiceFeed/internal/domain"

// Client is the session context a feed borrows for lookups. A feed never
// copies it and is only usable while the client is alive.
//
//go:generate mockgen -destination=mocks/mock_client.go -package=mocks github.com/dkeye/VoiceFeed/internal/core Client,RoomService
type Client interface {
	GetRoom(id domain.RoomID) (RoomService, bool)
	// UserID returns the id of the user this session is logged in as.
	UserID() domain.UserID
}
