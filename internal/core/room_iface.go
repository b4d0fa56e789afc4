package core

import (
	"github.com/dkeye/VoiceFeed/internal/domain"
)

// MemberDTO is a read-only view for APIs.
type MemberDTO struct {
	ID       domain.UserID `json:"id"`
	Username string        `json:"username"`
	Mute     bool          `json:"mute"`
}

// RoomService is the core-facing API of a room.
// It owns the membership set but never touches transport resources.
type RoomService interface {
	Room() *domain.Room
	Member(id domain.UserID) (*domain.Member, bool)
	MemberCount() int
	MembersSnapshot() []MemberDTO

	AddMember(m *domain.Member)
	RemoveMember(id domain.UserID)
}

type RoomInfo struct {
	ID          domain.RoomID   `json:"id"`
	Name        domain.RoomName `json:"name"`
	MemberCount int             `json:"member_count"`
}
