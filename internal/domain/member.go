package domain

// Member represents a user's participation in a room.
// No transport or lifecycle logic here.
type Member struct {
	User *User
	// Mute is the membership-level flag set by moderation; it is unrelated
	// to whether a feed currently carries audio tracks.
	Mute bool
}

func NewMember(user *User) *Member {
	return &Member{User: user}
}

func (m *Member) UserID() UserID {
	if m == nil || m.User == nil {
		return ""
	}
	return m.User.ID
}
