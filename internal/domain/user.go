// Package domain contains entities without logic, just meta-data.
package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	MaxUserIDLen   = 36
	MaxUsernameLen = 36
)

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
	ErrUserIDTooLong   = errors.New("user id too long")
)

type UserID string

type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}

// NewUser creates a user with a fresh random id.
func NewUser(username string) (*User, error) {
	return NewUserWithID(UserID(uuid.NewString()), username)
}

// NewUserWithID is used when the id is assigned elsewhere (config, remote peer).
func NewUserWithID(id UserID, username string) (*User, error) {
	if len(id) > MaxUserIDLen {
		return nil, ErrUserIDTooLong
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if id == "" {
		id = UserID(uuid.NewString())
	}
	return &User{ID: id, Username: username}, nil
}

func (u *User) SetUsername(username string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	u.Username = username
	return nil
}

func validateUsername(username string) error {
	if len(username) == 0 {
		return ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	return nil
}
