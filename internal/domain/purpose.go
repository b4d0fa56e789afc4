package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownPurpose = errors.New("unknown feed purpose")

// Purpose tells what a feed's stream is for. The values match the
// stream metadata purposes exchanged with clients.
type Purpose string

const (
	// PurposeUsermedia is a camera and/or microphone feed.
	PurposeUsermedia Purpose = "m.usermedia"
	// PurposeScreenshare is a screen capture feed.
	PurposeScreenshare Purpose = "m.screenshare"
)

func (p Purpose) Valid() bool {
	switch p {
	case PurposeUsermedia, PurposeScreenshare:
		return true
	}
	return false
}

func (p Purpose) String() string { return string(p) }

func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPurpose, s)
	}
	return p, nil
}
