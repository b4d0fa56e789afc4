// Package media holds the stream handle a feed carries around.
package media

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pion/webrtc/v4"
)

var ErrUnknownKind = errors.New("unknown track kind")

// Track is the part of a pion track a stream needs. Both local tracks
// (webrtc.TrackLocalStaticRTP, webrtc.TrackLocalStaticSample) and
// *webrtc.TrackRemote satisfy it.
type Track interface {
	ID() string
	StreamID() string
	Kind() webrtc.RTPCodecType
}

// Stream groups zero or more audio and video tracks under one id, like a
// browser MediaStream. It is safe for concurrent use.
type Stream struct {
	id string

	mu     sync.RWMutex
	tracks []Track
}

func NewStream(id string, tracks ...Track) *Stream {
	s := &Stream{id: id}
	for _, t := range tracks {
		s.AddTrack(t)
	}
	return s
}

// NewLocalStream creates one static RTP track per codec capability.
func NewLocalStream(id string, caps ...webrtc.RTPCodecCapability) (*Stream, error) {
	s := &Stream{id: id}
	for _, c := range caps {
		if kindOfMime(c.MimeType) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, c.MimeType)
		}
		t, err := webrtc.NewTrackLocalStaticRTP(c, uuid.NewString(), id)
		if err != nil {
			return nil, fmt.Errorf("create %s track: %w", c.MimeType, err)
		}
		s.tracks = append(s.tracks, t)
	}
	return s, nil
}

func kindOfMime(mime string) webrtc.RTPCodecType {
	switch {
	case strings.HasPrefix(strings.ToLower(mime), "audio/"):
		return webrtc.RTPCodecTypeAudio
	case strings.HasPrefix(strings.ToLower(mime), "video/"):
		return webrtc.RTPCodecTypeVideo
	}
	return 0
}

func (s *Stream) ID() string { return s.id }

// Tracks returns a copy of all tracks in insertion order.
func (s *Stream) Tracks() []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tracks)
}

func (s *Stream) AudioTracks() []Track {
	return s.tracksOfKind(webrtc.RTPCodecTypeAudio)
}

func (s *Stream) VideoTracks() []Track {
	return s.tracksOfKind(webrtc.RTPCodecTypeVideo)
}

func (s *Stream) tracksOfKind(kind webrtc.RTPCodecType) []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Track, 0, len(s.tracks))
	for _, t := range s.tracks {
		if t.Kind() == kind {
			out = append(out, t)
		}
	}
	return out
}

// AddTrack appends t, replacing a track with the same id in place.
func (s *Stream) AddTrack(t Track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(t.ID()); i >= 0 {
		s.tracks[i] = t
		return
	}
	s.tracks = append(s.tracks, t)
}

func (s *Stream) RemoveTrack(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tracks = slices.Delete(s.tracks, i, i+1)
	return true
}

func (s *Stream) indexOf(id string) int {
	return slices.IndexFunc(s.tracks, func(t Track) bool { return t.ID() == id })
}
