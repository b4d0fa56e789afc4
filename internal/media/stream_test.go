package media

import (
	"testing"

	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrack struct {
	id   string
	kind webrtc.RTPCodecType
}

func (f fakeTrack) ID() string                { return f.id }
func (f fakeTrack) StreamID() string          { return "s" }
func (f fakeTrack) Kind() webrtc.RTPCodecType { return f.kind }

func audio(id string) Track { return fakeTrack{id: id, kind: webrtc.RTPCodecTypeAudio} }
func video(id string) Track { return fakeTrack{id: id, kind: webrtc.RTPCodecTypeVideo} }

func TestStreamTracksByKind(t *testing.T) {
	s := NewStream("s", audio("a1"), video("v1"), audio("a2"))

	assert.Equal(t, "s", s.ID())
	assert.Len(t, s.Tracks(), 3)
	assert.Equal(t, []Track{audio("a1"), audio("a2")}, s.AudioTracks())
	assert.Equal(t, []Track{video("v1")}, s.VideoTracks())

	empty := NewStream("empty")
	assert.Empty(t, empty.AudioTracks())
	assert.Empty(t, empty.VideoTracks())
}

func TestStreamAddRemove(t *testing.T) {
	s := NewStream("s")

	s.AddTrack(audio("a1"))
	s.AddTrack(audio("a1"))
	assert.Len(t, s.Tracks(), 1, "same id should replace, not duplicate")

	s.AddTrack(video("v1"))
	assert.True(t, s.RemoveTrack("a1"))
	assert.False(t, s.RemoveTrack("a1"))
	assert.Equal(t, []Track{video("v1")}, s.Tracks())
}

func TestStreamTracksIsCopy(t *testing.T) {
	s := NewStream("s", audio("a1"))
	tracks := s.Tracks()
	tracks[0] = video("v1")
	assert.Equal(t, []Track{audio("a1")}, s.Tracks())
}

func TestNewLocalStream(t *testing.T) {
	s, err := NewLocalStream("local",
		webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeOpus, ClockRate: 48000, Channels: 2},
		webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8, ClockRate: 90000},
	)
	require.NoError(t, err)

	require.Len(t, s.AudioTracks(), 1)
	require.Len(t, s.VideoTracks(), 1)
	assert.Equal(t, "local", s.AudioTracks()[0].StreamID())
	assert.NotEqual(t, s.AudioTracks()[0].ID(), s.VideoTracks()[0].ID())

	_, err = NewLocalStream("bad", webrtc.RTPCodecCapability{MimeType: "text/plain"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}
