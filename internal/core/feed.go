package core

import (
	"errors"
	"fmt"

	"github.com/dkeye/VoiceFeed/internal/domain"
	"github.com/dkeye/VoiceFeed/internal/media"
	"github.com/rs/zerolog/log"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrMemberNotFound = errors.New("member not found")
)

type FeedEvent string

const (
	// FeedEventNewStream fires after the feed's stream has been replaced.
	// The payload is the new stream.
	FeedEventNewStream FeedEvent = "new_stream"
)

// CallFeed pairs a media stream with the user who owns it, what it is
// for and the room it belongs to.
//
// A CallFeed is not safe for concurrent mutation; the call controller
// owning it is expected to serialise SetNewStream calls.
type CallFeed struct {
	// Stream may be read directly, e.g. by a renderer. Use SetNewStream
	// to replace it so subscribers are notified.
	Stream *media.Stream
	// UserID and Purpose are fixed for the lifetime of the feed.
	UserID  domain.UserID
	Purpose domain.Purpose

	client Client
	roomID domain.RoomID
	events *Emitter[FeedEvent, *media.Stream]
}

// NewCallFeed does no validation: the caller guarantees that client can
// resolve roomID and userID for as long as the feed is used.
func NewCallFeed(
	stream *media.Stream,
	userID domain.UserID,
	purpose domain.Purpose,
	client Client,
	roomID domain.RoomID,
) *CallFeed {
	return &CallFeed{
		Stream:  stream,
		UserID:  userID,
		Purpose: purpose,
		client:  client,
		roomID:  roomID,
		events:  NewEmitter[FeedEvent, *media.Stream](),
	}
}

func (f *CallFeed) RoomID() domain.RoomID { return f.roomID }

// Member looks the feed owner up in the feed's room. Nothing is cached,
// every call asks the client again.
func (f *CallFeed) Member() (*domain.Member, error) {
	room, ok := f.client.GetRoom(f.roomID)
	if !ok || room == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, f.roomID)
	}
	m, ok := room.Member(f.UserID)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: %s in room %s", ErrMemberNotFound, f.UserID, f.roomID)
	}
	return m, nil
}

func (f *CallFeed) IsLocal() bool {
	return f.UserID == f.client.UserID()
}

// IsAudioMuted reports whether the stream has no audio tracks.
// A remote peer muting a track it still sends is not visible here.
func (f *CallFeed) IsAudioMuted() bool {
	return len(f.Stream.AudioTracks()) == 0
}

// IsVideoMuted reports whether the stream has no video tracks. Only one
// video track per feed is expected.
func (f *CallFeed) IsVideoMuted() bool {
	return len(f.Stream.VideoTracks()) == 0
}

// SetNewStream replaces the stream and then notifies FeedEventNewStream
// subscribers synchronously. The old stream is dropped but not stopped;
// releasing its tracks is up to the caller.
//
// Only the call controller should call this.
func (f *CallFeed) SetNewStream(s *media.Stream) {
	f.Stream = s
	n := f.events.Emit(FeedEventNewStream, s)
	log.Debug().
		Str("module", "core.feed").
		Str("room", string(f.roomID)).
		Str("user", string(f.UserID)).
		Str("purpose", string(f.Purpose)).
		Str("stream", streamID(s)).
		Int("notified", n).
		Msg("stream replaced")
}

// OnNewStream subscribes fn to stream replacements.
func (f *CallFeed) OnNewStream(fn func(*media.Stream)) HandlerID {
	return f.events.On(FeedEventNewStream, fn)
}

// Off removes a subscription made with OnNewStream.
func (f *CallFeed) Off(id HandlerID) bool {
	return f.events.Off(FeedEventNewStream, id)
}

func (f *CallFeed) String() string {
	return fmt.Sprintf("feed(%s/%s/%s)", f.roomID, f.UserID, f.Purpose)
}

func streamID(s *media.Stream) string {
	if s == nil {
		return ""
	}
	return s.ID()
}
