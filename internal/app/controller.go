package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/VoiceFeed/internal/core"
	"github.com/dkeye/VoiceFeed/internal/domain"
	"github.com/dkeye/VoiceFeed/internal/media"
)

// FeedEvent is what controller subscribers receive when any feed gets a
// new stream.
type FeedEvent struct {
	Type       core.FeedEvent `json:"type"`
	Room       domain.RoomID  `json:"room"`
	User       domain.UserID  `json:"user"`
	Purpose    domain.Purpose `json:"purpose"`
	StreamID   string         `json:"stream_id"`
	AudioMuted bool           `json:"audio_muted"`
	VideoMuted bool           `json:"video_muted"`
}

var (
	ErrNoStream = errors.New("no stream")
	ErrOwnUser  = errors.New("track from own user")
)

// FeedView is a point-in-time copy of a feed's state.
type FeedView struct {
	UserID     domain.UserID  `json:"user_id"`
	Username   string         `json:"username,omitempty"`
	Purpose    domain.Purpose `json:"purpose"`
	Local      bool           `json:"local"`
	AudioMuted bool           `json:"audio_muted"`
	VideoMuted bool           `json:"video_muted"`
	StreamID   string         `json:"stream_id"`
}

type localKey struct {
	Room    domain.RoomID
	Purpose domain.Purpose
}

// Controller owns the feeds of a session: it creates them, replaces their
// streams and forgets them. Stream replacement is serialised by the
// controller, so subscribers must not call back into it.
type Controller struct {
	Session *Session
	Feeds   *Registry

	mu     sync.Mutex
	subs   map[*core.CallFeed]core.HandlerID
	local  map[localKey][]media.Track
	events *core.Emitter[core.FeedEvent, FeedEvent]
}

func NewController(session *Session, feeds *Registry) *Controller {
	return &Controller{
		Session: session,
		Feeds:   feeds,
		subs:    make(map[*core.CallFeed]core.HandlerID),
		local:   make(map[localKey][]media.Track),
		events:  core.NewEmitter[core.FeedEvent, FeedEvent](),
	}
}

// PublishLocal creates the session user's feed in a room, joining the
// room first if needed.
func (c *Controller) PublishLocal(roomID domain.RoomID, purpose domain.Purpose, stream *media.Stream) (*core.CallFeed, error) {
	if !purpose.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPurpose, purpose)
	}
	if stream == nil {
		return nil, fmt.Errorf("publish %s/%s: %w", roomID, purpose, ErrNoStream)
	}
	room, ok := c.Session.GetRoom(roomID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrRoomNotFound, roomID)
	}
	me := c.Session.UserID()
	if _, ok := room.Member(me); !ok {
		room.AddMember(domain.NewMember(c.Session.User))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	tracks := stream.Tracks()
	feed := core.NewCallFeed(stream, me, purpose, c.Session, roomID)
	if err := c.Feeds.Add(feed); err != nil {
		return nil, fmt.Errorf("publish %s: %w", feed, err)
	}
	c.local[localKey{Room: roomID, Purpose: purpose}] = tracks
	c.watch(feed)
	return feed, nil
}

// AddRemoteTrack attaches a track received from userID. The first track
// creates the feed; later ones replace its stream with one that also
// carries the new track. Tracks of the session user belong to
// PublishLocal and are rejected.
func (c *Controller) AddRemoteTrack(roomID domain.RoomID, userID domain.UserID, purpose domain.Purpose, track media.Track) (*core.CallFeed, error) {
	if !purpose.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPurpose, purpose)
	}
	if userID == c.Session.UserID() {
		return nil, fmt.Errorf("%w: %s", ErrOwnUser, userID)
	}
	if _, ok := c.Session.GetRoom(roomID); !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrRoomNotFound, roomID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if feed, ok := c.Feeds.Get(roomID, userID, purpose); ok {
		next := media.NewStream(feed.Stream.ID(), feed.Stream.Tracks()...)
		next.AddTrack(track)
		feed.SetNewStream(next)
		return feed, nil
	}

	feed := core.NewCallFeed(media.NewStream(track.StreamID(), track), userID, purpose, c.Session, roomID)
	if err := c.Feeds.Add(feed); err != nil {
		return nil, err
	}
	c.watch(feed)
	log.Info().
		Str("module", "app.controller").
		Str("room", string(roomID)).
		Str("user", string(userID)).
		Str("kind", track.Kind().String()).
		Str("track", track.ID()).
		Msg("remote feed created")
	return feed, nil
}

// SetLocalMedia swaps the local feed's stream for one holding only the
// enabled kinds of the tracks originally published, and returns the
// resulting view of the feed.
func (c *Controller) SetLocalMedia(roomID domain.RoomID, purpose domain.Purpose, audio, video bool) (FeedView, error) {
	if _, ok := c.Session.GetRoom(roomID); !ok {
		return FeedView{}, fmt.Errorf("%w: %s", core.ErrRoomNotFound, roomID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	feed, ok := c.Feeds.Get(roomID, c.Session.UserID(), purpose)
	if !ok {
		return FeedView{}, fmt.Errorf("%w: %s/%s", ErrFeedNotFound, roomID, purpose)
	}
	published := c.local[localKey{Room: roomID, Purpose: purpose}]
	next := media.NewStream(feed.Stream.ID())
	for _, t := range published {
		switch t.Kind() {
		case webrtc.RTPCodecTypeAudio:
			if audio {
				next.AddTrack(t)
			}
		case webrtc.RTPCodecTypeVideo:
			if video {
				next.AddTrack(t)
			}
		}
	}
	feed.SetNewStream(next)
	log.Info().
		Str("module", "app.controller").
		Str("room", string(roomID)).
		Str("purpose", string(purpose)).
		Bool("audio", audio).
		Bool("video", video).
		Msg("local media changed")
	return viewOf(feed), nil
}

// FeedViews snapshots every feed of a room. Stream replacement happens
// under the same lock, so views never observe a half-applied change.
func (c *Controller) FeedViews(roomID domain.RoomID) ([]FeedView, error) {
	if _, ok := c.Session.GetRoom(roomID); !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrRoomNotFound, roomID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	feeds := c.Feeds.ByRoom(roomID)
	out := make([]FeedView, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, viewOf(f))
	}
	return out, nil
}

// viewOf must be called with c.mu held.
func viewOf(f *core.CallFeed) FeedView {
	v := FeedView{
		UserID:     f.UserID,
		Purpose:    f.Purpose,
		Local:      f.IsLocal(),
		AudioMuted: f.IsAudioMuted(),
		VideoMuted: f.IsVideoMuted(),
		StreamID:   f.Stream.ID(),
	}
	if m, err := f.Member(); err == nil && m.User != nil {
		v.Username = m.User.Username
	}
	return v
}

func (c *Controller) Unpublish(roomID domain.RoomID, userID domain.UserID, purpose domain.Purpose) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	feed, ok := c.Feeds.Remove(roomID, userID, purpose)
	if !ok {
		return false
	}
	if id, ok := c.subs[feed]; ok {
		feed.Off(id)
		delete(c.subs, feed)
	}
	if userID == c.Session.UserID() {
		delete(c.local, localKey{Room: roomID, Purpose: purpose})
	}
	return true
}

// Subscribe registers fn for new-stream events of every feed.
func (c *Controller) Subscribe(fn func(FeedEvent)) core.HandlerID {
	return c.events.On(core.FeedEventNewStream, fn)
}

func (c *Controller) Unsubscribe(id core.HandlerID) bool {
	return c.events.Off(core.FeedEventNewStream, id)
}

// watch must be called with c.mu held.
func (c *Controller) watch(feed *core.CallFeed) {
	c.subs[feed] = feed.OnNewStream(func(s *media.Stream) {
		c.events.Emit(core.FeedEventNewStream, FeedEvent{
			Type:       core.FeedEventNewStream,
			Room:       feed.RoomID(),
			User:       feed.UserID,
			Purpose:    feed.Purpose,
			StreamID:   s.ID(),
			AudioMuted: feed.IsAudioMuted(),
			VideoMuted: feed.IsVideoMuted(),
		})
	})
}
