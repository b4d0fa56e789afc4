package core_test

import (
	"testing"

	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dkeye/VoiceFeed/internal/core"
	"github.com/dkeye/VoiceFeed/internal/core/mocks"
	"github.com/dkeye/VoiceFeed/internal/domain"
	"github.com/dkeye/VoiceFeed/internal/media"
)

type testTrack struct {
	id   string
	kind webrtc.RTPCodecType
}

func (t testTrack) ID() string                { return t.id }
func (t testTrack) StreamID() string          { return "" }
func (t testTrack) Kind() webrtc.RTPCodecType { return t.kind }

func streamOf(id string, audio, video int) *media.Stream {
	s := media.NewStream(id)
	for i := 0; i < audio; i++ {
		s.AddTrack(testTrack{id: id + "-a" + string(rune('0'+i)), kind: webrtc.RTPCodecTypeAudio})
	}
	for i := 0; i < video; i++ {
		s.AddTrack(testTrack{id: id + "-v" + string(rune('0'+i)), kind: webrtc.RTPCodecTypeVideo})
	}
	return s
}

type CallFeedTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	client *mocks.MockClient
	room   *mocks.MockRoomService
}

func TestCallFeedSuite(t *testing.T) {
	suite.Run(t, new(CallFeedTestSuite))
}

func (s *CallFeedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mocks.NewMockClient(s.ctrl)
	s.room = mocks.NewMockRoomService(s.ctrl)
}

func (s *CallFeedTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CallFeedTestSuite) newFeed(stream *media.Stream, user domain.UserID) *core.CallFeed {
	return core.NewCallFeed(stream, user, domain.PurposeUsermedia, s.client, "room1")
}

func (s *CallFeedTestSuite) TestConstruct() {
	stream := streamOf("s1", 1, 1)
	feed := core.NewCallFeed(stream, "@alice", domain.PurposeScreenshare, s.client, "room1")

	s.Same(stream, feed.Stream)
	s.Equal(domain.UserID("@alice"), feed.UserID)
	s.Equal(domain.PurposeScreenshare, feed.Purpose)
	s.Equal(domain.RoomID("room1"), feed.RoomID())
	s.Equal("feed(room1/@alice/m.screenshare)", feed.String())
}

func (s *CallFeedTestSuite) TestMember() {
	s.Run("resolves member through client", func() {
		member := domain.NewMember(&domain.User{ID: "@alice", Username: "alice"})
		s.client.EXPECT().GetRoom(domain.RoomID("room1")).Return(s.room, true).Times(2)
		s.room.EXPECT().Member(domain.UserID("@alice")).Return(member, true).Times(2)

		feed := s.newFeed(streamOf("s1", 0, 0), "@alice")
		got, err := feed.Member()
		s.Require().NoError(err)
		s.Same(member, got)

		// no caching: a second call asks again
		_, err = feed.Member()
		s.Require().NoError(err)
	})

	s.Run("room absent", func() {
		s.client.EXPECT().GetRoom(domain.RoomID("room1")).Return(nil, false)

		got, err := s.newFeed(streamOf("s1", 0, 0), "@alice").Member()
		s.ErrorIs(err, core.ErrRoomNotFound)
		s.Nil(got)
	})

	s.Run("member absent", func() {
		s.client.EXPECT().GetRoom(domain.RoomID("room1")).Return(s.room, true)
		s.room.EXPECT().Member(domain.UserID("@bob")).Return(nil, false)

		got, err := s.newFeed(streamOf("s1", 0, 0), "@bob").Member()
		s.ErrorIs(err, core.ErrMemberNotFound)
		s.Nil(got)
	})
}

func (s *CallFeedTestSuite) TestIsLocal() {
	s.client.EXPECT().UserID().Return(domain.UserID("@me")).AnyTimes()

	s.True(s.newFeed(streamOf("s1", 1, 0), "@me").IsLocal())
	s.False(s.newFeed(streamOf("s1", 1, 0), "@other").IsLocal())
}

func (s *CallFeedTestSuite) TestIsLocalReadsClientAtCallTime() {
	gomock.InOrder(
		s.client.EXPECT().UserID().Return(domain.UserID("@me")),
		s.client.EXPECT().UserID().Return(domain.UserID("@someone-else")),
	)
	feed := s.newFeed(streamOf("s1", 0, 0), "@me")
	s.True(feed.IsLocal())
	s.False(feed.IsLocal())
}

func (s *CallFeedTestSuite) TestMuteQueries() {
	cases := []struct {
		name         string
		audio, video int
		audioMuted   bool
		videoMuted   bool
	}{
		{"no tracks", 0, 0, true, true},
		{"audio only", 1, 0, false, true},
		{"video only", 0, 1, true, false},
		{"both", 1, 1, false, false},
		{"several of each", 2, 2, false, false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			feed := s.newFeed(streamOf("s", tc.audio, tc.video), "@alice")
			s.Equal(tc.audioMuted, feed.IsAudioMuted())
			s.Equal(tc.videoMuted, feed.IsVideoMuted())
		})
	}
}

func (s *CallFeedTestSuite) TestMuteFollowsStreamChanges() {
	stream := streamOf("s", 1, 0)
	feed := s.newFeed(stream, "@alice")
	s.False(feed.IsAudioMuted())

	stream.RemoveTrack("s-a0")
	s.True(feed.IsAudioMuted())
}

func (s *CallFeedTestSuite) TestSetNewStream() {
	s.Run("replaces the stream as is", func() {
		feed := s.newFeed(streamOf("s0", 1, 1), "@alice")
		s2 := streamOf("s2", 0, 0)
		feed.SetNewStream(s2)
		s.Same(s2, feed.Stream)
		s.True(feed.IsAudioMuted())
	})

	s.Run("notifies in order and sees new value installed", func() {
		feed := s.newFeed(streamOf("s0", 0, 0), "@alice")
		s1, s2 := streamOf("s1", 1, 0), streamOf("s2", 0, 1)

		var got []*media.Stream
		var installed []*media.Stream
		feed.OnNewStream(func(st *media.Stream) {
			got = append(got, st)
			installed = append(installed, feed.Stream)
		})

		feed.SetNewStream(s1)
		feed.SetNewStream(s2)

		s.Equal([]*media.Stream{s1, s2}, got)
		s.Equal([]*media.Stream{s1, s2}, installed)
		s.Same(s2, feed.Stream)
	})

	s.Run("every subscriber once, none after unsubscribe", func() {
		feed := s.newFeed(streamOf("s0", 0, 0), "@alice")
		var first, second int
		h1 := feed.OnNewStream(func(*media.Stream) { first++ })
		feed.OnNewStream(func(*media.Stream) { second++ })

		feed.SetNewStream(streamOf("s1", 1, 0))
		s.Equal(1, first)
		s.Equal(1, second)

		s.True(feed.Off(h1))
		feed.SetNewStream(streamOf("s2", 1, 0))
		s.Equal(1, first)
		s.Equal(2, second)
	})

	s.Run("without subscribers", func() {
		feed := s.newFeed(streamOf("s0", 0, 0), "@alice")
		s3 := streamOf("s3", 1, 1)
		feed.SetNewStream(s3)
		s.Same(s3, feed.Stream)
	})
}
