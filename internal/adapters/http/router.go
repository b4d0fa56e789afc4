package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/VoiceFeed/internal/app"
	"github.com/dkeye/VoiceFeed/internal/config"
	"github.com/dkeye/VoiceFeed/internal/core"
	"github.com/dkeye/VoiceFeed/internal/domain"
)

// FeedDTO is the API view of a feed.
type FeedDTO = app.FeedView

type localMediaRequest struct {
	Purpose string `json:"purpose" binding:"required"`
	Audio   bool   `json:"audio"`
	Video   bool   `json:"video"`
}

const clientTokenKey = "client_token"

// ClientTokenMiddleware keeps a per-client token in the session, issuing
// one on the first visit, and exposes it as "client_token" on the context.
// Must run after sessions.Sessions.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(clientTokenKey).(string)
		if token == "" {
			token = uuid.NewString()
			session.Set(clientTokenKey, token)
			if err := session.Save(); err != nil {
				log.Error().Err(err).Str("module", "adapters.http").Msg("save session")
			}
		}
		c.Set(clientTokenKey, token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, ctl *app.Controller) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("VoiceFeedSessions", store))
	r.Use(ClientTokenMiddleware())

	api := r.Group("/api")

	api.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, ctl.Session.Rooms.List())
	})

	api.GET("/rooms/:room/feeds", func(c *gin.Context) {
		feeds, err := ctl.FeedViews(domain.RoomID(c.Param("room")))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": core.ErrRoomNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, feeds)
	})

	limiter := NewRateLimiter(cfg.Limits.MediaChanges, cfg.Limits.MediaInterval)
	api.POST("/rooms/:room/feeds/local/media", func(c *gin.Context) {
		if !limiter.Allow(c.GetString(clientTokenKey)) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
			return
		}
		var req localMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_payload"})
			return
		}
		purpose, err := domain.ParsePurpose(req.Purpose)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		roomID := domain.RoomID(c.Param("room"))
		feed, err := ctl.SetLocalMedia(roomID, purpose, req.Audio, req.Video)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, core.ErrRoomNotFound) || errors.Is(err, app.ErrFeedNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, feed)
	})

	ws := newFeedEvents(ctl, cfg.PingPeriod)
	api.GET("/ws/feeds", func(c *gin.Context) {
		ws.Handle(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Msg("router setup")
	return r
}
