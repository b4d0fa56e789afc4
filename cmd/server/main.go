package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/dkeye/VoiceFeed/internal/adapters/http"
	"github.com/dkeye/VoiceFeed/internal/app"
	"github.com/dkeye/VoiceFeed/internal/config"
	"github.com/dkeye/VoiceFeed/internal/domain"
	"github.com/dkeye/VoiceFeed/internal/media"
)

var (
	opusCapability = webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeOpus, ClockRate: 48000, Channels: 2}
	vp8Capability  = webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8, ClockRate: 90000}
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}

	ctl, err := setup(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to publish local feeds")
	}

	r := router.SetupRouter(ctx, cfg, ctl)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("VoiceFeed server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

// setup creates the session user, its room and the configured local feeds.
func setup(cfg *config.Config) (*app.Controller, error) {
	user, err := domain.NewUserWithID(domain.UserID(cfg.User.ID), cfg.User.Name)
	if err != nil {
		return nil, err
	}
	rooms := app.NewRoomManager()
	room := rooms.CreateRoom(domain.RoomName(cfg.Room.Name))
	ctl := app.NewController(app.NewSession(user, rooms), app.NewRegistry())

	var caps []webrtc.RTPCodecCapability
	if cfg.Media.Audio {
		caps = append(caps, opusCapability)
	}
	if cfg.Media.Video {
		caps = append(caps, vp8Capability)
	}
	stream, err := media.NewLocalStream(string(user.ID)+"-usermedia", caps...)
	if err != nil {
		return nil, err
	}
	if _, err := ctl.PublishLocal(room.Room().ID, domain.PurposeUsermedia, stream); err != nil {
		return nil, err
	}

	if cfg.Media.Screenshare {
		screen, err := media.NewLocalStream(string(user.ID)+"-screenshare", vp8Capability)
		if err != nil {
			return nil, err
		}
		if _, err := ctl.PublishLocal(room.Room().ID, domain.PurposeScreenshare, screen); err != nil {
			return nil, err
		}
	}
	log.Info().Str("room", string(room.Room().ID)).Str("user", string(user.ID)).Msg("local feeds published")
	return ctl, nil
}
