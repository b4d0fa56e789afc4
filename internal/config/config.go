package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode       string        `mapstructure:"mode"`
	Port       int           `mapstructure:"port"`
	LogLevel   string        `mapstructure:"log_level"`
	Secret     string        `mapstructure:"secret"`
	PingPeriod time.Duration `mapstructure:"ping_period"`
	User       UserConfig    `mapstructure:"user"`
	Room       RoomConfig    `mapstructure:"room"`
	Media      MediaConfig   `mapstructure:"media"`
	Limits     LimitsConfig  `mapstructure:"limits"`
}

type UserConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

type RoomConfig struct {
	Name string `mapstructure:"name"`
}

// MediaConfig selects which local tracks are published at startup.
type MediaConfig struct {
	Audio       bool `mapstructure:"audio"`
	Video       bool `mapstructure:"video"`
	Screenshare bool `mapstructure:"screenshare"`
}

// LimitsConfig bounds how often one client may change local media.
// MediaChanges <= 0 disables the limit.
type LimitsConfig struct {
	MediaChanges  int           `mapstructure:"media_changes"`
	MediaInterval time.Duration `mapstructure:"media_interval"`
}

// Load reads config/config.<CONFIG_ENV>.yaml (CONFIG_ENV defaults to dev).
// A missing file is not an error; defaults and VOICE_* env vars apply.
func Load() (*Config, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return LoadFile(fmt.Sprintf("config/config.%s.yaml", env))
}

func LoadFile(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)

	v.SetEnvPrefix("VOICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("secret", "change-me")
	v.SetDefault("ping_period", "54s")
	v.SetDefault("user.id", "")
	v.SetDefault("user.name", "guest")
	v.SetDefault("room.name", "lobby")
	v.SetDefault("media.audio", true)
	v.SetDefault("media.video", true)
	v.SetDefault("media.screenshare", false)
	v.SetDefault("limits.media_changes", 10)
	v.SetDefault("limits.media_interval", "10s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config %s: %w", fileName, err)
		}
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	log.Info().Str("module", "config").Str("mode", cfg.Mode).Int("port", cfg.Port).Str("room", cfg.Room.Name).Msg("config ready")
	return &cfg, nil
}
