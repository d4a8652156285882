package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Bot        Bot    `yaml:"bot"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"1h"`
}

type Bot struct {
	// Randomness is the probability of picking a best-scoring move; the rest of the time the
	// bot picks any legal move.
	Randomness float64 `yaml:"randomness" env:"BOT_RANDOMNESS" env-default:"0.8"`
	Mark       string  `yaml:"mark" env:"BOT_MARK" env-default:"X"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Bot.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bot config: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Bot) Validate() error {
	if that.Randomness < 0 || that.Randomness > 1 {
		return fmt.Errorf("%w: got %v", apperror.ErrInvalidRandomness, that.Randomness)
	}

	if that.Mark != "X" && that.Mark != "O" {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, that.Mark)
	}

	return nil
}

// ParseLogLevel maps the log-level setting to a slog level, defaulting to info.
func ParseLogLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
