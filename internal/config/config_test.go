package config

import (
	"os"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: every other field takes its default
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
		assert.InDelta(t, 0.8, conf.Bot.Randomness, 1e-9)
		assert.Equal(t, "X", conf.Bot.Mark)
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		path := writeConfig(t, `
http-port: "8080"
redis:
  host: redis
  port: "6380"
  session-ttl: 15m
bot:
  randomness: 1
  mark: O
`)

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 15*time.Minute, conf.Redis.SessionTTL)
		assert.InDelta(t, 1.0, conf.Bot.Randomness, 1e-9)
		assert.Equal(t, "O", conf.Bot.Mark)
	})

	t.Run("Rejects randomness above 1", func(t *testing.T) {
		path := writeConfig(t, "bot:\n  randomness: 1.5\n")

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrInvalidRandomness)
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		path := writeConfig(t, "bot:\n  mark: Z\n")

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}
