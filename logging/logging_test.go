package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("CLOCKBOARD_LOG_LEVEL", "debug")
	t.Setenv("CLOCKBOARD_LOG_FILE", "/tmp/clockboard-test.log")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "/tmp/clockboard-test.log", cfg.File)
}

func TestFromEnvDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for
	// envDefault to apply
	t.Setenv("CLOCKBOARD_LOG_LEVEL", "x")
	t.Setenv("CLOCKBOARD_LOG_FILE", "x")
	os.Unsetenv("CLOCKBOARD_LOG_LEVEL")
	os.Unsetenv("CLOCKBOARD_LOG_FILE")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Level)
	assert.Empty(t, cfg.File)
}

func TestOpenWithoutFileDisablesLogging(t *testing.T) {
	logger, closer, err := Open(Config{Level: "info"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clockboard.log")

	logger, closer, err := Open(Config{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Info().Str("timezone", "Asia/Tokyo").Msg("clock added")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"clock added"`)
	assert.Contains(t, string(data), `"service":"clockboard"`)
	assert.Contains(t, string(data), `"timezone":"Asia/Tokyo"`)
}

func TestOpenFallsBackToInfoOnBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockboard.log")

	logger, closer, err := Open(Config{Level: "chatty", File: path})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
