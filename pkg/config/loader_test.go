package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/config"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

var keys = []string{
	"APP_ENV", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT",
	"QR_SCALE", "QR_BORDER", "QR_LEVEL",
	"QR_PREVIEW_WIDTH", "QR_PREVIEW_HEIGHT",
	"QR_CLIPBOARD_TIMEOUT", "QR_CLIPBOARD_COMMAND",
}

// clearEnv unsets every config key and restores the previous values when
// the test ends, including keys set later by godotenv.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("testdata/.env.empty")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "qrgen", cfg.AppName)
	assert.Equal(t, 8, cfg.Scale)
	assert.Equal(t, 4, cfg.Border)
	assert.Equal(t, 450, cfg.PreviewWidth)
	assert.Equal(t, 300, cfg.PreviewHeight)
	assert.Equal(t, 5*time.Second, cfg.ClipboardTimeout)
	assert.Empty(t, cfg.ClipboardCommand)

	level, err := cfg.ErrorLevel()
	require.NoError(t, err)
	assert.Equal(t, qrcode.LevelMedium, level)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("testdata/.env.custom")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, 10, cfg.Scale)
	assert.Equal(t, 2, cfg.Border)
	assert.Equal(t, 200, cfg.PreviewWidth)
	assert.Equal(t, 300, cfg.PreviewHeight)
	assert.Equal(t, 750*time.Millisecond, cfg.ClipboardTimeout)
	assert.Equal(t, []string{"wl-copy", "--type", "image/png"}, cfg.ClipboardCommand)

	level, err := cfg.ErrorLevel()
	require.NoError(t, err)
	assert.Equal(t, qrcode.LevelHigh, level)
}

func TestLoad_ProcessEnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("QR_SCALE", "3")

	cfg, err := config.Load("testdata/.env.custom")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scale)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := config.Load("testdata/non_existent_file.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("unparsable value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QR_SCALE", "big")
		_, err := config.Load("testdata/.env.empty")
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QR_LEVEL", "X")
		_, err := config.Load("testdata/.env.empty")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.ErrorIs(t, err, qrcode.ErrInvalidLevel)
	})

	t.Run("invalid preview bounds", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("QR_PREVIEW_HEIGHT", "0")
		_, err := config.Load("testdata/.env.empty")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("invalid log format", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_FORMAT", "xml")
		_, err := config.Load("testdata/.env.empty")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestMustLoad(t *testing.T) {
	clearEnv(t)
	assert.NotPanics(t, func() { config.MustLoad("testdata/.env.custom") })
	assert.Panics(t, func() { config.MustLoad("testdata/non_existent_file.env") })
}
