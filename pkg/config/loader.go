package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// Config holds qrgen defaults. Defaults mirror the desktop generator:
// 8 px per module, a 4 module quiet zone, level M and a 450x300 preview.
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	AppName   string `env:"APP_NAME" envDefault:"qrgen"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Scale  int    `env:"QR_SCALE" envDefault:"8"`
	Border int    `env:"QR_BORDER" envDefault:"4"`
	Level  string `env:"QR_LEVEL" envDefault:"M"`

	PreviewWidth  int `env:"QR_PREVIEW_WIDTH" envDefault:"450"`
	PreviewHeight int `env:"QR_PREVIEW_HEIGHT" envDefault:"300"`

	ClipboardTimeout time.Duration `env:"QR_CLIPBOARD_TIMEOUT" envDefault:"5s"`
	ClipboardCommand []string      `env:"QR_CLIPBOARD_COMMAND" envSeparator:" "`
}

// ErrorLevel parses Level.
func (c Config) ErrorLevel() (qrcode.Level, error) {
	return qrcode.ParseLevel(c.Level)
}

// Load reads the given .env files (or the default .env when none are given,
// ignoring its absence) and parses the environment into a Config.
func Load(paths ...string) (Config, error) {
	if len(paths) > 0 {
		if err := godotenv.Load(paths...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env file is optional
		_ = godotenv.Load()
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad(paths ...string) Config {
	cfg, err := Load(paths...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// Validate checks value ranges. Scale and border are not checked here since
// the generator floors them anyway.
func (c Config) Validate() error {
	if _, err := c.ErrorLevel(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: log format must be json or text, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.PreviewWidth <= 0 || c.PreviewHeight <= 0 {
		return fmt.Errorf("%w: preview bounds must be positive, got %dx%d", ErrInvalidConfig, c.PreviewWidth, c.PreviewHeight)
	}
	if c.ClipboardTimeout <= 0 {
		return fmt.Errorf("%w: clipboard timeout must be positive, got %s", ErrInvalidConfig, c.ClipboardTimeout)
	}
	return nil
}
