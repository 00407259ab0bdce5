package clipboard

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

var (
	// ErrUnsupported is returned on platforms without a clipboard variant.
	ErrUnsupported = errors.New("clipboard is not supported on this platform")
	// ErrUnavailable is returned when the clipboard mechanism or helper
	// process is missing, fails or times out.
	ErrUnavailable = errors.New("clipboard is unavailable")
)

// DefaultTimeout bounds a single helper process run.
const DefaultTimeout = 5 * time.Second

// Sink copies an image to a clipboard. Implementations must not modify img.
type Sink interface {
	Copy(ctx context.Context, img image.Image) error
	// Name identifies the variant for logs and status messages.
	Name() string
}

type options struct {
	timeout time.Duration
	command []string
	writer  DIBWriter
}

// Option configures Detect.
type Option func(*options)

// WithTimeout bounds helper process runs. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithCommand overrides the helper process (name followed by arguments).
// On platforms that normally use a bitmap clipboard this switches Detect to
// a PNGStreamSink.
func WithCommand(argv ...string) Option {
	return func(o *options) {
		if len(argv) > 0 && argv[0] != "" {
			o.command = argv
		}
	}
}

// WithDIBWriter replaces the system CF_DIB writer.
func WithDIBWriter(w DIBWriter) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// Detect selects the clipboard variant for goos (a runtime.GOOS value).
func Detect(goos string, opts ...Option) Sink {
	o := &options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.command) > 0 {
		return NewPNGStreamSink(o.command[0], o.command[1:], o.timeout)
	}

	switch goos {
	case "windows":
		w := o.writer
		if w == nil {
			w = systemDIBWriter()
		}
		return NewBitmapSink(w, o.timeout)
	case "darwin":
		return NewPNGStreamSink("pbcopy", nil, o.timeout)
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return NewPNGStreamSink("xclip", []string{"-selection", "clipboard", "-t", "image/png"}, o.timeout)
	default:
		return Unsupported{Platform: goos}
	}
}

// Unsupported is the variant for platforms without clipboard support.
type Unsupported struct {
	Platform string
}

func (u Unsupported) Copy(context.Context, image.Image) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, u.Platform)
}

func (u Unsupported) Name() string { return "unsupported" }
