package pipeline

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/export"
	"github.com/dmitrymomot/qrkit/pkg/holder"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/preview"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// ErrNoImageYet is returned by consumers of the result slot before the first
// successful generation.
var ErrNoImageYet = errors.New("generate a QR code first")

// Pipeline generates symbols and serves previews and exports of the latest one.
type Pipeline struct {
	encoder    qrcode.Encoder
	dispatcher *export.Dispatcher
	slot       *holder.Slot
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithEncoder replaces the default skip2-based encoder.
func WithEncoder(enc qrcode.Encoder) Option {
	return func(p *Pipeline) {
		if enc != nil {
			p.encoder = enc
		}
	}
}

// WithDispatcher replaces the default export dispatcher.
func WithDispatcher(d *export.Dispatcher) Option {
	return func(p *Pipeline) {
		if d != nil {
			p.dispatcher = d
		}
	}
}

// WithSlot shares a result slot between pipelines.
func WithSlot(s *holder.Slot) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.slot = s
		}
	}
}

// WithLogger sets the logger; slog.Default is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.encoder == nil {
		p.encoder = qrcode.NewEncoder()
	}
	if p.dispatcher == nil {
		p.dispatcher = export.NewDispatcher()
	}
	if p.slot == nil {
		p.slot = &holder.Slot{}
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.logger = p.logger.With(logger.Component("pipeline"))
	return p
}

// Generate validates the parameters, encodes and renders the payload, and
// stores the result as the current image. Failures leave the previous image
// untouched and are never retried: encoding is deterministic.
func (p *Pipeline) Generate(ctx context.Context, payload string, scale, border int, level qrcode.Level) (holder.Snapshot, error) {
	start := time.Now()

	req, err := qrcode.Validate(payload, scale, border, level)
	if err != nil {
		p.logger.WarnContext(ctx, "invalid generation request", logger.Error(err))
		return holder.Snapshot{}, err
	}

	m, err := p.encoder.Encode(req.Payload, req.Level)
	if err != nil {
		p.logger.WarnContext(ctx, "encoding failed",
			logger.Error(err),
			slog.String("level", req.Level.String()),
			slog.Int("payload_len", len(req.Payload)),
		)
		return holder.Snapshot{}, err
	}

	img, err := qrcode.Render(m, req.Scale, req.Border)
	if err != nil {
		p.logger.ErrorContext(ctx, "rendering failed", logger.Error(err))
		return holder.Snapshot{}, err
	}

	snap := p.slot.Set(img)
	p.logger.InfoContext(ctx, "symbol generated",
		logger.Generation(snap.Generation),
		logger.SnapshotID(snap.ID),
		logger.Dimensions(img.Bounds().Dx(), img.Bounds().Dy()),
		logger.Duration(time.Since(start)),
	)
	return snap, nil
}

// Current returns the latest snapshot or ErrNoImageYet.
func (p *Pipeline) Current() (holder.Snapshot, error) {
	snap, err := p.slot.Get()
	if err != nil {
		return holder.Snapshot{}, errors.Join(ErrNoImageYet, err)
	}
	return snap, nil
}

// IsCurrent reports whether snap is still the latest generated image.
func (p *Pipeline) IsCurrent(snap holder.Snapshot) bool {
	return p.slot.IsCurrent(snap)
}

// Preview returns a display copy of the current image bounded by
// maxWidth×maxHeight.
func (p *Pipeline) Preview(maxWidth, maxHeight int) (*image.RGBA, error) {
	snap, err := p.Current()
	if err != nil {
		return nil, err
	}
	return preview.Fit(snap.Image, maxWidth, maxHeight)
}

// Save writes the current image to path as PNG.
func (p *Pipeline) Save(ctx context.Context, path string) error {
	return p.Export(ctx, export.FileTarget{Path: path})
}

// Copy places the current image on the system clipboard.
func (p *Pipeline) Copy(ctx context.Context) error {
	return p.Export(ctx, export.ClipboardTarget{})
}

// Export sends the current image to target.
func (p *Pipeline) Export(ctx context.Context, target export.Target) error {
	snap, err := p.Current()
	if err != nil {
		return err
	}

	kind := export.KindOf(target)
	if err := p.dispatcher.Export(ctx, snap.Image, target); err != nil {
		p.logger.ErrorContext(ctx, "export failed",
			logger.Target(kind),
			logger.Generation(snap.Generation),
			logger.Error(err),
		)
		return err
	}
	p.logger.InfoContext(ctx, "symbol exported",
		logger.Target(kind),
		logger.Generation(snap.Generation),
		logger.SnapshotID(snap.ID),
	)
	return nil
}

// ClipboardName names the clipboard variant selected at construction.
func (p *Pipeline) ClipboardName() string {
	return p.dispatcher.Clipboard().Name()
}
