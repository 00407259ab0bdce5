package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/dmitrymomot/qrkit/pkg/clipboard"
	"github.com/dmitrymomot/qrkit/pkg/file"
	"github.com/dmitrymomot/qrkit/pkg/imgcodec"
)

// Dispatcher routes images to export targets.
type Dispatcher struct {
	sink clipboard.Sink
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClipboard sets the clipboard variant. By default the variant is
// detected from runtime.GOOS.
func WithClipboard(sink clipboard.Sink) Option {
	return func(d *Dispatcher) {
		if sink != nil {
			d.sink = sink
		}
	}
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	if d.sink == nil {
		d.sink = clipboard.Detect(runtime.GOOS)
	}
	return d
}

// Clipboard returns the selected clipboard variant.
func (d *Dispatcher) Clipboard() clipboard.Sink { return d.sink }

// Export writes img to target.
func (d *Dispatcher) Export(ctx context.Context, img image.Image, target Target) error {
	if img == nil {
		return errors.Join(ErrExport, ErrNilImage)
	}
	switch t := target.(type) {
	case FileTarget:
		return d.exportFile(ctx, img, t.Path)
	case *FileTarget:
		if t == nil {
			return errors.Join(ErrExport, ErrUnknownTarget)
		}
		return d.exportFile(ctx, img, t.Path)
	case ClipboardTarget, *ClipboardTarget:
		return d.exportClipboard(ctx, img)
	default:
		return errors.Join(ErrExport, fmt.Errorf("%w: %T", ErrUnknownTarget, target))
	}
}

func (d *Dispatcher) exportFile(ctx context.Context, img image.Image, path string) error {
	data, err := imgcodec.EncodePNG(img)
	if err != nil {
		return errors.Join(ErrExport, ErrIOFailure, err)
	}
	if err := file.WriteAtomic(ctx, path, data); err != nil {
		return errors.Join(ErrExport, classifyFileError(err), err)
	}
	return nil
}

func (d *Dispatcher) exportClipboard(ctx context.Context, img image.Image) error {
	err := d.sink.Copy(ctx, img)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, clipboard.ErrUnsupported):
		return errors.Join(ErrExport, ErrClipboardUnsupported, err)
	case errors.Is(err, clipboard.ErrUnavailable):
		return errors.Join(ErrExport, ErrClipboardUnavailable, err)
	default:
		return errors.Join(ErrExport, ErrIOFailure, err)
	}
}

func classifyFileError(err error) error {
	switch {
	case errors.Is(err, file.ErrAccessDenied):
		return ErrPermissionDenied
	case errors.Is(err, file.ErrInvalidPath),
		errors.Is(err, file.ErrDirectoryNotFound),
		errors.Is(err, file.ErrNotDirectory),
		errors.Is(err, file.ErrIsDirectory):
		return ErrPathInvalid
	default:
		return ErrIOFailure
	}
}
