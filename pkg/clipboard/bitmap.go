package clipboard

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/imgcodec"
)

// DIBWriter places a device-independent bitmap on a clipboard.
type DIBWriter interface {
	WriteDIB(ctx context.Context, dib []byte) error
}

// BitmapSink copies images as 24-bit device-independent bitmaps.
type BitmapSink struct {
	writer  DIBWriter
	timeout time.Duration
}

// NewBitmapSink creates a BitmapSink writing through w. A non-positive
// timeout falls back to DefaultTimeout.
func NewBitmapSink(w DIBWriter, timeout time.Duration) *BitmapSink {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BitmapSink{writer: w, timeout: timeout}
}

func (s *BitmapSink) Name() string { return "dib" }

// Copy converts img to a BMP with alpha dropped, strips the 14-byte file
// header and hands the remainder to the writer.
func (s *BitmapSink) Copy(ctx context.Context, img image.Image) error {
	if s.writer == nil {
		return ErrUnavailable
	}
	dib, err := imgcodec.EncodeDIB(img)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.writer.WriteDIB(ctx, dib); err != nil {
		if errors.Is(err, ErrUnavailable) {
			return err
		}
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}
