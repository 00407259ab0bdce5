// Package preview derives bounded display copies of a rendered symbol.
//
// Fit never magnifies past the canonical resolution and resamples with
// nearest-neighbour selection only. Smoothing would blur the module edges
// that scanners rely on.
package preview

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/dmitrymomot/qrkit/pkg/imgcodec"
)

// ErrInvalidBounds is returned for non-positive display bounds or an empty source.
var ErrInvalidBounds = errors.New("invalid preview bounds")

// Factor returns the uniform scale factor min(maxWidth/width, maxHeight/height, 1).
func Factor(width, height, maxWidth, maxHeight int) float64 {
	f := min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	return min(f, 1.0)
}

// Fit returns a copy of src that fits within maxWidth×maxHeight. When src
// already fits, the copy is pixel-identical; src is never modified.
func Fit(src image.Image, maxWidth, maxHeight int) (*image.RGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidBounds)
	}
	b := src.Bounds()
	if b.Empty() || maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("%w: image %dx%d, bounds %dx%d", ErrInvalidBounds, b.Dx(), b.Dy(), maxWidth, maxHeight)
	}

	f := Factor(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if f >= 1.0 {
		return imgcodec.Clone(src), nil
	}

	w := clamp(int(float64(b.Dx())*f), 1, maxWidth)
	h := clamp(int(float64(b.Dy())*f), 1, maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
