package qrcode

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	// DarkColor is used for dark modules.
	DarkColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	// LightColor is used for light modules and the quiet zone.
	LightColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// MaxPixels caps the bitmap Render allocates (256 MiB of RGBA).
const MaxPixels = 1 << 26

// Size returns the rendered pixel dimensions for m. It does not check for
// overflow; Render does.
func Size(m Matrix, scale, border int) (width, height int) {
	return (m.Width() + 2*border) * scale, (m.Height() + 2*border) * scale
}

// Render draws m onto a fresh RGBA bitmap. Each module becomes a scale×scale
// block and the symbol is surrounded by border light modules on every side.
// The palette is exactly DarkColor and LightColor with no anti-aliasing.
func Render(m Matrix, scale, border int) (*image.RGBA, error) {
	if m.Empty() {
		return nil, fmt.Errorf("%w: empty matrix", ErrRender)
	}
	if scale < 1 || border < 0 {
		return nil, fmt.Errorf("%w: scale=%d border=%d", ErrRender, scale, border)
	}

	width, height, err := checkedSize(m, scale, border)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(LightColor), image.Point{}, draw.Src)

	dark := image.NewUniform(DarkColor)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.Dark(x, y) {
				continue
			}
			px := (x + border) * scale
			py := (y + border) * scale
			draw.Draw(img, image.Rect(px, py, px+scale, py+scale), dark, image.Point{}, draw.Src)
		}
	}
	return img, nil
}

func checkedSize(m Matrix, scale, border int) (width, height int, err error) {
	tooLarge := fmt.Errorf("%w: %w: scale=%d border=%d", ErrRender, ErrImageTooLarge, scale, border)

	// Each side alone must stay under MaxPixels, which bounds every product below.
	if border > MaxPixels || scale > MaxPixels {
		return 0, 0, tooLarge
	}
	sideW := int64(m.Width()) + 2*int64(border)
	sideH := int64(m.Height()) + 2*int64(border)
	w, h := sideW*int64(scale), sideH*int64(scale)
	if w > MaxPixels || h > MaxPixels || w*h > MaxPixels {
		return 0, 0, tooLarge
	}
	return int(w), int(h), nil
}
