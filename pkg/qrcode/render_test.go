package qrcode_test

import (
	"bytes"
	"image"
	"math"
	"testing"

	"github.com/makiuchi-d/gozxing"
	gzqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/imgcodec"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

func mustMatrix(t *testing.T, rows [][]bool) qrcode.Matrix {
	t.Helper()
	m, err := qrcode.NewMatrix(rows)
	require.NoError(t, err)
	return m
}

func decodeSymbol(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(gozxing.NewLuminanceSourceFromImage(img)))
	require.NoError(t, err)
	res, err := gzqrcode.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)
	return res.GetText()
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("dimensions follow the linear formula", func(t *testing.T) {
		t.Parallel()
		m := mustMatrix(t, [][]bool{
			{true, false, true},
			{false, true, false},
			{true, true, false},
		})
		for scale := 1; scale <= 6; scale++ {
			for border := 0; border <= 5; border++ {
				img, err := qrcode.Render(m, scale, border)
				require.NoError(t, err)
				want := (3 + 2*border) * scale
				assert.Equal(t, want, img.Bounds().Dx(), "scale=%d border=%d", scale, border)
				assert.Equal(t, want, img.Bounds().Dy(), "scale=%d border=%d", scale, border)
			}
		}
	})

	t.Run("rectangular matrix", func(t *testing.T) {
		t.Parallel()
		m := mustMatrix(t, [][]bool{{true, false, true, false}, {false, true, false, true}})
		img, err := qrcode.Render(m, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, (4+2)*2, img.Bounds().Dx())
		assert.Equal(t, (2+2)*2, img.Bounds().Dy())
	})

	t.Run("modules become solid blocks inside a light border", func(t *testing.T) {
		t.Parallel()
		m := mustMatrix(t, [][]bool{{true, false}, {false, true}})
		const scale, border = 3, 2
		img, err := qrcode.Render(m, scale, border)
		require.NoError(t, err)

		size := img.Bounds().Dx()
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				mx, my := x/scale-border, y/scale-border
				want := qrcode.LightColor
				if m.Dark(mx, my) {
					want = qrcode.DarkColor
				}
				require.Equal(t, want, img.RGBAAt(x, y), "pixel (%d,%d)", x, y)
			}
		}
	})

	t.Run("zero border removes the quiet zone", func(t *testing.T) {
		t.Parallel()
		m := mustMatrix(t, [][]bool{{true}})
		img, err := qrcode.Render(m, 4, 0)
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, qrcode.DarkColor, img.RGBAAt(0, 0))
		assert.Equal(t, qrcode.DarkColor, img.RGBAAt(3, 3))
	})

	t.Run("rejects unvalidated parameters", func(t *testing.T) {
		t.Parallel()
		m := mustMatrix(t, [][]bool{{true}})
		_, err := qrcode.Render(m, 0, 1)
		assert.ErrorIs(t, err, qrcode.ErrRender)
		_, err = qrcode.Render(m, 1, -1)
		assert.ErrorIs(t, err, qrcode.ErrRender)
		_, err = qrcode.Render(qrcode.Matrix{}, 1, 1)
		assert.ErrorIs(t, err, qrcode.ErrRender)
	})

	t.Run("oversized output is an error, not a panic", func(t *testing.T) {
		t.Parallel()
		m := mustMatrix(t, [][]bool{{true, false}, {false, true}})

		for _, tt := range []struct {
			name          string
			scale, border int
		}{
			{"overflowing scale", math.MaxInt / 16, 4},
			{"overflowing border", 1, math.MaxInt},
			{"scale over the pixel cap", 10000, 0},
		} {
			assert.NotPanics(t, func() {
				img, err := qrcode.Render(m, tt.scale, tt.border)
				assert.Nil(t, img, tt.name)
				assert.ErrorIs(t, err, qrcode.ErrRender, tt.name)
				assert.ErrorIs(t, err, qrcode.ErrImageTooLarge, tt.name)
			}, tt.name)
		}
	})

	t.Run("HELLO at L with scale 4 border 2", func(t *testing.T) {
		t.Parallel()
		render := func() []byte {
			req, err := qrcode.Validate("HELLO", 4, 2, qrcode.LevelLow)
			require.NoError(t, err)
			m, err := qrcode.NewEncoder().Encode(req.Payload, req.Level)
			require.NoError(t, err)
			img, err := qrcode.Render(m, req.Scale, req.Border)
			require.NoError(t, err)
			assert.Equal(t, 100, img.Bounds().Dx())
			assert.Equal(t, 100, img.Bounds().Dy())
			data, err := imgcodec.EncodePNG(img)
			require.NoError(t, err)
			return data
		}
		assert.True(t, bytes.Equal(render(), render()), "identical inputs must give identical output")
	})

	t.Run("rendered symbol decodes back to the payload", func(t *testing.T) {
		t.Parallel()
		for _, level := range qrcode.Levels {
			m, err := qrcode.NewEncoder().Encode("https://example.com/qr?level="+level.String(), level)
			require.NoError(t, err)
			img, err := qrcode.Render(m, 4, 4)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/qr?level="+level.String(), decodeSymbol(t, img))
		}
	})
}
