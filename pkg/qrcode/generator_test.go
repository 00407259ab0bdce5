package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate("", 8, 4, qrcode.LevelMedium)

		require.Error(t, err, "Generate should return an error with empty content")
		require.Nil(t, result, "Generate should not return PNG data")
		assert.ErrorIs(t, err, qrcode.ErrEmptyPayload)
	})

	t.Run("returns error when content is whitespace only", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate("   \t\n", 8, 4, qrcode.LevelMedium)

		require.Error(t, err)
		require.Nil(t, result)
		assert.ErrorIs(t, err, qrcode.ErrEmptyPayload)
	})

	t.Run("generates a decodable PNG", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate("https://example.com", 8, 4, qrcode.LevelMedium)
		require.NoError(t, err)
		require.NotEmpty(t, result)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err, "Result should be a valid PNG image")

		assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy(), "symbol should be square")
		assert.Zero(t, img.Bounds().Dx()%8, "width should be a multiple of the scale")
		assert.Equal(t, "https://example.com", decodeSymbol(t, img))
	})

	t.Run("floors negative scale and border", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Generate("HELLO", -3, -3, qrcode.LevelLow)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, 21, img.Bounds().Dx(), "scale 1, border 0, version 1")
	})

	t.Run("propagates encoder errors", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Generate(strings.Repeat("Z", 5000), 1, 0, qrcode.LevelHigh)
		assert.ErrorIs(t, err, qrcode.ErrPayloadTooLarge)
	})
}

func TestGenerateBase64Image(t *testing.T) {
	t.Parallel()

	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.GenerateBase64Image("", 8, 4, qrcode.LevelMedium)
		require.Error(t, err)
		require.Empty(t, result)
		assert.ErrorIs(t, err, qrcode.ErrEmptyPayload)
	})

	t.Run("can decode base64 content to valid PNG", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.GenerateBase64Image("https://example.com", 4, 4, qrcode.LevelQuartile)
		require.NoError(t, err)

		expectedPrefix := "data:image/png;base64,"
		require.True(t, strings.HasPrefix(result, expectedPrefix),
			"Result should start with the data URI prefix")

		decodedBytes, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(result, expectedPrefix))
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(decodedBytes))
		require.NoError(t, err, "Decoded content should be a valid PNG")
		assert.Equal(t, "https://example.com", decodeSymbol(t, img))
	})
}
