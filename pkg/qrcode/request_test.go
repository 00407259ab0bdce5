package qrcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty payload", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Validate("", 4, 2, qrcode.LevelLow)
		assert.ErrorIs(t, err, qrcode.ErrEmptyPayload)
	})

	t.Run("rejects whitespace payload", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Validate("  \t\n ", 4, 2, qrcode.LevelLow)
		assert.ErrorIs(t, err, qrcode.ErrEmptyPayload)
	})

	t.Run("trims payload", func(t *testing.T) {
		t.Parallel()
		req, err := qrcode.Validate("  https://example.com \n", 4, 2, qrcode.LevelMedium)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", req.Payload)
		assert.Equal(t, qrcode.LevelMedium, req.Level)
	})

	t.Run("floors scale and border", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			scale, border         int
			wantScale, wantBorder int
		}{
			{scale: 0, border: -1, wantScale: 1, wantBorder: 0},
			{scale: -10, border: -10, wantScale: 1, wantBorder: 0},
			{scale: 1, border: 0, wantScale: 1, wantBorder: 0},
			{scale: 8, border: 4, wantScale: 8, wantBorder: 4},
		}
		for _, tt := range tests {
			req, err := qrcode.Validate("x", tt.scale, tt.border, qrcode.LevelHigh)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScale, req.Scale)
			assert.Equal(t, tt.wantBorder, req.Border)
		}
	})

	t.Run("passes unknown level through", func(t *testing.T) {
		t.Parallel()
		req, err := qrcode.Validate("x", 1, 0, qrcode.Level("Z"))
		require.NoError(t, err)
		assert.Equal(t, qrcode.Level("Z"), req.Level)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want qrcode.Level
	}{
		{"L", qrcode.LevelLow},
		{"m", qrcode.LevelMedium},
		{"Q (25%)", qrcode.LevelQuartile},
		{" H (30%)", qrcode.LevelHigh},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := qrcode.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "  ", "X", "7%"} {
		_, err := qrcode.ParseLevel(bad)
		assert.ErrorIs(t, err, qrcode.ErrInvalidLevel, "input %q", bad)
	}
}
