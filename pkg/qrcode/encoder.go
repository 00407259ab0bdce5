package qrcode

import (
	"errors"
	"fmt"
	"unicode/utf8"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Encoder converts a payload into a symbol matrix. Implementations must be
// deterministic: the same payload and level always yield the same matrix.
type Encoder interface {
	Encode(payload string, level Level) (Matrix, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(payload string, level Level) (Matrix, error)

// Encode calls f(payload, level).
func (f EncoderFunc) Encode(payload string, level Level) (Matrix, error) {
	return f(payload, level)
}

// skipEncoder encodes with github.com/skip2/go-qrcode, choosing the smallest
// symbol version that fits the payload.
type skipEncoder struct{}

// NewEncoder returns the default Encoder.
func NewEncoder() Encoder {
	return skipEncoder{}
}

var recoveryLevels = map[Level]skipqrcode.RecoveryLevel{
	LevelLow:      skipqrcode.Low,
	LevelMedium:   skipqrcode.Medium,
	LevelQuartile: skipqrcode.High,
	LevelHigh:     skipqrcode.Highest,
}

func (skipEncoder) Encode(payload string, level Level) (Matrix, error) {
	rl, ok := recoveryLevels[level]
	if !ok {
		return Matrix{}, errors.Join(ErrEncoding, fmt.Errorf("%w: %q", ErrUnsupportedLevel, string(level)))
	}
	if !utf8.ValidString(payload) {
		return Matrix{}, errors.Join(ErrEncoding, ErrUnsupportedCharacter)
	}

	q, err := skipqrcode.New(payload, rl)
	if err != nil {
		// Byte mode accepts any valid UTF-8, so capacity is the only way
		// skip2 can fail here.
		return Matrix{}, errors.Join(ErrEncoding, ErrPayloadTooLarge, err)
	}
	// The quiet zone is the renderer's job.
	q.DisableBorder = true

	m, err := NewMatrix(q.Bitmap())
	if err != nil {
		return Matrix{}, errors.Join(ErrEncoding, err)
	}
	return m, nil
}
