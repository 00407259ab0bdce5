package qrcode

import (
	"fmt"
	"strings"
)

// Level is an error-correction tier. Higher tiers trade capacity for
// resilience to damage.
type Level string

const (
	LevelLow      Level = "L" // ~7% recovery
	LevelMedium   Level = "M" // ~15% recovery
	LevelQuartile Level = "Q" // ~25% recovery
	LevelHigh     Level = "H" // ~30% recovery
)

// Levels lists every tier from lowest to highest redundancy.
var Levels = []Level{LevelLow, LevelMedium, LevelQuartile, LevelHigh}

func (l Level) String() string { return string(l) }

// Valid reports whether l is one of the four defined tiers.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelQuartile, LevelHigh:
		return true
	}
	return false
}

// ParseLevel parses a tier code. Only the first non-space character is
// significant, so both "q" and labels like "Q (25%)" are accepted.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidLevel)
	}
	l := Level(strings.ToUpper(s[:1]))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}
