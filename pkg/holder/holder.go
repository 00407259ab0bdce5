// Package holder keeps the most recently generated symbol image.
//
// Slot is a single-slot, versioned container. Every Set replaces the image
// wholesale and bumps a generation counter, so a reader holding a Snapshot
// can tell whether a newer image has been produced since it looked.
package holder

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrEmpty is returned by Get before the first Set.
var ErrEmpty = errors.New("no image has been generated yet")

// Snapshot is an immutable view of one generated image.
// Image must be treated as read-only by every consumer.
type Snapshot struct {
	Generation uint64
	ID         uuid.UUID
	Image      *image.RGBA
	CreatedAt  time.Time
}

// Slot holds the latest Snapshot. The zero value is ready to use and safe
// for concurrent use.
type Slot struct {
	mu      sync.RWMutex
	current *Snapshot
	gen     uint64
}

// Set stores img as the current image and returns its Snapshot.
func (s *Slot) Set(img *image.RGBA) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	snap := &Snapshot{
		Generation: s.gen,
		ID:         uuid.New(),
		Image:      img,
		CreatedAt:  time.Now(),
	}
	s.current = snap
	return *snap
}

// Get returns the current Snapshot or ErrEmpty.
func (s *Slot) Get() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Snapshot{}, ErrEmpty
	}
	return *s.current, nil
}

// Generation returns the number of successful Set calls so far.
func (s *Slot) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// IsCurrent reports whether snap is still the latest image.
func (s *Slot) IsCurrent(snap Snapshot) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Generation == snap.Generation && s.current.ID == snap.ID
}
