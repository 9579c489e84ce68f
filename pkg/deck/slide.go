// Package deck holds the presentation core: the slide registry, the single
// navigation cursor, the display projection, the input router and the
// presenter affordances (timer, notes, overview, kiosk stepping).
//
// Nothing in this package touches a terminal. Hosts (the bubbletea UI, the
// plain line mode) feed events in and read projections back out.
package deck

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when a deck has no slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// Slide is one entry of the registry, identified by its 0-based position.
type Slide struct {
	Index int    // 0-based ordinal in the registry
	Title string // First level-1 heading text, empty when the slide has none
	Body  string // Markdown source with speaker-note comments removed
}

// Registry is the fixed, ordered slide sequence for a session.
// It is built once and never mutated afterwards.
type Registry struct {
	slides []Slide
}

// NewRegistry builds a registry from slides in order. Indices are
// reassigned to match position.
func NewRegistry(slides []Slide) (*Registry, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	owned := make([]Slide, len(slides))
	for i, s := range slides {
		s.Index = i
		owned[i] = s
	}
	return &Registry{slides: owned}, nil
}

// Len returns the number of slides.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.slides)
}

// At returns the slide at index i.
func (r *Registry) At(i int) (Slide, bool) {
	if r == nil || i < 0 || i >= len(r.slides) {
		return Slide{}, false
	}
	return r.slides[i], true
}

// Slides returns a copy of the registry contents.
func (r *Registry) Slides() []Slide {
	if r == nil {
		return nil
	}
	out := make([]Slide, len(r.slides))
	copy(out, r.slides)
	return out
}

// DisplayTitle returns the slide heading, or "Slide N" when it has none.
func (r *Registry) DisplayTitle(i int) string {
	s, ok := r.At(i)
	if ok && s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("Slide %d", i+1)
}
