// Package testutil provides deck fixtures and fakes shared by package tests.
// All generators produce deterministic output for reproducible tests.
package testutil

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// DeckConfig controls markdown deck generation.
type DeckConfig struct {
	Seed       int64 // Random seed for body text (0 = fixed default)
	Slides     int   // Number of slides
	Untitled   []int // 1-based slide numbers generated without a heading
	NoteEvery  int   // Attach an inline note to every Nth slide (0 = none)
	CodeFences bool  // Put a fenced block containing "---" on each slide
}

// DefaultDeckConfig returns a 16-slide deck with a note on every slide.
func DefaultDeckConfig() DeckConfig {
	return DeckConfig{
		Seed:      42,
		Slides:    16,
		NoteEvery: 1,
	}
}

var fillerWords = []string{
	"incident", "response", "backup", "phishing", "insurance", "plan",
	"contacts", "recovery", "policy", "training", "drill", "access",
}

// Markdown renders a deck according to cfg. Slide N is titled
// "Topic N" and, when it carries a note, the note reads "Note for slide N".
func Markdown(cfg DeckConfig) string {
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}
	rng := rand.New(rand.NewSource(seed))

	untitled := make(map[int]bool, len(cfg.Untitled))
	for _, n := range cfg.Untitled {
		untitled[n] = true
	}

	var b strings.Builder
	for n := 1; n <= cfg.Slides; n++ {
		if n > 1 {
			b.WriteString("\n---\n\n")
		}
		if untitled[n] {
			fmt.Fprintf(&b, "## Subheading %d\n\n", n)
		} else {
			fmt.Fprintf(&b, "# Topic %d\n\n", n)
		}
		words := make([]string, 6)
		for i := range words {
			words[i] = fillerWords[rng.Intn(len(fillerWords))]
		}
		b.WriteString("- " + strings.Join(words[:3], " ") + "\n")
		b.WriteString("- " + strings.Join(words[3:], " ") + "\n")
		if cfg.CodeFences {
			b.WriteString("\n```yaml\n---\nkey: value\n```\n")
		}
		if cfg.NoteEvery > 0 && n%cfg.NoteEvery == 0 {
			fmt.Fprintf(&b, "\n<!-- notes: Note for slide %d -->\n", n)
		}
	}
	return b.String()
}

// WriteDeck writes a generated deck to dir/name and returns its path.
func WriteDeck(t *testing.T, dir, name string, cfg DeckConfig) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Markdown(cfg)), 0o644); err != nil {
		t.Fatalf("failed to write deck: %v", err)
	}
	return path
}

// FakeClock is a manually advanced wall clock.
type FakeClock struct {
	now time.Time
}

// NewFakeClock starts at a fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
