package deck

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/podium/pkg/metrics"
)

// Notes maps 1-based slide numbers to speaker notes. It is populated at
// startup and treated as read-only afterwards.
type Notes map[int]string

// Lookup returns the note for 1-based slide number n. Blank notes count as
// absent.
func (n Notes) Lookup(number int) (string, bool) {
	note, ok := n[number]
	if !ok || strings.TrimSpace(note) == "" {
		return "", false
	}
	return note, true
}

// Merge returns a new map with other's entries layered over n.
func (n Notes) Merge(other Notes) Notes {
	out := make(Notes, len(n)+len(other))
	for k, v := range n {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// LoadNotesFile reads a YAML sidecar of the form:
//
//	1: "Welcome everyone."
//	2: "Review the agenda."
func LoadNotesFile(path string) (Notes, error) {
	defer metrics.Timer(metrics.NotesLoad)()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading notes: %w", err)
	}
	return ParseNotes(data)
}

// ParseNotes decodes sidecar YAML notes. Keys must be positive integers.
func ParseNotes(data []byte) (Notes, error) {
	raw := make(map[int]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing notes: %w", err)
	}
	notes := make(Notes, len(raw))
	for k, v := range raw {
		if k < 1 {
			return nil, fmt.Errorf("parsing notes: slide number %d out of range", k)
		}
		notes[k] = strings.TrimSpace(v)
	}
	return notes, nil
}
