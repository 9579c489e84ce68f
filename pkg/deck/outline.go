package deck

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// OutlineSlide is one row of the machine-readable outline.
type OutlineSlide struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	HasTitle bool   `json:"has_title"`
	HasNotes bool   `json:"has_notes"`
}

// Outline is the --outline output.
type Outline struct {
	Source string         `json:"source,omitempty"`
	Total  int            `json:"total"`
	Slides []OutlineSlide `json:"slides"`
}

// BuildOutline summarizes the registry and note coverage.
func BuildOutline(source string, reg *Registry, notes Notes) Outline {
	out := Outline{Source: source, Total: reg.Len()}
	for _, s := range reg.Slides() {
		_, hasNotes := notes.Lookup(s.Index + 1)
		out.Slides = append(out.Slides, OutlineSlide{
			Number:   s.Index + 1,
			Title:    reg.DisplayTitle(s.Index),
			HasTitle: s.Title != "",
			HasNotes: hasNotes,
		})
	}
	return out
}

// WriteOutlineJSON writes the outline as indented JSON.
func WriteOutlineJSON(w io.Writer, o Outline) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return nil
}
