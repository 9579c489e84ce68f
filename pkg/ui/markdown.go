package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/podium/pkg/debug"
	"github.com/vanderheijden86/podium/pkg/metrics"
)

// MarkdownRenderer renders slide bodies with glamour and caches the result
// per source for the current wrap width.
type MarkdownRenderer struct {
	style string
	width int
	tr    *glamour.TermRenderer
	cache map[string]string
}

// NewMarkdownRenderer creates a renderer wrapping at width. style is a
// glamour standard style name ("dark", "light", "notty", ...) or "auto".
func NewMarkdownRenderer(width int, style string) *MarkdownRenderer {
	r := &MarkdownRenderer{style: style}
	r.SetWidth(width)
	return r
}

// SetWidth rebuilds the renderer when the wrap width changes.
func (r *MarkdownRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	if r.tr != nil && width == r.width {
		return
	}
	r.width = width
	r.cache = make(map[string]string)

	styleOpt := glamour.WithAutoStyle()
	if r.style != "" && r.style != "auto" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		debug.Log("markdown: renderer init failed (style %q): %v", r.style, err)
		tr = nil
	}
	r.tr = tr
}

// Width returns the current wrap width.
func (r *MarkdownRenderer) Width() int {
	return r.width
}

// Render returns styled terminal output for md. Without a working glamour
// renderer the source is returned unchanged.
func (r *MarkdownRenderer) Render(md string) string {
	if out, ok := r.cache[md]; ok {
		metrics.SlideCache.Hit()
		return out
	}
	metrics.SlideCache.Miss()
	defer metrics.Timer(metrics.MarkdownRender)()

	out := md
	if r.tr != nil {
		rendered, err := r.tr.Render(md)
		if err != nil {
			debug.Log("markdown: render failed: %v", err)
		} else {
			// glamour pads with blank lines top and bottom
			out = strings.Trim(rendered, "\n")
		}
	}
	r.cache[md] = out
	return out
}
