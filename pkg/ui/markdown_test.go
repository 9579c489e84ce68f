package ui

import (
	"strings"
	"testing"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	r := NewMarkdownRenderer(60, "notty")

	out := r.Render("# Hello\n\nSome **bold** text.")
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "bold") {
		t.Errorf("rendered output lost content:\n%s", out)
	}
	if strings.HasPrefix(out, "\n") || strings.HasSuffix(out, "\n") {
		t.Errorf("surrounding blank lines not trimmed: %q", out)
	}
	if again := r.Render("# Hello\n\nSome **bold** text."); again != out {
		t.Error("cached render differs")
	}
}

func TestMarkdownRenderer_Width(t *testing.T) {
	r := NewMarkdownRenderer(5, "notty")
	if r.Width() != 20 {
		t.Errorf("width below minimum = %d, want 20", r.Width())
	}

	r.Render("cached")
	r.SetWidth(80)
	if r.Width() != 80 {
		t.Errorf("Width = %d", r.Width())
	}
	if len(r.cache) != 0 {
		t.Error("width change should drop the cache")
	}
}

func TestMarkdownRenderer_Wraps(t *testing.T) {
	r := NewMarkdownRenderer(30, "notty")
	out := r.Render(strings.Repeat("word ", 40))
	if lines := strings.Split(out, "\n"); len(lines) < 2 {
		t.Errorf("long paragraph should wrap at 30 cells:\n%s", out)
	}
}

func TestMarkdownRenderer_BadStyleFallsBack(t *testing.T) {
	r := NewMarkdownRenderer(40, "no-such-style")
	if got := r.Render("plain text"); !strings.Contains(got, "plain text") {
		t.Errorf("fallback render = %q", got)
	}
}
