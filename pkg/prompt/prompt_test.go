package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vanderheijden86/podium/pkg/deck"
)

// Compile-time check that HuhPrompter satisfies the controller's dialog
// capability.
var _ deck.Prompter = (*HuhPrompter)(nil)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "notes",
			message:   "Slide 3 Notes:\n\nRemember the demo.",
			wantTitle: "Slide 3 Notes:",
			wantBody:  "Remember the demo.",
		},
		{
			name:      "overview",
			message:   "Slide Overview:\n\n1. Intro\n2. Slide 2\n\nEnter slide number to jump to:",
			wantTitle: "Slide Overview:",
			wantBody:  "1. Intro\n2. Slide 2\n\nEnter slide number to jump to:",
		},
		{
			name:      "single line",
			message:   "Hello",
			wantTitle: "Hello",
			wantBody:  "",
		},
		{
			name:      "surrounding whitespace",
			message:   "\n  Title  \n\n body \n",
			wantTitle: "Title",
			wantBody:  "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := SplitMessage(tt.message)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestNew_Options(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("")
	p := New(WithInput(in), WithOutput(&out), WithAccessible(true))

	if p.in != in {
		t.Error("expected custom input reader")
	}
	if p.out != &out {
		t.Error("expected custom output writer")
	}
	if !p.accessible {
		t.Error("expected accessible mode")
	}
	if p.theme == nil {
		t.Error("expected a theme")
	}
}

func TestPrompt_Accessible(t *testing.T) {
	var out bytes.Buffer
	p := New(
		WithInput(strings.NewReader("4\n")),
		WithOutput(&out),
		WithAccessible(true),
	)

	answer, ok := p.Prompt("Slide Overview:\n\n1. Intro\n\nEnter slide number to jump to:")
	if !ok {
		t.Fatal("expected prompt to succeed")
	}
	if answer != "4" {
		t.Errorf("answer = %q, want %q", answer, "4")
	}
}

func TestPromptDrivesController(t *testing.T) {
	reg, err := deck.NewRegistry([]deck.Slide{{Title: "A"}, {Title: "B"}, {Title: "C"}})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	p := New(WithInput(strings.NewReader("3\n")), WithOutput(&out), WithAccessible(true))
	ctrl, err := deck.NewController(deck.Options{Registry: reg, Prompter: p})
	if err != nil {
		t.Fatal(err)
	}

	ctrl.Dispatch(deck.ShowOverview)
	if ctrl.Current() != 2 {
		t.Errorf("cursor = %d, want 2", ctrl.Current())
	}
}
