// Package prompt implements the presenter's blocking dialogs with huh
// forms. It backs the plain line-mode presenter, where there is no
// bubbletea program to host a modal.
package prompt

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/vanderheijden86/podium/pkg/debug"
)

// HuhPrompter shows alerts as huh notes and prompts as huh inputs.
type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
	theme      *huh.Theme
}

// Option configures a HuhPrompter.
type Option func(*HuhPrompter)

// WithInput sets where answers are read from.
func WithInput(r io.Reader) Option {
	return func(p *HuhPrompter) { p.in = r }
}

// WithOutput sets where forms are drawn.
func WithOutput(w io.Writer) Option {
	return func(p *HuhPrompter) { p.out = w }
}

// WithAccessible forces accessible (plain line) mode.
func WithAccessible(on bool) Option {
	return func(p *HuhPrompter) { p.accessible = on }
}

// New creates a prompter on stdin/stdout. Accessible mode is chosen
// automatically when stdin is not a terminal.
func New(opts ...Option) *HuhPrompter {
	p := &HuhPrompter{
		in:         os.Stdin,
		out:        os.Stdout,
		accessible: !isTerminal(),
		theme:      huh.ThemeDracula(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (p *HuhPrompter) newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).
		WithTheme(p.theme).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(false)
	if p.accessible {
		form = form.WithAccessible(true)
	}
	return form
}

// Alert shows message and returns once it is dismissed.
func (p *HuhPrompter) Alert(message string) {
	title, body := SplitMessage(message)
	form := p.newForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(body).
				Next(true).
				NextLabel("OK"),
		),
	)
	if err := form.Run(); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		debug.Log("prompt: alert failed: %v", err)
	}
}

// Prompt asks for one line of text. It reports false when the user
// aborted or the form could not run.
func (p *HuhPrompter) Prompt(message string) (string, bool) {
	title, body := SplitMessage(message)
	var answer string
	form := p.newForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(body).
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			debug.Log("prompt: input failed: %v", err)
		}
		return "", false
	}
	return answer, true
}

// SplitMessage turns a dialog message into a title (its first line) and
// a body (everything after the blank line that follows it).
func SplitMessage(message string) (title, body string) {
	message = strings.TrimSpace(message)
	title, body, _ = strings.Cut(message, "\n")
	return strings.TrimSpace(title), strings.TrimSpace(body)
}
