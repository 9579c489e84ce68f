package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vanderheijden86/podium/pkg/config"
	"github.com/vanderheijden86/podium/pkg/deck"
	"github.com/vanderheijden86/podium/pkg/prompt"
	"github.com/vanderheijden86/podium/pkg/ui"
)

const plainHelp = "commands: n next, p prev, home, end, notes, overview, timer, <number> jump, q quit"

// promptFactory builds the dialog capability on the command stream so
// both read the same input. A nil factory runs without dialogs.
type promptFactory func(in io.Reader) deck.Prompter

// plainPrompter reads dialog answers from the command stream unless stdin
// is a terminal, where huh needs the real file for raw mode.
func plainPrompter(in io.Reader) deck.Prompter {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return prompt.New()
	}
	return prompt.New(prompt.WithInput(in))
}

// lineReader hands out at most one line per Read, so a reader layered on
// top (huh wraps its input in a bufio.Scanner) never takes commands that
// follow the answer.
type lineReader struct {
	r *bufio.Reader
}

func (l lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}

// runPlain presents the deck one line-command at a time. Dialogs go
// through the prompter built by newPrompter; slides are rendered with the
// same markdown renderer as the full-screen presenter.
func runPlain(bundle deck.Bundle, cfg config.Config, in io.Reader, out io.Writer, newPrompter promptFactory) error {
	reader := bufio.NewReader(in)
	var prompter deck.Prompter
	if newPrompter != nil {
		prompter = newPrompter(lineReader{r: reader})
	}

	ctrl, err := deck.NewController(deck.Options{
		Registry: bundle.Registry,
		Notes:    bundle.Notes,
		Timer:    deck.NewPresenterTimer(deck.WithThresholds(cfg.Timer.Warning, cfg.Timer.Critical)),
		Prompter: prompter,
	})
	if err != nil {
		return err
	}
	router := deck.NewRouter(ctrl.Total(), cfg.Input.SwipeThreshold)
	renderer := ui.NewMarkdownRenderer(76, cfg.UI.MarkdownStyle)

	showSlide(out, ctrl, renderer)
	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading command: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		cmd := strings.ToLower(strings.TrimSpace(line))
		if cmd == "" && eof {
			fmt.Fprintln(out)
			return nil
		}

		before := ctrl.Current()
		switch cmd {
		case "q", "quit", "exit":
			return nil
		case "", "n", "next":
			ctrl.Dispatch(router.Key(deck.KeyEvent{Key: deck.KeyArrowRight}).Command)
		case "p", "prev":
			ctrl.Dispatch(router.Key(deck.KeyEvent{Key: deck.KeyArrowLeft}).Command)
		case "home":
			ctrl.Dispatch(router.Key(deck.KeyEvent{Key: deck.KeyHome}).Command)
		case "end":
			ctrl.Dispatch(router.Key(deck.KeyEvent{Key: deck.KeyEnd}).Command)
		case "notes":
			if _, ok := ctrl.CurrentNote(); !ok {
				fmt.Fprintln(out, "(no notes for this slide)")
			}
			ctrl.Dispatch(deck.ShowNotes)
		case "overview", "o":
			ctrl.Dispatch(deck.ShowOverview)
		case "timer", "t":
			ctrl.Dispatch(deck.ToggleTimer)
			if ctrl.Timer().Running() {
				fmt.Fprintln(out, "timer started")
			} else {
				fmt.Fprintln(out, "timer stopped")
			}
		case "?", "help", "h":
			fmt.Fprintln(out, plainHelp)
		default:
			if _, ok := deck.ParseSlideNumber(cmd); !ok {
				fmt.Fprintf(out, "unknown command %q\n%s\n", cmd, plainHelp)
				break
			}
			ctrl.JumpFromInput(cmd)
		}

		if ctrl.Current() != before {
			showSlide(out, ctrl, renderer)
		}
		if eof {
			return nil
		}
	}
}

// showSlide prints the status line and rendered body of the current slide.
func showSlide(out io.Writer, ctrl *deck.Controller, renderer *ui.MarkdownRenderer) {
	d := ctrl.Display()
	status := fmt.Sprintf("[%s] %s", d.Counter, ctrl.Registry().DisplayTitle(d.Active))
	if t := ctrl.Timer(); t.Running() {
		t.Tick(t.Generation())
		if b := t.Badge(); b != nil {
			status += "  ⏱ " + b.Text
		}
	}
	fmt.Fprintln(out, status)
	fmt.Fprintln(out, renderer.Render(ctrl.CurrentSlide().Body))
	fmt.Fprintln(out)
}
