package ui

import (
	"errors"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/podium/pkg/deck"
)

// chrome is the terminal's rendition of the deck's visual elements. The
// controller writes to it through the sink adapters below and View reads
// it back. It is shared by pointer so copies of the Model see one state.
type chrome struct {
	active       []bool
	counter      string
	progress     float64
	prevDisabled bool
	nextDisabled bool
}

func newChrome(total int) *chrome {
	return &chrome{active: make([]bool, total)}
}

// activeIndex returns the slide marked active, or -1.
func (c *chrome) activeIndex() int {
	for i, a := range c.active {
		if a {
			return i
		}
	}
	return -1
}

type slideSink struct{ c *chrome }

func (s slideSink) SetActive(index int, active bool) {
	if index >= 0 && index < len(s.c.active) {
		s.c.active[index] = active
	}
}

type counterSink struct{ c *chrome }

func (s counterSink) SetText(text string) { s.c.counter = text }

type progressSink struct{ c *chrome }

func (s progressSink) SetWidthPercent(percent float64) { s.c.progress = percent }

type buttonSink struct{ disabled *bool }

func (s buttonSink) SetDisabled(disabled bool) { *s.disabled = disabled }

// surface wires the chrome into a deck.Surface. Hidden elements stay nil
// so the display skips them.
func (c *chrome) surface(hideCounter, hideProgress, hideButtons bool) deck.Surface {
	s := deck.Surface{Slides: slideSink{c}}
	if !hideCounter {
		s.Counter = counterSink{c}
	}
	if !hideProgress {
		s.Progress = progressSink{c}
	}
	if !hideButtons {
		s.Prev = buttonSink{&c.prevDisabled}
		s.Next = buttonSink{&c.nextDisabled}
	}
	return s
}

// ErrAltScreenUnavailable is returned when fullscreen is requested on an
// output that cannot switch screens.
var ErrAltScreenUnavailable = errors.New("alternate screen not available on this output")

// altScreen implements deck.Fullscreen on top of the terminal's alternate
// screen. Switching is a bubbletea command, so requests queue commands
// that the Model hands back from Update.
type altScreen struct {
	active    bool
	available bool
	pending   []tea.Cmd
}

func (s *altScreen) Active() bool { return s.active }

func (s *altScreen) Request() error {
	if !s.available {
		return ErrAltScreenUnavailable
	}
	s.active = true
	s.pending = append(s.pending, tea.EnterAltScreen)
	return nil
}

func (s *altScreen) Exit() error {
	s.active = false
	s.pending = append(s.pending, tea.ExitAltScreen)
	return nil
}

func (s *altScreen) drain() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}

// statusLine is the footer message slot. It doubles as the io.Writer
// behind the controller's logger so logged failures reach the screen.
type statusLine struct {
	mu      sync.Mutex
	text    string
	isError bool
}

func (s *statusLine) Write(p []byte) (int, error) {
	s.set(strings.TrimSpace(string(p)), true)
	return len(p), nil
}

func (s *statusLine) set(text string, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text, s.isError = text, isError
}

func (s *statusLine) get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.isError
}
