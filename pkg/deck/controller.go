package deck

import (
	"io"
	"log"

	"github.com/vanderheijden86/podium/pkg/debug"
)

// Options wires a Controller to its collaborators. Every field is
// optional except Registry.
type Options struct {
	Registry   *Registry
	Notes      Notes
	Surface    Surface
	Timer      *PresenterTimer
	Fullscreen Fullscreen
	Prompter   Prompter
	Logger     *log.Logger
}

// Controller owns the navigation cursor and every piece of session state.
// It is built once per session and is not safe for concurrent use; hosts
// deliver events one at a time.
type Controller struct {
	registry   *Registry
	notes      Notes
	surface    Surface
	timer      *PresenterTimer
	fullscreen Fullscreen
	prompter   Prompter
	logger     *log.Logger

	cursor int
}

// NewController creates a controller positioned on the first slide and
// renders the initial display.
func NewController(opts Options) (*Controller, error) {
	if opts.Registry.Len() == 0 {
		return nil, ErrEmptyDeck
	}
	c := &Controller{
		registry:   opts.Registry,
		notes:      opts.Notes,
		surface:    opts.Surface,
		timer:      opts.Timer,
		fullscreen: opts.Fullscreen,
		prompter:   opts.Prompter,
		logger:     opts.Logger,
	}
	if c.notes == nil {
		c.notes = Notes{}
	}
	if c.timer == nil {
		c.timer = NewPresenterTimer()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	c.refresh()
	return c, nil
}

// SetLogger sets the logger used for non-fatal failures.
func (c *Controller) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// SetPrompter replaces the dialog surface.
func (c *Controller) SetPrompter(p Prompter) {
	c.prompter = p
}

// Registry returns the slide registry.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Notes returns the presenter notes.
func (c *Controller) Notes() Notes {
	return c.notes
}

// Timer returns the presenter timer.
func (c *Controller) Timer() *PresenterTimer {
	return c.timer
}

// Current returns the 0-based cursor.
func (c *Controller) Current() int {
	return c.cursor
}

// Total returns the number of slides.
func (c *Controller) Total() int {
	return c.registry.Len()
}

// CurrentSlide returns the slide under the cursor.
func (c *Controller) CurrentSlide() Slide {
	s, _ := c.registry.At(c.cursor)
	return s
}

// Display returns the projection of the current cursor.
func (c *Controller) Display() Display {
	return Project(c.cursor, c.Total())
}

// ChangeSlide moves the cursor by direction when the result stays inside
// the deck. Out-of-range requests are ignored. It reports whether the
// cursor moved.
func (c *Controller) ChangeSlide(direction int) bool {
	return c.GoToSlide(c.cursor + direction)
}

// GoToSlide moves the cursor to 0-based index n when it is inside the
// deck. Out-of-range requests are ignored.
func (c *Controller) GoToSlide(n int) bool {
	if n < 0 || n >= c.Total() {
		debug.Log("navigation to %d ignored (total %d)", n, c.Total())
		return false
	}
	c.cursor = n
	c.refresh()
	return true
}

func (c *Controller) refresh() {
	c.surface.Apply(c.Display(), c.Total())
}

// Dispatch runs the handler for cmd.
func (c *Controller) Dispatch(cmd Command) {
	debug.Log("dispatch %s", cmd)
	switch cmd.Kind {
	case CmdAdvance:
		c.ChangeSlide(1)
	case CmdRetreat:
		c.ChangeSlide(-1)
	case CmdJumpTo:
		c.GoToSlide(cmd.Target)
	case CmdToggleFullscreen:
		c.ToggleFullscreen()
	case CmdToggleTimer:
		c.timer.Toggle()
	case CmdShowNotes:
		c.ShowPresenterNotes()
	case CmdShowOverview:
		c.ShowSlideOverview()
	}
}

// ToggleFullscreen enters presentation mode when inactive and leaves it
// otherwise. Failures are logged and swallowed.
func (c *Controller) ToggleFullscreen() {
	if c.fullscreen == nil {
		return
	}
	if !c.fullscreen.Active() {
		if err := c.fullscreen.Request(); err != nil {
			c.logger.Printf("Error attempting to enable fullscreen: %v", err)
			debug.Log("fullscreen request failed: %v", err)
		}
		return
	}
	if err := c.fullscreen.Exit(); err != nil {
		c.logger.Printf("Error attempting to exit fullscreen: %v", err)
		debug.Log("fullscreen exit failed: %v", err)
	}
}
