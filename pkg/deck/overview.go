package deck

import (
	"fmt"
	"strings"
)

// CurrentNote returns the speaker note for the slide under the cursor.
func (c *Controller) CurrentNote() (string, bool) {
	return c.notes.Lookup(c.cursor + 1)
}

// NotesMessage formats the note dialog text for the current slide. It
// reports false when the slide has no note.
func (c *Controller) NotesMessage() (string, bool) {
	note, ok := c.CurrentNote()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Slide %d Notes:\n\n%s", c.cursor+1, note), true
}

// ShowPresenterNotes alerts the current slide's note. Slides without a
// note show nothing.
func (c *Controller) ShowPresenterNotes() {
	msg, ok := c.NotesMessage()
	if !ok || c.prompter == nil {
		return
	}
	c.prompter.Alert(msg)
}

// OverviewListing returns one "N. Title" line per slide.
func (c *Controller) OverviewListing() string {
	lines := make([]string, c.Total())
	for i := range lines {
		lines[i] = fmt.Sprintf("%d. %s", i+1, c.registry.DisplayTitle(i))
	}
	return strings.Join(lines, "\n")
}

// OverviewMessage is the full overview prompt text.
func (c *Controller) OverviewMessage() string {
	return "Slide Overview:\n\n" + c.OverviewListing() + "\n\nEnter slide number to jump to:"
}

// ShowSlideOverview prompts for a slide number and jumps to it. Cancelled,
// unparseable or out-of-range input is ignored.
func (c *Controller) ShowSlideOverview() {
	if c.prompter == nil {
		return
	}
	input, ok := c.prompter.Prompt(c.OverviewMessage())
	if !ok {
		return
	}
	c.JumpFromInput(input)
}

// JumpFromInput parses input as a 1-based slide number and jumps there.
// It reports whether the cursor moved.
func (c *Controller) JumpFromInput(input string) bool {
	n, ok := ParseSlideNumber(input)
	if !ok {
		return false
	}
	return c.GoToSlide(n - 1)
}

// ParseSlideNumber reads a leading integer from s. Leading whitespace and
// a sign are accepted and anything after the digits is ignored, so "4",
// " 4" and "4." all give 4.
func ParseSlideNumber(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	if s == "" {
		return 0, false
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	// Leading zeros don't count toward the length cap.
	unpadded := strings.TrimLeft(s, "0")
	padded := unpadded != s
	s = unpadded

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		// Anything this long is out of range for any deck.
		if digits > 9 {
			return 0, false
		}
	}
	if digits == 0 && !padded {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
