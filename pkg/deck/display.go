package deck

import "fmt"

// Display is the visual state derived from the cursor.
type Display struct {
	Active          int
	Counter         string
	ProgressPercent float64
	PrevDisabled    bool
	NextDisabled    bool
}

// Project derives the display state for cursor within a deck of total
// slides. It is pure; total must be positive.
func Project(cursor, total int) Display {
	return Display{
		Active:          cursor,
		Counter:         fmt.Sprintf("%d / %d", cursor+1, total),
		ProgressPercent: float64(cursor+1) / float64(total) * 100,
		PrevDisabled:    cursor == 0,
		NextDisabled:    cursor == total-1,
	}
}

// SlideSink receives the active flag of every slide.
type SlideSink interface {
	SetActive(index int, active bool)
}

// TextSink receives counter text.
type TextSink interface {
	SetText(text string)
}

// WidthSink receives the progress bar width as a percentage.
type WidthSink interface {
	SetWidthPercent(percent float64)
}

// ButtonSink receives a navigation button's disabled flag.
type ButtonSink interface {
	SetDisabled(disabled bool)
}

// Surface is the set of optional visual elements the display writes to.
// Any field may be nil; absent elements are skipped.
type Surface struct {
	Slides   SlideSink
	Counter  TextSink
	Progress WidthSink
	Prev     ButtonSink
	Next     ButtonSink
}

// Apply writes d to every present element. Exactly one slide (d.Active)
// is marked active.
func (s Surface) Apply(d Display, total int) {
	if s.Slides != nil {
		for i := 0; i < total; i++ {
			s.Slides.SetActive(i, i == d.Active)
		}
	}
	if s.Counter != nil {
		s.Counter.SetText(d.Counter)
	}
	if s.Progress != nil {
		s.Progress.SetWidthPercent(d.ProgressPercent)
	}
	if s.Prev != nil {
		s.Prev.SetDisabled(d.PrevDisabled)
	}
	if s.Next != nil {
		s.Next.SetDisabled(d.NextDisabled)
	}
}
