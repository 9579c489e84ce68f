package deck

import "math"

// Key names understood by the router. They follow the DOM KeyboardEvent
// naming so hosts only need to translate their own key strings once.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeySpace      = " "
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEscape     = "Escape"
)

// DefaultSwipeThreshold is the minimum horizontal travel, in points, for a
// gesture to count as a swipe.
const DefaultSwipeThreshold = 50.0

// KeyEvent is a key-down with its modifier state.
type KeyEvent struct {
	Key  string
	Ctrl bool
	Meta bool
}

// PointerEvent is a pointer click with its modifier state.
type PointerEvent struct {
	X, Y float64
	Ctrl bool
	Meta bool
}

// Route is the router's verdict for one event. PreventDefault tells the
// host to suppress its own default handling (scrolling, menus, selection).
type Route struct {
	Command        Command
	OK             bool
	PreventDefault bool
}

// SwipeDirection classifies a touch gesture.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeAdvance
	SwipeRetreat
)

// ClassifySwipe decides what a gesture means. dx and dy are start minus
// end, so dragging leftwards gives a positive dx. Vertical-dominant and
// sub-threshold gestures are ignored.
func ClassifySwipe(dx, dy, threshold float64) SwipeDirection {
	if math.Abs(dx) <= math.Abs(dy) {
		return SwipeNone
	}
	if math.Abs(dx) <= threshold {
		return SwipeNone
	}
	if dx > 0 {
		return SwipeAdvance
	}
	return SwipeRetreat
}

// Router maps raw host events to commands. It holds the only input state
// there is: the start point of an in-flight touch.
type Router struct {
	total     int
	threshold float64

	tracking       bool
	startX, startY float64
}

// NewRouter creates a router for a deck of total slides. A non-positive
// threshold selects DefaultSwipeThreshold.
func NewRouter(total int, threshold float64) *Router {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Router{total: total, threshold: threshold}
}

// Threshold returns the swipe threshold in points.
func (r *Router) Threshold() float64 {
	return r.threshold
}

// Key routes a key-down event.
func (r *Router) Key(ev KeyEvent) Route {
	if ev.Ctrl || ev.Meta {
		switch ev.Key {
		case "n":
			return Route{Command: ShowNotes, OK: true, PreventDefault: true}
		case "o":
			return Route{Command: ShowOverview, OK: true, PreventDefault: true}
		}
	}

	switch ev.Key {
	case KeyArrowRight, KeySpace:
		return Route{Command: Advance, OK: true, PreventDefault: true}
	case KeyArrowLeft:
		return Route{Command: Retreat, OK: true, PreventDefault: true}
	case KeyHome:
		return Route{Command: JumpTo(0), OK: true, PreventDefault: true}
	case KeyEnd:
		return Route{Command: JumpTo(r.total - 1), OK: true, PreventDefault: true}
	case KeyEscape:
		return Route{Command: ToggleFullscreen, OK: true, PreventDefault: true}
	}
	return Route{}
}

// TouchStart records the start of a gesture.
func (r *Router) TouchStart(x, y float64) {
	r.tracking = true
	r.startX, r.startY = x, y
}

// TouchEnd completes a gesture and resets tracking. An end without a
// matching start routes nothing.
func (r *Router) TouchEnd(x, y float64) Route {
	if !r.tracking {
		return Route{}
	}
	dx, dy := r.startX-x, r.startY-y
	r.tracking = false
	r.startX, r.startY = 0, 0

	switch ClassifySwipe(dx, dy, r.threshold) {
	case SwipeAdvance:
		return Route{Command: Advance, OK: true}
	case SwipeRetreat:
		return Route{Command: Retreat, OK: true}
	}
	return Route{}
}

// DoubleClick routes a pointer double-click. Only Ctrl/Meta chords toggle
// the presenter timer.
func (r *Router) DoubleClick(ev PointerEvent) Route {
	if ev.Ctrl || ev.Meta {
		return Route{Command: ToggleTimer, OK: true}
	}
	return Route{}
}

// ContextMenu is always suppressed in presentation mode.
func (r *Router) ContextMenu() Route {
	return Route{PreventDefault: true}
}

// SelectStart is always suppressed in presentation mode.
func (r *Router) SelectStart() Route {
	return Route{PreventDefault: true}
}
