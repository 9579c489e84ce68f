package deck

import (
	"fmt"
	"time"
)

// TickInterval is the presenter timer refresh cadence.
const TickInterval = time.Second

// Default escalation thresholds for the presenter timer.
const (
	DefaultTimerWarning  = 15 * time.Minute
	DefaultTimerCritical = 18 * time.Minute
)

// Tone is the timer badge background escalation level.
type Tone int

const (
	ToneNormal Tone = iota
	ToneWarning
	ToneCritical
)

func (t Tone) String() string {
	switch t {
	case ToneWarning:
		return "warning"
	case ToneCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Badge is the floating elapsed-time element. It exists only while the
// timer runs.
type Badge struct {
	Text string
	Tone Tone
}

// Clock returns the current wall-clock time.
type Clock func() time.Time

// PresenterTimer shows elapsed wall-clock time since it was started.
//
// The tick handle is a generation number: hosts schedule a repeating tick
// carrying the generation returned by Start, and Tick ignores anything but
// the live generation. Stop invalidates the generation, which cancels the
// tick without needing access to the host's scheduler.
type PresenterTimer struct {
	now      Clock
	warning  time.Duration
	critical time.Duration

	start      time.Time
	running    bool
	generation int
	badge      *Badge
}

// TimerOption configures a PresenterTimer.
type TimerOption func(*PresenterTimer)

// WithClock injects the wall clock.
func WithClock(now Clock) TimerOption {
	return func(t *PresenterTimer) {
		t.now = now
	}
}

// WithThresholds overrides the warning and critical thresholds.
// Non-positive values keep the defaults.
func WithThresholds(warning, critical time.Duration) TimerOption {
	return func(t *PresenterTimer) {
		if warning > 0 {
			t.warning = warning
		}
		if critical > 0 {
			t.critical = critical
		}
	}
}

// NewPresenterTimer creates a stopped timer.
func NewPresenterTimer(opts ...TimerOption) *PresenterTimer {
	t := &PresenterTimer{
		now:      time.Now,
		warning:  DefaultTimerWarning,
		critical: DefaultTimerCritical,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Running reports whether the timer is running.
func (t *PresenterTimer) Running() bool {
	return t.running
}

// Generation returns the live tick generation.
func (t *PresenterTimer) Generation() int {
	return t.generation
}

// Badge returns the current badge, or nil while stopped.
func (t *PresenterTimer) Badge() *Badge {
	if t.badge == nil {
		return nil
	}
	b := *t.badge
	return &b
}

// Start records the start time, creates the badge if absent and returns
// the tick generation the host should schedule. Starting a running timer
// restarts it.
func (t *PresenterTimer) Start() int {
	t.start = t.now()
	t.running = true
	t.generation++
	if t.badge == nil {
		t.badge = &Badge{}
	}
	t.badge.Tone = ToneNormal
	t.render()
	return t.generation
}

// Stop cancels the tick, removes the badge and clears the start time.
// Stopping a stopped timer is a no-op.
func (t *PresenterTimer) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.generation++
	t.badge = nil
	t.start = time.Time{}
}

// Toggle flips between running and stopped. It reports whether the timer
// is now running.
func (t *PresenterTimer) Toggle() bool {
	if t.running {
		t.Stop()
		return false
	}
	t.Start()
	return true
}

// Tick refreshes the badge if gen is the live generation. It reports
// whether the tick was accepted, i.e. whether the host should schedule
// the next one.
func (t *PresenterTimer) Tick(gen int) bool {
	if !t.running || gen != t.generation {
		return false
	}
	t.render()
	return true
}

// Elapsed returns whole seconds since start, or zero while stopped.
func (t *PresenterTimer) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	d := t.now().Sub(t.start)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

func (t *PresenterTimer) render() {
	if t.badge == nil {
		return
	}
	elapsed := t.Elapsed()
	t.badge.Text = FormatElapsed(elapsed)

	// Escalation only moves forward within a run.
	tone := ToneNormal
	switch {
	case elapsed >= t.critical:
		tone = ToneCritical
	case elapsed >= t.warning:
		tone = ToneWarning
	}
	if tone > t.badge.Tone {
		t.badge.Tone = tone
	}
}

// FormatElapsed renders d as zero-padded MM:SS. Minutes keep growing past
// 99 rather than wrapping into hours.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
