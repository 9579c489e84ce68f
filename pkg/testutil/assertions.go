package testutil

import (
	"errors"
	"testing"
)

// RecordingSurface implements every display sink and remembers the last
// value written to each one.
type RecordingSurface struct {
	Active       map[int]bool
	Counter      string
	Progress     float64
	PrevDisabled bool
	NextDisabled bool
	Writes       int
}

// NewRecordingSurface returns an empty recorder.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{Active: make(map[int]bool)}
}

func (s *RecordingSurface) SetActive(index int, active bool) {
	s.Active[index] = active
	s.Writes++
}

func (s *RecordingSurface) SetText(text string) {
	s.Counter = text
	s.Writes++
}

func (s *RecordingSurface) SetWidthPercent(percent float64) {
	s.Progress = percent
	s.Writes++
}

// ButtonRecorder records one button's disabled flag.
type ButtonRecorder struct {
	Disabled bool
	Set      bool
}

func (b *ButtonRecorder) SetDisabled(disabled bool) {
	b.Disabled = disabled
	b.Set = true
}

// ActiveIndices returns every slide index currently marked active.
func (s *RecordingSurface) ActiveIndices() []int {
	var out []int
	for i := 0; i < len(s.Active); i++ {
		if s.Active[i] {
			out = append(out, i)
		}
	}
	return out
}

// AssertSingleActive verifies exactly one slide, want, is marked active.
func AssertSingleActive(t *testing.T, s *RecordingSurface, want int) {
	t.Helper()
	active := s.ActiveIndices()
	if len(active) != 1 {
		t.Fatalf("expected exactly one active slide, got %v", active)
	}
	if active[0] != want {
		t.Errorf("expected slide %d active, got %d", want, active[0])
	}
}

// ScriptedPrompter answers prompts from a queue and records alerts.
type ScriptedPrompter struct {
	Answers []string // consumed in order; "" with Cancel=true means cancelled
	Cancel  bool
	Alerts  []string
	Prompts []string
}

func (p *ScriptedPrompter) Alert(message string) {
	p.Alerts = append(p.Alerts, message)
}

func (p *ScriptedPrompter) Prompt(message string) (string, bool) {
	p.Prompts = append(p.Prompts, message)
	if p.Cancel || len(p.Answers) == 0 {
		return "", false
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, true
}

// ErrFullscreenDenied is what FakeFullscreen returns when told to fail.
var ErrFullscreenDenied = errors.New("fullscreen request denied")

// FakeFullscreen is a scriptable fullscreen capability.
type FakeFullscreen struct {
	On       bool
	Fail     bool
	Requests int
	Exits    int
}

func (f *FakeFullscreen) Active() bool { return f.On }

func (f *FakeFullscreen) Request() error {
	f.Requests++
	if f.Fail {
		return ErrFullscreenDenied
	}
	f.On = true
	return nil
}

func (f *FakeFullscreen) Exit() error {
	f.Exits++
	f.On = false
	return nil
}
