package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/podium/pkg/config"
	"github.com/vanderheijden86/podium/pkg/deck"
	"github.com/vanderheijden86/podium/pkg/testutil"
)

func newTestModel(t *testing.T, slides int, mutate func(*Options)) Model {
	t.Helper()

	cfg := testutil.DefaultDeckConfig()
	cfg.Slides = slides
	reg, notes, err := deck.Parse([]byte(testutil.Markdown(cfg)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	clock := testutil.NewFakeClock()
	opts := Options{
		Config:    config.DefaultConfig(),
		Clock:     clock.Now,
		Clipboard: func(string) error { return nil },
	}
	opts.Config.UI.MarkdownStyle = "notty"
	if mutate != nil {
		mutate(&opts)
	}

	m, err := NewModel(deck.Bundle{Registry: reg, Notes: notes}, opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_EmptyDeck(t *testing.T) {
	_, err := NewModel(deck.Bundle{}, Options{})
	if !errors.Is(err, deck.ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestView_BeforeWindowSize(t *testing.T) {
	cfg := testutil.DefaultDeckConfig()
	reg, notes, err := deck.Parse([]byte(testutil.Markdown(cfg)))
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(deck.Bundle{Registry: reg, Notes: notes}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}
}

func TestKeyNavigation(t *testing.T) {
	m := newTestModel(t, 16, nil)

	steps := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"right advances", tea.KeyMsg{Type: tea.KeyRight}, 1},
		{"space advances", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, 2},
		{"left retreats", tea.KeyMsg{Type: tea.KeyLeft}, 1},
		{"end jumps to last", tea.KeyMsg{Type: tea.KeyEnd}, 15},
		{"right at end saturates", tea.KeyMsg{Type: tea.KeyRight}, 15},
		{"home jumps to first", tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"left at start saturates", tea.KeyMsg{Type: tea.KeyLeft}, 0},
		{"unmapped key ignored", runes("x"), 0},
	}
	for _, s := range steps {
		m, _ = send(m, s.msg)
		if got := m.ctrl.Current(); got != s.want {
			t.Fatalf("%s: cursor = %d, want %d", s.name, got, s.want)
		}
		if got := m.chrome.activeIndex(); got != s.want {
			t.Fatalf("%s: active slide = %d, want %d", s.name, got, s.want)
		}
	}
}

func TestChromeTracksCursor(t *testing.T) {
	m := newTestModel(t, 4, nil)

	if m.chrome.counter != "1 / 4" || !m.chrome.prevDisabled || m.chrome.nextDisabled {
		t.Fatalf("initial chrome = %+v", *m.chrome)
	}
	if m.chrome.progress != 25 {
		t.Errorf("initial progress = %v, want 25", m.chrome.progress)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.chrome.counter != "4 / 4" || m.chrome.prevDisabled || !m.chrome.nextDisabled {
		t.Fatalf("chrome at end = %+v", *m.chrome)
	}
	if m.chrome.progress != 100 {
		t.Errorf("progress at end = %v, want 100", m.chrome.progress)
	}

	view := m.View()
	if !strings.Contains(view, "4 / 4") {
		t.Errorf("view missing counter:\n%s", view)
	}
	if !strings.Contains(view, "Topic 4") {
		t.Errorf("view missing slide title:\n%s", view)
	}
}

func TestHiddenChrome(t *testing.T) {
	m := newTestModel(t, 4, func(o *Options) {
		o.Config.UI.HideCounter = true
		o.Config.UI.HideButtons = true
	})
	view := m.View()
	if strings.Contains(view, "1 / 4") {
		t.Errorf("hidden counter rendered:\n%s", view)
	}
	if strings.Contains(view, "Prev") || strings.Contains(view, "Next") {
		t.Errorf("hidden buttons rendered:\n%s", view)
	}
}

func TestNotesModal(t *testing.T) {
	m := newTestModel(t, 4, nil)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.modal != modalNotes {
		t.Fatalf("expected notes modal, got %v", m.modal)
	}
	view := m.View()
	if !strings.Contains(view, "Slide 2 Notes:") || !strings.Contains(view, "Note for slide 2") {
		t.Errorf("notes modal content missing:\n%s", view)
	}

	// Navigation keys only dismiss while the modal is open.
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.modal != modalNone {
		t.Fatalf("any key should close the notes modal")
	}
	if m.ctrl.Current() != 1 {
		t.Errorf("dismiss key moved the cursor to %d", m.ctrl.Current())
	}
}

func TestNotesModal_AltN(t *testing.T) {
	m := newTestModel(t, 4, nil)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n"), Alt: true})
	if m.modal != modalNotes {
		t.Fatalf("alt+n should open notes, got %v", m.modal)
	}
}

func TestNotesModal_NoNote(t *testing.T) {
	reg, notes, err := deck.Parse([]byte("# One\n\n---\n\n# Two\n"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(deck.Bundle{Registry: reg, Notes: notes}, Options{Config: config.DefaultConfig()})
	if err != nil {
		t.Fatal(err)
	}
	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.modal != modalNone {
		t.Errorf("slide without a note should not open a modal")
	}
}

func TestOverviewModal_Jump(t *testing.T) {
	m := newTestModel(t, 8, nil)

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.modal != modalOverview {
		t.Fatalf("expected overview modal, got %v", m.modal)
	}
	if cmd == nil {
		t.Error("expected cursor blink command")
	}
	view := m.View()
	for _, want := range []string{"Slide Overview:", "1. Topic 1", "8. Topic 8"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview missing %q:\n%s", want, view)
		}
	}

	m, _ = send(m, runes("4"))
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal != modalNone {
		t.Fatalf("enter should close the overview")
	}
	if m.ctrl.Current() != 3 {
		t.Errorf("cursor = %d, want 3", m.ctrl.Current())
	}
}

func TestOverviewModal_IgnoredInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		final tea.KeyType
	}{
		{"out of range", "99", tea.KeyEnter},
		{"zero", "0", tea.KeyEnter},
		{"not a number", "abc", tea.KeyEnter},
		{"empty", "", tea.KeyEnter},
		{"cancelled", "4", tea.KeyEsc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 8, nil)
			m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
			m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlO})
			if tt.input != "" {
				m, _ = send(m, runes(tt.input))
			}
			m, _ = send(m, tea.KeyMsg{Type: tt.final})
			if m.modal != modalNone {
				t.Fatalf("overview still open")
			}
			if m.ctrl.Current() != 1 {
				t.Errorf("cursor moved to %d", m.ctrl.Current())
			}
		})
	}
}

func TestMouseSwipe(t *testing.T) {
	m := newTestModel(t, 4, nil)

	press := func(x int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}
	release := func(x int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	}

	// 10 cells * 8 points is past the 50 point threshold.
	m, _ = send(m, press(30))
	m, _ = send(m, release(20))
	if m.ctrl.Current() != 1 {
		t.Fatalf("leftward drag should advance, cursor = %d", m.ctrl.Current())
	}

	m, _ = send(m, press(20))
	m, _ = send(m, release(30))
	if m.ctrl.Current() != 0 {
		t.Fatalf("rightward drag should retreat, cursor = %d", m.ctrl.Current())
	}

	// 5 cells * 8 = 40 points stays under the threshold.
	m, _ = send(m, press(30))
	m, _ = send(m, release(25))
	if m.ctrl.Current() != 0 {
		t.Fatalf("short drag should not navigate, cursor = %d", m.ctrl.Current())
	}

	// A release without a press is ignored.
	m, _ = send(m, release(0))
	if m.ctrl.Current() != 0 {
		t.Fatalf("orphan release navigated, cursor = %d", m.ctrl.Current())
	}
}

func TestMouseRightClickAndDrag(t *testing.T) {
	m := newTestModel(t, 4, nil)

	m, cmd := send(m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if cmd != nil || m.ctrl.Current() != 0 {
		t.Fatalf("right click should be swallowed, cursor = %d", m.ctrl.Current())
	}

	// Motion while dragging leaves the swipe intact.
	m, _ = send(m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd = send(m, tea.MouseMsg{X: 25, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if cmd != nil || m.ctrl.Current() != 0 {
		t.Fatalf("drag motion should not navigate, cursor = %d", m.ctrl.Current())
	}
	m, _ = send(m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.ctrl.Current() != 1 {
		t.Errorf("swipe after drag motion should advance, cursor = %d", m.ctrl.Current())
	}
}

func TestCtrlDoubleClickTogglesTimer(t *testing.T) {
	clock := testutil.NewFakeClock()
	m := newTestModel(t, 4, func(o *Options) { o.Clock = clock.Now })

	click := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Ctrl: true}

	m, _ = send(m, click)
	if m.ctrl.Timer().Running() {
		t.Fatal("single click should not start the timer")
	}
	m, cmd := send(m, click)
	if !m.ctrl.Timer().Running() {
		t.Fatal("ctrl double-click should start the timer")
	}
	if cmd == nil {
		t.Fatal("expected a tick command after starting the timer")
	}
	if !strings.Contains(m.View(), "⏱ 00:00") {
		t.Errorf("badge should show 00:00 immediately:\n%s", m.View())
	}

	gen := m.ctrl.Timer().Generation()
	clock.Advance(65 * time.Second)
	m, cmd = send(m, timerTickMsg{gen: gen})
	if cmd == nil {
		t.Error("live tick should reschedule")
	}
	if !strings.Contains(m.View(), "⏱ 01:05") {
		t.Errorf("badge should show 01:05:\n%s", m.View())
	}

	m, _ = send(m, click)
	m, _ = send(m, click)
	if m.ctrl.Timer().Running() {
		t.Fatal("second double-click should stop the timer")
	}
	if strings.Contains(m.View(), "⏱") {
		t.Error("badge should be gone once stopped")
	}
	if _, cmd = send(m, timerTickMsg{gen: gen}); cmd != nil {
		t.Error("stale tick should not reschedule")
	}
}

func TestPlainDoubleClickIgnored(t *testing.T) {
	m := newTestModel(t, 4, nil)
	click := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = send(m, click)
	m, _ = send(m, click)
	if m.ctrl.Timer().Running() {
		t.Error("double-click without ctrl should not start the timer")
	}
}

func TestDoubleClickWindow(t *testing.T) {
	clock := testutil.NewFakeClock()
	m := newTestModel(t, 4, func(o *Options) { o.Clock = clock.Now })
	click := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Ctrl: true}

	m, _ = send(m, click)
	clock.Advance(time.Second)
	m, _ = send(m, click)
	if m.ctrl.Timer().Running() {
		t.Error("clicks a second apart are not a double-click")
	}
}

func TestEscTogglesAltScreen(t *testing.T) {
	m := newTestModel(t, 4, func(o *Options) { o.AltScreen = true })
	if !m.screen.Active() {
		t.Fatal("alt screen should start active when fullscreen is configured")
	}

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen.Active() {
		t.Error("esc should leave fullscreen")
	}
	if cmd == nil {
		t.Error("expected exit alt screen command")
	}

	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.screen.Active() {
		t.Error("esc should re-enter fullscreen")
	}
	if cmd == nil {
		t.Error("expected enter alt screen command")
	}
}

func TestEscWithoutAltScreenLogsFailure(t *testing.T) {
	m := newTestModel(t, 4, nil)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	text, isErr := m.status.get()
	if !isErr || !strings.Contains(text, "Error attempting to enable fullscreen") {
		t.Fatalf("status = %q (error=%v)", text, isErr)
	}
	if m.ctrl.Current() != 0 {
		t.Error("fullscreen failure should not move the cursor")
	}
	if !strings.Contains(m.View(), "Error attempting to enable fullscreen") {
		t.Error("failure should reach the footer")
	}
}

func TestKioskTicks(t *testing.T) {
	m := newTestModel(t, 3, func(o *Options) {
		o.Config.Kiosk.Enabled = true
		o.Config.Kiosk.Interval = 5 * time.Second
	})
	if m.Init() == nil {
		t.Fatal("kiosk mode should schedule a tick")
	}

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		var cmd tea.Cmd
		m, cmd = send(m, kioskTickMsg{})
		if cmd == nil {
			t.Fatalf("step %d: kiosk tick should reschedule", i)
		}
		if m.ctrl.Current() != w {
			t.Fatalf("step %d: cursor = %d, want %d", i, m.ctrl.Current(), w)
		}
	}

	m, _ = send(m, runes("?"))
	m, _ = send(m, kioskTickMsg{})
	if m.ctrl.Current() != 1 {
		t.Errorf("kiosk should pause while a dialog is open, cursor = %d", m.ctrl.Current())
	}
}

func TestKioskOffByDefault(t *testing.T) {
	m := newTestModel(t, 3, nil)
	if m.Init() != nil {
		t.Error("no watcher and no kiosk should mean no startup command")
	}
}

func TestCopyNote(t *testing.T) {
	var copied string
	m := newTestModel(t, 4, func(o *Options) {
		o.Clipboard = func(s string) error {
			copied = s
			return nil
		}
	})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Fatal("expected clipboard command")
	}
	m, _ = send(m, cmd())
	if copied != "Note for slide 2" {
		t.Errorf("copied %q", copied)
	}
	if text, _ := m.status.get(); text != "notes copied to clipboard" {
		t.Errorf("status = %q", text)
	}
}

func TestCopyNote_Failure(t *testing.T) {
	m := newTestModel(t, 4, func(o *Options) {
		o.Clipboard = func(string) error { return errors.New("no clipboard") }
	})
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	m, _ = send(m, cmd())
	text, isErr := m.status.get()
	if !isErr || !strings.Contains(text, "no clipboard") {
		t.Errorf("status = %q (error=%v)", text, isErr)
	}
}

func TestDeckChangedMsg(t *testing.T) {
	m := newTestModel(t, 4, nil)
	m, _ = send(m, DeckChangedMsg{Paths: []string{"/tmp/slides.md"}})
	if !strings.Contains(m.View(), DeckChangedStatus) {
		t.Errorf("footer should announce the change:\n%s", m.View())
	}
	if m.ctrl.Current() != 0 {
		t.Error("a change on disk should not move the cursor")
	}
}

func TestHelpAndQuit(t *testing.T) {
	m := newTestModel(t, 4, nil)

	m, _ = send(m, runes("?"))
	if m.modal != modalHelp {
		t.Fatalf("expected help modal")
	}
	if !strings.Contains(m.View(), "Keyboard & mouse") {
		t.Errorf("help view missing title")
	}
	m, _ = send(m, runes("x"))
	if m.modal != modalNone {
		t.Fatalf("any key should close help")
	}

	_, cmd := send(m, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q should return tea.Quit")
	}

	_, cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

func TestMouseIgnoredWhileModalOpen(t *testing.T) {
	m := newTestModel(t, 4, nil)
	m, _ = send(m, runes("?"))
	m, _ = send(m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.ctrl.Current() != 0 {
		t.Error("mouse should not navigate behind a dialog")
	}
}

func TestFooterShowsDeckName(t *testing.T) {
	m := newTestModel(t, 2, func(o *Options) { o.DeckPath = filepath.Join("decks", "talk.md") })
	if !strings.Contains(m.View(), "talk.md • ? help") {
		t.Errorf("footer missing deck name:\n%s", m.View())
	}
}
