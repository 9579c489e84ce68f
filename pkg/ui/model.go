// Package ui hosts a deck in a bubbletea program: it renders the current
// slide and chrome, and translates terminal keys and mouse events into
// the deck's input router.
package ui

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/podium/pkg/config"
	"github.com/vanderheijden86/podium/pkg/debug"
	"github.com/vanderheijden86/podium/pkg/deck"
	"github.com/vanderheijden86/podium/pkg/metrics"
	"github.com/vanderheijden86/podium/pkg/watcher"
)

// DeckChangedStatus is shown once the deck or notes file changes on disk.
const DeckChangedStatus = "deck changed on disk; restart to reload"

// Options configures a Model.
type Options struct {
	Config    config.Config
	DeckPath  string
	Watcher   *watcher.Watcher   // optional
	AltScreen bool               // output can switch to the alternate screen
	Clock     func() time.Time   // defaults to time.Now
	Clipboard func(string) error // defaults to the system clipboard
}

// timerTickMsg refreshes the presenter timer badge. gen is the timer
// generation it was scheduled for; stale generations are dropped.
type timerTickMsg struct{ gen int }

// kioskTickMsg drives unattended auto-advance.
type kioskTickMsg struct{}

// DeckChangedMsg is sent when a watched file changes on disk.
type DeckChangedMsg struct {
	Paths []string
}

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct{ err error }

func timerTickCmd(gen int) tea.Cmd {
	return tea.Tick(deck.TickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func kioskTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return kioskTickMsg{}
	})
}

// WatchFileCmd waits for the next change event and sends DeckChangedMsg.
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		ev := <-w.Changed()
		return DeckChangedMsg{Paths: ev.Paths}
	}
}

// pointerState remembers the last left press for double-click detection.
type pointerState struct {
	at       time.Time
	col, row int
	valid    bool
}

// Model is the bubbletea presenter.
type Model struct {
	ctrl     *deck.Controller
	router   *deck.Router
	chrome   *chrome
	screen   *altScreen
	status   *statusLine
	renderer *MarkdownRenderer
	progress progress.Model
	theme    Theme

	cfg      config.Config
	deckPath string
	watcher  *watcher.Watcher
	now      func() time.Time
	copyText func(string) error

	width  int
	height int
	ready  bool

	modal    modalKind
	notes    NotesModal
	overview OverviewModal
	pointer  pointerState
}

// NewModel builds the presenter for a loaded deck.
func NewModel(bundle deck.Bundle, opts Options) (Model, error) {
	cfg := opts.Config
	def := config.DefaultConfig()
	if cfg.Input.CellWidth <= 0 {
		cfg.Input.CellWidth = def.Input.CellWidth
	}
	if cfg.Input.CellHeight <= 0 {
		cfg.Input.CellHeight = def.Input.CellHeight
	}
	if cfg.Input.DoubleClick <= 0 {
		cfg.Input.DoubleClick = def.Input.DoubleClick
	}
	if cfg.Kiosk.Interval <= 0 {
		cfg.Kiosk.Interval = def.Kiosk.Interval
	}

	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	ch := newChrome(bundle.Registry.Len())
	status := &statusLine{}
	screen := &altScreen{
		available: opts.AltScreen,
		active:    opts.AltScreen && cfg.UI.Fullscreen,
	}

	ctrl, err := deck.NewController(deck.Options{
		Registry:   bundle.Registry,
		Notes:      bundle.Notes,
		Surface:    ch.surface(cfg.UI.HideCounter, cfg.UI.HideProgress, cfg.UI.HideButtons),
		Timer:      deck.NewPresenterTimer(deck.WithClock(now), deck.WithThresholds(cfg.Timer.Warning, cfg.Timer.Critical)),
		Fullscreen: screen,
		Logger:     log.New(status, "", 0),
	})
	if err != nil {
		return Model{}, err
	}

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 40

	return Model{
		ctrl:     ctrl,
		router:   deck.NewRouter(ctrl.Total(), cfg.Input.SwipeThreshold),
		chrome:   ch,
		screen:   screen,
		status:   status,
		renderer: NewMarkdownRenderer(76, cfg.UI.MarkdownStyle),
		progress: prog,
		theme:    DefaultTheme(lipgloss.DefaultRenderer()),
		cfg:      cfg,
		deckPath: opts.DeckPath,
		watcher:  opts.Watcher,
		now:      now,
		copyText: copyText,
		width:    80,
		height:   24,
	}, nil
}

// Controller exposes the deck controller.
func (m Model) Controller() *deck.Controller {
	return m.ctrl
}

// Init starts the file watch and, when enabled, the kiosk cadence.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, WatchFileCmd(m.watcher))
	}
	if m.cfg.Kiosk.Enabled {
		debug.Log("kiosk: auto-advance every %v", m.cfg.Kiosk.Interval)
		cmds = append(cmds, kioskTickCmd(m.cfg.Kiosk.Interval))
	}
	return tea.Batch(cmds...)
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.renderer.SetWidth(m.slideWidth())
		m.progress.Width = max(10, m.width/3)
		m.notes.SetSize(m.width, m.height)
		m.overview.SetSize(m.width, m.height)
		return m, nil

	case timerTickMsg:
		if m.ctrl.Timer().Tick(msg.gen) {
			return m, timerTickCmd(msg.gen)
		}
		return m, nil

	case kioskTickMsg:
		// Kiosk steps wait while a dialog is open.
		if m.modal == modalNone {
			m.ctrl.AutoAdvanceStep()
		}
		return m, kioskTickCmd(m.cfg.Kiosk.Interval)

	case DeckChangedMsg:
		debug.Log("deck changed: %v", msg.Paths)
		m.status.set(DeckChangedStatus, false)
		if m.watcher != nil {
			return m, WatchFileCmd(m.watcher)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.status.set("clipboard: "+msg.err.Error(), true)
		} else {
			m.status.set("notes copied to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and similar component messages
	if m.modal == modalOverview {
		var cmd tea.Cmd
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// An open dialog owns all input.
	switch m.modal {
	case modalNotes:
		m.notes, _ = m.notes.Update(msg)
		if m.notes.Result() != ModalPending {
			m.modal = modalNone
		}
		return m, nil
	case modalHelp:
		m.modal = modalNone
		return m, nil
	case modalOverview:
		var cmd tea.Cmd
		m.overview, cmd = m.overview.Update(msg)
		switch m.overview.Result() {
		case ModalConfirmed:
			m.modal = modalNone
			if !m.ctrl.JumpFromInput(m.overview.Value()) {
				debug.Log("overview: ignored input %q", m.overview.Value())
			}
			return m, nil
		case ModalCancelled:
			m.modal = modalNone
			return m, nil
		}
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.modal = modalHelp
		return m, nil
	case "ctrl+y":
		return m, m.copyNoteCmd()
	}

	ev, ok := keyEvent(msg)
	if !ok {
		return m, nil
	}
	return m.route(m.router.Key(ev))
}

// keyEvent translates a terminal key into the router's key vocabulary.
func keyEvent(msg tea.KeyMsg) (deck.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyRight:
		return deck.KeyEvent{Key: deck.KeyArrowRight, Meta: msg.Alt}, true
	case tea.KeyLeft:
		return deck.KeyEvent{Key: deck.KeyArrowLeft, Meta: msg.Alt}, true
	case tea.KeySpace:
		return deck.KeyEvent{Key: deck.KeySpace, Meta: msg.Alt}, true
	case tea.KeyHome:
		return deck.KeyEvent{Key: deck.KeyHome, Meta: msg.Alt}, true
	case tea.KeyEnd:
		return deck.KeyEvent{Key: deck.KeyEnd, Meta: msg.Alt}, true
	case tea.KeyEsc:
		return deck.KeyEvent{Key: deck.KeyEscape, Meta: msg.Alt}, true
	case tea.KeyCtrlN:
		return deck.KeyEvent{Key: "n", Ctrl: true}, true
	case tea.KeyCtrlO:
		return deck.KeyEvent{Key: "o", Ctrl: true}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return deck.KeyEvent{}, false
		}
		return deck.KeyEvent{Key: string(msg.Runes), Meta: msg.Alt}, true
	}
	return deck.KeyEvent{}, false
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.modal != modalNone {
		return m, nil
	}
	x := float64(msg.X * m.cfg.Input.CellWidth)
	y := float64(msg.Y * m.cfg.Input.CellHeight)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		now := m.now()
		double := m.pointer.valid &&
			now.Sub(m.pointer.at) <= m.cfg.Input.DoubleClick &&
			msg.X == m.pointer.col && msg.Y == m.pointer.row
		m.router.TouchStart(x, y)
		if double {
			m.pointer = pointerState{}
			return m.route(m.router.DoubleClick(deck.PointerEvent{X: x, Y: y, Ctrl: msg.Ctrl, Meta: msg.Alt}))
		}
		m.pointer = pointerState{at: now, col: msg.X, row: msg.Y, valid: true}

	case msg.Action == tea.MouseActionRelease:
		return m.route(m.router.TouchEnd(x, y))

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		return m.route(m.router.ContextMenu())

	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		// A drag would start a selection; it stays part of the gesture.
		return m.route(m.router.SelectStart())
	}
	return m, nil
}

// route runs a router verdict. Notes and overview open dialogs here
// instead of blocking inside the controller.
func (m Model) route(r deck.Route) (Model, tea.Cmd) {
	if !r.OK {
		return m, nil
	}

	switch r.Command.Kind {
	case deck.CmdShowNotes:
		if msg, ok := m.ctrl.NotesMessage(); ok {
			m.notes = NewNotesModal(msg, m.theme)
			m.notes.SetSize(m.width, m.height)
			m.modal = modalNotes
		}
		return m, nil
	case deck.CmdShowOverview:
		m.overview = NewOverviewModal(m.ctrl.OverviewListing(), m.theme)
		m.overview.SetSize(m.width, m.height)
		m.modal = modalOverview
		return m, textinput.Blink
	}

	timer := m.ctrl.Timer()
	gen := timer.Generation()
	m.ctrl.Dispatch(r.Command)

	cmds := m.screen.drain()
	if timer.Running() && timer.Generation() != gen {
		cmds = append(cmds, timerTickCmd(timer.Generation()))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) copyNoteCmd() tea.Cmd {
	note, ok := m.ctrl.CurrentNote()
	if !ok {
		m.status.set("no notes for this slide", false)
		return nil
	}
	copyText := m.copyText
	return func() tea.Msg {
		return clipboardMsg{err: copyText(note)}
	}
}

func (m Model) slideWidth() int {
	w := m.width - 4
	if w > 100 {
		w = 100
	}
	return w
}

// View renders the frame.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	defer metrics.Timer(metrics.FrameRender)()

	footer := m.renderFooter()
	finalStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height)

	bodyHeight := m.height - lipgloss.Height(footer)

	var overlay string
	switch m.modal {
	case modalNotes:
		overlay = m.notes.View()
	case modalOverview:
		overlay = m.overview.View()
	case modalHelp:
		overlay = renderHelp(m.theme, modalWidth(m.width))
	}
	if overlay != "" {
		body := centerModal(m.theme, overlay, m.width, bodyHeight)
		return finalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, clipLines(body, bodyHeight), footer))
	}

	header := m.renderHeader()
	body := m.renderSlide(bodyHeight - lipgloss.Height(header))
	return finalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func (m Model) renderHeader() string {
	idx := m.chrome.activeIndex()
	title := m.ctrl.Registry().DisplayTitle(idx)

	badge := RenderTimerBadge(m.theme, m.ctrl.Timer().Badge())
	room := m.width - lipgloss.Width(badge) - 4
	left := m.theme.Header.Render(truncate(title, max(room, 1)))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + badge
}

func (m Model) renderSlide(height int) string {
	if height < 1 {
		return ""
	}
	slide, ok := m.ctrl.Registry().At(m.chrome.activeIndex())
	if !ok {
		return ""
	}
	out := clipLines(m.renderer.Render(slide.Body), height)
	return lipgloss.NewStyle().
		Height(height).
		PaddingLeft(SpaceSM).
		Render(out)
}

func (m Model) renderFooter() string {
	var parts []string
	if !m.cfg.UI.HideButtons {
		parts = append(parts, RenderNavButton(m.theme, "◀ Prev", m.chrome.prevDisabled))
	}
	if !m.cfg.UI.HideCounter {
		parts = append(parts, m.theme.Counter.Render(m.chrome.counter))
	}
	if !m.cfg.UI.HideButtons {
		parts = append(parts, RenderNavButton(m.theme, "Next ▶", m.chrome.nextDisabled))
	}
	if !m.cfg.UI.HideProgress {
		parts = append(parts, " "+m.progress.ViewAs(m.chrome.progress/100))
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	text, isErr := m.status.get()
	var line string
	switch {
	case text != "" && isErr:
		line = m.theme.ErrorMsg.Render(truncate(text, m.width))
	case text != "":
		line = m.theme.Status.Render(truncate(text, m.width))
	default:
		hint := "? help • q quit"
		if m.deckPath != "" {
			hint = filepath.Base(m.deckPath) + " • " + hint
		}
		line = m.theme.Renderer.NewStyle().Foreground(ThemeFg("#6272A4")).
			Render(truncate(hint, m.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, nav, line)
}
