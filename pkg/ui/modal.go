package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// modalKind identifies which overlay, if any, owns input.
type modalKind int

const (
	modalNone modalKind = iota
	modalNotes
	modalOverview
	modalHelp
)

// ModalResult reports how an overlay was closed.
type ModalResult int

const (
	ModalPending ModalResult = iota
	ModalConfirmed
	ModalCancelled
)

func modalBox(t Theme, width int) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Background(ThemeBg("#282A36")).
		Padding(1, 2).
		Width(width)
}

func modalTitle(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)
}

func modalHint(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Foreground(t.Subtext).
		Italic(true).
		MarginTop(1)
}

// centerModal places a rendered modal in the middle of the terminal.
func centerModal(t Theme, modal string, termWidth, termHeight int) string {
	padTop := (termHeight - lipgloss.Height(modal)) / 2
	padLeft := (termWidth - lipgloss.Width(modal)) / 2
	if padTop < 0 {
		padTop = 0
	}
	if padLeft < 0 {
		padLeft = 0
	}
	return t.Renderer.NewStyle().
		MarginTop(padTop).
		MarginLeft(padLeft).
		Render(modal)
}

func modalWidth(termWidth int) int {
	w := termWidth - 8
	if w > 72 {
		w = 72
	}
	if w < 30 {
		w = 30
	}
	return w
}

// NotesModal shows the current slide's speaker note. Any key dismisses it.
type NotesModal struct {
	title  string
	body   string
	theme  Theme
	width  int
	result ModalResult
}

// NewNotesModal builds the modal from a "title\n\nbody" dialog message.
func NewNotesModal(message string, theme Theme) NotesModal {
	title, body, _ := strings.Cut(message, "\n")
	return NotesModal{
		title: strings.TrimSpace(title),
		body:  strings.TrimSpace(body),
		theme: theme,
		width: 60,
	}
}

// Update closes the modal on any key.
func (m NotesModal) Update(msg tea.Msg) (NotesModal, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.result = ModalConfirmed
	}
	return m, nil
}

// Result reports whether the modal was dismissed.
func (m NotesModal) Result() ModalResult { return m.result }

// SetSize adapts the modal to the terminal width.
func (m *NotesModal) SetSize(width, _ int) { m.width = modalWidth(width) }

// View renders the modal box.
func (m NotesModal) View() string {
	var b strings.Builder
	b.WriteString(modalTitle(m.theme).Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.theme.Base.Render(m.body))
	b.WriteString("\n")
	b.WriteString(modalHint(m.theme).Render("press any key to close"))
	return modalBox(m.theme, m.width).Render(b.String())
}

// OverviewModal lists every slide and reads a slide number to jump to.
type OverviewModal struct {
	listing []string
	input   textinput.Model
	theme   Theme
	width   int
	height  int
	result  ModalResult
}

// NewOverviewModal builds the modal from the "N. Title" listing.
func NewOverviewModal(listing string, theme Theme) OverviewModal {
	ti := textinput.New()
	ti.Placeholder = "slide number"
	ti.CharLimit = 12
	ti.Width = 14
	ti.Prompt = "› "
	ti.Focus()

	return OverviewModal{
		listing: strings.Split(listing, "\n"),
		input:   ti,
		theme:   theme,
		width:   60,
		height:  24,
	}
}

// Update feeds keys to the input. Enter confirms and Esc cancels.
func (m OverviewModal) Update(msg tea.Msg) (OverviewModal, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.result = ModalConfirmed
			return m, nil
		case tea.KeyEsc:
			m.result = ModalCancelled
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Result reports how the modal was closed.
func (m OverviewModal) Result() ModalResult { return m.result }

// Value returns the typed answer.
func (m OverviewModal) Value() string { return m.input.Value() }

// SetSize adapts the modal to the terminal.
func (m *OverviewModal) SetSize(width, height int) {
	m.width = modalWidth(width)
	m.height = height
}

// View renders the listing and input. Long decks show as many leading
// entries as fit and note how many are hidden.
func (m OverviewModal) View() string {
	textWidth := m.width - 6
	maxRows := m.height - 12
	if maxRows < 3 {
		maxRows = 3
	}

	var rows []string
	for i, line := range m.listing {
		if i == maxRows && len(m.listing) > maxRows {
			rows = append(rows, m.theme.Renderer.NewStyle().Foreground(m.theme.Muted).
				Render("… "+strconv.Itoa(len(m.listing)-maxRows)+" more"))
			break
		}
		rows = append(rows, m.theme.Base.Render(truncate(line, textWidth)))
	}

	var b strings.Builder
	b.WriteString(modalTitle(m.theme).Render("Slide Overview:"))
	b.WriteString("\n")
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Counter.Render("Enter slide number to jump to:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(modalHint(m.theme).Render("Enter to jump • Esc to cancel"))
	return modalBox(m.theme, m.width).Render(b.String())
}

// helpEntries pairs keys with what they do.
var helpEntries = [][2]string{
	{"→ / Space", "next slide"},
	{"←", "previous slide"},
	{"Home / End", "first / last slide"},
	{"Esc", "toggle fullscreen"},
	{"Ctrl+N", "speaker notes"},
	{"Ctrl+O", "slide overview"},
	{"Ctrl+double-click", "start / stop timer"},
	{"drag ← / →", "swipe to navigate"},
	{"Ctrl+Y", "copy notes to clipboard"},
	{"?", "this help"},
	{"q", "quit"},
}

func renderHelp(t Theme, width int) string {
	keyStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary)
	descStyle := t.Renderer.NewStyle().Foreground(t.Subtext)

	var b strings.Builder
	b.WriteString(modalTitle(t).Render("Keyboard & mouse"))
	b.WriteString("\n")
	for _, e := range helpEntries {
		b.WriteString(keyStyle.Render(padRight(e[0], 20)))
		b.WriteString(descStyle.Render(e[1]))
		b.WriteString("\n")
	}
	b.WriteString(modalHint(t).Render("press any key to close"))
	return modalBox(t, width).Render(b.String())
}
