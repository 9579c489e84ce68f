package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/podium/pkg/deck"
)

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

// Adaptive palette. Light mode colors are tuned for contrast on white.
var (
	ColorBg          = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}
	ColorBgHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
	ColorText        = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorSubtext     = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"}
	ColorMuted       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}

	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}

	// Text on a colored badge
	ColorBadgeText = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}
)

// RenderTimerBadge draws the elapsed-time badge, or "" while the timer
// is stopped.
func RenderTimerBadge(t Theme, b *deck.Badge) string {
	if b == nil {
		return ""
	}
	return t.Renderer.NewStyle().
		Background(t.ToneColor(b.Tone)).
		Foreground(ColorBadgeText).
		Bold(true).
		Padding(0, 1).
		Render("⏱ " + b.Text)
}

// RenderNavButton draws a prev/next button in its enabled or disabled
// state.
func RenderNavButton(t Theme, label string, disabled bool) string {
	if disabled {
		return t.Disabled.Render(label)
	}
	return t.Button.Render(label)
}
