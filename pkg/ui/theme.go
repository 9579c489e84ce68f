package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/podium/pkg/deck"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals keep their own
// background instead of a down-converted approximation.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Theme is the presenter palette plus pre-built styles.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Timer badge tones
	Normal   lipgloss.AdaptiveColor
	Warning  lipgloss.AdaptiveColor
	Critical lipgloss.AdaptiveColor

	Base     lipgloss.Style
	Header   lipgloss.Style
	Counter  lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultTheme returns the Dracula-inspired adaptive theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Subtext:   ColorSubtext,
		Border:    ColorBgHighlight,
		Muted:     ColorMuted,

		Normal:   ColorSuccess,
		Warning:  ColorWarning,
		Critical: ColorDanger,
	}

	t.Base = r.NewStyle().Foreground(ColorText)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.Counter = r.NewStyle().Foreground(t.Subtext).Bold(true)

	t.Button = r.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Padding(0, 1)

	t.Disabled = r.NewStyle().
		Foreground(t.Muted).
		Faint(true).
		Padding(0, 1)

	t.Status = r.NewStyle().Foreground(ColorInfo)
	t.ErrorMsg = r.NewStyle().Foreground(ColorDanger).Bold(true)

	return t
}

// ToneColor maps a timer tone to its badge background.
func (t Theme) ToneColor(tone deck.Tone) lipgloss.AdaptiveColor {
	switch tone {
	case deck.ToneWarning:
		return t.Warning
	case deck.ToneCritical:
		return t.Critical
	default:
		return t.Normal
	}
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
