// Package theme resolves the user's mode + accent selection into one concrete
// style record. Resolution happens once at startup; nothing downstream
// assembles colors ad hoc.
package theme

import "github.com/charmbracelet/lipgloss"

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

type Accent string

const (
	AccentTeal   Accent = "teal"
	AccentViolet Accent = "violet"
	AccentAmber  Accent = "amber"
)

// Palette is the resolved style record consumed by the TUI.
type Palette struct {
	Mode   Mode
	Accent Accent

	Title     lipgloss.Style
	ActiveTab lipgloss.Style
	Tab       lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Danger    lipgloss.Style
	Success   lipgloss.Style
	Doc       lipgloss.Style
}

var accentColors = map[Accent]lipgloss.Color{
	AccentTeal:   lipgloss.Color("43"),
	AccentViolet: lipgloss.Color("135"),
	AccentAmber:  lipgloss.Color("214"),
}

// ParseMode maps a stored preference value onto a Mode, defaulting to dark.
func ParseMode(s string) Mode {
	if s == string(ModeLight) {
		return ModeLight
	}
	return ModeDark
}

// ParseAccent maps a stored preference value onto an Accent, defaulting to teal.
func ParseAccent(s string) Accent {
	switch Accent(s) {
	case AccentViolet:
		return AccentViolet
	case AccentAmber:
		return AccentAmber
	default:
		return AccentTeal
	}
}

// Resolve builds the concrete Palette for a mode + accent pair.
func Resolve(mode Mode, accent Accent) Palette {
	accentColor, ok := accentColors[accent]
	if !ok {
		accentColor = accentColors[AccentTeal]
		accent = AccentTeal
	}

	fg := lipgloss.Color("252")
	muted := lipgloss.Color("240")
	surface := lipgloss.Color("236")
	if mode == ModeLight {
		fg = lipgloss.Color("235")
		muted = lipgloss.Color("245")
		surface = lipgloss.Color("254")
	}

	return Palette{
		Mode:   mode,
		Accent: accent,

		Title: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true),
		ActiveTab: lipgloss.NewStyle().
			Foreground(accentColor).
			Background(surface).
			Padding(0, 1).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(accentColor),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Doc: lipgloss.NewStyle().
			Foreground(fg).
			Padding(1, 2),
	}
}
