package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the screen.
type Theme struct {
	Primary   lipgloss.Color // Purple - playing state, filled slider end
	Secondary lipgloss.Color // Gold - knob while scrubbing

	FgBase   lipgloss.Color // Primary text
	FgMuted  lipgloss.Color // Secondary text
	FgSubtle lipgloss.Color // Empty slider track

	Border lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Button    lipgloss.Style // play/pause glyph
	Time      lipgloss.Style // time label
	Knob      lipgloss.Style
	KnobScrub lipgloss.Style // knob while the user holds it
	Frame     lipgloss.Style // rounded border around the controls
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border: lipgloss.Color("#585858"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Time: base.Bold(true),
		Knob: lipgloss.NewStyle().Foreground(t.FgBase),
		KnobScrub: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
	}
}
