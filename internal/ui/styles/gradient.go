package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend returns n colors running from one end to the other, interpolated
// in HCL space.
func Blend(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	c1, ok1 := parseHex(from)
	c2, ok2 := parseHex(to)
	out := make([]lipgloss.Color, n)
	if !ok1 || !ok2 {
		// ANSI colors can't be blended; keep the start color
		for i := range out {
			out[i] = from
		}
		return out
	}

	for i := range n {
		t := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	// Exact endpoints; the HCL round trip can be off by one step.
	out[0], out[n-1] = from, to
	return out
}

// GradientRepeat renders glyph n times with a gradient from one color to
// the other.
func GradientRepeat(glyph string, n int, from, to lipgloss.Color) string {
	var b strings.Builder
	for _, c := range Blend(n, from, to) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(glyph))
	}
	return b.String()
}

func parseHex(c lipgloss.Color) (colorful.Color, bool) {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}
