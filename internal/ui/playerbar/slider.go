package playerbar

import (
	"math"
	"strings"

	"github.com/llehouerou/scrub/internal/icons"
	"github.com/llehouerou/scrub/internal/ui/styles"
)

const (
	filledGlyph = "━"
	emptyGlyph  = "─"
)

// KnobIndex returns the cell holding the knob for value on a slider of
// the given width.
func KnobIndex(value, duration float64, width int) int {
	if width <= 1 || duration <= 0 {
		return 0
	}
	ratio := min(max(value/duration, 0), 1)
	return int(math.Round(ratio * float64(width-1)))
}

// RenderSlider draws the slider track with its knob.
// Format: ━━━━━━●──────────
func RenderSlider(value, duration float64, width int, scrubbing bool) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	st := t.S()

	knobAt := KnobIndex(value, duration, width)

	knob := st.Knob.Render(icons.Knob())
	if scrubbing {
		knob = st.KnobScrub.Render(icons.Knob())
	}

	var b strings.Builder
	b.WriteString(styles.GradientRepeat(filledGlyph, knobAt, t.FgSubtle, t.Primary))
	b.WriteString(knob)
	b.WriteString(st.Subtle.Render(strings.Repeat(emptyGlyph, width-knobAt-1)))
	return b.String()
}

// ValueAt maps a terminal column to a slider value for a bar rendered at
// the given total width. Columns outside the track clamp to its ends.
func ValueAt(x, width int, duration float64) float64 {
	inner := ContentWidth(width)
	if inner <= 1 || duration <= 0 {
		return 0
	}
	cell := min(max(x-contentInset, 0), inner-1)
	return float64(cell) / float64(inner-1) * duration
}

// OnSlider reports whether a terminal cell lies on the slider row, given
// the row the bar starts at.
func OnSlider(x, y, top, width int) bool {
	if y != top+SliderRow {
		return false
	}
	return x >= contentInset && x < contentInset+ContentWidth(width)
}
