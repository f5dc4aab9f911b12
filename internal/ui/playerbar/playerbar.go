// Package playerbar renders the single playback screen: title, play/pause
// button with the time label, and the position slider.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrub/internal/controller"
	"github.com/llehouerou/scrub/internal/icons"
	"github.com/llehouerou/scrub/internal/timecode"
	"github.com/llehouerou/scrub/internal/ui/render"
	"github.com/llehouerou/scrub/internal/ui/styles"
)

// Layout of the rendered box, in terminal cells.
const (
	borderWidth  = 1
	paddingWidth = 2
	contentInset = borderWidth + paddingWidth

	// Height is the total height: 4 content rows + 2 border rows.
	Height = 6
	// SliderRow is the row holding the slider, counted from the top border.
	SliderRow = 3
)

// State holds everything needed to render the bar.
type State struct {
	Title       string
	Playing     bool
	Time        string
	SliderValue float64
	Duration    float64
	Scrubbing   bool
	Volume      float64
}

// NewState builds a State from the controller.
func NewState(c *controller.Controller) State {
	d := c.Display()
	return State{
		Title:       c.Title(),
		Playing:     d.Playing,
		Time:        d.FormattedTime,
		SliderValue: d.SliderValue,
		Duration:    c.Duration(),
		Scrubbing:   d.Scrubbing,
		Volume:      c.Volume(),
	}
}

// ContentWidth is the usable width inside border and padding.
func ContentWidth(width int) int {
	return max(width-2*contentInset, 0)
}

// Render returns the bar for the given terminal width.
func Render(s State, width int) string {
	inner := ContentWidth(width)
	st := styles.T().S()

	title := render.Fit(icons.FormatAudio(s.Title), inner)

	timeLabel := s.Time
	if timeLabel == "" {
		timeLabel = timecode.Zero
	}
	controls := st.Button.Render(icons.Button(s.Playing)) + "  " + st.Time.Render(timeLabel)

	rows := []string{
		st.Title.Render(title),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, controls),
		RenderSlider(s.SliderValue, s.Duration, inner, s.Scrubbing),
		renderFooter(s, inner),
	}

	return st.Frame.
		Padding(0, paddingWidth).
		Width(max(width-2*borderWidth, 0)).
		Render(strings.Join(rows, "\n"))
}

func renderFooter(s State, width int) string {
	st := styles.T().S()
	left := st.Muted.Render(fmt.Sprintf("%s %3d%%", icons.Volume(s.Volume), int(s.Volume*100+0.5)))
	right := st.Muted.Render(timecode.Format(s.Duration))
	return render.Row(left, right, width)
}
