package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrub/internal/ui/playerbar"
)

// barTop is the row the player bar is drawn at.
const barTop = 0

// handleMouse maps left-button drags on the slider row to scrub events.
// A press must land on the track; motion and release are accepted anywhere
// once the drag has started.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.Controller.Ready() {
		return m, nil
	}
	value := playerbar.ValueAt(msg.X, m.Width, m.Controller.Duration())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !playerbar.OnSlider(msg.X, msg.Y, barTop, m.Width) {
			return m, nil
		}
		m.dragging = true
		// A pending keyboard release must not commit mid-drag.
		m.ScrubVersion++
		m.Controller.OnScrubChanged(value, true)

	case tea.MouseActionMotion:
		if m.dragging {
			m.Controller.OnScrubChanged(value, true)
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.Controller.OnScrubChanged(value, false)
		}
	}
	return m, nil
}
