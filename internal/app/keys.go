package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrub/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Keys.ResolveMsg(msg) {
	case keymap.ActionQuit:
		m.Controller.Close()
		m.quitting = true
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Help.ShowAll = !m.Help.ShowAll
	case keymap.ActionPlayPause:
		return m, m.Controller.TogglePlayPause()
	case keymap.ActionVolumeUp:
		m.Controller.AdjustVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.Controller.AdjustVolume(-volumeStep)
	case keymap.ActionScrubBack:
		return m.scrubBy(-m.scrubStep)
	case keymap.ActionScrubForward:
		return m.scrubBy(m.scrubStep)
	case keymap.ActionScrubRelease:
		m.releaseScrub()
	}
	return m, nil
}

// scrubBy moves the slider without seeking. The seek happens once the keys
// go quiet for ScrubReleaseDelay, or on an explicit release.
func (m Model) scrubBy(delta float64) (tea.Model, tea.Cmd) {
	if !m.Controller.Ready() || m.dragging {
		return m, nil
	}
	m.Controller.OnScrubChanged(m.Controller.Display().SliderValue+delta, true)
	m.ScrubVersion++
	return m, ScrubReleaseCmd(m.ScrubVersion)
}

// handleScrubRelease commits the debounced keyboard scrub.
func (m Model) handleScrubRelease(msg ScrubReleaseMsg) (tea.Model, tea.Cmd) {
	if msg.Version == m.ScrubVersion && !m.dragging {
		m.releaseScrub()
	}
	return m, nil
}

func (m *Model) releaseScrub() {
	d := m.Controller.Display()
	if !d.Scrubbing || m.dragging {
		return
	}
	// Invalidate any pending debounce timeout.
	m.ScrubVersion++
	m.Controller.OnScrubChanged(d.SliderValue, false)
}
