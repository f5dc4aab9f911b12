package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrub/internal/controller"
)

// Update routes messages to the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case controller.TickMsg:
		return m, m.Controller.OnSamplerTick(msg)

	case ScrubReleaseMsg:
		return m.handleScrubRelease(msg)

	case FinishedMsg:
		m.Controller.OnPlaybackFinished(msg.Finished)
		return m, WatchFinished(m.Controller.FinishedChan())
	}
	return m, nil
}
