package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrub/internal/controller"
	"github.com/llehouerou/scrub/internal/keymap"
	"github.com/llehouerou/scrub/internal/ui/playerbar"
)

const (
	defaultWidth = 60
	volumeStep   = 0.1
)

// Options tune input handling.
type Options struct {
	// ScrubStep is the slider movement per key press, in seconds.
	ScrubStep float64
}

// Model is the root bubbletea model.
type Model struct {
	Controller *controller.Controller
	Keys       *keymap.Resolver
	Help       help.Model
	HelpKeys   keymap.Help

	Width  int
	Height int

	scrubStep    float64
	ScrubVersion int
	dragging     bool
	quitting     bool
}

// New returns a model driving the given controller.
func New(ctrl *controller.Controller, opts Options) Model {
	step := opts.ScrubStep
	if step <= 0 {
		step = 1
	}
	return Model{
		Controller: ctrl,
		Keys:       keymap.NewResolver(keymap.All),
		Help:       help.New(),
		HelpKeys:   keymap.NewHelp(keymap.All),
		Width:      defaultWidth,
		scrubStep:  step,
	}
}

// Init starts watching for end-of-stream events.
func (m Model) Init() tea.Cmd {
	return WatchFinished(m.Controller.FinishedChan())
}

// Dragging reports whether the mouse is holding the slider.
func (m Model) Dragging() bool { return m.dragging }

// View renders the player bar and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	bar := playerbar.Render(playerbar.NewState(m.Controller), m.Width)
	return bar + "\n" + m.Help.View(m.HelpKeys)
}
