package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Help adapts the bindings for the bubbles help component.
type Help struct {
	bindings map[Action]key.Binding
}

// NewHelp builds key.Binding values from the given bindings.
func NewHelp(bindings []Binding) Help {
	h := Help{bindings: make(map[Action]key.Binding, len(bindings))}
	for _, b := range bindings {
		h.bindings[b.Action] = key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.HelpKey, b.Description),
		)
	}
	return h
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (h Help) ShortHelp() []key.Binding {
	return h.pick(ActionPlayPause, ActionScrubBack, ActionScrubForward, ActionHelp, ActionQuit)
}

// FullHelp returns every binding, grouped by column.
func (h Help) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.pick(ActionPlayPause, ActionVolumeUp, ActionVolumeDown),
		h.pick(ActionScrubBack, ActionScrubForward, ActionScrubRelease),
		h.pick(ActionHelp, ActionQuit),
	}
}

func (h Help) pick(actions ...Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := h.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}

var _ help.KeyMap = Help{}
