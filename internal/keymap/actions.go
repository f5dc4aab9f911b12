// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Scrubber actions
	ActionScrubBack    Action = "scrub_back"
	ActionScrubForward Action = "scrub_forward"
	ActionScrubRelease Action = "scrub_release"
)

// Binding maps keys to an action, with a short label for the help line.
type Binding struct {
	Action      Action
	Keys        []string
	HelpKey     string
	Description string
}

// All contains every key binding, in help order.
var All = []Binding{
	{ActionPlayPause, []string{" "}, "space", "play/pause"},
	{ActionScrubBack, []string{"left", "h"}, "←/h", "scrub back"},
	{ActionScrubForward, []string{"right", "l"}, "→/l", "scrub forward"},
	{ActionScrubRelease, []string{"enter"}, "enter", "release scrubber"},
	{ActionVolumeUp, []string{"+", "="}, "+", "volume up"},
	{ActionVolumeDown, []string{"-"}, "-", "volume down"},
	{ActionHelp, []string{"?"}, "?", "toggle help"},
	{ActionQuit, []string{"q", "ctrl+c"}, "q", "quit"},
}
