// Package app wires the playback controller, key bindings and player bar
// into a bubbletea program.
package app

import (
	"github.com/llehouerou/scrub/internal/player"
)

// FinishedMsg is sent when the session reaches the end of its stream.
type FinishedMsg struct {
	player.Finished
}

// ScrubReleaseMsg is sent after the keyboard scrub debounce delay.
// The Version field is used to ignore stale timeouts when rapid key presses occur.
type ScrubReleaseMsg struct {
	Version int
}
