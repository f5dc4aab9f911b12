package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrub/internal/player"
)

// ScrubReleaseDelay is how long keyboard scrubbing waits for another key
// before committing the position.
const ScrubReleaseDelay = 300 * time.Millisecond

// ScrubReleaseCmd returns a command that sends ScrubReleaseMsg after ScrubReleaseDelay.
func ScrubReleaseCmd(version int) tea.Cmd {
	return tea.Tick(ScrubReleaseDelay, func(_ time.Time) tea.Msg {
		return ScrubReleaseMsg{Version: version}
	})
}

// WatchFinished returns a command that waits for the next end-of-stream
// event. It must be re-issued after every FinishedMsg.
func WatchFinished(ch <-chan player.Finished) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return FinishedMsg{Finished: ev}
	}
}
