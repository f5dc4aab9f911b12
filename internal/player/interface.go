// internal/player/interface.go
package player

import "time"

// Finished is emitted when playback reaches end-of-track. Successfully is
// false when the decoder stopped on an error.
type Finished struct {
	Successfully bool
}

// Session defines the playback contract the controller drives.
type Session interface {
	Play()
	Pause()
	State() State
	IsPlaying() bool
	Position() time.Duration
	SetPosition(d time.Duration) error
	Duration() time.Duration
	SetVolume(level float64)
	Volume() float64
	FinishedChan() <-chan Finished
	Close() error
}

// Verify Player implements Session at compile time.
var _ Session = (*Player)(nil)
