// internal/player/state.go
package player

// State represents the session's output state.
//
// A decoded session starts Paused at position zero:
//
//	┌──────────┐      Play       ┌──────────┐
//	│  Paused  │ ───────────────▶│  Playing │
//	└──────────┘ ◀───────────────└──────────┘
//	     │            Pause           │
//	     │ Close                Close │
//	     ▼                            ▼
//	┌──────────────────────────────────────┐
//	│               Stopped                │
//	└──────────────────────────────────────┘
//
// End-of-track rewinds to zero and leaves the mixer; the controller then
// calls Pause, so a finished session is Paused again.
// Play while Playing, Pause while Paused and anything on Stopped are no-ops.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a session is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if the state allows starting output.
func (s State) CanPlay() bool {
	return s == Paused
}
