// internal/player/mock.go
package player

import "time"

// Mock is a test double for Player. Position only moves through Advance
// and SetPosition, which gives tests a deterministic clock.
type Mock struct {
	state      State
	position   time.Duration
	duration   time.Duration
	volume     float64
	seekErr    error
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	closeCalls int
	finishedCh chan Finished
}

// NewMock creates a paused mock session of the given length.
func NewMock(duration time.Duration) *Mock {
	return &Mock{
		state:      Paused,
		duration:   duration,
		volume:     1,
		finishedCh: make(chan Finished, 1),
	}
}

func (m *Mock) Play() {
	m.playCalls++
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) IsPlaying() bool { return m.state == Playing }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) SetPosition(d time.Duration) error {
	m.seekCalls = append(m.seekCalls, d)
	if m.seekErr != nil {
		return m.seekErr
	}
	m.position = min(max(d, 0), m.duration)
	return nil
}

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) SetVolume(level float64) { m.volume = ClampVolume(level) }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) FinishedChan() <-chan Finished { return m.finishedCh }

func (m *Mock) Close() error {
	m.closeCalls++
	m.state = Stopped
	return nil
}

// Test helpers

// Advance moves the position forward by d if playing, stopping at the end.
func (m *Mock) Advance(d time.Duration) {
	if m.state != Playing {
		return
	}
	m.position = min(m.position+d, m.duration)
}

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetSeekError(err error) { m.seekErr = err }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) CloseCalls() int { return m.closeCalls }

// SimulateFinished rewinds and emits an end-of-track event, as the speaker
// callback does.
func (m *Mock) SimulateFinished(successfully bool) {
	m.position = 0
	select {
	case m.finishedCh <- Finished{Successfully: successfully}:
	default:
	}
}

// Verify Mock implements Session at compile time.
var _ Session = (*Mock)(nil)
