package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SampleInterval is the sampler period.
const SampleInterval = 10 * time.Millisecond

// TickMsg is delivered by the sampler. Gen ties the tick to the run that
// scheduled it; ticks from an invalidated run are ignored.
type TickMsg struct {
	Gen int
}

// Sampler is a repeating timer built from self-rescheduling tea.Tick
// commands. Invalidation bumps the generation so that the tick already in
// flight is dropped when it arrives.
type Sampler struct {
	gen    int
	active bool
}

// Start begins a new run and returns the command for its first tick.
func (s *Sampler) Start() tea.Cmd {
	s.gen++
	s.active = true
	return s.schedule()
}

// Stop invalidates the current run.
func (s *Sampler) Stop() {
	if !s.active {
		return
	}
	s.gen++
	s.active = false
}

// Active reports whether a run is in progress.
func (s *Sampler) Active() bool { return s.active }

// Accept reports whether msg belongs to the current run.
func (s *Sampler) Accept(msg TickMsg) bool {
	return s.active && msg.Gen == s.gen
}

// Current returns the tick the current run would deliver next.
func (s *Sampler) Current() TickMsg { return TickMsg{Gen: s.gen} }

// Next schedules the following tick of the current run.
func (s *Sampler) Next() tea.Cmd {
	if !s.active {
		return nil
	}
	return s.schedule()
}

func (s *Sampler) schedule() tea.Cmd {
	gen := s.gen
	return tea.Tick(SampleInterval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}
