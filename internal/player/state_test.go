package player

import (
	"testing"
	"time"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanPauseCanPlay(t *testing.T) {
	tests := []struct {
		state     State
		wantPause bool
		wantPlay  bool
	}{
		{Stopped, false, false},
		{Playing, true, false},
		{Paused, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanPause(); got != tt.wantPause {
				t.Errorf("State.CanPause() = %v, want %v", got, tt.wantPause)
			}
			if got := tt.state.CanPlay(); got != tt.wantPlay {
				t.Errorf("State.CanPlay() = %v, want %v", got, tt.wantPlay)
			}
		})
	}
}

// TestMock_StateTransitions validates the state machine using the Mock player.
func TestMock_StateTransitions(t *testing.T) {
	t.Run("starts Paused", func(t *testing.T) {
		m := NewMock(time.Second)
		if m.State() != Paused {
			t.Fatalf("initial state = %v, want Paused", m.State())
		}
	})

	t.Run("Paused to Playing via Play", func(t *testing.T) {
		m := NewMock(time.Second)
		m.Play()
		if m.State() != Playing {
			t.Errorf("state after Play = %v, want Playing", m.State())
		}
	})

	t.Run("Playing to Paused via Pause", func(t *testing.T) {
		m := NewMock(time.Second)
		m.Play()
		m.Pause()
		if m.State() != Paused {
			t.Errorf("state after Pause = %v, want Paused", m.State())
		}
	})

	t.Run("Close stops from any state", func(t *testing.T) {
		m := NewMock(time.Second)
		m.Play()
		_ = m.Close()
		if m.State() != Stopped {
			t.Errorf("state after Close = %v, want Stopped", m.State())
		}
		m.Play()
		if m.State() != Stopped {
			t.Errorf("Play after Close = %v, want Stopped", m.State())
		}
	})
}

func TestMock_Advance(t *testing.T) {
	m := NewMock(2 * time.Second)

	m.Advance(time.Second)
	if m.Position() != 0 {
		t.Errorf("Advance while paused moved position to %v", m.Position())
	}

	m.Play()
	m.Advance(1500 * time.Millisecond)
	m.Advance(time.Second)
	if m.Position() != 2*time.Second {
		t.Errorf("Position() = %v, want clamp at 2s", m.Position())
	}
}
