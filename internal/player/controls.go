package player

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Play starts audio output from the current position.
func (p *Player) Play() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()

	if !p.queued.Swap(true) {
		speaker.Play(beep.Seq(p.volume, beep.Callback(p.finish)))
	}
	p.state = Playing
}

// Pause stops audio output, keeping the position.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// SetPosition moves playback to an absolute position, clamped to the
// asset bounds. Playing or paused state is left as is.
func (p *Player) SetPosition(d time.Duration) error {
	if p.streamer == nil || p.state == Stopped {
		return nil
	}
	n := p.format.SampleRate.N(d)
	n = min(max(n, 0), max(p.streamer.Len()-1, 0))

	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		return errors.Wrapf(err, "seek to %v", d)
	}
	return nil
}

// Close stops playback and releases the decoder.
func (p *Player) Close() error {
	if p.state == Stopped {
		return nil
	}
	speaker.Clear()
	p.queued.Store(false)

	var err error
	if p.streamer != nil {
		err = p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
	return err
}
