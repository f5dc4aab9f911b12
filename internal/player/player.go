package player

import (
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Player is a Session backed by beep's speaker.
//
// All methods must be called from a single goroutine (the UI event loop).
// The speaker goroutine only touches the stream under speaker.Lock and
// reports end-of-track through FinishedChan.
type Player struct {
	state       State
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	volumeLevel float64

	// queued is true while the stream sits in the speaker mixer. The mixer
	// drops it at end-of-track, so the next Play has to queue it again.
	queued     atomic.Bool
	finishedCh chan Finished
}

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New decodes data and prepares it for playback, paused at the start.
func New(data []byte) (*Player, error) {
	streamer, format, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		err = speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10))
		if err != nil {
			streamer.Close()
			return nil, errors.Wrap(err, "init speaker")
		}
		speakerInitialized = true
	}

	// Resample if the asset's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}

	p := &Player{
		state:       Paused,
		streamer:    streamer,
		format:      format,
		volumeLevel: 1,
		finishedCh:  make(chan Finished, 1),
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: 0, Silent: false}
	return p, nil
}

// State returns the current playback state.
func (p *Player) State() State { return p.state }

// IsPlaying reports whether audio is being output.
func (p *Player) IsPlaying() bool { return p.state == Playing }

// Duration returns the length of the decoded asset.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// FinishedChan delivers one event each time playback reaches end-of-track.
func (p *Player) FinishedChan() <-chan Finished {
	return p.finishedCh
}

// finish runs on the speaker goroutine with the speaker lock held.
func (p *Player) finish() {
	p.queued.Store(false)
	ev := Finished{Successfully: p.streamer.Err() == nil}

	// Rewind so the next Play starts from the top, as a fresh session would.
	p.ctrl.Paused = true
	_ = p.streamer.Seek(0)

	select {
	case p.finishedCh <- ev:
	default:
	}
}
