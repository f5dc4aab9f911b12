// Package controller keeps the play/pause button, the time label and the
// slider in step with a playback session.
//
// Every method runs on the UI event loop; nothing here is safe for
// concurrent use, and nothing needs to be.
package controller

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/llehouerou/scrub/internal/asset"
	"github.com/llehouerou/scrub/internal/errmsg"
	"github.com/llehouerou/scrub/internal/player"
	"github.com/llehouerou/scrub/internal/timecode"
)

// Display is the UI state derived from the session.
type Display struct {
	Playing       bool    // play/pause button mode
	FormattedTime string  // time label, "MM:SS:CC"
	SliderValue   float64 // seconds, in [0, Duration]
	Scrubbing     bool    // the user is holding the slider
}

// Opener turns asset data into a playable session.
type Opener func(data []byte) (player.Session, error)

// OpenPlayer opens a speaker-backed session.
func OpenPlayer(data []byte) (player.Session, error) {
	p, err := player.New(data)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Controller owns the session, the sampler and the display state.
type Controller struct {
	session  player.Session
	sampler  Sampler
	display  Display
	duration float64
	title    string
	log      zerolog.Logger
}

// New returns a controller with no session. Until Initialize succeeds every
// control operation is a no-op.
func New(log zerolog.Logger) *Controller {
	return &Controller{
		display: Display{FormattedTime: timecode.Zero},
		log:     log,
	}
}

// Initialize loads the named asset and opens it. Failures are logged and
// returned; the controller stays usable but inert.
func (c *Controller) Initialize(loader asset.Loader, name string, open Opener) error {
	c.title = name

	data, err := loader.Load(name)
	if err != nil {
		c.log.Error().Err(err).Str("asset", name).Msg(errmsg.Format(errmsg.OpAssetLoad, err))
		return err
	}

	session, err := open(data)
	if err != nil {
		c.log.Error().Err(err).Str("asset", name).Msg(errmsg.Format(errmsg.OpAssetDecode, err))
		return err
	}

	c.session = session
	c.duration = session.Duration().Seconds()
	c.title = player.ReadTitle(data, name)
	c.display.SliderValue = 0
	c.display.FormattedTime = timecode.Zero

	c.log.Info().
		Str("asset", name).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Dur("duration", session.Duration()).
		Msg("sound loaded")
	return nil
}

// Ready reports whether a session was loaded.
func (c *Controller) Ready() bool { return c.session != nil }

// Display returns the current UI state.
func (c *Controller) Display() Display { return c.display }

// Duration returns the session length in seconds, the slider's maximum.
func (c *Controller) Duration() float64 { return c.duration }

// Title returns the name shown above the controls.
func (c *Controller) Title() string { return c.title }

// SamplerActive reports whether the sampler is running.
func (c *Controller) SamplerActive() bool { return c.sampler.Active() }

// Sampler exposes the sampler, mostly so tests can feed it ticks.
func (c *Controller) Sampler() *Sampler { return &c.sampler }

// FinishedChan returns the session's end-of-track channel, or nil when no
// session is loaded.
func (c *Controller) FinishedChan() <-chan player.Finished {
	if c.session == nil {
		return nil
	}
	return c.session.FinishedChan()
}

// TogglePlayPause flips the button. Playing starts the session and the
// sampler; paused stops both.
func (c *Controller) TogglePlayPause() tea.Cmd {
	if c.session == nil {
		return nil
	}

	c.display.Playing = !c.display.Playing
	if !c.display.Playing {
		c.session.Pause()
		c.sampler.Stop()
		c.log.Debug().Float64("position", c.session.Position().Seconds()).Msg("paused")
		return nil
	}

	c.session.Play()
	cmd := c.sampler.Start()
	// First sample fires at once rather than one interval later.
	c.sample()
	c.log.Debug().Float64("position", c.session.Position().Seconds()).Msg("playing")
	return cmd
}

// OnSamplerTick refreshes the label and slider from the session position,
// unless the user is scrubbing. It returns the next tick while the run is
// current.
func (c *Controller) OnSamplerTick(msg TickMsg) tea.Cmd {
	if !c.sampler.Accept(msg) {
		return nil
	}
	c.sample()
	return c.sampler.Next()
}

func (c *Controller) sample() {
	if c.session == nil || c.display.Scrubbing {
		return
	}
	pos := c.session.Position().Seconds()
	c.display.FormattedTime = timecode.Format(pos)
	c.display.SliderValue = min(max(pos, 0), c.duration)
}

// OnScrubChanged handles slider input. The label always follows value.
// While tracking is true the session is left alone; the release call
// (tracking false) commits value as the new position.
func (c *Controller) OnScrubChanged(value float64, tracking bool) {
	if c.session == nil {
		return
	}

	value = min(max(value, 0), c.duration)
	c.display.SliderValue = value
	c.display.FormattedTime = timecode.Format(value)
	c.display.Scrubbing = tracking
	if tracking {
		return
	}

	if err := c.session.SetPosition(timecode.Seconds(value)); err != nil {
		c.log.Warn().Err(err).Float64("position", value).Msg(errmsg.Format(errmsg.OpPlaybackSeek, err))
	}
}

// OnPlaybackFinished resets to paused at zero. A finish caused by a decode
// error is treated the same as a clean one, apart from the log level.
func (c *Controller) OnPlaybackFinished(ev player.Finished) {
	if c.session == nil {
		return
	}

	c.session.Pause()
	c.sampler.Stop()
	c.display.Playing = false
	c.display.SliderValue = 0
	c.display.FormattedTime = timecode.Zero

	if ev.Successfully {
		c.log.Debug().Msg("playback finished")
	} else {
		c.log.Warn().Msg("playback finished after a decode error")
	}
}

// AdjustVolume changes the output level by delta and returns the new level.
func (c *Controller) AdjustVolume(delta float64) float64 {
	if c.session == nil {
		return 0
	}
	c.session.SetVolume(c.session.Volume() + delta)
	return c.session.Volume()
}

// SetVolume sets the output level directly.
func (c *Controller) SetVolume(level float64) {
	if c.session == nil {
		return
	}
	c.session.SetVolume(level)
}

// Volume returns the output level, or zero without a session.
func (c *Controller) Volume() float64 {
	if c.session == nil {
		return 0
	}
	return c.session.Volume()
}

// Close stops the sampler and releases the session.
func (c *Controller) Close() {
	c.sampler.Stop()
	if c.session == nil {
		return
	}
	if err := c.session.Close(); err != nil {
		c.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpPlaybackClose, err))
	}
	c.session = nil
}
