package controller

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/scrub/internal/asset"
	"github.com/llehouerou/scrub/internal/player"
	"github.com/llehouerou/scrub/internal/timecode"
)

func testBundle() *asset.Bundle {
	return asset.NewBundle(fstest.MapFS{
		"sound.wav": &fstest.MapFile{Data: []byte("RIFF....WAVE")},
	})
}

func mockOpener(m *player.Mock) Opener {
	return func([]byte) (player.Session, error) { return m, nil }
}

// newTestController returns a controller loaded with a paused mock session.
func newTestController(t *testing.T, length time.Duration) (*Controller, *player.Mock, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	c := New(zerolog.New(&logs))
	m := player.NewMock(length)
	require.NoError(t, c.Initialize(testBundle(), asset.Sound, mockOpener(m)))
	return c, m, &logs
}

// playFor advances the mock clock in sampler-sized steps, delivering one
// tick per step.
func playFor(c *Controller, m *player.Mock, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += SampleInterval {
		m.Advance(SampleInterval)
		c.OnSamplerTick(c.Sampler().Current())
	}
}

func TestInitialize_Success(t *testing.T) {
	c, _, logs := newTestController(t, 10*time.Second)

	assert.True(t, c.Ready())
	assert.InDelta(t, 10.0, c.Duration(), 1e-9)
	assert.Equal(t, asset.Sound, c.Title())
	assert.Equal(t, Display{FormattedTime: timecode.Zero}, c.Display())
	assert.Contains(t, logs.String(), "sound loaded")
}

func TestInitialize_MissingAsset(t *testing.T) {
	var logs bytes.Buffer
	c := New(zerolog.New(&logs))
	opened := false

	err := c.Initialize(asset.NewBundle(fstest.MapFS{}), asset.Sound, func([]byte) (player.Session, error) {
		opened = true
		return nil, nil
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, asset.ErrNotFound))
	assert.False(t, opened, "decoder must not run without data")
	assert.False(t, c.Ready())
	assert.Contains(t, logs.String(), "Failed to load sound asset")
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestInitialize_DecodeFailure(t *testing.T) {
	var logs bytes.Buffer
	c := New(zerolog.New(&logs))

	err := c.Initialize(testBundle(), asset.Sound, func([]byte) (player.Session, error) {
		return nil, player.ErrUnsupportedFormat
	})

	require.Error(t, err)
	assert.False(t, c.Ready())
	assert.Contains(t, logs.String(), "Failed to initialize player")
	assert.Contains(t, logs.String(), "unsupported audio format")
}

func TestWithoutSession_ControlsAreNoops(t *testing.T) {
	c := New(zerolog.Nop())
	_ = c.Initialize(asset.NewBundle(fstest.MapFS{}), asset.Sound, mockOpener(player.NewMock(time.Second)))
	before := c.Display()

	assert.Nil(t, c.TogglePlayPause())
	assert.Nil(t, c.OnSamplerTick(c.Sampler().Current()))
	c.OnScrubChanged(3, true)
	c.OnScrubChanged(3, false)
	c.OnPlaybackFinished(player.Finished{Successfully: true})
	assert.InDelta(t, 0.0, c.AdjustVolume(0.1), 1e-9)
	assert.Nil(t, c.FinishedChan())
	c.Close()

	assert.Equal(t, before, c.Display())
	assert.False(t, c.SamplerActive())
}

func TestTogglePlayPause_StartsAndStopsSampler(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)

	cmd := c.TogglePlayPause()
	require.NotNil(t, cmd, "starting playback schedules the first tick")
	assert.True(t, c.SamplerActive())
	assert.True(t, c.Display().Playing)
	assert.Equal(t, player.Playing, m.State())

	cmd = c.TogglePlayPause()
	assert.Nil(t, cmd)
	assert.False(t, c.SamplerActive())
	assert.False(t, c.Display().Playing)
	assert.Equal(t, player.Paused, m.State())
}

func TestTogglePlayPause_SamplesImmediately(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)
	require.NoError(t, m.SetPosition(2*time.Second))

	c.TogglePlayPause()

	assert.Equal(t, "00:02:00", c.Display().FormattedTime)
	assert.InDelta(t, 2.0, c.Display().SliderValue, 1e-9)
}

func TestOnSamplerTick_IgnoresStaleTicks(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)

	c.TogglePlayPause()
	stale := c.Sampler().Current()
	c.TogglePlayPause()

	m.SetState(player.Playing)
	m.Advance(time.Second)
	assert.Nil(t, c.OnSamplerTick(stale), "tick from a paused run must not reschedule")
	assert.Equal(t, timecode.Zero, c.Display().FormattedTime)

	c.TogglePlayPause()
	assert.Nil(t, c.OnSamplerTick(stale), "tick from an earlier run must be dropped")
	assert.NotNil(t, c.OnSamplerTick(c.Sampler().Current()))
}

func TestOnPlaybackFinished_ResetsRegardlessOfFlag(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"successfully", true},
		{"interrupted", false},
	}

	for _, tt := range tests {
		ok := tt.ok
		t.Run(tt.name, func(t *testing.T) {
			c, m, logs := newTestController(t, 10*time.Second)
			c.TogglePlayPause()
			playFor(c, m, 4*time.Second)
			require.Equal(t, "00:04:00", c.Display().FormattedTime)

			m.SimulateFinished(ok)
			c.OnPlaybackFinished(<-c.FinishedChan())

			d := c.Display()
			assert.False(t, d.Playing)
			assert.Equal(t, timecode.Zero, d.FormattedTime)
			assert.InDelta(t, 0.0, d.SliderValue, 1e-9)
			assert.False(t, c.SamplerActive())
			assert.Equal(t, player.Paused, m.State())
			if !ok {
				assert.Contains(t, logs.String(), "decode error")
			}
		})
	}
}

func TestScrubbing_TicksDoNotMoveSlider(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)
	c.TogglePlayPause()
	playFor(c, m, time.Second)

	c.OnScrubChanged(6, true)
	c.OnScrubChanged(6.25, true)
	playFor(c, m, 500*time.Millisecond)

	d := c.Display()
	assert.True(t, d.Scrubbing)
	assert.InDelta(t, 6.25, d.SliderValue, 1e-9)
	assert.Equal(t, "00:06:25", d.FormattedTime)
	assert.Empty(t, m.SeekCalls(), "no seek before release")

	c.OnScrubChanged(6.5, false)

	require.Len(t, m.SeekCalls(), 1)
	assert.Equal(t, 6500*time.Millisecond, m.SeekCalls()[0])
	assert.False(t, c.Display().Scrubbing)
}

func TestScrubbing_ClampsToDuration(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)

	c.OnScrubChanged(42, false)
	assert.InDelta(t, 10.0, c.Display().SliderValue, 1e-9)
	c.OnScrubChanged(-3, false)
	assert.InDelta(t, 0.0, c.Display().SliderValue, 1e-9)
	assert.Equal(t, []time.Duration{10 * time.Second, 0}, m.SeekCalls())
}

func TestScrubbing_WhilePausedDoesNotResume(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)

	c.OnScrubChanged(4, true)
	c.OnScrubChanged(4, false)

	assert.Equal(t, player.Paused, m.State())
	assert.Equal(t, 4*time.Second, m.Position())
	assert.False(t, c.SamplerActive())
}

func TestScrubbing_SeekErrorIsLogged(t *testing.T) {
	c, m, logs := newTestController(t, 10*time.Second)
	m.SetSeekError(errors.New("device busy"))

	c.OnScrubChanged(2, false)

	assert.Contains(t, logs.String(), "Failed to seek")
	assert.Equal(t, "00:02:00", c.Display().FormattedTime)
}

func TestEndToEnd_PlayThreeSecondsThenPause(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)

	c.TogglePlayPause()
	playFor(c, m, 3*time.Second)

	d := c.Display()
	assert.Equal(t, "00:03:00", d.FormattedTime)
	assert.InDelta(t, 3.0, d.SliderValue, SampleInterval.Seconds())

	c.TogglePlayPause()
	assert.False(t, c.SamplerActive())

	frozen := c.Display()
	playFor(c, m, time.Second)
	assert.Equal(t, frozen, c.Display())
}

func TestEndToEnd_DragDuringPlayback(t *testing.T) {
	c, m, _ := newTestController(t, 10*time.Second)
	c.TogglePlayPause()
	playFor(c, m, 2*time.Second)

	c.OnScrubChanged(7.5, true)
	assert.Equal(t, "00:07:50", c.Display().FormattedTime)
	assert.Equal(t, 2*time.Second, m.Position(), "position untouched mid-drag")

	c.OnScrubChanged(7.5, false)
	assert.Equal(t, 7500*time.Millisecond, m.Position())
	require.Len(t, m.SeekCalls(), 1)

	playFor(c, m, time.Second)
	assert.Equal(t, "00:08:50", c.Display().FormattedTime)
	assert.InDelta(t, 8.5, c.Display().SliderValue, 1e-9)
}

func TestAdjustVolume(t *testing.T) {
	c, m, _ := newTestController(t, time.Second)

	assert.InDelta(t, 0.9, c.AdjustVolume(-0.1), 1e-9)
	assert.InDelta(t, 1.0, c.AdjustVolume(0.5), 1e-9)
	c.SetVolume(0.25)
	assert.InDelta(t, 0.25, m.Volume(), 1e-9)
	assert.InDelta(t, 0.25, c.Volume(), 1e-9)
}

func TestClose_ReleasesSession(t *testing.T) {
	c, m, _ := newTestController(t, time.Second)
	c.TogglePlayPause()

	c.Close()

	assert.Equal(t, 1, m.CloseCalls())
	assert.False(t, c.Ready())
	assert.False(t, c.SamplerActive())
}
