package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style. Play and Pause are the two
// faces of the play/pause button: Play is shown while paused ("off") and
// Pause while playing ("on").
type Icons struct {
	Play       string
	Pause      string
	Audio      string
	Volume     string
	VolumeMute string
	Knob       string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Audio:      "\uf001 ",    // nf-fa-music
		Volume:     "\U000f057e", // nf-md-volume_high
		VolumeMute: "\U000f0581", // nf-md-volume_off
		Knob:       "●",
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Audio:      "🎵 ",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Knob:       "●",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Audio:      "",
		Volume:     "vol",
		VolumeMute: "mute",
		Knob:       "o",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Button returns the play/pause button face for the given mode.
func Button(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// FormatAudio formats a track name with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// Volume returns the volume indicator, or the muted one at zero level.
func Volume(level float64) string {
	if level <= 0 {
		return current.VolumeMute
	}
	return current.Volume
}

// Knob returns the slider thumb.
func Knob() string {
	return current.Knob
}
