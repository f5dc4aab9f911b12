package player

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Format identifies an audio container.
type Format string

const (
	FormatWAV     Format = "WAV"
	FormatMP3     Format = "MP3"
	FormatFLAC    Format = "FLAC"
	FormatVorbis  Format = "OGG"
	FormatUnknown Format = ""
)

// ErrUnsupportedFormat is returned when the data matches no known container.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Sniff guesses the container from the leading bytes of data.
func Sniff(data []byte) Format {
	switch {
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return FormatWAV
	case len(data) >= 4 && string(data[0:4]) == "fLaC":
		return FormatFLAC
	case len(data) >= 4 && string(data[0:4]) == "OggS":
		return FormatVorbis
	case len(data) >= 3 && string(data[0:3]) == "ID3":
		return FormatMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// MPEG frame sync
		return FormatMP3
	default:
		return FormatUnknown
	}
}

// readSeekCloser lets the decoders seek inside an in-memory asset.
type readSeekCloser struct {
	*bytes.Reader
}

func (readSeekCloser) Close() error { return nil }

// Decode turns raw asset data into a seekable stream.
func Decode(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)

	rc := readSeekCloser{bytes.NewReader(data)}

	kind := Sniff(data)
	switch kind {
	case FormatWAV:
		streamer, format, err = wav.Decode(rc)
	case FormatMP3:
		streamer, format, err = mp3.Decode(rc)
	case FormatFLAC:
		streamer, format, err = flac.Decode(rc)
	case FormatVorbis:
		streamer, format, err = vorbis.Decode(rc)
	case FormatUnknown:
		return nil, beep.Format{}, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, beep.Format{}, errors.Wrapf(err, "decode %s", kind)
	}
	return streamer, format, nil
}

var _ io.ReadSeekCloser = readSeekCloser{}
