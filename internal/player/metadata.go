package player

import (
	"bytes"
	"strings"

	"github.com/dhowden/tag"
)

// ReadTitle returns the title tag embedded in data, or fallback when the
// asset carries no readable tags (plain WAV usually doesn't).
func ReadTitle(data []byte, fallback string) string {
	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return fallback
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		return fallback
	}
	if artist := strings.TrimSpace(m.Artist()); artist != "" {
		return artist + " - " + title
	}
	return title
}
