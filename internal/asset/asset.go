// Package asset holds the audio data bundled into the binary.
package asset

import (
	"embed"
	"io/fs"

	"github.com/cockroachdb/errors"
)

// Sound is the name of the track the player screen loads at start-up.
const Sound = "sound"

// ErrNotFound is returned when no bundled asset has the requested name.
var ErrNotFound = errors.New("asset not found")

//go:embed sounds/*.wav
var sounds embed.FS

// Loader resolves a named asset to its raw bytes.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Bundle serves assets from an fs.FS, looking names up as "<name>.wav".
type Bundle struct {
	fsys fs.FS
}

// Embedded returns the bundle compiled into the binary.
func Embedded() *Bundle {
	sub, err := fs.Sub(sounds, "sounds")
	if err != nil {
		panic("failed to create sub filesystem: " + err.Error())
	}
	return &Bundle{fsys: sub}
}

// NewBundle wraps an arbitrary filesystem, mostly for tests.
func NewBundle(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys}
}

// Load returns the data of the named asset.
func (b *Bundle) Load(name string) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, name+".wav")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read asset %q", name)
	}
	return data, nil
}

var _ Loader = (*Bundle)(nil)
