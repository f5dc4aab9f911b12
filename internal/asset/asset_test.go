package asset

import (
	"testing"
	"testing/fstest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded_LoadsSound(t *testing.T) {
	data, err := Embedded().Load(Sound)
	require.NoError(t, err)
	require.Greater(t, len(data), 44, "expected more than a bare WAV header")
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestBundle_Load_Missing(t *testing.T) {
	b := NewBundle(fstest.MapFS{})

	_, err := b.Load("nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBundle_Load_FromMapFS(t *testing.T) {
	b := NewBundle(fstest.MapFS{
		"beep.wav": &fstest.MapFile{Data: []byte("RIFF")},
	})

	data, err := b.Load("beep")

	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)
}
