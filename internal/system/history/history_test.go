package history

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	err := Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, "1 + 1\nx = 2\n")
	})
	require.NoError(t, err)

	var b bytes.Buffer

	err = Load(path, func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	require.NoError(t, err)
	assert.Equal(t, "1 + 1\nx = 2\n", b.String())
}

func TestMissingFile(t *testing.T) {
	called := false

	err := Load(filepath.Join(t.TempDir(), "missing"), func(r io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestDefault(t *testing.T) {
	assert.True(t, strings.HasSuffix(Default(), ".frac_history"))
}
