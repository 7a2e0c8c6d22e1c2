package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/frac/internal/number/rational"
)

func createTestStore(t *testing.T) *T {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "registers.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	v, err := rational.Frac(6, 4, rational.Negative)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "x", v))

	r, err := s.Load(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "-6/4", r.String())
	assert.True(t, r.Equal(v))
}

func TestSaveReplaces(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "x", rational.Int(1)))
	require.NoError(t, s.Save(ctx, "x", rational.Int(2)))

	r, err := s.Load(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "2", r.String())
}

func TestNames(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	names, err := s.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, s.Save(ctx, name, rational.One()))
	}

	names, err = s.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	require.NoError(t, s.Delete(ctx, "b"))
	require.NoError(t, s.Delete(ctx, "missing"))

	names, err = s.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, names)
}

func TestNotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registers.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "pi", mustFrac(t, 355, 113)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)

	defer s.Close()

	r, err := s.Load(ctx, "pi")
	require.NoError(t, err)
	assert.Equal(t, "355/113", r.String())
}

func mustFrac(t *testing.T, n, d uint64) *rational.T {
	t.Helper()

	v, err := rational.Frac(n, d, rational.Positive)
	require.NoError(t, err)

	return v
}
