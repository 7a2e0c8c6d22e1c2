package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	require.NoError(t, Fixed([]int{1}, 1, 1))
	require.NoError(t, Fixed([]int{1, 2}, 1, 2))

	err := Fixed([]int{}, 1, 1)
	require.ErrorIs(t, err, ErrArity)
	assert.Equal(t, "wrong number of arguments: expected 1 argument, passed 0", err.Error())

	err = Fixed([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ErrArity)
	assert.Equal(t, "wrong number of arguments: expected 2 arguments, passed 3", err.Error())
}

func TestVariadic(t *testing.T) {
	require.NoError(t, Variadic([]string{"a", "b", "c"}, 2))

	err := Variadic([]string{"a"}, 2)
	require.ErrorIs(t, err, ErrArity)
	assert.Equal(t, "wrong number of arguments: expected at least 2 arguments, passed 1", err.Error())
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 argument", Count(1, "argument", "s"))
	assert.Equal(t, "0 arguments", Count(0, "argument", "s"))
	assert.Equal(t, "3 arguments", Count(3, "argument", "s"))
}
