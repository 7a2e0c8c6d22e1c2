// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to builtins.
package validate

import (
	"errors"
	"fmt"
)

// ErrArity is wrapped by every error returned by this package.
var ErrArity = errors.New("wrong number of arguments")

// Variadic returns an error if fewer than min arguments were passed.
func Variadic[E any](actual []E, min int) error {
	if len(actual) < min {
		s := Count(min, "argument", "s")

		return fmt.Errorf("%w: expected at least %s, passed %d", ErrArity, s, len(actual))
	}

	return nil
}

func Fixed[E any](actual []E, min, max int) error {
	n := len(actual)

	switch {
	case n < min:
		return fmt.Errorf("%w: expected %s, passed %d", ErrArity, Count(min, "argument", "s"), n)
	case n > max:
		return fmt.Errorf("%w: expected %s, passed %d", ErrArity, Count(max, "argument", "s"), n)
	}

	return nil
}

func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
