// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/frac/internal/common/validate"
	"github.com/michaelmacinnis/frac/internal/number/rational"
)

func cmp(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	return rational.Int(int64(args[0].Cmp(args[1]))), nil
}

// eq returns 1 if all of its arguments are equal and 0 otherwise.
func eq(args []*rational.T) (*rational.T, error) {
	if err := validate.Variadic(args, 2); err != nil {
		return nil, err
	}

	for _, a := range args[1:] {
		if !args[0].Equal(a) {
			return rational.Zero(), nil
		}
	}

	return rational.One(), nil
}

func maximum(args []*rational.T) (*rational.T, error) {
	return extreme(args, 1)
}

func minimum(args []*rational.T) (*rational.T, error) {
	return extreme(args, -1)
}

// extreme returns the greatest (direction 1) or least (direction -1)
// argument. Ties go to the earliest.
func extreme(args []*rational.T, direction int) (*rational.T, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	v := args[0]

	for _, a := range args[1:] {
		if a.Cmp(v) == direction {
			v = a
		}
	}

	return v, nil
}
