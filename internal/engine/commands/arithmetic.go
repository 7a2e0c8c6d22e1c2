// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/frac/internal/common/validate"
	"github.com/michaelmacinnis/frac/internal/number/magnitude"
	"github.com/michaelmacinnis/frac/internal/number/rational"
)

func abs(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Abs(), nil
}

func ceil(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Ceil(), nil
}

func floor(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Floor(), nil
}

// gcd returns the greatest common divisor of its integer arguments.
// The result is never negative.
func gcd(args []*rational.T) (*rational.T, error) {
	if err := validate.Variadic(args, 2); err != nil {
		return nil, err
	}

	g := magnitude.Zero()

	for _, a := range args {
		if !a.IsInt() {
			return nil, rational.ErrNotInteger
		}

		g = magnitude.GCD(g, a.Floor().Abs().Num())
	}

	return rational.New(g, magnitude.One(), rational.Positive)
}

func inv(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Inv()
}

func reduce(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return args[0].Reduce(), nil
}
