// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/frac/internal/common/validate"
	"github.com/michaelmacinnis/frac/internal/number/magnitude"
	"github.com/michaelmacinnis/frac/internal/number/rational"
)

func den(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return rational.New(args[0].Reduce().Den(), magnitude.One(), rational.Positive)
}

// num returns the signed numerator of its argument in lowest terms.
func num(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	r := args[0].Reduce()

	return rational.New(r.Num(), magnitude.One(), r.Sign())
}

func sign(args []*rational.T) (*rational.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	return rational.Int(int64(args[0].Cmp(rational.Zero()))), nil
}
