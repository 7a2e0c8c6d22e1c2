// Released under an MIT license. See LICENSE.

package rational

import (
	"github.com/michaelmacinnis/frac/internal/number/magnitude"
)

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
// Every representation of zero compares equal regardless of sign.
func (x *rational) Cmp(y *T) int {
	xz, yz := x.IsZero(), y.IsZero()

	switch {
	case xz && yz:
		return 0
	case xz:
		if y.sign == Positive {
			return -1
		}

		return 1
	case yz:
		if x.sign == Positive {
			return 1
		}

		return -1
	}

	if x.sign != y.sign {
		if x.sign == Positive {
			return 1
		}

		return -1
	}

	ad, bc := cross(x, y)

	// A larger magnitude is a smaller negative number.
	if x.sign == Negative {
		return magnitude.Compare(bc, ad)
	}

	return magnitude.Compare(ad, bc)
}

// Equal returns true if x and y represent the same number.
func (x *rational) Equal(y *T) bool {
	xz, yz := x.IsZero(), y.IsZero()

	if xz || yz {
		return xz && yz
	}

	if x.sign != y.sign {
		return false
	}

	ad, bc := cross(x, y)

	return magnitude.Compare(ad, bc) == 0
}

// cross returns the cross products x.num*y.den and x.den*y.num.
func cross(x, y *T) (ad, bc magnitude.T) {
	return magnitude.Product(x.num, y.den), magnitude.Product(x.den, y.num)
}
