// Released under an MIT license. See LICENSE.

package rational

import (
	"math"

	"github.com/michaelmacinnis/frac/internal/number/magnitude"
)

// Limits on operations whose result size grows with their argument.
const (
	MaxBits      = 1 << 24
	MaxExponent  = 1 << 16
	MaxFactorial = 10000
)

// Abs returns the absolute value of x.
func (x *rational) Abs() *T {
	return build(clone(x.num), clone(x.den), Positive)
}

// Ceil returns the least integer greater than or equal to x.
func (x *rational) Ceil() *T {
	return x.Neg().Floor().Neg()
}

// Factorial returns x! for a non-negative integer x no larger than
// MaxFactorial.
func (x *rational) Factorial() (*T, error) {
	n, err := x.Int64()
	if err != nil {
		return nil, err
	}

	if n < 0 || n > MaxFactorial {
		return nil, ErrRange
	}

	f := magnitude.One()
	for i := int64(2); i <= n; i++ {
		f = magnitude.Product(f, magnitude.FromUint64(uint64(i)))
	}

	return build(f, magnitude.One(), Positive), nil
}

// Floor returns the greatest integer less than or equal to x.
func (x *rational) Floor() *T {
	q, r := magnitude.DivMod(x.num, x.den)

	if x.sign == Negative && !magnitude.IsZero(r) {
		q = magnitude.Sum(q, magnitude.One())
	}

	sign := x.sign
	if magnitude.IsZero(q) {
		sign = Positive
	}

	return build(q, magnitude.One(), sign)
}

// Int64 returns x as an int64. It fails with ErrNotInteger if x is not an
// integer and with ErrRange if x does not fit.
func (x *rational) Int64() (int64, error) {
	q, r := magnitude.DivMod(x.num, x.den)
	if !magnitude.IsZero(r) {
		return 0, ErrNotInteger
	}

	u, ok := q.Uint64()
	if !ok {
		return 0, ErrRange
	}

	if x.sign == Negative {
		if u > math.MaxInt64+1 {
			return 0, ErrRange
		}

		return -int64(u), nil
	}

	if u > math.MaxInt64 {
		return 0, ErrRange
	}

	return int64(u), nil
}

// Inv returns 1/x or ErrDivisionByZero if x is zero.
func (x *rational) Inv() (*T, error) {
	return One().Div(x)
}

// IsInt returns true if the denominator of x divides its numerator.
func (x *rational) IsInt() bool {
	return magnitude.IsZero(magnitude.Mod(x.num, x.den))
}

// Mod returns the Euclidean remainder of x divided by y. Both must be
// integers. The result is always in the range [0, |y|).
func (x *rational) Mod(y *T) (*T, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}

	if !x.IsInt() || !y.IsInt() {
		return nil, ErrNotInteger
	}

	a := magnitude.Quotient(x.num, x.den)
	m := magnitude.Quotient(y.num, y.den)

	r := magnitude.Mod(a, m)
	if x.sign == Negative && !magnitude.IsZero(r) {
		r = magnitude.Difference(m, r)
	}

	return build(r, magnitude.One(), Positive), nil
}

// Pow returns x raised to the integer power n.
// A negative power of zero fails with ErrDivisionByZero. A power whose
// numerator or denominator could need more than MaxBits bits fails with
// ErrRange.
func (x *rational) Pow(n int64) (*T, error) {
	if n < -MaxExponent || n > MaxExponent {
		return nil, ErrRange
	}

	w := x.num.BitLen()
	if b := x.den.BitLen(); b > w {
		w = b
	}

	if n > 1 && int64(w-1)*n > MaxBits {
		return nil, ErrRange
	}

	if n < 0 {
		inv, err := x.Inv()
		if err != nil {
			return nil, err
		}

		return inv.Pow(-n)
	}

	sign := Positive
	if x.sign == Negative && n%2 == 1 {
		sign = Negative
	}

	return build(power(x.num, n), power(x.den, n), sign), nil
}

// Reduce returns x in lowest terms.
func (x *rational) Reduce() *T {
	g := magnitude.GCD(x.num, x.den)

	if g.IsOne() {
		return build(clone(x.num), clone(x.den), x.sign)
	}

	return build(
		magnitude.Quotient(x.num, g),
		magnitude.Quotient(x.den, g),
		x.sign,
	)
}

func power(m magnitude.T, n int64) magnitude.T {
	z := magnitude.One()

	for b := clone(m); n > 0; n >>= 1 {
		if n&1 == 1 {
			z = magnitude.Product(z, b)
		}

		if n > 1 {
			b = magnitude.Product(b, b)
		}
	}

	return z
}
