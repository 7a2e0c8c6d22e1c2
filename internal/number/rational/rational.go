// Released under an MIT license. See LICENSE.

// Package rational provides exact signed fractions.
//
// A rational is a numerator and denominator magnitude with a sign. Values
// are immutable: every operation returns a newly allocated result and
// never modifies its operands. Results are not kept in lowest terms; call
// Reduce to simplify.
package rational

import (
	"errors"

	"github.com/michaelmacinnis/frac/internal/number/magnitude"
)

// Errors returned by rational operations.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNotInteger      = errors.New("not an integer")
	ErrRange           = errors.New("out of range")
	ErrSyntax          = errors.New("invalid number")
	ErrZeroDenominator = errors.New("zero denominator")
)

// Sign is the sign of a rational.
type Sign int8

// Signs.
const (
	Positive Sign = iota
	Negative
)

// Flip returns the opposite sign.
func (s Sign) Flip() Sign {
	if s == Positive {
		return Negative
	}

	return Positive
}

// String returns a string representation of Sign. Useful for debugging.
func (s Sign) String() string {
	if s == Negative {
		return "Negative"
	}

	return "Positive"
}

// T (rational) is a signed fraction.
type T struct {
	num  magnitude.T
	den  magnitude.T
	sign Sign
}

type rational = T

// New creates a rational from a numerator, denominator, and sign.
// The magnitudes are copied.
func New(num, den magnitude.T, sign Sign) (*T, error) {
	if len(num) == 0 || len(den) == 0 {
		return nil, ErrSyntax
	}

	if magnitude.IsZero(den) {
		return nil, ErrZeroDenominator
	}

	return build(clone(num), clone(den), sign), nil
}

// Frac creates the rational n/d with the given sign.
func Frac(n, d uint64, sign Sign) (*T, error) {
	return New(magnitude.FromUint64(n), magnitude.FromUint64(d), sign)
}

// Int creates a rational from the integer i.
func Int(i int64) *T {
	sign := Positive
	u := uint64(i)

	if i < 0 {
		sign = Negative
		u = -u
	}

	return build(magnitude.FromUint64(u), magnitude.One(), sign)
}

// One returns the rational 1/1.
func One() *T {
	return build(magnitude.One(), magnitude.One(), Positive)
}

// Zero returns the rational 0/1.
func Zero() *T {
	return build(magnitude.Zero(), magnitude.One(), Positive)
}

// Add returns x+y.
func (x *rational) Add(y *T) *T {
	ad := magnitude.Product(x.num, y.den)
	bc := magnitude.Product(x.den, y.num)
	bd := magnitude.Product(x.den, y.den)

	if x.sign == y.sign {
		return build(magnitude.Sum(ad, bc), bd, x.sign)
	}

	// Signs differ so the numerator is the difference of the cross
	// products and the sign is that of the larger one.
	sign := Positive

	switch magnitude.Compare(ad, bc) {
	case 1:
		sign = x.sign
	case -1:
		sign = y.sign
	}

	return build(magnitude.Difference(ad, bc), bd, sign)
}

// Den returns a copy of the denominator of x.
func (x *rational) Den() magnitude.T {
	return clone(x.den)
}

// Div returns x/y or ErrDivisionByZero if y is zero.
func (x *rational) Div(y *T) (*T, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}

	return build(
		magnitude.Product(x.num, y.den),
		magnitude.Product(x.den, y.num),
		product(x.sign, y.sign),
	), nil
}

// IsZero returns true if x has a zero numerator.
func (x *rational) IsZero() bool {
	return magnitude.IsZero(x.num)
}

// Mul returns x*y.
func (x *rational) Mul(y *T) *T {
	return build(
		magnitude.Product(x.num, y.num),
		magnitude.Product(x.den, y.den),
		product(x.sign, y.sign),
	)
}

// Neg returns x with its sign flipped.
func (x *rational) Neg() *T {
	return build(clone(x.num), clone(x.den), x.sign.Flip())
}

// Num returns a copy of the numerator of x.
func (x *rational) Num() magnitude.T {
	return clone(x.num)
}

// Sign returns the sign of x.
func (x *rational) Sign() Sign {
	return x.sign
}

// Sub returns x-y.
func (x *rational) Sub(y *T) *T {
	return x.Add(y.Neg())
}

func build(num, den magnitude.T, sign Sign) *T {
	return &T{num: num, den: den, sign: sign}
}

func clone(m magnitude.T) magnitude.T {
	n := len(m)
	for n > 1 && m[n-1] == 0 {
		n--
	}

	c := make(magnitude.T, n)
	copy(c, m)

	return c
}

func product(a, b Sign) Sign {
	if a == b {
		return Positive
	}

	return Negative
}
