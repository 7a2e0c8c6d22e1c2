// Released under an MIT license. See LICENSE.

package magnitude

import (
	"errors"
)

// Divider computes the quotient and remainder of a divided by b.
// Implementations may assume b is not zero.
type Divider func(a, b T) (q, r T)

// DivMod is the division primitive used by GCD, Mod, and Quotient.
// Long is the default. Subtractive gives the same results and is kept
// to check Long against.
//
//nolint:gochecknoglobals
var DivMod Divider = Long

// ErrSyntax is returned when parsing text that is not a decimal integer.
var ErrSyntax = errors.New("invalid decimal digits")

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm. GCD(a, 0) is a and GCD(0, 0) is 0.
func GCD(a, b T) T {
	a = a.norm().clone()
	b = b.norm().clone()

	for !IsZero(b) {
		a, b = b, Mod(a, b)
	}

	return a
}

// Mod returns a mod b. It panics if b is zero.
func Mod(a, b T) T {
	_, r := divide(a, b)

	return r
}

// Quotient returns a / b, discarding the remainder. It panics if b is zero.
func Quotient(a, b T) T {
	q, _ := divide(a, b)

	return q
}

// Long divides a by b using shift-and-subtract long division.
// Single word divisors are divided a word at a time.
func Long(a, b T) (q, r T) {
	a = a.norm()
	b = b.norm()

	if Compare(a, b) < 0 {
		return Zero(), a.clone()
	}

	if len(b) == 1 {
		d, w := divWord(a, b[0])

		return d, T{w}
	}

	q = make(T, len(a))
	r = Zero()

	for i := a.BitLen() - 1; i >= 0; i-- {
		r = shl1(r, a.bit(i))

		if Compare(r, b) >= 0 {
			r = Difference(r, b)
			q[i/32] |= 1 << (uint(i) % 32)
		}
	}

	return q.norm(), r
}

// Subtractive divides a by b by repeatedly subtracting b from a.
// It takes time proportional to the quotient and so is only suitable
// when the quotient is known to be small.
func Subtractive(a, b T) (q, r T) {
	q = Zero()
	r = a.norm().clone()

	one := One()

	for Compare(r, b) >= 0 {
		r = Difference(r, b)
		q = Sum(q, one)
	}

	return q, r
}

// Parse converts decimal digits to a magnitude.
func Parse(s string) (T, error) {
	if s == "" {
		return nil, ErrSyntax
	}

	z := Zero()

	// Accumulate nine digits at a time.
	for len(s) > 0 {
		n := len(s)
		if n > 9 { //nolint:gomnd
			n = 9
		}

		var w, scale uint32 = 0, 1

		for _, c := range s[:n] {
			if c < '0' || c > '9' {
				return nil, ErrSyntax
			}

			w = w*10 + uint32(c-'0')
			scale *= 10
		}

		z = Sum(Product(z, T{scale}), T{w})
		s = s[n:]
	}

	return z, nil
}

func divide(a, b T) (q, r T) {
	if IsZero(b) {
		panic("magnitude: division by zero")
	}

	return DivMod(a, b)
}

// divWord divides a by the single word y, returning the quotient and
// the remainder.
func divWord(a T, y uint32) (T, uint32) {
	q := make(T, len(a))

	var r uint64

	for i := len(a) - 1; i >= 0; i-- {
		u := r<<32 | uint64(a[i])
		q[i] = uint32(u / uint64(y))
		r = u % uint64(y)
	}

	return q.norm(), uint32(r)
}

// shl1 returns m<<1 | b, where b is 0 or 1.
func shl1(m T, b uint32) T {
	z := make(T, len(m), len(m)+1)

	carry := b

	for i, w := range m {
		z[i] = w<<1 | carry
		carry = w >> 31
	}

	if carry != 0 {
		z = append(z, carry)
	}

	return z.norm()
}
