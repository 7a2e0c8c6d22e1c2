// Released under an MIT license. See LICENSE.

// Package magnitude provides unsigned arbitrary-precision integers.
//
// A magnitude is a sequence of 32-bit words, least significant first.
// Magnitudes are normalized: there are no trailing zero words except in
// the canonical zero, [0]. Every function allocates a fresh result and
// never modifies its arguments.
package magnitude

import (
	"math/bits"
	"strings"
)

// T (magnitude) is a non-negative integer in base 2^32.
type T []uint32

type magnitude = T

// Zero returns the canonical zero magnitude.
func Zero() T {
	return T{0}
}

// One returns the magnitude 1.
func One() T {
	return T{1}
}

// FromUint64 creates a magnitude from u.
func FromUint64(u uint64) T {
	if u>>32 == 0 {
		return T{uint32(u)}
	}

	return T{uint32(u), uint32(u >> 32)}
}

// Compare returns -1, 0, or +1 as a is less than, equal to, or greater than b.
// Both a and b must be normalized.
func Compare(a, b T) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// Difference returns the absolute difference of a and b.
// The smaller magnitude is always subtracted from the larger.
func Difference(a, b T) T {
	switch Compare(a, b) {
	case 0:
		return Zero()
	case -1:
		a, b = b, a
	}

	z := make(T, len(a))

	var borrow uint64

	for i, w := range a {
		d := uint64(w) - word(b, i) - borrow
		z[i] = uint32(d)
		borrow = (d >> 32) & 1
	}

	return z.norm()
}

// IsZero returns true if every word of a is zero.
func IsZero(a T) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}

	return true
}

// Product returns a*b using schoolbook multiplication.
func Product(a, b T) T {
	z := make(T, len(a)+len(b))

	for i, x := range a {
		if x == 0 {
			continue
		}

		var carry uint64

		for j, y := range b {
			p := uint64(x)*uint64(y) + uint64(z[i+j]) + carry
			z[i+j] = uint32(p)
			carry = p >> 32
		}

		z[i+len(b)] = uint32(carry)
	}

	return z.norm()
}

// Sum returns a+b.
func Sum(a, b T) T {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	z := make(T, n, n+1)

	var carry uint64

	for i := 0; i < n; i++ {
		s := word(a, i) + word(b, i) + carry
		z[i] = uint32(s)
		carry = s >> 32
	}

	if carry > 0 {
		z = append(z, uint32(carry))
	}

	return z.norm()
}

// BitLen returns the number of bits required to represent m.
// The bit length of zero is 0.
func (m magnitude) BitLen() int {
	m = m.norm()

	top := len(m) - 1
	if top == 0 && m[0] == 0 {
		return 0
	}

	return top*32 + bits.Len32(m[top])
}

// IsOne returns true if m is the magnitude 1.
func (m magnitude) IsOne() bool {
	return len(m) == 1 && m[0] == 1
}

// Uint64 returns m as a uint64 and true, if m fits.
func (m magnitude) Uint64() (uint64, bool) {
	m = m.norm()

	switch len(m) {
	case 1:
		return uint64(m[0]), true
	case 2:
		return uint64(m[1])<<32 | uint64(m[0]), true
	}

	return 0, false
}

// String returns the decimal text of m.
func (m magnitude) String() string {
	if IsZero(m) {
		return "0"
	}

	// Peel off nine decimal digits at a time.
	const chunk = 1000000000

	parts := []uint32{}

	for q := m.norm(); !IsZero(q); {
		var r uint32

		q, r = divWord(q, chunk)
		parts = append(parts, r)
	}

	var b strings.Builder

	b.WriteString(uitoa(parts[len(parts)-1], 0))

	for i := len(parts) - 2; i >= 0; i-- {
		b.WriteString(uitoa(parts[i], 9))
	}

	return b.String()
}

func (m magnitude) bit(i int) uint32 {
	w := i / 32
	if w >= len(m) {
		return 0
	}

	return (m[w] >> (uint(i) % 32)) & 1
}

func (m magnitude) clone() T {
	c := make(T, len(m))
	copy(c, m)

	return c
}

// norm strips trailing zero words, keeping at least one word.
// It never returns an empty magnitude.
func (m magnitude) norm() T {
	n := len(m)
	for n > 1 && m[n-1] == 0 {
		n--
	}

	if n == 0 {
		return Zero()
	}

	return m[:n]
}

func uitoa(w uint32, width int) string {
	var buf [10]byte

	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + w%10)
		w /= 10

		if w == 0 && len(buf)-i >= width {
			return string(buf[i:])
		}
	}
}

func word(m T, i int) uint64 {
	if i < len(m) {
		return uint64(m[i])
	}

	return 0
}
