// Released under an MIT license. See LICENSE.

package rational

import (
	"strings"

	"github.com/michaelmacinnis/frac/internal/number/magnitude"
)

// Decimal returns the decimal expansion of x to the given number of places.
// The expansion is truncated. If it does not terminate within places digits
// it is followed by "...".
func (x *rational) Decimal(places int) string {
	q, r := magnitude.DivMod(x.num, x.den)

	var b strings.Builder

	if x.sign == Negative && !x.IsZero() {
		b.WriteByte('-')
	}

	b.WriteString(q.String())

	if places <= 0 || magnitude.IsZero(r) {
		if !magnitude.IsZero(r) {
			b.WriteString("...")
		}

		return b.String()
	}

	b.WriteByte('.')

	ten := magnitude.FromUint64(10) //nolint:gomnd

	for i := 0; i < places && !magnitude.IsZero(r); i++ {
		var d magnitude.T

		d, r = magnitude.DivMod(magnitude.Product(r, ten), x.den)
		b.WriteString(d.String())
	}

	if !magnitude.IsZero(r) {
		b.WriteString("...")
	}

	return b.String()
}

// String returns x as "n", "n/d", or "-n/d". The fraction is not reduced.
// Zero is always "0".
func (x *rational) String() string {
	if x.IsZero() {
		return "0"
	}

	s := x.num.String()
	if !x.den.IsOne() {
		s += "/" + x.den.String()
	}

	if x.sign == Negative {
		s = "-" + s
	}

	return s
}

// Parse converts a numeric literal to a rational. A literal is a sequence of
// decimal digits with at most one decimal point. The result is not reduced:
// "12.50" is 1250/100.
func Parse(s string) (*T, error) {
	whole, fraction, found := strings.Cut(s, ".")
	if strings.Contains(fraction, ".") {
		return nil, ErrSyntax
	}

	digits := whole + fraction
	if digits == "" {
		return nil, ErrSyntax
	}

	num, err := magnitude.Parse(digits)
	if err != nil {
		return nil, ErrSyntax
	}

	den := magnitude.One()
	if found && len(fraction) > 0 {
		den, _ = magnitude.Parse("1" + strings.Repeat("0", len(fraction)))
	}

	return New(num, den, Positive)
}

// ParseFraction converts text produced by String back into a rational.
func ParseFraction(s string) (*T, error) {
	sign := Positive

	if strings.HasPrefix(s, "-") {
		sign = Negative
		s = s[1:]
	}

	n, d, found := strings.Cut(s, "/")

	num, err := magnitude.Parse(n)
	if err != nil {
		return nil, ErrSyntax
	}

	den := magnitude.One()

	if found {
		den, err = magnitude.Parse(d)
		if err != nil {
			return nil, ErrSyntax
		}
	}

	return New(num, den, sign)
}
