package rational

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/frac/internal/number/magnitude"
)

func frac(t *testing.T, n, d uint64, sign Sign) *T {
	t.Helper()

	r, err := Frac(n, d, sign)
	require.NoError(t, err)

	return r
}

func expect(t *testing.T, r *T, num, den uint32, sign Sign) {
	t.Helper()

	assert.Equal(t, magnitude.T{num}, r.Num(), "numerator")
	assert.Equal(t, magnitude.T{den}, r.Den(), "denominator")
	assert.Equal(t, sign, r.Sign(), "sign")
}

func TestAddPositive(t *testing.T) {
	expect(t, Int(2).Add(Int(3)), 5, 1, Positive)
}

func TestAddNegative(t *testing.T) {
	expect(t, Int(-2).Add(Int(-3)), 5, 1, Negative)
}

func TestAddOppositeSigns(t *testing.T) {
	expect(t, Int(5).Add(Int(-3)), 2, 1, Positive)
	expect(t, Int(-5).Add(Int(3)), 2, 1, Negative)
	expect(t, Int(3).Add(Int(-5)), 2, 1, Negative)
	expect(t, Int(-3).Add(Int(5)), 2, 1, Positive)
	expect(t, Int(4).Add(Int(-4)), 0, 1, Positive)
	expect(t, Int(-4).Add(Int(4)), 0, 1, Positive)
}

func TestAddFractions(t *testing.T) {
	expect(t, frac(t, 1, 2, Positive).Add(frac(t, 1, 3, Positive)), 5, 6, Positive)
}

func TestAddDoesNotReduce(t *testing.T) {
	expect(t, frac(t, 1, 2, Positive).Add(frac(t, 1, 2, Positive)), 4, 4, Positive)
}

func TestSub(t *testing.T) {
	expect(t, Int(10).Sub(Int(7)), 3, 1, Positive)
	expect(t, Int(7).Sub(Int(10)), 3, 1, Negative)
	expect(t, Int(-7).Sub(Int(-10)), 3, 1, Positive)
}

func TestSubSelfIsZero(t *testing.T) {
	for _, x := range []*T{Int(9), Int(-9), frac(t, 2, 7, Negative)} {
		d := x.Sub(x)
		assert.Equal(t, magnitude.T{0}, d.Num())
		assert.True(t, d.IsZero())
		assert.Equal(t, Positive, d.Sign())
	}
}

func TestMul(t *testing.T) {
	expect(t, frac(t, 2, 3, Positive).Mul(frac(t, 3, 4, Positive)), 6, 12, Positive)
	expect(t, Int(2).Mul(Int(-3)), 6, 1, Negative)
	expect(t, Int(-2).Mul(Int(-3)), 6, 1, Positive)
}

func TestDiv(t *testing.T) {
	q, err := frac(t, 1, 2, Positive).Div(frac(t, 3, 4, Negative))
	require.NoError(t, err)
	expect(t, q, 4, 6, Negative)
}

func TestDivByZero(t *testing.T) {
	for _, d := range []uint64{1, 7, 1 << 40} {
		_, err := Int(10).Div(frac(t, 0, d, Positive))
		assert.ErrorIs(t, err, ErrDivisionByZero)

		_, err = Int(10).Div(frac(t, 0, d, Negative))
		assert.ErrorIs(t, err, ErrDivisionByZero)
	}

	_, err := Zero().Div(Int(3))
	assert.NoError(t, err)
}

func TestReduce(t *testing.T) {
	expect(t, frac(t, 100, 150, Positive).Reduce(), 2, 3, Positive)
	expect(t, frac(t, 100, 150, Negative).Reduce(), 2, 3, Negative)
	expect(t, frac(t, 3, 7, Positive).Reduce(), 3, 7, Positive)
	expect(t, frac(t, 0, 9, Positive).Reduce(), 0, 1, Positive)
}

func TestReduceLarge(t *testing.T) {
	// Large common factors need real long division.
	huge := Int(1 << 62).Mul(Int(1 << 62))

	r, err := huge.Div(huge.Mul(Int(3)))
	require.NoError(t, err)

	expect(t, r.Reduce(), 1, 3, Positive)
}

func TestEqual(t *testing.T) {
	assert.True(t, frac(t, 2, 4, Positive).Equal(frac(t, 1, 2, Positive)))
	assert.False(t, frac(t, 1, 2, Positive).Equal(frac(t, 1, 2, Negative)))
	assert.True(t, frac(t, 0, 5, Negative).Equal(frac(t, 0, 1, Positive)))
	assert.False(t, frac(t, 0, 5, Positive).Equal(Int(1)))
	assert.False(t, Int(1).Equal(Zero()))
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		x, y *T
		want int
	}{
		{"half greater than third", frac(t, 1, 2, Positive), frac(t, 1, 3, Positive), 1},
		{"negative half less than negative third", frac(t, 1, 2, Negative), frac(t, 1, 3, Negative), -1},
		{"zeros", frac(t, 0, 3, Negative), Zero(), 0},
		{"zero below positive", Zero(), Int(1), -1},
		{"zero above negative", Zero(), Int(-1), 1},
		{"positive above zero", Int(1), Zero(), 1},
		{"negative below zero", Int(-1), Zero(), -1},
		{"positive above negative", Int(1), Int(-100), 1},
		{"negative below positive", Int(-100), Int(1), -1},
		{"equal fractions", frac(t, 2, 4, Negative), frac(t, 1, 2, Negative), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.x.Cmp(tt.y))
		})
	}
}

func TestNewValidatesDenominator(t *testing.T) {
	_, err := Frac(1, 0, Positive)
	assert.ErrorIs(t, err, ErrZeroDenominator)

	_, err = New(magnitude.T{1}, magnitude.T{0, 0}, Negative)
	assert.ErrorIs(t, err, ErrZeroDenominator)

	_, err = New(nil, magnitude.T{1}, Positive)
	assert.ErrorIs(t, err, ErrSyntax)

	r, err := New(magnitude.T{4, 0}, magnitude.T{2}, Positive)
	require.NoError(t, err)
	expect(t, r, 4, 2, Positive)
}

func TestOperandsAreNotModified(t *testing.T) {
	x := frac(t, 6, 8, Negative)
	y := frac(t, 3, 5, Positive)

	_ = x.Add(y)
	_ = x.Sub(y)
	_ = x.Mul(y)
	_, _ = x.Div(y)
	_ = x.Reduce()
	_ = x.Neg()

	expect(t, x, 6, 8, Negative)
	expect(t, y, 3, 5, Positive)

	n := x.Num()
	n[0] = 99
	expect(t, x, 6, 8, Negative)
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	one := One()
	zero := Zero()

	for i := 0; i < 300; i++ {
		x, y, z := random(r), random(r), random(r)

		assert.True(t, x.Add(y).Equal(y.Add(x)), "add commutes")
		assert.True(t, x.Mul(y).Equal(y.Mul(x)), "mul commutes")
		assert.True(t, x.Add(y).Add(z).Equal(x.Add(y.Add(z))), "add associates")
		assert.True(t, x.Add(zero).Equal(x), "additive identity")
		assert.True(t, x.Mul(one).Equal(x), "multiplicative identity")
		assert.True(t, x.Sub(x).IsZero(), "additive inverse")

		reduced := x.Reduce()
		assert.True(t, reduced.Equal(x), "reduce preserves value")
		assert.True(t, magnitude.GCD(reduced.num, reduced.den).IsOne() || x.IsZero())

		c := x.Cmp(y)
		lt, eq, gt := c < 0, x.Equal(y), c > 0
		assert.Equal(t, 1, count(lt, eq, gt), "exactly one ordering holds")
		assert.Equal(t, -c, y.Cmp(x), "ordering is antisymmetric")

		if !x.IsZero() && !y.IsZero() {
			want := product(x.sign, y.sign)
			assert.Equal(t, want, x.Mul(y).Sign())
		}
	}
}

func TestAgainstBig(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	for i := 0; i < 300; i++ {
		x, y := random(r), random(r)
		bx, by := toBig(x), toBig(y)

		require.Equal(t, new(big.Rat).Add(bx, by).Cmp(toBig(x.Add(y))), 0)
		require.Equal(t, new(big.Rat).Sub(bx, by).Cmp(toBig(x.Sub(y))), 0)
		require.Equal(t, new(big.Rat).Mul(bx, by).Cmp(toBig(x.Mul(y))), 0)
		require.Equal(t, bx.Cmp(by), x.Cmp(y))
		require.Equal(t, bx.RatString(), x.Reduce().String())

		q, err := x.Div(y)
		if y.IsZero() {
			require.ErrorIs(t, err, ErrDivisionByZero)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, new(big.Rat).Quo(bx, by).Cmp(toBig(q)), 0)
	}
}

func count(bs ...bool) int {
	n := 0

	for _, b := range bs {
		if b {
			n++
		}
	}

	return n
}

func random(r *rand.Rand) *T {
	sign := Positive
	if r.Intn(2) == 0 {
		sign = Negative
	}

	n := uint64(r.Intn(50))
	if r.Intn(4) == 0 {
		n = r.Uint64()
	}

	x, _ := Frac(n, uint64(1+r.Intn(40)), sign)

	return x
}

func toBig(x *T) *big.Rat {
	n, _ := new(big.Int).SetString(x.num.String(), 10)
	d, _ := new(big.Int).SetString(x.den.String(), 10)

	if x.sign == Negative {
		n.Neg(n)
	}

	return new(big.Rat).SetFrac(n, d)
}
