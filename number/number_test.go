package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New(2, 3)
	b := New(1, -1)

	assert.Equal(t, New(3, 2), a.Add(b))
	assert.Equal(t, New(1, 4), a.Sub(b))
	assert.InDelta(t, 5.0, a.Mul(b).Real, 1e-9)
	assert.InDelta(t, 1.0, a.Mul(b).Imag, 1e-9)
}

func TestDivisionByZeroIsTotal(t *testing.T) {
	z := New(1, 0).Div(New(0, 0))
	assert.True(t, math.IsInf(z.Real, 1) || math.IsNaN(z.Real))
}

func TestTotalCmpOrdersByRealThenImag(t *testing.T) {
	assert.Equal(t, -1, New(1, 5).TotalCmp(New(2, 0)))
	assert.Equal(t, -1, New(1, 0).TotalCmp(New(1, 1)))
	assert.Equal(t, 0, New(1, 1).TotalCmp(New(1, 1)))
	assert.Equal(t, 1, NaN.TotalCmp(New(0, 0)))
}

func TestParseRadix(t *testing.T) {
	v, ok := ParseRadix("3.14", 10)
	assert.True(t, ok)
	assert.InDelta(t, 3.14, v.Real, 1e-9)

	_, ok = ParseRadix("3.14", 16)
	assert.False(t, ok)

	_, ok = ParseRadix("not-a-number", 10)
	assert.False(t, ok)
}

func TestSubFactorialInteger(t *testing.T) {
	// !0=1 !1=0 !2=1 !3=2 !4=9 !5=44
	cases := []struct {
		n    float64
		want float64
	}{
		{0, 1}, {1, 0}, {2, 1}, {3, 2}, {4, 9}, {5, 44},
	}
	for _, c := range cases {
		got := FromReal(c.n).SubFactorial()
		assert.InDelta(t, c.want, got.Real, 1e-9)
	}
}

func TestGammaFactorialIdentity(t *testing.T) {
	// Factorial(n) = Gamma(n+1)
	got := FromReal(4).Add(FromReal(1)).Gamma()
	assert.InDelta(t, 24.0, got.Real, 1e-9)
}

func TestString(t *testing.T) {
	assert.Equal(t, "3", FromReal(3).String())
	assert.Equal(t, "1+2i", New(1, 2).String())
	assert.Equal(t, "1-2i", New(1, -2).String())
}
