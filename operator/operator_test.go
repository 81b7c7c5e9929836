package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ucalc/number"
)

func TestFromLexeme(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Op
	}{
		{"+", Add}, {"-", Sub}, {"*", Mul}, {"/", Div},
		{"^", Pow}, {"**", Pow}, {"^^", Tetration}, {"//", Root},
		{"==", Equal}, {"!=", NotEqual}, {">=", GreaterEqual}, {"<=", LessEqual},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			got, ok := FromLexeme(tt.lexeme)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromLexemeUnknown(t *testing.T) {
	_, ok := FromLexeme("@")
	assert.False(t, ok)
}

func TestInputsArity(t *testing.T) {
	assert.Equal(t, 2, Add.Inputs())
	assert.Equal(t, 1, Negate.Inputs())
	assert.Equal(t, 1, Factorial.Inputs())
	assert.Equal(t, 1, Not.Inputs())
}

func TestInverse(t *testing.T) {
	tests := []struct {
		op         Op
		want       Op
		invertible bool
	}{
		{Add, Sub, true},
		{Sub, Add, true},
		{Mul, Div, true},
		{Div, Mul, true},
		{Pow, Root, true},
		{Root, Pow, true},
		{Negate, Negate, true},
		{Equal, Invalid, false},
	}
	for _, tt := range tests {
		got, ok := tt.op.Inverse()
		assert.Equal(t, tt.invertible, ok)
		if ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestComputeArithmetic(t *testing.T) {
	a := number.FromReal(10)
	Add.Compute(&a, []number.Number{number.FromReal(5)})
	assert.Equal(t, number.FromReal(15), a)

	b := number.FromReal(2)
	Pow.Compute(&b, []number.Number{number.FromReal(10)})
	assert.InDelta(t, 1024, b.Real, 1e-9)
}

func TestComputeComparisonsReturnBooleanEncoding(t *testing.T) {
	a := number.FromReal(5)
	Greater.Compute(&a, []number.Number{number.FromReal(3)})
	assert.Equal(t, number.FromReal(1), a)

	b := number.FromReal(5)
	Greater.Compute(&b, []number.Number{number.FromReal(10)})
	assert.Equal(t, number.Number{}, b)
}

func TestPrecedenceOrdering(t *testing.T) {
	assert.True(t, Pow.Precedence() > Mul.Precedence())
	assert.True(t, Mul.Precedence() > Add.Precedence())
	assert.True(t, Add.Precedence() > Equal.Precedence())
}
