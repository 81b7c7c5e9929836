package evalctx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ucalc/number"
	"ucalc/token"
)

func TestNewVariablesSeedsConstants(t *testing.T) {
	v := NewVariables()
	for _, name := range []string{"pi", "tau", "e", "i", "inf", "nan"} {
		_, ok := v.Position(name)
		assert.True(t, ok, name)
	}
}

func TestVariablesDefineOverwritesExistingPosition(t *testing.T) {
	v := NewVariables()
	pos := v.Define("x", number.FromReal(1))
	again := v.Define("x", number.FromReal(2))
	assert.Equal(t, pos, again)
	assert.Equal(t, number.FromReal(2), v.Get(pos))
}

func TestVariablesPositionUnknown(t *testing.T) {
	v := NewVariables()
	_, ok := v.Position("nonexistent")
	assert.False(t, ok)
}

func TestFunctionsDefineAndGet(t *testing.T) {
	f := NewFunctions()
	body := token.Tokens{token.InnerVar(0)}
	i := f.Define("identity", 1, body)
	fn := f.Get(i)
	assert.Equal(t, "identity", fn.Name)
	assert.Equal(t, 1, fn.Arity)
	assert.Equal(t, 1, f.Len())
}

func TestFunctionsDefineOverwritesExisting(t *testing.T) {
	f := NewFunctions()
	i1 := f.Define("f", 1, token.Tokens{token.InnerVar(0)})
	i2 := f.Define("f", 2, token.Tokens{token.InnerVar(1)})
	assert.Equal(t, i1, i2)
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 2, f.Get(i1).Arity)
}
