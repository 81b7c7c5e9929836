package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ucalc/evalctx"
	"ucalc/evaluator"
	"ucalc/number"
)

func evalInfix(t *testing.T, src string, graphVars []string, graphVals []number.Number) number.Number {
	t.Helper()
	vars, funs := evalctx.NewVariables(), evalctx.NewFunctions()
	tokens, err := ParseInfix(src, vars, funs, graphVars, false)
	assert.NoError(t, err, src)
	return evaluator.Compute(tokens.Ref(), graphVals, funs, vars)
}

func TestParseInfixArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected number.Number
	}{
		{"addition", "1+2", number.FromReal(3)},
		{"precedence", "1+2*3", number.FromReal(7)},
		{"parens override precedence", "(1+2)*3", number.FromReal(9)},
		{"right assoc pow", "2^3^2", number.FromReal(512)},
		{"left assoc sub", "10-3-2", number.FromReal(5)},
		{"unary negate", "-5+3", number.FromReal(-2)},
		{"implicit mult with paren", "2(3+4)", number.FromReal(14)},
		{"abs bars", "|-5|", number.FromReal(5)},
		{"factorial", "5!", number.FromReal(120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalInfix(t, tt.input, nil, nil)
			assert.InDelta(t, tt.expected.Real, got.Real, 1e-9)
			assert.InDelta(t, tt.expected.Imag, got.Imag, 1e-9)
		})
	}
}

func TestParseInfixComplex(t *testing.T) {
	got := evalInfix(t, "i*i", nil, nil)
	assert.InDelta(t, -1, got.Real, 1e-9)
	assert.InDelta(t, 0, got.Imag, 1e-9)
}

func TestParseInfixGraphVar(t *testing.T) {
	got := evalInfix(t, "x*2+1", []string{"x"}, []number.Number{number.FromReal(5)})
	assert.InDelta(t, 11, got.Real, 1e-9)
}

func TestParseInfixQuantifiers(t *testing.T) {
	got := evalInfix(t, "sum(1,5,n)", nil, nil)
	assert.InDelta(t, 15, got.Real, 1e-9)

	got = evalInfix(t, "prod(1,4,n)", nil, nil)
	assert.InDelta(t, 24, got.Real, 1e-9)

	got = evalInfix(t, "if(1>0,10,20)", nil, nil)
	assert.InDelta(t, 10, got.Real, 1e-9)
}

func TestParseInfixLetBindingConsumesLine(t *testing.T) {
	vars, funs := evalctx.NewVariables(), evalctx.NewFunctions()
	tokens, err := ParseInfix("let x = 5", vars, funs, nil, true)
	assert.NoError(t, err)
	assert.Nil(t, tokens)

	pos, ok := vars.Position("x")
	assert.True(t, ok)
	assert.Equal(t, number.FromReal(5), vars.Get(pos))
}

func TestParseInfixLetFunctionDefinition(t *testing.T) {
	vars, funs := evalctx.NewVariables(), evalctx.NewFunctions()
	tokens, err := ParseInfix("let f(a,b) = a*b", vars, funs, nil, true)
	assert.NoError(t, err)
	assert.Nil(t, tokens)

	out, err := ParseInfix("f(3,4)", vars, funs, nil, false)
	assert.NoError(t, err)
	got := evaluator.Compute(out.Ref(), nil, funs, vars)
	assert.InDelta(t, 12, got.Real, 1e-9)
}

func TestParseInfixErrors(t *testing.T) {
	tests := []string{
		"(1+2",
		"1+2)",
		"foo(1,2)",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			vars, funs := evalctx.NewVariables(), evalctx.NewFunctions()
			_, err := ParseInfix(src, vars, funs, nil, false)
			assert.Error(t, err)
		})
	}
}

func FuzzParseInfix(f *testing.F) {
	seeds := []string{"1+2*3", "sin(x)", "let x = 5", "|1-2|", "sum(1,10,n+1)"}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		vars, funs := evalctx.NewVariables(), evalctx.NewFunctions()
		tokens, err := ParseInfix(src, vars, funs, []string{"x"}, true)
		if err != nil {
			return
		}
		if tokens == nil {
			return
		}
		assert.NotPanics(t, func() {
			evaluator.Compute(tokens.Ref(), []number.Number{{}}, funs, vars)
		})
	})
}
