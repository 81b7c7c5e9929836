/*
Evaluation Context - Variable and Function Tables
===================================================

Variables and Functions are the two ordered symbol tables the parser
resolves names against and the evaluator indexes into at run time. Both
are append-only during a parse and addressed by integer position rather
than by name once resolved, mirroring constants.Table's
load-then-index-by-string shape but generalized to hold Number values
and user-defined functions discovered mid-expression (`let f(x) = ...`).
*/

package evalctx

import (
	"ucalc/number"
	"ucalc/token"
)

// Variables is an ordered, named table of bound values. Position
// assignments never change once made, since Token.KindVar references
// hold onto an index rather than a name.
type Variables struct {
	names  []string
	values []number.Number
}

// NewVariables returns a table pre-seeded with the calculator's
// built-in constants: pi, tau, e, i, inf and nan.
func NewVariables() *Variables {
	v := &Variables{}
	v.Define("pi", number.Pi)
	v.Define("tau", number.Tau)
	v.Define("e", number.E)
	v.Define("i", number.Imaginary)
	v.Define("inf", number.Infinity)
	v.Define("nan", number.NaN)
	return v
}

// Position returns the index of name, if defined.
func (v *Variables) Position(name string) (int, bool) {
	for i, n := range v.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Define binds name to value, appending a new slot, or overwriting the
// value at an existing one.
func (v *Variables) Define(name string, value number.Number) int {
	if i, ok := v.Position(name); ok {
		v.values[i] = value
		return i
	}
	v.names = append(v.names, name)
	v.values = append(v.values, value)
	return len(v.names) - 1
}

// Get returns the value bound at position i.
func (v *Variables) Get(i int) number.Number { return v.values[i] }

// Name returns the variable name bound at position i.
func (v *Variables) Name(i int) string { return v.names[i] }

// Len reports the number of bound variables.
func (v *Variables) Len() int { return len(v.names) }

// UserFunction is a named, user-defined function: `let f(x, y) = x + y`.
// Its body is a postfix token stream referencing its formal parameters
// through token.InnerVar indices.
type UserFunction struct {
	Name   string
	Arity  int
	Tokens token.Tokens
}

// Functions is an ordered, named table of user-defined functions.
type Functions struct {
	funcs []UserFunction
}

// NewFunctions returns an empty function table.
func NewFunctions() *Functions { return &Functions{} }

// Position returns the index of the function named name, if defined.
func (f *Functions) Position(name string) (int, bool) {
	for i, fn := range f.funcs {
		if fn.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Define registers or replaces the function named name, returning its
// position.
func (f *Functions) Define(name string, arity int, body token.Tokens) int {
	if i, ok := f.Position(name); ok {
		f.funcs[i] = UserFunction{Name: name, Arity: arity, Tokens: body}
		return i
	}
	f.funcs = append(f.funcs, UserFunction{Name: name, Arity: arity, Tokens: body})
	return len(f.funcs) - 1
}

// Get returns the function registered at position i.
func (f *Functions) Get(i int) UserFunction { return f.funcs[i] }

// Len reports the number of registered functions.
func (f *Functions) Len() int { return len(f.funcs) }
