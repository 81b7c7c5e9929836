/*
Inverse Pass - Peeling A Postfix Chain Right-To-Left
======================================================

Get walks a postfix token chain from its last token backward, treating
each trailing operator as something that was just applied to produce
the running value y, and undoes it to recover what y must have been
one step earlier. It stops the instant it reaches a single remaining
token (the recovered source value) or meets something it cannot undo,
at which point it reports NaN rather than guessing.

This is not a general computer-algebra solver: only the fixed set of
operators/builtins carrying an inverse() (see the operator and function
packages) can be peeled, and a binary operator is only peelable when
exactly one of its two operands still carries the quantity being
solved for (see peelBinary's comment) — a chain with the unknown on
both sides, or on neither, is outside this pass's scope.
*/

package inverse

import (
	"ucalc/evalctx"
	"ucalc/evaluator"
	"ucalc/number"
	"ucalc/operator"
	"ucalc/token"
)

// Get peels tokens' trailing chain of invertible operators against the
// target value y, returning the recovered source value, or NaN the
// moment a non-invertible operator, a non-operator token, or an
// under-length chain is met. funVars/offset let a chain that closes
// over a user function's formal parameters (InnerVar references inside
// a binary operator's known operand) resolve those references exactly
// as the evaluator would at that call depth.
func Get(tokens token.TokensRef, y number.Number, funVars *[]number.Number, vars *evalctx.Variables, funs *evalctx.Functions, offset int) number.Number {
	funArity := func(i int) int { return funs.Get(i).Arity }

	for len(tokens) > 1 {
		last := tokens[len(tokens)-1]
		if last.Kind != token.KindCall {
			return number.NaN
		}
		call := last.Call

		if call.Inputs() == 1 {
			next, ok := peelUnary(call, y)
			if !ok {
				return number.NaN
			}
			y = next
			tokens = tokens[:len(tokens)-1]
			continue
		}

		if call.Inputs() != 2 || call.Kind != token.CallOperator {
			return number.NaN
		}
		next, rest, ok := peelBinary(tokens, call.Operator, y, funArity, funVars, vars, funs, offset)
		if !ok {
			return number.NaN
		}
		y = next
		tokens = rest
	}
	return y
}

// peelUnary undoes a single-input call by applying its own defined
// inverse directly to y.
func peelUnary(call token.Call, y number.Number) (number.Number, bool) {
	if call.Kind == token.CallOperator {
		inv, ok := call.Operator.Inverse()
		if !ok {
			return y, false
		}
		inv.Compute(&y, nil)
		return y, true
	}
	inv, ok := call.Builtin.Inverse()
	if !ok {
		return y, false
	}
	inv.Compute(&y, nil)
	return y, true
}

// peelBinary undoes a two-input operator call. The sub-expression
// finder locates where the adjacent (last-pushed) operand starts,
// splitting the call's two operands into left = everything before it
// and right = the adjacent span itself. Exactly one of the two is
// expected to still carry a GraphVar — the quantity being solved for —
// and that side becomes the continuing chain; the other is fully
// concrete and is evaluated to b, the operator's known side. A chain
// with the unknown on neither side (or on both) isn't something this
// restricted pass can invert.
func peelBinary(tokens token.TokensRef, op operator.Op, y number.Number, funArity func(int) int, funVars *[]number.Number, vars *evalctx.Variables, funs *evalctx.Functions, offset int) (number.Number, token.TokensRef, bool) {
	opEnd := len(tokens) - 1
	rightStart := token.FindSubExprStart(tokens, opEnd, funArity)
	left := tokens[:rightStart]
	right := tokens[rightStart:opEnd]

	leftUnknown := containsGraphVar(left)
	rightUnknown := containsGraphVar(right)

	switch {
	case rightUnknown && !leftUnknown:
		b := evaluator.ComputeInContext(left, nil, funs, vars, *funVars, offset)
		next, ok := rightInverse(op, y, b)
		return next, right, ok
	case leftUnknown && !rightUnknown:
		b := evaluator.ComputeInContext(right, nil, funs, vars, *funVars, offset)
		inv, ok := op.Inverse()
		if !ok {
			return y, tokens, false
		}
		inv.Compute(&y, []number.Number{b})
		return y, left, true
	default:
		return y, tokens, false
	}
}

// containsGraphVar reports whether any token in the span references a
// caller-supplied graph variable. Does not look inside a Fun(i) call's
// own body — a chain that buries the unknown behind a user-function
// call is outside this pass's restricted scope.
func containsGraphVar(tokens token.TokensRef) bool {
	for _, t := range tokens {
		if t.Kind == token.KindGraphVar {
			return true
		}
	}
	return false
}

// rightInverse solves `b op unknown = y` for unknown (the operator's
// known operand sits on its left). Add and Mul are commutative so
// this coincides with their ordinary left-inverse formula; Sub, Div,
// Pow and Root do not.
func rightInverse(op operator.Op, y, b number.Number) (number.Number, bool) {
	switch op {
	case operator.Add:
		return y.Sub(b), true
	case operator.Sub:
		return b.Sub(y), true
	case operator.Mul:
		return y.Div(b), true
	case operator.Div:
		return b.Div(y), true
	case operator.Pow:
		return y.Ln().Div(b.Ln()), true
	case operator.Root:
		return b.Ln().Div(y.Ln()), true
	default:
		return y, false
	}
}
