/*
Evaluator - Stack Machine Over A Postfix Token Stream
=======================================================

Compute walks a Tokens/TokensRef left to right over an internal value
stack. Plain tokens push or pop in the ordinary way; Skip markers
suspend their trailing sub-expression instead of running it
immediately, so quantifier-like builtins (sum, prod, iter, if) can
re-run a deferred body once per iteration against a varying inner
index, sharing the same `funVars` buffer user-function calls use for
their own formal parameters.
*/

package evaluator

import (
	"ucalc/evalctx"
	"ucalc/function"
	"ucalc/number"
	"ucalc/token"
)

// suspended is a deferred sub-expression plus the funVars offset it
// closes over, pushed onto the value stack in place of a Skip
// marker's body.
type suspended struct {
	body   token.TokensRef
	offset int
}

// stackValue is either a concrete Number or a suspended body; exactly
// one of the two is meaningful, selected by isSuspended.
type stackValue struct {
	num         number.Number
	susp        suspended
	isSuspended bool
}

func numVal(n number.Number) stackValue { return stackValue{num: n} }

// machine holds the shared state one Compute call threads through its
// (possibly recursive, for user functions and quantifiers) execution.
type machine struct {
	graphVars []number.Number
	funs      *evalctx.Functions
	vars      *evalctx.Variables
	funVars   []number.Number
}

// Compute evaluates tokens to a single Number, given the caller's
// bound graph-variable values and the shared function/variable
// tables. Well-formed input (guaranteed by the parser's stack-balance
// invariant) never underflows the stack or mismatches arity.
func Compute(tokens token.TokensRef, graphVars []number.Number, funs *evalctx.Functions, vars *evalctx.Variables) number.Number {
	m := &machine{graphVars: graphVars, funs: funs, vars: vars}
	return m.run(tokens, 0).num
}

// ComputeInContext evaluates tokens exactly like Compute, except
// InnerVar references resolve against the caller's own funVars buffer
// at the given offset instead of a fresh one. The inverse pass uses
// this to evaluate a known sub-expression that references the
// enclosing user function's formal parameters.
func ComputeInContext(tokens token.TokensRef, graphVars []number.Number, funs *evalctx.Functions, vars *evalctx.Variables, funVars []number.Number, offset int) number.Number {
	m := &machine{graphVars: graphVars, funs: funs, vars: vars, funVars: funVars}
	return m.run(tokens, offset).num
}

// run executes tokens with funVars indices resolved relative to
// offset, returning the final stack value.
func (m *machine) run(tokens token.TokensRef, offset int) stackValue {
	var stack []stackValue
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case token.KindNum:
			stack = append(stack, numVal(t.Num))
			i++
		case token.KindVar:
			stack = append(stack, numVal(m.vars.Get(t.Index)))
			i++
		case token.KindGraphVar:
			stack = append(stack, numVal(m.graphVars[t.Index]))
			i++
		case token.KindInnerVar:
			stack = append(stack, numVal(m.funVars[offset+t.Index]))
			i++
		case token.KindSkip:
			n := t.Index
			stack = append(stack, stackValue{
				susp:        suspended{body: tokens[i+1 : i+1+n], offset: offset},
				isSuspended: true,
			})
			i += 1 + n
		case token.KindFun:
			fn := m.funs.Get(t.Index)
			k := fn.Arity
			args := stack[len(stack)-k:]
			stack = stack[:len(stack)-k]
			newOffset := len(m.funVars)
			for _, a := range args {
				m.funVars = append(m.funVars, a.num)
			}
			result := m.run(fn.Tokens, newOffset)
			m.funVars = m.funVars[:newOffset]
			stack = append(stack, result)
			i++
		case token.KindCall:
			stack = m.applyCall(stack, t.Call, offset)
			i++
		default:
			i++
		}
	}
	return stack[len(stack)-1]
}

// applyCall pops a Call token's operands off stack and pushes its
// result, dispatching compacting builtins (sum, prod, iter, if) to
// their own re-evaluation logic instead of operator.Compute/
// function.Compute, since those need the suspended body rather than a
// plain value.
func (m *machine) applyCall(stack []stackValue, call token.Call, offset int) []stackValue {
	if call.Kind == token.CallBuiltin {
		switch call.Builtin {
		case function.Sum, function.Prod, function.Iter:
			return m.applyQuantifier(stack, call.Builtin, offset)
		case function.If:
			return m.applyIf(stack, offset)
		}
	}
	k := call.Inputs()
	args := stack[len(stack)-k:]
	a := args[0].num
	rest := make([]number.Number, k-1)
	for j := 1; j < k; j++ {
		rest[j-1] = args[j].num
	}
	if call.Kind == token.CallOperator {
		call.Operator.Compute(&a, rest)
	} else {
		call.Builtin.Compute(&a, rest)
	}
	stack = stack[:len(stack)-k]
	return append(stack, numVal(a))
}

// applyQuantifier evaluates sum/prod/iter(lo, hi, body): body is
// re-run once per integer step from lo to hi inclusive, with the
// iteration index bound as the next InnerVar slot past the suspended
// body's own closed-over parameters.
func (m *machine) applyQuantifier(stack []stackValue, b function.Builtin, offset int) []stackValue {
	n := len(stack)
	lo, hi, body := stack[n-3].num, stack[n-2].num, stack[n-1]
	stack = stack[:n-3]

	loI := int(lo.Real)
	hiI := int(hi.Real)

	acc := number.FromReal(0)
	if b == function.Prod {
		acc = number.FromReal(1)
	}
	var last number.Number

	idxOffset := len(m.funVars)
	m.funVars = append(m.funVars, number.FromReal(0))
	for k := loI; k <= hiI; k++ {
		m.funVars[idxOffset] = number.FromReal(float64(k))
		v := m.run(body.susp.body, body.susp.offset)
		switch b {
		case function.Sum:
			acc = acc.Add(v.num)
		case function.Prod:
			acc = acc.Mul(v.num)
		case function.Iter:
			last = v.num
		}
	}
	m.funVars = m.funVars[:idxOffset]

	if b == function.Iter {
		return append(stack, numVal(last))
	}
	return append(stack, numVal(acc))
}

// applyIf evaluates if(cond, whenTrue, whenFalse): exactly one branch
// is ever run, per §4.4's compaction contract.
func (m *machine) applyIf(stack []stackValue, offset int) []stackValue {
	n := len(stack)
	cond, whenTrue, whenFalse := stack[n-3].num, stack[n-2], stack[n-1]
	stack = stack[:n-3]
	var branch suspended
	if !cond.IsZero() {
		branch = whenTrue.susp
	} else {
		branch = whenFalse.susp
	}
	result := m.run(branch.body, branch.offset)
	return append(stack, result)
}
