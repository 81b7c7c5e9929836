/*
Parser - Shunting-Yard With Extensions
========================================

ParseInfix and ParseRPN turn source text into a postfix Tokens stream,
or (when the source is a `let` binding) install a value or user
function into the supplied Variables/Functions tables and return
nothing. Both share identifier resolution, argument compaction, and a
common notion of what the operator stack can hold while an infix
expression is mid-parse; they differ in how much re-ordering the
source itself requires (infix needs shunting-yard, RPN is already in
output order).
*/

package parser

import (
	"ucalc/evalctx"
	"ucalc/evaluator"
	"ucalc/function"
	"ucalc/number"
	"ucalc/operator"
	"ucalc/token"
)

// entryKind discriminates what the infix parser's operator stack
// holds: a bracket, an operator, or a function (built-in or
// user-defined) still awaiting its closing parenthesis.
type entryKind int

const (
	entryBracket entryKind = iota
	entryOperator
	entryBuiltin
	entryCustom
)

type stackEntry struct {
	kind       entryKind
	bracket    operator.Bracket
	op         operator.Op
	builtin    function.Builtin
	custom     int
	hasLoopVar bool // this entry pushed loopVarName onto bodyParams and must pop it on close
}

// identKind classifies how an identifier lexeme resolved.
type identKind int

const (
	identValue identKind = iota
	identUserFunc
	identBuiltin
	identHeadName
	identUnknown
)

type identResolved struct {
	kind    identKind
	tok     token.Token
	index   int
	builtin function.Builtin
}

// loopVarName is the reserved identifier a sum/prod/iter body uses to
// refer to its iteration index, matching the single-letter convention
// display falls back to when rendering an InnerVar with no bound name
// (`n`, then `o`, `p`, … for nested quantifiers).
const loopVarName = "n"

// resolveIdent applies the shared name-resolution priority order: a
// bound formal parameter of the function currently being defined or
// evaluated, then a user-defined function, then a variable, then a
// graph variable, then a built-in function, and finally — only while
// a `let` head is still being collected — a fresh parameter/binding
// name. Anything else is unresolved.
//
// rpnLoopVar is set only by the RPN parser, which cannot push/pop a
// scoped loop-variable name the way the infix parser does (a
// compacting builtin's name lexeme trails its arguments, so there is
// no lookahead to know one is coming). In that mode, an otherwise
// unresolved reference to the reserved name loopVarName binds to the
// InnerVar slot immediately past the current formal parameters —
// correct for a single, non-nested quantifier; nested quantifiers in
// RPN source all alias that same slot, a documented limitation. Infix
// source resolves the same way in practice: bodyParams is searched
// front to back, so `n` inside a nested quantifier also resolves to
// the outermost quantifier's index.
func resolveIdent(name string, bodyParams []string, funs *evalctx.Functions, vars *evalctx.Variables, graphVars []string, expectLet bool, rpnLoopVar bool) identResolved {
	for i, p := range bodyParams {
		if p == name {
			return identResolved{kind: identValue, tok: token.InnerVar(i)}
		}
	}
	if i, ok := funs.Position(name); ok {
		return identResolved{kind: identUserFunc, index: i}
	}
	if i, ok := vars.Position(name); ok {
		return identResolved{kind: identValue, tok: token.Var(i)}
	}
	for i, g := range graphVars {
		if g == name {
			return identResolved{kind: identValue, tok: token.GraphVar(i)}
		}
	}
	if b, ok := function.FromName(name); ok {
		return identResolved{kind: identBuiltin, builtin: b}
	}
	if rpnLoopVar && name == loopVarName {
		return identResolved{kind: identValue, tok: token.InnerVar(len(bodyParams))}
	}
	if expectLet {
		return identResolved{kind: identHeadName}
	}
	return identResolved{kind: identUnknown}
}

// compactArgs inserts Skip markers in front of the last k argument
// sub-trees of out (per the stack-balance walker), deferring their
// evaluation. Called immediately before a compacting function is
// emitted. t tracks how far the logical end has receded across
// insertions already made this call, so each search still operates on
// the positions as they stood before compaction began.
func compactArgs(out *token.Tokens, k int, funArity func(int) int) {
	t := 0
	for j := 0; j < k; j++ {
		to := len(*out) - t
		start := token.FindSubExprStart(*out, to, funArity)
		length := to - start
		*out = append(*out, token.Token{})
		copy((*out)[start+1:], (*out)[start:len(*out)-1])
		(*out)[start] = token.Skip(length)
		t += length + 1
	}
}

// letHead tracks the in-progress name collection of a `let` binding:
// the binding's own name plus, for a function definition, its formal
// parameters.
type letHead struct {
	active      bool
	names       []string
	have        bool // a binding was completed during this parse
	isFun       bool
	bindingName string
	funcIndex   int
	bodyParams  []string
}

// finish evaluates or installs the completed let binding once parsing
// reaches end of input, returning the Go-idiom (nil, nil) that signals
// "consumed as a let statement".
func (h *letHead) finish(out token.Tokens, graphVars []string, funs *evalctx.Functions, vars *evalctx.Variables) (*token.Tokens, error) {
	if !h.have {
		return &out, nil
	}
	if h.isFun {
		funs.Define(h.bindingName, len(h.bodyParams), out)
		return nil, nil
	}
	gv := make([]number.Number, len(graphVars))
	value := evaluator.Compute(out, gv, funs, vars)
	vars.Define(h.bindingName, value)
	return nil, nil
}
