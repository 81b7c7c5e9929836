/*
Display - Pretty-Printing A Postfix Stream
=============================================

Infix walks the sub-expression finder backward from the end of a
Tokens stream to recover its syntax tree and renders it back as
ordinary math notation, adding parentheses only where a child
operator's precedence (or associativity) would otherwise change the
meaning. RPN instead needs no tree recovery at all: it is a single
left-to-right pass emitting each token's own lexeme, silently
dropping Skip markers since they are a compaction artifact with no
surface syntax of their own.
*/

package display

import (
	"strconv"
	"strings"

	"ucalc/evalctx"
	"ucalc/function"
	"ucalc/token"
)

// Infix renders tokens as infix source text.
func Infix(tokens token.TokensRef, vars *evalctx.Variables, funs *evalctx.Functions, graphVars []string) string {
	r := &renderer{vars: vars, funs: funs, graphVars: graphVars}
	text, _ := r.render(tokens, len(tokens))
	return text
}

// RPN renders tokens as whitespace-separated postfix source text.
func RPN(tokens token.TokensRef, vars *evalctx.Variables, funs *evalctx.Functions, graphVars []string) string {
	var parts []string
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind == token.KindSkip {
			continue // structural marker only; its body prints in place right after it
		}
		parts = append(parts, leafText(t, vars, funs, graphVars))
	}
	return strings.Join(parts, " ")
}

type renderer struct {
	vars      *evalctx.Variables
	funs      *evalctx.Functions
	graphVars []string
}

func (r *renderer) funArity(i int) int { return r.funs.Get(i).Arity }

// render recovers and renders the sub-expression ending at end,
// returning its text and the index its own first token starts at.
func (r *renderer) render(tokens token.TokensRef, end int) (string, int) {
	last := tokens[end-1]
	switch last.Kind {
	case token.KindNum:
		return last.Num.String(), end - 1
	case token.KindVar:
		return r.vars.Name(last.Index), end - 1
	case token.KindGraphVar:
		return r.graphVars[last.Index], end - 1
	case token.KindInnerVar:
		return innerVarName(last.Index), end - 1
	case token.KindFun:
		return r.renderFun(tokens, end, last.Index)
	case token.KindCall:
		return r.renderCall(tokens, end, last.Call)
	default:
		return "?", end - 1
	}
}

// collectArgs walks backward k times from end, returning the k
// argument spans of the call sitting at tokens[end] in left-to-right
// order plus the index the first argument starts at. A compacted
// trailing argument's own Skip marker is excluded from its rendered
// span (Skip has no surface syntax), but still occupies a stream
// position that belongs to that argument, not to its preceding
// sibling — so once a span's start is found, a Skip sitting directly
// behind it is stepped over before searching for the next sibling.
func (r *renderer) collectArgs(tokens token.TokensRef, end int, k int) ([]string, int) {
	spans := make([]token.TokensRef, k)
	for i := k - 1; i >= 0; i-- {
		start := token.FindSubExprStart(tokens, end, r.funArity)
		spans[i] = tokens[start:end]
		if start > 0 && tokens[start-1].Kind == token.KindSkip {
			start--
		}
		end = start
	}
	texts := make([]string, k)
	for i, span := range spans {
		texts[i], _ = r.render(span, len(span))
	}
	return texts, end
}

func (r *renderer) renderFun(tokens token.TokensRef, end int, i int) (string, int) {
	k := r.funArity(i)
	args, start := r.collectArgs(tokens, end-1, k)
	name := r.funs.Get(i).Name
	if name == "" {
		name = "fn" + strconv.Itoa(i)
	}
	return name + "(" + strings.Join(args, ",") + ")", start
}

func (r *renderer) renderCall(tokens token.TokensRef, end int, call token.Call) (string, int) {
	if call.Kind == token.CallBuiltin {
		if call.Builtin == function.Abs {
			args, start := r.collectArgs(tokens, end-1, 1)
			return "|" + args[0] + "|", start
		}
		args, start := r.collectArgs(tokens, end-1, call.Builtin.Inputs())
		return call.Builtin.Name() + "(" + strings.Join(args, ",") + ")", start
	}

	op := call.Operator
	if op.Inputs() == 1 {
		span, start := r.operandSpan(tokens, end-1)
		argText := r.wrapOperand(span, op.Precedence(), false, true)
		if op.UnaryLeft() {
			return argText + op.Lexeme(), start
		}
		return op.Lexeme() + argText, start
	}

	rightSpan, start := r.operandSpan(tokens, end-1)
	leftSpan, realStart := r.operandSpan(tokens, start)
	leftText := r.wrapOperand(leftSpan, op.Precedence(), false, op.LeftAssociative())
	rightText := r.wrapOperand(rightSpan, op.Precedence(), true, op.LeftAssociative())
	return leftText + op.Lexeme() + rightText, realStart
}

// operandSpan returns the single sub-expression span ending at end and
// the index it starts at.
func (r *renderer) operandSpan(tokens token.TokensRef, end int) (token.TokensRef, int) {
	start := token.FindSubExprStart(tokens, end, r.funArity)
	return tokens[start:end], start
}

// wrapOperand renders span and parenthesizes it when its own trailing
// operator binds more loosely than parentPrec, or exactly as loosely
// but on the side that would otherwise reassociate (the right operand
// of a left-associative parent, or the left operand of a
// right-associative one).
func (r *renderer) wrapOperand(span token.TokensRef, parentPrec uint8, isRight, leftAssoc bool) string {
	text, _ := r.render(span, len(span))
	childPrec, isOp := spanOperatorPrecedence(span)
	if !isOp {
		return text
	}
	needsParens := childPrec < parentPrec
	if childPrec == parentPrec {
		if isRight && leftAssoc {
			needsParens = true
		}
		if !isRight && !leftAssoc {
			needsParens = true
		}
	}
	if needsParens {
		return "(" + text + ")"
	}
	return text
}

// spanOperatorPrecedence reports the precedence of span's own trailing
// operator, if its last token is one — builtin/user-function calls
// are already self-delimited by their own parentheses and never need
// wrapping.
func spanOperatorPrecedence(span token.TokensRef) (uint8, bool) {
	last := span[len(span)-1]
	if last.Kind == token.KindCall && last.Call.Kind == token.CallOperator {
		return last.Call.Operator.Precedence(), true
	}
	return 0, false
}

func innerVarName(i int) string { return string(rune('n' + i)) }

func leafText(t token.Token, vars *evalctx.Variables, funs *evalctx.Functions, graphVars []string) string {
	switch t.Kind {
	case token.KindNum:
		return t.Num.String()
	case token.KindVar:
		return vars.Name(t.Index)
	case token.KindGraphVar:
		return graphVars[t.Index]
	case token.KindInnerVar:
		return innerVarName(t.Index)
	case token.KindFun:
		name := funs.Get(t.Index).Name
		if name == "" {
			name = "fn" + strconv.Itoa(t.Index)
		}
		return name
	case token.KindCall:
		if t.Call.Kind == token.CallOperator {
			return t.Call.Operator.Lexeme()
		}
		return t.Call.Builtin.Name()
	default:
		return "?"
	}
}
