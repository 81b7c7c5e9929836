package parser

import (
	"strings"

	"ucalc/evalctx"
	"ucalc/number"
	"ucalc/operator"
	"ucalc/token"
)

// ParseRPN parses a source expression already written in postfix
// (reverse Polish) form: whitespace-separated lexemes, identifiers
// resolved in the same priority order as ParseInfix, with no operator
// stack since the input is already output-ordered. Built-in and
// user-function name lexemes trigger compaction at the moment they're
// emitted, exactly as a closing parenthesis does for infix. See
// resolveIdent's rpnLoopVar note for how the loop variable name
// resolves in RPN source, nested quantifiers included.
func ParseRPN(src string, vars *evalctx.Variables, funs *evalctx.Functions, graphVars []string, expectLet bool) (*token.Tokens, error) {
	var out token.Tokens
	var bodyParams []string
	head := letHead{active: expectLet}

	funArity := func(i int) int { return funs.Get(i).Arity }

	for _, lex := range strings.Fields(src) {
		switch {
		case lex == "let":
			head.active = true
			continue
		case lex == "=" && head.active:
			if len(head.names) == 0 {
				return nil, token.Err(token.VarExpectedName)
			}
			head.active = false
			head.have = true
			head.bindingName = head.names[0]
			rest := head.names[1:]
			if len(rest) > 0 {
				head.isFun = true
				head.bodyParams = append([]string(nil), rest...)
				head.funcIndex = funs.Define(head.bindingName, len(rest), nil)
				bodyParams = append(bodyParams, rest...)
			}
			continue
		case head.active && isAllAlpha(lex):
			head.names = append(head.names, lex)
			continue
		}

		if op, ok := operator.FromLexeme(lex); ok {
			out = append(out, token.Operator(op))
			continue
		}

		res := resolveIdent(lex, bodyParams, funs, vars, graphVars, false, true)
		switch res.kind {
		case identValue:
			out = append(out, res.tok)
			continue
		case identUserFunc:
			out = append(out, token.Fun(res.index))
			continue
		case identBuiltin:
			compactArgs(&out, res.builtin.Compact(), funArity)
			out = append(out, token.Builtin(res.builtin))
			continue
		}

		if isAllAlpha(lex) {
			bodyParams = append(bodyParams, lex)
			continue
		}

		if n, ok := number.ParseRadix(lex, 10); ok {
			out = append(out, token.Num(n))
			continue
		}

		return nil, token.NewUnknownToken(lex)
	}

	return head.finish(out, graphVars, funs, vars)
}

func isAllAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
