package parser

import (
	"ucalc/evalctx"
	"ucalc/function"
	"ucalc/number"
	"ucalc/operator"
	"ucalc/token"
)

type infixParser struct {
	src []rune
	pos int

	out   token.Tokens
	stack []stackEntry

	bodyParams []string
	head       letHead

	negate   bool
	lastAbs  bool
	reqInput bool
	lastMul  bool
	absDepth int

	vars      *evalctx.Variables
	funs      *evalctx.Functions
	graphVars []string
}

// ParseInfix parses a source expression written in ordinary infix
// notation. It returns (nil, nil) when src was consumed as a `let`
// binding (the binding's side effect already landed in vars/funs), or
// (tokens, nil) for an ordinary expression.
func ParseInfix(src string, vars *evalctx.Variables, funs *evalctx.Functions, graphVars []string, expectLet bool) (*token.Tokens, error) {
	p := &infixParser{
		src:       []rune(src),
		negate:    true,
		vars:      vars,
		funs:      funs,
		graphVars: graphVars,
	}
	p.head.active = expectLet
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.head.finish(p.out, graphVars, funs, vars)
}

func (p *infixParser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\n' || c == '\t' || c == '\r':
			p.pos++
		case c >= '0' && c <= '9':
			if err := p.scanNumber(); err != nil {
				return err
			}
		case c >= 'a' && c <= 'z':
			if err := p.scanIdent(); err != nil {
				return err
			}
		case c == '(':
			p.openParen()
			p.pos++
		case c == ')':
			if err := p.closeParen(); err != nil {
				return err
			}
			p.pos++
		case c == ',':
			p.comma()
			p.pos++
		case c == '|':
			if err := p.absBar(); err != nil {
				return err
			}
			p.pos++
		case c == '=' && p.head.active:
			if err := p.equals(); err != nil {
				return err
			}
			p.pos++
		default:
			if err := p.scanOperator(); err != nil {
				return err
			}
		}
	}
	return p.drain()
}

func (p *infixParser) markValue() {
	p.lastMul = true
	p.negate = false
	p.reqInput = false
	p.lastAbs = false
}

func (p *infixParser) emitEntry(e stackEntry) {
	switch e.kind {
	case entryOperator:
		p.out = append(p.out, token.Operator(e.op))
	case entryBuiltin:
		p.out = append(p.out, token.Builtin(e.builtin))
	case entryCustom:
		p.out = append(p.out, token.Fun(e.custom))
	}
}

// pushOperator performs the standard shunting-yard stack-pop then
// pushes op, per §4.3 rule 7. Reused for implicit multiplication.
func (p *infixParser) pushOperator(op operator.Op) {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.kind != entryOperator {
			break
		}
		if op == operator.Negate && top.op == operator.Pow {
			break
		}
		if top.op.Precedence() > op.Precedence() || (top.op.Precedence() == op.Precedence() && op.LeftAssociative()) {
			p.emitEntry(top)
			p.stack = p.stack[:len(p.stack)-1]
			continue
		}
		break
	}
	p.stack = append(p.stack, stackEntry{kind: entryOperator, op: op})
	p.reqInput = op.Inputs() == 2
	p.negate = op != operator.Factorial
}

func (p *infixParser) funArity(i int) int { return p.funs.Get(i).Arity }

func (p *infixParser) scanNumber() error {
	start := p.pos
	sawDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !sawDot {
			sawDot = true
			p.pos++
			continue
		}
		break
	}
	text := string(p.src[start:p.pos])
	n, ok := number.ParseRadix(text, 10)
	if !ok {
		return token.NewUnknownToken(text)
	}
	if p.lastMul {
		p.pushOperator(operator.Mul)
	}
	p.out = append(p.out, token.Num(n))
	p.markValue()
	return nil
}

func (p *infixParser) scanIdent() error {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
		p.pos++
	}
	name := string(p.src[start:p.pos])

	if name == "let" {
		p.head.active = true
		p.lastMul = false
		return nil
	}

	res := resolveIdent(name, p.bodyParams, p.funs, p.vars, p.graphVars, p.head.active && !p.head.have, false)
	switch res.kind {
	case identValue:
		if p.lastMul {
			p.pushOperator(operator.Mul)
		}
		p.out = append(p.out, res.tok)
		p.markValue()
	case identUserFunc:
		p.stack = append(p.stack, stackEntry{kind: entryCustom, custom: res.index})
		p.lastMul, p.negate, p.reqInput, p.lastAbs = false, true, false, false
	case identBuiltin:
		entry := stackEntry{kind: entryBuiltin, builtin: res.builtin}
		if isLoopingQuantifier(res.builtin) {
			p.bodyParams = append(p.bodyParams, loopVarName)
			entry.hasLoopVar = true
		}
		p.stack = append(p.stack, entry)
		p.lastMul, p.negate, p.reqInput, p.lastAbs = false, true, false, false
	case identHeadName:
		p.head.names = append(p.head.names, name)
	default:
		return token.NewUnknownToken(name)
	}
	return nil
}

func isLoopingQuantifier(b function.Builtin) bool {
	return b == function.Sum || b == function.Prod || b == function.Iter
}

func (p *infixParser) openParen() {
	if p.lastMul {
		p.pushOperator(operator.Mul)
	}
	p.stack = append(p.stack, stackEntry{kind: entryBracket, bracket: operator.Parenthesis})
	p.negate, p.lastAbs, p.reqInput, p.lastMul = true, false, false, false
}

func (p *infixParser) closeParen() error {
	if p.reqInput {
		return token.Err(token.MissingInput)
	}
	for {
		if len(p.stack) == 0 {
			return token.Err(token.LeftParenthesisNotFound)
		}
		top := p.stack[len(p.stack)-1]
		if top.kind == entryBracket {
			if top.bracket != operator.Parenthesis {
				return token.Err(token.LeftParenthesisNotFound)
			}
			p.stack = p.stack[:len(p.stack)-1]
			break
		}
		p.emitEntry(top)
		p.stack = p.stack[:len(p.stack)-1]
	}
	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.kind == entryBuiltin || top.kind == entryCustom {
			compact := 0
			if top.kind == entryBuiltin {
				compact = top.builtin.Compact()
			}
			compactArgs(&p.out, compact, p.funArity)
			p.emitEntry(top)
			p.stack = p.stack[:len(p.stack)-1]
			if top.hasLoopVar {
				p.bodyParams = p.bodyParams[:len(p.bodyParams)-1]
			}
		}
	}
	p.markValue()
	return nil
}

func (p *infixParser) comma() {
	for len(p.stack) > 0 && p.stack[len(p.stack)-1].kind != entryBracket {
		top := p.stack[len(p.stack)-1]
		p.emitEntry(top)
		p.stack = p.stack[:len(p.stack)-1]
	}
	p.negate, p.lastAbs, p.lastMul = true, false, false
}

func (p *infixParser) absBar() error {
	opening := p.absDepth == 0 || p.lastAbs || p.reqInput
	if opening {
		p.stack = append(p.stack, stackEntry{kind: entryBracket, bracket: operator.Absolute})
		p.absDepth++
		p.negate, p.lastAbs, p.reqInput, p.lastMul = true, true, false, false
		return nil
	}
	for {
		if len(p.stack) == 0 {
			return token.Err(token.AbsoluteBracketFailed)
		}
		top := p.stack[len(p.stack)-1]
		if top.kind == entryBracket {
			if top.bracket != operator.Absolute {
				return token.Err(token.AbsoluteBracketFailed)
			}
			p.stack = p.stack[:len(p.stack)-1]
			break
		}
		p.emitEntry(top)
		p.stack = p.stack[:len(p.stack)-1]
	}
	p.absDepth--
	compactArgs(&p.out, function.Abs.Compact(), p.funArity)
	p.out = append(p.out, token.Builtin(function.Abs))
	p.markValue()
	return nil
}

func (p *infixParser) equals() error {
	if len(p.head.names) == 0 {
		return token.Err(token.VarExpectedName)
	}
	p.head.active = false
	p.head.have = true
	p.head.bindingName = p.head.names[0]
	rest := p.head.names[1:]
	if len(rest) > 0 {
		p.head.isFun = true
		p.head.bodyParams = append([]string(nil), rest...)
		p.head.funcIndex = p.funs.Define(p.head.bindingName, len(rest), nil)
		p.bodyParams = append(p.bodyParams, rest...)
	}
	p.negate, p.lastMul = true, false
	return nil
}

func (p *infixParser) scanOperator() error {
	if p.pos+1 < len(p.src) {
		two := string(p.src[p.pos : p.pos+2])
		if op, ok := operator.FromLexeme(two); ok {
			p.pushOperator(op)
			p.lastMul = false
			p.pos += 2
			return nil
		}
	}
	one := string(p.src[p.pos])
	var op operator.Op
	switch {
	case p.negate && one == "-":
		op = operator.Negate
	case p.negate && one == "!":
		op = operator.SubFactorial
	default:
		resolved, ok := operator.FromLexeme(one)
		if !ok {
			return token.NewUnknownToken(one)
		}
		op = resolved
	}
	p.pushOperator(op)
	p.lastMul = false
	p.pos++
	return nil
}

func (p *infixParser) drain() error {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if top.kind == entryBracket {
			if top.bracket == operator.Parenthesis {
				return token.Err(token.RightParenthesisNotFound)
			}
			return token.Err(token.AbsoluteBracketFailed)
		}
		p.emitEntry(top)
	}
	if p.head.active && !p.head.have && (len(p.head.names) > 0 || len(p.out) == 0) {
		return token.Err(token.VarExpectedName)
	}
	return nil
}
