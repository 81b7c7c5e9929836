/*
Replio - Line-Editor Contract Stub
====================================

A real interactive calculator widget wants two things from the engine
as a line is typed: a live preview of what the current input would
evaluate to, and a way to render the value once the line is committed.
Replio proves that contract is satisfiable without implementing an
actual line editor (cursor movement, history scrollback, and the rest
of a bracketed-paste-aware widget are out of scope) — it is a thin
wrapper around parser.ParseInfix and evaluator.Compute with no state
of its own beyond the symbol tables the caller already owns.
*/

package replio

import (
	"ucalc/evalctx"
	"ucalc/evaluator"
	"ucalc/number"
	"ucalc/parser"
)

// Run parses and evaluates line against vars/funs, returning a preview
// of the value it would produce. A line consumed as a `let` binding
// previews as "ok" rather than a value, mirroring cmd's own REPL
// dispatch. Run never mutates vars/funs for anything beyond what a
// `let` binding in line itself declares.
func Run(line string, vars *evalctx.Variables, funs *evalctx.Functions, graphVars []string) (preview string, err error) {
	tokens, err := parser.ParseInfix(line, vars, funs, graphVars, true)
	if err != nil {
		return "", err
	}
	if tokens == nil {
		return "ok", nil
	}
	gv := make([]number.Number, len(graphVars))
	result := evaluator.Compute(tokens.Ref(), gv, funs, vars)
	return result.String(), nil
}

// Finish renders a committed value the way the REPL prints a final
// result, completing the preview/commit contract Run began.
func Finish(value number.Number) string {
	return value.String()
}
