package token

// FindSubExprStart locates the start index of the final sub-expression
// ending just before the exclusive bound end, per the stack-balance
// walker shared by display, argument compaction, and the inverse pass:
// starting with one pending input, step left one token at a time;
// each token first satisfies one pending input, then — if it is
// itself a call or a suspended sub-expression — adds back the inputs
// it requires before it can be considered satisfied. The walk stops
// the instant the pending count returns to zero.
//
// funArity resolves a Fun(i) token's arity without this package
// depending on the evalctx table that owns that information.
//
// A Skip(n) marker contributes back exactly the one input it itself
// satisfies, so stepping over one costs nothing net — the marker and
// the n tokens of its suspended body are walked like any other
// complete, self-balancing sub-expression.
func FindSubExprStart(tokens TokensRef, end int, funArity func(i int) int) int {
	inputs := 1
	for inputs != 0 {
		inputs--
		end--
		switch tokens[end].Kind {
		case KindCall:
			inputs += tokens[end].Call.Inputs()
		case KindFun:
			inputs += funArity(tokens[end].Index)
		case KindSkip:
			inputs++
		}
	}
	return end
}
