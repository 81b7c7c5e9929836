/*
Function Catalog - Built-in Functions
======================================

Enumerates the built-in functions a user can call by name: `sin(x)`,
`max(a,b)`, `sum(lo,hi,body)`, and so on. Mirrors operator's shape —
a closed enum with arity/inverse/compute metadata — but builtins also
carry a Compact count, the number of trailing arguments the parser
must defer behind a Skip marker instead of eagerly evaluating (see the
parser and evaluator packages).
*/

package function

import "ucalc/number"

// Builtin identifies one built-in function.
type Builtin int

const (
	Invalid Builtin = iota
	Sin
	Asin
	Cos
	Acos
	Tan
	Sinh
	Asinh
	Cosh
	Acosh
	Tanh
	Atanh
	Ln
	Exp
	Atan
	Atan2
	Max
	Min
	Quadratic
	Sqrt
	Cbrt
	Sq
	Cb
	Sum
	Prod
	Gamma
	Erf
	Erfc
	Abs
	Arg
	Recip
	Conj
	Iter
	Ceil
	Floor
	Round
	Trunc
	Fract
	Real
	Imag
	If
)

// MaxInput is the largest arity any builtin or operator has.
const MaxInput = 3

// names resolves an identifier lexeme to a builtin. "atan" resolves to
// the two-input Atan2, and "arctan" to the one-input principal
// arctangent — preserved intentionally from the source implementation
// (see SPEC_FULL.md's resolved Open Question 1): the infix scanner's
// `[a-z]+` identifier rule can never itself produce the literal text
// "atan2", so the two-argument arctangent has to be spelled "atan".
var names = map[string]Builtin{
	"sin": Sin, "asin": Asin, "cos": Cos, "acos": Acos, "tan": Tan,
	"sinh": Sinh, "asinh": Asinh, "cosh": Cosh, "acosh": Acosh,
	"tanh": Tanh, "atanh": Atanh, "ln": Ln, "exp": Exp,
	"arctan": Atan, "atan": Atan2, "max": Max, "min": Min,
	"quadratic": Quadratic, "sqrt": Sqrt, "cbrt": Cbrt, "sq": Sq, "cb": Cb,
	"sum": Sum, "prod": Prod, "gamma": Gamma, "erf": Erf, "erfc": Erfc,
	"abs": Abs, "arg": Arg, "recip": Recip, "conj": Conj, "iter": Iter,
	"ceil": Ceil, "floor": Floor, "round": Round, "trunc": Trunc,
	"fract": Fract, "real": Real, "imag": Imag, "if": If,
}

// displayNames is the inverse of names, used by the display package.
// Where two names map to the same builtin ambiguity doesn't arise here
// since every builtin above has exactly one producing name.
var displayNames = func() map[Builtin]string {
	m := make(map[Builtin]string, len(names))
	for s, b := range names {
		m[b] = s
	}
	return m
}()

// FromName resolves an identifier to a builtin.
func FromName(s string) (Builtin, bool) {
	b, ok := names[s]
	return b, ok
}

// Name renders the builtin back to its canonical source spelling.
func (b Builtin) Name() string { return displayNames[b] }

// Inputs returns the builtin's arity.
func (b Builtin) Inputs() int {
	switch b {
	case Atan2, Max, Min:
		return 2
	case Quadratic, Sum, Prod, Iter, If:
		return 3
	default:
		return 1
	}
}

// Compact returns how many trailing arguments must be deferred behind
// a Skip marker: 1 for the iterand body of sum/prod/iter, 2 for the
// true/false branches of if, 0 otherwise.
func (b Builtin) Compact() int {
	switch b {
	case Sum, Prod, Iter:
		return 1
	case If:
		return 2
	default:
		return 0
	}
}

// Inverse returns the builtin's unique functional inverse, when one
// exists. Quantifier-like and multi-valued functions (sum, prod, iter,
// if, max, min, quadratic, atan2, and the real/imaginary projections)
// have none.
func (b Builtin) Inverse() (Builtin, bool) {
	switch b {
	case Sin:
		return Asin, true
	case Asin:
		return Sin, true
	case Cos:
		return Acos, true
	case Acos:
		return Cos, true
	case Ln:
		return Exp, true
	case Exp:
		return Ln, true
	case Recip:
		return Recip, true
	case Conj:
		return Conj, true
	case Sinh:
		return Asinh, true
	case Asinh:
		return Sinh, true
	case Cosh:
		return Acosh, true
	case Acosh:
		return Cosh, true
	case Tanh:
		return Atanh, true
	case Atanh:
		return Tanh, true
	case Tan:
		return Atan, true
	case Atan:
		return Tan, true
	case Sqrt:
		return Sq, true
	case Sq:
		return Sqrt, true
	case Cbrt:
		return Cb, true
	case Cb:
		return Cbrt, true
	default:
		return Invalid, false
	}
}

// Compute applies a non-compacting builtin to a in place, consuming
// any additional operands from b. Compacting builtins (Sum, Prod,
// Iter, If) are handled by the evaluator directly since they need
// access to the suspended Skip sub-expressions, not plain values.
func (b Builtin) Compute(a *number.Number, args []number.Number) {
	switch b {
	case Sin:
		*a = a.Sin()
	case Asin:
		*a = a.Asin()
	case Cos:
		*a = a.Cos()
	case Acos:
		*a = a.Acos()
	case Tan:
		*a = a.Tan()
	case Atan:
		*a = a.Atan()
	case Atan2:
		*a = a.Atan2(args[0])
	case Sinh:
		*a = a.Sinh()
	case Asinh:
		*a = a.Asinh()
	case Cosh:
		*a = a.Cosh()
	case Acosh:
		*a = a.Acosh()
	case Tanh:
		*a = a.Tanh()
	case Atanh:
		*a = a.Atanh()
	case Ln:
		*a = a.Ln()
	case Exp:
		*a = a.Exp()
	case Sqrt:
		*a = a.Sqrt()
	case Cbrt:
		*a = a.Pow(number.FromReal(1.0 / 3.0))
	case Sq:
		*a = a.Mul(*a)
	case Cb:
		*a = a.Mul(*a).Mul(*a)
	case Gamma:
		*a = a.Gamma()
	case Erf:
		*a = a.Erf()
	case Erfc:
		*a = a.Erfc()
	case Abs:
		*a = a.Abs()
	case Arg:
		*a = a.Arg()
	case Recip:
		*a = a.Recip()
	case Conj:
		*a = a.Conj()
	case Max:
		*a = a.Max(args[0])
	case Min:
		*a = a.Min(args[0])
	case Ceil:
		*a = a.Ceil()
	case Floor:
		*a = a.Floor()
	case Round:
		*a = a.Round()
	case Trunc:
		*a = a.Trunc()
	case Fract:
		*a = a.Fract()
	case Real:
		*a = a.RealPart()
	case Imag:
		*a = a.ImagPart()
	case Quadratic:
		// quadratic(a, b, c) = (sqrt(b^2 - 4ac) - b) / (2a), one root.
		bb, cc := args[0], args[1]
		disc := bb.Mul(bb).Sub(a.Mul(cc).Mul(number.FromReal(4))).Sqrt()
		*a = disc.Sub(bb).Div(a.Mul(number.FromReal(2)))
	}
}
