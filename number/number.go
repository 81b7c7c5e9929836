/*
Number Module - Complex Numeric Backend
========================================

This package implements the numeric domain the rest of ucalc computes
over: a complex number with total arithmetic, transcendental functions,
and a handful of calculator-flavored extras (factorial via gamma,
tetration, subfactorial) that a plain math/cmplx import doesn't supply.

Every binary/unary operation is total: division by zero, log of zero,
and friends follow Go's own IEEE-754 complex/float semantics (Inf/NaN)
rather than panicking. Methods ending in Mut mutate the receiver in
place; the non-Mut form returns a new value and leaves the receiver
untouched.
*/

package number

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Number is a complex value with float64 real and imaginary parts.
type Number struct {
	Real float64
	Imag float64
}

// New builds a Number from its real and imaginary parts.
func New(real, imag float64) Number {
	return Number{Real: real, Imag: imag}
}

// FromReal builds a purely real Number.
func FromReal(real float64) Number {
	return Number{Real: real}
}

// FromBool encodes a boolean as 1 or 0, matching the calculator's
// truthiness convention for comparisons and logical operators.
func FromBool(b bool) Number {
	if b {
		return Number{Real: 1}
	}
	return Number{}
}

// Well-known constants, pre-seeded into the default variable table.
var (
	Pi        = Number{Real: math.Pi}
	Tau       = Number{Real: 2 * math.Pi}
	E         = Number{Real: math.E}
	Infinity  = Number{Real: math.Inf(1)}
	NegInf    = Number{Real: math.Inf(-1)}
	NaN       = Number{Real: math.NaN(), Imag: math.NaN()}
	Imaginary = Number{Imag: 1}
)

func (n Number) complex() complex128 { return complex(n.Real, n.Imag) }

func fromComplex(c complex128) Number { return Number{Real: real(c), Imag: imag(c)} }

// Add returns n + m.
func (n Number) Add(m Number) Number { return Number{n.Real + m.Real, n.Imag + m.Imag} }

// AddMut adds m into n in place.
func (n *Number) AddMut(m Number) { *n = n.Add(m) }

// Sub returns n - m.
func (n Number) Sub(m Number) Number { return Number{n.Real - m.Real, n.Imag - m.Imag} }

// SubMut subtracts m from n in place.
func (n *Number) SubMut(m Number) { *n = n.Sub(m) }

// Mul returns n * m.
func (n Number) Mul(m Number) Number { return fromComplex(n.complex() * m.complex()) }

// MulMut multiplies n by m in place.
func (n *Number) MulMut(m Number) { *n = n.Mul(m) }

// Div returns n / m.
func (n Number) Div(m Number) Number { return fromComplex(n.complex() / m.complex()) }

// DivMut divides n by m in place.
func (n *Number) DivMut(m Number) { *n = n.Div(m) }

// Rem returns the remainder of n by m. For real operands it is
// math.Mod (truncated division, result takes n's sign); otherwise it is
// n - q*m with the quotient n/m truncated component-wise.
func (n Number) Rem(m Number) Number {
	if n.Imag == 0 && m.Imag == 0 {
		return Number{Real: math.Mod(n.Real, m.Real)}
	}
	q := n.Div(m)
	q = Number{Real: math.Trunc(q.Real), Imag: math.Trunc(q.Imag)}
	return n.Sub(q.Mul(m))
}

// RemMut computes n % m in place.
func (n *Number) RemMut(m Number) { *n = n.Rem(m) }

// Neg returns -n.
func (n Number) Neg() Number { return Number{-n.Real, -n.Imag} }

// NegMut negates n in place.
func (n *Number) NegMut() { *n = n.Neg() }

// Abs returns the magnitude of n as a real Number.
func (n Number) Abs() Number { return FromReal(cmplx.Abs(n.complex())) }

// AbsMut replaces n with its magnitude.
func (n *Number) AbsMut() { *n = n.Abs() }

// Norm returns the squared magnitude of n.
func (n Number) Norm() Number { return FromReal(n.Real*n.Real + n.Imag*n.Imag) }

// Arg returns the principal argument of n.
func (n Number) Arg() Number { return FromReal(cmplx.Phase(n.complex())) }

// ArgMut replaces n with its argument.
func (n *Number) ArgMut() { *n = n.Arg() }

// Conj returns the complex conjugate of n.
func (n Number) Conj() Number { return Number{n.Real, -n.Imag} }

// ConjMut conjugates n in place.
func (n *Number) ConjMut() { *n = n.Conj() }

// Recip returns 1/n.
func (n Number) Recip() Number { return fromComplex(1 / n.complex()) }

// RecipMut replaces n with its reciprocal.
func (n *Number) RecipMut() { *n = n.Recip() }

// IsZero reports whether n is exactly the zero value.
func (n Number) IsZero() bool { return n.Real == 0 && n.Imag == 0 }

// IsNaN reports whether either component is NaN.
func (n Number) IsNaN() bool { return math.IsNaN(n.Real) || math.IsNaN(n.Imag) }

// Pow returns n raised to the exp power.
func (n Number) Pow(exp Number) Number { return fromComplex(cmplx.Pow(n.complex(), exp.complex())) }

// PowMut raises n to exp in place.
func (n *Number) PowMut(exp Number) { *n = n.Pow(exp) }

// Min returns whichever of n, m sorts first under TotalCmp.
func (n Number) Min(m Number) Number {
	if n.TotalCmp(m) <= 0 {
		return n
	}
	return m
}

// MinMut replaces n with Min(n, m).
func (n *Number) MinMut(m Number) { *n = n.Min(m) }

// Max returns whichever of n, m sorts last under TotalCmp.
func (n Number) Max(m Number) Number {
	if n.TotalCmp(m) >= 0 {
		return n
	}
	return m
}

// MaxMut replaces n with Max(n, m).
func (n *Number) MaxMut(m Number) { *n = n.Max(m) }

// TotalCmp imposes a total order over complex numbers, lexicographic by
// real part then imaginary part. NaN components sort after every
// non-NaN value of that component (the opposite of Go's cmp.Compare,
// which sorts NaN first).
func (n Number) TotalCmp(m Number) int {
	if c := totalCmpFloat(n.Real, m.Real); c != 0 {
		return c
	}
	return totalCmpFloat(n.Imag, m.Imag)
}

func totalCmpFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseRadix parses src as a base-10 numeric literal. The calculator's
// lexer never produces any other radix or exponent notation, so base is
// accepted only for signature symmetry with the original implementation.
func ParseRadix(src string, base int) (Number, bool) {
	if base != 10 {
		return Number{}, false
	}
	v, err := strconv.ParseFloat(src, 64)
	if err != nil {
		return Number{}, false
	}
	return FromReal(v), true
}

// String renders n the way the REPL prints results: a real part,
// followed by a signed imaginary part and trailing i when non-zero.
func (n Number) String() string {
	if n.Imag == 0 {
		return formatFloat(n.Real)
	}
	var b strings.Builder
	b.WriteString(formatFloat(n.Real))
	if n.Imag >= 0 || math.IsNaN(n.Imag) {
		b.WriteByte('+')
	}
	b.WriteString(formatFloat(n.Imag))
	b.WriteByte('i')
	return b.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
