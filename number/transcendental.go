package number

import (
	"math"
	"math/cmplx"
)

// Sin, Cos, Tan and the rest of the transcendental vocabulary delegate to
// math/cmplx, which is the standard library's complex-analytic backend
// and the natural Go analogue of the opaque numeric backend spec.md
// treats as out of scope to re-derive from scratch.

func (n Number) Sin() Number  { return fromComplex(cmplx.Sin(n.complex())) }
func (n Number) Cos() Number  { return fromComplex(cmplx.Cos(n.complex())) }
func (n Number) Tan() Number  { return fromComplex(cmplx.Tan(n.complex())) }
func (n Number) Asin() Number { return fromComplex(cmplx.Asin(n.complex())) }
func (n Number) Acos() Number { return fromComplex(cmplx.Acos(n.complex())) }

// Atan returns the principal one-input arctangent.
func (n Number) Atan() Number { return fromComplex(cmplx.Atan(n.complex())) }

// Atan2 returns the two-input arctangent atan(n/m) disambiguated by
// quadrant, restricted to the real axis like the two-argument form of
// math.Atan2 (the calculator's Atan2 builtin is real-only in practice
// since quadrant disambiguation on complex inputs isn't well defined).
func (n Number) Atan2(m Number) Number { return FromReal(math.Atan2(n.Real, m.Real)) }

func (n Number) Sinh() Number  { return fromComplex(cmplx.Sinh(n.complex())) }
func (n Number) Cosh() Number  { return fromComplex(cmplx.Cosh(n.complex())) }
func (n Number) Tanh() Number  { return fromComplex(cmplx.Tanh(n.complex())) }
func (n Number) Asinh() Number { return fromComplex(cmplx.Asinh(n.complex())) }
func (n Number) Acosh() Number { return fromComplex(cmplx.Acosh(n.complex())) }
func (n Number) Atanh() Number { return fromComplex(cmplx.Atanh(n.complex())) }

func (n Number) Ln() Number   { return fromComplex(cmplx.Log(n.complex())) }
func (n Number) Exp() Number  { return fromComplex(cmplx.Exp(n.complex())) }
func (n Number) Sqrt() Number { return fromComplex(cmplx.Sqrt(n.complex())) }

// Gamma evaluates the gamma function. On the real axis it defers to
// math.Gamma; off the real axis it falls back to the Lanczos
// approximation, since math/cmplx has no native gamma.
func (n Number) Gamma() Number {
	if n.Imag == 0 {
		return FromReal(math.Gamma(n.Real))
	}
	return fromComplex(lanczosGamma(n.complex()))
}

// Erf and Erfc are real-axis error functions: they are evaluated on the
// real part alone, and a non-zero imaginary part is dropped rather than
// approximated.
func (n Number) Erf() Number  { return FromReal(math.Erf(n.Real)) }
func (n Number) Erfc() Number { return FromReal(math.Erfc(n.Real)) }

func (n Number) Ceil() Number  { return Number{math.Ceil(n.Real), math.Ceil(n.Imag)} }
func (n Number) Floor() Number { return Number{math.Floor(n.Real), math.Floor(n.Imag)} }
func (n Number) Round() Number { return Number{math.Round(n.Real), math.Round(n.Imag)} }
func (n Number) Trunc() Number { return Number{math.Trunc(n.Real), math.Trunc(n.Imag)} }
func (n Number) Fract() Number {
	return Number{n.Real - math.Trunc(n.Real), n.Imag - math.Trunc(n.Imag)}
}

// RealPart and ImagPart project n onto a real Number holding one of its
// components (named to avoid colliding with the Real/Imag fields).
func (n Number) RealPart() Number { return FromReal(n.Real) }
func (n Number) ImagPart() Number { return FromReal(n.Imag) }

// Tetration computes n^^height for a non-negative integer height via
// iterated exponentiation; the calculator has no notion of a fractional
// or complex tetration tower, so non-integer heights truncate.
func (n Number) Tetration(height Number) Number {
	h := int(math.Trunc(height.Real))
	if h <= 0 {
		return Number{Real: 1}
	}
	result := n
	for i := 1; i < h; i++ {
		result = n.Pow(result)
	}
	return result
}

func (n *Number) TetrationMut(height Number) { *n = n.Tetration(height) }

// SubFactorial computes the derangement count !n for non-negative
// integers via the standard recurrence, and approximates via gamma for
// non-integer or complex n (documented as approximate, per spec.md's
// no-floating-point-reproducibility Non-goal).
func (n Number) SubFactorial() Number {
	if n.Imag == 0 && n.Real >= 0 && n.Real == math.Trunc(n.Real) {
		k := int(n.Real)
		if k == 0 {
			return Number{Real: 1}
		}
		prev, cur := 1.0, 0.0
		for i := 2; i <= k; i++ {
			prev, cur = cur, float64(i-1)*(prev+cur)
		}
		return FromReal(cur)
	}
	g := n.Add(Number{Real: 1}).Gamma()
	return FromReal(math.Round(g.Real / math.E))
}

func (n *Number) SubFactorialMut() { *n = n.SubFactorial() }

// lanczosGamma evaluates the gamma function off the real axis using the
// standard Lanczos approximation (g=7, n=9 coefficients).
func lanczosGamma(z complex128) complex128 {
	g := 7.0
	coeff := []float64{
		0.99999999999980993, 676.5203681218851, -1259.1392167224028,
		771.32342877765313, -176.61502916214059, 12.507343278686905,
		-0.13857109526572012, 9.9843695780195716e-6, 1.5056327351493116e-7,
	}
	pi := complex(math.Pi, 0)
	if real(z) < 0.5 {
		return pi / (cmplx.Sin(pi*z) * lanczosGamma(1-z))
	}
	z -= 1
	x := complex(coeff[0], 0)
	for i := 1; i < len(coeff); i++ {
		x += complex(coeff[i], 0) / (z + complex(float64(i), 0))
	}
	t := z + complex(g+0.5, 0)
	return cmplx.Sqrt(2*pi) * cmplx.Pow(t, z+complex(0.5, 0)) * cmplx.Exp(-t) * x
}
