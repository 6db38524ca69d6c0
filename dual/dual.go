// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dual provides a forward-mode automatic-differentiation carrier,
// Number[T], and arithmetic over it. A Number holds a primal value and a
// gradient with respect to a fixed number N of independent variables; every
// arithmetic operation propagates the gradient alongside the value in one
// pass.
//
// Go has no compile-time (const) generic parameter for a fixed gradient
// dimension, so N here is a runtime int fixed at construction and carried
// as the length of the gradient slice. All functions in this package
// panic if given Numbers of mismatched gradient length, preserving the
// invariant that N never changes for a given Number's lifetime.
package dual

import (
	"golang.org/x/exp/constraints"

	"github.com/lempiji/numeric/elem"
)

// Number is a dual number: a primal value A paired with a gradient D with
// respect to N independent variables, N = len(D).
type Number[T constraints.Float] struct {
	A T
	D []T
}

// Constant returns a Number representing the constant v: value v, gradient
// zero, with gradient length n.
func Constant[T constraints.Float](n int, v T) Number[T] {
	return Number[T]{A: v, D: make([]T, n)}
}

// Variable returns a Number seeded as the i'th of n independent variables
// with value v: value v, gradient the i'th standard basis vector of
// length n. Panics if i is not in [0, n).
func Variable[T constraints.Float](n, i int, v T) Number[T] {
	if i < 0 || i >= n {
		panic("dual: seed index out of range")
	}
	d := make([]T, n)
	d[i] = 1
	return Number[T]{A: v, D: d}
}

// SeedAll returns a slice of n Numbers, the i'th seeded as the i'th
// independent variable at value x[i]. This is the standard way to prepare
// an input vector for an automatic-differentiation evaluation of a
// function of n variables.
func SeedAll[T constraints.Float](x []T) []Number[T] {
	n := len(x)
	out := make([]Number[T], n)
	for i, v := range x {
		out[i] = Variable[T](n, i, v)
	}
	return out
}

// N returns the gradient dimension of d.
func (d Number[T]) N() int { return len(d.D) }

func checkSameN[T constraints.Float](a, b Number[T]) {
	if len(a.D) != len(b.D) {
		panic("dual: gradient dimension mismatch")
	}
}

// Neg returns -d.
func Neg[T constraints.Float](d Number[T]) Number[T] {
	out := Number[T]{A: -d.A, D: make([]T, len(d.D))}
	for i, v := range d.D {
		out.D[i] = -v
	}
	return out
}

// Add returns a+b.
func Add[T constraints.Float](a, b Number[T]) Number[T] {
	checkSameN(a, b)
	out := Number[T]{A: a.A + b.A, D: make([]T, len(a.D))}
	for i := range out.D {
		out.D[i] = a.D[i] + b.D[i]
	}
	return out
}

// Sub returns a-b.
func Sub[T constraints.Float](a, b Number[T]) Number[T] {
	checkSameN(a, b)
	out := Number[T]{A: a.A - b.A, D: make([]T, len(a.D))}
	for i := range out.D {
		out.D[i] = a.D[i] - b.D[i]
	}
	return out
}

// Mul returns a*b: (a.A*b.A, a.D*b.A + a.A*b.D).
func Mul[T constraints.Float](a, b Number[T]) Number[T] {
	checkSameN(a, b)
	out := Number[T]{A: a.A * b.A, D: make([]T, len(a.D))}
	for i := range out.D {
		out.D[i] = a.D[i]*b.A + a.A*b.D[i]
	}
	return out
}

// Div returns a/b: (a.A/b.A, (a.D - (a.A/b.A)*b.D) / b.A). Division by a
// Number whose value is zero is undefined behavior, left to the caller:
// not checked here.
func Div[T constraints.Float](a, b Number[T]) Number[T] {
	checkSameN(a, b)
	q := a.A / b.A
	out := Number[T]{A: q, D: make([]T, len(a.D))}
	for i := range out.D {
		out.D[i] = (a.D[i] - q*b.D[i]) / b.A
	}
	return out
}

// AddC returns a+c for a plain scalar c: value shifts by c, gradient is
// unchanged.
func AddC[T constraints.Float](a Number[T], c T) Number[T] {
	out := Number[T]{A: a.A + c, D: make([]T, len(a.D))}
	copy(out.D, a.D)
	return out
}

// SubC returns a-c.
func SubC[T constraints.Float](a Number[T], c T) Number[T] {
	return AddC(a, -c)
}

// CSub returns c-a: value c-a.A, gradient negated relative to a's.
func CSub[T constraints.Float](c T, a Number[T]) Number[T] {
	out := Number[T]{A: c - a.A, D: make([]T, len(a.D))}
	for i, v := range a.D {
		out.D[i] = -v
	}
	return out
}

// MulC returns a*c: value and gradient both scaled by c.
func MulC[T constraints.Float](a Number[T], c T) Number[T] {
	out := Number[T]{A: a.A * c, D: make([]T, len(a.D))}
	for i, v := range a.D {
		out.D[i] = v * c
	}
	return out
}

// DivC returns a/c.
func DivC[T constraints.Float](a Number[T], c T) Number[T] {
	return MulC(a, 1/c)
}

// CDiv returns c/a. This is the reverse-scalar-division rule, distinct
// from DivC: d(c/x) = -c*d(x)/x^2, not a simple scale of a's gradient.
func CDiv[T constraints.Float](c T, a Number[T]) Number[T] {
	q := c / a.A
	out := Number[T]{A: q, D: make([]T, len(a.D))}
	factor := -c / (a.A * a.A)
	for i, v := range a.D {
		out.D[i] = factor * v
	}
	return out
}

// AddAssign performs *d += rhs. The pointer-receiver *Assign family
// stands in for compound assignment operators, Go having no operator
// overloading.
func (d *Number[T]) AddAssign(rhs Number[T]) { *d = Add(*d, rhs) }

// SubAssign performs *d -= rhs.
func (d *Number[T]) SubAssign(rhs Number[T]) { *d = Sub(*d, rhs) }

// MulAssign performs *d *= rhs.
func (d *Number[T]) MulAssign(rhs Number[T]) { *d = Mul(*d, rhs) }

// DivAssign performs *d /= rhs.
func (d *Number[T]) DivAssign(rhs Number[T]) { *d = Div(*d, rhs) }

// SetScalar assigns a plain scalar to d, resetting the gradient to zero.
func (d *Number[T]) SetScalar(v T) {
	d.A = v
	for i := range d.D {
		d.D[i] = 0
	}
}

// elementary functions, chain-rule composed from package elem.

// Square returns d*d via the chain rule: f'(a) = 2a.
func Square[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Square[T], elem.DSquare[T])
}

// Sqrt returns the square root of d.
func Sqrt[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Sqrt[T], elem.DSqrt[T])
}

// Exp returns e**d.
func Exp[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Exp[T], elem.DExp[T])
}

// Log returns the natural logarithm of d.
func Log[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Log[T], elem.DLog[T])
}

// Sin returns the sine of d.
func Sin[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Sin[T], elem.DSin[T])
}

// Cos returns the cosine of d.
func Cos[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Cos[T], elem.DCos[T])
}

// Tan returns the tangent of d.
func Tan[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Tan[T], elem.DTan[T])
}

// Sinh returns the hyperbolic sine of d.
func Sinh[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Sinh[T], elem.DSinh[T])
}

// Cosh returns the hyperbolic cosine of d.
func Cosh[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Cosh[T], elem.DCosh[T])
}

// Tanh returns the hyperbolic tangent of d.
func Tanh[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Tanh[T], elem.DTanh[T])
}

// Asinh returns the inverse hyperbolic sine of d.
func Asinh[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Asinh[T], elem.DAsinh[T])
}

// Acosh returns the inverse hyperbolic cosine of d.
func Acosh[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Acosh[T], elem.DAcosh[T])
}

// Atanh returns the inverse hyperbolic tangent of d.
func Atanh[T constraints.Float](d Number[T]) Number[T] {
	return unary(d, elem.Atanh[T], elem.DAtanh[T])
}

// unary applies the chain rule y = f(x) => (f(a), f'(a)*d) for a scalar
// function f with derivative factor df, shared by every elementary
// function above.
func unary[T constraints.Float](x Number[T], f, df func(T) T) Number[T] {
	deriv := df(x.A)
	out := Number[T]{A: f(x.A), D: make([]T, len(x.D))}
	for i, v := range x.D {
		out.D[i] = deriv * v
	}
	return out
}
