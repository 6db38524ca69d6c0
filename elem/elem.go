// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elem provides generic elementary math functions over plain
// floating-point values. It is the scalar half of the dispatch pair
// described for package dual: the same function names operate on T here
// and on dual.Number[T] there, with dual delegating to elem for both the
// value and the derivative factor.
package elem

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Square returns a*a.
func Square[T constraints.Float](a T) T { return a * a }

// Sqrt returns the square root of a.
func Sqrt[T constraints.Float](a T) T { return T(math.Sqrt(float64(a))) }

// Exp returns e**a.
func Exp[T constraints.Float](a T) T { return T(math.Exp(float64(a))) }

// Log returns the natural logarithm of a.
func Log[T constraints.Float](a T) T { return T(math.Log(float64(a))) }

// Sin returns the sine of a.
func Sin[T constraints.Float](a T) T { return T(math.Sin(float64(a))) }

// Cos returns the cosine of a.
func Cos[T constraints.Float](a T) T { return T(math.Cos(float64(a))) }

// Tan returns the tangent of a.
func Tan[T constraints.Float](a T) T { return T(math.Tan(float64(a))) }

// Sinh returns the hyperbolic sine of a.
func Sinh[T constraints.Float](a T) T { return T(math.Sinh(float64(a))) }

// Cosh returns the hyperbolic cosine of a.
func Cosh[T constraints.Float](a T) T { return T(math.Cosh(float64(a))) }

// Tanh returns the hyperbolic tangent of a.
func Tanh[T constraints.Float](a T) T { return T(math.Tanh(float64(a))) }

// Asinh returns the inverse hyperbolic sine of a.
func Asinh[T constraints.Float](a T) T { return T(math.Asinh(float64(a))) }

// Acosh returns the inverse hyperbolic cosine of a.
func Acosh[T constraints.Float](a T) T { return T(math.Acosh(float64(a))) }

// Atanh returns the inverse hyperbolic tangent of a.
func Atanh[T constraints.Float](a T) T { return T(math.Atanh(float64(a))) }

// Derivative factors, f'(a), one per function in this file. These are
// shared by package dual so the chain rule is defined in exactly one
// place per function.

// DSquare is the derivative factor of Square at a: 2a.
func DSquare[T constraints.Float](a T) T { return 2 * a }

// DSqrt is the derivative factor of Sqrt at a: 0.5/sqrt(a).
func DSqrt[T constraints.Float](a T) T { return T(0.5) / Sqrt(a) }

// DExp is the derivative factor of Exp at a: exp(a).
func DExp[T constraints.Float](a T) T { return Exp(a) }

// DLog is the derivative factor of Log at a: 1/a.
func DLog[T constraints.Float](a T) T { return 1 / a }

// DSin is the derivative factor of Sin at a: cos(a).
func DSin[T constraints.Float](a T) T { return Cos(a) }

// DCos is the derivative factor of Cos at a: -sin(a).
func DCos[T constraints.Float](a T) T { return -Sin(a) }

// DTan is the derivative factor of Tan at a: 1 + tan(a)^2.
func DTan[T constraints.Float](a T) T { t := Tan(a); return 1 + t*t }

// DSinh is the derivative factor of Sinh at a: cosh(a).
func DSinh[T constraints.Float](a T) T { return Cosh(a) }

// DCosh is the derivative factor of Cosh at a: sinh(a).
func DCosh[T constraints.Float](a T) T { return Sinh(a) }

// DTanh is the derivative factor of Tanh at a: 1 - tanh(a)^2.
func DTanh[T constraints.Float](a T) T { t := Tanh(a); return 1 - t*t }

// DAsinh is the derivative factor of Asinh at a: 1/sqrt(a^2+1).
func DAsinh[T constraints.Float](a T) T { return 1 / Sqrt(a*a+1) }

// DAcosh is the derivative factor of Acosh at a: 1/sqrt(a^2-1).
func DAcosh[T constraints.Float](a T) T { return 1 / Sqrt(a*a-1) }

// DAtanh is the derivative factor of Atanh at a: 1/(1-a^2).
func DAtanh[T constraints.Float](a T) T { return 1 / (1 - a*a) }
