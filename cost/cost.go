// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cost provides a uniform view of "evaluate the objective at x and
// return value plus gradient", with two concrete implementations: one
// backed by forward-mode automatic differentiation (package dual), one by
// finite differences. This mirrors the FunctionGradient contract
// (FDf(x, grad) (obj float64)) found in gonum's older opt package, adapted
// to carry the evaluator inside a value instead of requiring the caller's
// own type to implement an interface method.
package cost

import (
	"golang.org/x/exp/constraints"

	"github.com/lempiji/numeric/dual"
)

// Evaluator evaluates an objective function and its gradient at a point.
// Evaluate must be safe to call repeatedly without retaining state between
// calls: implementations in this package allocate no instance state and
// are therefore trivially reusable and safe for concurrent use from
// independent solver instances.
type Evaluator[T constraints.Float] interface {
	// Evaluate computes the objective value at x and writes its gradient
	// into g. len(g) must equal len(x).
	Evaluate(x []T, g []T) T
}

// AutoDiff wraps a dual-polymorphic objective function F and evaluates it
// (and its gradient) via forward-mode automatic differentiation. F must be
// expressible using only the operators in package dual and the elementary
// functions it provides; anything else silently produces a zero or wrong
// derivative.
type AutoDiff[T constraints.Float] struct {
	F func([]dual.Number[T]) dual.Number[T]
}

// Evaluate seeds a length-len(x) slice of dual.Number, one per input
// coordinate, calls F, and copies the resulting value and gradient into
// the return value and g respectively.
func (c AutoDiff[T]) Evaluate(x []T, g []T) T {
	if len(g) != len(x) {
		panic("cost: gradient length mismatch")
	}
	seeded := dual.SeedAll(x)
	result := c.F(seeded)
	if len(result.D) != len(g) {
		panic("cost: objective gradient dimension mismatch")
	}
	copy(g, result.D)
	return result.A
}

// defaultStep is the default central-difference step size for a double
// precision evaluation.
const defaultStep = 1e-6

// NumericDiff wraps a plain-scalar objective function F and approximates
// its gradient by symmetric central differences:
//
//	g[i] ~= (F(x + h*e_i) - F(x - h*e_i)) / (2h)
//
// Step defaults to 1e-6 when zero.
type NumericDiff[T constraints.Float] struct {
	F    func([]T) T
	Step T
}

// Evaluate computes F(x) and approximates its gradient by central
// difference. Evaluate allocates one scratch buffer per call (a perturbed
// copy of x); this is the cost of derivative-free evaluation and is not
// on package solver's allocation-free hot path, which only touches plain
// []T buffers and calls Evaluate as a black box.
func (c NumericDiff[T]) Evaluate(x []T, g []T) T {
	if len(g) != len(x) {
		panic("cost: gradient length mismatch")
	}
	h := c.Step
	if h == 0 {
		h = T(defaultStep)
	}
	xp := make([]T, len(x))
	copy(xp, x)

	for i := range x {
		orig := xp[i]
		xp[i] = orig + h
		fPlus := c.F(xp)
		xp[i] = orig - h
		fMinus := c.F(xp)
		xp[i] = orig
		g[i] = (fPlus - fMinus) / (2 * h)
	}
	return c.F(x)
}
