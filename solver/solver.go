// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the L-BFGS outer driver loop: evaluate the
// cost, maintain the limited-memory history, compute a search direction,
// call the line search, and check convergence. It is the public entry
// point of the module, combining packages cost, linesearch, and lbfgs.
package solver

import (
	"golang.org/x/exp/constraints"

	"github.com/lempiji/numeric/cost"
	"github.com/lempiji/numeric/floats"
	"github.com/lempiji/numeric/lbfgs"
	"github.com/lempiji/numeric/linesearch"
)

// Options configures a Solver.
type Options[T constraints.Float] struct {
	MaxIterations     int
	GradientTolerance T
	EstimateStepSize  bool
	InitialStepSize   T
	Memory            int // L-BFGS history capacity M; 0 degrades to steepest descent.
	LineSearch        linesearch.Options[T]
}

// DefaultOptions returns the default SolverOptions: 20 max iterations,
// gradient tolerance 1e-10, fixed initial step size 1, memory 6, and
// default line search options.
func DefaultOptions[T constraints.Float]() Options[T] {
	return Options[T]{
		MaxIterations:     20,
		GradientTolerance: T(1e-10),
		EstimateStepSize:  false,
		InitialStepSize:   1,
		Memory:            6,
		LineSearch:        linesearch.DefaultOptions[T](),
	}
}

// Iteration records the outcome of one outer L-BFGS iteration.
type Iteration[T constraints.Float] struct {
	Success              bool
	LineSearchIterations int
	StepSize             T
	Cost                 T
	ParamNorm            T
	GradientNorm         T
}

// Result is the outcome of a full Solve run.
type Result[T constraints.Float] struct {
	Success    bool
	FirstCost  T
	FinalCost  T
	Iterations []Iteration[T]
}

// Solver drives an Evaluator to a stationary point using L-BFGS with a
// backtracking or Strong-Wolfe line search.
type Solver[T constraints.Float] struct {
	Cost    cost.Evaluator[T]
	Options Options[T]
}

// New returns a Solver for the given cost and options.
func New[T constraints.Float](c cost.Evaluator[T], opts Options[T]) *Solver[T] {
	return &Solver[T]{Cost: c, Options: opts}
}

// Solve runs the optimizer in place: on return, x holds the best point
// reached (even on failure, the last successful line-search point), and
// the returned Result describes the run.
//
// All hot-path buffers (xc, gc, xp, gp, sv and the L-BFGS history slots)
// are allocated once here and reused across iterations.
func (s *Solver[T]) Solve(x []T) Result[T] {
	n := len(x)
	opts := s.Options

	xc := make([]T, n)
	copy(xc, x)
	gc := make([]T, n)

	f := s.Cost.Evaluate(xc, gc)
	result := Result[T]{FirstCost: f, FinalCost: f}

	if converged(xc, gc, opts.GradientTolerance) {
		result.Success = true
		copy(x, xc)
		return result
	}

	hist := lbfgs.New[T](opts.Memory, n)

	sv := make([]T, n)
	hist.Direction(gc, sv)

	alpha := stepSize(opts, sv)

	xp := make([]T, n)
	gp := make([]T, n)
	sDelta := make([]T, n)
	yDelta := make([]T, n)

	for k := 0; k < opts.MaxIterations; k++ {
		copy(xp, xc)
		copy(gp, gc)

		ls := linesearch.Search(s.Cost, xp, gp, sv, f, alpha, xc, gc, opts.LineSearch)

		iter := Iteration[T]{
			Success:              ls.Success,
			LineSearchIterations: ls.Iterations,
			StepSize:             ls.StepSize,
			Cost:                 ls.FinalCost,
		}

		if !ls.Success {
			copy(xc, xp)
			copy(gc, gp)
			iter.Cost = f
			result.Iterations = append(result.Iterations, iter)
			result.Success = false
			result.FinalCost = f
			copy(x, xc)
			return result
		}

		f = ls.FinalCost
		iter.ParamNorm = floats.Norm(xc)
		iter.GradientNorm = floats.Norm(gc)
		result.Iterations = append(result.Iterations, iter)
		result.FinalCost = f

		if converged(xc, gc, opts.GradientTolerance) {
			result.Success = true
			copy(x, xc)
			return result
		}

		if k+1 >= opts.MaxIterations {
			result.Success = false
			copy(x, xc)
			return result
		}

		floats.SubTo(sDelta, xc, xp)
		floats.SubTo(yDelta, gc, gp)
		if !hist.Update(sDelta, yDelta) {
			result.Success = false
			copy(x, xc)
			return result
		}

		hist.Direction(gc, sv)
		alpha = stepSize(opts, sv)
	}

	result.Success = false
	copy(x, xc)
	return result
}

// converged reports whether ‖g‖² < tol·max(‖x‖², 1).
func converged[T constraints.Float](x, g []T, tol T) bool {
	n2 := floats.NormSq(x)
	if n2 < 1 {
		n2 = 1
	}
	return floats.NormSq(g) < n2*tol
}

// stepSize returns the initial step for the next line search: either the
// fixed InitialStepSize, or 1/sqrt(‖sv‖²) when EstimateStepSize is set.
// Falls back to InitialStepSize if ‖sv‖² is zero to avoid dividing by
// zero.
func stepSize[T constraints.Float](opts Options[T], sv []T) T {
	if !opts.EstimateStepSize {
		return opts.InitialStepSize
	}
	n2 := floats.NormSq(sv)
	if n2 == 0 {
		return opts.InitialStepSize
	}
	return 1 / floats.Sqrt(n2)
}
