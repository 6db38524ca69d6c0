// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linesearch implements a backtracking line search with two
// modes: plain Armijo (sufficient decrease only) and Strong-Wolfe
// (Armijo plus curvature). Both consume a cost.Evaluator, a base point, a
// search direction, and an initial step size, and either accept a step or
// report failure — a recoverable signal the caller (package solver) is
// expected to handle by restoring its last good state.
//
// The naming echoes the split gonum itself uses internally between a
// Linesearcher (what conditions to accept) and the driving loop that
// calls it (its own linesearch.go / optimize.LinesearchMethod), collapsed
// here into a single synchronous function: it is called once per outer
// L-BFGS iteration and runs to completion before returning, with no
// resumable, suspendable state machine.
package linesearch

import (
	"golang.org/x/exp/constraints"

	"github.com/lempiji/numeric/cost"
	"github.com/lempiji/numeric/floats"
)

// Mode selects the acceptance condition used by Search.
type Mode int

const (
	// Armijo accepts the first step satisfying the sufficient-decrease
	// condition alone.
	Armijo Mode = iota
	// StrongWolfe additionally requires the strong curvature condition,
	// via a zoom-style bracketing search.
	StrongWolfe
)

// Options configures a Search call.
type Options[T constraints.Float] struct {
	Mode          Mode
	MaxIterations int
	C1            T // Armijo sufficient-decrease parameter, default 1e-4.
	C2            T // Strong-Wolfe curvature parameter, default 0.9.
	Rho           T // Backtracking contraction factor, default 0.5.
}

// DefaultOptions returns the default line search configuration: Armijo
// mode, 20 max iterations, c1=1e-4, c2=0.9, rho=0.5.
func DefaultOptions[T constraints.Float]() Options[T] {
	return Options[T]{
		Mode:          Armijo,
		MaxIterations: 20,
		C1:            T(1e-4),
		C2:            T(0.9),
		Rho:           T(0.5),
	}
}

// minStep is the floor below which a backtracking step is considered to
// have underflowed.
const minStep = 1e-20

// Result reports the outcome of a Search call.
type Result[T constraints.Float] struct {
	Success    bool
	Iterations int
	FinalCost  T
	StepSize   T
}

// Search performs a line search along direction d from base point xp with
// gradient gp and base cost fp, starting at step alpha0. On success it
// writes the new point into xc and its gradient into gc and returns a
// Result with Success true. On failure xc and gc are left in an
// unspecified state; the caller must restore its own point from xp, gp.
//
// Search evaluates c.Evaluate at most opts.MaxIterations times (Strong
// Wolfe shares that budget between its bracketing and zoom phases).
func Search[T constraints.Float](c cost.Evaluator[T], xp, gp, d []T, fp T, alpha0 T, xc, gc []T, opts Options[T]) Result[T] {
	g0 := floats.Dot(gp, d)
	if g0 >= 0 {
		// Not a descent direction; treated identically to line-search
		// failure.
		return Result[T]{Success: false}
	}

	switch opts.Mode {
	case StrongWolfe:
		return strongWolfe(c, xp, d, fp, g0, alpha0, xc, gc, opts)
	default:
		return armijo(c, xp, d, fp, g0, alpha0, xc, gc, opts)
	}
}

func trial[T constraints.Float](c cost.Evaluator[T], xp, d []T, alpha T, xc, gc []T) T {
	floats.AddScaledTo(xc, xp, alpha, d)
	return c.Evaluate(xc, gc)
}

func armijo[T constraints.Float](c cost.Evaluator[T], xp, d []T, fp, g0, alpha0 T, xc, gc []T, opts Options[T]) Result[T] {
	alpha := alpha0
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		if alpha < minStep {
			return Result[T]{Success: false, Iterations: iter}
		}
		fc := trial(c, xp, d, alpha, xc, gc)
		if fc <= fp+opts.C1*alpha*g0 {
			return Result[T]{Success: true, Iterations: iter, FinalCost: fc, StepSize: alpha}
		}
		alpha *= opts.Rho
	}
	return Result[T]{Success: false, Iterations: opts.MaxIterations}
}

// strongWolfe implements the bracketing + zoom algorithm of Nocedal &
// Wright, Numerical Optimization (2nd ed.), §3.5.
func strongWolfe[T constraints.Float](c cost.Evaluator[T], xp, d []T, fp, g0, alpha0 T, xc, gc []T, opts Options[T]) Result[T] {
	absG0 := g0
	if absG0 < 0 {
		absG0 = -absG0
	}

	var alphaPrev T
	phiPrev := fp
	alpha := alpha0
	iter := 0

	for iter < opts.MaxIterations {
		iter++
		phi := trial(c, xp, d, alpha, xc, gc)
		phiPrime := floats.Dot(gc, d)

		if phi > fp+opts.C1*alpha*g0 || (iter > 1 && phi >= phiPrev) {
			return zoom(c, xp, d, fp, g0, absG0, alphaPrev, phiPrev, alpha, xc, gc, opts, iter)
		}

		absPhiPrime := phiPrime
		if absPhiPrime < 0 {
			absPhiPrime = -absPhiPrime
		}
		if absPhiPrime <= opts.C2*absG0 {
			return Result[T]{Success: true, Iterations: iter, FinalCost: phi, StepSize: alpha}
		}

		if phiPrime >= 0 {
			return zoom(c, xp, d, fp, g0, absG0, alpha, phi, alphaPrev, xc, gc, opts, iter)
		}

		alphaPrev, phiPrev = alpha, phi
		alpha *= 2
	}
	return Result[T]{Success: false, Iterations: iter}
}

// zoom narrows the bracket [lo, hi] (flo the cost at lo) until it finds a
// step satisfying both Strong-Wolfe conditions, bisecting at each
// iteration. spent accounts for evaluations already made in the
// bracketing phase, so the combined search respects opts.MaxIterations.
func zoom[T constraints.Float](c cost.Evaluator[T], xp, d []T, fp, g0, absG0, lo T, flo T, hi T, xc, gc []T, opts Options[T], spent int) Result[T] {
	for iter := spent; iter < opts.MaxIterations; iter++ {
		alpha := (lo + hi) / 2
		if alpha < minStep {
			return Result[T]{Success: false, Iterations: iter + 1}
		}
		phi := trial(c, xp, d, alpha, xc, gc)

		if phi > fp+opts.C1*alpha*g0 || phi >= flo {
			hi = alpha
			continue
		}

		phiPrime := floats.Dot(gc, d)
		absPhiPrime := phiPrime
		if absPhiPrime < 0 {
			absPhiPrime = -absPhiPrime
		}
		if absPhiPrime <= opts.C2*absG0 {
			return Result[T]{Success: true, Iterations: iter + 1, FinalCost: phi, StepSize: alpha}
		}
		if phiPrime*(hi-lo) >= 0 {
			hi = lo
		}
		lo, flo = alpha, phi
	}
	return Result[T]{Success: false, Iterations: opts.MaxIterations}
}
