// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lempiji/numeric/cost"
	"github.com/lempiji/numeric/dual"
	"github.com/lempiji/numeric/linesearch"
)

// A trivial linear/quadratic system with a well-conditioned minimum.
func scenarioACost(x []dual.Number[float64]) dual.Number[float64] {
	t0 := dual.SubC(dual.Add(x[0], x[1]), 1) // x0+x1-1
	t1 := dual.AddC(dual.Add(x[1], x[2]), 5) // x1+x2+5
	t2 := dual.AddC(dual.Add(x[2], x[0]), 3) // x2+x0+3
	return dual.Add(dual.Add(dual.Square(t0), dual.Square(t1)), dual.Square(t2))
}

func TestSolveScenarioA(t *testing.T) {
	c := cost.AutoDiff[float64]{F: scenarioACost}
	opts := DefaultOptions[float64]()
	opts.LineSearch.Mode = linesearch.StrongWolfe
	opts.LineSearch.MaxIterations = 50
	opts.InitialStepSize = 0.5
	opts.MaxIterations = 50

	x := []float64{0.5, 0.5, 0.5}
	s := New[float64](c, opts)
	result := s.Solve(x)

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.FirstCost <= 30 {
		t.Errorf("FirstCost = %v, want > 30", result.FirstCost)
	}
	if result.FinalCost >= 1e-10 {
		t.Errorf("FinalCost = %v, want < 1e-10", result.FinalCost)
	}
	if len(result.Iterations) > 50 {
		t.Errorf("len(Iterations) = %d, want <= 50", len(result.Iterations))
	}
}

// 3-D Rosenbrock via numeric differentiation: a hard case with a tight
// line-search budget, used as a regression guard against runaway
// "improvement."
func rosenbrock(x []float64) float64 {
	var sum float64
	for i := 0; i+1 < len(x); i++ {
		t1 := x[i+1] - x[i]*x[i]
		t2 := 1 - x[i]
		sum += 100*t1*t1 + t2*t2
	}
	return sum
}

func TestSolveScenarioB(t *testing.T) {
	c := cost.NumericDiff[float64]{F: rosenbrock}
	opts := DefaultOptions[float64]()
	opts.LineSearch.Mode = linesearch.StrongWolfe
	opts.LineSearch.MaxIterations = 10
	opts.EstimateStepSize = true
	opts.MaxIterations = 50

	x := []float64{-1.2, 0.4, -0.1}
	s := New[float64](c, opts)
	result := s.Solve(x)

	if result.Success {
		t.Errorf("expected success=false (regression guard), got success=true")
	}
	if len(result.Iterations) != 50 {
		t.Errorf("len(Iterations) = %d, want 50", len(result.Iterations))
	}
	if result.FirstCost <= 30 {
		t.Errorf("FirstCost = %v, want > 30", result.FirstCost)
	}
	if result.FinalCost >= 5 {
		t.Errorf("FinalCost = %v, want < 5 (made progress)", result.FinalCost)
	}
}

// A cost whose gradient at the starting point already satisfies the
// tolerance: the solver must report success without running any
// iterations.
func TestSolveScenarioFImmediateConvergence(t *testing.T) {
	// F(x) = x^2 - a trivial cost whose gradient at x=0 is exactly zero.
	c := cost.AutoDiff[float64]{F: func(x []dual.Number[float64]) dual.Number[float64] {
		return dual.Square(x[0])
	}}
	opts := DefaultOptions[float64]()
	x := []float64{0}
	s := New[float64](c, opts)
	result := s.Solve(x)

	want := Result[float64]{
		Success:    true,
		FirstCost:  0,
		FinalCost:  0,
		Iterations: nil,
	}
	if diff := cmp.Diff(want, result, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Solve() mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveRespectsMemoryZeroSteepestDescent(t *testing.T) {
	c := cost.AutoDiff[float64]{F: func(x []dual.Number[float64]) dual.Number[float64] {
		return dual.Add(dual.Square(x[0]), dual.Square(x[1]))
	}}
	opts := DefaultOptions[float64]()
	opts.Memory = 0
	opts.LineSearch.Mode = linesearch.StrongWolfe
	opts.MaxIterations = 200
	opts.LineSearch.MaxIterations = 30

	x := []float64{3, -4}
	s := New[float64](c, opts)
	result := s.Solve(x)
	if !result.Success {
		t.Fatalf("expected steepest descent to converge, got %+v", result)
	}
}
