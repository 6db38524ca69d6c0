// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linesearch

import (
	"testing"

	"github.com/lempiji/numeric/cost"
)

// quadratic f(x) = sum(x_i^2), gradient 2x.
type quadratic struct{}

func (quadratic) Evaluate(x, g []float64) float64 {
	var f float64
	for i, xi := range x {
		f += xi * xi
		g[i] = 2 * xi
	}
	return f
}

func TestArmijoSucceeds(t *testing.T) {
	c := quadratic{}
	xp := []float64{1, 1}
	gp := make([]float64, 2)
	fp := c.Evaluate(xp, gp)
	d := []float64{-gp[0], -gp[1]}

	xc := make([]float64, 2)
	gc := make([]float64, 2)
	opts := DefaultOptions[float64]()
	res := Search[float64](c, xp, gp, d, fp, 1.0, xc, gc, opts)

	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.FinalCost >= fp {
		t.Errorf("final cost %v did not decrease from %v", res.FinalCost, fp)
	}
}

func TestStrongWolfeSucceeds(t *testing.T) {
	c := quadratic{}
	xp := []float64{2, -3}
	gp := make([]float64, 2)
	fp := c.Evaluate(xp, gp)
	d := []float64{-gp[0], -gp[1]}

	xc := make([]float64, 2)
	gc := make([]float64, 2)
	opts := DefaultOptions[float64]()
	opts.Mode = StrongWolfe
	opts.MaxIterations = 30
	res := Search[float64](c, xp, gp, d, fp, 1.0, xc, gc, opts)

	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	absPhiPrime := gc[0]*d[0] + gc[1]*d[1]
	if absPhiPrime < 0 {
		absPhiPrime = -absPhiPrime
	}
	g0 := gp[0]*d[0] + gp[1]*d[1]
	absG0 := g0
	if absG0 < 0 {
		absG0 = -absG0
	}
	if absPhiPrime > opts.C2*absG0+1e-9 {
		t.Errorf("curvature condition violated: |phi'| = %v, bound = %v", absPhiPrime, opts.C2*absG0)
	}
}

func TestAscentDirectionFails(t *testing.T) {
	c := quadratic{}
	xp := []float64{1, 1}
	gp := make([]float64, 2)
	fp := c.Evaluate(xp, gp)
	// d is the gradient itself (ascent direction).
	d := []float64{gp[0], gp[1]}

	xc := make([]float64, 2)
	gc := make([]float64, 2)
	res := Search[float64](c, xp, gp, d, fp, 1.0, xc, gc, DefaultOptions[float64]())
	if res.Success {
		t.Fatal("expected failure for ascent direction")
	}
}
