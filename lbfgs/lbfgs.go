// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lbfgs implements the limited-memory BFGS circular history buffer
// and the two-loop recursion that turns it into a search direction. It is
// a direct generalization of gonum's LBFGS.NextDirection
// (gonum.org/v1/gonum/optimize, formerly the root-level lbfgs.go): same
// circular-buffer/cursor scheme, same two-loop recursion, generified over
// T and carrying its own allocation-free buffers instead of leaning on an
// enclosing Method/Location state machine.
//
// Convention: s = Δx (position change), y = Δg (gradient change), the
// conventional L-BFGS assignment and the one gonum's own lbfgs.go uses
// (see DESIGN.md for the discussion of the alternative, swapped
// convention that was considered and rejected).
package lbfgs

import (
	"golang.org/x/exp/constraints"

	"github.com/lempiji/numeric/floats"
)

// History is a bounded circular buffer of (s, y, rho) correction pairs
// used to approximate the inverse Hessian. A History with M == 0 always
// produces the steepest-descent direction, degrading the driver to
// gradient descent.
type History[T constraints.Float] struct {
	m, n int

	s   [][]T
	y   [][]T
	rho []T

	oldest int // index of the slot that will be overwritten next
	filled int // number of valid slots, capped at m

	// scratch, reused across calls to Direction to keep it allocation-free
	alpha []T
	q     []T
}

// New returns a History with capacity m for problems of dimension n.
func New[T constraints.Float](m, n int) *History[T] {
	h := &History[T]{m: m, n: n}
	if m > 0 {
		h.s = make([][]T, m)
		h.y = make([][]T, m)
		h.rho = make([]T, m)
		h.alpha = make([]T, m)
		for i := range h.s {
			h.s[i] = make([]T, n)
			h.y[i] = make([]T, n)
		}
	}
	h.q = make([]T, n)
	return h
}

// Capacity returns the configured history size M.
func (h *History[T]) Capacity() int { return h.m }

// Update folds a new (s, y) correction pair into the history, where
// s = xc - xp and y = gc - gp. It returns false, storing nothing, if
// y.s == 0: the pair is degenerate and the driver must abort the run.
func (h *History[T]) Update(s, y []T) bool {
	if h.m == 0 {
		return true
	}
	ys := floats.Dot(y, s)
	if ys == 0 {
		return false
	}
	copy(h.s[h.oldest], s)
	copy(h.y[h.oldest], y)
	h.rho[h.oldest] = 1 / ys
	h.oldest = (h.oldest + 1) % h.m
	if h.filled < h.m {
		h.filled++
	}
	return true
}

// Direction computes the L-BFGS search direction for gradient g via the
// two-loop recursion (Nocedal & Wright, Numerical Optimization (2nd ed.),
// chapter 7, p.178) and writes it into dir. dir must have length n.
//
// If the history is empty (no pairs stored yet, or M == 0), Direction
// falls back to steepest descent, dir = -g.
func (h *History[T]) Direction(g []T, dir []T) {
	if len(dir) != len(g) {
		panic("lbfgs: dimension mismatch")
	}
	if h.filled == 0 {
		for i, v := range g {
			dir[i] = -v
		}
		return
	}

	q := h.q
	copy(q, g)

	// Most-recent-first pass.
	for i := 0; i < h.filled; i++ {
		idx := h.oldest - 1 - i
		if idx < 0 {
			idx += h.m
		}
		h.alpha[idx] = h.rho[idx] * floats.Dot(h.s[idx], q)
		floats.AddScaled(q, -h.alpha[idx], h.y[idx])
	}

	// Initial Hessian scaling using the most recently stored pair.
	newest := h.oldest - 1
	if newest < 0 {
		newest += h.m
	}
	yy := floats.Dot(h.y[newest], h.y[newest])
	gamma := T(1)
	if yy != 0 {
		gamma = (1 / h.rho[newest]) / yy
	}
	floats.Scale(gamma, q)

	// Oldest-first pass.
	start := h.oldest - h.filled
	if start < 0 {
		start += h.m
	}
	for i := 0; i < h.filled; i++ {
		idx := (start + i) % h.m
		beta := h.rho[idx] * floats.Dot(h.y[idx], q)
		floats.AddScaled(q, h.alpha[idx]-beta, h.s[idx])
	}

	for i, v := range q {
		dir[i] = -v
	}
}
