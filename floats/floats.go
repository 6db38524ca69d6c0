// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floats provides a set of helper routines for dealing with slices
// of a floating-point type T. The functions avoid allocation where a
// destination slice is supplied, so that they can be used within the
// L-BFGS driver's hot loop without incurring garbage-collection pressure.
//
// This is a generic descendant of gonum's root-level floats package: same
// function set and panic-on-misuse conventions, parametrized over T
// instead of hard-coded to float64.
package floats

import (
	"golang.org/x/exp/constraints"

	"github.com/lempiji/numeric/elem"
)

// Sum returns the sum of the elements of s. Panics if s is empty.
func Sum[T constraints.Float](s []T) T {
	if len(s) == 0 {
		panic("floats: zero length slice")
	}
	var sum T
	for _, v := range s {
		sum += v
	}
	return sum
}

// SumSq returns the sum of the squares of the elements of s. Panics if s
// is empty.
func SumSq[T constraints.Float](s []T) T {
	if len(s) == 0 {
		panic("floats: zero length slice")
	}
	var sum T
	for _, v := range s {
		sum += v * v
	}
	return sum
}

// Dot returns the dot product of s1 and s2. Panics if the two slices do
// not have equal length.
func Dot[T constraints.Float](s1, s2 []T) T {
	if len(s1) != len(s2) {
		panic("floats: length mismatch")
	}
	var sum T
	for i, v := range s1 {
		sum += v * s2[i]
	}
	return sum
}

// Sqrt returns the square root of a, delegating to package elem so that
// the transcendental implementation lives in exactly one place.
func Sqrt[T constraints.Float](a T) T {
	return elem.Sqrt(a)
}

// Norm returns the L2 (Euclidean) norm of s.
func Norm[T constraints.Float](s []T) T {
	return Sqrt(Dot(s, s))
}

// NormSq returns the squared L2 norm of s, i.e. Dot(s, s). Exposed
// separately so callers on the L-BFGS hot path (which only ever need the
// squared norm for convergence comparisons) can avoid the sqrt.
func NormSq[T constraints.Float](s []T) T {
	return Dot(s, s)
}

// Scale multiplies every element of s by c, in place.
func Scale[T constraints.Float](c T, s []T) {
	for i := range s {
		s[i] *= c
	}
}

// AddScaled performs dst[i] += alpha*s[i] for all i. Panics if dst and s
// do not have equal length.
func AddScaled[T constraints.Float](dst []T, alpha T, s []T) {
	if len(dst) != len(s) {
		panic("floats: length mismatch")
	}
	for i, v := range s {
		dst[i] += alpha * v
	}
}

// AddScaledTo performs dst[i] = y[i] + alpha*s[i] for all i, returning
// dst. Panics if the three slices do not have equal length.
func AddScaledTo[T constraints.Float](dst, y []T, alpha T, s []T) []T {
	if len(y) != len(s) || len(dst) != len(y) {
		panic("floats: length mismatch")
	}
	for i, v := range s {
		dst[i] = y[i] + alpha*v
	}
	return dst
}

// Sub performs s[i] -= t[i] for all i, in place on s.
func Sub[T constraints.Float](s, t []T) {
	if len(s) != len(t) {
		panic("floats: length mismatch")
	}
	for i, v := range t {
		s[i] -= v
	}
}

// SubTo performs dst[i] = s[i] - t[i] for all i, returning dst.
func SubTo[T constraints.Float](dst, s, t []T) []T {
	if len(s) != len(t) || len(dst) != len(s) {
		panic("floats: length mismatch")
	}
	for i, v := range s {
		dst[i] = v - t[i]
	}
	return dst
}

// Fill sets every element of dst to v.
func Fill[T constraints.Float](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// EqualWithinAbs returns whether a and b are equal to within the given
// absolute tolerance.
func EqualWithinAbs[T constraints.Float](a, b, tol T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// EqualWithinRel returns whether a and b are equal to within the given
// relative tolerance.
func EqualWithinRel[T constraints.Float](a, b, tol T) bool {
	if a == b {
		return true
	}
	delta := a - b
	if delta < 0 {
		delta = -delta
	}
	aAbs, bAbs := a, b
	if aAbs < 0 {
		aAbs = -aAbs
	}
	if bAbs < 0 {
		bAbs = -bAbs
	}
	largest := aAbs
	if bAbs > largest {
		largest = bAbs
	}
	return delta <= largest*tol
}
