// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

import "golang.org/x/exp/constraints"

// Sum returns xs[0] + ... + xs[n-1]. Panics if xs is empty.
func Sum[T constraints.Float](xs []Number[T]) Number[T] {
	if len(xs) == 0 {
		panic("dual: zero length slice")
	}
	out := xs[0]
	for _, x := range xs[1:] {
		out = Add(out, x)
	}
	return out
}

// SumSq returns the sum of Square(xs[i]) for all i. Panics if xs is empty.
func SumSq[T constraints.Float](xs []Number[T]) Number[T] {
	if len(xs) == 0 {
		panic("dual: zero length slice")
	}
	out := Square(xs[0])
	for _, x := range xs[1:] {
		out = Add(out, Square(x))
	}
	return out
}

// Dot returns the dot product of a and b, both dual-valued. Panics if a
// and b do not have equal length, or if any element's gradient dimension
// disagrees with the others.
//
// The accumulation is manually unrolled into two partial sums over blocks
// of 16 elements, then 4, then a scalar tail, to expose instruction-level
// parallelism over the dual.Number gradients. (Package floats' plain-T Dot
// is a single straight loop.)
func Dot[T constraints.Float](a, b []Number[T]) Number[T] {
	if len(a) != len(b) {
		panic("dual: length mismatch")
	}
	if len(a) == 0 {
		panic("dual: zero length slice")
	}
	n := a[0].N()
	for i := range a {
		checkSameN(a[0], a[i])
		checkSameN(a[0], b[i])
	}

	var sum0, sum1 T
	grad0 := make([]T, n)
	grad1 := make([]T, n)

	i := 0
	for ; i+16 <= len(a); i += 16 {
		for k := 0; k < 16; k += 2 {
			x0, y0 := a[i+k], b[i+k]
			x1, y1 := a[i+k+1], b[i+k+1]
			checkSameN(x0, y0)
			checkSameN(x1, y1)
			sum0 += x0.A * y0.A
			sum1 += x1.A * y1.A
			for j := 0; j < n; j++ {
				grad0[j] += x0.D[j]*y0.A + x0.A*y0.D[j]
				grad1[j] += x1.D[j]*y1.A + x1.A*y1.D[j]
			}
		}
	}
	for ; i+4 <= len(a); i += 4 {
		for k := 0; k < 4; k += 2 {
			x0, y0 := a[i+k], b[i+k]
			x1, y1 := a[i+k+1], b[i+k+1]
			checkSameN(x0, y0)
			checkSameN(x1, y1)
			sum0 += x0.A * y0.A
			sum1 += x1.A * y1.A
			for j := 0; j < n; j++ {
				grad0[j] += x0.D[j]*y0.A + x0.A*y0.D[j]
				grad1[j] += x1.D[j]*y1.A + x1.A*y1.D[j]
			}
		}
	}
	for ; i < len(a); i++ {
		x, y := a[i], b[i]
		checkSameN(x, y)
		sum0 += x.A * y.A
		for j := 0; j < n; j++ {
			grad0[j] += x.D[j]*y.A + x.A*y.D[j]
		}
	}

	out := Number[T]{A: sum0 + sum1, D: grad0}
	for j := range out.D {
		out.D[j] += grad1[j]
	}
	return out
}

// DotScalar returns the dot product of a dual-valued slice a and a
// plain-scalar slice b. The gradient accumulates from a's side only,
// since b carries no gradient information.
func DotScalar[T constraints.Float](a []Number[T], b []T) Number[T] {
	if len(a) != len(b) {
		panic("dual: length mismatch")
	}
	if len(a) == 0 {
		panic("dual: zero length slice")
	}
	n := a[0].N()
	out := Number[T]{A: 0, D: make([]T, n)}
	for i, x := range a {
		checkSameN(a[0], x)
		out.A += x.A * b[i]
		for j := 0; j < n; j++ {
			out.D[j] += x.D[j] * b[i]
		}
	}
	return out
}

// ScalarDot is DotScalar(a, b) with the scalar slice first: dot(ys, xs)
// == dot(xs, ys).
func ScalarDot[T constraints.Float](b []T, a []Number[T]) Number[T] {
	return DotScalar(a, b)
}
