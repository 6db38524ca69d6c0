// Copyright ©2026 The Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

import (
	"math"
	"testing"
)

func TestScalarMatchesMath(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"Square", Square(3.0), 9.0},
		{"Sqrt", Sqrt(9.0), 3.0},
		{"Exp", Exp(1.0), math.E},
		{"Log", Log(math.E), 1.0},
		{"Sin", Sin(0.0), 0.0},
		{"Cos", Cos(0.0), 1.0},
		{"Tanh", Tanh(0.0), 0.0},
	}
	for _, c := range cases {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestDerivativeFactors(t *testing.T) {
	if got, want := DSquare(4.0), 8.0; got != want {
		t.Errorf("DSquare(4) = %v, want %v", got, want)
	}
	if got, want := DLog(2.0), 0.5; got != want {
		t.Errorf("DLog(2) = %v, want %v", got, want)
	}
	if got, want := DSin(0.0), math.Cos(0.0); got != want {
		t.Errorf("DSin(0) = %v, want %v", got, want)
	}
}

func TestFloat32(t *testing.T) {
	var x float32 = 2
	if got, want := Square(x), float32(4); got != want {
		t.Errorf("Square[float32](2) = %v, want %v", got, want)
	}
}
