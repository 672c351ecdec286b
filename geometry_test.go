// spotcanvas - sub-pixel light spot rendering library
// Copyright (C) 2026  The Spotcanvas Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spotcanvas

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestDefaultShapeIsIdentity(t *testing.T) {
	s := DefaultShape()
	v := s.Apply(Vector{3, 4})
	if v[0] != 3 || v[1] != 4 {
		t.Fatalf("identity shape should not alter vectors, got %v", v)
	}
}

func TestShapeScale(t *testing.T) {
	s := DefaultShape().Scale(2.5)
	if s.Xx != 2.5 || s.Yy != 2.5 || s.Xy != 0 || s.Yx != 0 {
		t.Fatalf("unexpected scaled shape: %+v", s)
	}
}

func TestShapeStretchThenRotateOrder(t *testing.T) {
	// stretch(...).rotate(...) must stretch first, then rotate: applying
	// the composed shape to the X axis unit vector should match rotating
	// the stretched X axis.
	s := DefaultShape().Stretch(2, 1).Rotate(90)

	got := s.Apply(Vector{1, 0})
	// stretch(2,1) maps (1,0) -> (2,0); rotate(90 ccw) maps (2,0) -> (0,2).
	if !almostEqual(got[0], 0, 1e-4) || !almostEqual(got[1], 2, 1e-4) {
		t.Fatalf("stretch-then-rotate mismatch: got %v", got)
	}
}

func TestShapeFromRowsReadingOrder(t *testing.T) {
	s := ShapeFromRows([2][2]float32{{1, 2}, {3, 4}})
	if s.Xx != 1 || s.Xy != 2 || s.Yx != 3 || s.Yy != 4 {
		t.Fatalf("unexpected shape from rows: %+v", s)
	}
}

func TestTransformIdentity(t *testing.T) {
	p := DefaultTransform().Apply(Point{1.5, -2.5})
	if p[0] != 1.5 || p[1] != -2.5 {
		t.Fatalf("identity transform should not move points, got %v", p)
	}
}

func TestTransformTranslate(t *testing.T) {
	p := Translate(10, 0).Apply(Point{5, 5})
	if p[0] != 15 || p[1] != 5 {
		t.Fatalf("expected (15, 5), got %v", p)
	}
}

func TestTransformRotate90(t *testing.T) {
	p := RotateTransform(90).Apply(Point{1, 0})
	if !almostEqual(p[0], 0, 1e-4) || !almostEqual(p[1], 1, 1e-4) {
		t.Fatalf("expected (0, 1), got %v", p)
	}
}

func TestTransformComposeOrder(t *testing.T) {
	// Translate then scale: p -> scale(translate(p)).
	composed := Translate(1, 0).Compose(ScaleTransform(2, 2))
	got := composed.Apply(Point{0, 0})
	if !almostEqual(got[0], 2, 1e-4) || !almostEqual(got[1], 0, 1e-4) {
		t.Fatalf("expected (2, 0), got %v", got)
	}
}

func TestShapeDeterminant(t *testing.T) {
	s := SpotShape{Xx: 3, Xy: -1.5, Yx: 2.5, Yy: 5}
	want := float32(3*5 - (-1.5)*2.5)
	if got := s.Determinant(); !almostEqual(got, want, 1e-4) {
		t.Fatalf("determinant mismatch: got %v want %v", got, want)
	}
}

func TestRotateTransformMatchesTrig(t *testing.T) {
	theta := float32(37)
	rad := float64(theta) * math.Pi / 180
	want := Point{float32(math.Cos(rad)), float32(math.Sin(rad))}
	got := RotateTransform(theta).Apply(Point{1, 0})
	if !almostEqual(got[0], want[0], 1e-3) || !almostEqual(got[1], want[1], 1e-3) {
		t.Fatalf("rotate mismatch: got %v want %v", got, want)
	}
}
