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
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Point is a 2-D world or pixel coordinate, (X, Y).
type Point = f32.Vec2

// Vector is a 2-D displacement, (X, Y).
type Vector = f32.Vec2

// SpotShape is a 2x2 linear transform matrix mapping sub-pixel footprint
// coordinates into canvas pixel space. The identity matrix yields a
// circular Gaussian of unit characteristic radius.
//
// SpotShape is a pure linear map, with no translation component: it
// describes the shape of a spot's footprint, not its position.
type SpotShape struct {
	Xx, Xy float32
	Yx, Yy float32
}

// DefaultShape returns the identity shape matrix.
func DefaultShape() SpotShape {
	return SpotShape{Xx: 1, Xy: 0, Yx: 0, Yy: 1}
}

// ShapeFromRows builds a SpotShape from an explicit 2x2 array, taking rows
// in reading order: m[0] is [xx, xy], m[1] is [yx, yy].
func ShapeFromRows(m [2][2]float32) SpotShape {
	return SpotShape{Xx: m[0][0], Xy: m[0][1], Yx: m[1][0], Yy: m[1][1]}
}

// Scale returns a uniform scale of s by k, multiplying every element.
func (s SpotShape) Scale(k float32) SpotShape {
	return SpotShape{Xx: s.Xx * k, Xy: s.Xy * k, Yx: s.Yx * k, Yy: s.Yy * k}
}

// Stretch returns a non-uniform axis scale of s, applied after s: the
// result is equivalent to multiplying s by diag(sx, sy) on the left.
func (s SpotShape) Stretch(sx, sy float32) SpotShape {
	stretch := SpotShape{Xx: sx, Xy: 0, Yx: 0, Yy: sy}
	return stretch.Mul(s)
}

// Rotate returns s pre-multiplied by a counter-clockwise rotation of
// thetaDeg degrees: stretch(...).rotate(...) stretches first, then rotates.
func (s SpotShape) Rotate(thetaDeg float32) SpotShape {
	theta := thetaDeg * (math32.Pi / 180)
	sin, cos := math32.Sin(theta), math32.Cos(theta)
	rot := SpotShape{Xx: cos, Xy: -sin, Yx: sin, Yy: cos}
	return rot.Mul(s)
}

// Mul returns the matrix product a*b.
func (a SpotShape) Mul(b SpotShape) SpotShape {
	return SpotShape{
		Xx: a.Xx*b.Xx + a.Xy*b.Yx,
		Xy: a.Xx*b.Xy + a.Xy*b.Yy,
		Yx: a.Yx*b.Xx + a.Yy*b.Yx,
		Yy: a.Yx*b.Xy + a.Yy*b.Yy,
	}
}

// Apply transforms a vector by the shape matrix.
func (s SpotShape) Apply(v Vector) Vector {
	return Vector{
		s.Xx*v[0] + s.Xy*v[1],
		s.Yx*v[0] + s.Yy*v[1],
	}
}

// Determinant returns det(s).
func (s SpotShape) Determinant() float32 {
	return s.Xx*s.Yy - s.Xy*s.Yx
}

// Transform is an affine map p' = A*p + t, stored as a flat [a, b, c, d, e,
// f] array following the same index convention the model rasteriser uses
// for its CTM: x' = a*x + c*y + e, y' = b*x + d*y + f.
type Transform [6]float32

// DefaultTransform returns the identity transform.
func DefaultTransform() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// Translate returns a pure translation transform.
func Translate(dx, dy float32) Transform {
	return Transform{1, 0, 0, 1, dx, dy}
}

// ScaleTransform returns a non-uniform scale transform about the origin.
func ScaleTransform(sx, sy float32) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// RotateTransform returns a counter-clockwise rotation transform about the
// origin, thetaDeg in degrees.
func RotateTransform(thetaDeg float32) Transform {
	theta := thetaDeg * (math32.Pi / 180)
	sin, cos := math32.Sin(theta), math32.Cos(theta)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Compose returns t followed by other: applying the result to a point p is
// equivalent to other.Apply(t.Apply(p)).
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		other[0]*t[0] + other[2]*t[1],
		other[1]*t[0] + other[3]*t[1],
		other[0]*t[2] + other[2]*t[3],
		other[1]*t[2] + other[3]*t[3],
		other[0]*t[4] + other[2]*t[5] + other[4],
		other[1]*t[4] + other[3]*t[5] + other[5],
	}
}

// Apply maps a point through the affine transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		t[0]*p[0] + t[2]*p[1] + t[4],
		t[1]*p[0] + t[3]*p[1] + t[5],
	}
}
