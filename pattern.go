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

import "github.com/chewxy/math32"

// peakScale maps a nominal peak intensity of 1.0 to the maximum 16-bit
// sample value.
const peakScale = 65535

// supportSigmas is the number of standard deviations defining a spot's
// clipped support region (4-sigma, g >= exp(-8) ~= 3e-4 * peak).
const supportSigmas = 4

// footprint is a spot's precomputed per-draw rendering state: its
// effective centre in pixel space, inverse covariance, peak intensity, and
// clipped bounding box half-extents.
type footprint struct {
	cx, cy       float32
	invXx, invXy float32
	invYx, invYy float32
	peak         float32
	halfX, halfY float32
}

// newFootprint precomputes the rendering state for a spot at effective
// centre (cx, cy), with shape matrix shape, and combined peak intensity
// peak (already including illumination, intrinsic intensity, and any
// global brightness factor). ok is false if the spot contributes nothing
// (non-positive peak, or a singular shape matrix).
func newFootprint(cx, cy float32, shape SpotShape, peak float32) (footprint, bool) {
	if peak <= 0 {
		return footprint{}, false
	}

	// Covariance Sigma = M * M^T.
	sxx := shape.Xx*shape.Xx + shape.Xy*shape.Xy
	sxy := shape.Xx*shape.Yx + shape.Xy*shape.Yy
	syy := shape.Yx*shape.Yx + shape.Yy*shape.Yy

	det := sxx*syy - sxy*sxy
	if math32.Abs(det) < 1e-12 {
		return footprint{}, false
	}

	invDet := 1 / det
	invXx := syy * invDet
	invXy := -sxy * invDet
	invYy := sxx * invDet

	halfX := math32.Ceil(supportSigmas * math32.Sqrt(sxx))
	halfY := math32.Ceil(supportSigmas * math32.Sqrt(syy))

	return footprint{
		cx: cx, cy: cy,
		invXx: invXx, invXy: invXy,
		invYx: invXy, invYy: invYy,
		peak:  peak,
		halfX: halfX, halfY: halfY,
	}, true
}

// at evaluates the spot's unnormalised contribution at pixel (i, j), where
// integer pixel centres are treated as (i+0.5, j+0.5).
func (f footprint) at(i, j int) float32 {
	dx := float32(i) + 0.5 - f.cx
	dy := float32(j) + 0.5 - f.cy

	// quadratic form d^T * Sigma^-1 * d
	q := dx*(f.invXx*dx+f.invXy*dy) + dy*(f.invYx*dx+f.invYy*dy)

	return f.peak * math32.Exp(-0.5*q)
}

// bounds returns the inclusive-exclusive pixel bounding box [x0,x1)x[y0,y1)
// of the spot's support region, clipped to a width x height canvas.
//
// Integer pixel centres are treated as (i+0.5, j+0.5) (see the Open
// Question resolution in SPEC_FULL.md), so the bounding box is computed
// against the corner-coordinate centre (cx-0.5, cy-0.5).
func (f footprint) bounds(width, height int) (x0, y0, x1, y1 int) {
	cx, cy := f.cx-0.5, f.cy-0.5

	x0 = clampInt(int(math32.Floor(cx-f.halfX)), 0, width)
	y0 = clampInt(int(math32.Floor(cy-f.halfY)), 0, height)
	x1 = clampInt(int(math32.Ceil(cx+f.halfX)), 0, width)
	y1 = clampInt(int(math32.Ceil(cy+f.halfY)), 0, height)
	return
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
