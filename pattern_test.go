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

import "testing"

func TestNewFootprintRejectsNonPositivePeak(t *testing.T) {
	if _, ok := newFootprint(5, 5, DefaultShape(), 0); ok {
		t.Fatalf("zero peak should produce no footprint")
	}
	if _, ok := newFootprint(5, 5, DefaultShape(), -1); ok {
		t.Fatalf("negative peak should produce no footprint")
	}
}

func TestNewFootprintRejectsSingularShape(t *testing.T) {
	degenerate := SpotShape{Xx: 1, Xy: 0, Yx: 0, Yy: 0}
	if _, ok := newFootprint(5, 5, degenerate, 65535); ok {
		t.Fatalf("degenerate shape should produce no footprint")
	}
}

func TestFootprintPeakAtCentre(t *testing.T) {
	// With the (i+0.5, j+0.5) pixel-centre convention, a spot centred at a
	// half-integer coordinate lands exactly on a pixel centre.
	fp, ok := newFootprint(15.5, 15.5, DefaultShape(), 65535)
	if !ok {
		t.Fatalf("expected a valid footprint")
	}
	if got := fp.at(15, 15); !almostEqual(got, 65535, 1e-2) {
		t.Fatalf("expected exact peak at pixel centre, got %v", got)
	}
}

func TestFootprintDecaysAwayFromCentre(t *testing.T) {
	fp, ok := newFootprint(15.5, 15.5, DefaultShape(), 65535)
	if !ok {
		t.Fatalf("expected a valid footprint")
	}
	peak := fp.at(15, 15)
	near := fp.at(16, 15)
	far := fp.at(20, 15)
	if !(peak > near && near > far) {
		t.Fatalf("expected monotonic decay with distance, got peak=%v near=%v far=%v", peak, near, far)
	}
	if far > 1 {
		t.Fatalf("expected near-zero contribution 5 sigma out, got %v", far)
	}
}

func TestFootprintBoundsIdentityShape(t *testing.T) {
	fp, ok := newFootprint(15.5, 15.5, DefaultShape(), 65535)
	if !ok {
		t.Fatalf("expected a valid footprint")
	}
	x0, y0, x1, y1 := fp.bounds(64, 64)
	if x0 != 11 || y0 != 11 || x1 != 19 || y1 != 19 {
		t.Fatalf("expected bounds (11,11,19,19), got (%d,%d,%d,%d)", x0, y0, x1, y1)
	}
}

func TestFootprintBoundsClipToCanvas(t *testing.T) {
	fp, ok := newFootprint(1.5, 1.5, DefaultShape(), 65535)
	if !ok {
		t.Fatalf("expected a valid footprint")
	}
	x0, y0, x1, y1 := fp.bounds(16, 16)
	if x0 != 0 || y0 != 0 {
		t.Fatalf("expected clipping to 0 on the low side, got (%d,%d)", x0, y0)
	}
	if x1 > 16 || y1 > 16 {
		t.Fatalf("expected clipping to canvas extent, got (%d,%d)", x1, y1)
	}
}

func TestFootprintBoundsEntirelyOutOfCanvas(t *testing.T) {
	fp, ok := newFootprint(100, 0, DefaultShape(), 65535)
	if !ok {
		t.Fatalf("expected a valid footprint")
	}
	x0, _, x1, _ := fp.bounds(16, 16)
	if x0 != x1 {
		t.Fatalf("expected an empty bounding box clipped entirely off-canvas, got x0=%d x1=%d", x0, x1)
	}
}

func TestFootprintStretchedShapeWidensBounds(t *testing.T) {
	round, ok := newFootprint(32, 32, DefaultShape(), 65535)
	if !ok {
		t.Fatalf("expected a valid footprint")
	}
	stretched, ok := newFootprint(32, 32, DefaultShape().Stretch(3, 1), 65535)
	if !ok {
		t.Fatalf("expected a valid footprint")
	}

	rx0, _, rx1, _ := round.bounds(64, 64)
	sx0, _, sx1, _ := stretched.bounds(64, 64)

	if (sx1 - sx0) <= (rx1 - rx0) {
		t.Fatalf("stretching along x should widen the x bounding box: round=%d stretched=%d", rx1-rx0, sx1-sx0)
	}
}
