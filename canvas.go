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

// Package spotcanvas renders small, sub-pixel-accurate light spots onto a
// 2-D raster canvas, for synthesizing astronomical star-field frames and
// calibration imagery for video tracking.
//
// A caller builds a Canvas, registers spots with AddSpot, adjusts their
// per-spot offset and illumination over time, optionally sets a view
// transform, calls Draw, and exports the result with one of the
// ExportImage methods.
package spotcanvas

import "sync"

// Canvas is a 2-D pixel grid plus the state needed to render light spots
// onto it: a background level, a view transform, a global brightness
// factor, and an append-only list of spots.
//
// Canvas is a single-threaded value: mutating methods require exclusive
// access. Read-only methods (Pixels, Dimensions, SpotPosition, SpotIntensity,
// the ExportImage family) require only shared access, and may run
// concurrently with each other as long as no mutation is in flight.
type Canvas struct {
	width, height int

	background uint16
	view       Transform
	brightness float32

	spots []spotRecord
	pix   []uint16

	// tileRows, when > 0, is the row-height of the tiles Draw partitions
	// the canvas into for its parallel accumulation path. Zero (the
	// default) means Draw runs single-threaded.
	tileRows int
}

// New returns a new canvas of the given width and height in pixels. Both
// must be at least 1. The canvas starts with a zero background, an
// identity view transform, unit brightness, and no spots.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:      width,
		height:     height,
		view:       DefaultTransform(),
		brightness: 1,
		pix:        make([]uint16, width*height),
	}
	return c
}

// Dimensions returns the canvas width and height in pixels.
func (c *Canvas) Dimensions() (width, height int) {
	return c.width, c.height
}

// Pixels returns a read-only view of the canvas's pixel buffer, in
// row-major order (row y, column x at index y*width+x). The returned slice
// is valid only until the next mutating call on the canvas.
func (c *Canvas) Pixels() []uint16 {
	return c.pix
}

// SetBackground sets the background sample value used by Clear and the
// first step of Draw.
func (c *Canvas) SetBackground(level uint16) {
	c.background = level
}

// SetViewTransform sets the affine view transform applied to every spot's
// intrinsic position (plus offset) before rasterisation.
func (c *Canvas) SetViewTransform(t Transform) {
	c.view = t
}

// SetBrightness sets the global brightness factor, an extra multiplicative
// scale applied to every spot's rendered peak intensity on top of its own
// illumination factor. The default is 1. A non-positive brightness makes
// Draw equivalent to Clear.
func (c *Canvas) SetBrightness(brightness float32) {
	c.brightness = brightness
}

// SetParallelism sets the row-height of the tiles Draw partitions the
// pixel buffer into for its internal parallel accumulation path. A value
// of 0 (the default) disables internal parallelism. Output is bitwise
// identical regardless of this setting: each tile independently rescans
// every spot whose bounding box intersects it.
func (c *Canvas) SetParallelism(tileRows int) {
	c.tileRows = tileRows
}

// Clear resets the pixel buffer to the background value.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = c.background
	}
}

// Draw performs a clear-then-accumulate render pass: it clears the buffer
// to the background value, then adds every spot's Gaussian footprint,
// clipped to the canvas and saturating at 65535. Contributions are
// additive; spots are not cleared between each other. Draw is deterministic:
// identical inputs (including spot insertion order) produce a bitwise
// identical buffer regardless of platform or SetParallelism setting.
func (c *Canvas) Draw() {
	c.Clear()

	if c.brightness <= 0 {
		return
	}

	footprints := c.collectFootprints()
	if len(footprints) == 0 {
		return
	}

	if c.tileRows <= 0 || c.tileRows >= c.height {
		accumulate(c.pix, c.width, c.height, 0, c.height, footprints)
		return
	}

	var wg sync.WaitGroup
	for y0 := 0; y0 < c.height; y0 += c.tileRows {
		y1 := min(y0+c.tileRows, c.height)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			accumulate(c.pix, c.width, c.height, y0, y1, footprints)
		}(y0, y1)
	}
	wg.Wait()
}

// collectFootprints precomputes the per-draw rendering state for every
// spot with a positive effective peak intensity and non-singular shape.
func (c *Canvas) collectFootprints() []footprint {
	out := make([]footprint, 0, len(c.spots))
	for i := range c.spots {
		s := &c.spots[i]
		peak := s.intensity * s.illumination * c.brightness * peakScale
		effective := Point{s.position[0] + s.offset[0], s.position[1] + s.offset[1]}
		centre := c.view.Apply(effective)

		fp, ok := newFootprint(centre[0], centre[1], s.shape, peak)
		if !ok {
			continue
		}
		x0, y0, x1, y1 := fp.bounds(c.width, c.height)
		if x0 >= x1 || y0 >= y1 {
			continue // clipped entirely out of the canvas
		}
		out = append(out, fp)
	}
	return out
}

// accumulate adds every footprint's contribution into pix (row-major,
// stride width) for rows [rowMin, rowMax), saturating at 65535. Accumulation
// uses a 32-bit intermediate to avoid overflow when many spots overlap.
func accumulate(pix []uint16, width, height, rowMin, rowMax int, footprints []footprint) {
	for _, fp := range footprints {
		x0, y0, x1, y1 := fp.bounds(width, height)
		y0 = max(y0, rowMin)
		y1 = min(y1, rowMax)
		if x0 >= x1 || y0 >= y1 {
			continue
		}

		for j := y0; j < y1; j++ {
			row := j * width
			for i := x0; i < x1; i++ {
				idx := row + i
				sum := int32(pix[idx]) + int32(fp.at(i, j)+0.5)
				if sum > 65535 {
					sum = 65535
				}
				pix[idx] = uint16(sum)
			}
		}
	}
}
