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

// SpotHandle is an opaque, dense, monotonically increasing identifier for a
// spot registered on a Canvas. Handles are never recycled.
type SpotHandle int

// spotRecord holds one spot's intrinsic (immutable after creation) and
// mutable state.
type spotRecord struct {
	// intrinsic
	position  Point
	shape     SpotShape
	intensity float32

	// mutable
	offset       Vector
	illumination float32
}

// AddSpot appends a new spot with the given intrinsic position, shape
// matrix, and peak intensity. The spot starts with zero offset and unit
// illumination. The returned handle is the spot's dense index and is
// stable for the lifetime of the canvas.
func (c *Canvas) AddSpot(position Point, shape SpotShape, intensity float32) SpotHandle {
	c.spots = append(c.spots, spotRecord{
		position:     position,
		shape:        shape,
		intensity:    intensity,
		offset:       Vector{0, 0},
		illumination: 1,
	})
	return SpotHandle(len(c.spots) - 1)
}

// spotAt returns a pointer to the spot record for handle, or nil if the
// handle does not refer to a registered spot.
func (c *Canvas) spotAt(handle SpotHandle) *spotRecord {
	if handle < 0 || int(handle) >= len(c.spots) {
		return nil
	}
	return &c.spots[handle]
}

// SetSpotOffset sets the position offset of the spot referred to by handle.
// Unknown handles are silently ignored.
func (c *Canvas) SetSpotOffset(handle SpotHandle, offset Vector) {
	if s := c.spotAt(handle); s != nil {
		s.offset = offset
	}
}

// SetSpotIllumination sets the illumination factor of the spot referred to
// by handle. Unknown handles are silently ignored.
func (c *Canvas) SetSpotIllumination(handle SpotHandle, illumination float32) {
	if s := c.spotAt(handle); s != nil {
		s.illumination = illumination
	}
}

// SpotPosition returns the effective rendered position of the spot referred
// to by handle, V*(intrinsic + offset) under the canvas's current view
// transform, and true. It returns the zero point and false for an unknown
// handle.
func (c *Canvas) SpotPosition(handle SpotHandle) (Point, bool) {
	s := c.spotAt(handle)
	if s == nil {
		return Point{}, false
	}
	effective := Point{s.position[0] + s.offset[0], s.position[1] + s.offset[1]}
	return c.view.Apply(effective), true
}

// SpotIntensity returns the spot's effective peak intensity, p0*phi, and
// true. It returns 0 and false for an unknown handle. No saturation is
// reported here; saturation is a render-time concern.
func (c *Canvas) SpotIntensity(handle SpotHandle) (float32, bool) {
	s := c.spotAt(handle)
	if s == nil {
		return 0, false
	}
	return s.intensity * s.illumination, true
}

// SpotCount returns the number of spots registered on the canvas.
func (c *Canvas) SpotCount() int {
	return len(c.spots)
}
