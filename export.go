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
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// Format identifies one of the canvas's supported export encodings.
type Format int

const (
	// RawGamma8Bpp is 8-bit gamma-compressed grayscale, one byte per pixel.
	RawGamma8Bpp Format = iota
	// RawLinear10BppLE is 10-bit linear grayscale, two bytes little-endian
	// per pixel with the upper 6 bits zero.
	RawLinear10BppLE
	// RawLinear12BppLE is 12-bit linear grayscale, two bytes little-endian
	// per pixel with the upper 4 bits zero.
	RawLinear12BppLE
	// PngGamma8Bpp is an 8-bit gamma-compressed grayscale PNG.
	PngGamma8Bpp
	// PngLinear16Bpp is a 16-bit linear grayscale PNG.
	PngLinear16Bpp
)

// Window defines a rectangle on the canvas, with origin at its upper-left
// corner, for windowed export.
type Window struct {
	X, Y          int
	Width, Height int
}

// NewWindow returns a window of the given dimensions at the origin.
func NewWindow(width, height int) Window {
	return Window{Width: width, Height: height}
}

// At returns a copy of w moved to the given origin.
func (w Window) At(x, y int) Window {
	w.X, w.Y = x, y
	return w
}

// clip intersects w with a width x height canvas, clamping negative
// offsets to zero. It returns the clipped pixel rectangle [x0,x1)x[y0,y1);
// an entirely out-of-bounds or zero-sized window yields an empty rectangle
// (x0 == x1 or y0 == y1).
func (w Window) clip(width, height int) (x0, y0, x1, y1 int) {
	x0 = clampInt(w.X, 0, width)
	y0 = clampInt(w.Y, 0, height)
	x1 = clampInt(w.X+w.Width, 0, width)
	y1 = clampInt(w.Y+w.Height, 0, height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

// ExportImage exports the full canvas contents in the requested format.
func (c *Canvas) ExportImage(format Format) ([]byte, error) {
	return c.ExportWindowImage(NewWindow(c.width, c.height), format)
}

// ExportWindowImage exports the canvas contents restricted to window,
// intersected with the canvas bounds, in the requested format. A window
// entirely outside the canvas yields an empty byte sequence and a nil
// error.
func (c *Canvas) ExportWindowImage(window Window, format Format) ([]byte, error) {
	x0, y0, x1, y1 := window.clip(c.width, c.height)
	w, h := x1-x0, y1-y0

	buf := make([]uint16, w*h)
	for j := 0; j < h; j++ {
		srcRow := (y0+j)*c.width + x0
		copy(buf[j*w:(j+1)*w], c.pix[srcRow:srcRow+w])
	}

	return encodePlane(buf, w, h, format)
}

// ExportSubsampledImage exports the full canvas contents, nearest-neighbour
// down-sampled by integer factors (fx, fy), in the requested format.
// Output dimensions are ceil(width/fx) x ceil(height/fy); output pixel
// (i, j) samples source pixel (i*fx, j*fy). Both factors must be at least
// 1, or ErrInvalidArgument is returned.
func (c *Canvas) ExportSubsampledImage(factors [2]int, format Format) ([]byte, error) {
	fx, fy := factors[0], factors[1]
	if fx < 1 || fy < 1 {
		return nil, ErrInvalidArgument
	}

	w := ceilDiv(c.width, fx)
	h := ceilDiv(c.height, fy)

	buf := make([]uint16, w*h)
	for j := 0; j < h; j++ {
		srcY := j * fy
		for i := 0; i < w; i++ {
			srcX := i * fx
			buf[j*w+i] = c.pix[srcY*c.width+srcX]
		}
	}

	return encodePlane(buf, w, h, format)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// encodePlane encodes a row-major width x height plane of raw 16-bit
// samples into format's byte representation.
func encodePlane(pix []uint16, width, height int, format Format) ([]byte, error) {
	if width == 0 || height == 0 {
		return []byte{}, nil
	}

	switch format {
	case RawGamma8Bpp:
		out := make([]byte, len(pix))
		for i, p := range pix {
			out[i] = gammaEncode8(p)
		}
		return out, nil

	case RawLinear10BppLE:
		return encodeRawLinearLE(pix, 10), nil

	case RawLinear12BppLE:
		return encodeRawLinearLE(pix, 12), nil

	case PngGamma8Bpp:
		img := image.NewGray(image.Rect(0, 0, width, height))
		for i, p := range pix {
			img.Pix[i] = gammaEncode8(p)
		}
		return encodePNG(img)

	case PngLinear16Bpp:
		img := image.NewGray16(image.Rect(0, 0, width, height))
		for i, p := range pix {
			img.Pix[2*i] = byte(p >> 8)
			img.Pix[2*i+1] = byte(p)
		}
		return encodePNG(img)

	default:
		return nil, ErrUnsupportedFormat
	}
}

func encodeRawLinearLE(pix []uint16, bits int) []byte {
	out := make([]byte, 2*len(pix))
	for i, p := range pix {
		v := quantizeLinear(p, bits)
		out[2*i] = byte(v)
		out[2*i+1] = byte(v >> 8)
	}
	return out
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("spotcanvas: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
