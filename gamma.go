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

// gammaLUTBits is the LUT index resolution: the top gammaLUTBits bits of a
// 16-bit sample select the table entry.
const gammaLUTBits = 12

// gammaCurve8 is a 16-bit-linear-to-8-bit-gamma lookup table implementing
// the sRGB transfer function.
type gammaCurve8 struct {
	lut [1 << gammaLUTBits]uint8
}

var sharedGammaCurve8 = newGammaCurve8()

func newGammaCurve8() *gammaCurve8 {
	var c gammaCurve8
	size := len(c.lut)
	for i := range c.lut {
		u := float32(i) / float32(size-1)
		c.lut[i] = uint8(sRGBEncode(u)*255 + 0.5)
	}
	return &c
}

// transform converts a 16-bit linear sample into an 8-bit gamma-compressed
// sample.
func (c *gammaCurve8) transform(x uint16) uint8 {
	return c.lut[x>>(16-gammaLUTBits)]
}

// sRGBEncode applies the sRGB transfer function to a normalised linear
// sample u in [0, 1], returning a value in [0, 1].
func sRGBEncode(u float32) float32 {
	if u <= 0.0031308 {
		return 12.92 * u
	}
	return 1.055*math32.Pow(u, 1/2.4) - 0.055
}

// gammaEncode8 converts a single 16-bit linear raw sample to an 8-bit
// gamma-compressed sample, clamped to [0, 255].
func gammaEncode8(raw uint16) uint8 {
	return sharedGammaCurve8.transform(raw)
}

// quantizeLinear converts a 16-bit linear raw sample to an n-bit linear
// sample (1 <= n <= 16), rounded and clamped to [0, 2^n - 1].
func quantizeLinear(raw uint16, bits int) uint16 {
	maxOut := uint32(1)<<uint(bits) - 1
	v := (uint32(raw)*maxOut + 32767) / 65535
	if v > maxOut {
		v = maxOut
	}
	return uint16(v)
}
