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

import "errors"

// ErrUnsupportedFormat is returned when an export is requested in a Format
// this build does not support.
var ErrUnsupportedFormat = errors.New("spotcanvas: format not supported")

// ErrInvalidArgument is returned for caller-supplied arguments that are
// structurally invalid, such as a zero sub-sampling factor.
var ErrInvalidArgument = errors.New("spotcanvas: invalid argument")
