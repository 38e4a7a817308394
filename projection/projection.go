// seehuhn.de/go/extrude - polyline extrusion for GPU line rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package projection maps input coordinates into the render space in which
// line thickness and miter limits are measured.
package projection

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Func maps a point from input coordinates to render space.
// Implementations must be pure functions.
type Func func(vec.Vec2) vec.Vec2

// Identity returns its argument unchanged.
func Identity(p vec.Vec2) vec.Vec2 {
	return p
}

// Affine returns a projection which applies the transformation m.
func Affine(m matrix.Matrix) Func {
	return func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
}

const (
	// MaxLatitude is the latitude (in degrees) beyond which Mercator clamps.
	MaxLatitude = 85.0511287798

	// WorldSize is the side length of the square Mercator world.
	WorldSize = 256 << 20
)

// Mercator projects longitude/latitude in degrees (X = longitude,
// Y = latitude) onto a square web-mercator world of side WorldSize, with the
// origin in the north-west corner and y growing southwards.
// Results are rounded down to integers, so nearby input points can map to
// the same output point.
func Mercator(p vec.Vec2) vec.Vec2 {
	lat := max(-MaxLatitude, min(MaxLatitude, p.Y))

	x := p.X * math.Pi / 180
	y := math.Log(math.Tan(math.Pi/4 + lat*math.Pi/360))

	return vec.Vec2{
		X: math.Floor(WorldSize * (x/(2*math.Pi) + 0.5)),
		Y: math.Floor(WorldSize * (0.5 - y/(2*math.Pi))),
	}
}
