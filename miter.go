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

package extrude

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// miter describes the offset of a pointed join.
type miter struct {
	// Length is the signed distance from the joint to each offset vertex,
	// measured along Vector.
	Length float64

	// Vector is the unit bisector direction, perpendicular to the joint
	// tangent.
	Vector vec.Vec2
}

// computeMiter returns the miter for a joint with the given unit tangent,
// entering along the unit direction in.
// The length is d / cos(θ/2), where θ is the turn angle.  It grows without
// bound as the path doubles back on itself, and is ±Inf or NaN once the
// denominator vanishes.
func computeMiter(tangent, in vec.Vec2, d float64) miter {
	v := perp(tangent)
	return miter{
		Length: d / v.Dot(perp(in)),
		Vector: v,
	}
}

// joinTangent returns the unit tangent at the joint between the unit
// directions in and out.
func joinTangent(in, out vec.Vec2) vec.Vec2 {
	return normalize(in.Add(out))
}

// perp returns v rotated by 90° counter-clockwise.
func perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// direction returns the unit vector pointing from b to a.
// The zero vector is returned if a == b.
func direction(a, b vec.Vec2) vec.Vec2 {
	return normalize(a.Sub(b))
}

// normalize scales v to unit length.  The zero vector is returned unchanged.
func normalize(v vec.Vec2) vec.Vec2 {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// distance returns the Euclidean distance between a and b.
func distance(a, b vec.Vec2) float64 {
	return a.Sub(b).Length()
}
