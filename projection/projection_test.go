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

package projection

import (
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestAffine(t *testing.T) {
	cases := []struct {
		m    matrix.Matrix
		in   vec.Vec2
		want vec.Vec2
	}{
		{matrix.Identity, vec.Vec2{X: 3, Y: -4}, vec.Vec2{X: 3, Y: -4}},
		{matrix.Matrix{2, 0, 0, 3, 0, 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 3}},
		{matrix.Matrix{1, 0, 0, 1, 5, -2}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 6, Y: -1}},
		{matrix.Matrix{0, 1, -1, 0, 0, 0}, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
	}
	for _, c := range cases {
		got := Affine(c.m)(c.in)
		if got != c.want {
			t.Errorf("Affine(%v)(%v) = %v, want %v", c.m, c.in, got, c.want)
		}
	}
}

func TestMercator(t *testing.T) {
	const half = WorldSize / 2

	origin := Mercator(vec.Vec2{X: 0, Y: 0})
	if origin.X != half || origin.Y != half {
		t.Errorf("Mercator(0, 0) = %v, want (%d, %d)", origin, half, half)
	}

	west := Mercator(vec.Vec2{X: -180, Y: 0})
	if west.X < -1 || west.X > 0 {
		t.Errorf("Mercator(-180, 0).X = %g, want 0", west.X)
	}

	// latitude is clamped, so the poles land on the world edge
	north := Mercator(vec.Vec2{X: 0, Y: 90})
	clamped := Mercator(vec.Vec2{X: 0, Y: MaxLatitude})
	if north != clamped {
		t.Errorf("Mercator(0, 90) = %v, want %v", north, clamped)
	}
	if north.Y > 1 || north.Y < -1 {
		t.Errorf("Mercator(0, 90).Y = %g, want about 0", north.Y)
	}

	// y grows southwards
	if Mercator(vec.Vec2{X: 0, Y: 10}).Y >= Mercator(vec.Vec2{X: 0, Y: -10}).Y {
		t.Error("northern point is not above southern point")
	}
}

func TestMercatorFloor(t *testing.T) {
	// two points closer than one world unit collapse onto one output point
	a := Mercator(vec.Vec2{X: 10, Y: 20})
	b := Mercator(vec.Vec2{X: 10 + 1e-9, Y: 20})
	if a != b {
		t.Errorf("Mercator did not round: %v != %v", a, b)
	}
	if a.X != float64(int64(a.X)) || a.Y != float64(int64(a.Y)) {
		t.Errorf("Mercator(10, 20) = %v is not integral", a)
	}
}
