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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/extrude"
)

var complexCases = []TestCase{
	{
		Name:   "zigzag_miter",
		Points: zigzag(5, 32, 59, 15, 5),
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_dense",
		Points: zigzag(5, 32, 59, 20, 12),
		Style:  extrude.Config{Thickness: 2},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral_overlap",
		Points: spiral(32, 32, 5, 25, 3),
		Style:  extrude.Config{Thickness: 2, Cap: graphics.LineCapSquare},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral_bevel",
		Points: spiral(32, 32, 5, 25, 3),
		Style:  extrude.Config{Thickness: 2, Join: graphics.LineJoinBevel},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral_large",
		Points: spiral(256, 256, 10, 240, 40),
		Style:  extrude.Config{Thickness: 1.5, Dash: true},
		Width:  512,
		Height: 512,
	},
}

// zigzag builds a zigzag from x1 to x2 around the line y = cy, with the
// given amplitude and number of segments.
func zigzag(x1, cy, x2, amplitude float64, segments int) []vec.Vec2 {
	res := make([]vec.Vec2, 0, segments+1)
	res = append(res, pt(x1, cy))
	segWidth := (x2 - x1) / float64(segments)
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		res = append(res, pt(x1+float64(i)*segWidth, y))
	}
	return res
}

// spiral builds an Archimedean spiral with 32 segments per turn.
func spiral(cx, cy, rMin, rMax float64, turns float64) []vec.Vec2 {
	steps := max(int(turns*32), 8)
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	res := make([]vec.Vec2, 0, steps+1)
	res = append(res, pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		res = append(res, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return res
}
