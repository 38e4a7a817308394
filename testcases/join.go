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

var joinCases = []TestCase{
	{
		Name:   "corner_miter",
		Points: corner(10, 50, 32, 14, 54, 50),
		Style:  extrude.Config{Thickness: 3, Join: graphics.LineJoinMiter},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_bevel",
		Points: corner(10, 50, 32, 14, 54, 50),
		Style:  extrude.Config{Thickness: 3, Join: graphics.LineJoinBevel},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_angle_miter",
		Points: corner(12, 12, 52, 12, 52, 52),
		Style:  extrude.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_angle_bevel",
		Points: corner(12, 12, 52, 12, 52, 52),
		Style:  extrude.Config{Thickness: 4, Join: graphics.LineJoinBevel},
		Width:  64,
		Height: 64,
	},

	// The miter length 3/cos(θ/2) exceeds the limit of 10 for turns
	// sharper than about 145°.
	{
		Name:   "angle_030",
		Points: cornerAngle(8, 40, 30, 40, 30),
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "angle_120",
		Points: cornerAngle(8, 40, 30, 40, 120),
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "angle_150_limited",
		Points: cornerAngle(8, 40, 30, 40, 150),
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "angle_150_high_limit",
		Points: cornerAngle(8, 40, 30, 40, 150),
		Style:  extrude.Config{Thickness: 3, MiterLimit: 20},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "angle_170_limited",
		Points: cornerAngle(8, 40, 30, 40, 170),
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "left_turn",
		Points: corner(10, 20, 40, 20, 50, 50),
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_turn",
		Points: corner(10, 44, 40, 44, 50, 14),
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "round_falls_back_to_miter",
		Points: corner(10, 50, 32, 14, 54, 50),
		Style:  extrude.Config{Thickness: 3, Join: graphics.LineJoinRound},
		Width:  64,
		Height: 64,
	},
}

// cornerAngle builds a corner with a specific turn angle.
// The first segment goes from (x1, y1) to (cx, cy); the second segment
// leaves (cx, cy) after turning by angleDeg degrees (positive values turn
// towards the top of the canvas).
func cornerAngle(x1, y1, cx, cy float64, angleDeg float64) []vec.Vec2 {
	const length = 24.0

	in := vec.Vec2{X: cx - x1, Y: cy - y1}
	in = in.Mul(1 / in.Length())
	a := -angleDeg * math.Pi / 180 // y is inverted in screen coords
	out := vec.Vec2{
		X: in.X*math.Cos(a) - in.Y*math.Sin(a),
		Y: in.X*math.Sin(a) + in.Y*math.Cos(a),
	}
	return []vec.Vec2{pt(x1, y1), pt(cx, cy), pt(cx, cy).Add(out.Mul(length))}
}
