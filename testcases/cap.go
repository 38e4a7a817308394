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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/extrude"
)

var capCases = []TestCase{
	{
		Name:   "line_butt",
		Points: horizontalLine(10, 32, 54),
		Style:  extrude.Config{Thickness: 4, Cap: graphics.LineCapButt},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_square",
		Points: horizontalLine(10, 32, 54),
		Style:  extrude.Config{Thickness: 4, Cap: graphics.LineCapSquare},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diagonal_butt",
		Points: []vec.Vec2{pt(14, 50), pt(50, 14)},
		Style:  extrude.Config{Thickness: 3, Cap: graphics.LineCapButt},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "diagonal_square",
		Points: []vec.Vec2{pt(14, 50), pt(50, 14)},
		Style:  extrude.Config{Thickness: 3, Cap: graphics.LineCapSquare},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_square",
		Points: corner(10, 50, 32, 14, 54, 50),
		Style:  extrude.Config{Thickness: 3, Cap: graphics.LineCapSquare},
		Width:  64,
		Height: 64,
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y), pt(x2, y)}
}

// corner builds a polyline with two segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}
