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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/extrude"
)

var dashCases = []TestCase{
	{
		Name:   "dash_line",
		Points: horizontalLine(5, 32, 59),
		Style:  extrude.Config{Thickness: 2, Dash: true},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_corner",
		Points: corner(10, 50, 32, 14, 54, 50),
		Style:  extrude.Config{Thickness: 2, Dash: true},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_zigzag_bevel",
		Points: zigzag(5, 32, 59, 12, 5),
		Style:  extrude.Config{Thickness: 2, Dash: true, Join: graphics.LineJoinBevel},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "dash_square_caps",
		Points: horizontalLine(10, 32, 54),
		Style:  extrude.Config{Thickness: 2, Dash: true, Cap: graphics.LineCapSquare},
		Width:  64,
		Height: 64,
	},
}
