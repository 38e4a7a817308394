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

	"seehuhn.de/go/extrude"
)

var degenerateCases = []TestCase{
	{
		Name:   "single_point",
		Points: []vec.Vec2{pt(32, 32)},
		Style:  extrude.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "repeated_point",
		Points: []vec.Vec2{pt(32, 32), pt(32, 32), pt(32, 32)},
		Style:  extrude.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "duplicate_start",
		Points: []vec.Vec2{pt(10, 32), pt(10, 32), pt(54, 32)},
		Style:  extrude.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "duplicate_corner",
		Points: []vec.Vec2{pt(10, 50), pt(32, 14), pt(32, 14), pt(54, 50)},
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "duplicate_end",
		Points: []vec.Vec2{pt(10, 32), pt(54, 32), pt(54, 32)},
		Style:  extrude.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "near_reversal",
		Points: []vec.Vec2{pt(10, 32), pt(50, 32), pt(10, 32.04)},
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "reversal",
		Points: []vec.Vec2{pt(10, 32), pt(50, 32), pt(20, 32)},
		Style:  extrude.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tiny_segment",
		Points: []vec.Vec2{pt(10, 32), pt(32, 32), pt(32.001, 32), pt(54, 32)},
		Style:  extrude.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
}
