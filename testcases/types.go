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

// Package testcases holds named polylines and line styles shared by the
// tests, benchmarks and reference generators.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/extrude"
)

// TestCase defines a single extrusion test.
// Points are given in canvas coordinates, with the y-axis pointing down.
type TestCase struct {
	Name   string         // lowercase a-z and _ only
	Points []vec.Vec2     // the polyline to extrude
	Style  extrude.Config // line style; Project must be nil
	Width  int            // canvas width in pixels
	Height int            // canvas height in pixels
}

// Path returns the polyline as an open path.
func (tc TestCase) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range tc.Points {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
