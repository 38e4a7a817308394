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

// Command export writes test case definitions to JSON for external
// reference generators.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/extrude"
	"seehuhn.de/go/extrude/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string       `json:"name"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Points     [][2]float64 `json:"points"`
	Thickness  float64      `json:"thickness"`
	LineCap    string       `json:"line_cap"`
	LineJoin   string       `json:"line_join"`
	MiterLimit float64      `json:"miter_limit"`
	Dash       bool         `json:"dash,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	// report the effective style, with defaults filled in
	style := extrude.New(tc.Style).Config()

	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		Points:     make([][2]float64, len(tc.Points)),
		Thickness:  style.Thickness,
		LineCap:    style.Cap.String(),
		LineJoin:   style.Join.String(),
		MiterLimit: style.MiterLimit,
		Dash:       style.Dash,
	}
	for i, p := range tc.Points {
		jtc.Points[i] = [2]float64{p.X, p.Y}
	}
	return jtc
}
