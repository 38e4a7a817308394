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

// Package pdfout writes extruded meshes to PDF files, one filled triangle per
// mesh triangle.  The output shows exactly the area a GPU would cover and can
// be compared with the PDF stroke of the input polyline.
package pdfout

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/extrude"
)

// Options control the appearance of the output.
type Options struct {
	// Background and Foreground are gray levels between 0 (black) and 1
	// (white).  If both are zero, black triangles are drawn on white.
	Background float64
	Foreground float64

	// Transform is applied to the mesh coordinates before drawing.
	// The zero matrix is treated as the identity.
	Transform matrix.Matrix
}

// WriteFile writes a single page PDF of size width×height points which shows
// the triangles of m.  Mesh coordinates are interpreted with the y-axis
// pointing down, like pixel coordinates.
//
// If opt is nil, default options are used.
func WriteFile(fname string, m *extrude.Mesh, width, height float64, opt *Options) error {
	bg, fg := 1.0, 0.0
	ctm := matrix.Identity
	if opt != nil {
		if opt.Background != 0 || opt.Foreground != 0 {
			bg, fg = opt.Background, opt.Foreground
		}
		if opt.Transform != (matrix.Matrix{}) {
			ctm = opt.Transform
		}
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(bg))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.Transform(ctm)
	page.SetFillColor(color.DeviceGray(fg))

	n := 0
	for tri := range m.Triangles() {
		if !drawable(tri) {
			continue
		}
		// With a common orientation, overlapping triangles do not cancel
		// under the nonzero winding rule.
		tri = tri.Oriented()
		page.MoveTo(tri[0].X, tri[0].Y)
		page.LineTo(tri[1].X, tri[1].Y)
		page.LineTo(tri[2].X, tri[2].Y)
		page.ClosePath()
		n++
	}
	if n > 0 {
		page.Fill()
	}

	return page.Close()
}

func drawable(tri extrude.Triangle) bool {
	for _, p := range tri {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return tri.Area() != 0
}
