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

// Package raster computes pixel coverage of extruded meshes on the CPU.
// It is used for previews and to check meshes against reference renderings.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/extrude"
)

// Coverage renders the triangles of m into a new width×height alpha image.
// Mesh coordinates are taken as pixel coordinates, with the y-axis pointing
// down.  Overlapping triangles are painted once.  Degenerate triangles and
// triangles with non-finite or very large coordinates are skipped.
func Coverage(m *extrude.Mesh, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	Draw(dst, m)
	return dst
}

// Draw adds the coverage of the triangles of m to dst.
func Draw(dst *image.Alpha, m *extrude.Mesh) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())

	n := 0
	for tri := range m.Triangles() {
		if !usable(tri) {
			continue
		}
		// All triangles are given the same orientation, so that the
		// winding contributions of overlapping triangles do not cancel.
		tri = tri.Oriented()
		r.MoveTo(float32(tri[0].X)-float32(b.Min.X), float32(tri[0].Y)-float32(b.Min.Y))
		r.LineTo(float32(tri[1].X)-float32(b.Min.X), float32(tri[1].Y)-float32(b.Min.Y))
		r.LineTo(float32(tri[2].X)-float32(b.Min.X), float32(tri[2].Y)-float32(b.Min.Y))
		r.ClosePath()
		n++
	}
	if n == 0 {
		return
	}

	r.Draw(dst, b, image.NewUniform(color.Alpha{A: 255}), image.Point{})
}

// maxCoord bounds the coordinates passed to the rasterizer.  Beyond this,
// float32 can no longer represent whole pixels.
const maxCoord = 1 << 24

// usable reports whether tri has finite, representable corners and
// non-zero area.
func usable(tri extrude.Triangle) bool {
	for _, p := range tri {
		// NaN fails both comparisons
		if !(math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord) {
			return false
		}
	}
	return tri.Area() != 0
}
