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

package extrude

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Number of float32 values per vertex in Mesh.Positions and Mesh.Normals.
const (
	PositionStride = 6
	NormalStride   = 3
)

// Offsets of the vertex attributes within one Positions record.
const (
	attrX        = 0
	attrY        = 1
	attrDistance = 3
	attrOffset   = 4
)

// Mesh is an indexed triangle list describing a thick line.
//
// Vertex i occupies Positions[6*i:6*i+6] as [x, y, 0, distance, offset, 0]
// and Normals[3*i:3*i+3] as [nx, ny, 0].  The on-screen position of the
// vertex is (x, y) + offset·(nx, ny).
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// Vertex is one decoded vertex of a Mesh.
type Vertex struct {
	Pos      vec.Vec2 // point on the centre line
	Distance float64  // distance along the line, only set in dash mode
	Offset   float64  // signed half offset, applied along Normal
	Normal   vec.Vec2
}

// Extruded returns the position of the vertex after applying the offset.
func (v Vertex) Extruded() vec.Vec2 {
	return v.Pos.Add(v.Normal.Mul(v.Offset))
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.Positions) / PositionStride
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Vertex decodes vertex i.
func (m *Mesh) Vertex(i int) Vertex {
	p := m.Positions[PositionStride*i : PositionStride*(i+1)]
	n := m.Normals[NormalStride*i : NormalStride*(i+1)]
	return Vertex{
		Pos:      vec.Vec2{X: float64(p[attrX]), Y: float64(p[attrY])},
		Distance: float64(p[attrDistance]),
		Offset:   float64(p[attrOffset]),
		Normal:   vec.Vec2{X: float64(n[0]), Y: float64(n[1])},
	}
}

// Triangle is a triangle in render space.
type Triangle [3]vec.Vec2

// Area returns the signed area of the triangle.  The area is positive if
// the corners are in counter-clockwise order (with the y-axis pointing up).
func (t Triangle) Area() float64 {
	a := t[1].Sub(t[0])
	b := t[2].Sub(t[0])
	return (a.X*b.Y - a.Y*b.X) / 2
}

// Oriented returns the triangle with its corners in counter-clockwise order.
func (t Triangle) Oriented() Triangle {
	if t.Area() < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

// Triangles iterates over the triangles of the mesh, with the vertex offsets
// applied.  The winding of each triangle is the one stored in the index
// buffer.
func (m *Mesh) Triangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			var t Triangle
			for j := range 3 {
				t[j] = m.Vertex(int(m.Indices[i+j])).Extruded()
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all offset vertices.
// Vertices with non-finite coordinates are ignored.
// The zero rectangle is returned if no vertex qualifies.
func (m *Mesh) Bounds() rect.Rect {
	var bbox rect.Rect
	first := true
	for i := range m.NumVertices() {
		p := m.Vertex(i).Extruded()
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		if first {
			bbox = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			continue
		}
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox
}

// Check verifies the structural invariants of the mesh: matching attribute
// lengths, whole triangles, and indices within range.
func (m *Mesh) Check() error {
	if len(m.Positions)%PositionStride != 0 {
		return fmt.Errorf("%d position values do not form whole vertices", len(m.Positions))
	}
	n := m.NumVertices()
	if len(m.Normals) != NormalStride*n {
		return fmt.Errorf("%d normal values for %d vertices", len(m.Normals), n)
	}
	if len(m.Indices)%3 != 0 {
		return errors.New("index count is not a multiple of 3")
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d: vertex %d out of range (%d vertices)", i, idx, n)
		}
	}
	return nil
}

// Append adds the vertices and triangles of other to m.
// The indices of other are shifted to refer to the appended vertices.
func (m *Mesh) Append(other *Mesh) {
	base := uint32(m.NumVertices())
	m.Positions = append(m.Positions, other.Positions...)
	m.Normals = append(m.Normals, other.Normals...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// reserve grows the buffers to hold the given numbers of vertices and indices
// without reallocation.
func (m *Mesh) reserve(vertices, indices int) {
	m.Positions = make([]float32, 0, PositionStride*vertices)
	m.Normals = make([]float32, 0, NormalStride*vertices)
	m.Indices = make([]uint32, 0, indices)
}

func (m *Mesh) addVertex(p vec.Vec2, dist, offset float64, n vec.Vec2) {
	m.Positions = append(m.Positions,
		float32(p.X), float32(p.Y), 0, float32(dist), float32(offset), 0)
	m.Normals = append(m.Normals, float32(n.X), float32(n.Y), 0)
}

func (m *Mesh) addTriangle(a, b, c int) {
	m.Indices = append(m.Indices, uint32(a), uint32(b), uint32(c))
}

// addClosing adds the second triangle of the quad starting at vertex i.
// The winding follows the turn sign of the previous join, so that the strip
// keeps a consistent front face after joins which swapped the two sides.
func (m *Mesh) addClosing(i, lastFlip int) {
	if lastFlip == 1 {
		m.addTriangle(i, i+2, i+3)
	} else {
		m.addTriangle(i+2, i+1, i+3)
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
