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

// Package extrude converts polylines into triangle meshes which draw the
// line with a given thickness on the GPU.
//
// Each output vertex stores a point on the centre line together with a
// normal and a signed half offset; a vertex shader reconstructs the final
// position as point + offset·normal.  This keeps the mesh valid under
// zooming, as long as thickness is measured in render space.
package extrude

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/extrude/projection"
)

const (
	defaultThickness  = 1.0
	defaultMiterLimit = 10.0
)

// Config describes a line style.  Zero values select the defaults.
type Config struct {
	// Join selects the shape of corners: graphics.LineJoinMiter gives
	// pointed joins, graphics.LineJoinBevel gives flattened joins.
	// Other values behave like graphics.LineJoinMiter.
	Join graphics.LineJoinStyle

	// Cap selects the shape of line ends: graphics.LineCapButt ends the line
	// flush with the end point, graphics.LineCapSquare extends it by the
	// thickness.  Other values behave like graphics.LineCapButt.
	Cap graphics.LineCapStyle

	// Dash enables accumulation of the line length in the distance attribute.
	Dash bool

	// MiterLimit is the largest miter length, in render space units, for
	// which a pointed join is used.  Longer miters are flattened.
	// The default is 10.
	MiterLimit float64

	// Thickness is the distance from the centre line to each edge, in render
	// space units.  The visible width of the line is 2·Thickness.
	// The default is 1.
	Thickness float64

	// Closed and IndexOffset are recorded but do not affect the output.
	Closed      bool
	IndexOffset int

	// Project maps input points into render space.
	// If nil, projection.Identity is used.
	Project projection.Func
}

// Extruder converts polylines into meshes for one line style.
//
// An Extruder keeps no state between calls to Extrude and may be used
// concurrently from several goroutines.
type Extruder struct {
	join       graphics.LineJoinStyle
	cap        graphics.LineCapStyle
	dash       bool
	miterLimit float64
	thickness  float64
	closed     bool
	offset     int
	project    projection.Func
}

// New returns an Extruder for the line style described by cfg.
func New(cfg Config) *Extruder {
	e := &Extruder{
		join:       cfg.Join,
		cap:        cfg.Cap,
		dash:       cfg.Dash,
		miterLimit: cfg.MiterLimit,
		thickness:  cfg.Thickness,
		closed:     cfg.Closed,
		offset:     cfg.IndexOffset,
		project:    cfg.Project,
	}
	if e.miterLimit == 0 {
		e.miterLimit = defaultMiterLimit
	}
	if e.thickness == 0 {
		e.thickness = defaultThickness
	}
	if e.project == nil {
		e.project = projection.Identity
	}
	return e
}

// Config returns the line style of the Extruder, with defaults filled in.
func (e *Extruder) Config() Config {
	return Config{
		Join:        e.join,
		Cap:         e.cap,
		Dash:        e.dash,
		MiterLimit:  e.miterLimit,
		Thickness:   e.thickness,
		Closed:      e.closed,
		IndexOffset: e.offset,
		Project:     e.project,
	}
}

// lineState is carried from one segment to the next during a single call
// to Extrude.
type lineState struct {
	total    float64  // running line length in render space (dash mode only)
	lastFlip int      // turn sign of the previous join
	normal   vec.Vec2 // normal used for the incoming side of the next join
	started  bool     // whether the start cap has been emitted
}

// Extrude triangulates the polyline through points.
//
// Consecutive equal points are merged.  If fewer than two distinct points
// remain, the returned mesh is empty.  Non-finite coordinates, and a
// non-positive thickness or miter limit, are not checked for and can lead to
// non-finite values in the output.
func (e *Extruder) Extrude(points []vec.Vec2) *Mesh {
	m := &Mesh{}
	pts := collapse(points)
	if len(pts) <= 1 {
		m.reserve(0, 0)
		return m
	}

	// Each segment emits at most three vertices and three triangles,
	// the start cap adds two more vertices.
	segments := len(pts) - 1
	m.reserve(2+3*segments, 9*segments)

	s := &lineState{lastFlip: -1}
	count := 0
	for i := 1; i < len(pts); i++ {
		var next *vec.Vec2
		if i+1 < len(pts) {
			next = &pts[i+1]
		}
		count += e.segment(m, s, count, pts[i-1], pts[i], next)
	}

	if e.dash {
		total := float32(s.total)
		for i := range m.NumVertices() {
			m.Positions[PositionStride*i+attrDistance] = total
		}
	}

	return m
}

// segment emits the geometry for the segment from last to cur and returns
// the number of vertices added after the start cap.  Vertex index is the
// first of the two vertices which end the previous segment (or form the
// start cap).  If next is nil, the segment ends the line.
func (e *Extruder) segment(m *Mesh, s *lineState, index int, last, cur vec.Vec2, next *vec.Vec2) int {
	flatLast := e.project(last)
	flatCur := e.project(cur)
	lineA := direction(flatCur, flatLast)

	var segLen float64
	if e.dash {
		segLen = distance(flatCur, flatLast)
		s.total += segLen
	}

	if !s.started {
		s.started = true
		s.normal = perp(lineA)
		e.startCap(m, last, lineA, s.normal, s.total-segLen)
	}

	m.addTriangle(index, index+1, index+2)

	if next == nil {
		s.normal = perp(lineA)
		e.endCap(m, cur, lineA, s.normal, s.total)
		m.addClosing(index, s.lastFlip)
		return 2
	}

	flatNext := e.project(*next)
	if flatNext == flatCur {
		// The projection merged cur and next; continue straight on.
		// A reversed successor would give a zero join tangent.
		flatNext = flatCur.Add(lineA)
	}
	lineB := direction(flatNext, flatCur)

	tangent := joinTangent(lineA, lineB)
	mt := computeMiter(tangent, lineA, e.thickness)

	// The turn sign compares the join tangent, not the outgoing normal,
	// with the running normal.
	flip := 1
	if tangent.Dot(s.normal) < 0 {
		flip = -1
	}

	if e.join == graphics.LineJoinBevel || mt.Length > e.miterLimit {
		d := e.thickness * float64(flip)
		m.addVertex(cur, s.total, -d, s.normal)
		m.addVertex(cur, s.total, d, s.normal)
		m.addClosing(index, s.lastFlip)

		// bevel triangle across the outside of the corner
		m.addTriangle(index+2, index+3, index+4)

		s.normal = perp(lineB)
		m.addVertex(cur, s.total, -d, s.normal)
		s.lastFlip = flip
		return 3
	}

	m.addVertex(cur, s.total, -mt.Length, mt.Vector)
	m.addVertex(cur, s.total, mt.Length, mt.Vector)
	m.addClosing(index, s.lastFlip)

	// The miter takes the place of the normal for the next join.
	s.normal = mt.Vector
	s.lastFlip = -1
	return 2
}

// startCap emits the two vertices which begin the line at p, where the line
// leaves p in direction dir.
func (e *Extruder) startCap(m *Mesh, p, dir, normal vec.Vec2, dist float64) {
	t := e.thickness
	if e.cap == graphics.LineCapSquare {
		// p ∓ t·normal − t·dir
		m.addVertex(p, dist, -t, normal.Add(dir))
		m.addVertex(p, dist, t, normal.Sub(dir))
		return
	}
	m.addVertex(p, dist, -t, normal)
	m.addVertex(p, dist, t, normal)
}

// endCap emits the two vertices which end the line at p, where the line
// arrives at p in direction dir.
func (e *Extruder) endCap(m *Mesh, p, dir, normal vec.Vec2, dist float64) {
	t := e.thickness
	if e.cap == graphics.LineCapSquare {
		// p ∓ t·normal + t·dir
		m.addVertex(p, dist, -t, normal.Sub(dir))
		m.addVertex(p, dist, t, normal.Add(dir))
		return
	}
	m.addVertex(p, dist, -t, normal)
	m.addVertex(p, dist, t, normal)
}

// collapse returns points with runs of equal consecutive points reduced to
// a single point.  The input slice is returned unchanged if it contains no
// such runs.
func collapse(points []vec.Vec2) []vec.Vec2 {
	for i := 1; i < len(points); i++ {
		if points[i] != points[i-1] {
			continue
		}
		out := make([]vec.Vec2, i, len(points)-1)
		copy(out, points[:i])
		for _, p := range points[i+1:] {
			if p != out[len(out)-1] {
				out = append(out, p)
			}
		}
		return out
	}
	return points
}
