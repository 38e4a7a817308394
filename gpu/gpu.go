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

// Package gpu describes how an extruded mesh is laid out in GPU buffers.
//
// Positions and normals live in two separate vertex buffers, bound at slots
// 0 and 1.  The shader locations are:
//
//	0: position (float32x3)  buffer 0, offset 0
//	1: distance (float32)    buffer 0, offset 12
//	2: offset   (float32)    buffer 0, offset 16
//	3: normal   (float32x3)  buffer 1, offset 0
//
// The final vertex position is position.xy + normal.xy * offset.
package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"seehuhn.de/go/extrude"
)

// Byte strides of the two vertex buffers.
const (
	PositionStride = extrude.PositionStride * 4
	NormalStride   = extrude.NormalStride * 4
)

// Shader locations of the vertex attributes.
const (
	LocationPosition = 0
	LocationDistance = 1
	LocationOffset   = 2
	LocationNormal   = 3
)

// IndexFormat is the format of the index buffer.
const IndexFormat = gputypes.IndexFormatUint32

// VertexLayouts returns the vertex buffer layouts for a render pipeline
// drawing extruded meshes.
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: PositionStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
				{Format: gputypes.VertexFormatFloat32, Offset: 12, ShaderLocation: LocationDistance},
				{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: LocationOffset},
			},
		},
		{
			ArrayStride: NormalStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationNormal},
			},
		},
	}
}

// PrimitiveState returns the primitive state for drawing extruded meshes.
// Joins can reverse the winding of the strip, so back faces are not culled.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
}

// PositionBytes returns the contents of vertex buffer 0.
func PositionBytes(m *extrude.Mesh) []byte {
	return appendFloats(make([]byte, 0, 4*len(m.Positions)), m.Positions)
}

// NormalBytes returns the contents of vertex buffer 1.
func NormalBytes(m *extrude.Mesh) []byte {
	return appendFloats(make([]byte, 0, 4*len(m.Normals)), m.Normals)
}

// IndexBytes returns the contents of the index buffer.
func IndexBytes(m *extrude.Mesh) []byte {
	buf := make([]byte, 0, int(IndexFormat.Size())*len(m.Indices))
	for _, idx := range m.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, idx)
	}
	return buf
}

func appendFloats(buf []byte, xs []float32) []byte {
	for _, x := range xs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
	}
	return buf
}
