// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// setQuad fills one quad face at the given vertex and index offsets,
// with corners a, b, c, d in counter-clockwise order as seen from the
// side the normal points at.
func (ms *Mesh) setQuad(voff, ioff int, a, b, c, d, norm math32.Vector3) {
	vo := voff * 3
	ms.Vertex.SetVector3(vo, a)
	ms.Vertex.SetVector3(vo+3, b)
	ms.Vertex.SetVector3(vo+6, c)
	ms.Vertex.SetVector3(vo+9, d)
	for i := range 4 {
		ms.Normal.SetVector3(vo+3*i, norm)
	}
	to := voff * 2
	ms.TexCoord.Set(to, 0, 0, 1, 0, 1, 1, 0, 1)
	vi := uint32(voff)
	ms.Index.Set(ioff, vi, vi+1, vi+2, vi, vi+2, vi+3)
}

// NewPlane returns a single quad plane mesh of given size, in the XY
// plane facing +Z, centered at the origin.
func NewPlane(name string, width, height float32) *Mesh {
	ms := NewMesh(name)
	ms.Vertex = make(math32.ArrayF32, 4*3)
	ms.Normal = make(math32.ArrayF32, 4*3)
	ms.TexCoord = make(math32.ArrayF32, 4*2)
	ms.Index = make(math32.ArrayU32, 6)
	hw, hh := width/2, height/2
	ms.setQuad(0, 0,
		math32.Vec3(-hw, -hh, 0), math32.Vec3(hw, -hh, 0),
		math32.Vec3(hw, hh, 0), math32.Vec3(-hw, hh, 0),
		math32.Vec3(0, 0, 1))
	ms.UpdateBounds()
	return ms
}

// NewBox returns a box mesh of given size, centered at the origin.
// Each face has its own 4 vertices so that per-face normals and
// texture coordinates are exact; every corner position is therefore
// shared by 3 coincident vertices, one per adjoining face.
func NewBox(name string, width, height, depth float32) *Mesh {
	ms := NewMesh(name)
	ms.Vertex = make(math32.ArrayF32, 24*3)
	ms.Normal = make(math32.ArrayF32, 24*3)
	ms.TexCoord = make(math32.ArrayF32, 24*2)
	ms.Index = make(math32.ArrayU32, 36)
	h := math32.Vec3(width, height, depth).MulScalar(0.5)
	ms.setQuad(0, 0, // pz
		math32.Vec3(-h.X, -h.Y, h.Z), math32.Vec3(h.X, -h.Y, h.Z),
		math32.Vec3(h.X, h.Y, h.Z), math32.Vec3(-h.X, h.Y, h.Z),
		math32.Vec3(0, 0, 1))
	ms.setQuad(4, 6, // nz
		math32.Vec3(h.X, -h.Y, -h.Z), math32.Vec3(-h.X, -h.Y, -h.Z),
		math32.Vec3(-h.X, h.Y, -h.Z), math32.Vec3(h.X, h.Y, -h.Z),
		math32.Vec3(0, 0, -1))
	ms.setQuad(8, 12, // px
		math32.Vec3(h.X, -h.Y, h.Z), math32.Vec3(h.X, -h.Y, -h.Z),
		math32.Vec3(h.X, h.Y, -h.Z), math32.Vec3(h.X, h.Y, h.Z),
		math32.Vec3(1, 0, 0))
	ms.setQuad(12, 18, // nx
		math32.Vec3(-h.X, -h.Y, -h.Z), math32.Vec3(-h.X, -h.Y, h.Z),
		math32.Vec3(-h.X, h.Y, h.Z), math32.Vec3(-h.X, h.Y, -h.Z),
		math32.Vec3(-1, 0, 0))
	ms.setQuad(16, 24, // py
		math32.Vec3(-h.X, h.Y, h.Z), math32.Vec3(h.X, h.Y, h.Z),
		math32.Vec3(h.X, h.Y, -h.Z), math32.Vec3(-h.X, h.Y, -h.Z),
		math32.Vec3(0, 1, 0))
	ms.setQuad(20, 30, // ny
		math32.Vec3(-h.X, -h.Y, -h.Z), math32.Vec3(h.X, -h.Y, -h.Z),
		math32.Vec3(h.X, -h.Y, h.Z), math32.Vec3(-h.X, -h.Y, h.Z),
		math32.Vec3(0, -1, 0))
	ms.UpdateBounds()
	return ms
}
