// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// ComputeNormals recomputes the Normal buffer from current vertex
// positions and the triangle Index list. Each vertex normal is the
// normalized sum of the unnormalized face normals of all triangles
// sharing that vertex, which weights faces by their area. Vertices
// not referenced by any triangle get a Z-up normal.
func (ms *Mesh) ComputeNormals() {
	nv := ms.NumVertex()
	if len(ms.Normal) != 3*nv {
		ms.Normal = make(math32.ArrayF32, 3*nv)
	} else {
		for i := range ms.Normal {
			ms.Normal[i] = 0
		}
	}
	ni := ms.NumIndex()
	for fi := 0; fi < ni; fi += 3 {
		a := int(ms.Index[fi])
		b := int(ms.Index[fi+1])
		c := int(ms.Index[fi+2])
		va := ms.VertexPos(a)
		vb := ms.VertexPos(b)
		vc := ms.VertexPos(c)
		fn := vb.Sub(va).Cross(vc.Sub(va)) // length = 2 * area
		for _, vi := range []int{a, b, c} {
			off := vi * 3
			ms.Normal[off] += fn.X
			ms.Normal[off+1] += fn.Y
			ms.Normal[off+2] += fn.Z
		}
	}
	for i := range nv {
		off := i * 3
		n := math32.Vec3(ms.Normal[off], ms.Normal[off+1], ms.Normal[off+2])
		if n.Length() == 0 {
			n = math32.Vec3(0, 0, 1)
		} else {
			n = n.Normal()
		}
		ms.Normal.SetVector3(off, n)
	}
}
