// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// OpenGLTF reads the first mesh primitive of the glTF 2.0 document at
// the given path, .gltf JSON or binary .glb. The POSITION attribute is
// required; normals, texcoords, and indices are read when present.
// Normals are computed when absent, and non-indexed primitives get
// sequential triangle indices.
func OpenGLTF(path string) (*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf: %w", err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf %s: no mesh primitives", path)
	}
	gm := doc.Meshes[0]
	prim := gm.Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("gltf %s: primitive has no POSITION attribute", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("gltf %s: positions: %w", path, err)
	}

	name := gm.Name
	if name == "" {
		name = fileName(path)
	}
	ms := mesh.NewMesh(name)
	ms.Vertex = make(math32.ArrayF32, len(positions)*3)
	for i, p := range positions {
		ms.Vertex.SetVector3(i*3, math32.Vec3(p[0], p[1], p[2]))
	}

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("gltf %s: normals: %w", path, err)
		}
		if len(normals) == len(positions) {
			ms.Normal = make(math32.ArrayF32, len(normals)*3)
			for i, n := range normals {
				ms.Normal.SetVector3(i*3, math32.Vec3(n[0], n[1], n[2]))
			}
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("gltf %s: texcoords: %w", path, err)
		}
		if len(uvs) == len(positions) {
			ms.TexCoord = make(math32.ArrayF32, len(uvs)*2)
			for i, uv := range uvs {
				ms.TexCoord.Set(i*2, uv[0], uv[1])
			}
		}
	}
	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("gltf %s: indices: %w", path, err)
		}
		ms.Index = make(math32.ArrayU32, len(indices))
		copy(ms.Index, indices)
	} else {
		// non-indexed triangle soup: sequential indices, as with STL
		ms.Index = make(math32.ArrayU32, len(positions))
		for i := range ms.Index {
			ms.Index[i] = uint32(i)
		}
	}

	if len(ms.Normal) == 0 {
		ms.ComputeNormals()
	}
	ms.UpdateBounds()
	stampMeta(ms, path, "gltf")
	return ms, nil
}
