// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
)

// stlRecord is the size of one binary STL triangle record: a normal,
// three corners, and a 2-byte attribute word.
const stlRecord = 50

// ReadSTL reads binary STL from the reader: an 80-byte header, a
// little-endian uint32 triangle count, then one record per triangle.
// Every triangle gets its own three vertices, the duplicated-corner
// layout that merge grouping reunites. ASCII STL is rejected.
func ReadSTL(r io.Reader, name string) (*mesh.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("stl %s: %w", name, err)
	}
	if len(b) < 84 {
		return nil, fmt.Errorf("stl %s: %d bytes is too short for a binary header", name, len(b))
	}
	cnt := int(binary.LittleEndian.Uint32(b[80:84]))
	if cnt*stlRecord != len(b)-84 {
		if bytes.HasPrefix(b, []byte("solid")) {
			return nil, fmt.Errorf("stl %s: ascii format is not supported", name)
		}
		return nil, fmt.Errorf("stl %s: %d triangles does not match %d data bytes", name, cnt, len(b)-84)
	}

	ms := mesh.NewMesh(name)
	nv := cnt * 3
	ms.Vertex = make(math32.ArrayF32, nv*3)
	ms.Normal = make(math32.ArrayF32, nv*3)
	ms.Index = make(math32.ArrayU32, nv)
	data := b[84:]
	vi := 0
	for i := 0; i < len(data); i += stlRecord {
		norm := stlVec3(data[i:])
		for c := range 3 {
			ms.Vertex.SetVector3(vi*3, stlVec3(data[i+12+c*12:]))
			ms.Normal.SetVector3(vi*3, norm)
			ms.Index[vi] = uint32(vi)
			vi++
		}
	}
	ms.UpdateBounds()
	return ms, nil
}

// OpenSTL reads the binary STL file at the given path.
func OpenSTL(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	ms, err := ReadSTL(f, fileName(path))
	if err != nil {
		return nil, err
	}
	stampMeta(ms, path, "stl")
	return ms, nil
}

// stlVec3 decodes three little-endian float32 from the start of b.
func stlVec3(b []byte) math32.Vector3 {
	return math32.Vec3(
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
	)
}
