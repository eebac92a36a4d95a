// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// binarySTL builds a binary STL buffer from triangles given as a
// normal followed by three corners.
func binarySTL(tris ...[4][3]float32) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(len(tris)))
	for _, tri := range tris {
		binary.Write(&buf, binary.LittleEndian, tri)
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestReadSTL(t *testing.T) {
	b := binarySTL(
		[4][3]float32{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[4][3]float32{{0, 0, 1}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	)
	ms, err := ReadSTL(bytes.NewReader(b), "quad")
	assert.NoError(t, err)
	assert.Equal(t, 6, ms.NumVertex())
	assert.Equal(t, 6, ms.NumIndex())
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 3, 4, 5}, ms.Index)
	assert.Equal(t, math32.Vec3(1, 0, 0), ms.VertexPos(1))
	assert.Equal(t, math32.Vec3(1, 1, 0), ms.VertexPos(4))
	for i := range ms.NumVertex() {
		assert.Equal(t, float32(1), ms.Normal[i*3+2])
	}
	assert.Equal(t, math32.Vec3(0, 0, 0), ms.BBox.Min)
	assert.Equal(t, math32.Vec3(1, 1, 0), ms.BBox.Max)
}

func TestReadSTLErrors(t *testing.T) {
	_, err := ReadSTL(bytes.NewReader(make([]byte, 40)), "short")
	assert.ErrorContains(t, err, "too short")

	ascii := []byte(`solid tri
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
endloop
endfacet
endsolid tri
`)
	_, err = ReadSTL(bytes.NewReader(ascii), "ascii")
	assert.ErrorContains(t, err, "ascii")

	b := binarySTL([4][3]float32{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	binary.LittleEndian.PutUint32(b[80:84], 7)
	_, err = ReadSTL(bytes.NewReader(b), "mismatch")
	assert.ErrorContains(t, err, "does not match")
}

func TestOpenSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.stl")
	b := binarySTL([4][3]float32{{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	assert.NoError(t, os.WriteFile(path, b, 0666))

	ms, err := OpenSTL(path)
	assert.NoError(t, err)
	assert.Equal(t, "tri", ms.Name)
	assert.Equal(t, 3, ms.NumVertex())
	format, err := metadata.GetFromData[string](ms.Meta, "Format")
	assert.NoError(t, err)
	assert.Equal(t, "stl", format)
}
