// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestOpenGLTF(t *testing.T) {
	ms, err := OpenGLTF(filepath.Join("testdata", "triangle.gltf"))
	assert.NoError(t, err)
	assert.Equal(t, "tri", ms.Name)
	assert.Equal(t, 3, ms.NumVertex())
	assert.Equal(t, math32.ArrayU32{0, 1, 2}, ms.Index)
	assert.Equal(t, math32.Vec3(0, 0, 0), ms.VertexPos(0))
	assert.Equal(t, math32.Vec3(1, 0, 0), ms.VertexPos(1))
	assert.Equal(t, math32.Vec3(0, 1, 0), ms.VertexPos(2))
	for i := range ms.NumVertex() { // no NORMAL attribute, so normals are computed
		tolassert.EqualTol(t, 1, ms.Normal[i*3+2], 1e-6)
	}
	assert.Equal(t, math32.Vec3(0, 0, 0), ms.BBox.Min)
	assert.Equal(t, math32.Vec3(1, 1, 0), ms.BBox.Max)
	format, err := metadata.GetFromData[string](ms.Meta, "Format")
	assert.NoError(t, err)
	assert.Equal(t, "gltf", format)
}

func TestOpenDispatch(t *testing.T) {
	ms, err := Open(filepath.Join("testdata", "triangle.gltf"))
	assert.NoError(t, err)
	assert.Equal(t, 3, ms.NumVertex())

	_, err = Open("model.ply")
	assert.ErrorContains(t, err, "unsupported")
}
