// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewBox(t *testing.T) {
	bx := NewBox("box", 2, 4, 6)
	assert.Equal(t, 24, bx.NumVertex())
	assert.Equal(t, 36, bx.NumIndex())
	assert.Equal(t, math32.Vec3(-1, -2, -3), bx.BBox.Min)
	assert.Equal(t, math32.Vec3(1, 2, 3), bx.BBox.Max)
}

func TestNewPlane(t *testing.T) {
	pl := NewPlane("plane", 2, 2)
	assert.Equal(t, 4, pl.NumVertex())
	assert.Equal(t, 6, pl.NumIndex())
	for i := range pl.NumVertex() {
		off := i * 3
		assert.Equal(t, float32(0), pl.Normal[off])
		assert.Equal(t, float32(0), pl.Normal[off+1])
		assert.Equal(t, float32(1), pl.Normal[off+2])
	}
}

func TestGeneration(t *testing.T) {
	bx := NewBox("box", 1, 1, 1)
	g0 := bx.Generation()
	bx.VertexPos(0)
	assert.Equal(t, g0, bx.Generation())
	bx.SetVertexPos(0, math32.Vec3(0, 0, 0))
	assert.Equal(t, g0+1, bx.Generation())
	bx.NoteMutated()
	assert.Equal(t, g0+2, bx.Generation())
}

func TestPositionsRoundTrip(t *testing.T) {
	bx := NewBox("box", 1, 1, 1)
	orig := bx.CopyPositions()
	bx.SetVertexPos(3, math32.Vec3(5, 5, 5))
	assert.Equal(t, math32.Vec3(5, 5, 5), bx.VertexPos(3))
	err := bx.SetPositions(orig)
	assert.NoError(t, err)
	assert.Equal(t, orig, bx.Vertex)

	err = bx.SetPositions(orig[:9])
	assert.Error(t, err)
}

func TestComputeNormals(t *testing.T) {
	bx := NewBox("box", 2, 2, 2)
	want := make(math32.ArrayF32, len(bx.Normal))
	copy(want, bx.Normal)
	for i := range bx.Normal {
		bx.Normal[i] = 0
	}
	bx.ComputeNormals()
	for i := range want {
		tolassert.EqualTol(t, want[i], bx.Normal[i], 1e-6)
	}
}

func TestPoseWorld(t *testing.T) {
	var ps Pose
	ps.Pos = math32.Vec3(1, 2, 3)
	ps.Update()
	assert.Equal(t, math32.Vec3(1, 1, 1), ps.Scale)
	assert.Equal(t, math32.Vec3(1, 2, 3), ps.WorldPos())
}

func TestPoseEuler(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.SetEulerRotation(0, 30, 0)
	rot := ps.EulerRotation()
	tolassert.EqualTol(t, 30, rot.Y, 1e-4)
	tolassert.EqualTol(t, 0, rot.X, 1e-4)
	tolassert.EqualTol(t, 0, rot.Z, 1e-4)
}
