// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pick

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
	"github.com/stretchr/testify/assert"
)

func downRay(x, y float32) math32.Ray {
	return math32.Ray{Origin: math32.Vec3(x, y, 5), Dir: math32.Vec3(0, 0, -1)}
}

func TestVertex(t *testing.T) {
	bx := mesh.NewBox("box", 2, 2, 2)
	vi, world, ok := Vertex(bx, downRay(1, 1), 0.05)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec3(1, 1, 1), bx.VertexPos(vi))
	assert.Equal(t, math32.Vec3(1, 1, 1), world)

	_, _, ok = Vertex(bx, downRay(5, 5), 0.05)
	assert.False(t, ok)

	// nearer of the two corners on the same ray wins
	vi2, _, ok := Vertex(bx, downRay(-1, -1), 0.05)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec3(-1, -1, 1), bx.VertexPos(vi2))
}

func TestEdge(t *testing.T) {
	pl := mesh.NewPlane("plane", 2, 2)
	pair, world, ok := Edge(pl, downRay(1, 0.2), 0.05)
	assert.True(t, ok)
	assert.Equal(t, [2]int{1, 2}, pair)
	tolassert.EqualTol(t, 1, world.X, 1e-6)
	tolassert.EqualTol(t, 0.2, world.Y, 1e-6)
	tolassert.EqualTol(t, 0, world.Z, 1e-6)

	_, _, ok = Edge(pl, downRay(3, 3), 0.05)
	assert.False(t, ok)
}

func TestFace(t *testing.T) {
	pl := mesh.NewPlane("plane", 2, 2)
	tri, world, ok := Face(pl, downRay(0.5, -0.5))
	assert.True(t, ok)
	assert.Equal(t, [3]int{0, 1, 2}, tri)
	tolassert.EqualTol(t, 0.5, world.X, 1e-6)
	tolassert.EqualTol(t, -0.5, world.Y, 1e-6)
	tolassert.EqualTol(t, 0, world.Z, 1e-6)

	tri, _, ok = Face(pl, downRay(-0.5, 0.5))
	assert.True(t, ok)
	assert.Equal(t, [3]int{0, 2, 3}, tri)

	_, _, ok = Face(pl, downRay(3, 0))
	assert.False(t, ok)
}

func TestFacePosed(t *testing.T) {
	pl := mesh.NewPlane("plane", 2, 2)
	pl.Pose.Pos = math32.Vec3(10, 0, 0)
	pl.Pose.Update()
	tri, world, ok := Face(pl, downRay(10.5, -0.5))
	assert.True(t, ok)
	assert.Equal(t, [3]int{0, 1, 2}, tri)
	tolassert.EqualTol(t, 10.5, world.X, 1e-6)
	tolassert.EqualTol(t, -0.5, world.Y, 1e-6)

	_, _, ok = Face(pl, downRay(0.5, -0.5))
	assert.False(t, ok)
}
