// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
	"github.com/stretchr/testify/assert"
)

// scenarioMesh returns a 12-vertex mesh with coincident duplicates at
// indices 0 and 5 at the origin, index 9 at (1,0,0), and every other
// vertex clearly separated from the rest.
func scenarioMesh() *mesh.Mesh {
	ms := mesh.NewMesh("scenario")
	n := 12
	ms.Vertex = make(math32.ArrayF32, n*3)
	for i := range n {
		ms.Vertex.SetVector3(i*3, math32.Vec3(10+float32(i), 10, 10))
	}
	ms.Vertex.SetVector3(0, math32.Vec3(0, 0, 0))
	ms.Vertex.SetVector3(5*3, math32.Vec3(0, 0, 0))
	ms.Vertex.SetVector3(9*3, math32.Vec3(1, 0, 0))
	ms.UpdateBounds()
	return ms
}

// rayAt returns a -Z ray dropping onto world point (x, y, 0).
func rayAt(x, y float32) math32.Ray {
	return math32.Ray{Origin: math32.Vec3(x, y, 5), Dir: math32.Vec3(0, 0, -1)}
}

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, 1e-6)
	tolassert.EqualTol(t, want.Y, got.Y, 1e-6)
	tolassert.EqualTol(t, want.Z, got.Z, 1e-6)
}

func TestTogglePick(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	assert.False(t, ss.HasSelection())

	assert.True(t, ss.TogglePick(rayAt(0, 0)))
	assert.True(t, ss.HasSelection())
	sel := ss.Selection()
	assert.Equal(t, 1, len(sel))
	assert.Equal(t, VertexGroup, sel[0].Kind)
	assert.Equal(t, []int{0, 5}, sel[0].Indices)
	assertVec(t, math32.Vec3(0, 0, 0), sel[0].CentroidLocal)

	// a miss changes nothing
	assert.False(t, ss.TogglePick(rayAt(-5, -5)))
	assert.True(t, ss.HasSelection())
}

func TestScenarioToggleOff(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	orig := ms.CopyPositions()
	assert.True(t, ss.TogglePick(rayAt(0, 0)))
	assert.True(t, ss.TogglePick(rayAt(0, 0)))
	assert.False(t, ss.HasSelection())
	assert.Equal(t, orig, ms.Vertex)
}

func TestScenarioMoveCommitUndo(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	ss.TogglePick(rayAt(0, 0))

	ss.ApplyWorldDelta(math32.Vec3(1, 0, 0))
	assertVec(t, math32.Vec3(1, 0, 0), ms.VertexPos(0))
	assertVec(t, math32.Vec3(1, 0, 0), ms.VertexPos(5))
	assertVec(t, math32.Vec3(1, 0, 0), ss.Selection()[0].CentroidLocal)

	act := ss.Commit("scenario")
	assert.NotNil(t, act)
	assert.Equal(t, ActionType, act.Type)
	assert.Equal(t, "scenario", act.TargetID)
	assert.Equal(t, []int{0, 5}, act.Indices)
	assertVec(t, math32.Vec3(1, 0, 0), act.Delta.V())
	assert.Equal(t, math32.Vector3{}, ss.AccumulatedDelta())
	assert.True(t, ss.HasSelection())

	ss.ApplyInverse(act)
	assertVec(t, math32.Vec3(0, 0, 0), ms.VertexPos(0))
	assertVec(t, math32.Vec3(0, 0, 0), ms.VertexPos(5))
	assertVec(t, math32.Vec3(0, 0, 0), ss.Selection()[0].CentroidLocal)

	ss.ApplyForward(act)
	assertVec(t, math32.Vec3(1, 0, 0), ms.VertexPos(0))
	assertVec(t, math32.Vec3(1, 0, 0), ms.VertexPos(5))
}

func TestDeltaAssociativity(t *testing.T) {
	d1 := math32.Vec3(0.3, -0.2, 0.7)
	d2 := math32.Vec3(-0.1, 0.4, 0.25)

	ms1 := scenarioMesh()
	ss1 := NewSession(ms1)
	ss1.TogglePick(rayAt(0, 0))
	ss1.ApplyWorldDelta(d1)
	ss1.ApplyWorldDelta(d2)

	ms2 := scenarioMesh()
	ss2 := NewSession(ms2)
	ss2.TogglePick(rayAt(0, 0))
	ss2.ApplyWorldDelta(d1.Add(d2))

	for i := range ms1.NumVertex() {
		assertVec(t, ms2.VertexPos(i), ms1.VertexPos(i))
	}
	assertVec(t, ss2.AccumulatedDelta(), ss1.AccumulatedDelta())
}

func TestLocalDeltaPosed(t *testing.T) {
	ms := scenarioMesh()
	ms.Pose.SetEulerRotation(0, 0, 90)
	ms.Pose.Scale.Set(2, 2, 2)
	ms.Pose.Update()
	ss := NewSession(ms)

	ld := ss.LocalDelta(math32.Vec3(1, 0, 0))
	assertVec(t, math32.Vec3(0, -0.5, 0), ld)

	// the origin is a fixed point of rotation and scale, so the
	// same pick ray still lands on the group there
	assert.True(t, ss.TogglePick(rayAt(0, 0)))
	ss.ApplyWorldDelta(math32.Vec3(1, 0, 0))
	assertVec(t, math32.Vec3(0, -0.5, 0), ms.VertexPos(0))
	assertVec(t, math32.Vec3(0, -0.5, 0), ms.VertexPos(5))
}

func TestSelectionCenters(t *testing.T) {
	ms := scenarioMesh()
	ms.Pose.Pos = math32.Vec3(10, 0, 0)
	ms.Pose.Update()
	ss := NewSession(ms)

	_, ok := ss.SelectionCenterLocal()
	assert.False(t, ok)

	// mesh translated: pick where the group sits in world space
	assert.True(t, ss.TogglePick(rayAt(10, 0)))
	ctr, ok := ss.SelectionCenterLocal()
	assert.True(t, ok)
	assertVec(t, math32.Vec3(0, 0, 0), ctr)
	wctr, ok := ss.SelectionCenterWorld()
	assert.True(t, ok)
	assertVec(t, math32.Vec3(10, 0, 0), wctr)
}

func TestCancelToBaseline(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	orig := ms.CopyPositions()
	ss.TogglePick(rayAt(0, 0))
	ss.ApplyWorldDelta(math32.Vec3(1, 2, 3))
	assert.NotNil(t, ss.Commit("m"))
	ss.ApplyWorldDelta(math32.Vec3(0.5, 0, 0))

	ss.CancelToBaseline()
	assert.Equal(t, orig, ms.Vertex)
	assert.Equal(t, math32.Vector3{}, ss.AccumulatedDelta())
	// cancel restores positions, not selection; centroids follow
	assert.True(t, ss.HasSelection())
	assertVec(t, math32.Vec3(0, 0, 0), ss.Selection()[0].CentroidLocal)
}

func TestClearRecapturesBaseline(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	ss.TogglePick(rayAt(0, 0))
	ss.ApplyWorldDelta(math32.Vec3(1, 0, 0))
	assert.NotNil(t, ss.Commit("m"))
	ss.ClearSelection()
	assert.False(t, ss.HasSelection())
	after := ms.CopyPositions()

	// work done before the clear survives a later cancel
	ss.TogglePick(rayAt(1, 0))
	ss.ApplyWorldDelta(math32.Vec3(0, 1, 0))
	ss.CancelToBaseline()
	assert.Equal(t, after, ms.Vertex)
}

func TestSetExplodeClearsSelection(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	ss.TogglePick(rayAt(0, 0))
	assert.True(t, ss.HasSelection())

	ss.SetExplode(true)
	assert.False(t, ss.HasSelection())

	// explode: picking the same point selects one raw vertex
	ss.TogglePick(rayAt(0, 0))
	sel := ss.Selection()
	assert.Equal(t, 1, len(sel))
	assert.Equal(t, []int{0}, sel[0].Indices)
}

func TestOptions(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	assert.True(t, ss.Option("verts"))
	assert.False(t, ss.Option("edges"))
	assert.False(t, ss.Option("explode"))
	assert.False(t, ss.Option("bogus"))

	ss.SetOption("edges", true)
	assert.True(t, ss.Edges)
	ss.SetOption("explode", true)
	assert.True(t, ss.Explode())
	ss.SetOption("bogus", true)
	assert.False(t, ss.Option("bogus"))
}

func TestNotifications(t *testing.T) {
	ms := scenarioMesh()
	ss := NewSession(ms)
	selN, geoN := 0, 0
	ss.OnSelectionChange(func() { selN++ })
	ss.OnGeometryChange(func() { geoN++ })

	ss.TogglePick(rayAt(0, 0))
	assert.Equal(t, 1, selN)
	ss.TogglePick(rayAt(0, 0))
	assert.Equal(t, 2, selN)
	ss.TogglePick(rayAt(0, 0))
	assert.Equal(t, 3, selN)

	ss.ApplyWorldDelta(math32.Vec3(1, 0, 0))
	assert.Equal(t, 1, geoN)

	ss.ClearSelection()
	assert.Equal(t, 4, selN)
	ss.ClearSelection() // already empty: no notification
	assert.Equal(t, 4, selN)
}

func TestEdgeAndFacePick(t *testing.T) {
	pl := mesh.NewPlane("plane", 2, 2)
	ss := NewSession(pl)
	ss.Verts = false
	ss.Edges = true
	ss.Faces = true

	// edge wins over face when both are in range
	assert.True(t, ss.TogglePick(rayAt(1, 0.2)))
	sel := ss.Selection()
	assert.Equal(t, 1, len(sel))
	assert.Equal(t, Edge, sel[0].Kind)
	assert.Equal(t, []int{1, 2}, sel[0].Indices)
	assert.Equal(t, "e:1-2", sel[0].Key)

	// interior hit picks the face
	assert.True(t, ss.TogglePick(rayAt(-0.5, 0.5)))
	sel = ss.Selection()
	assert.Equal(t, 2, len(sel))
	assert.Equal(t, Face, sel[1].Kind)
	assert.Equal(t, []int{0, 2, 3}, sel[1].Indices)
	assert.Equal(t, "f:0-2-3", sel[1].Key)

	// union holds shared indices once
	assert.Equal(t, []int{0, 1, 2, 3}, ss.indexUnion())
}
