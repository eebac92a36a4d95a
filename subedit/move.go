// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

import "cogentcore.org/core/math32"

// LocalDelta converts a world-space translation into mesh-local space,
// applying the inverse of the mesh's world orientation and scale only.
// Multiplying as a direction (w = 0) excludes the translation
// component: stored positions are local, the manipulation handle
// reports world-space motion, and including translation would offset
// the delta by the mesh's own position.
func (ss *Session) LocalDelta(worldDelta math32.Vector3) math32.Vector3 {
	inv, _ := ss.Mesh.Pose.WorldMatrix.Inverse()
	return worldDelta.MulMatrix4AsVector4(inv, 0)
}

// AccumulatedDelta returns the net local-space translation applied to
// the selection since the last commit. Zero exactly when there is
// nothing uncommitted.
func (ss *Session) AccumulatedDelta() math32.Vector3 {
	return ss.accum
}

// ApplyWorldDelta applies a world-space translation to the current
// selection: every position in the deduplicated union of the selected
// indices moves by the local-space delta exactly once, entry centroids
// and the accumulated delta move with it, and derived attributes are
// recomputed. A no-op when the selection is empty. Applying d1 then d2
// is equivalent to applying d1+d2 once, within float tolerance; drags
// call this repeatedly with incremental deltas.
func (ss *Session) ApplyWorldDelta(worldDelta math32.Vector3) {
	if !ss.HasSelection() {
		return
	}
	ss.applyLocalDelta(ss.LocalDelta(worldDelta))
}

// applyLocalDelta is [Session.ApplyWorldDelta] below the coordinate
// transform: weld snapping computes its delta directly in local space.
func (ss *Session) applyLocalDelta(localDelta math32.Vector3) {
	ss.applyToIndices(ss.indexUnion(), localDelta)
	for _, ent := range ss.selection.Values {
		ent.CentroidLocal.SetAdd(localDelta)
	}
	ss.accum.SetAdd(localDelta)
	ss.sendGeometryChange()
}

// applyToIndices adds the local delta to each of the given vertex
// positions exactly once, and has the mesh recompute its derived
// attributes (normals, bounds). This is the one position-update
// primitive, shared by ordinary drags, weld snapping, and action
// replay; the position writes move the mesh generation, which is what
// invalidates the grouping cache.
func (ss *Session) applyToIndices(indices []int, localDelta math32.Vector3) {
	for _, vi := range indices {
		ss.Mesh.SetVertexPos(vi, ss.Mesh.VertexPos(vi).Add(localDelta))
	}
	ss.Mesh.UpdateDerived()
}
