// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

import "cogentcore.org/core/math32"

// ActionType is the type tag of subcomponent edit action records.
const ActionType = "subEdit"

// commitEpsilon is the squared-length threshold below which an
// accumulated delta counts as nothing meaningful moved.
const commitEpsilon = 1e-12

// Vec is a 3D vector in the wire form used by action records.
type Vec struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// VecOf returns the wire form of the given vector.
func VecOf(v math32.Vector3) Vec {
	return Vec{v.X, v.Y, v.Z}
}

// V returns the vector as a [math32.Vector3].
func (v Vec) V() math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

// Action is one immutable, invertible subcomponent edit record: the
// net local-space delta applied to a set of vertex indices. It is the
// only shape this package serializes; the host's undo stack owns the
// records once built.
type Action struct {

	// Type is always [ActionType].
	Type string `json:"type"`

	// TargetID identifies the edited mesh in the host's id space.
	TargetID string `json:"targetId"`

	// Indices are the affected vertex indices, deduplicated.
	Indices []int `json:"indices"`

	// Delta is the local-space translation that was applied.
	Delta Vec `json:"delta"`
}

// Commit converts the net movement since the last commit into an
// action record for the host's undo stack, and zeroes the
// accumulator. Returns nil when the selection is empty or nothing
// meaningful moved. The selection itself is kept, allowing continued
// editing of the same elements.
func (ss *Session) Commit(targetID string) *Action {
	if !ss.HasSelection() || ss.accum.LengthSquared() < commitEpsilon {
		return nil
	}
	act := &Action{
		Type:     ActionType,
		TargetID: targetID,
		Indices:  ss.indexUnion(),
		Delta:    VecOf(ss.accum),
	}
	ss.accum = math32.Vector3{}
	return act
}

// ApplyForward applies an action's delta to its indices: redo.
// Replay is not required to line up with the live selection, so the
// centroid of any current entry intersecting the replayed indices is
// recomputed from positions afterwards.
func (ss *Session) ApplyForward(act *Action) {
	if act == nil {
		return
	}
	ss.replay(act, act.Delta.V())
}

// ApplyInverse applies the negation of an action's delta to its
// indices: undo.
func (ss *Session) ApplyInverse(act *Action) {
	if act == nil {
		return
	}
	ss.replay(act, act.Delta.V().Negate())
}

func (ss *Session) replay(act *Action, localDelta math32.Vector3) {
	ss.applyToIndices(act.Indices, localDelta)
	touched := map[int]bool{}
	for _, vi := range act.Indices {
		touched[vi] = true
	}
	ss.refreshCentroids(touched)
	ss.sendGeometryChange()
}
