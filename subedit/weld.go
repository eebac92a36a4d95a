// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

import "cogentcore.org/core/math32"

// WeldCandidate is a proposed weld target: non-selected geometry
// within [Params.WeldRadius] of the selection centroid, found after a
// move. Consumed by [Session.ApplyWeldSnap].
type WeldCandidate struct {

	// TargetKey is the canonical key of the target's vertex group.
	TargetKey string

	// TargetPositionLocal is the target position in mesh-local space.
	TargetPositionLocal math32.Vector3

	// Distance is the distance from the selection centroid to the
	// target position.
	Distance float32
}

// FindWeldCandidate searches for the nearest non-selected vertex group
// within WeldRadius of the selection centroid, so a host can offer to
// snap a just-moved selection onto the geometry it was dropped near.
// Returns nil if the selection is empty, explode mode is active
// (grouping is meaningless there), or nothing is in range.
//
// The search measures from the selection centroid to one
// representative vertex per group, costing one pass over the groups;
// near-coincidences between individual vertices of large, differently
// shaped groups can be missed, which is acceptable for the
// drop-near-a-point interactions this serves. Candidacy is decided
// per vertex, not per cell: a drag that lands exactly on its target
// puts the target in the same quantization cell as the selection, and
// the target must still be found there. The candidate is the
// non-selected remainder of such a cell, so it never shares an index
// with the selection.
func (ss *Session) FindWeldCandidate() *WeldCandidate {
	if ss.explode || !ss.HasSelection() {
		return nil
	}
	ctr, _ := ss.SelectionCenterLocal()
	selected := map[int]bool{}
	for _, vi := range ss.indexUnion() {
		selected[vi] = true
	}
	gs := ss.Groups()
	var best *WeldCandidate
	for ki, key := range gs.Cells.Keys {
		rep := -1
		for _, vi := range gs.Cells.Values[ki] {
			if !selected[vi] {
				rep = vi
				break
			}
		}
		if rep < 0 {
			continue
		}
		pos := ss.Mesh.VertexPos(rep)
		d := pos.DistanceTo(ctr)
		if d > ss.Params.WeldRadius {
			continue
		}
		if best == nil || d < best.Distance {
			best = &WeldCandidate{TargetKey: GroupKey(key),
				TargetPositionLocal: pos, Distance: d}
		}
	}
	return best
}

// ApplyWeldSnap moves the selection so its centroid lands exactly on
// the target position. The snap delta goes through the same path as
// ordinary movement, so positions, centroids, and the accumulated
// delta all stay consistent. A no-op when the selection is empty.
func (ss *Session) ApplyWeldSnap(targetPositionLocal math32.Vector3) {
	ctr, ok := ss.SelectionCenterLocal()
	if !ok {
		return
	}
	ss.applyLocalDelta(targetPositionLocal.Sub(ctr))
}

// WeldProposal is a pending weld decision. The engine only proposes;
// merging is always confirmed by the caller, which can present the
// decision however it likes (dialog, timer, auto-accept). Accept
// performs the snap; Decline discards it; either consumes the
// proposal.
type WeldProposal struct {

	// Candidate is the proposed weld target.
	Candidate WeldCandidate

	ss   *Session
	done bool
}

// ProposeWeld searches for a weld candidate and, if one exists, wraps
// it in a proposal carrying the accept/decline decision. Returns nil
// when there is no candidate.
func (ss *Session) ProposeWeld() *WeldProposal {
	wc := ss.FindWeldCandidate()
	if wc == nil {
		return nil
	}
	return &WeldProposal{Candidate: *wc, ss: ss}
}

// Accept performs the proposed snap. Only the first call on a
// proposal has any effect.
func (wp *WeldProposal) Accept() {
	if wp.done {
		return
	}
	wp.done = true
	wp.ss.ApplyWeldSnap(wp.Candidate.TargetPositionLocal)
}

// Decline discards the proposal without moving anything.
func (wp *WeldProposal) Decline() {
	wp.done = true
}
