// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package subedit implements interactive subcomponent editing of triangle
meshes: selecting vertex groups, edges, and faces, moving them with
world-space deltas, welding a moved selection onto nearby geometry, and
building invertible action records for undo and redo.

Vertices are grouped by quantized position, so meshes supplied with
duplicated vertices per face (no shared-vertex topology) still edit as
logical points: picking one vertex selects and moves all of its
coincident duplicates. Explode mode turns grouping off, making every
raw vertex independent.

All state for one edit lives in a [Session], owned and driven by the
host. Sessions are single-threaded and cooperative: every operation
completes synchronously before the next, and the session is the sole
mutator of mesh positions during an edit; renderers are readers.
Nothing-to-do conditions (empty selection, zero-length delta, absent
weld candidate) are silent no-ops, never errors.
*/
package subedit

import (
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
	"cogentcore.org/meshedit/pick"
)

// Session is one subcomponent editing session on one mesh. It owns the
// selection, the baseline snapshot, the accumulated delta, and the
// grouping cache; the host owns the mesh and the undo stack. Use
// [NewSession]; the zero value has no mesh.
type Session struct {

	// Mesh is the mesh being edited.
	Mesh *mesh.Mesh

	// Params are the session parameters, copied at creation.
	Params Params

	// Pick are the picking parameters used by [Session.TogglePick].
	Pick pick.Params

	// Verts enables picking of vertex groups.
	Verts bool

	// Edges enables picking of edges.
	Edges bool

	// Faces enables picking of faces.
	Faces bool

	// explode switches grouping to per-index mode. Set through
	// SetExplode, which clears the selection.
	explode bool

	// selection is the insertion-ordered selection, keyed by
	// canonical selection key.
	selection keylist.List[string, *SelectionEntry]

	// baseline is the position snapshot that CancelToBaseline restores.
	baseline math32.ArrayF32

	// accum is the net local-space delta since the last commit.
	accum math32.Vector3

	// groups is the cached vertex grouping, valid for groupsGen and
	// groupsExplode only.
	groups        *Groups
	groupsGen     uint64
	groupsExplode bool

	// selChange and geoChange are the notification listeners.
	selChange []func()
	geoChange []func()
}

// NewSession returns a new editing session on the given mesh, with
// default parameters, vertex-group picking enabled, and the baseline
// captured from the mesh's current positions.
func NewSession(ms *mesh.Mesh) *Session {
	ss := &Session{Mesh: ms}
	ss.Params.Defaults()
	ss.Pick.Defaults()
	ss.Verts = true
	ss.SetBaselineFromCurrent()
	return ss
}

//////// 	Grouping

// Groups returns the current vertex grouping, rebuilding it whenever
// the mesh generation or the explode mode has moved since the last
// build. Hosts that mutate positions outside this session must call
// [mesh.Mesh.NoteMutated] so the rebuild triggers.
func (ss *Session) Groups() *Groups {
	gen := ss.Mesh.Generation()
	if ss.groups == nil || ss.groupsGen != gen || ss.groupsExplode != ss.explode {
		ss.groups = MakeGroups(ss.Mesh, ss.Params.Epsilon, ss.explode)
		ss.groupsGen = gen
		ss.groupsExplode = ss.explode
	}
	return ss.groups
}

//////// 	Options

// SetExplode sets explode mode, where every raw vertex is its own
// logical point. Changing the mode clears the selection: keys computed
// under one mode are meaningless under the other.
func (ss *Session) SetExplode(on bool) {
	if ss.explode == on {
		return
	}
	ss.explode = on
	ss.ClearSelection()
}

// Explode reports whether explode mode is active.
func (ss *Session) Explode() bool {
	return ss.explode
}

// SetOption sets the named option flag: verts, edges, faces, explode.
// Unrecognized names are ignored.
func (ss *Session) SetOption(name string, on bool) {
	switch name {
	case "verts":
		ss.Verts = on
	case "edges":
		ss.Edges = on
	case "faces":
		ss.Faces = on
	case "explode":
		ss.SetExplode(on)
	}
}

// Option returns the named option flag, false for unrecognized names.
func (ss *Session) Option(name string) bool {
	switch name {
	case "verts":
		return ss.Verts
	case "edges":
		return ss.Edges
	case "faces":
		return ss.Faces
	case "explode":
		return ss.explode
	}
	return false
}

//////// 	Selection

// togglePick toggles the entry with the given canonical key: removes
// it if present, otherwise appends a new entry with its centroid
// computed from current positions.
func (ss *Session) togglePick(kind Kinds, key string, indices []int) {
	if !ss.selection.DeleteByKey(key) {
		ent := &SelectionEntry{Kind: kind, Key: key, Indices: indices,
			CentroidLocal: Centroid(ss.Mesh, indices)}
		ss.selection.Set(key, ent)
	}
	ss.sendSelectionChange()
}

// TogglePick picks against the enabled subcomponent kinds with the
// given world-space ray, and toggles the hit element in the selection:
// out if it was selected, in if not. Kinds are tried in priority
// order vertex groups, edges, faces. Reports whether the selection
// changed; false means nothing was hit.
func (ss *Session) TogglePick(ray math32.Ray) bool {
	if ss.Mesh == nil || ss.Mesh.NumVertex() == 0 {
		return false
	}
	if ss.Verts {
		if vi, _, ok := pick.Vertex(ss.Mesh, ray, ss.Pick.VertexRadius); ok {
			gs := ss.Groups()
			ss.togglePick(VertexGroup, GroupKey(gs.Cell[vi]), slices.Clone(gs.Of(vi)))
			return true
		}
	}
	if ss.Edges {
		if pair, _, ok := pick.Edge(ss.Mesh, ray, ss.Pick.EdgeRadius); ok {
			idxs := []int{pair[0], pair[1]}
			slices.Sort(idxs)
			ss.togglePick(Edge, EdgeKey(pair[0], pair[1]), idxs)
			return true
		}
	}
	if ss.Faces {
		if tri, _, ok := pick.Face(ss.Mesh, ray); ok {
			idxs := []int{tri[0], tri[1], tri[2]}
			slices.Sort(idxs)
			ss.togglePick(Face, FaceKey(tri[0], tri[1], tri[2]), idxs)
			return true
		}
	}
	return false
}

// ClearSelection empties the selection unconditionally and recaptures
// the baseline from the mesh's current positions, so a later cancel
// does not discard work that predates the clear.
func (ss *Session) ClearSelection() {
	changed := ss.selection.Len() > 0
	ss.selection.Reset()
	ss.SetBaselineFromCurrent()
	if changed {
		ss.sendSelectionChange()
	}
}

// HasSelection reports whether anything is selected.
func (ss *Session) HasSelection() bool {
	return ss.selection.Len() > 0
}

// Selection returns the current selection entries in insertion order.
// The returned slice is the session's own; callers must not modify it.
func (ss *Session) Selection() []*SelectionEntry {
	return ss.selection.Values
}

// SelectionCenterLocal returns the mean of the selection entries'
// centroids in mesh-local space, and false if the selection is empty.
func (ss *Session) SelectionCenterLocal() (math32.Vector3, bool) {
	n := ss.selection.Len()
	if n == 0 {
		return math32.Vector3{}, false
	}
	var sum math32.Vector3
	for _, ent := range ss.selection.Values {
		sum.SetAdd(ent.CentroidLocal)
	}
	return sum.DivScalar(float32(n)), true
}

// SelectionCenterWorld returns the selection center through the mesh's
// world transform, and false if the selection is empty. This is where
// a host places its manipulation handle.
func (ss *Session) SelectionCenterWorld() (math32.Vector3, bool) {
	ctr, ok := ss.SelectionCenterLocal()
	if !ok {
		return ctr, false
	}
	return ctr.MulMatrix4AsVector4(&ss.Mesh.Pose.WorldMatrix, 1), true
}

// indexUnion returns the deduplicated union of all selection entry
// indices, sorted ascending. An index can appear in more than one
// entry, such as a vertex shared by a selected edge and a selected
// vertex group; the union holds it once.
func (ss *Session) indexUnion() []int {
	seen := map[int]bool{}
	var un []int
	for _, ent := range ss.selection.Values {
		for _, vi := range ent.Indices {
			if !seen[vi] {
				seen[vi] = true
				un = append(un, vi)
			}
		}
	}
	slices.Sort(un)
	return un
}

// refreshCentroids recomputes from current positions the centroid of
// every selection entry intersecting the given index set; a nil set
// refreshes every entry.
func (ss *Session) refreshCentroids(touched map[int]bool) {
	for _, ent := range ss.selection.Values {
		if touched != nil && !containsAny(ent.Indices, touched) {
			continue
		}
		ent.CentroidLocal = Centroid(ss.Mesh, ent.Indices)
	}
}

// containsAny reports whether any of the indices is in the set.
func containsAny(indices []int, set map[int]bool) bool {
	for _, vi := range indices {
		if set[vi] {
			return true
		}
	}
	return false
}

//////// 	Baseline

// SetBaselineFromCurrent captures the baseline snapshot from the
// mesh's current positions. [Session.CancelToBaseline] restores it.
func (ss *Session) SetBaselineFromCurrent() {
	ss.baseline = ss.Mesh.CopyPositions()
}

// CancelToBaseline restores the entire position buffer from the
// baseline snapshot in one atomic copy, discarding every change since
// the baseline was captured, committed or not. It is not an undo
// replay, and the host's history stack is untouched. Selection entry
// centroids are refreshed from the restored positions, derived
// attributes recomputed, and the accumulated delta zeroed.
func (ss *Session) CancelToBaseline() {
	if ss.baseline == nil {
		return
	}
	if errors.Log(ss.Mesh.SetPositions(ss.baseline)) != nil {
		return
	}
	ss.accum = math32.Vector3{}
	ss.refreshCentroids(nil)
	ss.Mesh.UpdateDerived()
	ss.sendGeometryChange()
}

//////// 	Notifications

// OnSelectionChange registers a listener called synchronously after
// every selection mutation. Visual selection markers are a host
// concern, driven from here.
func (ss *Session) OnSelectionChange(fn func()) {
	ss.selChange = append(ss.selChange, fn)
}

// OnGeometryChange registers a listener called synchronously after
// every position mutation this session performs.
func (ss *Session) OnGeometryChange(fn func()) {
	ss.geoChange = append(ss.geoChange, fn)
}

func (ss *Session) sendSelectionChange() {
	for _, fn := range ss.selChange {
		fn()
	}
}

func (ss *Session) sendGeometryChange() {
	for _, fn := range ss.geoChange {
		fn()
	}
}
