// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

import (
	"fmt"
	"strconv"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
)

// Groups is the partition of a mesh's vertices into logical points.
// In merge mode, vertices whose positions land in the same quantization
// cell form one group, so meshes supplied with duplicated vertices per
// face behave as if they had shared-vertex topology. In explode mode
// every vertex is its own group.
type Groups struct {

	// Cells has the vertex indices of each group, keyed by the group's
	// cell key, in order of first occurrence. The keylist gives map
	// lookup plus a deterministic iteration order, which the weld scan
	// relies on for stable tie-breaking.
	Cells *keylist.List[string, []int]

	// Cell is the cell key of each vertex index.
	Cell []string
}

// cellKey returns the quantization cell key for a position: each
// coordinate rounded to the nearest epsilon step, joined as integer
// cell ids. Positions within epsilon of each other land in the same
// cell; a difference beyond epsilon in any axis changes the key.
func cellKey(pos math32.Vector3, epsilon float32) string {
	cx := int64(math32.Round(pos.X / epsilon))
	cy := int64(math32.Round(pos.Y / epsilon))
	cz := int64(math32.Round(pos.Z / epsilon))
	return fmt.Sprintf("%d,%d,%d", cx, cy, cz)
}

// MakeGroups computes the vertex grouping of the mesh at the given
// quantization epsilon, in linear time over the vertex count.
// If explode is true, grouping degenerates to one singleton group per
// vertex, keyed by the raw index.
func MakeGroups(ms *mesh.Mesh, epsilon float32, explode bool) *Groups {
	nv := ms.NumVertex()
	gs := &Groups{Cells: keylist.New[string, []int](), Cell: make([]string, nv)}
	for i := range nv {
		key := ""
		if explode {
			key = strconv.Itoa(i)
		} else {
			key = cellKey(ms.VertexPos(i), epsilon)
		}
		gs.Cell[i] = key
		gs.Cells.Set(key, append(gs.Cells.At(key), i))
	}
	return gs
}

// Of returns the vertex indices in the same group as the given vertex,
// in index order. Returns nil for an out-of-range index.
func (gs *Groups) Of(vi int) []int {
	if vi < 0 || vi >= len(gs.Cell) {
		return nil
	}
	return gs.Cells.At(gs.Cell[vi])
}
