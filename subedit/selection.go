// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subedit

import (
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
)

// Kinds is the kind of subcomponent a selection entry refers to.
type Kinds int32

const (
	// VertexGroup selects one logical point: all coincident vertices
	// in one quantization cell, or a single vertex in explode mode.
	VertexGroup Kinds = iota

	// Edge selects the two endpoint vertices of a triangle edge.
	Edge

	// Face selects the three corner vertices of a triangle.
	Face
)

func (kn Kinds) String() string {
	switch kn {
	case Edge:
		return "edge"
	case Face:
		return "face"
	}
	return "vertex-group"
}

// SelectionEntry is one selected subcomponent: its kind, canonical key,
// the affected vertex indices, and the local-space centroid of those
// vertices. The centroid is set from positions when the entry is
// created and then moved by the same delta as the positions, so it
// stays exactly the mean without recomputation.
type SelectionEntry struct {

	// Kind is the subcomponent kind.
	Kind Kinds

	// Key is the canonical selection key: deterministic for the same
	// logical element regardless of pick order.
	Key string

	// Indices are the affected vertex indices, sorted ascending.
	Indices []int

	// CentroidLocal is the arithmetic mean of the indexed positions,
	// in mesh-local space.
	CentroidLocal math32.Vector3
}

//////// 	Canonical keys

// GroupKey returns the canonical selection key for a vertex group,
// from its quantization cell key.
func GroupKey(cell string) string {
	return "g:" + cell
}

// EdgeKey returns the canonical selection key for an edge between two
// vertex indices, independent of the order they are given in.
func EdgeKey(a, b int) string {
	if b < a {
		a, b = b, a
	}
	return "e:" + strconv.Itoa(a) + "-" + strconv.Itoa(b)
}

// FaceKey returns the canonical selection key for a triangle face,
// independent of the order the corners are given in.
func FaceKey(a, b, c int) string {
	if b < a {
		a, b = b, a
	}
	if c < b {
		b, c = c, b
		if b < a {
			a, b = b, a
		}
	}
	return "f:" + strconv.Itoa(a) + "-" + strconv.Itoa(b) + "-" + strconv.Itoa(c)
}

// Centroid returns the arithmetic mean of the given vertex positions,
// in mesh-local space. Returns the zero vector for no indices.
func Centroid(ms *mesh.Mesh, indices []int) math32.Vector3 {
	var sum math32.Vector3
	if len(indices) == 0 {
		return sum
	}
	for _, vi := range indices {
		sum.SetAdd(ms.VertexPos(vi))
	}
	return sum.DivScalar(float32(len(indices)))
}
