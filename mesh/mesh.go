// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides an editable triangle mesh with local-space
// vertex positions, derived normals and bounds, a world-transform pose,
// and a generation counter that tracks position mutations so that
// derived caches can rebuild lazily.
package mesh

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/math32"
)

// Mesh is an arbitrary indexed triangle mesh, storing its values.
// Vertex positions are local-space; the Pose holds the world transform.
// Meshes commonly arrive with duplicated per-face vertices (no shared
// topology), which is why editing operates on position-coincident
// groups rather than raw indices.
type Mesh struct {

	// Name is the name of the mesh, which serves as its stable identity
	// for edit actions and host lookup.
	Name string

	// Meta has optional metadata about the mesh (e.g., source file, format).
	Meta metadata.Data

	// Vertex has the local-space vertex positions, as packed xyz triples.
	Vertex math32.ArrayF32

	// Normal has the vertex normals, as packed xyz triples.
	Normal math32.ArrayF32

	// TexCoord has the texture coordinates, as packed uv pairs.
	TexCoord math32.ArrayF32

	// Index has the triangle vertex indexes, 3 per triangle.
	Index math32.ArrayU32

	// BBox is the local-space bounding box, per [Mesh.UpdateBounds].
	BBox math32.Box3

	// Pose is the world transform (position, scale, rotation).
	Pose Pose

	// generation counts position mutations; see [Mesh.Generation].
	generation uint64
}

// NewMesh returns a new empty mesh with the given name,
// with the pose set to defaults (identity transform).
func NewMesh(name string) *Mesh {
	ms := &Mesh{Name: name}
	ms.Pose.Defaults()
	ms.Pose.UpdateMatrix()
	ms.Pose.UpdateWorldMatrix(nil)
	return ms
}

// NumVertex returns the number of vertex points.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex) / 3
}

// NumIndex returns the number of triangle indexes.
func (ms *Mesh) NumIndex() int {
	return len(ms.Index)
}

// Generation returns the position generation counter, which changes
// whenever vertex positions are mutated through any path. Anything
// cached against a previous generation is stale.
func (ms *Mesh) Generation() uint64 {
	return ms.generation
}

// NoteMutated records that vertex positions were changed by some
// external path (not through [Mesh.SetVertexPos] or
// [Mesh.SetPositions]), so that derived caches rebuild.
func (ms *Mesh) NoteMutated() {
	ms.generation++
}

// VertexPos returns the local position of vertex i.
func (ms *Mesh) VertexPos(i int) math32.Vector3 {
	j := i * 3
	return math32.Vec3(ms.Vertex[j], ms.Vertex[j+1], ms.Vertex[j+2])
}

// SetVertexPos sets the local position of vertex i,
// bumping the generation counter.
func (ms *Mesh) SetVertexPos(i int, v math32.Vector3) {
	ms.Vertex.SetVector3(i*3, v)
	ms.generation++
}

//////// 	Position buffer snapshot

// CopyPositions returns a full copy of the current vertex position
// buffer, for baseline snapshots.
func (ms *Mesh) CopyPositions() math32.ArrayF32 {
	return slices.Clone(ms.Vertex)
}

// SetPositions overwrites the entire vertex position buffer in one
// atomic copy, bumping the generation counter. The incoming buffer
// must have the same length as the current one.
func (ms *Mesh) SetPositions(pos math32.ArrayF32) error {
	if len(pos) != len(ms.Vertex) {
		return fmt.Errorf("mesh.SetPositions: buffer length %d != current %d for mesh %q", len(pos), len(ms.Vertex), ms.Name)
	}
	copy(ms.Vertex, pos)
	ms.generation++
	return nil
}

//////// 	Derived attributes

// UpdateBounds recomputes BBox from the current vertex positions.
func (ms *Mesh) UpdateBounds() {
	ms.BBox.SetEmpty()
	n := ms.NumVertex()
	for i := range n {
		ms.BBox.ExpandByPoint(ms.VertexPos(i))
	}
}

// UpdateDerived recomputes all derived attributes (normals, bounds)
// after a position mutation.
func (ms *Mesh) UpdateDerived() {
	ms.ComputeNormals()
	ms.UpdateBounds()
}
