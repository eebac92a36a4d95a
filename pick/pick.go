// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pick implements ray-based hit testing against the raw elements
of a mesh: vertices, triangle edges, and triangle faces. A world-space
ray goes in; the picked element's vertex indices and the world-space
hit point come out. Selection semantics on top of raw hits (grouping,
toggling) belong to the subedit package.
*/
package pick

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/meshedit/mesh"
)

// Params are the pick tolerances, in mesh-local units.
type Params struct {

	// VertexRadius is the maximum distance from the ray for a vertex
	// to be picked.
	VertexRadius float32 `default:"0.05"`

	// EdgeRadius is the maximum distance from the ray for an edge to
	// be picked.
	EdgeRadius float32 `default:"0.05"`
}

// Defaults sets default parameter values.
func (pr *Params) Defaults() {
	pr.VertexRadius = 0.05
	pr.EdgeRadius = 0.05
}

// rayEpsilon rejects degenerate triangles and parallel closest-point
// systems.
const rayEpsilon = 1e-7

// localRay returns the ray transformed into the mesh's local space
// with the full inverse world transform, translation included
// (picking is positional, unlike delta transforms). The direction is
// renormalized.
func localRay(ms *mesh.Mesh, ray math32.Ray) math32.Ray {
	inv, _ := ms.Pose.WorldMatrix.Inverse()
	return math32.Ray{
		Origin: ray.Origin.MulMatrix4AsVector4(inv, 1),
		Dir:    ray.Dir.MulMatrix4AsVector4(inv, 0).Normal(),
	}
}

// toWorld returns the local point through the mesh's world transform.
func toWorld(ms *mesh.Mesh, pos math32.Vector3) math32.Vector3 {
	return pos.MulMatrix4AsVector4(&ms.Pose.WorldMatrix, 1)
}

// rejectBox reports whether the local ray provably misses every
// element of the mesh: outside the bounding box grown by the pick
// radius. A mesh without computed bounds is never rejected.
func rejectBox(ms *mesh.Mesh, lray math32.Ray, radius float32) bool {
	if ms.BBox.IsEmpty() {
		return false
	}
	bb := math32.Box3{Min: ms.BBox.Min.SubScalar(radius), Max: ms.BBox.Max.AddScalar(radius)}
	_, has := lray.IntersectBox(bb)
	return !has
}

// rayPoint returns the distance from the point to the ray, and the
// ray parameter of the closest approach, clamped to the ray start.
func rayPoint(ray math32.Ray, pos math32.Vector3) (dist, t float32) {
	t = pos.Sub(ray.Origin).Dot(ray.Dir)
	if t < 0 {
		t = 0
	}
	return pos.DistanceTo(ray.Origin.Add(ray.Dir.MulScalar(t))), t
}

// raySegment returns the closest approach between the ray and the
// segment from a to b: the distance, the ray parameter, and the
// closest point on the segment.
func raySegment(ray math32.Ray, a, b math32.Vector3) (dist, t float32, pt math32.Vector3) {
	u := b.Sub(a)
	w := ray.Origin.Sub(a)
	ud := ray.Dir.Dot(u)
	uu := u.Dot(u)
	dw := ray.Dir.Dot(w)
	uw := u.Dot(w)
	den := uu - ud*ud
	s := float32(0)
	if den > rayEpsilon {
		s = math32.Clamp((uw-dw*ud)/den, 0, 1)
	} else if uu > rayEpsilon {
		s = math32.Clamp(uw/uu, 0, 1)
	}
	t = s*ud - dw
	if t < 0 {
		t = 0
		if uu > rayEpsilon {
			s = math32.Clamp(uw/uu, 0, 1)
		}
	}
	pt = a.Add(u.MulScalar(s))
	return pt.DistanceTo(ray.Origin.Add(ray.Dir.MulScalar(t))), t, pt
}

// triHit returns the ray parameter of the intersection with the
// triangle v0, v1, v2 (Möller-Trumbore, both windings accepted), and
// whether it hits in front of the ray origin.
func triHit(ray math32.Ray, v0, v1, v2 math32.Vector3) (float32, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < rayEpsilon {
		return 0, false
	}
	idet := 1 / det
	tv := ray.Origin.Sub(v0)
	u := tv.Dot(p) * idet
	if u < 0 || u > 1 {
		return 0, false
	}
	q := tv.Cross(e1)
	v := ray.Dir.Dot(q) * idet
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * idet
	if t <= rayEpsilon {
		return 0, false
	}
	return t, true
}

// Vertex returns the vertex nearest the ray within the given radius,
// with its world-space position, and whether anything was in range.
// Smallest distance to the ray wins; equal distances (coincident
// duplicates) go to the lowest index.
func Vertex(ms *mesh.Mesh, ray math32.Ray, radius float32) (int, math32.Vector3, bool) {
	lray := localRay(ms, ray)
	if rejectBox(ms, lray, radius) {
		return -1, math32.Vector3{}, false
	}
	best := -1
	var bestD, bestT float32
	for i := range ms.NumVertex() {
		d, t := rayPoint(lray, ms.VertexPos(i))
		if d > radius {
			continue
		}
		if best < 0 || d < bestD || (d == bestD && t < bestT) {
			best, bestD, bestT = i, d, t
		}
	}
	if best < 0 {
		return -1, math32.Vector3{}, false
	}
	return best, toWorld(ms, ms.VertexPos(best)), true
}

// Edge returns the triangle edge nearest the ray within the given
// radius, as its endpoint vertex indices in stored order, with the
// world-space closest point on the edge, and whether anything was in
// range. Every triangle contributes its three edges; shared edges of
// duplicated-vertex meshes appear once per face, and whichever scans
// first wins ties.
func Edge(ms *mesh.Mesh, ray math32.Ray, radius float32) ([2]int, math32.Vector3, bool) {
	lray := localRay(ms, ray)
	if rejectBox(ms, lray, radius) {
		return [2]int{}, math32.Vector3{}, false
	}
	var bestPair [2]int
	var bestPt math32.Vector3
	best := false
	var bestD, bestT float32
	ni := ms.NumIndex()
	for fi := 0; fi < ni; fi += 3 {
		for k := range 3 {
			a := int(ms.Index[fi+k])
			b := int(ms.Index[fi+(k+1)%3])
			d, t, pt := raySegment(lray, ms.VertexPos(a), ms.VertexPos(b))
			if d > radius {
				continue
			}
			if !best || d < bestD || (d == bestD && t < bestT) {
				best, bestD, bestT = true, d, t
				bestPair = [2]int{a, b}
				bestPt = pt
			}
		}
	}
	if !best {
		return [2]int{}, math32.Vector3{}, false
	}
	return bestPair, toWorld(ms, bestPt), true
}

// Face returns the triangle the ray hits first, as its corner vertex
// indices in stored order, with the world-space hit point, and whether
// anything was hit.
func Face(ms *mesh.Mesh, ray math32.Ray) ([3]int, math32.Vector3, bool) {
	lray := localRay(ms, ray)
	if rejectBox(ms, lray, 0) {
		return [3]int{}, math32.Vector3{}, false
	}
	best := -1
	var bestT float32
	ni := ms.NumIndex()
	for fi := 0; fi < ni; fi += 3 {
		v0 := ms.VertexPos(int(ms.Index[fi]))
		v1 := ms.VertexPos(int(ms.Index[fi+1]))
		v2 := ms.VertexPos(int(ms.Index[fi+2]))
		t, ok := triHit(lray, v0, v1, v2)
		if !ok {
			continue
		}
		if best < 0 || t < bestT {
			best, bestT = fi, t
		}
	}
	if best < 0 {
		return [3]int{}, math32.Vector3{}, false
	}
	tri := [3]int{int(ms.Index[best]), int(ms.Index[best+1]), int(ms.Index[best+2])}
	return tri, toWorld(ms, lray.Origin.Add(lray.Dir.MulScalar(bestT))), true
}
