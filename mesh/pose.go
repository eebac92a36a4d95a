// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// Pose contains the full specification of position and orientation,
// relative to the parent coordinate system (identity if unparented).
type Pose struct {

	// Pos is the position of the center of the mesh.
	Pos math32.Vector3

	// Scale is the scale along each dimension.
	Scale math32.Vector3

	// Quat is the rotation, specified as a Quat.
	Quat math32.Quat

	// Matrix is the local transform matrix, computed from Pos, Quat, Scale.
	Matrix math32.Matrix4

	// ParMatrix is the parent's world matrix, cached so the world matrix
	// can be updated independently.
	ParMatrix math32.Matrix4

	// WorldMatrix is the full world transform matrix: ParMatrix * Matrix.
	WorldMatrix math32.Matrix4
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix from Pos, Quat, Scale.
// Also checks for degenerate nil values.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world matrix from the local Matrix and
// the parent's world matrix, which is cached in ParMatrix. A nil
// parWorld reuses the cached parent, starting from identity.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld != nil {
		ps.ParMatrix = *parWorld
	} else if ps.ParMatrix == (math32.Matrix4{}) {
		ps.ParMatrix = *math32.Identity4()
	}
	ps.WorldMatrix.MulMatrices(&ps.ParMatrix, &ps.Matrix)
}

// Update updates the local and world matrices from current
// Pos, Quat, Scale values.
func (ps *Pose) Update() {
	ps.UpdateMatrix()
	ps.UpdateWorldMatrix(nil)
}

// SetEulerRotation sets the rotation from Euler angles in degrees.
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// EulerRotation returns the current rotation in Euler angles (degrees).
func (ps *Pose) EulerRotation() math32.Vector3 {
	return ps.Quat.ToEuler().MulScalar(math32.RadToDegFactor)
}

// SetAxisRotation sets the rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	var pos math32.Vector3
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}
