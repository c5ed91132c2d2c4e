// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent)
	Pos math32.Vector3

	// Rot is the rotation of the element, as Euler angles in radians,
	// applied in X, Y, Z order.
	Rot math32.Vector3

	// Scale is the scale of the element (relative to parent)
	Scale math32.Vector3

	// Matrix is the local matrix of the element, computed from the above.
	Matrix math32.Matrix4

	// WorldMatrix is the world matrix: parent world * local.
	WorldMatrix math32.Matrix4
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
}

// UpdateMatrix updates the local transform matrix based on its
// position, rotation and scale.
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, math32.NewQuatEuler(ps.Rot), ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on
// the local matrix and the given parent world matrix.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	ps.UpdateMatrix()
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}
