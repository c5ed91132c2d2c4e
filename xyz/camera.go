// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Camera defines the properties of a perspective camera looking
// from Pos toward Target.
type Camera struct {

	// Pos is the camera position in world coordinates.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// UpDir is the up direction of the camera, normally +Y.
	UpDir math32.Vector3

	// FOV is the vertical field of view, in degrees.
	FOV float32

	// Near is the distance of the near clipping plane.
	Near float32

	// Far is the distance of the far clipping plane.
	Far float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// tanHalf is the tangent of half the FOV, set by UpdateProjectionMatrix.
	tanHalf float32
}

// Defaults sets the default camera parameters:
// 75 degree field of view, near 0.1, far 1000.
func (cm *Camera) Defaults() {
	cm.FOV = 75
	cm.Near = 0.1
	cm.Far = 1000
	cm.Aspect = 1
	cm.UpDir = math32.Vec3(0, 1, 0)
	cm.Pos = math32.Vec3(0, 0, 10)
	cm.Target = math32.Vector3{}
	cm.UpdateProjectionMatrix()
}

// UpdateProjectionMatrix must be called after changing FOV, Near, Far
// or Aspect.
func (cm *Camera) UpdateProjectionMatrix() {
	cm.tanHalf = math32.Tan(math32.DegToRad(cm.FOV) / 2)
}

// LookAt points the camera at the given target.
func (cm *Camera) LookAt(target math32.Vector3) {
	cm.Target = target
}

// Basis returns the right, up and forward unit vectors of the camera view.
func (cm *Camera) Basis() (right, up, fwd math32.Vector3) {
	fwd = cm.Target.Sub(cm.Pos).Normal()
	right = fwd.Cross(cm.UpDir)
	if right.LengthSquared() == 0 { // looking straight along UpDir
		right = math32.Vec3(1, 0, 0)
	} else {
		right.SetNormal()
	}
	up = right.Cross(fwd)
	return
}

// RayFromNDC returns the ray from the camera through the given
// normalized device coordinates, with x and y in [-1, 1] and +y up.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) *math32.Ray {
	right, up, fwd := cm.Basis()
	dir := fwd.Add(right.MulScalar(ndc.X * cm.tanHalf * cm.Aspect)).Add(up.MulScalar(ndc.Y * cm.tanHalf))
	return math32.NewRay(cm.Pos, dir.Normal())
}

// Project returns the normalized device coordinates of the given world
// point and its depth along the view direction. It returns false if the
// point is outside the near and far planes.
func (cm *Camera) Project(p math32.Vector3) (ndc math32.Vector2, depth float32, ok bool) {
	right, up, fwd := cm.Basis()
	d := p.Sub(cm.Pos)
	depth = d.Dot(fwd)
	if depth < cm.Near || depth > cm.Far {
		return ndc, depth, false
	}
	ndc.X = d.Dot(right) / (depth * cm.tanHalf * cm.Aspect)
	ndc.Y = d.Dot(up) / (depth * cm.tanHalf)
	return ndc, depth, true
}

// Distance returns the distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.Pos.DistanceTo(cm.Target)
}
