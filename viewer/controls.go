// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/surface"
	"cogentcore.org/orrery/xyz"
)

// DragThreshold is the pointer travel in css pixels beyond which a
// press and release is a drag rather than a click.
var DragThreshold = 3

// OrbitControls orbits a camera around a target in response to pointer
// drags and wheel motion, with optional damping and auto-rotation.
// Call Update once per frame.
type OrbitControls struct {
	Camera *xyz.Camera

	// Target is the point the camera orbits around.
	Target math32.Vector3

	// Damping is the fraction of the pending motion applied per frame;
	// 0 applies motion immediately.
	Damping float32

	EnableZoom bool

	// RotateSpeed scales drag rotation.
	RotateSpeed float32

	// ZoomScale is the dolly factor per wheel step.
	ZoomScale float32

	MinDistance, MaxDistance float32

	AutoRotate bool

	// AutoRotateSpeed is in turns per 60 seconds at 60 frames per second.
	AutoRotateSpeed float32

	// Height is the surface height in css pixels; drags across the full
	// height rotate a full turn.
	Height int

	dTheta, dPhi float32
	scale        float32
	pressed      bool
	last         image.Point
	travel       int
	dragged      bool
}

// NewOrbitControls returns controls for the camera with default parameters.
func NewOrbitControls(cam *xyz.Camera) *OrbitControls {
	oc := &OrbitControls{Camera: cam}
	oc.Defaults()
	return oc
}

func (oc *OrbitControls) Defaults() {
	oc.Damping = 0.05
	oc.EnableZoom = true
	oc.RotateSpeed = 1
	oc.ZoomScale = 0.95
	oc.MinDistance = 1
	oc.MaxDistance = 500
	oc.AutoRotateSpeed = 2
	oc.Height = 1
	oc.scale = 1
}

// Dragged returns whether the last pointer press ended a drag,
// in which case a click that follows it should be ignored.
func (oc *OrbitControls) Dragged() bool {
	return oc.dragged
}

// HandleEvent handles pointer and wheel events.
func (oc *OrbitControls) HandleEvent(ev *surface.Event) {
	switch ev.Type {
	case surface.PointerDown:
		oc.pressed = true
		oc.last = ev.Pos
		oc.travel = 0
		oc.dragged = false
	case surface.PointerMove:
		if !oc.pressed {
			return
		}
		d := ev.Pos.Sub(oc.last)
		oc.last = ev.Pos
		oc.travel += max(d.X, -d.X) + max(d.Y, -d.Y)
		oc.Rotate(float32(d.X), float32(d.Y))
	case surface.PointerUp:
		oc.pressed = false
		oc.dragged = oc.travel > DragThreshold
	case surface.Wheel:
		oc.Zoom(ev.Delta.Y)
	}
}

// Rotate rotates by the given pointer motion in css pixels.
func (oc *OrbitControls) Rotate(dx, dy float32) {
	h := float32(max(oc.Height, 1))
	oc.dTheta -= 2 * math32.Pi * dx / h * oc.RotateSpeed
	oc.dPhi -= 2 * math32.Pi * dy / h * oc.RotateSpeed
}

// Zoom dollies one step in for a negative delta and out for a positive one.
func (oc *OrbitControls) Zoom(delta int) {
	if !oc.EnableZoom || delta == 0 {
		return
	}
	if delta > 0 {
		oc.scale /= oc.ZoomScale
	} else {
		oc.scale *= oc.ZoomScale
	}
}

// AutoRotateAngle is the angle added per frame by auto-rotation.
func (oc *OrbitControls) AutoRotateAngle() float32 {
	return 2 * math32.Pi / 60 / 60 * oc.AutoRotateSpeed
}

// Update moves the camera by the pending motion, and returns whether it moved.
func (oc *OrbitControls) Update() bool {
	cam := oc.Camera
	offset := cam.Pos.Sub(oc.Target)
	radius := offset.Length()
	if radius == 0 {
		return false
	}
	theta := math32.Atan2(offset.X, offset.Z)
	phi := math32.Acos(math32.Clamp(offset.Y/radius, -1, 1))

	if oc.AutoRotate && !oc.pressed {
		oc.dTheta -= oc.AutoRotateAngle()
	}
	if oc.Damping > 0 {
		theta += oc.dTheta * oc.Damping
		phi += oc.dPhi * oc.Damping
	} else {
		theta += oc.dTheta
		phi += oc.dPhi
	}
	const eps = 1e-6
	phi = math32.Clamp(phi, eps, math32.Pi-eps)
	radius = math32.Clamp(radius*oc.scale, oc.MinDistance, oc.MaxDistance)

	sp := math32.Sin(phi)
	pos := oc.Target.Add(math32.Vec3(radius*sp*math32.Sin(theta), radius*math32.Cos(phi), radius*sp*math32.Cos(theta)))
	moved := pos.DistanceTo(cam.Pos) > 1e-4
	cam.Pos = pos
	cam.LookAt(oc.Target)

	if oc.Damping > 0 {
		oc.dTheta *= 1 - oc.Damping
		oc.dPhi *= 1 - oc.Damping
	} else {
		oc.dTheta, oc.dPhi = 0, 0
	}
	oc.scale = 1
	return moved
}
