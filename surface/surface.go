// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the host container that a 3D view renders
// into: its size and pixel ratio, the events it delivers, and the
// frame callbacks it schedules. [Headless] is an in-memory surface
// driven directly by the caller.
package surface

import (
	"image"
	"time"
)

// Output is a drawing buffer that a surface presents after each frame.
type Output interface {
	Image() *image.RGBA
}

// Surface is a host container for rendered output.
// All methods must be called on the goroutine that drives the surface,
// which is also the goroutine on which listeners and frame callbacks run.
type Surface interface {

	// Size returns the size of the surface in css pixels.
	// A zero size means the surface is not yet laid out.
	Size() image.Point

	// PixelRatio returns the ratio of device pixels to css pixels.
	PixelRatio() float32

	// Attach attaches the output, which is presented after every frame.
	Attach(out Output)

	// Detach detaches the output if it is attached.
	Detach(out Output)

	// Listen adds a listener for the given event type.
	Listen(typ Types, fun func(ev *Event)) ListenerID

	// Unlisten removes a listener added by Listen.
	Unlisten(id ListenerID)

	// RequestFrame schedules a callback for the next frame.
	RequestFrame(fun func(now time.Time)) FrameID

	// CancelFrame cancels a pending frame callback.
	CancelFrame(id FrameID)
}
