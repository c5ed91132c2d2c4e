// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cmp"
	"image"
	"slices"
)

// Renderer renders a [Scene] into an image of a given pixel size.
// Renderers own resources of their own that are released by Destroy.
type Renderer interface {

	// SetSize sets the css size of the output; the pixel size of the
	// drawing buffer is this times the pixel ratio.
	SetSize(width, height int)

	// SetPixelRatio sets the ratio of device pixels to css pixels.
	SetPixelRatio(ratio float32)

	// PixelSize returns the size of the drawing buffer in device pixels.
	PixelSize() image.Point

	// Render renders the scene through its camera.
	Render(sc *Scene) error

	// Image returns the most recently rendered image.
	Image() *image.RGBA

	// Destroy releases the renderer resources.
	Destroy()
}

// RenderClasses define the different classes of rendering
type RenderClasses int32

const (
	// RClassBackground is points, drawn first (starfields).
	RClassBackground RenderClasses = iota

	// RClassOpaque is opaque solids, sorted front-to-back.
	RClassOpaque

	// RClassTransparent is transparent solids and all lines,
	// sorted back-to-front because z-sorting is key.
	RClassTransparent
)

// RenderClass returns the class of rendering for this solid
// used for organizing the ordering of rendering
func (sld *Solid) RenderClass() RenderClasses {
	switch {
	case sld.Mesh.AsMeshBase().Primitive == PointList:
		return RClassBackground
	case sld.IsTransparent() || sld.Mesh.AsMeshBase().Primitive == LineStrip:
		return RClassTransparent
	}
	return RClassOpaque
}

// RenderList returns the visible solids grouped by [RenderClasses]:
// opaque sorted front-to-back and transparent sorted back-to-front
// by the camera depth of their centers. [Scene.Update] must have
// been called since the last pose change.
func (sc *Scene) RenderList() [3][]*Solid {
	var rcs [3][]*Solid
	for _, sd := range sc.Solids() {
		rc := sd.RenderClass()
		rcs[rc] = append(rcs[rc], sd)
	}
	_, _, fwd := sc.Camera.Basis()
	depth := func(sd *Solid) float32 {
		return sd.WorldPos().Sub(sc.Camera.Pos).Dot(fwd)
	}
	slices.SortStableFunc(rcs[RClassOpaque], func(a, b *Solid) int {
		return cmp.Compare(depth(a), depth(b))
	})
	slices.SortStableFunc(rcs[RClassTransparent], func(a, b *Solid) int {
		return cmp.Compare(depth(b), depth(a))
	})
	return rcs
}

