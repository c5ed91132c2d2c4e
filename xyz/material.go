// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
)

// Sides are the faces of a triangle that are rendered.
type Sides int32

const (
	// FrontSide renders only faces wound toward the camera.
	FrontSide Sides = iota

	// DoubleSide renders both faces.
	DoubleSide
)

// Material describes the material properties of a surface (color, shininess,
// opacity, etc). Materials are shared by pointer between solids and are
// disposed with their session.
type Material struct {

	// Color is the main color of the surface.
	Color color.RGBA

	// Opacity in [0, 1]; below 1 the surface is rendered
	// back-to-front after all opaque surfaces.
	Opacity float32

	// Emissive surfaces are drawn in their full color, independent
	// of lighting (a "basic" material), e.g. for the Sun.
	Emissive bool

	// Roughness in [0, 1]; rougher surfaces have weaker highlights.
	Roughness float32

	// Metalness in [0, 1]; it tints highlights with the surface color.
	Metalness float32

	// Side determines which triangle faces are rendered.
	Side Sides

	// PointSize is the size in pixels of points, for point meshes.
	PointSize float32

	disposed bool
}

// NewMaterial returns a new opaque [Material] with the given color.
func NewMaterial(clr color.RGBA) *Material {
	mt := &Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// Defaults sets default material values.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{255, 255, 255, 255}
	mt.Opacity = 1
	mt.Roughness = 1
	mt.PointSize = 1
}

// SetOpacity sets the [Material.Opacity].
func (mt *Material) SetOpacity(v float32) *Material {
	mt.Opacity = v
	return mt
}

// SetEmissive sets [Material.Emissive].
func (mt *Material) SetEmissive(v bool) *Material {
	mt.Emissive = v
	return mt
}

// SetSide sets [Material.Side].
func (mt *Material) SetSide(v Sides) *Material {
	mt.Side = v
	return mt
}

// SetSurface sets the [Material.Roughness] and [Material.Metalness].
func (mt *Material) SetSurface(roughness, metalness float32) *Material {
	mt.Roughness = roughness
	mt.Metalness = metalness
	return mt
}

// IsTransparent returns true if the material is not fully opaque.
func (mt *Material) IsTransparent() bool {
	return mt.Opacity < 1
}

// Dispose releases the material. Disposing twice returns [ErrDisposed].
func (mt *Material) Dispose() error {
	if mt.disposed {
		return fmt.Errorf("material: %w", ErrDisposed)
	}
	mt.disposed = true
	return nil
}

// IsDisposed returns true once Dispose has been called.
func (mt *Material) IsDisposed() bool {
	return mt.disposed
}
