// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {
	NodeBase

	// Mesh is the shape of the solid.
	Mesh Mesh

	// Material contains the material properties of the surface.
	Material *Material

	// PickID is the id reported when this solid is picked with a ray.
	// Solids without a PickID can still block the ray, but never
	// resolve a pick.
	PickID string
}

// NewSolid adds a new [Solid] with the given name, mesh and material
// to the given parent.
func NewSolid(parent Node, name string, mesh Mesh, mat *Material) *Solid {
	sld := &Solid{Mesh: mesh, Material: mat}
	sld.Name = name
	sld.Pose.Defaults()
	AddChild(parent, sld)
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetRot sets the [Pose.Rot] Euler rotation of the solid, in radians.
func (sld *Solid) SetRot(x, y, z float32) *Solid {
	sld.Pose.Rot.Set(x, y, z)
	return sld
}

// SetPickID sets the [Solid.PickID].
func (sld *Solid) SetPickID(id string) *Solid {
	sld.PickID = id
	return sld
}

// IsVisible returns false for hidden solids and for solids whose
// mesh or material is missing or already disposed.
func (sld *Solid) IsVisible() bool {
	if sld.Mesh == nil || sld.Material == nil {
		return false
	}
	if sld.Mesh.AsMeshBase().IsDisposed() || sld.Material.IsDisposed() {
		return false
	}
	return sld.NodeBase.IsVisible()
}

// IsTransparent returns true if the material is not fully opaque.
func (sld *Solid) IsTransparent() bool {
	return sld.Material != nil && sld.Material.IsTransparent()
}

// WorldBSphere returns the bounding sphere of the solid in world
// coordinates, as of the last world matrix update.
func (sld *Solid) WorldBSphere() math32.Sphere {
	wm := &sld.Pose.WorldMatrix
	return math32.Sphere{Center: wm.Pos(), Radius: sld.Mesh.AsMeshBase().Radius * wm.GetMaxScaleOnAxis()}
}
