// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a small 3D scene graph for the orrery viewers:
// groups and solids with poses, meshes and materials, lights,
// a perspective camera, and ray picking.
package xyz

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
)

// Scene is the overall scenegraph containing nodes as children.
// The Scene itself is the root node; its Pose is normally left
// at the identity.
type Scene struct {
	NodeBase

	// Camera determines view onto scene
	Camera Camera

	// Background color, cleared before each render.
	Background color.RGBA

	// Lights are all the lights used in the scene, in the order added.
	Lights ordmap.Map[string, Light]
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.Name = name
	sc.Defaults()
	return sc
}

// Defaults sets default scene params (camera, bg = black)
func (sc *Scene) Defaults() {
	sc.Pose.Defaults()
	sc.Camera.Defaults()
	sc.Background = color.RGBA{0, 0, 0, 255}
}

// AddLight adds given light to lights.
func (sc *Scene) AddLight(lt Light) {
	sc.Lights.Add(lt.AsLightBase().Name, lt)
}

// LightByName returns the light of the given name, or nil.
func (sc *Scene) LightByName(name string) Light {
	lt, _ := sc.Lights.ValueByKeyTry(name)
	return lt
}

// Update updates the world matrices of all nodes.
// It must be called after changing poses and before picking or rendering.
func (sc *Scene) Update() {
	UpdateWorldMatrix(sc)
}

// Solids returns all visible solids, in tree order.
func (sc *Scene) Solids() []*Solid {
	var sds []*Solid
	WalkDown(sc, func(n Node) bool {
		if !n.AsNodeBase().IsVisible() {
			return Break
		}
		sd := n.AsSolid()
		if sd == nil {
			return Continue
		}
		if sd.IsVisible() {
			sds = append(sds, sd)
		}
		return Continue
	})
	return sds
}
