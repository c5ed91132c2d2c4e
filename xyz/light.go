// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the tree.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light, which matters since lights are accessed by name.
	Name string

	// On is whether the light is turned on.
	On bool

	// Intensity is multiplied by the color, and is convenient for
	// easily modulating overall brightness.
	Intensity float32

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// Radiance returns the light color scaled by intensity, as linear
// RGB components in [0, inf).
func (lb *LightBase) Radiance() math32.Vector3 {
	if !lb.On {
		return math32.Vector3{}
	}
	s := lb.Intensity / 255
	return math32.Vec3(float32(lb.Color.R)*s, float32(lb.Color.G)*s, float32(lb.Color.B)*s)
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds Ambient to given scene, with given name, color, and intensity.
func NewAmbientLight(sc *Scene, name string, clr color.RGBA, intensity float32) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	sc.AddLight(lt)
	return lt
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun
// seen from a planet. The absolute distance of Pos doesn't matter.
type DirLight struct {
	LightBase

	// position of direct light -- assumed to point at the origin so this determines direction
	Pos math32.Vector3
}

// NewDirLight adds direct light to given scene, with given name, color, and intensity.
// By default it is located overhead and toward the default camera (0, 1, 1) -- change Pos otherwise
func NewDirLight(sc *Scene, name string, clr color.RGBA, intensity float32) *DirLight {
	lt := &DirLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	lt.Pos.Set(0, 1, 1)
	sc.AddLight(lt)
	return lt
}

// PointLight is an omnidirectional light with a position, like
// the Sun at the center of the overview.
type PointLight struct {
	LightBase

	// position of light in world coordinates
	Pos math32.Vector3
}

// NewPointLight adds point light to given scene, with given name, color, and intensity.
// By default it is located at the origin -- set Pos to change.
func NewPointLight(sc *Scene, name string, clr color.RGBA, intensity float32) *PointLight {
	lt := &PointLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	sc.AddLight(lt)
	return lt
}

// LightDir returns the unit direction from the given world point
// toward the light, or false for lights without a direction (ambient).
func LightDir(lt Light, at math32.Vector3) (math32.Vector3, bool) {
	var d math32.Vector3
	switch l := lt.(type) {
	case *DirLight:
		d = l.Pos
	case *PointLight:
		d = l.Pos.Sub(at)
	default:
		return d, false
	}
	if d.LengthSquared() == 0 { // lights nothing
		return d, true
	}
	return d.Normal(), true
}
