// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/xyz"
	"cogentcore.org/orrery/xyz/raster"
)

// KeyLights are the kinds of key light a session can have.
type KeyLights int32

const (
	// PointKey is a point light, like a star at the center of the scene.
	PointKey KeyLights = iota

	// DirKey is a directional light.
	DirKey
)

// Config has the parameters of a [Session]. Start from [DefaultConfig].
type Config struct {

	// Name is used for the scene and in log messages.
	Name string

	// CameraPos is the initial camera position; the camera looks at the origin.
	CameraPos math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	Near, Far float32

	Background color.RGBA

	AmbientColor     color.RGBA
	AmbientIntensity float32

	KeyLight          KeyLights
	KeyLightPos       math32.Vector3
	KeyLightIntensity float32

	// Stars is the number of background stars.
	Stars int

	// StarSpread is the side of the cube centered at the origin
	// in which stars are placed.
	StarSpread float32

	// Rand is the random source for stars and any other placement.
	// Nil uses the global source, which differs on every run.
	Rand randx.Rand

	// Seed, when Rand is nil and Seed is non-zero, gives every session
	// its own source seeded with it. Sessions run on separate goroutines,
	// so a seeded Rand must not be shared between them.
	Seed int64

	// Damping is the orbit controls damping factor; 0 disables damping.
	Damping float32

	EnableZoom bool

	AutoRotate      bool
	AutoRotateSpeed float32

	// DeltaTime scales per-frame motion by the elapsed time in units of
	// 1/60 s, so that motion does not depend on the frame rate.
	// Otherwise every frame advances by exactly one unit.
	DeltaTime bool

	// NewRenderer creates the renderer. Nil uses [raster.New].
	NewRenderer func() (xyz.Renderer, error)
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	cf := Config{}
	cf.Defaults()
	return cf
}

// Defaults sets the default values.
func (cf *Config) Defaults() {
	cf.Name = "viewer"
	cf.CameraPos = math32.Vec3(0, 0, 10)
	cf.FOV = 75
	cf.Near = 0.1
	cf.Far = 1000
	cf.Background = colors.Black
	cf.AmbientColor = color.RGBA{0x40, 0x40, 0x40, 0xff}
	cf.AmbientIntensity = 2
	cf.KeyLight = PointKey
	cf.KeyLightIntensity = 2
	cf.Stars = 10000
	cf.StarSpread = 2000
	cf.Damping = 0.05
	cf.EnableZoom = true
	cf.AutoRotateSpeed = 2
}

func (cf *Config) renderer() (xyz.Renderer, error) {
	if cf.NewRenderer == nil {
		return raster.New(), nil
	}
	return cf.NewRenderer()
}

func (cf *Config) random() randx.Rand {
	if cf.Rand == nil {
		return randx.FromSeed(cf.Seed)
	}
	return cf.Rand
}
