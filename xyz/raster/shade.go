// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/xyz"
)

// Shininess is the specular exponent for a material with zero roughness.
var Shininess float32 = 30

// shade returns the flat-shaded color of a surface element at the given
// world point, with unit normal norm and unit direction view toward the camera.
// Emissive materials are not lit.
func shade(sc *xyz.Scene, mat *xyz.Material, at, norm, view math32.Vector3) color.NRGBA {
	a := uint8(255 * math32.Clamp(mat.Opacity, 0, 1))
	if mat.Emissive {
		return color.NRGBA{mat.Color.R, mat.Color.G, mat.Color.B, a}
	}
	base := math32.Vec3(float32(mat.Color.R), float32(mat.Color.G), float32(mat.Color.B)).MulScalar(1.0 / 255)
	var diff, spec math32.Vector3
	gloss := 1 - math32.Clamp(mat.Roughness, 0, 1)
	for _, kv := range sc.Lights.Order {
		lt := kv.Value
		rad := lt.AsLightBase().Radiance()
		dir, ok := xyz.LightDir(lt, at)
		if !ok {
			diff = diff.Add(rad)
			continue
		}
		nl := norm.Dot(dir)
		if nl <= 0 {
			continue
		}
		diff = diff.Add(rad.MulScalar(nl))
		if h := dir.Add(view); gloss > 0 && h.LengthSquared() > 0 {
			h.SetNormal()
			spec = spec.Add(rad.MulScalar(gloss * math32.Pow(math32.Max(norm.Dot(h), 0), Shininess*gloss+1)))
		}
	}
	// metals tint their highlights and darken their diffuse term
	met := math32.Clamp(mat.Metalness, 0, 1)
	out := math32.Vec3(base.X*diff.X, base.Y*diff.Y, base.Z*diff.Z).MulScalar(1 - 0.5*met)
	tint := math32.Vector3Scalar(1).Lerp(base, met)
	out = out.Add(math32.Vec3(tint.X*spec.X, tint.Y*spec.Y, tint.Z*spec.Z).MulScalar(0.25))
	return color.NRGBA{toByte(out.X), toByte(out.Y), toByte(out.Z), a}
}

func toByte(v float32) uint8 {
	return uint8(255*math32.Clamp(v, 0, 1) + 0.5)
}
