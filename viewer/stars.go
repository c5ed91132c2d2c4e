// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/xyz"
)

// StarPoints returns n points uniformly distributed in a cube of the
// given side centered at the origin.
func StarPoints(rnd randx.Rand, n int, side float32) []math32.Vector3 {
	pts := make([]math32.Vector3, n)
	for i := range pts {
		pts[i] = math32.Vec3((rnd.Float32()-0.5)*side, (rnd.Float32()-0.5)*side, (rnd.Float32()-0.5)*side)
	}
	return pts
}

// addStars adds the starfield to the scene, registering its resources.
func (s *Session) addStars() {
	if s.Config.Stars <= 0 {
		return
	}
	mesh := xyz.NewPoints("stars", StarPoints(s.Rand, s.Config.Stars, s.Config.StarSpread))
	mat := xyz.NewMaterial(colors.White)
	s.RegisterDisposable(mesh)
	s.RegisterDisposable(mat)
	s.Stars = xyz.NewSolid(s.Scene, "stars", mesh, mat)
}
