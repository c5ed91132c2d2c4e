// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overview

import "cogentcore.org/core/math32"

// OrbitSegments is the number of segments in an orbit path.
const OrbitSegments = 128

// OrbitRadius returns the orbit radius of the body at the given catalog
// index. Orbits are evenly spaced by catalog order, not by real distance.
func OrbitRadius(i int) float64 {
	return 10 + float64(i+1)*5
}

// RevolutionSpeed returns the angle in radians that the body at the
// given catalog index revolves per frame.
func RevolutionSpeed(i int) float64 {
	return 0.001 / float64(i+1)
}

// OrbitPath returns a closed circle of segs+1 points of the given radius
// in the XZ plane, with the last point equal to the first.
func OrbitPath(radius float32, segs int) []math32.Vector3 {
	pts := make([]math32.Vector3, segs+1)
	for i := range segs {
		a := float32(i) / float32(segs) * 2 * math32.Pi
		pts[i] = math32.Vec3(math32.Cos(a)*radius, 0, math32.Sin(a)*radius)
	}
	pts[segs] = pts[0]
	return pts
}
