// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cmp"
	"slices"

	"cogentcore.org/core/math32"
)

// SolidPoint contains a Solid and a Point on that solid
type SolidPoint struct {
	Solid *Solid
	Point math32.Vector3

	// Distance is the distance from the ray origin to Point.
	Distance float32
}

// RaySolidIntersections returns a list of visible triangle-mesh solids
// whose bounding sphere intersects with the given ray, with the point of
// intersection. Lines and points are never hit. Results are sorted
// from closest to furthest. [Scene.Update] must have been called since
// the last pose change.
func (sc *Scene) RaySolidIntersections(ray *math32.Ray) []*SolidPoint {
	var sp []*SolidPoint
	for _, sd := range sc.Solids() {
		if sd.Mesh.AsMeshBase().Primitive != Triangles {
			continue
		}
		pt, hit := ray.IntersectSphere(sd.WorldBSphere())
		if !hit {
			continue
		}
		sp = append(sp, &SolidPoint{Solid: sd, Point: pt, Distance: pt.DistanceTo(ray.Origin)})
	}
	slices.SortStableFunc(sp, func(a, b *SolidPoint) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return sp
}

// PickNDC casts a ray from the camera through the given normalized
// device coordinates and returns the PickID of the nearest solid hit
// that has one, skipping nearer solids without a PickID.
func (sc *Scene) PickNDC(ndc math32.Vector2) (string, bool) {
	for _, hit := range sc.RaySolidIntersections(sc.Camera.RayFromNDC(ndc)) {
		if hit.Solid.PickID != "" {
			return hit.Solid.PickID, true
		}
	}
	return "", false
}
