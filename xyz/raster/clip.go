// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import "cogentcore.org/core/math32"

// clipPolygon clips a convex polygon to the rectangle [minp, maxp]
// (Sutherland-Hodgman).
func clipPolygon(pts []math32.Vector2, minp, maxp math32.Vector2) []math32.Vector2 {
	edges := []struct {
		inside func(p math32.Vector2) bool
		cross  func(a, b math32.Vector2) math32.Vector2
	}{
		{func(p math32.Vector2) bool { return p.X >= minp.X }, func(a, b math32.Vector2) math32.Vector2 { return atX(a, b, minp.X) }},
		{func(p math32.Vector2) bool { return p.X <= maxp.X }, func(a, b math32.Vector2) math32.Vector2 { return atX(a, b, maxp.X) }},
		{func(p math32.Vector2) bool { return p.Y >= minp.Y }, func(a, b math32.Vector2) math32.Vector2 { return atY(a, b, minp.Y) }},
		{func(p math32.Vector2) bool { return p.Y <= maxp.Y }, func(a, b math32.Vector2) math32.Vector2 { return atY(a, b, maxp.Y) }},
	}
	for _, e := range edges {
		if len(pts) == 0 {
			break
		}
		in := pts
		pts = make([]math32.Vector2, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					pts = append(pts, e.cross(prev, cur))
				}
				pts = append(pts, cur)
			case e.inside(prev):
				pts = append(pts, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return pts
}

func atX(a, b math32.Vector2, x float32) math32.Vector2 {
	t := (x - a.X) / (b.X - a.X)
	return math32.Vec2(x, a.Y+t*(b.Y-a.Y))
}

func atY(a, b math32.Vector2, y float32) math32.Vector2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return math32.Vec2(a.X+t*(b.X-a.X), y)
}

// dilate offsets each edge of a convex polygon outward by d,
// with miters limited to 4d.
func dilate(pts []math32.Vector2, d float32) []math32.Vector2 {
	n := len(pts)
	var area float32
	for i, p := range pts {
		q := pts[(i+1)%n]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 {
		return pts
	}
	sign := float32(1)
	if area < 0 {
		sign = -1
	}
	normal := func(a, b math32.Vector2) math32.Vector2 {
		e := b.Sub(a)
		l := e.Length()
		if l == 0 {
			return math32.Vector2{}
		}
		return math32.Vec2(e.Y*sign/l, -e.X*sign/l)
	}
	out := make([]math32.Vector2, n)
	for i, p := range pts {
		n0 := normal(pts[(i+n-1)%n], p)
		n1 := normal(p, pts[(i+1)%n])
		m := n0.Add(n1)
		ml := m.Length()
		if ml == 0 {
			out[i] = p
			continue
		}
		m = m.MulScalar(1 / ml)
		cos := m.X*n0.X + m.Y*n0.Y
		ext := 4 * d
		if cos > 0.25 {
			ext = d / cos
		}
		out[i] = p.Add(m.MulScalar(ext))
	}
	return out
}
