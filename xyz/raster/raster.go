// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a software [xyz.Renderer] that draws a scene
// into an [image.RGBA] with the golang.org/x/image/vector rasterizer.
// Triangles are flat shaded and painted back-to-front, after the
// background points.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/xyz"
	"golang.org/x/image/vector"
)

// ErrDestroyed is returned by Render after Destroy.
var ErrDestroyed = errors.New("raster: renderer destroyed")

// LineWidth is the width of lines in css pixels.
var LineWidth float32 = 1

// Renderer is a software [xyz.Renderer].
type Renderer struct {
	size      image.Point
	ratio     float32
	image     *image.RGBA
	ras       *vector.Rasterizer
	destroyed bool
}

var _ xyz.Renderer = (*Renderer)(nil)

// New returns a new [Renderer] with a pixel ratio of 1 and no size.
func New() *Renderer {
	return &Renderer{ratio: 1, ras: &vector.Rasterizer{}, image: image.NewRGBA(image.Rectangle{})}
}

func (rs *Renderer) SetSize(width, height int) {
	rs.size = image.Pt(max(width, 0), max(height, 0))
	rs.resize()
}

func (rs *Renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	rs.ratio = ratio
	rs.resize()
}

func (rs *Renderer) PixelSize() image.Point {
	return image.Pt(int(float32(rs.size.X)*rs.ratio+0.5), int(float32(rs.size.Y)*rs.ratio+0.5))
}

func (rs *Renderer) resize() {
	psz := rs.PixelSize()
	if rs.image != nil && rs.image.Bounds().Size() == psz {
		return
	}
	rs.image = image.NewRGBA(image.Rectangle{Max: psz})
}

func (rs *Renderer) Image() *image.RGBA {
	return rs.image
}

func (rs *Renderer) Destroy() {
	rs.destroyed = true
	rs.image = nil
	rs.ras = nil
}

// drawItem is one depth-sorted primitive: a shaded triangle or a line segment.
type drawItem struct {
	pts   []math32.Vector2
	depth float32
	clr   color.NRGBA
}

// Render renders the scene through its camera. The scene world
// matrices must be current.
func (rs *Renderer) Render(sc *xyz.Scene) error {
	if rs.destroyed {
		return ErrDestroyed
	}
	draw.Draw(rs.image, rs.image.Bounds(), image.NewUniform(sc.Background), image.Point{}, draw.Src)
	if rs.image.Bounds().Empty() {
		return nil
	}
	rcs := sc.RenderList()
	for _, sd := range rcs[xyz.RClassBackground] {
		rs.renderPoints(sc, sd)
	}
	var items []drawItem
	for _, sd := range append(rcs[xyz.RClassOpaque], rcs[xyz.RClassTransparent]...) {
		switch sd.Mesh.AsMeshBase().Primitive {
		case xyz.Triangles:
			items = rs.triangles(sc, sd, items)
		case xyz.LineStrip:
			items = rs.lines(sc, sd, items)
		}
	}
	slices.SortStableFunc(items, func(a, b drawItem) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	for i := range items {
		it := &items[i]
		if it.clr.A == 255 {
			// opaque neighbors overlap so that anti-aliased seams do not show
			it.pts = dilate(it.pts, 1)
		}
		rs.fill(it.pts, it.clr)
	}
	return nil
}

// toPixel converts normalized device coordinates to drawing buffer pixels.
func (rs *Renderer) toPixel(ndc math32.Vector2) math32.Vector2 {
	b := rs.image.Bounds().Size()
	return math32.Vec2((ndc.X+1)/2*float32(b.X), (1-ndc.Y)/2*float32(b.Y))
}

func (rs *Renderer) renderPoints(sc *xyz.Scene, sd *xyz.Solid) {
	ms := sd.Mesh.AsMeshBase()
	mat := sd.Material
	c := color.NRGBA{mat.Color.R, mat.Color.G, mat.Color.B, uint8(255 * math32.Clamp(mat.Opacity, 0, 1))}
	sz := max(int(mat.PointSize*rs.ratio+0.5), 1)
	src := image.NewUniform(c)
	bounds := rs.image.Bounds()
	for _, p := range ms.Pos {
		ndc, _, ok := sc.Camera.Project(p.MulMatrix4(&sd.Pose.WorldMatrix))
		if !ok {
			continue
		}
		px := rs.toPixel(ndc)
		pt := image.Pt(int(px.X), int(px.Y))
		r := image.Rectangle{Min: pt, Max: pt.Add(image.Pt(sz, sz))}.Intersect(bounds)
		if r.Empty() {
			continue
		}
		if sz == 1 && c.A == 255 {
			rs.image.SetRGBA(pt.X, pt.Y, color.RGBA(c))
			continue
		}
		draw.Draw(rs.image, r, src, image.Point{}, draw.Over)
	}
}

// triangles appends the visible, shaded triangles of the solid.
func (rs *Renderer) triangles(sc *xyz.Scene, sd *xyz.Solid, items []drawItem) []drawItem {
	ms := sd.Mesh.AsMeshBase()
	mat := sd.Material
	wm := &sd.Pose.WorldMatrix
	cam := &sc.Camera
	_, _, fwd := cam.Basis()
	for ti := 0; ti+2 < len(ms.Index); ti += 3 {
		var wp [3]math32.Vector3
		var norm math32.Vector3
		for k := 0; k < 3; k++ {
			vi := ms.Index[ti+k]
			wp[k] = ms.Pos[vi].MulMatrix4(wm)
			norm = norm.Add(ms.Norm[vi].MulMatrix4AsVector4(wm, 0))
		}
		center := wp[0].Add(wp[1]).Add(wp[2]).MulScalar(1.0 / 3)
		toCam := cam.Pos.Sub(center)
		if norm.LengthSquared() == 0 || toCam.LengthSquared() == 0 {
			continue
		}
		norm.SetNormal()
		if norm.Dot(toCam) <= 0 {
			if mat.Side != xyz.DoubleSide {
				continue
			}
			norm = norm.Negate()
		}
		pts := make([]math32.Vector2, 3)
		visible := true
		for k := 0; k < 3; k++ {
			ndc, _, ok := cam.Project(wp[k])
			if !ok {
				visible = false
				break
			}
			pts[k] = rs.toPixel(ndc)
		}
		if !visible {
			continue
		}
		items = append(items, drawItem{pts: pts, depth: center.Sub(cam.Pos).Dot(fwd), clr: shade(sc, mat, center, norm, toCam.Normal())})
	}
	return items
}

// lines appends each segment of the solid's line strip as a thin quad.
func (rs *Renderer) lines(sc *xyz.Scene, sd *xyz.Solid, items []drawItem) []drawItem {
	ms := sd.Mesh.AsMeshBase()
	mat := sd.Material
	cam := &sc.Camera
	_, _, fwd := cam.Basis()
	c := color.NRGBA{mat.Color.R, mat.Color.G, mat.Color.B, uint8(255 * math32.Clamp(mat.Opacity, 0, 1))}
	hw := LineWidth * rs.ratio / 2
	for i := 0; i+1 < len(ms.Pos); i++ {
		w0 := ms.Pos[i].MulMatrix4(&sd.Pose.WorldMatrix)
		w1 := ms.Pos[i+1].MulMatrix4(&sd.Pose.WorldMatrix)
		n0, _, ok0 := cam.Project(w0)
		n1, _, ok1 := cam.Project(w1)
		if !ok0 || !ok1 {
			continue
		}
		p0, p1 := rs.toPixel(n0), rs.toPixel(n1)
		d := p1.Sub(p0)
		l := d.Length()
		if l == 0 {
			continue
		}
		off := math32.Vec2(-d.Y/l*hw, d.X/l*hw)
		pts := []math32.Vector2{p0.Add(off), p1.Add(off), p1.Sub(off), p0.Sub(off)}
		depth := w0.Add(w1).MulScalar(0.5).Sub(cam.Pos).Dot(fwd)
		items = append(items, drawItem{pts: pts, depth: depth, clr: c})
	}
	return items
}

// fill rasterizes the convex polygon, clipped to the image bounds.
func (rs *Renderer) fill(pts []math32.Vector2, c color.NRGBA) {
	b := rs.image.Bounds()
	pts = clipPolygon(pts, math32.FromPoint(b.Min), math32.FromPoint(b.Max))
	if len(pts) < 3 {
		return
	}
	minp, maxp := pts[0], pts[0]
	for _, p := range pts[1:] {
		minp = math32.Vec2(math32.Min(minp.X, p.X), math32.Min(minp.Y, p.Y))
		maxp = math32.Vec2(math32.Max(maxp.X, p.X), math32.Max(maxp.Y, p.Y))
	}
	r := image.Rect(int(minp.X), int(minp.Y), int(maxp.X)+1, int(maxp.Y)+1).Intersect(b)
	if r.Empty() {
		return
	}
	org := math32.FromPoint(r.Min)
	rs.ras.Reset(r.Dx(), r.Dy())
	p0 := pts[0].Sub(org)
	rs.ras.MoveTo(p0.X, p0.Y)
	for _, p := range pts[1:] {
		p = p.Sub(org)
		rs.ras.LineTo(p.X, p.Y)
	}
	rs.ras.ClosePath()
	rs.ras.Draw(rs.image, r, image.NewUniform(c), image.Point{})
}
