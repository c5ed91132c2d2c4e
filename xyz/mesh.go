// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// ErrDisposed is returned when a resource is disposed more than once,
// or used after it has been disposed.
var ErrDisposed = errors.New("xyz: resource already disposed")

// Disposable is a GPU-side resource (geometry or material) that must be
// released explicitly when its owning session ends.
type Disposable interface {
	Dispose() error
}

// Primitives are the kinds of primitive that a [Mesh] is drawn with.
type Primitives int32

const (
	// Triangles is an indexed triangle list; solids with triangle
	// meshes are lit and can be picked.
	Triangles Primitives = iota

	// LineStrip connects successive vertices with line segments.
	LineStrip

	// PointList draws each vertex as a point.
	PointList
)

// Mesh parametrizes the mesh-based shape used for rendering a [Solid].
type Mesh interface {
	Disposable

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name is the name of the mesh, for logging.
	Name string

	// Primitive is how the vertices are drawn.
	Primitive Primitives

	// Pos are the vertex positions, in local coordinates.
	Pos []math32.Vector3

	// Norm are the vertex normals, for [Triangles] meshes.
	Norm []math32.Vector3

	// Index are the triangle vertex indexes, three per triangle.
	Index []uint32

	// Radius is the bounding sphere radius around the local origin.
	Radius float32

	disposed bool
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// Dispose releases the vertex data. Disposing twice returns [ErrDisposed].
func (ms *MeshBase) Dispose() error {
	if ms.disposed {
		return fmt.Errorf("mesh %q: %w", ms.Name, ErrDisposed)
	}
	ms.disposed = true
	ms.Pos = nil
	ms.Norm = nil
	ms.Index = nil
	return nil
}

// IsDisposed returns true once Dispose has been called.
func (ms *MeshBase) IsDisposed() bool {
	return ms.disposed
}

// NumTriangles returns the number of triangles in a [Triangles] mesh.
func (ms *MeshBase) NumTriangles() int {
	return len(ms.Index) / 3
}

// computeRadius sets Radius from the farthest vertex.
func (ms *MeshBase) computeRadius() {
	var r float32
	for _, p := range ms.Pos {
		r = math32.Max(r, p.Length())
	}
	ms.Radius = r
}

// Sphere is a sphere mesh centered on the origin.
type Sphere struct {
	MeshBase

	// SphereRadius is the radius of the sphere.
	SphereRadius float32

	// WidthSegs is the number of segments around the equator.
	WidthSegs int

	// HeightSegs is the number of segments from pole to pole.
	HeightSegs int
}

// NewSphere returns a new [Sphere] mesh with the given radius and
// number of width and height segments.
func NewSphere(name string, radius float32, widthSegs, heightSegs int) *Sphere {
	sp := &Sphere{SphereRadius: radius, WidthSegs: max(widthSegs, 3), HeightSegs: max(heightSegs, 3)}
	sp.Name = name
	sp.Primitive = Triangles
	sp.build()
	return sp
}

func (sp *Sphere) build() {
	sh := shape.NewSphere(sp.SphereRadius, sp.WidthSegs)
	sh.HeightSegs = sp.HeightSegs
	nv, ni, _ := sh.MeshSize()
	vtx := math32.NewArrayF32(nv*3, nv*3)
	norm := math32.NewArrayF32(nv*3, nv*3)
	tex := math32.NewArrayF32(nv*2, nv*2)
	idx := math32.NewArrayU32(ni, ni)
	sh.Set(vtx, norm, tex, nil, idx)

	sp.Pos = make([]math32.Vector3, nv)
	sp.Norm = make([]math32.Vector3, nv)
	for i := range nv {
		vtx.GetVector3(i*3, &sp.Pos[i])
		norm.GetVector3(i*3, &sp.Norm[i])
	}
	sp.Index = idx
	sp.Radius = sp.SphereRadius
}

// Ring is a flat annulus in the XY plane, facing +Z.
type Ring struct {
	MeshBase

	// Inner is the inner radius.
	Inner float32

	// Outer is the outer radius.
	Outer float32

	// Segs is the number of segments around the ring.
	Segs int
}

// NewRing returns a new [Ring] mesh with the given inner and outer
// radius and number of segments.
func NewRing(name string, inner, outer float32, segs int) *Ring {
	rg := &Ring{Inner: inner, Outer: outer, Segs: max(segs, 3)}
	rg.Name = name
	rg.Primitive = Triangles
	rg.build()
	return rg
}

func (rg *Ring) build() {
	n := rg.Segs
	for _, r := range []float32{rg.Inner, rg.Outer} {
		for i := 0; i <= n; i++ {
			th := float32(i) / float32(n) * 2 * math32.Pi
			rg.Pos = append(rg.Pos, math32.Vec3(r*math32.Cos(th), r*math32.Sin(th), 0))
			rg.Norm = append(rg.Norm, math32.Vec3(0, 0, 1))
		}
	}
	for i := 0; i < n; i++ {
		a := uint32(i)
		b := uint32(i + n + 1)
		c := b + 1
		d := a + 1
		rg.Index = append(rg.Index, a, b, d, b, c, d)
	}
	rg.computeRadius()
}

// Lines is a line strip through a list of points.
type Lines struct {
	MeshBase
}

// NewLines returns a new [Lines] mesh through the given points.
func NewLines(name string, points []math32.Vector3) *Lines {
	ln := &Lines{}
	ln.Name = name
	ln.Primitive = LineStrip
	ln.SetPoints(points...)
	return ln
}

// SetPoints replaces the points of the line strip.
// It is a no-op on a disposed mesh.
func (ln *Lines) SetPoints(points ...math32.Vector3) {
	if ln.disposed {
		return
	}
	ln.Pos = append(ln.Pos[:0], points...)
	ln.computeRadius()
}

// Points is a cloud of points.
type Points struct {
	MeshBase
}

// NewPoints returns a new [Points] mesh for the given points.
func NewPoints(name string, points []math32.Vector3) *Points {
	pt := &Points{}
	pt.Name = name
	pt.Primitive = PointList
	pt.Pos = points
	pt.computeRadius()
	return pt
}
