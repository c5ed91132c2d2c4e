// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"errors"
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func TestSphereMesh(t *testing.T) {
	sp := NewSphere("sphere", 2, 64, 64)
	assert.Len(t, sp.Pos, 65*65)
	assert.Equal(t, 2*64*63, sp.NumTriangles())
	assert.Equal(t, float32(2), sp.Radius)
	for _, p := range sp.Pos {
		assert.InDelta(t, 2, p.Length(), tol)
	}
}

func TestRingMesh(t *testing.T) {
	rg := NewRing("ring", 3, 5, 64)
	assert.Len(t, rg.Pos, 2*65)
	assert.Equal(t, 128, rg.NumTriangles())
	assert.InDelta(t, 5, rg.Radius, tol)
	for _, p := range rg.Pos {
		assert.Zero(t, p.Z)
		l := p.Length()
		assert.True(t, l > 3-tol && l < 5+tol)
	}
}

func TestDispose(t *testing.T) {
	sp := NewSphere("sphere", 1, 8, 8)
	require.NoError(t, sp.Dispose())
	assert.True(t, sp.IsDisposed())
	assert.Nil(t, sp.Pos)
	assert.True(t, errors.Is(sp.Dispose(), ErrDisposed))

	mt := NewMaterial(color.RGBA{255, 0, 0, 255})
	require.NoError(t, mt.Dispose())
	assert.True(t, errors.Is(mt.Dispose(), ErrDisposed))

	ln := NewLines("line", []math32.Vector3{{}, math32.Vec3(1, 0, 0)})
	require.NoError(t, ln.Dispose())
	ln.SetPoints(math32.Vec3(2, 0, 0))
	assert.Nil(t, ln.Pos, "no update after dispose")
}

func TestWorldPosInRotatedGroup(t *testing.T) {
	sc := NewScene("test")
	gp := NewGroup(sc, "orbit")
	sd := NewSolid(gp, "planet", NewSphere("p", 1, 8, 8), NewMaterial(color.RGBA{255, 255, 255, 255}))
	sd.SetPos(10, 0, 0)
	gp.SetRot(0, math32.Pi/2, 0)
	sc.Update()
	wp := sd.WorldPos()
	assert.InDelta(t, 0, wp.X, tol)
	assert.InDelta(t, -10, wp.Z, tol)
}

func TestHiddenSubtree(t *testing.T) {
	sc := NewScene("test")
	gp := NewGroup(sc, "g")
	mat := NewMaterial(color.RGBA{255, 255, 255, 255})
	NewSolid(gp, "a", NewSphere("a", 1, 8, 8), mat)
	NewSolid(sc, "b", NewSphere("b", 1, 8, 8), mat)
	assert.Len(t, sc.Solids(), 2)
	gp.SetVisible(false)
	assert.Len(t, sc.Solids(), 1)
}

func TestCameraProjectRay(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Pos = math32.Vec3(0, 0, 50)
	cm.Aspect = 2
	cm.UpdateProjectionMatrix()

	ndc, depth, ok := cm.Project(math32.Vector3{})
	require.True(t, ok)
	assert.InDelta(t, 0, ndc.X, tol)
	assert.InDelta(t, 0, ndc.Y, tol)
	assert.InDelta(t, 50, depth, tol)

	p := math32.Vec3(7, -3, 4)
	ndc, depth, ok = cm.Project(p)
	require.True(t, ok)
	ray := cm.RayFromNDC(ndc)
	// the ray through the projected point passes through the point
	along := p.Sub(ray.Origin).Dot(ray.Dir)
	assert.InDelta(t, 0, ray.At(along).DistanceTo(p), 1e-3)

	_, _, ok = cm.Project(math32.Vec3(0, 0, 60))
	assert.False(t, ok, "behind the camera")
}

func TestPickNearestFirst(t *testing.T) {
	sc := NewScene("test")
	sc.Camera.Pos = math32.Vec3(0, 0, 50)
	mat := NewMaterial(color.RGBA{255, 255, 255, 255})
	far := NewSolid(sc, "far", NewSphere("far", 1, 8, 8), mat).SetPickID("far")
	near := NewSolid(sc, "near", NewSphere("near", 1, 8, 8), mat).SetPickID("near")
	far.SetPos(0, 0, -10)
	near.SetPos(0, 0, 10)
	NewSolid(sc, "off", NewSphere("off", 1, 8, 8), mat).SetPickID("off").SetPos(20, 0, 0)
	sc.Update()

	hits := sc.RaySolidIntersections(sc.Camera.RayFromNDC(math32.Vector2{}))
	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Solid)
	assert.Same(t, far, hits[1].Solid)
	assert.InDelta(t, 39, hits[0].Distance, tol)

	id, ok := sc.PickNDC(math32.Vector2{})
	assert.True(t, ok)
	assert.Equal(t, "near", id)
}

func TestPickSkipsUntagged(t *testing.T) {
	sc := NewScene("test")
	sc.Camera.Pos = math32.Vec3(0, 0, 50)
	mat := NewMaterial(color.RGBA{255, 255, 255, 255})
	NewSolid(sc, "sun", NewSphere("sun", 5, 8, 8), mat)
	NewSolid(sc, "behind", NewSphere("behind", 1, 8, 8), mat).SetPickID("behind").SetPos(0, 0, -20)
	NewSolid(sc, "line", NewLines("line", []math32.Vector3{math32.Vec3(0, 0, 40), math32.Vec3(0, 0, 30)}), mat).SetPickID("line")
	sc.Update()

	id, ok := sc.PickNDC(math32.Vector2{})
	assert.True(t, ok)
	assert.Equal(t, "behind", id)

	_, ok = sc.PickNDC(math32.Vec2(0.9, 0.9))
	assert.False(t, ok)
}

func TestRenderList(t *testing.T) {
	sc := NewScene("test")
	sc.Camera.Pos = math32.Vec3(0, 0, 50)
	opaque := NewMaterial(color.RGBA{255, 255, 255, 255})
	trans := NewMaterial(color.RGBA{255, 255, 255, 255}).SetOpacity(0.5)
	a := NewSolid(sc, "a", NewSphere("a", 1, 8, 8), opaque).SetPos(0, 0, -10)
	b := NewSolid(sc, "b", NewSphere("b", 1, 8, 8), opaque).SetPos(0, 0, 10)
	c := NewSolid(sc, "c", NewSphere("c", 1, 8, 8), trans).SetPos(0, 0, 10)
	d := NewSolid(sc, "d", NewSphere("d", 1, 8, 8), trans).SetPos(0, 0, -10)
	stars := NewSolid(sc, "stars", NewPoints("stars", []math32.Vector3{{}}), opaque)
	sc.Update()

	rcs := sc.RenderList()
	assert.Equal(t, []*Solid{stars}, rcs[RClassBackground])
	assert.Equal(t, []*Solid{b, a}, rcs[RClassOpaque])
	assert.Equal(t, []*Solid{d, c}, rcs[RClassTransparent])
}

func TestLights(t *testing.T) {
	sc := NewScene("test")
	NewAmbientLight(sc, "ambient", color.RGBA{0x40, 0x40, 0x40, 255}, 2)
	pl := NewPointLight(sc, "sun", color.RGBA{255, 255, 255, 255}, 2)
	assert.Equal(t, 2, sc.Lights.Len())
	assert.Same(t, pl, sc.LightByName("sun"))

	dir, ok := LightDir(pl, math32.Vec3(10, 0, 0))
	assert.True(t, ok)
	assert.InDelta(t, -1, dir.X, tol)
	_, ok = LightDir(sc.LightByName("ambient"), math32.Vector3{})
	assert.False(t, ok)

	pl.On = false
	assert.Equal(t, math32.Vector3{}, pl.Radiance())
}
