// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/surface"
	"cogentcore.org/orrery/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countDisposable counts Dispose calls.
type countDisposable struct {
	n   int
	err error
}

func (cd *countDisposable) Dispose() error {
	cd.n++
	return cd.err
}

func testConfig() Config {
	cf := DefaultConfig()
	cf.Stars = 100
	cf.Rand = randx.NewSysRand(1)
	return cf
}

func newSession(t *testing.T, hs *surface.Headless, cf Config) *Session {
	t.Helper()
	s, err := Initialize(hs, cf)
	require.NoError(t, err)
	t.Cleanup(func() { s.Teardown() })
	return s
}

func TestInitialize(t *testing.T) {
	hs := surface.NewHeadless(800, 600)
	s := newSession(t, hs, testConfig())
	assert.NotEmpty(t, s.ID)
	cam := s.Scene.Camera
	assert.Equal(t, float32(75), cam.FOV)
	assert.Equal(t, float32(0.1), cam.Near)
	assert.Equal(t, float32(1000), cam.Far)
	assert.InDelta(t, 800.0/600, cam.Aspect, 1e-6)
	assert.Equal(t, image.Pt(800, 600), s.Renderer.PixelSize())
	assert.True(t, hs.Attached())
	assert.NotNil(t, s.Scene.LightByName("ambient"))
	assert.IsType(t, &xyz.PointLight{}, s.Scene.LightByName("key"))
	require.NotNil(t, s.Stars)
	assert.Len(t, s.Stars.Mesh.AsMeshBase().Pos, 100)
	assert.Equal(t, 2, s.Disposables())
	// resize plus the four control events
	assert.Equal(t, 5, hs.Listeners.Total())
}

func TestSeedPerSession(t *testing.T) {
	cf := DefaultConfig()
	cf.Stars = 20
	cf.Seed = 7
	a := newSession(t, surface.NewHeadless(80, 60), cf)
	b := newSession(t, surface.NewHeadless(80, 60), cf)
	assert.NotSame(t, a.Rand, b.Rand)
	assert.Equal(t, a.Stars.Mesh.AsMeshBase().Pos, b.Stars.Mesh.AsMeshBase().Pos)
}

func TestInitializeErrors(t *testing.T) {
	_, err := Initialize(nil, testConfig())
	var ie *InitializationError
	require.ErrorAs(t, err, &ie)
	assert.ErrorIs(t, err, ErrMissingSurface)

	_, err = Initialize(surface.NewHeadless(0, 0), testConfig())
	assert.ErrorIs(t, err, ErrMissingSurface)

	hs := surface.NewHeadless(100, 100)
	cf := testConfig()
	cf.NewRenderer = func() (xyz.Renderer, error) { return nil, errors.New("no gpu") }
	_, err = Initialize(hs, cf)
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "renderer", ie.Step)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "no gpu")
	assert.False(t, hs.Attached())
	assert.Zero(t, hs.Listeners.Total())
}

func TestStarPoints(t *testing.T) {
	pts := StarPoints(randx.NewSysRand(3), 1000, 2000)
	require.Len(t, pts, 1000)
	for _, p := range pts {
		for _, v := range []float32{p.X, p.Y, p.Z} {
			assert.True(t, v >= -1000 && v < 1000)
		}
	}
	assert.Equal(t, pts, StarPoints(randx.NewSysRand(3), 1000, 2000))
}

func TestLoop(t *testing.T) {
	hs := surface.NewHeadless(64, 48)
	s := newSession(t, hs, testConfig())
	var dts []float32
	s.Start(func(dt float32) { dts = append(dts, dt) })
	assert.Equal(t, 1, hs.Frames.Pending())
	hs.StepN(3)
	assert.Equal(t, []float32{1, 1, 1}, dts)
	assert.Equal(t, 3, s.Frames())
	assert.Equal(t, 3, hs.Presented)
	assert.Equal(t, image.Pt(64, 48), s.Image().Bounds().Size())
}

func TestDeltaTime(t *testing.T) {
	hs := surface.NewHeadless(64, 48)
	cf := testConfig()
	cf.DeltaTime = true
	s := newSession(t, hs, cf)
	var dts []float32
	s.Start(func(dt float32) { dts = append(dts, dt) })
	hs.Step(time.Second / 60)
	hs.Step(time.Second / 30)
	hs.Step(time.Second / 120)
	require.Len(t, dts, 3)
	assert.Equal(t, float32(1), dts[0])
	assert.InDelta(t, 2, dts[1], 1e-4)
	assert.InDelta(t, 0.5, dts[2], 1e-4)
}

func TestTeardown(t *testing.T) {
	hs := surface.NewHeadless(64, 48)
	s, err := Initialize(hs, testConfig())
	require.NoError(t, err)

	res := []*countDisposable{{}, {}, {}}
	for _, r := range res {
		assert.True(t, s.RegisterDisposable(r))
	}
	assert.False(t, s.RegisterDisposable(res[0]))

	ticks := 0
	s.Start(func(dt float32) { ticks++ })
	hs.StepN(2)
	require.NoError(t, s.Teardown())

	assert.Zero(t, hs.Listeners.Total())
	assert.Zero(t, hs.Frames.Pending())
	assert.False(t, hs.Attached())
	for _, r := range res {
		assert.Equal(t, 1, r.n)
	}
	assert.True(t, s.Closed())
	assert.Nil(t, s.Image())

	// nothing is observable after teardown
	hs.StepN(3)
	assert.Equal(t, 2, ticks)
	assert.False(t, s.Tick(func(dt float32) { ticks++ }))
	assert.Equal(t, 2, ticks)
	assert.Equal(t, 2, s.Frames())

	late := &countDisposable{}
	assert.False(t, s.RegisterDisposable(late))
	assert.Zero(t, s.Listen(surface.Click, func(ev *surface.Event) {}))

	assert.NoError(t, s.Teardown())
	for _, r := range res {
		assert.Equal(t, 1, r.n)
	}
	assert.Zero(t, late.n)
}

func TestTeardownDisposalErrors(t *testing.T) {
	hs := surface.NewHeadless(64, 48)
	s, err := Initialize(hs, testConfig())
	require.NoError(t, err)
	bad := &countDisposable{err: xyz.ErrDisposed}
	good := &countDisposable{}
	s.RegisterDisposable(bad)
	s.RegisterDisposable(good)

	err = s.Teardown()
	assert.ErrorIs(t, err, xyz.ErrDisposed)
	assert.Equal(t, 1, good.n)
	assert.NoError(t, s.Teardown())
}

func TestTeardownFromUpdate(t *testing.T) {
	hs := surface.NewHeadless(64, 48)
	s, err := Initialize(hs, testConfig())
	require.NoError(t, err)
	s.Start(func(dt float32) { s.Teardown() })
	hs.StepN(2)
	assert.Zero(t, s.Frames())
	assert.Zero(t, hs.Frames.Pending())
}

func TestResize(t *testing.T) {
	hs := surface.NewHeadless(800, 600)
	s := newSession(t, hs, testConfig())
	hs.Resize(1024, 512, 2)
	assert.InDelta(t, 2.0, s.Scene.Camera.Aspect, 1e-6)
	assert.Equal(t, image.Pt(2048, 1024), s.Renderer.PixelSize())
	assert.Equal(t, 512, s.Controls.Height)

	s.Start(nil)
	hs.StepN(1)
	assert.Equal(t, image.Pt(2048, 1024), s.Image().Bounds().Size())

	// a collapsed surface keeps the last size
	hs.Resize(0, 0, 2)
	assert.Equal(t, image.Pt(2048, 1024), s.Renderer.PixelSize())
}

func TestNDC(t *testing.T) {
	hs := surface.NewHeadless(200, 100)
	s := newSession(t, hs, testConfig())
	x, y := s.NDC(image.Pt(100, 50))
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)
	x, y = s.NDC(image.Pt(0, 0))
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)
}

func TestOrbitControlsDrag(t *testing.T) {
	cam := &xyz.Camera{}
	cam.Defaults()
	oc := NewOrbitControls(cam)
	oc.Damping = 0
	oc.Height = 100

	// a quarter of the height is a quarter turn
	oc.HandleEvent(&surface.Event{Type: surface.PointerDown, Pos: image.Pt(0, 0)})
	oc.HandleEvent(&surface.Event{Type: surface.PointerMove, Pos: image.Pt(-25, 0)})
	oc.HandleEvent(&surface.Event{Type: surface.PointerUp, Pos: image.Pt(-25, 0)})
	assert.True(t, oc.Dragged())
	oc.Update()
	assert.InDelta(t, 10, cam.Pos.X, 1e-4)
	assert.InDelta(t, 0, cam.Pos.Z, 1e-4)
	assert.InDelta(t, 10, cam.Distance(), 1e-4)

	oc.HandleEvent(&surface.Event{Type: surface.PointerDown, Pos: image.Pt(5, 5)})
	oc.HandleEvent(&surface.Event{Type: surface.PointerUp, Pos: image.Pt(5, 5)})
	assert.False(t, oc.Dragged())

	// moves without a press do nothing
	oc.HandleEvent(&surface.Event{Type: surface.PointerMove, Pos: image.Pt(50, 50)})
	assert.False(t, oc.Update())
}

func TestOrbitControlsDamping(t *testing.T) {
	cam := &xyz.Camera{}
	cam.Defaults()
	oc := NewOrbitControls(cam)
	oc.Height = 100
	oc.Rotate(-25, 0)
	oc.Update()
	// first frame applies 5% of the quarter turn
	angle := math32.Atan2(cam.Pos.X, cam.Pos.Z)
	assert.InDelta(t, 0.05*math32.Pi/2, angle, 1e-4)
	for range 500 {
		oc.Update()
	}
	angle = math32.Atan2(cam.Pos.X, cam.Pos.Z)
	assert.InDelta(t, math32.Pi/2, angle, 1e-3)
}

func TestOrbitControlsZoom(t *testing.T) {
	cam := &xyz.Camera{}
	cam.Defaults()
	oc := NewOrbitControls(cam)
	oc.Zoom(-1)
	oc.Update()
	assert.InDelta(t, 9.5, cam.Distance(), 1e-4)
	oc.Zoom(1)
	oc.Update()
	assert.InDelta(t, 10, cam.Distance(), 1e-4)

	oc.MaxDistance = 10
	oc.Zoom(1)
	oc.Update()
	assert.InDelta(t, 10, cam.Distance(), 1e-4)

	oc.EnableZoom = false
	oc.Zoom(-1)
	oc.Update()
	assert.InDelta(t, 10, cam.Distance(), 1e-4)
}

func TestOrbitControlsAutoRotate(t *testing.T) {
	cam := &xyz.Camera{}
	cam.Defaults()
	oc := NewOrbitControls(cam)
	oc.Damping = 0
	oc.AutoRotate = true
	oc.AutoRotateSpeed = 60
	oc.Update()
	// 60 turns per minute is one turn per second: 1/60 turn per frame
	angle := math32.Atan2(cam.Pos.X, cam.Pos.Z)
	assert.InDelta(t, -2*math32.Pi/60, angle, 1e-4)
}
