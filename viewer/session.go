// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer manages the life cycle of one 3D viewing session bound
// to a [surface.Surface]: building the scene, camera, renderer, lights,
// starfield and orbit controls; running the per-frame animation loop;
// following resizes; and releasing every resource at teardown.
package viewer

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/orrery/base/randx"
	"cogentcore.org/orrery/surface"
	"cogentcore.org/orrery/xyz"
	"github.com/google/uuid"
)

// UpdateFunc is called once per frame, before rendering, with the
// number of frame units elapsed (1 unless [Config.DeltaTime] is set).
type UpdateFunc func(dt float32)

// frameTime is the duration of one frame unit for [Config.DeltaTime].
const frameTime = time.Second / 60

// Session is one mounted 3D view. It owns every resource it creates
// and must be released with [Session.Teardown]. A session is only used
// from the goroutine that drives its surface.
type Session struct {

	// ID uniquely identifies the session in logs.
	ID string

	Config Config

	Surface surface.Surface

	Scene *xyz.Scene

	Renderer xyz.Renderer

	Controls *OrbitControls

	// Rand is the random source for the session.
	Rand randx.Rand

	// Stars is the starfield, if any.
	Stars *xyz.Solid

	disposables []xyz.Disposable
	registered  map[xyz.Disposable]bool
	listeners   []surface.ListenerID

	update       UpdateFunc
	frame        surface.FrameID
	framePending bool
	now, last    time.Time

	attached bool
	frames   int
	torn     bool
}

// Initialize builds a new session on the surface. The surface must have
// a non-zero size, otherwise an [*InitializationError] wrapping
// [ErrMissingSurface] is returned. If the renderer cannot be created,
// the error wraps [ErrUnavailable]. The session does not animate until
// [Session.Start].
func Initialize(sf surface.Surface, cfg Config) (*Session, error) {
	if sf == nil {
		return nil, &InitializationError{Step: "surface", Err: ErrMissingSurface}
	}
	sz := sf.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, &InitializationError{Step: "surface", Err: fmt.Errorf("%w: size %v", ErrMissingSurface, sz)}
	}
	s := &Session{ID: uuid.NewString(), Config: cfg, Surface: sf, registered: map[xyz.Disposable]bool{}}
	s.Rand = cfg.random()

	s.Scene = xyz.NewScene(cfg.Name)
	s.Scene.Background = cfg.Background
	cam := &s.Scene.Camera
	cam.FOV = cfg.FOV
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	cam.Pos = cfg.CameraPos
	cam.LookAt(cam.Target)
	cam.Aspect = float32(sz.X) / float32(sz.Y)
	cam.UpdateProjectionMatrix()

	rend, err := cfg.renderer()
	if err != nil {
		errors.Log(s.Teardown())
		return nil, &InitializationError{Step: "renderer", Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}
	s.Renderer = rend
	rend.SetPixelRatio(sf.PixelRatio())
	rend.SetSize(sz.X, sz.Y)
	sf.Attach(rend)
	s.attached = true

	xyz.NewAmbientLight(s.Scene, "ambient", cfg.AmbientColor, cfg.AmbientIntensity)
	switch cfg.KeyLight {
	case DirKey:
		xyz.NewDirLight(s.Scene, "key", colors.White, cfg.KeyLightIntensity).Pos = cfg.KeyLightPos
	default:
		xyz.NewPointLight(s.Scene, "key", colors.White, cfg.KeyLightIntensity).Pos = cfg.KeyLightPos
	}
	s.addStars()

	oc := NewOrbitControls(cam)
	oc.Damping = cfg.Damping
	oc.EnableZoom = cfg.EnableZoom
	oc.AutoRotate = cfg.AutoRotate
	oc.AutoRotateSpeed = cfg.AutoRotateSpeed
	oc.Height = sz.Y
	s.Controls = oc

	s.Listen(surface.Resize, func(ev *surface.Event) { s.HandleResize() })
	for _, tp := range []surface.Types{surface.PointerDown, surface.PointerMove, surface.PointerUp, surface.Wheel} {
		s.Listen(tp, oc.HandleEvent)
	}
	slog.Info("viewer: session initialized", "session", s.ID, "scene", cfg.Name, "size", sz, "pixelRatio", sf.PixelRatio())
	return s, nil
}

// RegisterDisposable tracks a resource for release at teardown.
// It returns false, without tracking, if the resource is already
// registered or the session has been torn down.
func (s *Session) RegisterDisposable(res xyz.Disposable) bool {
	if s.torn || res == nil || s.registered[res] {
		return false
	}
	s.registered[res] = true
	s.disposables = append(s.disposables, res)
	return true
}

// Disposables returns the number of registered resources.
func (s *Session) Disposables() int {
	return len(s.disposables)
}

// Listen adds a surface listener that is removed at teardown.
// It returns 0 after teardown.
func (s *Session) Listen(typ surface.Types, fun func(ev *surface.Event)) surface.ListenerID {
	if s.torn {
		return 0
	}
	id := s.Surface.Listen(typ, fun)
	s.listeners = append(s.listeners, id)
	return id
}

// Start starts the animation loop, calling update every frame.
func (s *Session) Start(update UpdateFunc) {
	s.update = update
	s.schedule()
}

func (s *Session) schedule() {
	if s.torn || s.framePending {
		return
	}
	s.frame = s.Surface.RequestFrame(s.runFrame)
	s.framePending = true
}

func (s *Session) runFrame(now time.Time) {
	s.framePending = false
	s.now = now
	if s.Tick(s.update) {
		s.schedule()
	}
}

// Tick runs one frame: the controls update, then update, then rendering.
// It returns false, doing nothing, once teardown has begun.
func (s *Session) Tick(update UpdateFunc) bool {
	if s.torn {
		return false
	}
	dt := float32(1)
	if s.Config.DeltaTime {
		now := s.now
		if now.IsZero() {
			now = time.Now()
		}
		if !s.last.IsZero() {
			dt = float32(now.Sub(s.last)) / float32(frameTime)
		}
		s.last = now
	}
	s.Controls.Update()
	if update != nil {
		update(dt)
	}
	if s.torn { // update may tear down
		return false
	}
	s.Scene.Update()
	if err := s.Renderer.Render(s.Scene); err != nil {
		slog.Warn("viewer: render failed", "session", s.ID, "err", err)
		return true
	}
	s.frames++
	return true
}

// HandleResize updates the camera aspect ratio and the renderer size
// from the current surface size and pixel ratio.
func (s *Session) HandleResize() {
	if s.torn {
		return
	}
	sz := s.Surface.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	cam := &s.Scene.Camera
	cam.Aspect = float32(sz.X) / float32(sz.Y)
	cam.UpdateProjectionMatrix()
	s.Renderer.SetPixelRatio(s.Surface.PixelRatio())
	s.Renderer.SetSize(sz.X, sz.Y)
	s.Controls.Height = sz.Y
	slog.Debug("viewer: resized", "session", s.ID, "size", sz, "pixels", s.Renderer.PixelSize())
}

// Teardown removes the session listeners, cancels the pending frame,
// detaches the renderer from the surface, and disposes every registered
// resource once, in registration order. Disposal errors do not stop the
// rest of the cleanup; they are logged and returned joined. Calling
// Teardown again does nothing and returns nil.
func (s *Session) Teardown() error {
	if s.torn {
		return nil
	}
	s.torn = true
	for _, id := range s.listeners {
		s.Surface.Unlisten(id)
	}
	s.listeners = nil
	if s.framePending {
		s.Surface.CancelFrame(s.frame)
		s.framePending = false
	}
	if s.attached {
		s.Surface.Detach(s.Renderer)
		s.attached = false
	}
	var errs []error
	for _, res := range s.disposables {
		if err := res.Dispose(); err != nil {
			errs = append(errs, errors.Log(err))
		}
	}
	s.disposables = nil
	s.registered = nil
	if s.Renderer != nil {
		s.Renderer.Destroy()
	}
	slog.Info("viewer: session torn down", "session", s.ID, "scene", s.Config.Name, "frames", s.frames, "errors", len(errs))
	return errors.Join(errs...)
}

// Closed returns whether teardown has begun.
func (s *Session) Closed() bool {
	return s.torn
}

// Frames returns the number of frames rendered.
func (s *Session) Frames() int {
	return s.frames
}

// Image returns the last rendered frame, or nil after teardown.
func (s *Session) Image() *image.RGBA {
	if s.torn || s.Renderer == nil {
		return nil
	}
	return s.Renderer.Image()
}

// NDC converts a css pixel position on the surface to normalized
// device coordinates, with +y up.
func (s *Session) NDC(pos image.Point) (x, y float32) {
	sz := s.Surface.Size()
	x = float32(pos.X)/float32(sz.X)*2 - 1
	y = -float32(pos.Y)/float32(sz.Y)*2 + 1
	return
}
