// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overview provides the solar system overview scene: every
// catalog body revolving on its own orbit around a central Sun, with
// click-to-navigate picking and an optional distance overlay.
package overview

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/orrery/planets"
	"cogentcore.org/orrery/surface"
	"cogentcore.org/orrery/viewer"
	"cogentcore.org/orrery/xyz"
)

const (
	// SunRadius is the radius of the central Sun.
	SunRadius = 5

	// CameraDistance is the initial distance of the camera from the Sun.
	CameraDistance = 50

	// AutoRotateSpeed is the speed of camera auto-rotation.
	AutoRotateSpeed = 0.5

	bodySegments = 32
)

var (
	sunColor      = errors.Must1(colors.FromHex("#FFFF00"))
	orbitColor    = errors.Must1(colors.FromHex("#444444"))
	distanceColor = colors.White
)

// Options are the mount options for an [Overview].
type Options struct {

	// Interactive enables picking bodies to navigate to them.
	Interactive bool

	// AutoRotate starts the camera rotating around the Sun.
	AutoRotate bool

	// ShowDistances shows a line from the Sun to each body.
	ShowDistances bool

	// Navigate is called with the id of a picked body.
	Navigate func(id string)

	// Viewer is the session configuration; nil uses [viewer.DefaultConfig].
	// The camera, key light and auto-rotate speed are set by the overview.
	Viewer *viewer.Config
}

// Body is one catalog body in the overview.
type Body struct {
	Info *planets.Body

	// Index is the catalog index, which determines the orbit.
	Index int

	// Speed is the revolution angle per frame.
	Speed float32

	// Group revolves around the Sun and holds the Solid.
	Group *xyz.Group

	Solid *xyz.Solid

	Orbit *xyz.Solid

	// Distance is the line from the Sun to the body.
	Distance *xyz.Solid

	distLine *xyz.Lines
}

// Overview is a mounted overview scene.
type Overview struct {
	Session *viewer.Session

	Sun *xyz.Solid

	// Bodies are in catalog order.
	Bodies []*Body

	byID map[string]*Body

	catalog       *planets.Catalog
	navigate      func(id string)
	interactive   bool
	showDistances bool
}

// Mount builds the overview of the catalog on the surface and starts animating it.
func Mount(sf surface.Surface, cat *planets.Catalog, opts Options) (*Overview, error) {
	cfg := viewer.DefaultConfig()
	if opts.Viewer != nil {
		cfg = *opts.Viewer
	}
	cfg.Name = "overview"
	cfg.CameraPos = math32.Vec3(0, 0, CameraDistance)
	cfg.KeyLight = viewer.PointKey
	cfg.KeyLightPos = math32.Vector3{}
	cfg.AutoRotate = opts.AutoRotate
	cfg.AutoRotateSpeed = AutoRotateSpeed

	s, err := viewer.Initialize(sf, cfg)
	if err != nil {
		return nil, err
	}
	ov := &Overview{Session: s, byID: map[string]*Body{}, catalog: cat, navigate: opts.Navigate, interactive: opts.Interactive}

	sunMesh := xyz.NewSphere("sun", SunRadius, bodySegments, bodySegments)
	sunMat := xyz.NewMaterial(sunColor).SetEmissive(true)
	s.RegisterDisposable(sunMesh)
	s.RegisterDisposable(sunMat)
	ov.Sun = xyz.NewSolid(s.Scene, "sun", sunMesh, sunMat)

	for i, pb := range cat.All() {
		ov.addBody(i, pb)
	}
	ov.SetShowDistances(opts.ShowDistances)
	s.Listen(surface.Click, ov.handleClick)
	s.Scene.Update()
	s.Start(ov.update)
	slog.Info("overview: mounted", "session", s.ID, "bodies", len(ov.Bodies), "interactive", ov.interactive)
	return ov, nil
}

func (ov *Overview) addBody(i int, pb *planets.Body) {
	s := ov.Session
	radius := float32(OrbitRadius(i))
	b := &Body{Info: pb, Index: i, Speed: float32(RevolutionSpeed(i))}

	orbitMesh := xyz.NewLines(pb.ID+"-orbit", OrbitPath(radius, OrbitSegments))
	orbitMat := xyz.NewMaterial(orbitColor).SetOpacity(0.3)
	s.RegisterDisposable(orbitMesh)
	s.RegisterDisposable(orbitMat)
	b.Orbit = xyz.NewSolid(s.Scene, pb.ID+"-orbit", orbitMesh, orbitMat)

	mesh := xyz.NewSphere(pb.ID, float32(pb.Size), bodySegments, bodySegments)
	mat := xyz.NewMaterial(pb.RGBA()).SetSurface(0.7, 0.1)
	s.RegisterDisposable(mesh)
	s.RegisterDisposable(mat)
	b.Group = xyz.NewGroup(s.Scene, pb.ID+"-group")
	angle := s.Rand.Float32() * 2 * math32.Pi
	b.Solid = xyz.NewSolid(b.Group, pb.ID, mesh, mat).SetPickID(pb.ID).
		SetPos(math32.Cos(angle)*radius, 0, math32.Sin(angle)*radius)

	b.distLine = xyz.NewLines(pb.ID+"-distance", []math32.Vector3{{}, {}})
	distMat := xyz.NewMaterial(distanceColor).SetOpacity(0.5)
	s.RegisterDisposable(b.distLine)
	s.RegisterDisposable(distMat)
	b.Distance = xyz.NewSolid(s.Scene, pb.ID+"-distance", b.distLine, distMat)
	b.Distance.SetVisible(false)

	ov.Bodies = append(ov.Bodies, b)
	ov.byID[pb.ID] = b
}

// Body returns the body with the given id, or nil.
func (ov *Overview) Body(id string) *Body {
	return ov.byID[id]
}

// update advances the animation by dt frames.
func (ov *Overview) update(dt float32) {
	for _, b := range ov.Bodies {
		b.Group.Pose.Rot.Y += b.Speed * dt
	}
	if ov.showDistances {
		ov.updateDistances()
	}
}

// updateDistances moves each distance line to span from the Sun to its body.
func (ov *Overview) updateDistances() {
	ov.Session.Scene.Update()
	sun := ov.Sun.WorldPos()
	for _, b := range ov.Bodies {
		b.distLine.SetPoints(sun, b.Solid.WorldPos())
		b.Distance.SetVisible(true)
	}
}

// SetShowDistances shows or hides the distance lines. Hidden lines are kept.
func (ov *Overview) SetShowDistances(show bool) {
	ov.showDistances = show
	if show {
		ov.updateDistances()
		return
	}
	for _, b := range ov.Bodies {
		b.Distance.SetVisible(false)
	}
}

// ShowDistances returns whether the distance lines are shown.
func (ov *Overview) ShowDistances() bool {
	return ov.showDistances
}

// SetAutoRotate starts or stops camera auto-rotation.
func (ov *Overview) SetAutoRotate(on bool) {
	ov.Session.Controls.AutoRotate = on
}

// AutoRotate returns whether the camera is auto-rotating.
func (ov *Overview) AutoRotate() bool {
	return ov.Session.Controls.AutoRotate
}

// SetInteractive enables or disables picking.
func (ov *Overview) SetInteractive(on bool) {
	ov.interactive = on
}

// Interactive returns whether picking is enabled.
func (ov *Overview) Interactive() bool {
	return ov.interactive
}

// Pick returns the id of the nearest body under the given css pixel
// position, looking through anything that is not a body.
func (ov *Overview) Pick(pos image.Point) (string, bool) {
	s := ov.Session
	if s.Closed() {
		return "", false
	}
	s.Scene.Update()
	x, y := s.NDC(pos)
	return s.Scene.PickNDC(math32.Vec2(x, y))
}

func (ov *Overview) handleClick(ev *surface.Event) {
	if !ov.interactive || ov.Session.Controls.Dragged() {
		return
	}
	id, ok := ov.Pick(ev.Pos)
	if !ok {
		return
	}
	slog.Debug("overview: picked", "session", ov.Session.ID, "body", id)
	if ov.navigate != nil {
		ov.navigate(id)
	}
}

// LegendEntry is one row of the distance legend.
type LegendEntry struct {
	Name string

	// Distance is the distance from the Sun in million km.
	Distance float64
}

func (le LegendEntry) String() string {
	return fmt.Sprintf("%s: %g million km", le.Name, le.Distance)
}

// Legend returns the distance from the Sun of every body, in catalog order.
func (ov *Overview) Legend() []LegendEntry {
	lg := make([]LegendEntry, len(ov.Bodies))
	for i, b := range ov.Bodies {
		lg[i] = LegendEntry{Name: b.Info.Name, Distance: b.Info.DistanceFromSun}
	}
	return lg
}

// Unmount tears the scene down.
func (ov *Overview) Unmount() error {
	return ov.Session.Teardown()
}
