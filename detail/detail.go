// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package detail provides the close-up scene of a single body,
// spinning in place, with a ring for ringed bodies.
package detail

import (
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
	// BodyRadius is the radius of the body sphere.
	BodyRadius = 2

	// SpinSpeed is the body rotation in radians per frame.
	SpinSpeed = 0.005

	// The ring, shown for bodies with rings, is an annulus from RingInner
	// to RingOuter drawn with RingSegments segments at RingOpacity.
	RingInner    = 3
	RingOuter    = 5
	RingSegments = 64
	RingOpacity  = 0.7

	bodySegments = 64
)

var ringColor = errors.Must1(colors.FromHex("#C2A278"))

// Options are the mount options for a [Detail].
type Options struct {

	// BodyID is the id of the body to show.
	BodyID string

	// Viewer is the session configuration; nil uses [viewer.DefaultConfig].
	// The camera, key light and auto-rotation are set by the detail scene.
	Viewer *viewer.Config
}

// Detail is a mounted detail scene.
type Detail struct {
	Session *viewer.Session

	Info *planets.Body

	Body *xyz.Solid

	// Ring is nil for bodies without rings.
	Ring *xyz.Solid
}

// Mount builds the detail scene of the body on the surface and starts
// animating it. An unknown body id returns an error wrapping
// [planets.ErrUnknownBody] without touching the surface.
func Mount(sf surface.Surface, cat *planets.Catalog, opts Options) (*Detail, error) {
	pb, err := cat.Lookup(opts.BodyID)
	if err != nil {
		return nil, err
	}
	cfg := viewer.DefaultConfig()
	if opts.Viewer != nil {
		cfg = *opts.Viewer
	}
	cfg.Name = "detail"
	cfg.CameraPos = math32.Vec3(0, 0, 5)
	cfg.KeyLight = viewer.DirKey
	cfg.KeyLightPos = math32.Vec3(5, 3, 5)
	cfg.AutoRotate = true
	cfg.AutoRotateSpeed = 1

	s, err := viewer.Initialize(sf, cfg)
	if err != nil {
		return nil, err
	}
	dt := &Detail{Session: s, Info: pb}

	mesh := xyz.NewSphere(pb.ID, BodyRadius, bodySegments, bodySegments)
	mat := xyz.NewMaterial(pb.RGBA()).SetSurface(0.7, 0.1)
	s.RegisterDisposable(mesh)
	s.RegisterDisposable(mat)
	dt.Body = xyz.NewSolid(s.Scene, pb.ID, mesh, mat)

	if pb.Rings {
		ringMesh := xyz.NewRing(pb.ID+"-ring", RingInner, RingOuter, RingSegments)
		ringMat := xyz.NewMaterial(ringColor).SetEmissive(true).SetOpacity(RingOpacity).SetSide(xyz.DoubleSide)
		s.RegisterDisposable(ringMesh)
		s.RegisterDisposable(ringMat)
		dt.Ring = xyz.NewSolid(s.Scene, pb.ID+"-ring", ringMesh, ringMat).SetRot(math32.Pi/2, 0, 0)
	}
	s.Start(dt.update)
	slog.Info("detail: mounted", "session", s.ID, "body", pb.ID, "rings", pb.Rings)
	return dt, nil
}

func (dt *Detail) update(d float32) {
	dt.Body.Pose.Rot.Y += SpinSpeed * d
}

// Unmount tears the scene down.
func (dt *Detail) Unmount() error {
	return dt.Session.Teardown()
}
