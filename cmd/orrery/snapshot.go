// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orrery/detail"
	"cogentcore.org/orrery/overview"
	"cogentcore.org/orrery/surface"
	"cogentcore.org/orrery/viewer"
	"cogentcore.org/orrery/xyz/raster"
	"github.com/anthonynsimon/bild/transform"
)

// Snapshot renders the overview, or the detail scene of a body, to an image file.
func Snapshot(c *Config) error {
	if err := applyEnv(c); err != nil {
		return err
	}
	img, err := snapshot(c)
	if err != nil {
		return err
	}
	if err := raster.Save(img, c.Output); err != nil {
		return err
	}
	slog.Info("orrery: saved snapshot", "file", c.Output, "size", img.Bounds().Size())
	return nil
}

// snapshot renders the configured scene headlessly for c.Frames frames
// and returns the last frame at the configured size.
func snapshot(c *Config) (image.Image, error) {
	cat, err := loadCatalog(c)
	if err != nil {
		return nil, err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("orrery: invalid snapshot size %dx%d", c.Width, c.Height)
	}
	ss := max(c.Supersample, 1)
	hs := surface.NewHeadless(c.Width, c.Height)
	hs.Resize(c.Width, c.Height, float32(ss))
	cfg := viewerConfig(c)

	var s *viewer.Session
	if c.Body != "" {
		dt, err := detail.Mount(hs, cat, detail.Options{BodyID: c.Body, Viewer: &cfg})
		if err != nil {
			return nil, err
		}
		defer func() { errors.Log(dt.Unmount()) }()
		s = dt.Session
	} else {
		ov, err := overview.Mount(hs, cat, overview.Options{ShowDistances: c.Distances, Viewer: &cfg})
		if err != nil {
			return nil, err
		}
		defer func() { errors.Log(ov.Unmount()) }()
		s = ov.Session
	}
	hs.StepN(max(c.Frames, 1))
	img := s.Image()
	if ss == 1 {
		return img, nil
	}
	return transform.Resize(img, c.Width, c.Height, transform.Linear), nil
}
