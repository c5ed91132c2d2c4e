// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orrery serves an interactive 3D solar system over HTTP,
// renders snapshots of its scenes, and lists the planet catalog.
package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/cli"
	"cogentcore.org/orrery/planets"
	"cogentcore.org/orrery/viewer"
	"cogentcore.org/orrery/xyz/raster"
	"github.com/caarlos0/env/v11"
)

// Config is the configuration for all orrery commands. Values come from
// defaults, then orrery.toml, then flags, then ORRERY_ environment variables.
type Config struct {

	// Addr is the address to serve on.
	Addr string `default:"localhost:8080" env:"ADDR"`

	// Catalog is a TOML or YAML catalog file to use instead of the
	// built-in eight planets.
	Catalog string `flag:"catalog" env:"CATALOG"`

	// Watch reloads the catalog file whenever it changes.
	Watch bool `cmd:"serve" default:"true"`

	// FPS is the number of frames per second streamed to each viewer.
	FPS int `default:"30" env:"FPS"`

	// Format is the frame encoding for viewers: png or jpeg.
	Format string `default:"png" env:"FORMAT"`

	// Seed makes star and orbit placement reproducible; 0 is random.
	Seed int64 `env:"SEED"`

	// DeltaTime scales motion by the elapsed time between frames,
	// instead of advancing a fixed step per frame.
	DeltaTime bool `env:"DELTA_TIME"`

	// Stars is the number of background stars.
	Stars int `default:"10000" env:"STARS"`

	// Output is the image file for a snapshot (.png or .jpg).
	Output string `cmd:"snapshot" posarg:"0" required:"-" default:"orrery.png"`

	// Body is the id of the body to snapshot in the detail scene;
	// the overview is used if it is empty.
	Body string `cmd:"snapshot" flag:"b,body"`

	Width  int `cmd:"snapshot" default:"800"`
	Height int `cmd:"snapshot" default:"600"`

	// Frames is the number of frames to run before the snapshot.
	Frames int `cmd:"snapshot" default:"60"`

	// Distances shows the distance lines in an overview snapshot.
	Distances bool `cmd:"snapshot"`

	// Supersample renders at this multiple of the size and scales down,
	// for smoother edges.
	Supersample int `cmd:"snapshot" default:"2"`
}

func main() {
	cli.Run(options(), &Config{}, commands()...)
}

func options() *cli.Options {
	opts := cli.DefaultOptions("orrery", "An interactive 3D solar system.")
	opts.DefaultFiles = []string{"orrery.toml"}
	return opts
}

// commands returns the orrery commands. Serve is the root command,
// run when no command is named.
func commands() []*cli.Cmd[*Config] {
	return []*cli.Cmd[*Config]{
		{Func: Serve, Name: "serve", Doc: "Serve serves the solar system viewers over HTTP until interrupted.", Root: true},
		{Func: Snapshot, Name: "snapshot", Doc: "Snapshot renders the overview, or the detail scene of a body, to an image file."},
		{Func: List, Name: "list", Doc: "List prints the planet catalog."},
	}
}

// applyEnv applies ORRERY_ environment variables on top of c.
func applyEnv(c *Config) error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: "ORRERY_"}); err != nil {
		return fmt.Errorf("orrery: environment: %w", err)
	}
	return nil
}

// loadCatalog returns the configured catalog file, or the built-in catalog.
func loadCatalog(c *Config) (*planets.Catalog, error) {
	if c.Catalog == "" {
		return planets.Default(), nil
	}
	cat, err := planets.Open(c.Catalog)
	if err != nil {
		return nil, err
	}
	slog.Info("orrery: loaded catalog", "file", c.Catalog, "bodies", cat.Len())
	return cat, nil
}

// viewerConfig returns the session configuration for c.
func viewerConfig(c *Config) viewer.Config {
	cfg := viewer.DefaultConfig()
	cfg.Stars = c.Stars
	cfg.DeltaTime = c.DeltaTime
	cfg.Seed = c.Seed
	return cfg
}

func frameFormat(name string) (raster.Formats, error) {
	return raster.FormatFromFilename("." + name)
}
