// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planets provides the static catalog of celestial bodies
// shown by the orrery viewers, in a meaningful catalog order.
package planets

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// Body is one celestial body in a [Catalog] and its display attributes.
// Bodies are read-only once a catalog has been loaded.
type Body struct {

	// ID is the unique, case-sensitive key of the body (e.g. "saturn").
	ID string `toml:"id" yaml:"id" json:"id"`

	// Name is the display name.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Type is the classification, e.g. "Gas Giant".
	Type string `toml:"type" yaml:"type" json:"type"`

	Description string `toml:"description" yaml:"description" json:"description"`

	// DistanceFromSun is the mean distance from the reference star, in million km.
	DistanceFromSun float64 `toml:"distance" yaml:"distance" json:"distanceFromSun"`

	// OrbitalPeriod is in Earth days.
	OrbitalPeriod float64 `toml:"period" yaml:"period" json:"orbitalPeriod"`

	// Diameter is in km.
	Diameter float64 `toml:"diameter" yaml:"diameter" json:"diameter"`

	Moons int `toml:"moons" yaml:"moons" json:"moons"`

	// Temperature is a display string for the temperature range.
	Temperature string `toml:"temperature" yaml:"temperature" json:"temperature"`

	// Color is the hex display color, e.g. "#1E90FF".
	Color string `toml:"color" yaml:"color" json:"color"`

	// Size is the relative display size used for rendering proportions.
	// It is not physically accurate.
	Size float64 `toml:"size" yaml:"size" json:"size"`

	// Facts are optional highlight facts, in display order.
	Facts []string `toml:"facts,omitempty" yaml:"facts,omitempty" json:"facts,omitempty"`

	// Rings marks a ring-bearing body, which the detail viewer
	// renders with a ring around it.
	Rings bool `toml:"rings,omitempty" yaml:"rings,omitempty" json:"rings,omitempty"`

	// rgba is the parsed Color, set by validate.
	rgba color.RGBA
}

// RGBA returns the parsed display color of the body.
func (b *Body) RGBA() color.RGBA {
	return b.rgba
}

// validate checks the per-body invariants and caches the parsed color.
func (b *Body) validate() error {
	if b.ID == "" {
		return errEmptyID
	}
	if b.Size <= 0 {
		return errBadSize
	}
	c, err := colors.FromHex(b.Color)
	if err != nil {
		return err
	}
	b.rgba = c
	return nil
}
