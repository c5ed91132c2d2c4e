// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planets

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownBody is returned when a requested body id has no
	// matching catalog entry.
	ErrUnknownBody = errors.New("unknown body")

	errEmptyID = errors.New("empty id")
	errBadSize = errors.New("size must be positive")
)

// Formats are the catalog file formats.
type Formats int32

const (
	// TOML is the default catalog format.
	TOML Formats = iota

	// YAML is an alternative catalog format.
	YAML
)

//go:embed planets.toml
var defaultData []byte

// Catalog is an ordered, read-only list of bodies with id lookup.
// The order is semantically meaningful: the overview places bodies
// on orbits by their catalog index.
type Catalog struct {
	bodies *ordmap.Map[string, *Body]
}

// file is the on-disk layout of a catalog.
type file struct {
	Bodies []*Body `toml:"bodies" yaml:"bodies"`
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(defaultData, TOML)
})

// Default returns the built-in catalog of the eight planets.
// It panics if the embedded data is invalid, which is a programmer error.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// New returns a validated catalog of the given bodies, in the given order.
func New(bodies ...*Body) (*Catalog, error) {
	c := &Catalog{bodies: ordmap.New[string, *Body]()}
	var errs []error
	for i, b := range bodies {
		if err := b.validate(); err != nil {
			errs = append(errs, fmt.Errorf("planets: body %d (%q): %w", i, b.ID, err))
			continue
		}
		if _, has := c.bodies.ValueByKeyTry(b.ID); has {
			errs = append(errs, fmt.Errorf("planets: body %d: duplicate id %q", i, b.ID))
			continue
		}
		c.bodies.Add(b.ID, b)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Parse decodes and validates a catalog in the given format.
func Parse(data []byte, format Formats) (*Catalog, error) {
	var f file
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	default:
		err = toml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("planets.Parse: %w", err)
	}
	return New(f.Bodies...)
}

// FormatFromFilename returns the catalog format implied by
// the file extension: .yaml and .yml are YAML, all else is TOML.
func FormatFromFilename(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// Open reads and validates the catalog in the given file.
func Open(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, FormatFromFilename(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Len returns the number of bodies.
func (c *Catalog) Len() int {
	return c.bodies.Len()
}

// All returns the bodies in catalog order.
func (c *Catalog) All() []*Body {
	return c.bodies.Values()
}

// At returns the body at the given catalog index.
func (c *Catalog) At(i int) *Body {
	return c.bodies.ValueByIndex(i)
}

// Lookup returns the body with the given id (exact, case-sensitive match),
// or an error wrapping [ErrUnknownBody].
func (c *Catalog) Lookup(id string) (*Body, error) {
	b, ok := c.bodies.ValueByKeyTry(id)
	if !ok {
		return nil, fmt.Errorf("planets: %w: %q", ErrUnknownBody, id)
	}
	return b, nil
}

// Index returns the catalog index of the given id, or -1 if not found.
func (c *Catalog) Index(id string) int {
	i, ok := c.bodies.IndexByKeyTry(id)
	if !ok {
		return -1
	}
	return i
}

// IDs returns the body ids in catalog order.
func (c *Catalog) IDs() []string {
	return c.bodies.Keys()
}
