// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"cogentcore.org/core/base/errors"
)

var (
	// ErrMissingSurface means that there is no surface to render into,
	// or that it has not been laid out yet. Callers should retry when
	// the surface is resized.
	ErrMissingSurface = errors.New("viewer: missing surface")

	// ErrUnavailable means that no renderer could be created on the host;
	// the visualization is unavailable.
	ErrUnavailable = errors.New("viewer: visualization unavailable")
)

// InitializationError is returned by [Initialize] when a session
// cannot be built.
type InitializationError struct {

	// Step is the initialization step that failed.
	Step string

	Err error
}

func (ie *InitializationError) Error() string {
	return "viewer: initialize: " + ie.Step + ": " + ie.Err.Error()
}

func (ie *InitializationError) Unwrap() error { return ie.Err }
