// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "time"

// FrameID identifies a requested frame callback.
type FrameID uint64

// Frames is a queue of one-shot frame callbacks, like a browser's
// animation frame requests. Callbacks requested while the queue is
// running are run on the next frame.
type Frames struct {
	lastID  FrameID
	pending []frame
}

type frame struct {
	id  FrameID
	fun func(now time.Time)
}

// Request adds a callback for the next frame.
func (fr *Frames) Request(fun func(now time.Time)) FrameID {
	fr.lastID++
	fr.pending = append(fr.pending, frame{fr.lastID, fun})
	return fr.lastID
}

// Cancel removes a pending callback. It is a no-op for ids that
// already ran or were never requested.
func (fr *Frames) Cancel(id FrameID) {
	for i, f := range fr.pending {
		if f.id == id {
			fr.pending = append(fr.pending[:i:i], fr.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of pending callbacks.
func (fr *Frames) Pending() int {
	return len(fr.pending)
}

// Run runs all pending callbacks, returning how many ran.
func (fr *Frames) Run(now time.Time) int {
	run := fr.pending
	fr.pending = nil
	for _, f := range run {
		f.fun(now)
	}
	return len(run)
}
