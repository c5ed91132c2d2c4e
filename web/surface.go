// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"image"
	"time"

	"cogentcore.org/orrery/surface"
)

// wsSurface is the [surface.Surface] of one WebSocket connection,
// sized by the client and driven by the connection loop.
type wsSurface struct {
	listeners surface.Listeners
	frames    surface.Frames
	size      image.Point
	ratio     float32
	out       surface.Output
}

var _ surface.Surface = (*wsSurface)(nil)

func newSurface() *wsSurface {
	return &wsSurface{ratio: 1}
}

func (ws *wsSurface) Size() image.Point   { return ws.size }
func (ws *wsSurface) PixelRatio() float32 { return ws.ratio }
func (ws *wsSurface) Attach(out surface.Output) {
	ws.out = out
}

func (ws *wsSurface) Detach(out surface.Output) {
	if ws.out == out {
		ws.out = nil
	}
}

func (ws *wsSurface) Listen(typ surface.Types, fun func(ev *surface.Event)) surface.ListenerID {
	return ws.listeners.Add(typ, fun)
}

func (ws *wsSurface) Unlisten(id surface.ListenerID) { ws.listeners.Remove(id) }

func (ws *wsSurface) RequestFrame(fun func(now time.Time)) surface.FrameID {
	return ws.frames.Request(fun)
}

func (ws *wsSurface) CancelFrame(id surface.FrameID) { ws.frames.Cancel(id) }

// resize sets the size and ratio, returning whether either changed.
func (ws *wsSurface) resize(width, height int, ratio float32) bool {
	if ratio <= 0 {
		ratio = 1
	}
	sz := image.Pt(max(width, 0), max(height, 0))
	if sz == ws.size && ratio == ws.ratio {
		return false
	}
	ws.size, ws.ratio = sz, ratio
	return true
}

// frame runs the pending frame callbacks and returns the image to
// present, or nil if nothing was rendered.
func (ws *wsSurface) frame(now time.Time) *image.RGBA {
	if ws.frames.Run(now) == 0 || ws.out == nil {
		return nil
	}
	return ws.out.Image()
}
