// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"image"
	"math"

	"cogentcore.org/orrery/surface"
)

// clientMessage is a JSON message from the browser. Positions are in
// css pixels relative to the top left of the canvas.
type clientMessage struct {
	Type string `json:"type"`

	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	PixelRatio float32 `json:"pixelRatio,omitempty"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	DeltaY float64 `json:"deltaY,omitempty"`

	// Name is the name of the toggle: distances or autoRotate.
	Name string `json:"name,omitempty"`
}

// event returns the surface event for pointer, click and wheel messages.
func (cm *clientMessage) event() (*surface.Event, bool) {
	tp, ok := surface.TypeFromString(cm.Type)
	if !ok || tp == surface.Resize {
		return nil, false
	}
	ev := &surface.Event{Type: tp, Pos: image.Pt(int(math.Round(cm.X)), int(math.Round(cm.Y)))}
	if tp == surface.Wheel {
		switch {
		case cm.DeltaY > 0:
			ev.Delta.Y = 1
		case cm.DeltaY < 0:
			ev.Delta.Y = -1
		}
	}
	return ev, true
}

// serverMessage is a JSON message to the browser. Frames are sent
// as binary messages instead.
type serverMessage struct {
	Type string `json:"type"`

	// ID is the body to navigate to.
	ID string `json:"id,omitempty"`

	Error string `json:"error,omitempty"`
}

const (
	msgReady       = "ready"
	msgNavigate    = "navigate"
	msgUnavailable = "unavailable"
	msgResize      = "resize"
	msgToggle      = "toggle"
)
