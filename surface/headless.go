// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"time"
)

// Headless is a [Surface] without a display. The caller drives it with
// [Headless.Step] and the event methods; presented frames are kept in
// memory.
type Headless struct {
	Listeners Listeners
	Frames    Frames

	size  image.Point
	ratio float32
	out   Output

	// now is the time of the last step.
	now time.Time

	// Presented is the number of frames presented.
	Presented int

	// OnPresent, if set, is called with each presented image.
	OnPresent func(img *image.RGBA)
}

var _ Surface = (*Headless)(nil)

// NewHeadless returns a new headless surface with the given css size
// and a pixel ratio of 1.
func NewHeadless(width, height int) *Headless {
	return &Headless{size: image.Pt(width, height), ratio: 1, now: time.Unix(0, 0)}
}

func (hs *Headless) Size() image.Point   { return hs.size }
func (hs *Headless) PixelRatio() float32 { return hs.ratio }

func (hs *Headless) Attach(out Output) { hs.out = out }

func (hs *Headless) Detach(out Output) {
	if hs.out == out {
		hs.out = nil
	}
}

// Attached returns whether an output is attached.
func (hs *Headless) Attached() bool { return hs.out != nil }

func (hs *Headless) Listen(typ Types, fun func(ev *Event)) ListenerID {
	return hs.Listeners.Add(typ, fun)
}

func (hs *Headless) Unlisten(id ListenerID) { hs.Listeners.Remove(id) }

func (hs *Headless) RequestFrame(fun func(now time.Time)) FrameID {
	return hs.Frames.Request(fun)
}

func (hs *Headless) CancelFrame(id FrameID) { hs.Frames.Cancel(id) }

// Step advances the clock by dt and runs the pending frame callbacks,
// then presents the attached output. It returns whether any callback ran.
func (hs *Headless) Step(dt time.Duration) bool {
	hs.now = hs.now.Add(dt)
	if hs.Frames.Run(hs.now) == 0 {
		return false
	}
	hs.present()
	return true
}

// StepN calls Step n times at 60 frames per second.
func (hs *Headless) StepN(n int) {
	for range n {
		hs.Step(time.Second / 60)
	}
}

func (hs *Headless) present() {
	if hs.out == nil {
		return
	}
	hs.Presented++
	if hs.OnPresent != nil {
		hs.OnPresent(hs.out.Image())
	}
}

// Resize sets the size and pixel ratio and sends a [Resize] event.
func (hs *Headless) Resize(width, height int, ratio float32) {
	hs.size = image.Pt(width, height)
	if ratio > 0 {
		hs.ratio = ratio
	}
	hs.Send(&Event{Type: Resize})
}

// Click sends a [Click] event at the given css position.
func (hs *Headless) Click(x, y int) {
	hs.Send(&Event{Type: Click, Pos: image.Pt(x, y)})
}

// Drag sends a pointer down, move and up sequence from one position to another.
func (hs *Headless) Drag(from, to image.Point) {
	hs.Send(&Event{Type: PointerDown, Pos: from})
	hs.Send(&Event{Type: PointerMove, Pos: to})
	hs.Send(&Event{Type: PointerUp, Pos: to})
}

// Scroll sends a [Wheel] event with the given vertical delta.
func (hs *Headless) Scroll(dy int) {
	hs.Send(&Event{Type: Wheel, Delta: image.Pt(0, dy)})
}

// Send delivers the event to the listeners.
func (hs *Headless) Send(ev *Event) {
	if ev.Time.IsZero() {
		ev.Time = hs.now
	}
	hs.Listeners.Call(ev)
}
