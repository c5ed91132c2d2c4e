// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testOutput struct{ img *image.RGBA }

func (to *testOutput) Image() *image.RGBA { return to.img }

func TestTypes(t *testing.T) {
	assert.Equal(t, "pointermove", PointerMove.String())
	tp, ok := TypeFromString("wheel")
	assert.True(t, ok)
	assert.Equal(t, Wheel, tp)
	_, ok = TypeFromString("keydown")
	assert.False(t, ok)
	assert.Equal(t, "unknown", TypesN.String())
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var got []string
	a := ls.Add(Click, func(ev *Event) { got = append(got, "a") })
	ls.Add(Click, func(ev *Event) { got = append(got, "b") })
	ls.Add(Resize, func(ev *Event) { got = append(got, "r") })
	assert.Equal(t, 2, ls.Len(Click))
	assert.Equal(t, 3, ls.Total())

	ls.Call(&Event{Type: Click})
	assert.Equal(t, []string{"a", "b"}, got)

	assert.True(t, ls.Remove(a))
	assert.False(t, ls.Remove(a))
	got = nil
	ls.Call(&Event{Type: Click})
	assert.Equal(t, []string{"b"}, got)
}

func TestListenerRemovedDuringCall(t *testing.T) {
	var ls Listeners
	n := 0
	var id ListenerID
	id = ls.Add(Click, func(ev *Event) {
		n++
		ls.Remove(id)
	})
	ls.Call(&Event{Type: Click})
	ls.Call(&Event{Type: Click})
	assert.Equal(t, 1, n)
}

func TestFrames(t *testing.T) {
	var fr Frames
	var ran []int
	fr.Request(func(now time.Time) { ran = append(ran, 1) })
	id := fr.Request(func(now time.Time) { ran = append(ran, 2) })
	fr.Cancel(id)
	fr.Cancel(99)
	assert.Equal(t, 1, fr.Pending())

	// requests made while running go to the next frame
	fr.Request(func(now time.Time) {
		ran = append(ran, 3)
		fr.Request(func(now time.Time) { ran = append(ran, 4) })
	})
	assert.Equal(t, 2, fr.Run(time.Now()))
	assert.Equal(t, []int{1, 3}, ran)
	assert.Equal(t, 1, fr.Run(time.Now()))
	assert.Equal(t, []int{1, 3, 4}, ran)
	assert.Equal(t, 0, fr.Run(time.Now()))
}

func TestHeadless(t *testing.T) {
	hs := NewHeadless(800, 600)
	assert.Equal(t, image.Pt(800, 600), hs.Size())
	assert.Equal(t, float32(1), hs.PixelRatio())

	out := &testOutput{img: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	hs.Attach(out)
	var presented []*image.RGBA
	hs.OnPresent = func(img *image.RGBA) { presented = append(presented, img) }

	assert.False(t, hs.Step(time.Millisecond))
	var last time.Time
	hs.RequestFrame(func(now time.Time) { last = now })
	assert.True(t, hs.Step(time.Second))
	assert.True(t, time.Unix(1, 1e6).Equal(last))
	assert.Equal(t, 1, hs.Presented)
	assert.Equal(t, []*image.RGBA{out.img}, presented)

	hs.Detach(&testOutput{})
	assert.True(t, hs.Attached())
	hs.Detach(out)
	assert.False(t, hs.Attached())
	hs.RequestFrame(func(now time.Time) {})
	hs.Step(time.Second)
	assert.Equal(t, 1, hs.Presented)
}

func TestHeadlessEvents(t *testing.T) {
	hs := NewHeadless(100, 100)
	var evs []Types
	var pos []image.Point
	for tp := Resize; tp < TypesN; tp++ {
		hs.Listen(tp, func(ev *Event) {
			evs = append(evs, ev.Type)
			pos = append(pos, ev.Pos)
		})
	}
	hs.Resize(200, 100, 2)
	assert.Equal(t, image.Pt(200, 100), hs.Size())
	assert.Equal(t, float32(2), hs.PixelRatio())
	hs.Resize(300, 100, 0)
	assert.Equal(t, float32(2), hs.PixelRatio())

	hs.Click(5, 6)
	hs.Drag(image.Pt(1, 1), image.Pt(9, 9))
	hs.Scroll(3)
	assert.Equal(t, []Types{Resize, Resize, Click, PointerDown, PointerMove, PointerUp, Wheel}, evs)
	assert.Equal(t, image.Pt(5, 6), pos[2])
	assert.Equal(t, image.Pt(9, 9), pos[5])

	id := hs.Listen(Click, func(ev *Event) { t.Error("removed listener called") })
	hs.Unlisten(id)
	hs.Click(0, 0)
}
