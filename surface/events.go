// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"time"
)

// Types are the types of surface events.
type Types int32

const (
	// Resize is sent when the size or pixel ratio of the surface changes.
	Resize Types = iota

	// Click is a pointer press and release without intervening drag
	// handling by the surface.
	Click

	PointerDown
	PointerMove
	PointerUp

	// Wheel is a scroll wheel motion; Delta.Y is positive away from the user.
	Wheel

	TypesN
)

var typeNames = [...]string{"resize", "click", "pointerdown", "pointermove", "pointerup", "wheel"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "unknown"
	}
	return typeNames[tp]
}

// TypeFromString returns the event type with the given name.
func TypeFromString(s string) (Types, bool) {
	for i, nm := range typeNames {
		if nm == s {
			return Types(i), true
		}
	}
	return TypesN, false
}

// Event is a surface event, in css pixels relative to the top left of the surface.
type Event struct {
	Type Types

	// Pos is the pointer position.
	Pos image.Point

	// Delta is the wheel scroll amount.
	Delta image.Point

	// Time is when the event happened.
	Time time.Time
}

// ListenerID identifies a registered listener.
type ListenerID uint64

// Listeners registers event listener functions by type, called in
// the order they were added.
type Listeners struct {
	lastID ListenerID
	byType map[Types][]listener
}

type listener struct {
	id  ListenerID
	fun func(ev *Event)
}

// Add adds a function for given type, returning its id.
func (ls *Listeners) Add(typ Types, fun func(ev *Event)) ListenerID {
	if ls.byType == nil {
		ls.byType = make(map[Types][]listener)
	}
	ls.lastID++
	ls.byType[typ] = append(ls.byType[typ], listener{ls.lastID, fun})
	return ls.lastID
}

// Remove removes the listener with the given id, returning false if
// it is not registered.
func (ls *Listeners) Remove(id ListenerID) bool {
	for typ, lst := range ls.byType {
		for i, l := range lst {
			if l.id == id {
				ls.byType[typ] = append(lst[:i:i], lst[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Len returns the number of listeners for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len(ls.byType[typ])
}

// Total returns the number of listeners of all types.
func (ls *Listeners) Total() int {
	n := 0
	for _, lst := range ls.byType {
		n += len(lst)
	}
	return n
}

// Call calls all functions for the given event. Listeners removed
// during the call are still called for this event.
func (ls *Listeners) Call(ev *Event) {
	lst := ls.byType[ev.Type]
	if len(lst) == 0 {
		return
	}
	for _, l := range append([]listener(nil), lst...) {
		l.fun(ev)
	}
}
