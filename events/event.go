// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer events that drive chart interaction,
// and the listener registry they are dispatched through.
package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/plotinteract/events/key"
)

// Event is the interface for all pointer events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// Pos returns the pixel position of the event.
	Pos() image.Point

	// PrevPos returns the position of the previous event of the same type.
	PrevPos() image.Point

	// StartPos returns the position where a button was first pressed.
	StartPos() image.Point

	// PrevDelta returns Pos - PrevPos.
	PrevDelta() image.Point

	// StartDelta returns Pos - StartPos.
	StartDelta() image.Point

	// MouseButton returns the button associated with the event.
	MouseButton() Buttons

	// Modifiers returns the modifier keys held during the event.
	Modifiers() key.Modifiers

	// HasAnyModifier tests whether any of the given modifiers are held.
	HasAnyModifier(mods ...key.Modifiers) bool

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as handled, so later listeners skip it.
	SetHandled()

	// PreventDefault tells the sender not to perform the default action
	// associated with the event (e.g., suppressing a context-menu click).
	PreventDefault()

	// IsDefaultPrevented returns whether PreventDefault has been called.
	IsDefaultPrevented() bool

	// IsUnique returns whether the event must always be delivered,
	// as opposed to being subject to compression.
	IsUnique() bool

	// Clone returns an independent copy of the event.
	Clone() Event

	// AsBase returns the embedded [Base].
	AsBase() *Base
}

// Base is the base type for events.
// It is designed to support most event types so no further subtypes
// are needed.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// GenTime records the time when the event was first generated.
	GenTime time.Time

	// Where is the event location, in pixels relative to the chart surface.
	Where image.Point

	// Prev is the previous location for move and drag events.
	Prev image.Point

	// Start is the starting location for drag events.
	Start image.Point

	// Button is the mouse button being pressed or released, if relevant.
	Button Buttons

	// Mods are the modifier keys present at time of event.
	Mods key.Modifiers

	// Unique is set for events that must not be compressed.
	Unique bool

	// Handled is set once a listener has processed the event.
	Handled bool

	// DefaultPrevented is set when a listener calls PreventDefault.
	DefaultPrevented bool
}

// Init sets the generation time to now if it has not been set.
func (ev *Base) Init() {
	if ev.GenTime.IsZero() {
		ev.GenTime = time.Now()
	}
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

// SetTime sets the event generation time.
func (ev *Base) SetTime(t time.Time) {
	ev.GenTime = t
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) PrevPos() image.Point {
	return ev.Prev
}

func (ev *Base) StartPos() image.Point {
	return ev.Start
}

func (ev *Base) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) StartDelta() image.Point {
	return ev.Where.Sub(ev.Start)
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) HasAnyModifier(mods ...key.Modifiers) bool {
	return key.HasAnyModifier(ev.Mods, mods...)
}

func (ev *Base) IsHandled() bool {
	return ev.Handled
}

func (ev *Base) SetHandled() {
	ev.Handled = true
}

func (ev *Base) PreventDefault() {
	ev.DefaultPrevented = true
}

func (ev *Base) IsDefaultPrevented() bool {
	return ev.DefaultPrevented
}

func (ev *Base) IsUnique() bool {
	return ev.Unique
}

// SetUnique marks the event as unique, so it is never compressed.
func (ev *Base) SetUnique() {
	ev.Unique = true
}

func (ev *Base) AsBase() *Base {
	return ev
}
