// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
	"strings"

	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/math32"
)

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right

	ButtonsN
)

var buttonsNames = [ButtonsN]string{"NoButton", "Left", "Middle", "Right"}

func (bt Buttons) String() string {
	if bt < 0 || bt >= ButtonsN {
		return fmt.Sprintf("Buttons(%d)", int32(bt))
	}
	return buttonsNames[bt]
}

// SetString sets the button from its (case insensitive) name.
func (bt *Buttons) SetString(s string) error {
	for i, nm := range buttonsNames {
		if strings.EqualFold(nm, s) {
			*bt = Buttons(i)
			return nil
		}
	}
	return fmt.Errorf("events.Buttons: unknown button %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (bt Buttons) MarshalText() ([]byte, error) {
	return []byte(bt.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (bt *Buttons) UnmarshalText(text []byte) error {
	return bt.SetString(string(text))
}

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base
}

func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Button = but
	ev.Where = where
	ev.Start = where
	ev.Prev = where
	ev.Mods = mods
	ev.Init()
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
}

func (ev *Mouse) Clone() Event {
	nev := *ev
	return &nev
}

func NewMouseMove(but Buttons, where, prev image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseMove
	// not unique
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Mods = mods
	ev.Init()
	return ev
}

func NewMouseDrag(but Buttons, where, prev, start image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseDrag
	// not unique
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Start = start
	ev.Mods = mods
	ev.Init()
	return ev
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in pixel units.
	// Positive Y is scrolling down (toward the user), which zooms out.
	Delta math32.Vector2
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
}

func (ev *MouseScroll) Clone() Event {
	nev := *ev
	return &nev
}

func NewScroll(where image.Point, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	// not unique, but delta integrated!
	ev.Where = where
	ev.Prev = where
	ev.Start = where
	ev.Delta = delta
	ev.Mods = mods
	ev.Init()
	return ev
}
