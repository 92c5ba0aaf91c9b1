// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot/dragbox"
	"github.com/google/uuid"
)

// Intents are the classified gestures sent to the chart.
type Intents int32 //enums:enum

const (
	// Click is a press and release within the drag start distance.
	Click Intents = iota

	// DoubleClick is a second click on the same target within the
	// double-click interval. It replaces the second Click.
	DoubleClick

	// DragStart is sent when the pointer first moves beyond the
	// drag start distance from the press.
	DragStart

	// DragMove is an update of the drag position, at most once per frame.
	DragMove

	// DragEnd is the release at the end of a drag.
	DragEnd

	// DragCancel ends a drag without committing it.
	DragCancel

	// Hover is a pointer move with no button pressed.
	Hover

	// Leave is sent when the pointer leaves the chart.
	Leave

	// ScrollZoom is a scroll wheel motion.
	ScrollZoom

	IntentsN
)

var intentsNames = [IntentsN]string{"click", "doubleclick", "dragstart", "dragmove", "dragend", "dragcancel", "hover", "leave", "scrollzoom"}

func (it Intents) String() string {
	if it < 0 || it >= IntentsN {
		return fmt.Sprintf("Intents(%d)", int32(it))
	}
	return intentsNames[it]
}

// Target is what lies under the pointer: a handle of a subplot,
// or no subplot at all in the margins.
type Target struct {

	// Subplot is the ID of the subplot, empty for none.
	Subplot string

	// Handle is the drag handle of the subplot.
	Handle dragbox.Handles
}

// IsNone returns whether the target is outside every subplot.
func (t Target) IsNone() bool {
	return t.Subplot == "" || t.Handle == dragbox.NoHandle
}

func (t Target) String() string {
	if t.IsNone() {
		return "none"
	}
	return t.Subplot + ":" + t.Handle.String()
}

// Targeter returns the target at a pixel position.
type Targeter interface {
	TargetAt(pos image.Point) Target
}

// TargeterFunc is a function that implements [Targeter].
type TargeterFunc func(pos image.Point) Target

func (f TargeterFunc) TargetAt(pos image.Point) Target { return f(pos) }

// Intent is a classified gesture.
type Intent struct {

	// Type is the kind of gesture.
	Type Intents

	// Session is the ID of the press and drag session the intent
	// belongs to; zero for Hover, Leave and ScrollZoom.
	Session uuid.UUID

	// Target is the target at the press, or at Pos for intents
	// without a press.
	Target Target

	// Pos is the pointer position. For clicks, it is the position
	// of the press.
	Pos image.Point

	// Start is the position of the press.
	Start image.Point

	// Delta is the pointer motion since the press, for drags.
	Delta image.Point

	// Scroll is the scroll delta, for ScrollZoom.
	Scroll math32.Vector2

	// Time is the time of the event that produced the intent.
	Time time.Time

	// Event is a snapshot of the raw event the intent describes:
	// the press for clicks, and the triggering event otherwise.
	Event events.Event
}

func (in *Intent) String() string {
	return fmt.Sprintf("%v{Target: %v, Pos: %v, Delta: %v}", in.Type, in.Target, in.Pos, in.Delta)
}
