// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of pointer event, and also the
// level at which one can select which events to listen to.
// The type includes both the source and the "action" of the event
// (e.g., MouseDown, MouseUp are separate event types). The standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// provide the basis for the event type names.
// Unless otherwise noted, all events are marked as Unique,
// meaning they are always sent. Non-Unique events are subject
// to compression in a [Queue], where if the last event added
// (and not yet processed) is of the same type then it is
// replaced with the new one, instead of adding.
type Types int64 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is always sent when the mouse is moving but no button is down.
	// Not unique, and Prev position is updated during compression.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there is a button down.
	// The start pos indicates where the button was first pressed.
	// Not unique, and Prev position is updated during compression.
	MouseDrag

	// Click represents a MouseDown followed by MouseUp in sequence on the
	// same target, with the same button and little movement in between.
	Click

	// DoubleClick represents two Click events in a row in rapid succession.
	DoubleClick

	// ContextMenu is sent for a right-button (or Control+left) click,
	// before any click derived from it. Listeners can call PreventDefault
	// to claim the click for the chart.
	ContextMenu

	// MouseLeave is when the pointer leaves the chart surface.
	// It cancels any pointer interaction in progress.
	MouseLeave

	// Scroll is for scroll wheel events.
	// These are not unique and Delta is accumulated during compression.
	Scroll

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [TypesN]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "Click", "DoubleClick", "ContextMenu", "MouseLeave", "Scroll"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return fmt.Sprintf("Types(%d)", int64(tp))
	}
	return typesNames[tp]
}

// SetString sets the type from its name.
func (tp *Types) SetString(s string) error {
	for i, nm := range typesNames {
		if nm == s {
			*tp = Types(i)
			return nil
		}
	}
	return fmt.Errorf("events.Types: unknown event type %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (tp Types) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *Types) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}
