// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/plotinteract/events/key"
)

// RestrictModes interprets the modifier keys to determine which
// dimensions a pan or scroll-zoom applies to.
type RestrictModes int32 //enums:enum

const (
	// RestrictNone applies to both dimensions, and is the default when
	// no modifier key is pressed.
	RestrictNone RestrictModes = iota

	// RestrictX, activated by the Shift key, applies only to
	// the horizontal dimension.
	RestrictX

	// RestrictY, activated by the Alt key, applies only to
	// the vertical dimension.
	RestrictY
)

// RestrictModeBits returns the restrict mode based on given modifiers bitflags
func RestrictModeBits(mods key.Modifiers) RestrictModes {
	if key.HasAnyModifier(mods, key.Shift) {
		return RestrictX
	}
	if key.HasAnyModifier(mods, key.Alt) {
		return RestrictY
	}
	return RestrictNone
}

// Factors returns the x and y scale factors for the mode: 1 for a
// dimension that is affected, 0 for one that is not.
func (rm RestrictModes) Factors() (xf, yf float64) {
	switch rm {
	case RestrictX:
		return 1, 0
	case RestrictY:
		return 0, 1
	}
	return 1, 1
}
