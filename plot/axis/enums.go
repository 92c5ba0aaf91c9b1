// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"strings"
)

// Scales are the scale kinds that map data values onto an axis.
type Scales int32 //enums:enum

const (
	// Linear maps data values linearly onto the axis.
	Linear Scales = iota

	// Log maps the base-10 logarithm of data values linearly onto
	// the axis. Non-positive values are clamped to [SmallestPositive].
	Log

	// Date maps dates, stored as milliseconds since the Unix epoch,
	// linearly onto the axis.
	Date

	ScalesN
)

var scalesNames = [ScalesN]string{"linear", "log", "date"}

func (sc Scales) String() string {
	if sc < 0 || sc >= ScalesN {
		return fmt.Sprintf("Scales(%d)", int32(sc))
	}
	return scalesNames[sc]
}

// SetString sets the scale from its (case insensitive) name.
// The empty string is Linear.
func (sc *Scales) SetString(s string) error {
	if s == "" || s == "-" {
		*sc = Linear
		return nil
	}
	for i, nm := range scalesNames {
		if strings.EqualFold(nm, s) {
			*sc = Scales(i)
			return nil
		}
	}
	return fmt.Errorf("axis.Scales: unknown scale %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (sc Scales) MarshalText() ([]byte, error) {
	return []byte(sc.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sc *Scales) UnmarshalText(text []byte) error {
	return sc.SetString(string(text))
}

// States are the states of the range history of an axis.
type States int32 //enums:enum

const (
	// Unset is the state before the axis has been drawn.
	Unset States = iota

	// Drawn is the state after the first draw, before any user
	// or autorange change to the range.
	Drawn

	// UserRanged is the state after a range has been set by a drag,
	// a relayout, or a reset to the initial range.
	UserRanged

	// AutoRanged is the state after the range has been recomputed
	// from the data, by a double-click or an explicit autorange.
	AutoRanged

	StatesN
)

var statesNames = [StatesN]string{"Unset", "Drawn", "UserRanged", "AutoRanged"}

func (st States) String() string {
	if st < 0 || st >= StatesN {
		return fmt.Sprintf("States(%d)", int32(st))
	}
	return statesNames[st]
}

// Anchors specify which edges of a range move in response to a
// pixel delta, see [Axis.RangeAfterPixelDelta].
type Anchors int32 //enums:enum

const (
	// Both edges move by the same amount: a pan.
	Both Anchors = iota

	// Start moves the edge at Range[0] (left or bottom),
	// keeping the other edge fixed.
	Start

	// End moves the edge at Range[1] (right or top),
	// keeping the other edge fixed.
	End

	AnchorsN
)

var anchorsNames = [AnchorsN]string{"Both", "Start", "End"}

func (an Anchors) String() string {
	if an < 0 || an >= AnchorsN {
		return fmt.Sprintf("Anchors(%d)", int32(an))
	}
	return anchorsNames[an]
}
