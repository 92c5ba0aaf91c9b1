// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strings"
)

// DoubleClickPolicies are the actions of a double-click on a subplot.
type DoubleClickPolicies int32 //enums:enum

const (
	// ResetAutorange restores the initial ranges if any axis is away
	// from them, and otherwise autoranges.
	ResetAutorange DoubleClickPolicies = iota

	// Reset always restores the initial ranges. Axes without an
	// initial range autorange.
	Reset

	// Autosize always autoranges.
	Autosize

	// Disabled does nothing.
	Disabled

	DoubleClickPoliciesN
)

var doubleClickPoliciesNames = [DoubleClickPoliciesN]string{"reset+autorange", "reset", "autosize", "false"}

func (dp DoubleClickPolicies) String() string {
	if dp < 0 || dp >= DoubleClickPoliciesN {
		return fmt.Sprintf("DoubleClickPolicies(%d)", int32(dp))
	}
	return doubleClickPoliciesNames[dp]
}

// SetString sets the policy from its name. The empty string and
// "true" are ResetAutorange, and "disabled" is Disabled.
func (dp *DoubleClickPolicies) SetString(s string) error {
	switch strings.ToLower(s) {
	case "", "true":
		*dp = ResetAutorange
		return nil
	case "disabled":
		*dp = Disabled
		return nil
	}
	for i, nm := range doubleClickPoliciesNames {
		if strings.EqualFold(nm, s) {
			*dp = DoubleClickPolicies(i)
			return nil
		}
	}
	return fmt.Errorf("chart.DoubleClickPolicies: unknown policy %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (dp DoubleClickPolicies) MarshalText() ([]byte, error) {
	return []byte(dp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (dp *DoubleClickPolicies) UnmarshalText(text []byte) error {
	return dp.SetString(string(text))
}

// EventTypes are the types of chart events sent to listeners.
type EventTypes int32 //enums:enum

const (
	// Click is a click on a data point.
	Click EventTypes = iota

	// DoubleClick is a double-click on a subplot.
	DoubleClick

	// Hover is the pointer moving onto a data point.
	Hover

	// Unhover is the pointer moving off the hovered data point.
	Unhover

	// Relayout is a change of axis ranges.
	Relayout

	EventTypesN
)

var eventTypesNames = [EventTypesN]string{"click", "doubleclick", "hover", "unhover", "relayout"}

func (et EventTypes) String() string {
	if et < 0 || et >= EventTypesN {
		return fmt.Sprintf("EventTypes(%d)", int32(et))
	}
	return eventTypesNames[et]
}

// SetString sets the event type from its name.
func (et *EventTypes) SetString(s string) error {
	for i, nm := range eventTypesNames {
		if strings.EqualFold(nm, s) {
			*et = EventTypes(i)
			return nil
		}
	}
	return fmt.Errorf("chart.EventTypes: unknown event type %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (et EventTypes) MarshalText() ([]byte, error) {
	return []byte(et.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (et *EventTypes) UnmarshalText(text []byte) error {
	return et.SetString(string(text))
}
