// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key contains the modifier key state carried by pointer events.
package key

import (
	"fmt"
	"strings"
)

// Modifiers are used as bitflags representing a set of modifier keys.
// The constants are bit indexes; use [Modifiers.HasFlag] and
// [Modifiers.SetFlag] to test and set them.
type Modifiers int64 //enums:bitflag

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = iota

	// Meta is the system meta key (the "Command" key on macOS
	// and the Windows key on Windows).
	Meta

	// Alt is the "Alt" ("Option" on macOS) key.
	Alt

	// Shift is the "Shift" key.
	Shift

	// ModifiersN is the number of modifier keys.
	ModifiersN
)

var modifierNames = [ModifiersN]string{"Control", "Meta", "Alt", "Shift"}

// HasFlag returns whether the set of modifiers has the given flag set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&(1<<uint(f)) != 0
}

// SetFlag sets the value of the given flags to the given state.
func (m *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*m |= 1 << uint(fl)
		} else {
			*m &^= 1 << uint(fl)
		}
	}
}

// NewModifiers returns a set of modifiers with the given flags set.
func NewModifiers(f ...Modifiers) Modifiers {
	var m Modifiers
	m.SetFlag(true, f...)
	return m
}

// HasAnyModifier tests whether any of the given modifiers are set.
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags.HasFlag(m) {
			return true
		}
	}
	return false
}

// HasAllModifiers tests whether all of the given modifiers are set.
func HasAllModifiers(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if !flags.HasFlag(m) {
			return false
		}
	}
	return true
}

// String returns the names of the set flags joined by "|".
func (m Modifiers) String() string {
	var names []string
	for i := Control; i < ModifiersN; i++ {
		if m.HasFlag(i) {
			names = append(names, modifierNames[i])
		}
	}
	return strings.Join(names, "|")
}

// BitIndexString returns the name of the single modifier key
// that m is the bit index of.
func (m Modifiers) BitIndexString() string {
	if m < 0 || m >= ModifiersN {
		return fmt.Sprintf("Modifiers(%d)", int64(m))
	}
	return modifierNames[m]
}

// ModifiersString returns a string representation of the modifiers
// using plus signs as separators, suitable for display.
func (m Modifiers) ModifiersString() string {
	var sb strings.Builder
	for i := Control; i < ModifiersN; i++ {
		if m.HasFlag(i) {
			sb.WriteString(modifierNames[i])
			sb.WriteString("+")
		}
	}
	return sb.String()
}

// SetString sets the modifier flags from a string of names
// separated by "|", "+" or ",". Names are case insensitive.
func (m *Modifiers) SetString(s string) error {
	*m = 0
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == '+' || r == ',' || r == ' '
	})
	for _, f := range fields {
		found := false
		for i, nm := range modifierNames {
			if strings.EqualFold(f, nm) {
				m.SetFlag(true, Modifiers(i))
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("key.Modifiers: unknown modifier %q", f)
		}
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m Modifiers) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Modifiers) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}
