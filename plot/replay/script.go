// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay plays scripts of pointer events and host calls
// against a [chart.Chart], to record the chart events they produce.
package replay

import (
	"fmt"
	"strings"

	"cogentcore.org/plotinteract/base/iox/yamlx"
	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/plot/axis"
)

// Actions are the actions of script steps.
type Actions int32 //enums:enum

const (
	// Wait does nothing but advance the time.
	Wait Actions = iota

	// Down presses a button.
	Down

	// Up releases the pressed button.
	Up

	// Move moves the pointer, dragging if a button is pressed.
	Move

	// Scroll scrolls the wheel.
	Scroll

	// Leave moves the pointer out of the chart.
	Leave

	// Relayout sets axis ranges as the host program.
	Relayout

	// Autorange autoranges axes as the host program.
	Autorange

	ActionsN
)

var actionsNames = [ActionsN]string{"wait", "down", "up", "move", "scroll", "leave", "relayout", "autorange"}

func (ac Actions) String() string {
	if ac < 0 || ac >= ActionsN {
		return fmt.Sprintf("Actions(%d)", int32(ac))
	}
	return actionsNames[ac]
}

// SetString sets the action from its (case insensitive) name.
func (ac *Actions) SetString(s string) error {
	for i, nm := range actionsNames {
		if strings.EqualFold(nm, s) {
			*ac = Actions(i)
			return nil
		}
	}
	return fmt.Errorf("replay.Actions: unknown action %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (ac Actions) MarshalText() ([]byte, error) {
	return []byte(ac.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ac *Actions) UnmarshalText(text []byte) error {
	return ac.SetString(string(text))
}

// Step is one step of a [Script].
type Step struct {

	// Action is what the step does.
	Action Actions `yaml:"action"`

	// T is the time of the step in milliseconds from the start.
	T int `yaml:"t"`

	// X and Y are the pointer position in pixels.
	X int `yaml:"x"`
	Y int `yaml:"y"`

	// Button is the button pressed by a Down step, Left by default.
	Button events.Buttons `yaml:"button"`

	// Mods are the modifier keys held.
	Mods key.Modifiers `yaml:"mods"`

	// DX and DY are the wheel deltas of a Scroll step.
	DX float32 `yaml:"dx"`
	DY float32 `yaml:"dy"`

	// Ranges are the ranges of a Relayout step.
	Ranges map[string]axis.Range `yaml:"ranges"`

	// Axes are the axes of an Autorange step.
	Axes []string `yaml:"axes"`
}

// Script is a sequence of steps in time order.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// OpenScript opens a script from the given YAML file.
func OpenScript(filename string) (*Script, error) {
	sc := &Script{}
	if err := yamlx.Open(sc, filename); err != nil {
		return nil, err
	}
	return sc, sc.Validate()
}

// ReadScriptBytes reads a script from YAML data.
func ReadScriptBytes(data []byte) (*Script, error) {
	sc := &Script{}
	if err := yamlx.ReadBytes(sc, data); err != nil {
		return nil, err
	}
	return sc, sc.Validate()
}

// Validate returns an error if the steps are out of time order, or
// a host step is missing its axes.
func (sc *Script) Validate() error {
	last := 0
	for i := range sc.Steps {
		st := &sc.Steps[i]
		if st.T < last {
			return fmt.Errorf("replay: step %d at %dms is before the previous step at %dms", i, st.T, last)
		}
		last = st.T
		switch st.Action {
		case Relayout:
			if len(st.Ranges) == 0 {
				return fmt.Errorf("replay: relayout step %d has no ranges", i)
			}
		case Autorange:
			if len(st.Axes) == 0 {
				return fmt.Errorf("replay: autorange step %d has no axes", i)
			}
		}
	}
	return nil
}

// Duration returns the time of the last step.
func (sc *Script) Duration() int {
	if len(sc.Steps) == 0 {
		return 0
	}
	return sc.Steps[len(sc.Steps)-1].T
}
