// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"log/slog"
	"time"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/plot/axis"
	"cogentcore.org/plotinteract/plot/hit"
)

// Event is a chart event sent to listeners: a [*PointEvent]
// or a [*RelayoutEvent].
type Event interface {

	// EventType returns the type of the event.
	EventType() EventTypes
}

// Snapshot is a copy of the raw pointer event behind a chart event.
type Snapshot struct {
	Type      events.Types   `json:"type"`
	ClientX   int            `json:"clientX"`
	ClientY   int            `json:"clientY"`
	Button    events.Buttons `json:"button"`
	Modifiers key.Modifiers  `json:"modifiers"`
	Time      time.Time      `json:"time"`
}

// SnapshotOf returns a snapshot of the given event, or nil for nil.
func SnapshotOf(ev events.Event) *Snapshot {
	if ev == nil {
		return nil
	}
	pos := ev.Pos()
	return &Snapshot{Type: ev.Type(), ClientX: pos.X, ClientY: pos.Y, Button: ev.MouseButton(), Modifiers: ev.Modifiers(), Time: ev.Time()}
}

// PointEvent is a Click, DoubleClick, Hover or Unhover event.
// Points is empty for DoubleClick.
type PointEvent struct {
	Type   EventTypes   `json:"type"`
	Points []*hit.Point `json:"points"`
	Event  *Snapshot    `json:"event,omitempty"`
}

func (ev *PointEvent) EventType() EventTypes { return ev.Type }

// RelayoutEvent is a Relayout event, with the new ranges of the
// changed axes, and the axes that were set to autorange.
type RelayoutEvent struct {
	Type      EventTypes            `json:"type"`
	Ranges    map[string]axis.Range `json:"ranges"`
	Autorange []string              `json:"autorange,omitempty"`
}

func (ev *RelayoutEvent) EventType() EventTypes { return ev.Type }

// Listeners holds the listener functions for each event type.
// They are called in the order added.
type Listeners map[EventTypes][]func(ev Event)

// Add adds a listener function for the given event type.
func (ls *Listeners) Add(typ EventTypes, fun func(ev Event)) {
	if *ls == nil {
		*ls = make(Listeners)
	}
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls the listeners for the event.
func (ls Listeners) Call(ev Event) {
	for _, fun := range ls[ev.EventType()] {
		fun(ev)
	}
}

// OnClick adds a listener for clicks on data points.
func (c *Chart) OnClick(fun func(ev *PointEvent)) {
	c.onPoint(Click, fun)
}

// OnDoubleClick adds a listener for double-clicks on subplots.
func (c *Chart) OnDoubleClick(fun func(ev *PointEvent)) {
	c.onPoint(DoubleClick, fun)
}

// OnHover adds a listener for the pointer moving onto data points.
func (c *Chart) OnHover(fun func(ev *PointEvent)) {
	c.onPoint(Hover, fun)
}

// OnUnhover adds a listener for the pointer moving off data points.
func (c *Chart) OnUnhover(fun func(ev *PointEvent)) {
	c.onPoint(Unhover, fun)
}

func (c *Chart) onPoint(typ EventTypes, fun func(ev *PointEvent)) {
	c.Listeners.Add(typ, func(ev Event) { fun(ev.(*PointEvent)) })
}

// OnRelayout adds a listener for changes of axis ranges.
func (c *Chart) OnRelayout(fun func(ev *RelayoutEvent)) {
	c.Listeners.Add(Relayout, func(ev Event) { fun(ev.(*RelayoutEvent)) })
}

// OnAny adds a listener for all event types.
func (c *Chart) OnAny(fun func(ev Event)) {
	for typ := range EventTypesN {
		c.Listeners.Add(typ, fun)
	}
}

// OnPassthrough adds a listener for the raw Click, DoubleClick and
// ContextMenu pointer events, which are sent whether or not they
// produce chart events. A ContextMenu listener can call PreventDefault
// to have the context click handled as a click.
func (c *Chart) OnPassthrough(typ events.Types, fun func(ev events.Event)) {
	c.Classifier.Passthrough.Add(typ, fun)
}

func (c *Chart) emit(ev Event) {
	slog.Debug("chart: event", "chart", c.ID, "type", ev.EventType())
	c.Listeners.Call(ev)
}
