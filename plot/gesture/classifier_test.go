// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot/dragbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var interior = Target{Subplot: "xy", Handle: dragbox.Interior}

// player sends events to a classifier at given times, counting the
// passthrough events.
type player struct {
	cl   *Classifier
	pass map[events.Types]int
	last image.Point
}

func newPlayer() *player {
	p := &player{pass: map[events.Types]int{}}
	p.cl = NewClassifier(nil, TargeterFunc(func(pos image.Point) Target {
		if pos.In(image.Rect(100, 50, 741, 371)) {
			return interior
		}
		return Target{}
	}))
	for _, tp := range []events.Types{events.Click, events.DoubleClick, events.ContextMenu} {
		p.cl.Passthrough.Add(tp, func(ev events.Event) { p.pass[ev.Type()]++ })
	}
	return p
}

func (p *player) send(ms int, ev events.Event) []Intent {
	ev.AsBase().SetTime(t0.Add(time.Duration(ms) * time.Millisecond))
	p.last = ev.Pos()
	return p.cl.HandleEvent(ev)
}

func (p *player) down(ms, x, y int, but events.Buttons, mods ...key.Modifiers) []Intent {
	return p.send(ms, events.NewMouse(events.MouseDown, but, image.Pt(x, y), key.NewModifiers(mods...)))
}

func (p *player) up(ms, x, y int, but events.Buttons) []Intent {
	return p.send(ms, events.NewMouse(events.MouseUp, but, image.Pt(x, y), 0))
}

func (p *player) drag(ms, x, y int) []Intent {
	return p.send(ms, events.NewMouseDrag(events.Left, image.Pt(x, y), p.last, image.Point{}, 0))
}

func (p *player) click(ms, x, y int) []Intent {
	p.down(ms, x, y, events.Left)
	return p.up(ms+50, x, y, events.Left)
}

func (p *player) tick(ms int) []Intent {
	return p.cl.Tick(t0.Add(time.Duration(ms) * time.Millisecond))
}

func types(ins []Intent) []Intents {
	var res []Intents
	for _, in := range ins {
		res = append(res, in.Type)
	}
	return res
}

func TestClick(t *testing.T) {
	p := newPlayer()
	assert.Empty(t, p.down(0, 200, 200, events.Left))
	assert.Equal(t, Pressed, p.cl.State)
	ins := p.up(50, 200, 200, events.Left)
	require.Len(t, ins, 1)
	in := ins[0]
	assert.Equal(t, Click, in.Type)
	assert.Equal(t, interior, in.Target)
	assert.Equal(t, image.Pt(200, 200), in.Pos)
	assert.Equal(t, events.MouseDown, in.Event.Type())
	assert.Equal(t, 1, p.pass[events.Click])
	assert.Equal(t, WaitingForClick, p.cl.State)
	assert.True(t, p.cl.Tracker.Armed)
}

func TestSloppyClick(t *testing.T) {
	p := newPlayer()
	p.down(0, 200, 200, events.Left)
	assert.Empty(t, p.drag(20, 204, 204))
	assert.Equal(t, Pressed, p.cl.State)
	ins := p.up(40, 204, 204, events.Left)
	require.Len(t, ins, 1)
	assert.Equal(t, Click, ins[0].Type)
	assert.Equal(t, image.Pt(200, 200), ins[0].Pos)
	assert.Equal(t, image.Pt(200, 200), ins[0].Event.Pos())
}

func TestDoubleClick(t *testing.T) {
	p := newPlayer()
	assert.Equal(t, []Intents{Click}, types(p.click(0, 200, 200)))
	assert.Equal(t, []Intents{DoubleClick}, types(p.click(150, 202, 201)))
	assert.Equal(t, 2, p.pass[events.Click])
	assert.Equal(t, 1, p.pass[events.DoubleClick])
	assert.Equal(t, Idle, p.cl.State)
	assert.False(t, p.cl.Tracker.Armed)

	// a third click starts over
	assert.Equal(t, []Intents{Click}, types(p.click(300, 200, 200)))
	assert.Equal(t, []Intents{DoubleClick}, types(p.click(400, 200, 200)))
}

func TestDoubleClickTimeout(t *testing.T) {
	p := newPlayer()
	p.click(0, 200, 200)
	assert.Empty(t, p.tick(300))
	assert.Equal(t, WaitingForClick, p.cl.State)
	assert.Empty(t, p.tick(400))
	assert.Equal(t, Idle, p.cl.State)
	assert.Equal(t, []Intents{Click}, types(p.click(410, 200, 200)))

	// a late second press without a tick is also a click
	p = newPlayer()
	p.click(0, 200, 200)
	assert.Equal(t, []Intents{Click}, types(p.click(400, 200, 200)))
}

func TestDoubleClickTarget(t *testing.T) {
	p := newPlayer()
	p.click(0, 200, 200)
	ins := p.click(100, 50, 20)
	assert.Equal(t, []Intents{Click}, types(ins))
	assert.True(t, ins[0].Target.IsNone())

	// too far apart
	p = newPlayer()
	p.click(0, 200, 200)
	assert.Equal(t, []Intents{Click}, types(p.click(100, 220, 200)))

	// other buttons do not pair
	p = newPlayer()
	p.down(0, 200, 200, events.Middle)
	p.up(20, 200, 200, events.Middle)
	p.down(40, 200, 200, events.Middle)
	assert.Equal(t, []Intents{Click}, types(p.up(60, 200, 200, events.Middle)))
}

func TestDrag(t *testing.T) {
	p := newPlayer()
	p.down(0, 200, 200, events.Left)
	assert.Empty(t, p.drag(10, 205, 200))
	ins := p.drag(20, 220, 200)
	assert.Equal(t, []Intents{DragStart, DragMove}, types(ins))
	assert.Equal(t, image.Pt(20, 0), ins[1].Delta)
	assert.Equal(t, ins[0].Session, ins[1].Session)
	assert.Equal(t, Dragging, p.cl.State)

	assert.Empty(t, p.drag(25, 230, 200))
	assert.Empty(t, p.tick(30))
	ins = p.tick(36)
	require.Len(t, ins, 1)
	assert.Equal(t, DragMove, ins[0].Type)
	assert.Equal(t, image.Pt(30, 0), ins[0].Delta)
	assert.Empty(t, p.tick(40))

	assert.Empty(t, p.drag(40, 240, 200))
	ins = p.up(45, 250, 200, events.Left)
	assert.Equal(t, []Intents{DragMove, DragEnd}, types(ins))
	assert.Equal(t, image.Pt(50, 0), ins[0].Delta)
	assert.Equal(t, image.Pt(50, 0), ins[1].Delta)
	assert.Equal(t, image.Pt(200, 200), ins[1].Start)
	assert.Equal(t, Idle, p.cl.State)
	assert.Zero(t, p.pass[events.Click])

	// release where the last move was sent
	p.down(100, 200, 200, events.Left)
	p.drag(120, 200, 260)
	assert.Equal(t, []Intents{DragEnd}, types(p.up(130, 200, 260, events.Left)))
}

func TestDragAfterClick(t *testing.T) {
	p := newPlayer()
	p.click(0, 200, 200)
	p.down(100, 200, 200, events.Left)
	assert.Equal(t, []Intents{DragStart, DragMove}, types(p.drag(120, 260, 200)))
	assert.False(t, p.cl.Tracker.Armed)
	assert.Equal(t, []Intents{DragEnd}, types(p.up(140, 260, 200, events.Left)))
	assert.Equal(t, []Intents{Click}, types(p.click(200, 200, 200)))
}

func TestPressDuringDrag(t *testing.T) {
	p := newPlayer()
	p.down(0, 200, 200, events.Left)
	p.drag(20, 240, 200)
	ins := p.down(30, 240, 200, events.Right)
	assert.Equal(t, []Intents{DragCancel}, types(ins))
	assert.Nil(t, p.cl.Session)
	assert.Equal(t, Idle, p.cl.State)
	assert.Empty(t, p.drag(40, 260, 200))
	assert.Empty(t, p.up(50, 260, 200, events.Right))
	assert.Empty(t, p.up(60, 260, 200, events.Left))

	// a second press before a drag starts cancels silently
	p.down(100, 200, 200, events.Left)
	assert.Empty(t, p.down(110, 200, 200, events.Left))
	assert.Empty(t, p.up(120, 200, 200, events.Left))
	assert.Zero(t, p.pass[events.Click])
}

func TestContextClick(t *testing.T) {
	p := newPlayer()
	p.down(0, 200, 200, events.Right)
	assert.Empty(t, p.drag(20, 260, 260))
	assert.Empty(t, p.up(40, 260, 260, events.Right))
	assert.Equal(t, 1, p.pass[events.ContextMenu])
	assert.Zero(t, p.pass[events.Click])

	p.down(100, 200, 200, events.Left, key.Control)
	assert.Empty(t, p.up(120, 200, 200, events.Left))
	assert.Equal(t, 2, p.pass[events.ContextMenu])

	p.cl.Passthrough.Add(events.ContextMenu, func(ev events.Event) { ev.PreventDefault() })
	p.down(200, 200, 200, events.Right)
	ins := p.up(220, 200, 200, events.Right)
	require.Len(t, ins, 1)
	assert.Equal(t, Click, ins[0].Type)
	assert.Equal(t, events.Right, ins[0].Event.MouseButton())
	assert.Zero(t, p.pass[events.Click])
	assert.False(t, p.cl.Tracker.Armed)
}

func TestLeave(t *testing.T) {
	p := newPlayer()
	p.down(0, 200, 200, events.Left)
	p.drag(20, 240, 200)
	ins := p.send(30, events.NewMouse(events.MouseLeave, events.NoButton, image.Pt(800, 200), 0))
	assert.Equal(t, []Intents{DragCancel, Leave}, types(ins))
	assert.Equal(t, image.Pt(40, 0), ins[0].Delta)
	assert.Equal(t, Idle, p.cl.State)
	assert.Empty(t, p.up(40, 800, 200, events.Left))
}

func TestHoverScroll(t *testing.T) {
	p := newPlayer()
	ins := p.send(0, events.NewMouseMove(events.NoButton, image.Pt(300, 100), image.Pt(299, 100), 0))
	require.Len(t, ins, 1)
	assert.Equal(t, Hover, ins[0].Type)
	assert.Equal(t, interior, ins[0].Target)

	ins = p.send(10, events.NewScroll(image.Pt(300, 100), math32.Vec2(0, 40), key.NewModifiers(key.Shift)))
	require.Len(t, ins, 1)
	assert.Equal(t, ScrollZoom, ins[0].Type)
	assert.Equal(t, math32.Vec2(0, 40), ins[0].Scroll)
	assert.Equal(t, events.RestrictX, events.RestrictModeBits(ins[0].Event.Modifiers()))

	// scrolling is ignored during a press
	p.down(20, 200, 200, events.Left)
	assert.Empty(t, p.send(30, events.NewScroll(image.Pt(300, 100), math32.Vec2(0, 40), 0)))
}
