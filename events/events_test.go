// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/math32"
	"github.com/stretchr/testify/assert"
)

func TestMouse(t *testing.T) {
	ev := NewMouse(MouseDown, Left, image.Pt(10, 20), key.NewModifiers(key.Shift))
	assert.Equal(t, MouseDown, ev.Type())
	assert.True(t, ev.IsUnique())
	assert.False(t, ev.Time().IsZero())
	assert.True(t, ev.HasAnyModifier(key.Shift, key.Alt))
	assert.Equal(t, image.Pt(10, 20), ev.StartPos())

	d := NewMouseDrag(Left, image.Pt(15, 18), image.Pt(12, 20), image.Pt(10, 20), 0)
	assert.False(t, d.IsUnique())
	assert.Equal(t, image.Pt(3, -2), d.PrevDelta())
	assert.Equal(t, image.Pt(5, -2), d.StartDelta())

	cl := ev.Clone()
	cl.SetHandled()
	assert.True(t, cl.IsHandled())
	assert.False(t, ev.IsHandled())

	ev.PreventDefault()
	assert.True(t, ev.IsDefaultPrevented())

	tm := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ev.SetTime(tm)
	assert.Equal(t, tm, ev.Time())
	assert.Contains(t, ev.String(), "MouseDown{Button: Left")
}

func TestTypesText(t *testing.T) {
	var tp Types
	assert.NoError(t, tp.UnmarshalText([]byte("DoubleClick")))
	assert.Equal(t, DoubleClick, tp)
	assert.Error(t, tp.SetString("Magnify"))
	assert.Equal(t, "Types(99)", Types(99).String())

	var bt Buttons
	assert.NoError(t, bt.UnmarshalText([]byte("right")))
	assert.Equal(t, Right, bt)
	b, _ := bt.MarshalText()
	assert.Equal(t, "Right", string(b))
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(Click, func(e Event) { order = append(order, 1) })
	ls.Add(Click, func(e Event) {
		order = append(order, 2)
	})
	ls.Add(ContextMenu, func(e Event) {
		order = append(order, 3)
		e.SetHandled()
	})
	ls.Add(ContextMenu, func(e Event) { order = append(order, 4) })

	ls.Call(NewMouse(Click, Left, image.Pt(1, 1), 0))
	assert.Equal(t, []int{2, 1}, order)

	order = nil
	ls.Call(NewMouse(ContextMenu, Right, image.Pt(1, 1), 0))
	assert.Equal(t, []int{4, 3}, order)
	assert.True(t, ls.HasListeners(Click))
	assert.False(t, ls.HasListeners(Scroll))
}

func TestQueueCompression(t *testing.T) {
	var q Queue
	q.Send(NewMouse(MouseDown, Left, image.Pt(0, 0), 0))
	q.Send(NewMouseDrag(Left, image.Pt(2, 0), image.Pt(0, 0), image.Pt(0, 0), 0))
	q.Send(NewMouseDrag(Left, image.Pt(5, 0), image.Pt(2, 0), image.Pt(0, 0), 0))
	q.Send(NewScroll(image.Pt(5, 0), math32.Vec2(0, 3), 0))
	q.Send(NewScroll(image.Pt(5, 0), math32.Vec2(0, 4), 0))
	q.Send(NewMouse(MouseUp, Left, image.Pt(5, 0), 0))
	assert.Equal(t, 4, q.Len())

	select {
	case <-q.Ready():
	default:
		t.Error("queue should be ready")
	}

	assert.Equal(t, MouseDown, q.NextEvent().Type())
	d := q.NextEvent()
	assert.Equal(t, image.Pt(5, 0), d.Pos())
	assert.Equal(t, image.Pt(0, 0), d.PrevPos())
	s := q.NextEvent().(*MouseScroll)
	assert.Equal(t, math32.Vec2(0, 7), s.Delta)
	assert.Equal(t, MouseUp, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
}

func TestRestrictModes(t *testing.T) {
	assert.Equal(t, RestrictX, RestrictModeBits(key.NewModifiers(key.Shift, key.Alt)))
	assert.Equal(t, RestrictY, RestrictModeBits(key.NewModifiers(key.Alt)))
	xf, yf := RestrictNone.Factors()
	assert.Equal(t, 1.0, xf)
	assert.Equal(t, 1.0, yf)
	xf, yf = RestrictY.Factors()
	assert.Equal(t, 0.0, xf)
	assert.Equal(t, 1.0, yf)
}
