// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"time"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/math32"
)

// Message is a pointer event sent by a remote client, as JSON.
type Message struct {
	Type   events.Types   `json:"type"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	Button events.Buttons `json:"button"`
	Mods   key.Modifiers  `json:"mods"`
	DX     float32        `json:"dx"`
	DY     float32        `json:"dy"`

	// T is the time of the script step in milliseconds from the start,
	// for a message made by [Script.Messages].
	T int `json:"t,omitempty"`
}

// ReadMessage decodes a message from JSON data.
func ReadMessage(data []byte) (*Message, error) {
	m := &Message{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Event returns the pointer event of the message at the given time.
func (m *Message) Event(at time.Time) (events.Event, error) {
	pos := image.Pt(m.X, m.Y)
	var ev events.Event
	switch m.Type {
	case events.MouseDown, events.MouseUp, events.MouseLeave:
		ev = events.NewMouse(m.Type, m.Button, pos, m.Mods)
	case events.MouseMove:
		ev = events.NewMouseMove(m.Button, pos, pos, m.Mods)
	case events.MouseDrag:
		ev = events.NewMouseDrag(m.Button, pos, pos, pos, m.Mods)
	case events.Scroll:
		ev = events.NewScroll(pos, math32.Vec2(m.DX, m.DY), m.Mods)
	default:
		return nil, fmt.Errorf("replay: %v is not a pointer input event", m.Type)
	}
	ev.AsBase().SetTime(at)
	return ev, nil
}

// Messages returns the pointer steps of the script as client messages.
// A move with a button pressed is a drag. Wait steps and host steps
// have no message.
func (sc *Script) Messages() []*Message {
	var msgs []*Message
	button := events.NoButton
	for i := range sc.Steps {
		st := &sc.Steps[i]
		m := &Message{X: st.X, Y: st.Y, Mods: st.Mods, T: st.T}
		switch st.Action {
		case Down:
			button = st.Button
			if button == events.NoButton {
				button = events.Left
			}
			m.Type, m.Button = events.MouseDown, button
		case Up:
			m.Type, m.Button = events.MouseUp, button
			button = events.NoButton
		case Move:
			m.Type, m.Button = events.MouseMove, button
			if button != events.NoButton {
				m.Type = events.MouseDrag
			}
		case Scroll:
			m.Type, m.DX, m.DY = events.Scroll, st.DX, st.DY
		case Leave:
			m.Type = events.MouseLeave
			button = events.NoButton
		default:
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs
}

// SendScript sends the messages of the script to send as JSON, in
// order. If realtime, each one is sent at the time of its step
// relative to start.
func SendScript(ctx context.Context, sc *Script, start time.Time, realtime bool, send func(msg []byte) error) error {
	for _, m := range sc.Messages() {
		if realtime {
			if err := sleepUntil(ctx, start.Add(time.Duration(m.T)*time.Millisecond)); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		if err := send(b); err != nil {
			return fmt.Errorf("replay: send %v at %dms: %w", m.Type, m.T, err)
		}
	}
	return nil
}

// Run handles the events sent to q, and ticks the chart every frame,
// until ctx is done.
func (p *Player) Run(ctx context.Context, q *events.Queue) error {
	tick := time.NewTicker(max(p.Chart.Settings.FrameInterval(), time.Millisecond))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.Ready():
			p.Do(func() {
				for ev := q.NextEvent(); ev != nil; ev = q.NextEvent() {
					p.Chart.HandleEvent(ev)
				}
			})
		case now := <-tick.C:
			p.Do(func() { p.Chart.Tick(now) })
		}
	}
}
