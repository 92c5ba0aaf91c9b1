// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot/chart"
)

// Player plays scripts against a chart.
type Player struct {

	// Chart is the chart that events are sent to.
	Chart *chart.Chart

	// Start is the time that step times are relative to.
	Start time.Time

	// Realtime makes [Player.Play] wait until the time of each step.
	Realtime bool

	// mu is held while the chart is in use.
	mu sync.Mutex

	// pos is the last pointer position, and press the position of
	// the pressed button.
	pos, press image.Point
	button     events.Buttons
}

// NewPlayer returns a new player for the chart, starting now.
func NewPlayer(c *chart.Chart) *Player {
	return &Player{Chart: c, Start: time.Now()}
}

// Do calls fun while no step is being played, for changing the
// chart from other goroutines.
func (p *Player) Do(fun func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fun()
}

// Play plays the steps of the script in order. After the last step,
// the chart is given a tick one second later, which sends any drag
// move held back and ends any wait for a second click.
func (p *Player) Play(ctx context.Context, sc *Script) error {
	for i := range sc.Steps {
		st := &sc.Steps[i]
		at := p.Start.Add(time.Duration(st.T) * time.Millisecond)
		if p.Realtime {
			if err := sleepUntil(ctx, at); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		p.Do(func() { err = p.Step(st, at) })
		if err != nil {
			return fmt.Errorf("replay: step %d (%v): %w", i, st.Action, err)
		}
	}
	end := p.Start.Add(time.Duration(sc.Duration())*time.Millisecond + time.Second)
	p.Do(func() { p.Chart.Tick(end) })
	return nil
}

func sleepUntil(ctx context.Context, at time.Time) error {
	d := time.Until(at)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Step plays one step at the given time.
func (p *Player) Step(st *Step, at time.Time) error {
	p.Chart.Tick(at)
	pos := image.Pt(st.X, st.Y)
	var ev events.Event
	switch st.Action {
	case Wait:
		return nil
	case Relayout:
		return p.Chart.Relayout(st.Ranges)
	case Autorange:
		return p.Chart.Autorange(st.Axes...)
	case Down:
		but := st.Button
		if but == events.NoButton {
			but = events.Left
		}
		p.button, p.press = but, pos
		ev = events.NewMouse(events.MouseDown, but, pos, st.Mods)
	case Up:
		ev = events.NewMouse(events.MouseUp, p.button, pos, st.Mods)
		p.button = events.NoButton
	case Move:
		if p.button != events.NoButton {
			ev = events.NewMouseDrag(p.button, pos, p.pos, p.press, st.Mods)
		} else {
			ev = events.NewMouseMove(events.NoButton, pos, p.pos, st.Mods)
		}
	case Scroll:
		ev = events.NewScroll(pos, math32.Vec2(st.DX, st.DY), st.Mods)
	case Leave:
		ev = events.NewMouse(events.MouseLeave, events.NoButton, pos, st.Mods)
		p.button = events.NoButton
	default:
		return fmt.Errorf("unknown action %v", st.Action)
	}
	p.pos = pos
	ev.AsBase().SetTime(at)
	slog.Debug("replay: event", "event", ev)
	p.Chart.HandleEvent(ev)
	return nil
}

// JSONLines returns a chart listener that writes each event to w
// as one line of JSON.
func JSONLines(w io.Writer) func(ev chart.Event) {
	enc := json.NewEncoder(w)
	return func(ev chart.Event) {
		errors.Log(enc.Encode(ev))
	}
}
