// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture classifies raw pointer events into the intents of
// chart interaction: clicks, double-clicks, drags, hovers and scrolls.
package gesture

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/math32"
	"github.com/google/uuid"
)

// States are the states of the [Classifier].
type States int32 //enums:enum

const (
	// Idle has no button pressed and no click awaiting a second.
	Idle States = iota

	// Pressed has a button pressed that has not moved beyond the
	// drag start distance.
	Pressed

	// Dragging has a button pressed that has moved beyond the
	// drag start distance.
	Dragging

	// WaitingForClick has a click that a second click could make
	// into a double-click.
	WaitingForClick

	StatesN
)

var statesNames = [StatesN]string{"idle", "pressed", "dragging", "waitingforclick"}

func (st States) String() string {
	if st < 0 || st >= StatesN {
		return fmt.Sprintf("States(%d)", int32(st))
	}
	return statesNames[st]
}

// Session is one press of a button, through to its release.
type Session struct {

	// ID is the unique id of the session.
	ID uuid.UUID

	// Target is the target at the press.
	Target Target

	// Start is the position of the press.
	Start image.Point

	// Pos is the latest pointer position.
	Pos image.Point

	// Button is the pressed button.
	Button events.Buttons

	// Mods are the modifiers at the press.
	Mods key.Modifiers

	// Context is whether this is a context-menu press: the right
	// button, or the left button with Control. It never drags.
	Context bool

	// Double is whether the press can complete a double-click.
	Double bool

	// Press is the press event.
	Press events.Event

	// lastMove is the time the last DragMove was sent.
	lastMove time.Time

	// lastPos is the position of the last DragMove sent.
	lastPos image.Point

	// pending is a DragMove held back by the frame interval.
	pending *Intent
}

// Delta returns the motion since the press.
func (s *Session) Delta() image.Point {
	return s.Pos.Sub(s.Start)
}

// Tracker records the last click, to pair it with a second click
// into a double-click.
type Tracker struct {

	// Armed is whether a click is awaiting a second.
	Armed bool

	// Time is the time of the click.
	Time time.Time

	// Pos is the position of the click.
	Pos image.Point

	// Target is the target of the click.
	Target Target
}

// Classifier turns raw pointer events into [Intent]s. It also sends
// Click, DoubleClick and ContextMenu events to its Passthrough
// listeners, independent of the intents. It is not safe for
// concurrent use.
type Classifier struct {

	// Settings are the thresholds of classification.
	Settings *Settings

	// Targets returns the target under the pointer at a press.
	Targets Targeter

	// Passthrough receives the raw click events.
	Passthrough events.Listeners

	// State is the current state.
	State States

	// Session is the current press session, if any.
	Session *Session

	// Tracker records the last click.
	Tracker Tracker
}

// NewClassifier returns a new classifier with the given settings
// and targeter.
func NewClassifier(s *Settings, targets Targeter) *Classifier {
	if s == nil {
		s = NewSettings()
	}
	return &Classifier{Settings: s, Targets: targets}
}

// HandleEvent classifies the given event, returning the intents it
// completes in order.
func (cl *Classifier) HandleEvent(ev events.Event) []Intent {
	cl.expire(ev.Time())
	switch ev.Type() {
	case events.MouseDown:
		return cl.press(ev)
	case events.MouseDrag:
		return cl.move(ev)
	case events.MouseMove:
		if cl.Session != nil {
			return cl.move(ev)
		}
		return []Intent{{Type: Hover, Target: cl.targetAt(ev.Pos()), Pos: ev.Pos(), Time: ev.Time(), Event: ev.Clone()}}
	case events.MouseUp:
		return cl.release(ev)
	case events.MouseLeave:
		ins := cl.cancel(ev)
		cl.Tracker = Tracker{}
		cl.State = Idle
		return append(ins, Intent{Type: Leave, Pos: ev.Pos(), Time: ev.Time(), Event: ev.Clone()})
	case events.Scroll:
		if cl.Session != nil {
			return nil
		}
		in := Intent{Type: ScrollZoom, Target: cl.targetAt(ev.Pos()), Pos: ev.Pos(), Time: ev.Time(), Event: ev.Clone()}
		if se, ok := ev.(*events.MouseScroll); ok {
			in.Scroll = se.Delta
		}
		return []Intent{in}
	}
	return nil
}

// Tick sends a DragMove held back by the frame interval once the
// interval has passed, and ends the wait for a second click once the
// double-click interval has passed.
func (cl *Classifier) Tick(now time.Time) []Intent {
	cl.expire(now)
	s := cl.Session
	if cl.State != Dragging || s.pending == nil || now.Sub(s.lastMove) < cl.Settings.FrameInterval() {
		return nil
	}
	return []Intent{cl.flush(now)}
}

func (cl *Classifier) targetAt(pos image.Point) Target {
	if cl.Targets == nil {
		return Target{}
	}
	return cl.Targets.TargetAt(pos)
}

// expire disarms the tracker if its click is older than the
// double-click interval.
func (cl *Classifier) expire(now time.Time) {
	if !cl.Tracker.Armed || now.Sub(cl.Tracker.Time) <= cl.Settings.DoubleClickInterval() {
		return
	}
	cl.Tracker = Tracker{}
	if cl.State == WaitingForClick {
		cl.State = Idle
	}
}

func (cl *Classifier) press(ev events.Event) []Intent {
	if cl.Session != nil {
		// a second press during a session (another button or pointer)
		// cancels it, and is itself ignored
		slog.Debug("gesture: press during session, canceling", "session", cl.Session.ID)
		ins := cl.cancel(ev)
		cl.Tracker = Tracker{}
		cl.State = Idle
		return ins
	}
	pos := ev.Pos()
	but := ev.MouseButton()
	s := &Session{
		ID:     uuid.New(),
		Target: cl.targetAt(pos),
		Start:  pos,
		Pos:    pos,
		Button: but,
		Mods:   ev.Modifiers(),
		Press:  ev.Clone(),
	}
	s.Context = but == events.Right || (but == events.Left && key.HasAnyModifier(s.Mods, key.Control))
	tr := &cl.Tracker
	if tr.Armed && !s.Context && but == events.Left && tr.Target == s.Target && cl.withinSlop(tr.Pos, pos) {
		s.Double = true
	}
	cl.Session = s
	cl.State = Pressed
	return nil
}

func (cl *Classifier) withinSlop(a, b image.Point) bool {
	return math32.Vector2FromPoint(a).DistanceTo(math32.Vector2FromPoint(b)) <= float32(cl.Settings.DragStartDistance)
}

func (cl *Classifier) move(ev events.Event) []Intent {
	s := cl.Session
	if s == nil {
		return nil
	}
	s.Pos = ev.Pos()
	switch cl.State {
	case Pressed:
		if s.Context || cl.withinSlop(s.Start, s.Pos) {
			return nil
		}
		cl.State = Dragging
		cl.Tracker = Tracker{}
		s.lastMove = ev.Time()
		s.lastPos = s.Pos
		return []Intent{s.intent(DragStart, ev), s.intent(DragMove, ev)}
	case Dragging:
		in := s.intent(DragMove, ev)
		if ev.Time().Sub(s.lastMove) < cl.Settings.FrameInterval() {
			s.pending = &in
			return nil
		}
		s.pending = &in
		return []Intent{cl.flush(ev.Time())}
	}
	return nil
}

// flush returns the pending DragMove, sent at the given time.
func (cl *Classifier) flush(now time.Time) Intent {
	s := cl.Session
	in := *s.pending
	s.pending = nil
	s.lastMove = now
	s.lastPos = in.Pos
	return in
}

func (cl *Classifier) release(ev events.Event) []Intent {
	s := cl.Session
	if s == nil {
		return nil
	}
	s.Pos = ev.Pos()
	dragging := cl.State == Dragging
	cl.Session = nil
	cl.State = Idle
	if dragging {
		return s.endDrag(ev)
	}
	return cl.click(s, ev)
}

// endDrag returns the final DragMove, if the pointer has moved since
// the last one sent, and the DragEnd.
func (s *Session) endDrag(ev events.Event) []Intent {
	var ins []Intent
	if s.Pos != s.lastPos {
		ins = append(ins, s.intent(DragMove, ev))
	}
	s.pending = nil
	return append(ins, s.intent(DragEnd, ev))
}

func (s *Session) intent(typ Intents, ev events.Event) Intent {
	return Intent{Type: typ, Session: s.ID, Target: s.Target, Pos: s.Pos, Start: s.Start, Delta: s.Delta(), Time: ev.Time(), Event: ev.Clone()}
}

// click returns the intent of a press released within the drag start
// distance, and sends the passthrough events.
func (cl *Classifier) click(s *Session, ev events.Event) []Intent {
	in := Intent{Session: s.ID, Target: s.Target, Pos: s.Start, Start: s.Start, Time: ev.Time(), Event: s.Press.Clone()}
	pass := func(typ events.Types) events.Event {
		pe := events.NewMouse(typ, s.Button, s.Start, s.Mods)
		pe.SetTime(ev.Time())
		cl.Passthrough.Call(pe)
		return pe
	}
	if s.Context {
		cl.Tracker = Tracker{}
		if !pass(events.ContextMenu).IsDefaultPrevented() {
			return nil
		}
		in.Type = Click
		return []Intent{in}
	}
	pass(events.Click)
	if s.Double {
		pass(events.DoubleClick)
		cl.Tracker = Tracker{}
		in.Type = DoubleClick
		return []Intent{in}
	}
	in.Type = Click
	if s.Button == events.Left {
		cl.Tracker = Tracker{Armed: true, Time: ev.Time(), Pos: s.Start, Target: s.Target}
		cl.State = WaitingForClick
	}
	return []Intent{in}
}

// cancel ends the current session without committing it, returning
// a DragCancel if it was dragging.
func (cl *Classifier) cancel(ev events.Event) []Intent {
	s := cl.Session
	if s == nil {
		return nil
	}
	cl.Session = nil
	if cl.State != Dragging {
		return nil
	}
	return []Intent{s.intent(DragCancel, ev)}
}
