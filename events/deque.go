// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"
)

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Queue is a FIFO event queue that can be filled from any goroutine
// and drained by the single goroutine that processes pointer input.
// Consecutive non-unique events of the same type, button and modifiers
// are compressed into one: the Prev position of the first is kept,
// and Scroll deltas are summed.
// The zero value is an empty queue ready to use.
type Queue struct {
	mu     sync.Mutex
	events []Event
	notify chan struct{}
}

func (q *Queue) init() {
	if q.notify == nil {
		q.notify = make(chan struct{}, 1)
	}
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	q.init()
	n := len(q.events)
	if !ev.IsUnique() && n > 0 {
		last := q.events[n-1]
		if last.Type() == ev.Type() && last.MouseButton() == ev.MouseButton() && last.Modifiers() == ev.Modifiers() {
			if TraceEventCompression {
				slog.Info("events.Queue: compressing", "type", ev.Type(), "pos", ev.Pos())
			}
			ev.AsBase().Prev = last.PrevPos()
			if ns, ok := ev.(*MouseScroll); ok {
				if ls, ok := last.(*MouseScroll); ok {
					ns.Delta.SetAdd(ls.Delta)
				}
			}
			q.events[n-1] = ev
			q.mu.Unlock()
			return
		}
	}
	q.events = append(q.events, ev)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Ready returns a channel that receives a value after events are sent.
// It is used to wait for input without polling; a receive does not
// guarantee the queue is still non-empty.
func (q *Queue) Ready() <-chan struct{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.init()
	return q.notify
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
