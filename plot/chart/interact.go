// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/math32/minmax"
	"cogentcore.org/plotinteract/plot"
	"cogentcore.org/plotinteract/plot/axis"
	"cogentcore.org/plotinteract/plot/dragbox"
	"cogentcore.org/plotinteract/plot/gesture"
	"github.com/google/uuid"
)

// dragState is a drag in progress.
type dragState struct {
	session uuid.UUID
	subplot *Subplot
	drag    *dragbox.Drag

	// axes are the dragged axes, and saved are copies of them
	// from the start of the drag, restored on cancel.
	axes  []*axis.Axis
	saved []axis.Axis
}

// restore restores the dragged axes to their state at the start.
func (ds *dragState) restore() {
	for i, ax := range ds.axes {
		*ax = ds.saved[i]
	}
}

// handleAxes returns the axes of the subplot that the handle acts on,
// excluding fixedrange axes.
func (c *Chart) handleAxes(tg gesture.Target) (*Subplot, []*axis.Axis) {
	sp := c.Subplot(tg.Subplot)
	if sp == nil {
		return nil, nil
	}
	dx, dy := tg.Handle.Dims()
	var axs []*axis.Axis
	for _, ax := range sp.Axes() {
		if ax.FixedRange || (ax.Dim == math32.X && !dx) || (ax.Dim == math32.Y && !dy) {
			continue
		}
		axs = append(axs, ax)
	}
	return sp, axs
}

// commit commits the range of the axis and adds it to the event.
func (c *Chart) commit(ax *axis.Axis, ev *RelayoutEvent) {
	c.Committer.CommitRange(ax.ID, ax.Current)
	if ev.Ranges == nil {
		ev.Ranges = map[string]axis.Range{}
	}
	ev.Ranges[ax.ID] = ax.Current
	if ax.Autorange {
		ev.Autorange = append(ev.Autorange, ax.ID)
	}
}

func (c *Chart) emitRelayout(ev *RelayoutEvent) {
	if len(ev.Ranges) == 0 {
		return
	}
	ev.Type = Relayout
	c.emit(ev)
}

// autorange sets the axis to autorange.
func (c *Chart) autorange(ax *axis.Axis) {
	ax.SetAutoRanged(c.Autoranger.ComputeAutorange(ax.ID))
}

func (c *Chart) doubleClick(in *gesture.Intent) {
	policy := c.Figure.Config.DoubleClick
	if policy == Disabled || in.Target.IsNone() {
		return
	}
	c.emit(&PointEvent{Type: DoubleClick, Event: SnapshotOf(in.Event)})
	_, axs := c.handleAxes(in.Target)
	if len(axs) == 0 {
		return
	}
	if policy == ResetAutorange {
		policy = Autosize
		for _, ax := range axs {
			if (ax.Initial != nil && !ax.AtInitial()) || (ax.Initial == nil && !ax.Autorange) {
				policy = Reset
				break
			}
		}
	}
	slog.Debug("chart: double-click", "chart", c.ID, "policy", policy, "target", in.Target)
	ev := &RelayoutEvent{}
	for _, ax := range axs {
		if policy == Reset && ax.Initial != nil {
			ax.ResetToInitial()
		} else {
			c.autorange(ax)
		}
		c.commit(ax, ev)
	}
	c.emitRelayout(ev)
}

func (c *Chart) dragStart(in *gesture.Intent) {
	sp, _ := c.handleAxes(in.Target)
	if sp == nil {
		return
	}
	d := dragbox.New(in.Target.Handle, c.Figure.Layout.DragMode, []*axis.Axis{sp.X}, sp.Y)
	ds := &dragState{session: in.Session, subplot: sp, drag: d}
	ds.axes = append(append(ds.axes, d.X...), d.Y...)
	ds.saved = make([]axis.Axis, len(ds.axes))
	for i, ax := range ds.axes {
		ds.saved[i] = *ax
	}
	c.drag = ds
	if d.IsInert() {
		slog.Debug("chart: inert drag", "chart", c.ID, "target", in.Target)
	}
	c.unhover(in)
}

// dragChanges returns the range changes of the drag for the intent.
func (c *Chart) dragChanges(in *gesture.Intent) []dragbox.Change {
	ds := c.drag
	if ds.drag.IsBox() {
		return ds.drag.BoxRanges(ds.subplot.Area, math32.Vector2FromPoint(in.Start), math32.Vector2FromPoint(in.Pos), c.Settings.MinZoom)
	}
	return ds.drag.Ranges(math32.Vector2FromPoint(in.Delta))
}

func (c *Chart) dragMove(in *gesture.Intent) {
	ds := c.drag
	if ds == nil || ds.session != in.Session || ds.drag.IsInert() {
		return
	}
	pv, _ := c.Committer.(RangePreviewer)
	if ds.drag.IsBox() {
		if pv != nil {
			pv.PreviewBox(ds.subplot.ID, ds.drag.Box(ds.subplot.Area, math32.Vector2FromPoint(in.Start), math32.Vector2FromPoint(in.Pos), c.Settings.MinZoom))
		}
		return
	}
	for _, ch := range c.dragChanges(in) {
		ch.Axis.Current = ch.Range
		if pv != nil {
			pv.PreviewRange(ch.Axis.ID, ch.Range)
		}
	}
}

func (c *Chart) dragEnd(in *gesture.Intent) {
	ds := c.drag
	if ds == nil || ds.session != in.Session {
		return
	}
	chs := c.dragChanges(in)
	ds.restore()
	c.drag = nil
	ev := &RelayoutEvent{}
	for _, ch := range chs {
		if ch.Range.Equal(ch.Axis.Current) || !ch.Axis.SetUserRange(ch.Range) {
			c.Committer.CommitRange(ch.Axis.ID, ch.Axis.Current)
			continue
		}
		c.commit(ch.Axis, ev)
	}
	c.emitRelayout(ev)
	c.runDeferred()
}

func (c *Chart) dragCancel() {
	ds := c.drag
	if ds == nil {
		return
	}
	ds.restore()
	c.drag = nil
	for _, ax := range ds.axes {
		c.Committer.CommitRange(ax.ID, ax.Current)
	}
	slog.Debug("chart: drag canceled", "chart", c.ID, "session", ds.session)
	c.runDeferred()
}

// MaxScrollDelta is the largest scroll delta used per event.
const MaxScrollDelta = 20

func (c *Chart) scrollZoom(in *gesture.Intent) {
	if !c.Figure.Config.ScrollZoom || in.Target.Handle != dragbox.Interior {
		return
	}
	_, axs := c.handleAxes(in.Target)
	dy := minmax.Clamp(float64(in.Scroll.Y), -MaxScrollDelta, MaxScrollDelta)
	if dy == 0 {
		return
	}
	factor := math.Exp(dy / 200)
	xf, yf := events.RestrictModeBits(in.Event.Modifiers()).Factors()
	ev := &RelayoutEvent{}
	for _, ax := range axs {
		px, on := float64(in.Pos.X), xf > 0
		if ax.Dim == math32.Y {
			px, on = float64(in.Pos.Y), yf > 0
		}
		if on && ax.SetUserRange(ax.ZoomAbout(factor, px)) {
			c.commit(ax, ev)
		}
	}
	c.emitRelayout(ev)
}

// whenIdle runs fun now, or after the drag in progress ends.
func (c *Chart) whenIdle(fun func()) {
	if c.drag == nil {
		fun()
		return
	}
	slog.Debug("chart: deferring change until drag ends", "chart", c.ID)
	c.deferred = append(c.deferred, fun)
}

func (c *Chart) runDeferred() {
	dfs := c.deferred
	c.deferred = nil
	for _, fun := range dfs {
		fun()
	}
}

// checkAxes returns an error if any of the axis IDs is unknown.
func (c *Chart) checkAxes(ids ...string) error {
	for _, id := range ids {
		if c.axes[id] == nil {
			return fmt.Errorf("%w: %q", ErrUnknownAxis, id)
		}
	}
	return nil
}

// Relayout sets the ranges of the given axes, as the host program.
// It applies to fixedrange axes, and does not change initial ranges.
// During a drag, it is applied when the drag ends.
func (c *Chart) Relayout(ranges map[string]axis.Range) error {
	ids := make([]string, 0, len(ranges))
	for id := range ranges {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	if err := c.checkAxes(ids...); err != nil {
		return err
	}
	ranges = maps.Clone(ranges)
	c.whenIdle(func() {
		ev := &RelayoutEvent{}
		for _, id := range ids {
			ax := c.axes[id]
			if ax.SetRange(ranges[id]) {
				c.commit(ax, ev)
			}
		}
		c.emitRelayout(ev)
	})
	return nil
}

// Autorange sets the given axes to autorange, as the host program.
// During a drag, it is applied when the drag ends.
func (c *Chart) Autorange(ids ...string) error {
	if err := c.checkAxes(ids...); err != nil {
		return err
	}
	ids = slices.Clone(ids)
	c.whenIdle(func() {
		ev := &RelayoutEvent{}
		for _, id := range ids {
			ax := c.axes[id]
			c.autorange(ax)
			c.commit(ax, ev)
		}
		c.emitRelayout(ev)
	})
	return nil
}

// SetTraceData sets the data of the trace with the given index.
// Autoranged axes follow the new data extent; other axes keep their
// ranges. During a drag, it is applied when the drag ends.
func (c *Chart) SetTraceData(trace int, x, y plot.Values) error {
	if trace < 0 || trace >= len(c.Figure.Data) {
		return fmt.Errorf("chart: no trace %d", trace)
	}
	if len(x) != 0 && len(x) != len(y) {
		return fmt.Errorf("chart: trace %d given %d x and %d y values", trace, len(x), len(y))
	}
	if err := checkTraceValues(trace, x, y); err != nil {
		return err
	}
	c.whenIdle(func() {
		tr := c.Figure.Data[trace]
		tr.X, tr.Y = x, y
		c.traces[trace] = tr.resolved()
		full := c.traces[trace]
		for _, ax := range []*axis.Axis{c.axes[full.XAxis], c.axes[full.YAxis]} {
			ax.DataChanged(c.axisData(ax)...)
			c.Committer.CommitRange(ax.ID, ax.Current)
		}
		c.hovered = nil
	})
	return nil
}

// React replaces the figure, keeping the initial ranges of existing
// axes. Axes are not snapshot, so new axes have no initial range.
// A drag in progress is canceled.
func (c *Chart) React(fig *Figure) error {
	if err := fig.Validate(); err != nil {
		return err
	}
	if c.drag != nil {
		c.Classifier.Session = nil
		c.Classifier.State = gesture.Idle
		c.dragCancel()
	}
	prev := c.axes
	if err := c.build(fig, prev); err != nil {
		return err
	}
	for _, ax := range c.Axes {
		c.Committer.CommitRange(ax.ID, ax.Current)
	}
	return nil
}
