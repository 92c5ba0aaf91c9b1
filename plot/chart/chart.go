// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart connects pointer input to the axes of a chart:
// it classifies the input into gestures, hit-tests clicks and hovers,
// drags the axis ranges, resets them on double-click, and sends the
// resulting events to listeners.
package chart

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot"
	"cogentcore.org/plotinteract/plot/axis"
	"cogentcore.org/plotinteract/plot/dragbox"
	"cogentcore.org/plotinteract/plot/gesture"
	"cogentcore.org/plotinteract/plot/hit"
	"github.com/google/uuid"
)

// Subplot is a plot area with one x axis and one or more y axes,
// the first of which is the main axis that the others overlay.
type Subplot struct {

	// ID is the x axis ID followed by the main y axis ID, as in "xy".
	ID string

	// X is the x axis.
	X *axis.Axis

	// Y are the y axes.
	Y []*axis.Axis

	// Area is the pixel extent of the plot area.
	Area math32.Box2
}

// Axes returns the x axis followed by the y axes.
func (sp *Subplot) Axes() []*axis.Axis {
	return append([]*axis.Axis{sp.X}, sp.Y...)
}

// HasAxis returns whether the subplot uses the axis with the given ID.
func (sp *Subplot) HasAxis(id string) bool {
	for _, ax := range sp.Axes() {
		if ax.ID == id {
			return true
		}
	}
	return false
}

// Chart is one interactive chart. All of its methods must be called
// from the same goroutine.
type Chart struct {

	// ID is the unique id of the chart.
	ID uuid.UUID

	// Figure is the chart figure.
	Figure *Figure

	// Settings are the gesture settings.
	Settings *gesture.Settings

	// Axes are the axes, in layout order.
	Axes []*axis.Axis

	// Subplots are the subplots, in order of first use by a trace.
	Subplots []*Subplot

	// Handles finds the drag handle under the pointer.
	Handles HandleQuerier

	// Marks provides the marks of each subplot.
	Marks MarkSource

	// Committer redraws the chart for committed ranges.
	Committer RangeCommitter

	// Autoranger computes autoranges.
	Autoranger Autoranger

	// View is the default implementation of the collaborators.
	View *View

	// Classifier classifies the pointer events.
	Classifier *gesture.Classifier

	// Listeners are the chart event listeners.
	Listeners Listeners

	// traces are the traces with defaults resolved.
	traces []*Trace

	// axes are the axes by ID.
	axes map[string]*axis.Axis

	// drag is the drag in progress, if any.
	drag *dragState

	// deferred are range changes received during a drag.
	deferred []func()

	// hovered is the hovered point, if any.
	hovered *hit.Point
}

// New returns a new chart for the given figure, drawn for the first
// time so that axes with configured ranges snapshot them.
// Nil settings use the defaults.
func New(fig *Figure, settings *gesture.Settings) (*Chart, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = gesture.NewSettings()
	}
	c := &Chart{ID: uuid.New(), Settings: settings}
	c.View = &View{Chart: c}
	c.Handles = c.View
	c.Marks = c.View
	c.Committer = c.View
	c.Autoranger = c.View
	c.Classifier = gesture.NewClassifier(c.effectiveSettings(), gesture.TargeterFunc(c.targetAt))
	if err := c.build(fig, nil); err != nil {
		return nil, err
	}
	slog.Debug("chart: new", "chart", c.ID, "axes", len(c.Axes), "subplots", len(c.Subplots))
	return c, nil
}

// effectiveSettings returns the settings with the double-click delay
// of the figure config applied.
func (c *Chart) effectiveSettings() *gesture.Settings {
	s := *c.Settings
	if c.Figure != nil && c.Figure.Config.DoubleClickDelay > 0 {
		s.DoubleClickMSec = c.Figure.Config.DoubleClickDelay
	}
	return &s
}

// SetSettings sets the gesture settings.
func (c *Chart) SetSettings(s *gesture.Settings) {
	c.Settings = s
	c.Classifier.Settings = c.effectiveSettings()
}

// build makes the axes and subplots for the figure and draws them.
// Axes in prev keep their initial ranges, and no others are snapshot;
// with nil prev, all axes with a configured range are.
func (c *Chart) build(fig *Figure, prev map[string]*axis.Axis) error {
	axes := map[string]*axis.Axis{}
	var list []*axis.Axis
	for _, cfg := range fig.Layout.axisConfigs() {
		ax, err := axis.New(cfg)
		if err != nil {
			return err
		}
		axes[cfg.ID] = ax
		list = append(list, ax)
	}
	traces := make([]*Trace, len(fig.Data))
	for i, tr := range fig.Data {
		traces[i] = tr.resolved()
	}
	c.Figure, c.traces, c.axes, c.Axes = fig, traces, axes, list
	c.Classifier.Settings = c.effectiveSettings()
	c.makeSubplots()
	c.layout()
	for _, ax := range list {
		ax.SetData(c.axisData(ax)...)
		ax.Draw(prev == nil)
		if p := prev[ax.ID]; p != nil {
			ax.Initial = p.Initial
		}
	}
	c.hovered = nil
	return nil
}

// mainY returns the y axis that the given y axis overlays, or itself.
func (c *Chart) mainY(ax *axis.Axis) *axis.Axis {
	for range len(c.Axes) {
		if ax.Overlaying == "" || c.axes[ax.Overlaying] == nil {
			return ax
		}
		ax = c.axes[ax.Overlaying]
	}
	return ax
}

// makeSubplots makes a subplot for each x and main y axis pair used
// by a trace, or an xy subplot if there are no traces.
func (c *Chart) makeSubplots() {
	c.Subplots = nil
	add := func(x, y *axis.Axis) {
		y = c.mainY(y)
		id := x.ID + y.ID
		if c.Subplot(id) != nil {
			return
		}
		sp := &Subplot{ID: id, X: x, Y: []*axis.Axis{y}}
		for _, ax := range c.Axes {
			if ax != y && ax.Dim == math32.Y && c.mainY(ax) == y {
				sp.Y = append(sp.Y, ax)
			}
		}
		c.Subplots = append(c.Subplots, sp)
	}
	for _, tr := range c.traces {
		add(c.axes[tr.XAxis], c.axes[tr.YAxis])
	}
	if len(c.Subplots) == 0 {
		add(c.axes["x"], c.axes["y"])
	}
}

// layout sets the pixel geometry of the axes and subplots.
func (c *Chart) layout() {
	ly := &c.Figure.Layout
	x0, y0 := ly.Margin.L, ly.Margin.T
	w := ly.Width - ly.Margin.L - ly.Margin.R
	h := ly.Height - ly.Margin.T - ly.Margin.B
	for _, ax := range c.Axes {
		d0, d1 := ax.Domain[0], ax.Domain[1]
		if main := c.mainY(ax); main != ax {
			d0, d1 = main.Domain[0], main.Domain[1]
		}
		if ax.Dim == math32.X {
			ax.SetGeometry(x0+d0*w, (d1-d0)*w)
		} else {
			ax.SetGeometry(y0+(1-d1)*h, (d1-d0)*h)
		}
	}
	for _, sp := range c.Subplots {
		y := sp.Y[0]
		sp.Area = math32.B2(float32(sp.X.Offset), float32(y.Offset), float32(sp.X.Offset+sp.X.Length), float32(y.Offset+y.Length))
	}
}

// axisData returns the data values of the visible traces on the axis.
func (c *Chart) axisData(ax *axis.Axis) []plot.Valuer {
	var vals []plot.Valuer
	for _, tr := range c.traces {
		switch {
		case !tr.IsVisible():
		case tr.XAxis == ax.ID:
			vals = append(vals, tr.X)
		case tr.YAxis == ax.ID:
			vals = append(vals, tr.Y)
		}
	}
	return vals
}

// Axis returns the axis with the given ID, or nil.
func (c *Chart) Axis(id string) *axis.Axis {
	return c.axes[id]
}

// Subplot returns the subplot with the given ID, or nil.
func (c *Chart) Subplot(id string) *Subplot {
	for _, sp := range c.Subplots {
		if sp.ID == id {
			return sp
		}
	}
	return nil
}

// Trace returns the resolved trace with the given index.
func (c *Chart) Trace(i int) *Trace {
	return c.traces[i]
}

// IsDragging returns whether a drag is in progress.
func (c *Chart) IsDragging() bool {
	return c.drag != nil
}

func (c *Chart) targetAt(pos image.Point) gesture.Target {
	id, h := c.Handles.HandleAt(pos)
	return gesture.Target{Subplot: id, Handle: h}
}

// HandleEvent processes a pointer event.
func (c *Chart) HandleEvent(ev events.Event) {
	for _, in := range c.Classifier.HandleEvent(ev) {
		c.handleIntent(&in)
	}
}

// Tick processes the timers of the gesture classifier. It should be
// called at least once per frame while the chart is shown.
func (c *Chart) Tick(now time.Time) {
	for _, in := range c.Classifier.Tick(now) {
		c.handleIntent(&in)
	}
}

func (c *Chart) handleIntent(in *gesture.Intent) {
	slog.Debug("chart: intent", "chart", c.ID, "intent", in)
	switch in.Type {
	case gesture.Click:
		c.click(in)
	case gesture.DoubleClick:
		c.doubleClick(in)
	case gesture.DragStart:
		c.dragStart(in)
	case gesture.DragMove:
		c.dragMove(in)
	case gesture.DragEnd:
		c.dragEnd(in)
	case gesture.DragCancel:
		c.dragCancel()
	case gesture.Hover:
		c.hover(in)
	case gesture.Leave:
		c.unhover(in)
	case gesture.ScrollZoom:
		c.scrollZoom(in)
	default:
		panic(fmt.Sprintf("chart: unknown intent %v", in.Type))
	}
}

// pointAt returns the point under the given target and position,
// if the target is a subplot interior.
func (c *Chart) pointAt(tg gesture.Target, pos image.Point) *hit.Point {
	if tg.Handle != dragbox.Interior {
		return nil
	}
	return hit.NearestPoint(c.Marks.Marks(tg.Subplot), math32.Vector2FromPoint(pos), c.Settings.HitTolerance)
}

func (c *Chart) click(in *gesture.Intent) {
	pt := c.pointAt(in.Target, in.Pos)
	if pt == nil {
		return
	}
	c.emit(&PointEvent{Type: Click, Points: []*hit.Point{pt}, Event: SnapshotOf(in.Event)})
}

func samePoint(a, b *hit.Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.CurveNumber == b.CurveNumber && a.PointNumber == b.PointNumber
}

func (c *Chart) hover(in *gesture.Intent) {
	pt := c.pointAt(in.Target, in.Pos)
	if samePoint(pt, c.hovered) {
		return
	}
	c.unhover(in)
	if pt != nil {
		c.hovered = pt
		c.emit(&PointEvent{Type: Hover, Points: []*hit.Point{pt}, Event: SnapshotOf(in.Event)})
	}
}

func (c *Chart) unhover(in *gesture.Intent) {
	if c.hovered == nil {
		return
	}
	pt := c.hovered
	c.hovered = nil
	c.emit(&PointEvent{Type: Unhover, Points: []*hit.Point{pt}, Event: SnapshotOf(in.Event)})
}
