// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"math"
	"testing"
	"time"

	"cogentcore.org/plotinteract/events"
	"cogentcore.org/plotinteract/events/key"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot"
	"cogentcore.org/plotinteract/plot/axis"
	"cogentcore.org/plotinteract/plot/dragbox"
	"cogentcore.org/plotinteract/plot/hit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// testFigure returns a figure with a plot area from (100, 50) to
// (740, 370) and one trace of 16 points. Point 11 is (0.125, 2.125).
// The autoranges are x [-2.875, 1.375] and y [0.525, 2.225].
func testFigure(axes ...axis.Config) *Figure {
	fig := NewFigure()
	fig.Layout.Width, fig.Layout.Height = 800, 450
	fig.Layout.Margin = Margin{L: 100, R: 60, T: 50, B: 80}
	fig.Layout.Axes = axes
	tr := &Trace{Name: "a"}
	for i := range 16 {
		tr.X = append(tr.X, -2.625+0.25*float64(i))
		tr.Y = append(tr.Y, 0.625+0.5*float64(i%4))
	}
	fig.Data = []*Trace{tr}
	return fig
}

var (
	xRange    = axis.Config{ID: "x", Range: axis.B(-3, 1)}
	yRange    = axis.Config{ID: "y", Range: axis.B(0, 4)}
	xAuto     = axis.Range{-2.875, 1.375}
	yAuto     = axis.Range{0.525, 2.225}
	blank     = image.Pt(700, 340)
	pointPos  = image.Pt(600, 200)
	eastPos   = image.Pt(720, 380)
	startTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
)

// player sends pointer events to a chart, 20ms apart,
// and records the chart events.
type player struct {
	t    *testing.T
	c    *Chart
	now  time.Time
	last image.Point
	evs  []Event
}

func newPlayer(t *testing.T, fig *Figure) *player {
	c, err := New(fig, nil)
	require.NoError(t, err)
	p := &player{t: t, c: c, now: startTime}
	c.OnAny(func(ev Event) { p.evs = append(p.evs, ev) })
	return p
}

func (p *player) send(ev events.Event) {
	p.now = p.now.Add(20 * time.Millisecond)
	ev.AsBase().SetTime(p.now)
	p.c.HandleEvent(ev)
}

// wait lets any double-click interval pass.
func (p *player) wait() {
	p.now = p.now.Add(time.Second)
	p.c.Tick(p.now)
}

func (p *player) press(pos image.Point, but events.Buttons, mods ...key.Modifiers) {
	p.last = pos
	p.send(events.NewMouse(events.MouseDown, but, pos, key.NewModifiers(mods...)))
}

func (p *player) release(pos image.Point, but events.Buttons) {
	p.send(events.NewMouse(events.MouseUp, but, pos, 0))
}

func (p *player) move(pos image.Point) {
	p.send(events.NewMouseDrag(events.Left, pos, p.last, image.Point{}, 0))
	p.last = pos
}

func (p *player) hover(pos image.Point) {
	p.send(events.NewMouseMove(events.NoButton, pos, p.last, 0))
	p.last = pos
}

func (p *player) click(pos image.Point) {
	p.wait()
	p.press(pos, events.Left)
	p.release(pos, events.Left)
}

func (p *player) doubleClick(pos image.Point) {
	p.wait()
	for range 2 {
		p.press(pos, events.Left)
		p.release(pos, events.Left)
	}
}

// startDrag presses at from and moves halfway to to and then to to.
func (p *player) startDrag(from, to image.Point) {
	p.wait()
	p.press(from, events.Left)
	p.move(from.Add(to).Div(2))
	p.move(to)
}

func (p *player) dragTo(from, to image.Point) {
	p.startDrag(from, to)
	p.release(to, events.Left)
}

// take returns the recorded events of the given type, and clears
// all of the recorded events.
func (p *player) take(typ EventTypes) []Event {
	var res []Event
	for _, ev := range p.evs {
		if ev.EventType() == typ {
			res = append(res, ev)
		}
	}
	p.evs = nil
	return res
}

func sl(r axis.Range) []float64 { return r[:] }

func (p *player) assertRange(id string, want axis.Range, msgs ...any) {
	ax := p.c.Axis(id)
	require.NotNil(p.t, ax, id)
	assert.InDeltaSlice(p.t, want[:], ax.Current[:], tol, msgs...)
}

func TestClickPoint(t *testing.T) {
	p := newPlayer(t, testFigure(xRange, yRange))
	p.click(pointPos)
	evs := p.take(Click)
	require.Len(t, evs, 1)
	ev := evs[0].(*PointEvent)
	require.Len(t, ev.Points, 1)
	pt := ev.Points[0]
	assert.Equal(t, 0, pt.CurveNumber)
	assert.Equal(t, 11, pt.PointNumber)
	assert.Equal(t, 11, pt.PointIndex)
	assert.Equal(t, 0.125, pt.X)
	assert.Equal(t, 2.125, pt.Y)
	assert.Equal(t, "x", pt.XAxis)
	assert.Equal(t, "y", pt.YAxis)
	assert.Equal(t, math32.B2(597, 197, 603, 203), pt.BBox)
	assert.Same(t, p.c.Figure.Data[0], pt.Data)
	assert.Equal(t, p.c.Trace(0), pt.FullData)
	require.NotNil(t, ev.Event)
	assert.Equal(t, 600, ev.Event.ClientX)
	assert.Equal(t, 200, ev.Event.ClientY)
	assert.Equal(t, events.Left, ev.Event.Button)

	// a sloppy click resolves the same point, at the press position
	p.wait()
	p.press(pointPos, events.Left)
	p.move(pointPos.Add(image.Pt(4, 4)))
	p.release(pointPos.Add(image.Pt(4, 4)), events.Left)
	evs = p.take(Click)
	require.Len(t, evs, 1)
	ev = evs[0].(*PointEvent)
	assert.Equal(t, 11, ev.Points[0].PointNumber)
	assert.Equal(t, 600, ev.Event.ClientX)

	// blank area and margins resolve no point
	p.click(blank)
	p.click(image.Pt(50, 20))
	assert.Empty(t, p.take(Click))
}

func TestDoubleClickEvents(t *testing.T) {
	p := newPlayer(t, testFigure(xRange, yRange))
	p.doubleClick(pointPos)
	require.Len(t, p.evs, 3)
	assert.Equal(t, Click, p.evs[0].EventType())
	assert.Equal(t, DoubleClick, p.evs[1].EventType())
	assert.Empty(t, p.evs[1].(*PointEvent).Points)
	assert.Equal(t, Relayout, p.evs[2].EventType())
}

func TestHoverInfo(t *testing.T) {
	fig := testFigure(xRange, yRange)
	skip := *fig.Data[0]
	skip.HoverInfo = hit.Skip
	none := *fig.Data[0]
	none.HoverInfo = hit.None
	fig.Data = []*Trace{&skip, &none}
	p := newPlayer(t, fig)

	p.click(pointPos)
	evs := p.take(Click)
	require.Len(t, evs, 1)
	assert.Equal(t, 1, evs[0].(*PointEvent).Points[0].CurveNumber)

	p.wait()
	p.hover(pointPos)
	p.hover(pointPos.Add(image.Pt(1, 0)))
	evs = p.take(Hover)
	require.Len(t, evs, 1)
	assert.Equal(t, 1, evs[0].(*PointEvent).Points[0].CurveNumber)
	assert.Equal(t, 11, evs[0].(*PointEvent).Points[0].PointNumber)

	p.hover(blank)
	evs = p.take(Unhover)
	require.Len(t, evs, 1)
	assert.Equal(t, 11, evs[0].(*PointEvent).Points[0].PointNumber)
	assert.Equal(t, blank.X, evs[0].(*PointEvent).Event.ClientX)

	p.hover(pointPos)
	p.send(events.NewMouse(events.MouseLeave, events.NoButton, image.Pt(900, 200), 0))
	assert.Len(t, p.take(Unhover), 1)

	fig.Data = []*Trace{&skip}
	require.NoError(t, p.c.React(fig))
	p.click(pointPos)
	p.hover(pointPos)
	assert.Empty(t, p.evs)
}

func TestDoubleClickReset(t *testing.T) {
	p := newPlayer(t, testFigure(xRange, yRange))
	x := p.c.Axis("x")
	require.NotNil(t, x.Initial)
	assert.Equal(t, axis.Range{-3, 1}, *x.Initial)

	require.NoError(t, p.c.Relayout(map[string]axis.Range{"x": {-2, 0}}))
	evs := p.take(Relayout)
	require.Len(t, evs, 1)
	assert.Equal(t, axis.Range{-2, 0}, evs[0].(*RelayoutEvent).Ranges["x"])

	p.doubleClick(blank)
	require.Len(t, p.evs, 2)
	assert.Len(t, p.take(DoubleClick), 1)
	p.assertRange("x", axis.Range{-3, 1})
	p.assertRange("y", axis.Range{0, 4})

	// with all axes at their initial ranges, autorange
	p.doubleClick(blank)
	evs = p.take(Relayout)
	require.Len(t, evs, 1)
	assert.ElementsMatch(t, []string{"x", "y"}, evs[0].(*RelayoutEvent).Autorange)
	p.assertRange("x", xAuto)
	p.assertRange("y", yAuto)
	assert.Equal(t, axis.AutoRanged, x.State)

	p.doubleClick(blank)
	p.assertRange("x", axis.Range{-3, 1})
	p.assertRange("y", axis.Range{0, 4})

	// a relayout between double-clicks makes the next one reset
	p.doubleClick(blank)
	p.assertRange("x", xAuto)
	require.NoError(t, p.c.Relayout(map[string]axis.Range{"y": {1, 2}}))
	p.doubleClick(blank)
	p.assertRange("x", axis.Range{-3, 1})
	p.assertRange("y", axis.Range{0, 4})
}

func TestBoxZoomAutorangeReset(t *testing.T) {
	p := newPlayer(t, testFigure())
	p.assertRange("x", xAuto)
	p.assertRange("y", yAuto)
	assert.Nil(t, p.c.Axis("x").Initial)

	p.startDrag(image.Pt(300, 100), image.Pt(500, 300))
	require.NotNil(t, p.c.View.Box)
	assert.Equal(t, math32.B2(300, 100, 500, 300), *p.c.View.Box)
	p.assertRange("x", xAuto, "box zoom only commits on release")
	p.release(image.Pt(500, 300), events.Left)

	evs := p.take(Relayout)
	require.Len(t, evs, 1)
	rev := evs[0].(*RelayoutEvent)
	assert.InDeltaSlice(t, []float64{-1.546875, -0.21875}, sl(rev.Ranges["x"]), tol)
	assert.InDeltaSlice(t, []float64{0.896875, 1.959375}, sl(rev.Ranges["y"]), tol)
	assert.Empty(t, rev.Autorange)
	assert.Nil(t, p.c.View.Box)
	p.assertRange("x", axis.Range{-1.546875, -0.21875})

	p.doubleClick(image.Pt(400, 200))
	p.assertRange("x", xAuto)
	p.assertRange("y", yAuto)
	assert.True(t, p.c.Axis("x").Autorange)
	evs = p.take(Relayout)
	require.Len(t, evs, 1)
	assert.ElementsMatch(t, []string{"x", "y"}, evs[0].(*RelayoutEvent).Autorange)

	// a box smaller than the minimum in both dimensions does nothing
	p.dragTo(image.Pt(300, 100), image.Pt(310, 110))
	p.assertRange("x", xAuto)
	assert.Empty(t, p.take(Relayout))
}

func TestPanDrag(t *testing.T) {
	fig := testFigure(xRange, yRange)
	fig.Layout.DragMode = dragbox.Pan
	p := newPlayer(t, fig)

	p.startDrag(image.Pt(400, 200), image.Pt(464, 232))
	p.assertRange("x", axis.Range{-3.4, 0.6}, "pan is shown during the drag")
	assert.Empty(t, p.take(Relayout))
	assert.Positive(t, p.c.View.Previews)
	p.send(events.NewMouse(events.MouseLeave, events.NoButton, image.Pt(900, 200), 0))
	p.assertRange("x", axis.Range{-3, 1})
	p.assertRange("y", axis.Range{0, 4})
	assert.Equal(t, axis.Drawn, p.c.Axis("x").State)
	assert.False(t, p.c.IsDragging())
	assert.Empty(t, p.take(Relayout))

	p.dragTo(image.Pt(400, 200), image.Pt(464, 232))
	evs := p.take(Relayout)
	require.Len(t, evs, 1)
	rev := evs[0].(*RelayoutEvent)
	assert.InDeltaSlice(t, []float64{-3.4, 0.6}, sl(rev.Ranges["x"]), tol)
	assert.InDeltaSlice(t, []float64{0.4, 4.4}, sl(rev.Ranges["y"]), tol)
	assert.Equal(t, axis.UserRanged, p.c.Axis("x").State)

	// an edge handle moves only its end of the range
	p.dragTo(eastPos, eastPos.Add(image.Pt(40, 0)))
	p.assertRange("x", axis.Range{-3.4, -3.4 + 4*math.Exp(-40.0/640)})
	p.assertRange("y", axis.Range{0.4, 4.4})
	p.dragTo(eastPos, eastPos.Sub(image.Pt(40, 0)))
	p.assertRange("x", axis.Range{-3.4, 0.6})
}

func TestDeferredRelayout(t *testing.T) {
	fig := testFigure(xRange, yRange)
	fig.Layout.DragMode = dragbox.Pan
	p := newPlayer(t, fig)

	p.startDrag(image.Pt(400, 200), image.Pt(464, 232))
	require.True(t, p.c.IsDragging())
	ranges := map[string]axis.Range{"y": {10, 20}}
	require.NoError(t, p.c.Relayout(ranges))
	ranges["y"] = axis.Range{-5, 5}
	ranges["x"] = axis.Range{-5, 5}
	p.assertRange("y", axis.Range{0.4, 4.4})
	assert.Empty(t, p.take(Relayout))

	p.release(image.Pt(464, 232), events.Left)
	evs := p.take(Relayout)
	require.Len(t, evs, 2)
	assert.Len(t, evs[0].(*RelayoutEvent).Ranges, 2)
	assert.Equal(t, map[string]axis.Range{"y": {10, 20}}, evs[1].(*RelayoutEvent).Ranges)
	p.assertRange("y", axis.Range{10, 20})
	p.assertRange("x", axis.Range{-3.4, 0.6})

	assert.ErrorIs(t, p.c.Relayout(map[string]axis.Range{"x3": {0, 1}}), ErrUnknownAxis)
	assert.ErrorIs(t, p.c.Autorange("z"), ErrUnknownAxis)
	require.NoError(t, p.c.Autorange("x"))
	p.assertRange("x", xAuto)
}

func TestScrollZoom(t *testing.T) {
	fig := testFigure(xRange, yRange)
	p := newPlayer(t, fig)
	pos := image.Pt(420, 210)
	p.send(events.NewScroll(pos, math32.Vec2(0, 40), 0))
	p.assertRange("x", axis.Range{-3, 1}, "scroll zoom is off")

	fig.Config.ScrollZoom = true
	p.send(events.NewScroll(pos, math32.Vec2(0, 40), key.NewModifiers(key.Shift)))
	e := math.Exp(0.1)
	p.assertRange("x", axis.Range{-1 - 2*e, -1 + 2*e})
	p.assertRange("y", axis.Range{0, 4})

	p.c.Axis("x").SetRange(axis.Range{-3, 1})
	p.send(events.NewScroll(pos, math32.Vec2(0, -10), 0))
	e = math.Exp(-0.05)
	p.assertRange("x", axis.Range{-1 - 2*e, -1 + 2*e})
	p.assertRange("y", axis.Range{2 - 2*e, 2 + 2*e})
	assert.Len(t, p.take(Relayout), 2)
}

func TestFixedRange(t *testing.T) {
	fig := testFigure(axis.Config{ID: "x", Range: axis.B(-3, 1), FixedRange: true}, axis.Config{ID: "y", FixedRange: true})
	fig.Config.ScrollZoom = true
	for _, mode := range []dragbox.DragModes{dragbox.Zoom, dragbox.Pan} {
		fig.Layout.DragMode = mode
		p := newPlayer(t, fig)
		assert.NotNil(t, p.c.Axis("x").Initial)
		assert.Nil(t, p.c.Axis("y").Initial)

		p.dragTo(image.Pt(300, 100), image.Pt(500, 300))
		p.dragTo(eastPos, eastPos.Sub(image.Pt(40, 0)))
		p.dragTo(image.Pt(90, 200), image.Pt(90, 260))
		p.dragTo(image.Pt(90, 40), image.Pt(60, 10))
		p.doubleClick(blank)
		p.doubleClick(eastPos)
		p.send(events.NewScroll(image.Pt(420, 210), math32.Vec2(0, 40), 0))

		p.assertRange("x", axis.Range{-3, 1}, mode)
		p.assertRange("y", yAuto, mode)
		assert.Empty(t, p.take(Relayout), mode)
	}
}

func TestPolicies(t *testing.T) {
	fig := testFigure(xRange, yRange)
	fig.Config.DoubleClick = Reset
	p := newPlayer(t, fig)
	for range 3 {
		require.NoError(t, p.c.Relayout(map[string]axis.Range{"x": {-2, 0}}))
		p.doubleClick(blank)
		p.assertRange("x", axis.Range{-3, 1})
		p.doubleClick(blank)
		p.assertRange("x", axis.Range{-3, 1})
	}

	fig = testFigure(xRange, yRange)
	fig.Config.DoubleClick = Autosize
	p = newPlayer(t, fig)
	require.NoError(t, p.c.Relayout(map[string]axis.Range{"x": {-2, 0}}))
	p.doubleClick(blank)
	p.assertRange("x", xAuto)
	p.doubleClick(blank)
	p.assertRange("x", xAuto)

	fig = testFigure(xRange, yRange)
	fig.Config.DoubleClick = Disabled
	p = newPlayer(t, fig)
	require.NoError(t, p.c.Relayout(map[string]axis.Range{"x": {-2, 0}}))
	p.take(Relayout)
	p.doubleClick(blank)
	p.assertRange("x", axis.Range{-2, 0})
	assert.Empty(t, p.take(DoubleClick))
}

func TestDoubleClickHandle(t *testing.T) {
	p := newPlayer(t, testFigure(xRange, yRange))
	require.NoError(t, p.c.Relayout(map[string]axis.Range{"x": {-2, 0}, "y": {1, 2}}))
	p.doubleClick(eastPos)
	p.assertRange("x", axis.Range{-3, 1})
	p.assertRange("y", axis.Range{1, 2})
}

func TestReact(t *testing.T) {
	p := newPlayer(t, testFigure(xRange))
	require.NotNil(t, p.c.Axis("x").Initial)
	assert.Nil(t, p.c.Axis("y").Initial)

	fig := testFigure(axis.Config{ID: "x", Range: axis.B(0, 4)}, axis.Config{ID: "y", Range: axis.B(0, 3)},
		axis.Config{ID: "y2", Overlaying: "y", FixedRange: true})
	fig.Data = append(fig.Data, &Trace{Y: plot.Values{1, 2}, YAxis: "y2"})
	require.NoError(t, p.c.React(fig))
	x, y, y2 := p.c.Axis("x"), p.c.Axis("y"), p.c.Axis("y2")
	require.NotNil(t, x.Initial)
	assert.Equal(t, axis.Range{-3, 1}, *x.Initial)
	assert.Equal(t, axis.Range{0, 4}, x.Current)
	assert.Nil(t, y.Initial)
	assert.Equal(t, axis.Range{0, 3}, y.Current)
	assert.Nil(t, y2.Initial)
	require.Len(t, p.c.Subplots, 1)
	assert.Equal(t, []*axis.Axis{y, y2}, p.c.Subplots[0].Y)
	y2r := y2.Current

	// without an initial range, y autoranges
	p.doubleClick(blank)
	p.assertRange("x", axis.Range{-3, 1})
	p.assertRange("y", yAuto)
	assert.Equal(t, y2r, y2.Current)
}

func TestSetTraceData(t *testing.T) {
	p := newPlayer(t, testFigure())
	require.NoError(t, p.c.SetTraceData(0, plot.Values{0, 1, 2, 3}, plot.Values{0, 10, 20, 30}))
	p.assertRange("x", axis.Range{-0.2, 3.2})
	p.assertRange("y", axis.Range{-2, 32})

	require.NoError(t, p.c.Relayout(map[string]axis.Range{"x": {0, 1}}))
	require.NoError(t, p.c.SetTraceData(0, nil, plot.Values{0, 15}))
	p.assertRange("x", axis.Range{0, 1})
	p.assertRange("y", axis.Range{-1, 16})

	assert.Error(t, p.c.SetTraceData(3, nil, nil))
	assert.Error(t, p.c.SetTraceData(0, plot.Values{1}, plot.Values{1, 2}))
	assert.ErrorIs(t, p.c.SetTraceData(0, nil, plot.Values{1, math.Inf(1)}), plot.ErrInfinity)
	p.assertRange("y", axis.Range{-1, 16})
}

func TestContextClick(t *testing.T) {
	p := newPlayer(t, testFigure(xRange, yRange))
	var contexts int
	p.c.OnPassthrough(events.ContextMenu, func(ev events.Event) { contexts++ })
	p.wait()
	p.press(pointPos, events.Right)
	p.release(pointPos, events.Right)
	assert.Equal(t, 1, contexts)
	assert.Empty(t, p.take(Click))

	p.c.OnPassthrough(events.ContextMenu, func(ev events.Event) { ev.PreventDefault() })
	p.wait()
	p.press(pointPos, events.Left, key.Control)
	p.release(pointPos, events.Left)
	evs := p.take(Click)
	require.Len(t, evs, 1)
	ev := evs[0].(*PointEvent)
	assert.Equal(t, 11, ev.Points[0].PointNumber)
	assert.True(t, key.HasAnyModifier(ev.Event.Modifiers, key.Control))
	assert.Equal(t, 2, contexts)
}
