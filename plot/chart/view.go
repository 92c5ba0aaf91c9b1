// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"log/slog"
	"math"

	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot/axis"
	"cogentcore.org/plotinteract/plot/dragbox"
	"cogentcore.org/plotinteract/plot/hit"
)

// HandleQuerier finds the subplot and drag handle at a pixel position.
// It returns an empty subplot ID outside all subplots.
type HandleQuerier interface {
	HandleAt(pos image.Point) (subplot string, h dragbox.Handles)
}

// MarkSource provides the current marks of a subplot.
type MarkSource interface {
	Marks(subplot string) []hit.Mark
}

// RangeCommitter redraws the chart for a committed axis range.
// Committing the range that is already drawn does nothing.
type RangeCommitter interface {
	CommitRange(axisID string, r axis.Range)
}

// RangePreviewer is optionally implemented by a [RangeCommitter]
// to show the ranges and zoom box of a drag in progress.
type RangePreviewer interface {
	PreviewRange(axisID string, r axis.Range)
	PreviewBox(subplot string, box math32.Box2)
}

// Autoranger computes the autorange of an axis from the visible data.
type Autoranger interface {
	ComputeAutorange(axisID string) axis.Range
}

// View is the default implementation of the chart collaborators,
// computing handles and marks from the figure layout and the current
// axis ranges, and recording the redraws.
type View struct {

	// Chart is the chart the view shows.
	Chart *Chart

	// Drawn are the ranges last committed for each axis.
	Drawn map[string]axis.Range

	// Redraws is the number of redraws for committed ranges.
	Redraws int

	// Previews is the number of drag previews.
	Previews int

	// Box is the zoom box of the drag in progress, if any.
	Box *math32.Box2
}

// HandleAt returns the subplot and handle at the given position,
// preferring the interior of a subplot over the handles around another.
func (v *View) HandleAt(pos image.Point) (string, dragbox.Handles) {
	p := math32.Vector2FromPoint(pos)
	id, h := "", dragbox.NoHandle
	for _, sp := range v.Chart.Subplots {
		sh := dragbox.HandleAt(sp.Area, p, dragbox.DraggerSize)
		if sh == dragbox.Interior {
			return sp.ID, sh
		}
		if sh != dragbox.NoHandle && h == dragbox.NoHandle {
			id, h = sp.ID, sh
		}
	}
	return id, h
}

// Marks returns the marks of the visible traces of the subplot that
// lie within its plot area.
func (v *View) Marks(subplot string) []hit.Mark {
	c := v.Chart
	sp := c.Subplot(subplot)
	if sp == nil {
		return nil
	}
	var marks []hit.Mark
	for ti, tr := range c.traces {
		if !tr.IsVisible() || tr.XAxis != sp.X.ID || !sp.HasAxis(tr.YAxis) {
			continue
		}
		xa, ya := c.axes[tr.XAxis], c.axes[tr.YAxis]
		rad := tr.MarkerSize / 2
		area := sp.Area
		area.ExpandByScalar(rad)
		for i, x := range tr.X {
			y := tr.Y[i]
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			pos := math32.Vec2(float32(xa.ToPixel(x)), float32(ya.ToPixel(y)))
			if !area.ContainsPoint(pos) {
				continue
			}
			marks = append(marks, hit.Mark{Trace: ti, Index: i, X: x, Y: y, Pos: pos, Radius: rad,
				HoverInfo: tr.HoverInfo, XAxis: tr.XAxis, YAxis: tr.YAxis, Data: c.Figure.Data[ti], FullData: tr})
		}
	}
	return marks
}

// CommitRange records a redraw if the range differs from the one drawn.
func (v *View) CommitRange(axisID string, r axis.Range) {
	v.Box = nil
	if d, ok := v.Drawn[axisID]; ok && d == r {
		return
	}
	if v.Drawn == nil {
		v.Drawn = map[string]axis.Range{}
	}
	v.Drawn[axisID] = r
	v.Redraws++
	slog.Debug("chart: redraw", "axis", axisID, "range", r)
}

// PreviewRange records a preview of a drag range.
func (v *View) PreviewRange(axisID string, r axis.Range) {
	v.Previews++
}

// PreviewBox records the zoom box of a drag.
func (v *View) PreviewBox(subplot string, box math32.Box2) {
	v.Previews++
	v.Box = &box
}

// ComputeAutorange returns the autorange of the axis from its data.
func (v *View) ComputeAutorange(axisID string) axis.Range {
	if ax := v.Chart.Axis(axisID); ax != nil {
		return ax.AutoRange()
	}
	return axis.Range{}
}
