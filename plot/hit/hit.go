// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hit finds the data point nearest to a pixel position.
package hit

import (
	"fmt"
	"strings"

	"cogentcore.org/plotinteract/math32"
)

// HoverInfos control whether the points of a trace take part
// in hit testing and show a tooltip.
type HoverInfos int32 //enums:enum

const (
	// All points are hit-tested and show a tooltip.
	All HoverInfos = iota

	// None points are hit-tested and produce click and hover
	// events, but show no tooltip.
	None

	// Skip points are excluded from hit testing entirely.
	Skip

	HoverInfosN
)

var hoverInfosNames = [HoverInfosN]string{"all", "none", "skip"}

func (hi HoverInfos) String() string {
	if hi < 0 || hi >= HoverInfosN {
		return fmt.Sprintf("HoverInfos(%d)", int32(hi))
	}
	return hoverInfosNames[hi]
}

// SetString sets the value from a hoverinfo string. Flag lists
// such as "x+y" show a tooltip, as does the empty string.
func (hi *HoverInfos) SetString(s string) error {
	switch strings.ToLower(s) {
	case "none":
		*hi = None
	case "skip":
		*hi = Skip
	default:
		*hi = All
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (hi HoverInfos) MarshalText() ([]byte, error) {
	return []byte(hi.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (hi *HoverInfos) UnmarshalText(text []byte) error {
	return hi.SetString(string(text))
}

// ShowsTooltip returns whether points show a tooltip.
func (hi HoverInfos) ShowsTooltip() bool {
	return hi == All
}

// Mark is one visible data point, with its pixel position computed
// from the current axis ranges. Marks are recomputed on every
// range or data change.
type Mark struct {

	// Trace is the index of the trace the point belongs to.
	Trace int

	// Index is the index of the point within its trace.
	Index int

	// X and Y are the data values of the point.
	X, Y float64

	// Pos is the pixel position of the point.
	Pos math32.Vector2

	// Radius is the pixel radius of the rendered marker.
	Radius float32

	// HoverInfo is the hoverinfo setting of the trace.
	HoverInfo HoverInfos

	// XAxis and YAxis are the IDs of the axes of the trace.
	XAxis, YAxis string

	// Data is the trace data as given by the user.
	Data any

	// FullData is the fully resolved trace configuration.
	FullData any
}

// BBox returns the pixel bounding box of the rendered marker.
func (mk *Mark) BBox() math32.Box2 {
	bb := math32.Box2{Min: mk.Pos, Max: mk.Pos}
	bb.ExpandByScalar(mk.Radius)
	return bb
}

// Point returns the event payload point for the mark.
func (mk *Mark) Point() *Point {
	return &Point{
		Data:        mk.Data,
		FullData:    mk.FullData,
		CurveNumber: mk.Trace,
		PointNumber: mk.Index,
		PointIndex:  mk.Index,
		BBox:        mk.BBox(),
		X:           mk.X,
		Y:           mk.Y,
		XAxis:       mk.XAxis,
		YAxis:       mk.YAxis,
	}
}

// Point is a point in a click or hover event payload.
type Point struct {

	// Data is the trace data as given by the user.
	Data any `json:"data"`

	// FullData is the fully resolved trace configuration.
	FullData any `json:"fullData"`

	// CurveNumber is the index of the trace.
	CurveNumber int `json:"curveNumber"`

	// PointNumber is the index of the point within its trace.
	PointNumber int `json:"pointNumber"`

	// PointIndex is an alias of PointNumber.
	PointIndex int `json:"pointIndex"`

	// BBox is the pixel bounding box of the marker, for tooltip placement.
	BBox math32.Box2 `json:"bbox"`

	// X and Y are the data values of the point.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// XAxis and YAxis are the IDs of the axes of the trace.
	XAxis string `json:"xaxis"`
	YAxis string `json:"yaxis"`
}

// NearestPoint returns the point of the mark nearest to pos, or nil if
// no mark is within tol pixels. Marks of [Skip] traces are excluded.
// Ties go to the lowest trace index and then the lowest point index,
// whatever the order of marks.
func NearestPoint(marks []Mark, pos math32.Vector2, tol float32) *Point {
	best := -1
	var bestD float32
	for i := range marks {
		mk := &marks[i]
		if mk.HoverInfo == Skip || math32.IsNaN(mk.Pos.X) || math32.IsNaN(mk.Pos.Y) {
			continue
		}
		d := pos.DistanceToSquared(mk.Pos)
		if best >= 0 {
			bm := &marks[best]
			if d > bestD || (d == bestD && !before(mk, bm)) {
				continue
			}
		}
		best = i
		bestD = d
	}
	if best < 0 || bestD > tol*tol {
		return nil
	}
	return marks[best].Point()
}

// before returns whether a comes before b in trace-then-index order.
func before(a, b *Mark) bool {
	if a.Trace != b.Trace {
		return a.Trace < b.Trace
	}
	return a.Index < b.Index
}
