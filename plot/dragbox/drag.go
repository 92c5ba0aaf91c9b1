// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragbox

import (
	"fmt"
	"strings"

	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot/axis"
)

// DragModes are the actions of a drag in the plot interior.
type DragModes int32 //enums:enum

const (
	// Zoom previews a box and zooms to it on release.
	Zoom DragModes = iota

	// Pan moves the ranges with the pointer.
	Pan

	DragModesN
)

var dragModesNames = [DragModesN]string{"zoom", "pan"}

func (dm DragModes) String() string {
	if dm < 0 || dm >= DragModesN {
		return fmt.Sprintf("DragModes(%d)", int32(dm))
	}
	return dragModesNames[dm]
}

// SetString sets the mode from its name; the empty string is Zoom.
func (dm *DragModes) SetString(s string) error {
	if s == "" {
		*dm = Zoom
		return nil
	}
	for i, nm := range dragModesNames {
		if strings.EqualFold(nm, s) {
			*dm = DragModes(i)
			return nil
		}
	}
	return fmt.Errorf("dragbox.DragModes: unknown drag mode %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (dm DragModes) MarshalText() ([]byte, error) {
	return []byte(dm.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (dm *DragModes) UnmarshalText(text []byte) error {
	return dm.SetString(string(text))
}

// Change is a new range for an axis.
type Change struct {
	Axis  *axis.Axis
	Range axis.Range
}

// Drag computes the ranges produced by one drag of a handle,
// relative to the ranges the axes had at its start.
type Drag struct {

	// Handle is the handle being dragged.
	Handle Handles

	// Mode is the drag mode, for the Interior handle.
	Mode DragModes

	// X and Y are the axes moved by the drag. Fixedrange axes and
	// axes of dimensions the handle does not act on are excluded.
	X, Y []*axis.Axis

	// XEdge and YEdge are the edges moved in each dimension.
	XEdge, YEdge Edge

	// start holds the axes as they were at the start of the drag,
	// in the order of X then Y.
	start []axis.Axis
}

// New returns a new drag of the given handle over the given axes.
func New(h Handles, mode DragModes, xs, ys []*axis.Axis) *Drag {
	d := &Drag{Handle: h, Mode: mode}
	d.XEdge, d.YEdge = h.Edges()
	keep := func(axs []*axis.Axis, e Edge) []*axis.Axis {
		if !e.Active {
			return nil
		}
		var res []*axis.Axis
		for _, ax := range axs {
			if !ax.FixedRange {
				res = append(res, ax)
			}
		}
		return res
	}
	d.X = keep(xs, d.XEdge)
	d.Y = keep(ys, d.YEdge)
	for _, ax := range d.axes() {
		d.start = append(d.start, *ax)
	}
	return d
}

func (d *Drag) axes() []*axis.Axis {
	return append(append([]*axis.Axis{}, d.X...), d.Y...)
}

// IsInert returns whether the drag moves no axes, as when all of
// the axes of the handle are fixedrange.
func (d *Drag) IsInert() bool {
	return len(d.X) == 0 && len(d.Y) == 0
}

// IsBox returns whether the drag is a box zoom, which only changes
// ranges on release.
func (d *Drag) IsBox() bool {
	return d.Handle == Interior && d.Mode == Zoom
}

// Ranges returns the ranges after the pointer has moved by delta
// pixels from the start of the drag. Each axis is computed
// independently from its starting range.
func (d *Drag) Ranges(delta math32.Vector2) []Change {
	if d.IsBox() {
		return nil
	}
	var chs []Change
	for i, ax := range d.axes() {
		st := d.start[i]
		e, dl := d.XEdge, delta.X
		if ax.Dim == math32.Y {
			e, dl = d.YEdge, delta.Y
		}
		chs = append(chs, Change{Axis: ax, Range: st.RangeAfterPixelDelta(float64(dl), e.Anchor)})
	}
	return chs
}

// Box returns the box zoom rectangle for a drag from start to pos.
// Dimensions that are not zoomed (fixedrange, or narrower than
// minZoom) span the whole area.
func (d *Drag) Box(area math32.Box2, start, pos math32.Vector2, minZoom float32) math32.Box2 {
	bx := math32.B2FromPoints(start, pos).Intersect(area)
	zx, zy := d.boxDims(bx, minZoom)
	if !zx {
		bx.Min.X, bx.Max.X = area.Min.X, area.Max.X
	}
	if !zy {
		bx.Min.Y, bx.Max.Y = area.Min.Y, area.Max.Y
	}
	return bx
}

// boxDims returns which dimensions a box zooms.
func (d *Drag) boxDims(bx math32.Box2, minZoom float32) (zx, zy bool) {
	sz := bx.Size()
	zx = len(d.X) > 0 && sz.X >= minZoom
	zy = len(d.Y) > 0 && sz.Y >= minZoom
	return
}

// BoxRanges returns the ranges of a box zoom from start to pos.
// A box narrower than minZoom pixels in one dimension zooms only the
// other, and one smaller than minZoom in both zooms nothing.
func (d *Drag) BoxRanges(area math32.Box2, start, pos math32.Vector2, minZoom float32) []Change {
	if !d.IsBox() {
		return nil
	}
	bx := math32.B2FromPoints(start, pos).Intersect(area)
	zx, zy := d.boxDims(bx, minZoom)
	var chs []Change
	if zx {
		for _, ax := range d.X {
			chs = append(chs, Change{Axis: ax, Range: ax.RangeFromPixels(float64(bx.Min.X), float64(bx.Max.X))})
		}
	}
	if zy {
		for _, ax := range d.Y {
			chs = append(chs, Change{Axis: ax, Range: ax.RangeFromPixels(float64(bx.Min.Y), float64(bx.Max.Y))})
		}
	}
	return chs
}
