// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dragbox maps drags of the handles around a subplot
// to new axis ranges.
package dragbox

import (
	"fmt"
	"strings"

	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot/axis"
)

// Handles are the drag handles around and inside a subplot.
type Handles int32 //enums:enum

const (
	// NoHandle is no handle: the margin or blank chart area.
	NoHandle Handles = iota

	// NW is the top-left corner, outside the plot area.
	NW

	// NE is the top-right corner, outside the plot area.
	NE

	// SW is the bottom-left corner, outside the plot area.
	SW

	// SE is the bottom-right corner, outside the plot area.
	SE

	// N is the top end of the y axis band.
	N

	// S is the bottom end of the y axis band.
	S

	// E is the right end of the x axis band.
	E

	// W is the left end of the x axis band.
	W

	// Interior is the plot area itself, which pans or box zooms
	// depending on the drag mode.
	Interior

	// EW is the middle of the x axis band, which pans the x axes.
	EW

	// NS is the middle of the y axis band, which pans the y axes.
	NS

	HandlesN
)

var handlesNames = [HandlesN]string{"", "nw", "ne", "sw", "se", "n", "s", "e", "w", "nsew", "ew", "ns"}

func (h Handles) String() string {
	if h < 0 || h >= HandlesN {
		return fmt.Sprintf("Handles(%d)", int32(h))
	}
	return handlesNames[h]
}

// SetString sets the handle from its name.
func (h *Handles) SetString(s string) error {
	for i, nm := range handlesNames {
		if nm == strings.ToLower(s) {
			*h = Handles(i)
			return nil
		}
	}
	return fmt.Errorf("dragbox.Handles: unknown handle %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (h Handles) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (h *Handles) UnmarshalText(text []byte) error {
	return h.SetString(string(text))
}

// Edge is the part of the axes in one dimension that a handle moves.
type Edge struct {

	// Active is whether the handle moves the axes of this dimension.
	Active bool

	// Anchor is which end of the range moves.
	Anchor axis.Anchors
}

// Edges returns the x and y edges moved by the handle.
// Corner and edge handles move the edge of the range on their side,
// keeping the opposite edge fixed. Interior, EW and NS move both edges.
func (h Handles) Edges() (x, y Edge) {
	on := func(an axis.Anchors) Edge { return Edge{Active: true, Anchor: an} }
	switch h {
	case NW:
		return on(axis.Start), on(axis.End)
	case NE:
		return on(axis.End), on(axis.End)
	case SW:
		return on(axis.Start), on(axis.Start)
	case SE:
		return on(axis.End), on(axis.Start)
	case N:
		return x, on(axis.End)
	case S:
		return x, on(axis.Start)
	case E:
		return on(axis.End), y
	case W:
		return on(axis.Start), y
	case Interior:
		return on(axis.Both), on(axis.Both)
	case EW:
		return on(axis.Both), y
	case NS:
		return x, on(axis.Both)
	}
	return
}

// Dims returns whether the handle acts on the x and y dimensions.
func (h Handles) Dims() (x, y bool) {
	ex, ey := h.Edges()
	return ex.Active, ey.Active
}

// DraggerSize is the default pixel size of the axis bands and corners.
const DraggerSize = 20

// HandleAt returns the handle at the given pixel position for a subplot
// with the given plot area, with axis bands of the given size below
// (x) and to the left of (y) the plot area. Corners sit diagonally
// outside the plot area corners. The outer tenth of each band resizes
// the range, and the middle pans.
func HandleAt(area math32.Box2, pos math32.Vector2, size float32) Handles {
	if area.ContainsPoint(pos) {
		return Interior
	}
	x0, y0, x1, y1 := area.Min.X, area.Min.Y, area.Max.X, area.Max.Y
	sz := area.Size()
	switch {
	case math32.B2(x0-size, y0-size, x0, y0).ContainsPoint(pos):
		return NW
	case math32.B2(x1, y0-size, x1+size, y0).ContainsPoint(pos):
		return NE
	case math32.B2(x0-size, y1, x0, y1+size).ContainsPoint(pos):
		return SW
	case math32.B2(x1, y1, x1+size, y1+size).ContainsPoint(pos):
		return SE
	case math32.B2(x0, y1, x1, y1+size).ContainsPoint(pos):
		f := (pos.X - x0) / sz.X
		switch {
		case f < 0.1:
			return W
		case f > 0.9:
			return E
		}
		return EW
	case math32.B2(x0-size, y0, x0, y1).ContainsPoint(pos):
		f := (y1 - pos.Y) / sz.Y
		switch {
		case f < 0.1:
			return S
		case f > 0.9:
			return N
		}
		return NS
	}
	return NoHandle
}
