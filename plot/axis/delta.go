// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"cogentcore.org/plotinteract/math32"
)

// RangeAfterPixelDelta returns the range after the given edges of the
// axis are dragged by delta pixels along the axis dimension (dx for X,
// dy for Y). The data under the cursor follows it:
//   - [Both] shifts the range by the data span of delta: a pan.
//   - [Start] and [End] move only that edge, scaling the span by
//     exp(∓delta/Length) about the fixed opposite edge, so that a drag
//     of delta followed by one of -delta restores the range.
//
// The computation is in linearized space, so log axes pan and zoom
// by factors. Fixedrange axes return Current unchanged.
func (ax *Axis) RangeAfterPixelDelta(delta float64, anchor Anchors) Range {
	if ax.FixedRange || ax.Length <= 0 || delta == 0 {
		return ax.Current
	}
	u := delta
	if ax.Dim == math32.Y {
		u = -delta
	}
	frac := u / ax.Length
	l0, l1 := ax.linRange()
	span := l1 - l0
	switch anchor {
	case Both:
		l0 -= frac * span
		l1 -= frac * span
	case Start:
		l0 = l1 - span*math.Exp(frac)
	case End:
		l1 = l0 + span*math.Exp(-frac)
	}
	return ax.orCurrent(Range{ax.Unlin(l0), ax.Unlin(l1)})
}

// ZoomAbout returns the range scaled by factor about the data value at
// the given pixel, which stays in place. A factor < 1 zooms in.
// Fixedrange axes return Current unchanged.
func (ax *Axis) ZoomAbout(factor float64, px float64) Range {
	if ax.FixedRange || ax.Length <= 0 || factor <= 0 {
		return ax.Current
	}
	c := ax.Lin(ax.ToData(px))
	l0, l1 := ax.linRange()
	l0 = c + (l0-c)*factor
	l1 = c + (l1-c)*factor
	return ax.orCurrent(Range{ax.Unlin(l0), ax.Unlin(l1)})
}

// RangeFromPixels returns the range spanned by the two pixel positions,
// in the orientation of Current, as for a box zoom.
// Fixedrange axes return Current unchanged.
func (ax *Axis) RangeFromPixels(p0, p1 float64) Range {
	if ax.FixedRange || ax.Length <= 0 {
		return ax.Current
	}
	lo, hi := math.Min(p0, p1), math.Max(p0, p1)
	if ax.Dim == math32.Y {
		lo, hi = hi, lo
	}
	return ax.orCurrent(Range{ax.ToData(lo), ax.ToData(hi)})
}
