// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"log/slog"

	"cogentcore.org/plotinteract/plot"
)

// Draw is called after every draw of the chart.
// The first call leaves the Unset state, computing Current from the
// configured range or the data, and snapshots Initial if snapshot is
// true and a range was configured. Later calls make an autoranged
// axis track its data.
func (ax *Axis) Draw(snapshot bool) {
	if ax.State != Unset {
		if ax.Autorange {
			ax.Current = ax.AutoRange()
		}
		return
	}
	if ax.Autorange {
		ax.Current = ax.AutoRange()
	} else {
		ax.Current = ax.Configured()
	}
	ax.State = Drawn
	if snapshot && !ax.Autorange && ax.Range.IsSet() {
		r := ax.Current
		ax.Initial = &r
	}
	slog.Debug("axis: drawn", "axis", ax.ID, "range", ax.Current, "initial", ax.Initial != nil)
}

// SetRange sets the range, as from a programmatic relayout, which
// also applies to fixedrange axes. Before the first draw, it becomes
// the configured range. It returns false if r is not a valid range.
// Initial is never changed.
func (ax *Axis) SetRange(r Range) bool {
	r, ok := ax.normalize(r)
	if !ok {
		slog.Debug("axis: ignoring invalid range", "axis", ax.ID, "range", r)
		return false
	}
	ax.Autorange = false
	if ax.State == Unset {
		ax.Range = B(r[0], r[1])
		return true
	}
	ax.Current = r
	ax.State = UserRanged
	return true
}

// SetUserRange sets the range from user interaction (a drag, scroll
// or reset). It is a no-op returning false on fixedrange axes.
func (ax *Axis) SetUserRange(r Range) bool {
	if ax.FixedRange {
		slog.Debug("axis: fixedrange, ignoring range change", "axis", ax.ID)
		return false
	}
	return ax.SetRange(r)
}

// SetAutoRange turns on autorange and sets Current from the data.
func (ax *Axis) SetAutoRange() {
	ax.SetAutoRanged(ax.AutoRange())
}

// SetAutoRanged turns on autorange with the given range computed
// from the data by the caller.
func (ax *Axis) SetAutoRanged(r Range) {
	ax.Autorange = true
	ax.Current = r
	if ax.State != Unset {
		ax.State = AutoRanged
	}
}

// DataChanged sets the data of the axis (see [Axis.SetData]), and
// updates Current if the axis is autoranged. A user ranged axis
// keeps its range.
func (ax *Axis) DataChanged(vals ...plot.Valuer) {
	ax.SetData(vals...)
	if ax.Autorange && ax.State != Unset {
		ax.Current = ax.AutoRange()
	}
}

// AtInitial returns whether the axis has an Initial range
// and Current is equal to it.
func (ax *Axis) AtInitial() bool {
	return ax.Initial != nil && ax.Current.Equal(*ax.Initial)
}

// ResetToInitial restores Initial. Without an Initial range it
// autoranges instead, and returns false.
func (ax *Axis) ResetToInitial() bool {
	if ax.Initial == nil {
		ax.SetAutoRange()
		return false
	}
	ax.Autorange = false
	ax.Current = *ax.Initial
	ax.State = UserRanged
	return true
}
