// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis maps between pixel and data coordinates along one chart
// axis, computes new ranges from pixel deltas, and keeps the history
// of the axis range used to reset it.
package axis

import (
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/math32/minmax"
	"cogentcore.org/plotinteract/plot"
)

const (
	// SmallestPositive is the value that zero and negative values
	// are clamped to on log axes.
	SmallestPositive = math.SmallestNonzeroFloat64

	// AutorangePad is the fraction of the data extent added on each
	// side of an autorange.
	AutorangePad = 1.0 / 15

	// DayMSec is one day on a date axis.
	DayMSec = 24 * 60 * 60 * 1000
)

// ErrBadID is returned for an axis ID that does not start with x or y.
var ErrBadID = errors.New("axis: ID must be x or y optionally followed by a number > 1")

// Config is the configuration of an axis, which the interaction
// code only reads.
type Config struct {

	// ID is the axis identifier: "x", "x2", ..., "y", "y2", ...
	ID string `yaml:"id"`

	// Type is the scale of the axis.
	Type Scales `yaml:"type"`

	// Range is the configured range. Unset ends are computed from the data.
	Range Bounds `yaml:"range"`

	// Autorange, if set, overrides the default, which is to autorange
	// only when no end of Range is set.
	Autorange *bool `yaml:"autorange"`

	// FixedRange disables all pan, zoom and reset of the axis
	// by user interaction.
	FixedRange bool `yaml:"fixedrange"`

	// Reversed shows the autorange from high to low.
	Reversed bool `yaml:"reversed"`

	// Overlaying is the ID of the axis this one shares its
	// plotting region with, for a second y axis.
	Overlaying string `yaml:"overlaying"`

	// Domain is the [start, end] fraction of the plot area that the
	// axis spans; [0, 1] if unset.
	Domain [2]float64 `yaml:"domain"`
}

// Axis is one axis of a subplot, along with its range history.
type Axis struct {
	Config

	// Dim is the dimension of the axis, from the first letter of the ID.
	Dim math32.Dims

	// Offset is the pixel position of the left (X) or top (Y) of the axis.
	Offset float64

	// Length is the pixel length of the axis.
	Length float64

	// Current is the range in effect.
	Current Range

	// Initial is the snapshot of Current taken at the first draw when
	// a range was configured, and is the target of a reset.
	Initial *Range

	// State is the range history state.
	State States

	// Autorange is whether Current tracks the extent of the data.
	Autorange bool

	// extent is the linearized extent of the data.
	extent minmax.F64
}

// DimFromID returns the dimension for the given axis ID.
func DimFromID(id string) (math32.Dims, error) {
	if id == "" {
		return math32.X, ErrBadID
	}
	var dim math32.Dims
	switch id[0] {
	case 'x':
		dim = math32.X
	case 'y':
		dim = math32.Y
	default:
		return dim, fmt.Errorf("%w: %q", ErrBadID, id)
	}
	if len(id) > 1 {
		n, err := strconv.Atoi(id[1:])
		if err != nil || n < 2 {
			return dim, fmt.Errorf("%w: %q", ErrBadID, id)
		}
	}
	return dim, nil
}

// New returns a new axis for the given config, in the Unset state.
func New(cfg Config) (*Axis, error) {
	dim, err := DimFromID(cfg.ID)
	if err != nil {
		return nil, err
	}
	ax := &Axis{Config: cfg, Dim: dim}
	if ax.Domain == [2]float64{} {
		ax.Domain = [2]float64{0, 1}
	}
	if cfg.Autorange != nil {
		ax.Autorange = *cfg.Autorange
	} else {
		ax.Autorange = !cfg.Range.IsSet()
	}
	ax.extent.SetInfinity()
	return ax, nil
}

func (ax *Axis) String() string {
	return fmt.Sprintf("%s%v %v", ax.ID, ax.Current, ax.State)
}

// SetGeometry sets the pixel offset and length of the axis.
func (ax *Axis) SetGeometry(offset, length float64) {
	ax.Offset = offset
	ax.Length = length
}

// Lin returns the linearized value of v: log10 for log axes,
// clamping non-positive values to [SmallestPositive].
func (ax *Axis) Lin(v float64) float64 {
	if ax.Type != Log {
		return v
	}
	if !(v > 0) {
		v = SmallestPositive
	}
	return math.Log10(v)
}

// Unlin is the inverse of [Axis.Lin]. On log axes the result is
// always positive and finite.
func (ax *Axis) Unlin(l float64) float64 {
	if ax.Type != Log {
		return l
	}
	v := math.Pow(10, l)
	switch {
	case math.IsNaN(v):
		return v
	case v < SmallestPositive:
		return SmallestPositive
	case math.IsInf(v, 1):
		return math.MaxFloat64
	}
	return v
}

// linRange returns the linearized current range.
func (ax *Axis) linRange() (l0, l1 float64) {
	return ax.Lin(ax.Current[0]), ax.Lin(ax.Current[1])
}

// ToPixel returns the pixel position of the given data value.
// Pixel Y grows downward, so Range[0] of a Y axis is at the bottom.
func (ax *Axis) ToPixel(v float64) float64 {
	l0, l1 := ax.linRange()
	frac := (ax.Lin(v) - l0) / (l1 - l0)
	if ax.Dim == math32.Y {
		frac = 1 - frac
	}
	return ax.Offset + frac*ax.Length
}

// ToData returns the data value at the given pixel position.
// It is the inverse of [Axis.ToPixel].
func (ax *Axis) ToData(px float64) float64 {
	if ax.Length <= 0 {
		return ax.Current[0]
	}
	frac := (px - ax.Offset) / ax.Length
	if ax.Dim == math32.Y {
		frac = 1 - frac
	}
	l0, l1 := ax.linRange()
	return ax.Unlin(l0 + frac*(l1-l0))
}

// Contains returns whether the given pixel position is within the
// pixel extent of the axis.
func (ax *Axis) Contains(px float64) bool {
	return px >= ax.Offset && px <= ax.Offset+ax.Length
}

// SetData sets the data extent of the axis from the given values,
// skipping values that cannot be shown (NaN, infinite, and
// non-positive values on log axes).
func (ax *Axis) SetData(vals ...plot.Valuer) {
	ax.extent.SetInfinity()
	for _, vs := range vals {
		plot.RangeFunc(vs, &ax.extent, func(v float64) (float64, bool) {
			if ax.Type == Log && !(v > 0) {
				return 0, false
			}
			return ax.Lin(v), true
		})
	}
}

// HasData returns whether the axis has any data in its extent.
func (ax *Axis) HasData() bool {
	return ax.extent.IsValid()
}

// AutoRange returns the range computed from the data: the data extent
// padded by [AutorangePad] on each side. Single-valued data get a
// minimum width, and no data gives [-1, 6] in linearized units.
func (ax *Axis) AutoRange() Range {
	var lo, hi float64
	switch {
	case !ax.extent.IsValid():
		lo, hi = -1, 6
	case ax.extent.Range() == 0:
		w := 1.0
		if ax.Type == Date {
			w = DayMSec
		}
		lo, hi = ax.extent.Min-w, ax.extent.Max+w
	default:
		pad := ax.extent.Range() * AutorangePad
		lo, hi = ax.extent.Min-pad, ax.extent.Max+pad
	}
	r := Range{ax.Unlin(lo), ax.Unlin(hi)}
	if ax.Reversed {
		r[0], r[1] = r[1], r[0]
	}
	return r
}

// Configured returns the configured range, with unset ends
// filled in from [Axis.AutoRange].
func (ax *Axis) Configured() Range {
	return ax.Range.Fill(ax.AutoRange())
}

// normalize clamps the ends of r for log axes and returns ok = false
// if the result is not a valid range.
func (ax *Axis) normalize(r Range) (Range, bool) {
	if ax.Type == Log {
		for i := range r {
			if r[i] <= 0 {
				r[i] = SmallestPositive
			}
		}
	}
	return r, r.IsValid()
}

// orCurrent returns the normalized r, or Current if r is not valid.
func (ax *Axis) orCurrent(r Range) Range {
	if nr, ok := ax.normalize(r); ok {
		return nr
	}
	return ax.Current
}
