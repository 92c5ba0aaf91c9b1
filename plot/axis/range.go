// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"

	"cogentcore.org/plotinteract/plot"
	"gopkg.in/yaml.v3"
)

// Range is the [start, end] data range of an axis. Range[0] is shown
// at the left (X) or bottom (Y) of the axis; it is greater than
// Range[1] for reversed axes.
type Range [2]float64

// Span returns Range[1] - Range[0].
func (r Range) Span() float64 {
	return r[1] - r[0]
}

// IsValid returns whether both ends are finite and distinct.
func (r Range) IsValid() bool {
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r[0] != r[1]
}

// Equal returns whether the two ranges are the same, to within
// a tolerance relative to the span.
func (r Range) Equal(o Range) bool {
	tol := 1e-9 * math.Max(math.Abs(r.Span()), math.Abs(o.Span()))
	return math.Abs(r[0]-o[0]) <= tol && math.Abs(r[1]-o[1]) <= tol
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r[0], r[1])
}

// Bounds is a configured range in which either end can be unset (nil),
// in which case it is computed from the data. In YAML it is a two
// element sequence in which null marks an unset end, and dates can be
// given as strings.
type Bounds [2]*float64

// B returns Bounds with both ends set.
func B(start, end float64) Bounds {
	return Bounds{&start, &end}
}

// IsSet returns whether at least one end is set.
func (b Bounds) IsSet() bool {
	return b[0] != nil || b[1] != nil
}

// Fill returns the range with unset ends taken from the given range.
func (b Bounds) Fill(from Range) Range {
	r := from
	for i := range b {
		if b[i] != nil {
			r[i] = *b[i]
		}
	}
	return r
}

func (b Bounds) String() string {
	s := [2]string{"null", "null"}
	for i := range b {
		if b[i] != nil {
			s[i] = fmt.Sprintf("%g", *b[i])
		}
	}
	return "[" + s[0] + ", " + s[1] + "]"
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (b *Bounds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("axis.Bounds: line %d: expected a two element sequence", value.Line)
	}
	var nb Bounds
	for i, n := range value.Content {
		v, err := plot.NodeValue(n)
		if err != nil {
			return err
		}
		if !math.IsNaN(v) {
			nb[i] = &v
		}
	}
	*b = nb
	return nil
}
