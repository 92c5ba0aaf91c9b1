// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot holds the data values shared by the chart interaction
// packages: axis, hit, gesture, dragbox and chart.
package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/math32/minmax"
	"gopkg.in/yaml.v3"
)

// ErrInfinity is returned by [CheckFloats] for an infinite data value.
var ErrInfinity = errors.New("plot: infinite data point")

// Valuer is the data interface for plotting, supporting either
// float64 or string representations.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D(i int) returns float64 value at given index.
	Float1D(i int) float64

	// String1D(i int) returns string value at given index.
	String1D(i int) string
}

// CheckFloats returns an error wrapping [ErrInfinity] if any of the
// values are infinite. NaN values mark missing points and are allowed.
func CheckFloats(fs ...float64) error {
	for i, f := range fs {
		if math.IsInf(f, 0) {
			return fmt.Errorf("%w at index %d", ErrInfinity, i)
		}
	}
	return nil
}

// RangeFunc updates given Range with values from data transformed
// by the given function, skipping values for which ok is false.
// It is used for the linearized (e.g., log10) extent of axis data.
func RangeFunc(data Valuer, rng *minmax.F64, fun func(v float64) (float64, bool)) {
	for i := 0; i < data.Len(); i++ {
		if v, ok := fun(data.Float1D(i)); ok {
			rng.FitValInRange(v)
		}
	}
}

// Values provides a minimal implementation of the Data interface
// using a slice of float64.
// In YAML, each element can be a number, null (NaN) or a date string,
// which is stored as milliseconds since the Unix epoch (see [ParseValue]).
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (vs *Values) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("plot.Values: line %d: expected a sequence", value.Line)
	}
	nv := make(Values, len(value.Content))
	for i, n := range value.Content {
		v, err := NodeValue(n)
		if err != nil {
			return err
		}
		nv[i] = v
	}
	*vs = nv
	return nil
}

// MarshalJSON implements [json.Marshaler], writing NaN values as null.
func (vs Values) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	for i, v := range vs {
		if i > 0 {
			b = append(b, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b = append(b, "null"...)
			continue
		}
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return append(b, ']'), nil
}

//////// Dates

// dateLayouts are the date formats accepted by [ParseValue].
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02"}

// DateToValue returns the value of the given time on a date axis:
// milliseconds since the Unix epoch.
func DateToValue(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e6
}

// ValueToDate returns the time for the given date axis value.
func ValueToDate(v float64) time.Time {
	ms := math.Floor(v)
	ns := int64((v - ms) * 1e6)
	return time.UnixMilli(int64(ms)).Add(time.Duration(ns)).UTC()
}

// ParseValue parses a data value from a string: either a number,
// or a date in one of the common layouts (RFC 3339, "2006-01-02",
// "2006-01-02 15:04:05"), which is interpreted in UTC.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	for _, ly := range dateLayouts {
		if t, err := time.Parse(ly, s); err == nil {
			return DateToValue(t), nil
		}
	}
	return math.NaN(), fmt.Errorf("plot: cannot parse %q as a number or date", s)
}

// NodeValue returns the data value of a YAML scalar node:
// null is NaN, and strings are parsed with [ParseValue].
func NodeValue(n *yaml.Node) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return math.NaN(), fmt.Errorf("plot: line %d: expected a scalar value", n.Line)
	}
	if n.ShortTag() == "!!null" {
		return math.NaN(), nil
	}
	v, err := ParseValue(n.Value)
	if err != nil {
		return v, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return v, nil
}
