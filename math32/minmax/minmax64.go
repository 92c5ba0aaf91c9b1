// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import (
	"math"

	"golang.org/x/exp/constraints"
)

const MaxFloat64 float64 = 1.7976931348623158e+308

// F64 represents a min / max range for float64 values,
// accumulated from data with FitValInRange.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling FitValInRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit. NaN and infinite values
// are ignored, so they never widen the range.
func (mr *F64) FitValInRange(val float64) bool {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return false
	}
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Clamp returns val clipped to the [mn, mx] range.
// A NaN val is returned unchanged.
func Clamp[T constraints.Float | constraints.Integer](val, mn, mx T) T {
	if val < mn {
		return mn
	}
	if val > mx {
		return mx
	}
	return val
}
