// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (axis) names
type Dims int32 //enums:enum

const (
	// X is the horizontal dimension; pixel X grows to the right.
	X Dims = iota

	// Y is the vertical dimension; pixel Y grows downward.
	Y
)

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return "Dims(?)"
}

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}
