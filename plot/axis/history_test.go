// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"

	"cogentcore.org/plotinteract/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguredHistory(t *testing.T) {
	ax := newAxis(t, Config{ID: "x", Range: B(-3, 1)}, 0, 100, -5, 5)
	assert.Equal(t, Drawn, ax.State)
	require.NotNil(t, ax.Initial)
	assert.Equal(t, Range{-3, 1}, *ax.Initial)
	assert.True(t, ax.AtInitial())

	assert.True(t, ax.SetRange(Range{-2, 0}))
	assert.Equal(t, UserRanged, ax.State)
	assert.False(t, ax.AtInitial())
	assert.Equal(t, Range{-3, 1}, *ax.Initial)

	assert.True(t, ax.ResetToInitial())
	assert.Equal(t, Range{-3, 1}, ax.Current)
	assert.Equal(t, UserRanged, ax.State)

	ax.SetAutoRange()
	assert.Equal(t, AutoRanged, ax.State)
	assert.InDeltaSlice(t, []float64{-5 - 10.0/15, 5 + 10.0/15}, ax.Current[:], tol)
	assert.Equal(t, Range{-3, 1}, *ax.Initial)

	// later draws do not re-snapshot
	ax.Draw(true)
	assert.Equal(t, Range{-3, 1}, *ax.Initial)
}

func TestAutorangeHistory(t *testing.T) {
	ax := newAxis(t, Config{ID: "y"}, 0, 100, 0, 3)
	assert.Nil(t, ax.Initial)
	assert.True(t, ax.Autorange)

	ax.DataChanged(plot.Values{0, 30})
	assert.InDeltaSlice(t, []float64{-2, 32}, ax.Current[:], tol)

	assert.True(t, ax.SetUserRange(Range{0, 0.5}))
	ax.DataChanged(plot.Values{0, 300})
	assert.Equal(t, Range{0, 0.5}, ax.Current)

	assert.False(t, ax.ResetToInitial())
	assert.Equal(t, AutoRanged, ax.State)
	assert.InDeltaSlice(t, []float64{-20, 320}, ax.Current[:], tol)

	ax.DataChanged(plot.Values{0, 15})
	assert.InDeltaSlice(t, []float64{-1, 16}, ax.Current[:], tol)
}

func TestNoSnapshot(t *testing.T) {
	ax, err := New(Config{ID: "x", Range: B(0, 4)})
	require.NoError(t, err)
	ax.Draw(false)
	assert.Nil(t, ax.Initial)
	assert.Equal(t, Range{0, 4}, ax.Current)

	fixed := newAxis(t, Config{ID: "y2", FixedRange: true}, 0, 100, 1, 2)
	assert.Nil(t, fixed.Initial)

	fixedCfg := newAxis(t, Config{ID: "y2", FixedRange: true, Range: B(-1, 1)}, 0, 100, 1, 2)
	require.NotNil(t, fixedCfg.Initial)
}

func TestSetRangeBeforeDraw(t *testing.T) {
	ax, err := New(Config{ID: "x"})
	require.NoError(t, err)
	assert.True(t, ax.SetRange(Range{0, 5}))
	assert.Equal(t, Unset, ax.State)
	ax.Draw(true)
	require.NotNil(t, ax.Initial)
	assert.Equal(t, Range{0, 5}, *ax.Initial)

	assert.False(t, ax.SetRange(Range{1, 1}))
	assert.False(t, ax.SetRange(Range{math.NaN(), 1}))
	assert.Equal(t, Range{0, 5}, ax.Current)
}
