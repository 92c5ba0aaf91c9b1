// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/base/iox/yamlx"
	"cogentcore.org/plotinteract/base/reflectx"
	"cogentcore.org/plotinteract/math32"
	"cogentcore.org/plotinteract/plot"
	"cogentcore.org/plotinteract/plot/axis"
	"cogentcore.org/plotinteract/plot/dragbox"
	"cogentcore.org/plotinteract/plot/hit"
	"github.com/jinzhu/copier"
)

var (
	// ErrUnknownAxis is returned for a reference to an axis
	// that is not in the layout.
	ErrUnknownAxis = errors.New("chart: unknown axis")

	// ErrNoSubplot is returned for a layout with no room for
	// a plot area.
	ErrNoSubplot = errors.New("chart: no plot area")
)

// Figure is a chart: its traces, layout and configuration.
type Figure struct {
	Data   []*Trace `yaml:"data" json:"data"`
	Layout Layout   `yaml:"layout" json:"layout"`
	Config Config   `yaml:"config" json:"config"`
}

// Trace is one series of data points.
type Trace struct {

	// Name is the name of the trace.
	Name string `yaml:"name" json:"name,omitempty"`

	// X are the x values; the point indexes if empty.
	X plot.Values `yaml:"x" json:"x"`

	// Y are the y values.
	Y plot.Values `yaml:"y" json:"y"`

	// XAxis is the ID of the x axis: "x" if empty.
	XAxis string `yaml:"xaxis" json:"xaxis,omitempty"`

	// YAxis is the ID of the y axis: "y" if empty.
	YAxis string `yaml:"yaxis" json:"yaxis,omitempty"`

	// HoverInfo controls hit testing and tooltips for the points.
	HoverInfo hit.HoverInfos `yaml:"hoverinfo" json:"hoverinfo"`

	// MarkerSize is the diameter of the markers in pixels: 6 if zero.
	MarkerSize float32 `yaml:"markersize" json:"markersize,omitempty"`

	// Visible is whether the trace is shown; true if unset.
	Visible *bool `yaml:"visible" json:"visible,omitempty"`
}

// IsVisible returns whether the trace is shown.
func (tr *Trace) IsVisible() bool {
	return tr.Visible == nil || *tr.Visible
}

// resolved returns a copy of the trace with all defaults filled in.
func (tr *Trace) resolved() *Trace {
	full := &Trace{}
	errors.Log(copier.CopyWithOption(full, tr, copier.Option{DeepCopy: true}))
	if full.XAxis == "" {
		full.XAxis = "x"
	}
	if full.YAxis == "" {
		full.YAxis = "y"
	}
	if full.MarkerSize <= 0 {
		full.MarkerSize = 6
	}
	if len(full.X) == 0 {
		full.X = make(plot.Values, len(full.Y))
		for i := range full.X {
			full.X[i] = float64(i)
		}
	}
	vis := tr.IsVisible()
	full.Visible = &vis
	return full
}

// Layout is the size and axes of a figure.
type Layout struct {

	// Width and Height are the size of the chart in pixels.
	Width  float64 `yaml:"width" json:"width" default:"700"`
	Height float64 `yaml:"height" json:"height" default:"450"`

	// Margin is the space around the plot area.
	Margin Margin `yaml:"margin" json:"margin"`

	// DragMode is the action of a drag in the plot interior.
	DragMode dragbox.DragModes `yaml:"dragmode" json:"dragmode"`

	// Axes are the axis configurations. The x and y axes are added
	// if they are missing.
	Axes []axis.Config `yaml:"axes" json:"axes"`
}

// Margin is the space in pixels on each side of the plot area.
type Margin struct {
	L float64 `yaml:"l" json:"l" default:"80"`
	R float64 `yaml:"r" json:"r" default:"80"`
	T float64 `yaml:"t" json:"t" default:"100"`
	B float64 `yaml:"b" json:"b" default:"80"`
}

// Config is the interaction configuration of a figure.
type Config struct {

	// DoubleClick is the action of a double-click on a subplot.
	DoubleClick DoubleClickPolicies `yaml:"doubleClick" json:"doubleClick"`

	// DoubleClickDelay, if > 0, overrides the double-click interval
	// of the gesture settings, in milliseconds.
	DoubleClickDelay int `yaml:"doubleClickDelay" json:"doubleClickDelay,omitempty"`

	// ScrollZoom enables zooming with the scroll wheel.
	ScrollZoom bool `yaml:"scrollZoom" json:"scrollZoom"`
}

// NewFigure returns a new figure with default layout values.
func NewFigure() *Figure {
	fig := &Figure{}
	errors.Log(reflectx.SetFromDefaultTags(fig))
	return fig
}

// OpenFigure opens a figure from the given YAML file.
func OpenFigure(filename string) (*Figure, error) {
	fig := NewFigure()
	if err := yamlx.Open(fig, filename); err != nil {
		return nil, err
	}
	return fig, fig.Validate()
}

// ReadFigureBytes reads a figure from YAML data.
func ReadFigureBytes(data []byte) (*Figure, error) {
	fig := NewFigure()
	if err := yamlx.ReadBytes(fig, data); err != nil {
		return nil, err
	}
	return fig, fig.Validate()
}

// axisConfigs returns the axis configurations with the x and y
// axes added if missing.
func (ly *Layout) axisConfigs() []axis.Config {
	cfgs := append([]axis.Config{}, ly.Axes...)
	has := func(id string) bool {
		for _, cfg := range cfgs {
			if cfg.ID == id {
				return true
			}
		}
		return false
	}
	for _, id := range []string{"x", "y"} {
		if !has(id) {
			cfgs = append(cfgs, axis.Config{ID: id})
		}
	}
	return cfgs
}

// Validate returns an error for a figure whose traces or axes refer
// to missing axes, or with no room for the plot area.
func (fig *Figure) Validate() error {
	ly := &fig.Layout
	if ly.Width-ly.Margin.L-ly.Margin.R <= 0 || ly.Height-ly.Margin.T-ly.Margin.B <= 0 {
		return fmt.Errorf("%w: size %gx%g with margins %+v", ErrNoSubplot, ly.Width, ly.Height, ly.Margin)
	}
	dims := map[string]bool{}
	for _, cfg := range ly.axisConfigs() {
		dim, err := axis.DimFromID(cfg.ID)
		if err != nil {
			return err
		}
		if _, dup := dims[cfg.ID]; dup {
			return fmt.Errorf("chart: duplicate axis %q", cfg.ID)
		}
		dims[cfg.ID] = dim == math32.X
	}
	for _, cfg := range ly.Axes {
		if cfg.Overlaying == "" {
			continue
		}
		isX, ok := dims[cfg.Overlaying]
		if !ok || isX != dims[cfg.ID] || cfg.Overlaying == cfg.ID {
			return fmt.Errorf("%w: %q overlaying %q", ErrUnknownAxis, cfg.ID, cfg.Overlaying)
		}
	}
	for i, tr := range fig.Data {
		if tr == nil {
			return fmt.Errorf("chart: trace %d is empty", i)
		}
		full := tr.resolved()
		if isX, ok := dims[full.XAxis]; !ok || !isX {
			return fmt.Errorf("%w: trace %d x axis %q", ErrUnknownAxis, i, full.XAxis)
		}
		if isX, ok := dims[full.YAxis]; !ok || isX {
			return fmt.Errorf("%w: trace %d y axis %q", ErrUnknownAxis, i, full.YAxis)
		}
		if len(full.X) != len(full.Y) {
			return fmt.Errorf("chart: trace %d has %d x and %d y values", i, len(full.X), len(full.Y))
		}
		if err := checkTraceValues(i, full.X, full.Y); err != nil {
			return err
		}
	}
	return nil
}

// checkTraceValues returns an error if any of the trace values are
// infinite, which can be neither placed on an axis nor autoranged.
func checkTraceValues(trace int, x, y plot.Values) error {
	if err := plot.CheckFloats(x...); err != nil {
		return fmt.Errorf("chart: trace %d x: %w", trace, err)
	}
	if err := plot.CheckFloats(y...); err != nil {
		return fmt.Errorf("chart: trace %d y: %w", trace, err)
	}
	return nil
}
