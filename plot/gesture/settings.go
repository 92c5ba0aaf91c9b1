// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/plotinteract/base/errors"
	"cogentcore.org/plotinteract/base/iox/tomlx"
	"cogentcore.org/plotinteract/base/reflectx"
	"github.com/fsnotify/fsnotify"
)

// Settings are the timing and distance thresholds of gesture
// classification, which can be saved to and loaded from a TOML file.
type Settings struct {

	// DoubleClickMSec is the maximum interval in milliseconds between
	// the first click and the press of the second for a double-click.
	DoubleClickMSec int `default:"300" toml:"double_click_msec"`

	// DragStartDistance is the distance in pixels the pointer must
	// move from the press before it is a drag rather than a click.
	DragStartDistance int `default:"8" toml:"drag_start_distance"`

	// FrameMSec is the minimum interval in milliseconds between
	// drag moves sent to the chart.
	FrameMSec int `default:"16" toml:"frame_msec"`

	// HitTolerance is the maximum distance in pixels from the pointer
	// to a point for it to be hovered or clicked.
	HitTolerance float32 `default:"20" toml:"hit_tolerance"`

	// MinZoom is the minimum size in pixels of a zoom box dimension
	// for it to zoom that dimension.
	MinZoom float32 `default:"20" toml:"min_zoom"`
}

// NewSettings returns new settings with default values.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the default values from the default tags.
func (s *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
}

// Validate returns an error if any setting is out of range.
func (s *Settings) Validate() error {
	switch {
	case s.DoubleClickMSec <= 0:
		return fmt.Errorf("gesture.Settings: double_click_msec must be > 0, not %d", s.DoubleClickMSec)
	case s.DragStartDistance < 0:
		return fmt.Errorf("gesture.Settings: drag_start_distance must be >= 0, not %d", s.DragStartDistance)
	case s.FrameMSec < 0:
		return fmt.Errorf("gesture.Settings: frame_msec must be >= 0, not %d", s.FrameMSec)
	case s.HitTolerance < 0:
		return fmt.Errorf("gesture.Settings: hit_tolerance must be >= 0, not %g", s.HitTolerance)
	case s.MinZoom < 0:
		return fmt.Errorf("gesture.Settings: min_zoom must be >= 0, not %g", s.MinZoom)
	}
	return nil
}

// DoubleClickInterval returns DoubleClickMSec as a duration.
func (s *Settings) DoubleClickInterval() time.Duration {
	return time.Duration(s.DoubleClickMSec) * time.Millisecond
}

// FrameInterval returns FrameMSec as a duration.
func (s *Settings) FrameInterval() time.Duration {
	return time.Duration(s.FrameMSec) * time.Millisecond
}

// Open loads the settings from the given TOML file. Settings missing
// from the file keep their default values.
func (s *Settings) Open(filename string) error {
	ns := NewSettings()
	if err := tomlx.Open(ns, filename); err != nil {
		return err
	}
	if err := ns.Validate(); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	*s = *ns
	return nil
}

// Save saves the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}

// WatchSettings watches the given settings file, and calls fun with
// the newly loaded settings each time it is written. Files that fail
// to load are logged and skipped. The directory is watched so that
// editors that replace the file are seen. Watching stops when the
// returned function is called.
func WatchSettings(filename string, fun func(s *Settings)) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s := NewSettings()
				if errors.Log(s.Open(abs)) != nil {
					continue
				}
				slog.Info("gesture: reloaded settings", "file", abs)
				fun(s)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return watcher.Close, nil
}
