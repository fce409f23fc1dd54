// seehuhn.de/go/freespace - free-space diagrams of planar curves
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the description of a free-space diagram from a TOML
// file.
//
// A minimal file looks like this:
//
//	bezier   = [[0.0, 0.0], [10.0, 10.0], [20.0, 10.0], [30.0, 0.0]]
//	polyline = [[0.0, 0.0], [15.0, 8.0], [30.0, 0.0]]
//	width    = 800
//	height   = 600
//	epsilon  = 2.5
//
// The Bézier curve is sampled along the rows of the image and the polyline
// along the columns, unless swap is set. The optional keys are output,
// format, workers, swap, preview and figure; see [Config].
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/freespace"
	"seehuhn.de/go/freespace/encode"
)

// ErrInvalid is returned when a configuration file is syntactically
// correct but describes an impossible diagram.
var ErrInvalid = errors.New("invalid configuration")

// DefaultOutput is the output file used when none is configured.
const DefaultOutput = "temp.png"

// Config describes one free-space diagram.
type Config struct {
	Bezier   [][2]float64 `toml:"bezier"`   // exactly four control points
	Polyline [][2]float64 `toml:"polyline"` // at least two vertices
	Width    int          `toml:"width"`    // image width in pixels (>= 2)
	Height   int          `toml:"height"`   // image height in pixels (>= 2)
	Epsilon  float64      `toml:"epsilon"`  // distance threshold (>= 0)

	// Output is the name of the image file to write.
	Output string `toml:"output"`

	// Format is the image format. If empty, the format is taken from the
	// extension of Output.
	Format string `toml:"format"`

	// Workers bounds the number of goroutines; 0 means one per CPU.
	Workers int `toml:"workers"`

	// Swap puts the polyline on the rows and the Bézier curve on the
	// columns.
	Swap bool `toml:"swap"`

	// Preview, if set, is the name of an image file showing both curves.
	Preview string `toml:"preview"`

	// Figure, if set, is the name of a PDF file showing both curves.
	Figure string `toml:"figure"`
}

var requiredKeys = []string{"bezier", "polyline", "width", "height", "epsilon"}

// Load reads and validates the named configuration file.
func Load(fname string) (*Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Parse reads and validates a configuration in TOML format.
// Missing required keys and unknown keys are errors.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}

	for _, key := range requiredKeys {
		if !md.IsDefined(key) {
			return nil, fmt.Errorf("missing key %q: %w", key, ErrInvalid)
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a diagram which can be
// computed.
func (c *Config) Validate() error {
	var problems []string
	if c.Width < 2 || c.Height < 2 {
		problems = append(problems, fmt.Sprintf("image size %dx%d is smaller than 2x2", c.Width, c.Height))
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		problems = append(problems, fmt.Sprintf("epsilon %g is not a non-negative number", c.Epsilon))
	}
	if len(c.Bezier) != 4 {
		problems = append(problems, fmt.Sprintf("bezier has %d points instead of 4", len(c.Bezier)))
	}
	if len(c.Polyline) < 2 {
		problems = append(problems, fmt.Sprintf("polyline has %d points, need at least 2", len(c.Polyline)))
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("negative number of workers %d", c.Workers))
	}
	if _, err := c.OutputFormat(); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), ErrInvalid)
	}

	// check the coordinates
	if len(c.Bezier) == 4 {
		if _, err := c.CubicBezier(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if _, err := c.PolylineCurve(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// OutputFormat returns the format of the output image.
func (c *Config) OutputFormat() (encode.Format, error) {
	if c.Format != "" {
		return encode.ParseFormat(c.Format)
	}
	return encode.FormatFor(c.Output)
}

// CubicBezier returns the Bézier curve described by the configuration.
func (c *Config) CubicBezier() (*freespace.CubicBezier, error) {
	if len(c.Bezier) != 4 {
		return nil, fmt.Errorf("bezier has %d points instead of 4: %w", len(c.Bezier), ErrInvalid)
	}
	p := toPoints(c.Bezier)
	bez, err := freespace.NewCubicBezier(p[0], p[1], p[2], p[3])
	if err != nil {
		return nil, fmt.Errorf("bezier: %w", err)
	}
	return bez, nil
}

// PolylineCurve returns the polyline described by the configuration.
func (c *Config) PolylineCurve() (*freespace.Polyline, error) {
	pl, err := freespace.NewPolyline(toPoints(c.Polyline))
	if err != nil {
		return nil, fmt.Errorf("polyline: %w", err)
	}
	return pl, nil
}

// Curves returns the curve for the rows and the curve for the columns of
// the diagram.
func (c *Config) Curves() (rows, cols freespace.Curve, err error) {
	bez, err := c.CubicBezier()
	if err != nil {
		return nil, nil, err
	}
	pl, err := c.PolylineCurve()
	if err != nil {
		return nil, nil, err
	}
	if c.Swap {
		return pl, bez, nil
	}
	return bez, pl, nil
}

func toPoints(coords [][2]float64) []vec.Vec2 {
	pts := make([]vec.Vec2, len(coords))
	for i, xy := range coords {
		pts[i] = vec.Vec2{X: xy[0], Y: xy[1]}
	}
	return pts
}
