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

// Command freespace renders the free-space diagram of a cubic Bézier curve
// and a polyline, as described by a TOML configuration file.
//
// Usage:
//
//	freespace [-config stuff.toml] [-o diagram.png] [-workers n] [-v]
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"seehuhn.de/go/freespace"
	"seehuhn.de/go/freespace/config"
	"seehuhn.de/go/freespace/encode"
	"seehuhn.de/go/freespace/plot"
)

func main() {
	var (
		configFile = flag.String("config", "stuff.toml", "configuration file")
		output     = flag.String("o", "", "output file (overrides the configuration)")
		workers    = flag.Int("workers", -1, "number of goroutines (overrides the configuration)")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	freespace.SetLogger(logger)

	if err := run(*configFile, *output, *workers); err != nil {
		logger.Error("failed", "error", err)
		os.Exit(1)
	}
}

func run(configFile, output string, workers int) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}
	if workers >= 0 {
		cfg.Workers = workers
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	rows, cols, err := cfg.Curves()
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	d := freespace.NewDiagram(cfg.Epsilon)
	d.Workers = cfg.Workers
	d.Render(rows, cols, img)

	if err := encode.WriteFile(cfg.Output, img, format); err != nil {
		return err
	}
	freespace.Logger().Info("diagram written", "file", cfg.Output)

	curves := []freespace.Curve{rows, cols}
	if cfg.Preview != "" {
		previewFormat, err := encode.FormatFor(cfg.Preview)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		preview := plot.Preview(curves, cfg.Width, cfg.Height)
		if err := encode.WriteFile(cfg.Preview, preview, previewFormat); err != nil {
			return err
		}
		freespace.Logger().Info("preview written", "file", cfg.Preview)
	}
	if cfg.Figure != "" {
		if err := plot.WritePDF(cfg.Figure, curves, float64(cfg.Width), float64(cfg.Height)); err != nil {
			return err
		}
		freespace.Logger().Info("figure written", "file", cfg.Figure)
	}
	return nil
}
