// seehuhn.de/go/extrude - polyline extrusion for GPU line rendering
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

package cli

import (
	"github.com/spf13/cobra"

	"seehuhn.de/go/extrude"
	"seehuhn.de/go/extrude/style"
)

// styleFlags are the line style options shared by all commands.
type styleFlags struct {
	file       string
	join       string
	cap        string
	projection string
	dash       bool
	thickness  float64
	miterLimit float64
}

func (f *styleFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "style", "s", "", "TOML file with the line style")
	flags.StringVar(&f.join, "join", "miter", "join style: miter (pointed), bevel (flattened)")
	flags.StringVar(&f.cap, "cap", "butt", "cap style: butt (flush), square (extended)")
	flags.StringVar(&f.projection, "projection", "identity", "input projection: identity, mercator")
	flags.BoolVar(&f.dash, "dash", false, "store the line length in the distance attribute")
	flags.Float64Var(&f.thickness, "thickness", 1, "distance from the centre line to each edge")
	flags.Float64Var(&f.miterLimit, "miter-limit", 10, "longest miter before joins are flattened")
}

// config returns the line style from the style file, if any, with
// explicitly set flags taking precedence.
func (f *styleFlags) config(cmd *cobra.Command) (extrude.Config, error) {
	var cfg extrude.Config
	var err error
	if f.file != "" {
		cfg, err = style.Load(f.file)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("join") {
		if cfg.Join, err = style.ParseJoin(f.join); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("cap") {
		if cfg.Cap, err = style.ParseCap(f.cap); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("projection") {
		if cfg.Project, err = style.ParseProjection(f.projection); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("dash") {
		cfg.Dash = f.dash
	}
	if flags.Changed("thickness") {
		cfg.Thickness = f.thickness
	}
	if flags.Changed("miter-limit") {
		cfg.MiterLimit = f.miterLimit
	}
	return cfg, nil
}
