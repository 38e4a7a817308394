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

// Package style reads line styles from TOML files.
//
// A style file looks like this:
//
//	join = "miter"        # or "bevel"; "pointed" and "flattened" also work
//	cap = "butt"          # or "square"; "flush" and "extended" also work
//	dash = false
//	miter_limit = 10.0
//	thickness = 1.5
//	projection = "identity"   # or "mercator"
//
// All keys are optional.  Missing keys select the defaults of
// [extrude.Config].
package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/extrude"
	"seehuhn.de/go/extrude/projection"
)

// file is the TOML representation of a line style.
type file struct {
	Join        string  `toml:"join"`
	Cap         string  `toml:"cap"`
	Dash        bool    `toml:"dash"`
	MiterLimit  float64 `toml:"miter_limit"`
	Thickness   float64 `toml:"thickness"`
	Closed      bool    `toml:"closed"`
	IndexOffset int     `toml:"index_offset"`
	Projection  string  `toml:"projection"`
}

// Load reads a line style from the named TOML file.
func Load(fname string) (extrude.Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return extrude.Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return extrude.Config{}, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Decode reads a line style in TOML format from r.
// Unknown keys are an error.
func Decode(r io.Reader) (extrude.Config, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return extrude.Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return extrude.Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg := extrude.Config{
		Dash:        f.Dash,
		MiterLimit:  f.MiterLimit,
		Thickness:   f.Thickness,
		Closed:      f.Closed,
		IndexOffset: f.IndexOffset,
	}
	if f.Join != "" {
		cfg.Join, err = ParseJoin(f.Join)
		if err != nil {
			return extrude.Config{}, err
		}
	}
	if f.Cap != "" {
		cfg.Cap, err = ParseCap(f.Cap)
		if err != nil {
			return extrude.Config{}, err
		}
	}
	if f.Projection != "" {
		cfg.Project, err = ParseProjection(f.Projection)
		if err != nil {
			return extrude.Config{}, err
		}
	}

	if cfg.Thickness < 0 {
		return extrude.Config{}, fmt.Errorf("negative thickness %g", cfg.Thickness)
	}
	if cfg.MiterLimit < 0 {
		return extrude.Config{}, fmt.Errorf("negative miter limit %g", cfg.MiterLimit)
	}
	return cfg, nil
}

// ParseJoin converts a join name into a join style.
func ParseJoin(name string) (graphics.LineJoinStyle, error) {
	switch strings.ToLower(name) {
	case "miter", "pointed":
		return graphics.LineJoinMiter, nil
	case "bevel", "flattened":
		return graphics.LineJoinBevel, nil
	default:
		return 0, fmt.Errorf("unknown join style %q", name)
	}
}

// ParseCap converts a cap name into a cap style.
func ParseCap(name string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(name) {
	case "butt", "flush":
		return graphics.LineCapButt, nil
	case "square", "extended":
		return graphics.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown cap style %q", name)
	}
}

// ParseProjection returns the projection with the given name.
func ParseProjection(name string) (projection.Func, error) {
	switch strings.ToLower(name) {
	case "identity", "none":
		return projection.Identity, nil
	case "mercator":
		return projection.Mercator, nil
	default:
		return nil, fmt.Errorf("unknown projection %q", name)
	}
}
