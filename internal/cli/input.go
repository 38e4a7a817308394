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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geom/vec"
)

// geometry is the subset of GeoJSON understood by readLines.
type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    *geometry       `json:"geometry"`
	Features    []geometry      `json:"features"`
	Geometries  []geometry      `json:"geometries"`
}

// readLines reads polylines from a file, or from stdin if fname is "-".
func readLines(fname string, stdin io.Reader) ([][]vec.Vec2, error) {
	var data []byte
	var err error
	if fname == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(fname)
	}
	if err != nil {
		return nil, err
	}

	lines, err := parseLines(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return lines, nil
}

// parseLines decodes either a JSON array of [x, y] pairs or a GeoJSON
// object.  GeoJSON LineString and MultiLineString geometries are accepted,
// also inside Features, FeatureCollections and GeometryCollections.
// Other geometry types are ignored.
func parseLines(data []byte) ([][]vec.Vec2, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}

	if data[0] == '[' {
		line, err := decodeLine(data)
		if err != nil {
			return nil, err
		}
		return [][]vec.Vec2{line}, nil
	}

	var g geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	var lines [][]vec.Vec2
	if err := g.collect(&lines); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("no line strings found")
	}
	return lines, nil
}

func (g *geometry) collect(lines *[][]vec.Vec2) error {
	switch g.Type {
	case "LineString":
		line, err := decodeLine(g.Coordinates)
		if err != nil {
			return err
		}
		*lines = append(*lines, line)
	case "MultiLineString":
		var parts []json.RawMessage
		if err := json.Unmarshal(g.Coordinates, &parts); err != nil {
			return err
		}
		for _, part := range parts {
			line, err := decodeLine(part)
			if err != nil {
				return err
			}
			*lines = append(*lines, line)
		}
	case "Feature":
		if g.Geometry != nil {
			return g.Geometry.collect(lines)
		}
	case "FeatureCollection":
		for i := range g.Features {
			if err := g.Features[i].collect(lines); err != nil {
				return err
			}
		}
	case "GeometryCollection":
		for i := range g.Geometries {
			if err := g.Geometries[i].collect(lines); err != nil {
				return err
			}
		}
	case "":
		return errors.New("missing GeoJSON type")
	}
	return nil
}

// decodeLine decodes a JSON array of positions.  Positions may carry more
// than two coordinates, extra coordinates are ignored.
func decodeLine(data []byte) ([]vec.Vec2, error) {
	var coords [][]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, err
	}
	line := make([]vec.Vec2, len(coords))
	for i, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("position %d has %d coordinates", i, len(c))
		}
		line[i] = vec.Vec2{X: c[0], Y: c[1]}
	}
	return line, nil
}
