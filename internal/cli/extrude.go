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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/extrude"
	"seehuhn.de/go/extrude/gpu"
)

const (
	formatJSON = "json"
	formatRaw  = "raw"
)

type extrudeOpts struct {
	output string
	format string
	style  styleFlags
}

func newExtrudeCmd() *cobra.Command {
	opts := extrudeOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "extrude [file]",
		Short: "Convert polylines into a triangle mesh",
		Long: `Extrude reads polylines from a JSON array of [x, y] pairs or from a GeoJSON
file ("-" reads stdin), and writes the combined triangle mesh.

The json format writes positions, normals and indices as one JSON object.
The raw format writes the GPU buffers as little-endian binary files
<output>.pos, <output>.nrm and <output>.idx.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.style.config(cmd)
			if err != nil {
				return err
			}
			return runExtrude(cmd.Context(), cmd, args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, raw")
	opts.style.register(cmd)

	return cmd
}

func runExtrude(ctx context.Context, cmd *cobra.Command, fname string, cfg extrude.Config, opts *extrudeOpts) error {
	logger := loggerFromContext(ctx)

	switch opts.format {
	case formatJSON:
	case formatRaw:
		if opts.output == "" {
			return errors.New("the raw format needs an output file name")
		}
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	lines, err := readLines(fname, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("read input", "file", fname, "lines", len(lines))

	prog := newProgress(logger)
	m := extrudeAll(ctx, extrude.New(cfg), lines)
	prog.done(fmt.Sprintf("Extruded %d lines into %d triangles", len(lines), m.NumTriangles()))

	if opts.format == formatRaw {
		return writeRaw(opts.output, m)
	}

	if opts.output == "" {
		return writeJSON(cmd.OutOrStdout(), m)
	}
	return writeFile(opts.output, func(w io.Writer) error {
		return writeJSON(w, m)
	})
}

// writeFile creates fname and fills it using write.
func writeFile(fname string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// extrudeAll extrudes every line and combines the results into one mesh.
func extrudeAll(ctx context.Context, e *extrude.Extruder, lines [][]vec.Vec2) *extrude.Mesh {
	logger := loggerFromContext(ctx)
	m := &extrude.Mesh{
		Positions: []float32{},
		Normals:   []float32{},
		Indices:   []uint32{},
	}
	for i, line := range lines {
		part := e.Extrude(line)
		logger.Debug("extruded line", "index", i, "points", len(line), "vertices", part.NumVertices())
		m.Append(part)
	}
	return m
}

type meshJSON struct {
	Vertices  int       `json:"vertices"`
	Triangles int       `json:"triangles"`
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
}

func writeJSON(w io.Writer, m *extrude.Mesh) error {
	enc := json.NewEncoder(w)
	err := enc.Encode(meshJSON{
		Vertices:  m.NumVertices(),
		Triangles: m.NumTriangles(),
		Positions: m.Positions,
		Normals:   m.Normals,
		Indices:   m.Indices,
	})
	if err != nil {
		return fmt.Errorf("encoding mesh: %w", err)
	}
	return nil
}

// writeRaw writes the vertex and index buffers in the layout described by
// gpu.VertexLayouts.
func writeRaw(base string, m *extrude.Mesh) error {
	files := []struct {
		suffix string
		data   []byte
	}{
		{".pos", gpu.PositionBytes(m)},
		{".nrm", gpu.NormalBytes(m)},
		{".idx", gpu.IndexBytes(m)},
	}
	for _, f := range files {
		if err := os.WriteFile(base+f.suffix, f.data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
