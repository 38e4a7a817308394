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
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/extrude"
	"seehuhn.de/go/extrude/pdfout"
	"seehuhn.de/go/extrude/projection"
	"seehuhn.de/go/extrude/raster"
)

const (
	formatPNG = "png"
	formatPDF = "pdf"

	defaultSize   = 512
	defaultMargin = 16
)

type previewOpts struct {
	output string
	format string
	width  int
	height int
	margin float64
	style  styleFlags
}

func newPreviewCmd() *cobra.Command {
	opts := previewOpts{
		width:  defaultSize,
		height: defaultSize,
		margin: defaultMargin,
	}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render the mesh for a set of polylines",
		Long: `Preview extrudes polylines like the extrude command and renders the mesh
triangles to a PNG or PDF file.  The projected input is scaled to fit the
image, line thickness and miter limit are measured in pixels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return errors.New("missing output file, use --output")
			}
			if opts.format == "" {
				opts.format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
			}
			if opts.format != formatPNG && opts.format != formatPDF {
				return fmt.Errorf("unknown preview format %q", opts.format)
			}
			if opts.width <= 0 || opts.height <= 0 {
				return fmt.Errorf("invalid image size %dx%d", opts.width, opts.height)
			}
			cfg, err := opts.style.config(cmd)
			if err != nil {
				return err
			}
			return runPreview(cmd.Context(), cmd, args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png, pdf (default from file name)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "image height in pixels")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "space around the lines in pixels")
	opts.style.register(cmd)

	return cmd
}

func runPreview(ctx context.Context, cmd *cobra.Command, fname string, cfg extrude.Config, opts *previewOpts) error {
	logger := loggerFromContext(ctx)

	lines, err := readLines(fname, cmd.InOrStdin())
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	m := previewMesh(ctx, lines, cfg, float64(opts.width), float64(opts.height), opts.margin)

	switch opts.format {
	case formatPDF:
		err = pdfout.WriteFile(opts.output, m, float64(opts.width), float64(opts.height), nil)
	default:
		img := raster.Coverage(m, opts.width, opts.height)
		err = writeFile(opts.output, func(w io.Writer) error {
			return png.Encode(w, invert(img))
		})
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d triangles to %s", m.NumTriangles(), opts.output))
	return nil
}

// previewMesh extrudes lines for an image of the given size.  The projected
// input is fitted into the image, and the mesh positions are mapped to
// pixel coordinates, so that the triangles can be drawn directly.
func previewMesh(ctx context.Context, lines [][]vec.Vec2, cfg extrude.Config, width, height, margin float64) *extrude.Mesh {
	logger := loggerFromContext(ctx)

	project := cfg.Project
	if project == nil {
		project = projection.Identity
	}
	fit := fitMatrix(lines, project, width, height, margin)
	logger.Debug("fitted input", "matrix", fit)
	toImage := projection.Affine(fit)
	cfg.Project = func(p vec.Vec2) vec.Vec2 {
		return toImage(project(p))
	}

	m := extrudeAll(ctx, extrude.New(cfg), lines)
	projectPositions(m, cfg.Project)
	return m
}

// projectPositions maps the centre line points of m through f.
// Normals and offsets are already given in the target space.
func projectPositions(m *extrude.Mesh, f projection.Func) {
	for i := range m.NumVertices() {
		rec := m.Positions[extrude.PositionStride*i:]
		p := f(vec.Vec2{X: float64(rec[0]), Y: float64(rec[1])})
		rec[0], rec[1] = float32(p.X), float32(p.Y)
	}
}

// fitMatrix returns a transformation which maps the projected points of all
// lines into the rectangle [margin, width-margin]×[margin, height-margin],
// keeping the aspect ratio and centring the result.
func fitMatrix(lines [][]vec.Vec2, project projection.Func, width, height, margin float64) matrix.Matrix {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, line := range lines {
		for _, p := range line {
			q := project(p)
			minX = min(minX, q.X)
			minY = min(minY, q.Y)
			maxX = max(maxX, q.X)
			maxY = max(maxY, q.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return matrix.Identity
	}

	availX := max(width-2*margin, 1)
	availY := max(height-2*margin, 1)
	scale := 1.0
	dx, dy := maxX-minX, maxY-minY
	switch {
	case dx > 0 && dy > 0:
		scale = min(availX/dx, availY/dy)
	case dx > 0:
		scale = availX / dx
	case dy > 0:
		scale = availY / dy
	}

	tx := width/2 - scale*(minX+maxX)/2
	ty := height/2 - scale*(minY+maxY)/2
	return matrix.Matrix{scale, 0, 0, scale, tx, ty}
}

// invert converts coverage into a gray image with black lines on white.
func invert(a *image.Alpha) *image.Gray {
	g := image.NewGray(a.Bounds())
	for i, c := range a.Pix {
		g.Pix[i] = 255 - c
	}
	return g
}
