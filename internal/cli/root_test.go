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
	"context"
	"encoding/json"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/extrude"
	"seehuhn.de/go/extrude/projection"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, log bytes.Buffer
	err = Execute(context.Background(), args, &out, &log)
	return out.String(), log.String(), err
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	defer SetVersion("dev", "", "")

	out, _, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "polymesh v1.2.3") || !strings.Contains(out, "abc123") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestExtrudeJSON(t *testing.T) {
	in := writeInput(t, `[[0, 0], [4, 0], [4, 0]]`)

	out, _, err := run(t, "extrude", "--thickness", "2", in)
	if err != nil {
		t.Fatal(err)
	}

	var m meshJSON
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatal(err)
	}
	if m.Vertices != 4 || m.Triangles != 2 {
		t.Errorf("got %d vertices and %d triangles, want 4 and 2", m.Vertices, m.Triangles)
	}
	if len(m.Positions) != 24 || len(m.Normals) != 12 || len(m.Indices) != 6 {
		t.Errorf("unexpected buffer lengths %d, %d, %d",
			len(m.Positions), len(m.Normals), len(m.Indices))
	}
	if off := m.Positions[4]; math.Abs(float64(off)) != 2 {
		t.Errorf("offset %g, want ±2", off)
	}
}

func TestExtrudeStyleFile(t *testing.T) {
	dir := t.TempDir()
	styleFile := filepath.Join(dir, "style.toml")
	err := os.WriteFile(styleFile, []byte("thickness = 5\ndash = true\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	in := writeInput(t, `[[0, 0], [3, 4]]`)
	outFile := filepath.Join(dir, "mesh.json")

	_, _, err = run(t, "extrude", "--style", styleFile, "--thickness", "1.5", "-o", outFile, in)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	var m meshJSON
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for i := range m.Vertices {
		rec := m.Positions[6*i : 6*i+6]
		if rec[3] != 5 {
			t.Errorf("vertex %d: distance %g, want 5", i, rec[3])
		}
		if math.Abs(float64(rec[4])) != 1.5 {
			t.Errorf("vertex %d: offset %g, want ±1.5", i, rec[4])
		}
	}
}

func TestExtrudeRaw(t *testing.T) {
	in := writeInput(t, `{"type": "MultiLineString", "coordinates": [[[0, 0], [1, 0]], [[0, 1], [1, 1]]]}`)
	base := filepath.Join(t.TempDir(), "mesh")

	_, _, err := run(t, "extrude", "--format", "raw", "-o", base, in)
	if err != nil {
		t.Fatal(err)
	}

	// two lines with 4 vertices and 2 triangles each
	sizes := map[string]int64{".pos": 8 * 24, ".nrm": 8 * 12, ".idx": 12 * 4}
	for suffix, want := range sizes {
		fi, err := os.Stat(base + suffix)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() != want {
			t.Errorf("%s: %d bytes, want %d", suffix, fi.Size(), want)
		}
	}
}

func TestExtrudeErrors(t *testing.T) {
	in := writeInput(t, `[[0, 0], [1, 0]]`)
	tests := []struct {
		name string
		args []string
	}{
		{"raw without output", []string{"extrude", "--format", "raw", in}},
		{"unknown format", []string{"extrude", "--format", "xml", in}},
		{"unknown join", []string{"extrude", "--join", "round", in}},
		{"missing style", []string{"extrude", "--style", "/nonexistent/style.toml", in}},
		{"missing input", []string{"extrude", "/nonexistent/input.json"}},
		{"no arguments", []string{"extrude"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExtrudeVerbose(t *testing.T) {
	in := writeInput(t, `[[0, 0], [1, 0]]`)
	_, log, err := run(t, "extrude", "-v", in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(log, "extruded line") {
		t.Errorf("debug output missing: %q", log)
	}
}

func TestPreviewPNG(t *testing.T) {
	in := writeInput(t, `[[0, 0], [10, 10], [20, 0]]`)
	outFile := filepath.Join(t.TempDir(), "preview.png")

	_, _, err := run(t, "preview", "--width", "64", "--height", "48", "--thickness", "3", "-o", outFile, in)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("image size %dx%d, want 64x48", b.Dx(), b.Dy())
	}

	// The input is scaled by 1.6 and moved by (16, 16), so that the
	// corner is at (32, 32).
	for _, p := range [][2]int{{24, 24}, {31, 30}, {40, 24}} {
		r, _, _, _ := img.At(p[0], p[1]).RGBA()
		if r > 0x1000 {
			t.Errorf("pixel %v is not covered (r=%#x)", p, r)
		}
	}
	r, _, _, _ := img.At(1, 1).RGBA()
	if r < 0xf000 {
		t.Errorf("corner pixel is covered (r=%#x)", r)
	}
}

func TestPreviewPDF(t *testing.T) {
	in := writeInput(t, `{"type": "LineString", "coordinates": [[13.4, 52.5], [2.35, 48.86]]}`)
	outFile := filepath.Join(t.TempDir(), "preview.pdf")

	_, _, err := run(t, "preview", "--projection", "mercator", "-o", outFile, in)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
}

func TestPreviewMercatorPNG(t *testing.T) {
	in := writeInput(t, `{"type": "LineString", "coordinates": [[13.4, 52.5], [2.35, 48.86]]}`)
	outFile := filepath.Join(t.TempDir(), "preview.png")

	_, _, err := run(t, "preview", "--projection", "mercator", "--thickness", "3",
		"--width", "200", "--height", "100", "--margin", "10", "-o", outFile, in)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	// the line runs through the image centre
	if r, _, _, _ := img.At(100, 50).RGBA(); r > 0x1000 {
		t.Errorf("centre pixel is not covered (r=%#x)", r)
	}
	for _, p := range [][2]int{{1, 1}, {198, 98}, {5, 50}} {
		if r, _, _, _ := img.At(p[0], p[1]).RGBA(); r < 0xf000 {
			t.Errorf("pixel %v is covered (r=%#x)", p, r)
		}
	}
}

func TestPreviewMesh(t *testing.T) {
	lines := [][]vec.Vec2{{{X: 13.4, Y: 52.5}, {X: 2.35, Y: 48.86}}}
	cfg := extrude.Config{Project: projection.Mercator}
	m := previewMesh(context.Background(), lines, cfg, 200, 100, 10)

	if err := m.Check(); err != nil {
		t.Fatal(err)
	}

	// The vertical extent limits the scale, so the east end lands on the
	// top margin and the west end on the bottom margin.
	const epsilon = 0.01
	first := m.Vertex(0).Pos
	last := m.Vertex(m.NumVertices() - 1).Pos
	if math.Abs(first.Y-10) > epsilon || math.Abs(last.Y-90) > epsilon {
		t.Errorf("end points at y=%g and y=%g, want 10 and 90", first.Y, last.Y)
	}
	if math.Abs((first.X+last.X)/2-100) > epsilon {
		t.Errorf("line centred at x=%g, want 100", (first.X+last.X)/2)
	}
	if first.X <= last.X {
		t.Errorf("east end at x=%g is left of west end at x=%g", first.X, last.X)
	}

	b := m.Bounds()
	if b.LLx < 0 || b.LLy < 0 || b.URx > 200 || b.URy > 100 {
		t.Errorf("mesh bounds %v exceed the 200x100 image", b)
	}
	if b.URy-b.LLy < 80 {
		t.Errorf("mesh height %g, want at least 80", b.URy-b.LLy)
	}
}

func TestProjectPositions(t *testing.T) {
	m := extrude.New(extrude.Config{Thickness: 2}).Extrude([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}})
	projectPositions(m, projection.Affine(matrix.Matrix{10, 0, 0, 10, 5, 5}))

	want := []vec.Vec2{{X: 5, Y: 3}, {X: 5, Y: 7}, {X: 15, Y: 3}, {X: 15, Y: 7}}
	for i, w := range want {
		if got := m.Vertex(i).Extruded(); got.Sub(w).Length() > 1e-6 {
			t.Errorf("vertex %d at %v, want %v", i, got, w)
		}
	}
}

func TestPreviewErrors(t *testing.T) {
	in := writeInput(t, `[[0, 0], [1, 0]]`)
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no output", []string{"preview", in}},
		{"unknown extension", []string{"preview", "-o", filepath.Join(dir, "x.gif"), in}},
		{"bad size", []string{"preview", "--width", "0", "-o", filepath.Join(dir, "x.png"), in}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFitMatrix(t *testing.T) {
	lines := [][]vec.Vec2{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 10, Y: 5}},
	}
	m := fitMatrix(lines, projection.Identity, 120, 100, 10)
	fit := projection.Affine(m)

	// scale 10 from the width, the height is centred
	tests := []struct{ in, want vec.Vec2 }{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 25}},
		{vec.Vec2{X: 10, Y: 5}, vec.Vec2{X: 110, Y: 75}},
	}
	for _, tt := range tests {
		got := fit(tt.in)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("fit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// a single point is centred without scaling
	m = fitMatrix([][]vec.Vec2{{{X: 3, Y: 4}}}, projection.Identity, 20, 20, 2)
	if got := projection.Affine(m)(vec.Vec2{X: 3, Y: 4}); got != (vec.Vec2{X: 10, Y: 10}) {
		t.Errorf("single point mapped to %v", got)
	}
}
