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

package pdfout

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/extrude"
)

func TestWriteFile(t *testing.T) {
	e := extrude.New(extrude.Config{Thickness: 4})
	m := e.Extrude([]vec.Vec2{{X: 10, Y: 50}, {X: 32, Y: 14}, {X: 54, Y: 50}})

	tests := []struct {
		name string
		opt  *Options
	}{
		{"default", nil},
		{"inverted", &Options{Background: 0, Foreground: 1}},
		{"scaled", &Options{Transform: matrix.Scale(2, 2)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), "mesh.pdf")
			err := WriteFile(fname, m, 64, 64, test.opt)
			if err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header")
			}
		})
	}
}

func TestWriteFileEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WriteFile(fname, &extrude.Mesh{}, 10, 10, nil); err != nil {
		t.Fatal(err)
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "mesh.pdf")
	if err := WriteFile(fname, &extrude.Mesh{}, 10, 10, nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestDrawable(t *testing.T) {
	tests := []struct {
		tri  extrude.Triangle
		want bool
	}{
		{extrude.Triangle{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, true},
		{extrude.Triangle{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, false},
		{extrude.Triangle{{X: 0, Y: 0}, {X: math.Inf(-1), Y: 0}, {X: 0, Y: 1}}, false},
	}
	for i, test := range tests {
		if got := drawable(test.tri); got != test.want {
			t.Errorf("%d: drawable = %t, want %t", i, got, test.want)
		}
	}
}
