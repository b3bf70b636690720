// seehuhn.de/go/receipt - receipt and ticket panel outlines
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
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return runContext(t, context.Background(), args...)
}

func runContext(t *testing.T, ctx context.Context, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestOutlineCommand(t *testing.T) {
	out, _, err := run(t, "outline", "--kind", "ticket", "--top", "flat", "--width", "100", "--height", "50")
	if err != nil {
		t.Fatal(err)
	}
	want := "M0 0 L100 0 L100 42 Q92 42 92 50 L8 50 Q8 42 0 42 L0 0 Z\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestOutlineEmpty(t *testing.T) {
	out, _, err := run(t, "outline", "--kind", "zigzag", "--width", "0")
	if err != nil {
		t.Fatal(err)
	}
	if out != "\n" {
		t.Errorf("got %q, want an empty line", out)
	}
}

func TestOutlineErrors(t *testing.T) {
	tests := [][]string{
		{"outline", "--kind", "hexagon"},
		{"outline", "--kind", "footer", "--top", "flat"},
		{"outline", "--top", "wavy"},
		{"outline", "--width", "-1"},
		{"outline", "--height", "NaN"},
	}
	for _, args := range tests {
		if _, _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

const renderConfig = `
width = 100
scale = 1

[[item]]
kind = "ticket"
height = 60
elevation = 2

[[item]]
kind = "separator"

[[item]]
kind = "footer"
height = 40
`

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "receipt.toml")
	if err := os.WriteFile(fname, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestRenderPNG(t *testing.T) {
	cfg := writeConfig(t, renderConfig)
	outName := filepath.Join(t.TempDir(), "receipt.png")

	_, logs, err := run(t, "render", "-c", cfg, "-o", outName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "wrote receipt") {
		t.Errorf("missing progress message in %q", logs)
	}

	img, err := imaging.Open(outName)
	if err != nil {
		t.Fatal(err)
	}
	// 60 + 1 + 40 high, 4 units padding on each side
	want := image.Pt(108, 109)
	if got := img.Bounds().Size(); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
}

func TestRenderStdout(t *testing.T) {
	cfg := writeConfig(t, renderConfig)

	out, _, err := run(t, "render", "-c", cfg, "-o", "-", "--scale", "2")
	if err != nil {
		t.Fatal(err)
	}
	img, err := imaging.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	want := image.Pt(216, 218)
	if got := img.Bounds().Size(); got != want {
		t.Errorf("got size %v, want %v", got, want)
	}
}

func TestRenderPDF(t *testing.T) {
	cfg := writeConfig(t, renderConfig)
	outName := filepath.Join(t.TempDir(), "receipt.pdf")

	if _, _, err := run(t, "render", "-c", cfg, "-o", outName); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestRenderWarnsUnknownKeys(t *testing.T) {
	cfg := writeConfig(t, renderConfig+"colour = \"#ffffff\"\n")
	outName := filepath.Join(t.TempDir(), "receipt.png")

	_, logs, err := run(t, "render", "-c", cfg, "-o", outName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "colour") {
		t.Errorf("unknown key not reported in %q", logs)
	}
}

func TestRenderErrors(t *testing.T) {
	cfg := writeConfig(t, renderConfig)
	dir := t.TempDir()

	tests := [][]string{
		{"render", "-c", filepath.Join(dir, "missing.toml"), "-o", filepath.Join(dir, "a.png")},
		{"render", "-c", cfg, "-o", filepath.Join(dir, "a.gif")},
		{"render", "-c", cfg, "--scale", "-1", "-o", filepath.Join(dir, "a.png")},
		{"render", "-c", writeConfig(t, "[[item]]\nkind = \"ticket\"\nheight = -1\n"), "-o", filepath.Join(dir, "a.png")},
	}
	for _, args := range tests {
		if _, _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestRenderCancelled(t *testing.T) {
	cfg := writeConfig(t, renderConfig)
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, out := range []string{"receipt.png", "receipt.pdf", "-"} {
		if out != "-" {
			out = filepath.Join(dir, out)
		}
		stdout, _, err := runContext(t, ctx, "render", "-c", cfg, "-o", out)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: got %v, want context.Canceled", out, err)
		}
		if stdout != "" {
			t.Errorf("%s: %d bytes written to stdout", out, len(stdout))
		}
		if out != "-" {
			if _, err := os.Stat(out); err == nil {
				t.Errorf("%s: file created", out)
			}
		}
	}
}

func TestRenderEmptyPanel(t *testing.T) {
	cfg := writeConfig(t, renderConfig+"\n[[item]]\nkind = \"zigzag\"\n")
	dir := t.TempDir()
	for _, name := range []string{"receipt.png", "receipt.pdf"} {
		if _, _, err := run(t, "render", "-c", cfg, "-o", filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
