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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/receipt/panel"
)

const pipeName = "-"

type renderOpts struct {
	config string
	output string
	scale  float64
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a receipt described by a TOML file",
		Long: `Draw a receipt described by a TOML file.

The output format is chosen by the file name extension: ".png" for a
raster image, ".pdf" for vector graphics.  Use "-o -" to write PNG data
to a pipe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "receipt.toml", "receipt description (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "receipt.png", "output file (.png, .pdf or - for stdout)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixels per layout unit (overrides the file)")
	return cmd
}

func runRender(cmd *cobra.Command, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, unknown, err := loadConfig(opts.config)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.config, err)
	}
	for _, key := range unknown {
		logger.Warn("ignoring unknown key", "file", opts.config, "key", key)
	}
	if opts.scale != 0 {
		cfg.Scale = opts.scale
	}
	r, err := cfg.Receipt()
	if err != nil {
		return fmt.Errorf("%s: %w", opts.config, err)
	}
	logger.Debug("loaded receipt", "items", len(r.Items), "width", r.Width, "height", r.Height())
	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(logger)
	switch ext := strings.ToLower(filepath.Ext(opts.output)); {
	case opts.output == pipeName:
		if err := writePNG(ctx, cmd.OutOrStdout(), r, cfg.Scale); err != nil {
			return err
		}
	case ext == ".pdf":
		if err := panel.WritePDF(ctx, opts.output, r); err != nil {
			return err
		}
	case ext == ".png":
		img, err := r.RenderContext(ctx, cfg.Scale)
		if err != nil {
			return err
		}
		if err := imaging.Save(img, opts.output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s: unsupported output format %q", opts.output, ext)
	}
	prog.done("wrote receipt", "file", opts.output)
	return nil
}

var errTerminal = errors.New("`-` should be used with a pipe for stdout")

// writePNG writes the rendered receipt to w.  Binary output to an
// interactive terminal is refused.
func writePNG(ctx context.Context, w io.Writer, r *panel.Receipt, scale float64) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errTerminal
	}
	img, err := r.RenderContext(ctx, scale)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}
