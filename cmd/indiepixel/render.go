package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gogpu/indiepixel"
	"github.com/gogpu/indiepixel/encode"
	"github.com/gogpu/indiepixel/tree"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a widget definition to a WebP, GIF or PNG file",
		Args:  cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			mustBind(a.v, "render.duration", cmd.Flags().Lookup("duration"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the image to `FILE` (.webp, .gif or .png, default FILE stem + .webp)")
	cmd.Flags().Duration("duration", 0, "frame duration for trees without a root (default from render.duration)")
	return cmd
}

func (a *app) render(cmd *cobra.Command, path, output string) error {
	n, err := tree.LoadFile(path)
	if err != nil {
		return err
	}
	w, err := n.Build(tree.NewEnv(
		tree.WithFonts(a.fonts),
		tree.WithLocation(a.loc),
		tree.WithBaseDir(filepath.Dir(path)),
	))
	if err != nil {
		return err
	}

	var opts []indiepixel.RenderOption
	delay := a.v.GetDuration("render.duration")
	if root, ok := w.(*indiepixel.Root); ok {
		delay = root.Delay()
	} else {
		opts = append(opts, indiepixel.WithRenderSize(a.v.GetInt("render.width"), a.v.GetInt("render.height")))
	}

	start := time.Now()
	frames := indiepixel.Render(w, opts...)
	log.WithField("component", "render").Debugf("Rendered %d frames in %s", len(frames), time.Since(start))

	if output == "" {
		output = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".webp"
	}

	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(output)) {
	case ".png":
		if len(frames) == 0 {
			return encode.ErrNoFrames
		}
		err = encode.PNG(&buf, frames[0])
	case ".gif":
		err = encode.GIF(&buf, frames, delay)
	case ".webp":
		err = encode.WebP(&buf, frames, delay)
	default:
		return fmt.Errorf("unsupported output format %q (use .webp, .gif or .png)", filepath.Ext(output))
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil { //nolint:gosec // output images are meant to be readable
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frame(s), %s\n", output, len(frames), delay)
	return nil
}
