package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/resumetailor/internal/render"
	"github.com/spf13/cobra"
)

var (
	renderFormat string
	renderOut    string

	renderCmd = &cobra.Command{
		Use:   "render <input>",
		Short: "Render a resume file to docx, pdf or txt",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
)

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "docx", "output format: docx, pdf or txt")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default: input name with the format's extension, - for stdout)")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := newLogger()

	format, err := render.ParseFormat(renderFormat)
	if err != nil {
		return err
	}

	text, err := readResume(args[0])
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		out = defaultOutput(args[0], format)
	}

	start := time.Now()
	res, err := render.Render(text, format, filepath.Base(out))
	if err != nil {
		return err
	}
	log.Debug("rendered",
		"format", res.Format,
		"blocks", res.Blocks,
		"pages", res.Pages,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if out == "-" {
		_, err = cmd.OutOrStdout().Write(res.Data)
		return err
	}
	if err := os.WriteFile(out, res.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	log.Info("wrote resume", "file", out, "format", res.Format, "bytes", len(res.Data), "pages", res.Pages)
	return nil
}

func defaultOutput(input string, format render.Format) string {
	if input == "-" {
		return "-"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	out := base + "." + string(format)
	if out == input {
		out = base + ".rendered." + string(format)
	}
	return out
}
