package main

import (
	"fmt"
	"strings"

	"github.com/dgallion1/resumetailor/internal/doctree"
	"github.com/dgallion1/resumetailor/internal/render"
	"github.com/spf13/cobra"
)

var (
	classifyFormat string

	classifyCmd = &cobra.Command{
		Use:   "classify <input>",
		Short: "Print the block kind inferred for every line",
		Args:  cobra.ExactArgs(1),
		RunE:  runClassify,
	}
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyFormat, "format", "f", "docx", "classifier profile to use: docx, pdf or txt")
}

func runClassify(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(classifyFormat)
	if err != nil {
		return err
	}
	text, err := readResume(args[0])
	if err != nil {
		return err
	}

	doc := doctree.Build(text, format.Profile())
	w := cmd.OutOrStdout()
	for _, b := range doc.Blocks {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(b.Kind.String()), b.Text); err != nil {
			return err
		}
	}

	if format == render.FormatPDF {
		pages := len(render.Layout(doc, render.DefaultGeometry))
		fmt.Fprintf(cmd.ErrOrStderr(), "%d blocks, %d page(s)\n", doc.Len(), pages)
	}
	return nil
}
