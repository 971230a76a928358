package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/resumetailor/internal/config"
	"github.com/dgallion1/resumetailor/internal/parser"
	"github.com/spf13/cobra"
)

const app = "resumectl"

var (
	jsonLogs bool
	debug    bool

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "resumectl renders plain-text resumes to DOCX, PDF or TXT",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")

	rootCmd.AddCommand(renderCmd, classifyCmd, tailorCmd)
}

func newLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	if jsonLogs {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// readResume extracts text from any supported input file. "-" reads plain
// text from stdin.
func readResume(path string) (string, error) {
	if path == "-" {
		ext := &parser.TextExtractor{}
		res, err := ext.Extract(os.Stdin, "stdin.txt")
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return res.Text, nil
	}

	ext, err := parser.ForFile(path, parser.Options{
		FallbackPdftotext: config.Load().PDFFallbackPdftotext,
	})
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	res, err := ext.Extract(f, filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return res.Text, nil
}
