package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/dgallion1/resumetailor/internal/config"
	"github.com/dgallion1/resumetailor/internal/tailor"
	"github.com/spf13/cobra"
)

var (
	tailorJob string

	tailorCmd = &cobra.Command{
		Use:   "tailor [resume]",
		Short: "Rewrite a resume for a job description using the configured model",
		Long: "Rewrite a resume for a job description using the model selected by TAILOR_PROVIDER.\n" +
			"Without a resume argument a draft is generated from the job description alone.",
		Args: cobra.MaximumNArgs(1),
		RunE: runTailor,
	}
)

func init() {
	tailorCmd.Flags().StringVar(&tailorJob, "job", "", "file containing the job description (required)")
	tailorCmd.MarkFlagRequired("job")
}

func runTailor(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	jd, err := os.ReadFile(tailorJob)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	var resume string
	if len(args) == 1 {
		if resume, err = readResume(args[0]); err != nil {
			return err
		}
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	backend, err := tailor.NewBackend(ctx, cfg)
	if err != nil {
		return err
	}
	svc := tailor.NewService(backend, nil, tailor.Options{
		Timeout:         cfg.TailorTimeout,
		MaxRetries:      cfg.TailorMaxRetries,
		MaxPromptTokens: cfg.MaxPromptTokens,
	}, log)
	defer svc.Close()

	out, err := svc.Tailor(ctx, resume, string(jd))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return err
}
