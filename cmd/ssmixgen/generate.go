package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/ssmixtwins/internal/exitcode"
	"github.com/gyeh/ssmixtwins/internal/generate"
	"github.com/gyeh/ssmixtwins/internal/logging"
)

var (
	configFile   string
	messageTypes string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Validate a source directory and generate SS-MIX2 messages from it",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&cfg.SourceDir, "source", "", "Directory of per-patient event CSV files (required)")
	f.StringVar(&cfg.OutputDir, "output", "", "Directory to write the generated message tree into (required)")
	f.IntVar(&cfg.MaxWorkers, "workers", 4, "Maximum number of patient files processed concurrently")
	f.Int64Var(&cfg.Seed, "seed", 1, "Deterministic seed: identical source + seed always produces identical output")
	f.BoolVar(&cfg.AlreadyValidated, "already-validated", false, "Skip the pre-flight validation sweep")
	f.StringVar(&cfg.CharacterSet, "character-set", "", "Character set free-text values must be encodable in: shift_jis or ISO 2022-1994 (default shift_jis)")
	f.IntVar(&cfg.PhysicianCount, "physician-count", 0, "Size of the shared random-physician roster (default 30)")
	f.IntVar(&cfg.EarlyExitThreshold, "early-exit-threshold", 0, "Stop validation early after this many violations (0 disables)")
	f.StringVar(&messageTypes, "message-types", "", "Comma-separated subset of message types to emit (default: all)")
	f.StringVar(&configFile, "config", "", "Optional YAML config file overlaying message-types/early-exit-threshold")
	_ = generateCmd.MarkFlagRequired("source")
	_ = generateCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if messageTypes != "" {
		cfg.MessageTypes = strings.Split(messageTypes, ",")
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := generate.Run(ctx, &cfg, log)
	if err != nil {
		if pe, ok := err.(*generate.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("generation failed")
			switch pe.Phase {
			case "validate":
				os.Exit(exitcode.ValidationError)
			case "roster", "generate":
				os.Exit(exitcode.ProfileError)
			default:
				os.Exit(exitcode.IOError)
			}
		}
		log.Error().Err(err).Msg("generation failed")
		os.Exit(exitcode.IOError)
	}

	fmt.Printf("Generation complete: %d patients, %d messages written (%.1fs)\n",
		summary.PatientsProcessed, summary.MessagesWritten, summary.DurationTotal.Seconds())
	return nil
}
