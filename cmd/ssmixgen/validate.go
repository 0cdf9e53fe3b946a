package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/ssmixtwins/internal/exitcode"
	"github.com/gyeh/ssmixtwins/internal/logging"
	"github.com/gyeh/ssmixtwins/internal/validate"
)

var validateOutputDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the pre-flight validation sweep without generating any messages",
	RunE:  runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&cfg.SourceDir, "source", "", "Directory of per-patient event CSV files (required)")
	f.StringVar(&validateOutputDir, "report-dir", ".", "Directory to write validation_errors.json into if violations are found")
	f.IntVar(&cfg.EarlyExitThreshold, "early-exit-threshold", 0, "Stop validation early after this many violations (0 disables)")
	_ = validateCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.ValidateForValidateOnly(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	report, err := validate.Sweep(cfg.SourceDir, cfg.EarlyExitThreshold)
	if err != nil {
		log.Error().Err(err).Msg("validation sweep failed")
		os.Exit(exitcode.IOError)
	}

	if report.Valid() {
		fmt.Println("Validation passed: no violations found")
		return nil
	}

	path, err := validate.WriteReport(report, validateOutputDir)
	if err != nil {
		log.Error().Err(err).Msg("writing validation report failed")
		os.Exit(exitcode.IOError)
	}
	fmt.Printf("Validation failed: %d violation(s) across %d file(s), report written to %s\n",
		len(report.Violations), len(report.ByFile()), path)
	os.Exit(exitcode.ValidationError)
	return nil
}
