package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/ssmixtwins/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ssmixgen",
	Short: "Synthetic SS-MIX2 HL7 message generator",
	Long:  "Turns a directory of anonymized patient-event CSVs into a synthetic SS-MIX2-compliant HL7 v2.5 message tree, fit for testing hospital data-exchange integrations without any real patient data.",
}

func init() {
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}
