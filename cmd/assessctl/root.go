package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"alfredoptarigan/assessment-gateway/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "assessctl",
	Short:        "Operator tooling for the assessment gateway",
	Long:         "assessctl runs the gateway's generation and evaluation pipelines from a terminal and manages the analytics schema.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("provider", "", "Completion provider (overrides COMPLETION_PROVIDER)")
	rootCmd.PersistentFlags().String("evaluator-url", "", "Evaluator base URL (overrides EVALUATOR_BASE_URL)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()

	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Completion.Provider = p
	}
	if u, _ := cmd.Flags().GetString("evaluator-url"); u != "" {
		cfg.Evaluator.BaseURL = u
	}

	return cfg
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
