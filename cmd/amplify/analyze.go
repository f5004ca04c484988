package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amplifyai/amplify-backend/internal/config"
)

var analyzeEmail string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Run a single visibility scan and print the report",
	Long:  `Run the full scan pipeline for one URL and print the final report as JSON. Useful for smoke testing without the HTTP server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeEmail, "email", "", "Attribute the scan to this lead email")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	analyzer, database, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	defer database.Close()

	rep := analyzer.Analyze(ctx, args[0], analyzeEmail)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
