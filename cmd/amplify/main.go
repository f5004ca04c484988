// Package main provides the entry point for the AmplifyAI visibility
// scan service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amplify",
	Short: "AmplifyAI visibility scan service",
	Long:  "AmplifyAI scores how visible a website is to AI answer engines, combining deterministic signal extraction with LLM judgment, and serves the result to the lead-gen dashboard.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json (values can be overridden by environment variables)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
