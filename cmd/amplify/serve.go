package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/amplifyai/amplify-backend/internal/config"
	"github.com/amplifyai/amplify-backend/internal/db"
	"github.com/amplifyai/amplify-backend/internal/fetch"
	"github.com/amplifyai/amplify-backend/internal/judgment"
	"github.com/amplifyai/amplify-backend/internal/persona"
	"github.com/amplifyai/amplify-backend/internal/pipeline"
	"github.com/amplifyai/amplify-backend/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scan API server",
	Long:  `Start the HTTP server that exposes the visibility scan endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()

	analyzer, database, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(cfg, analyzer, database)
	return srv.Start()
}

// buildAnalyzer assembles the scan pipeline from configuration. The
// returned cleanup closes provider clients; the database is closed by
// the server on shutdown.
func buildAnalyzer(ctx context.Context, cfg *config.Config) (*pipeline.Analyzer, *db.DB, func(), error) {
	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(providers) == 0 {
		log.Println("[AMPLIFY] no LLM providers configured, judgments fall back to defaults")
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			closeProviders(providers)
			return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	} else {
		log.Println("[AMPLIFY] no database configured, scans will not be persisted or cached")
	}

	scraperOpts := fetch.DefaultOptions()
	scraperOpts.Verbose = cfg.Verbose

	analyzer := pipeline.NewAnalyzer(pipeline.Options{
		Scraper: fetch.New(scraperOpts),
		Judge:   judgment.NewJudge(providers, judgment.DefaultCallTimeout, cfg.Verbose),
		Copier:  persona.NewGenerator(providers, judgment.DefaultCallTimeout, cfg.Verbose),
		Cache:   persona.NewCache(persona.DefaultCacheTTL, persona.DefaultCacheCap),
		DB:      database,
		Verbose: cfg.Verbose,
	})

	return analyzer, database, func() { closeProviders(providers) }, nil
}

// buildProviders creates the judgment provider chain in fallback order:
// Groq first, Gemini second.
func buildProviders(ctx context.Context, cfg *config.Config) ([]judgment.Provider, error) {
	var providers []judgment.Provider

	if cfg.GroqAPIKey != "" {
		groq, err := judgment.NewGroqClient(cfg.GroqAPIKey, judgment.DefaultGroqModel, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		providers = append(providers, groq)
	}

	if cfg.GoogleAPIKey != "" {
		gemini, err := judgment.NewGeminiClient(ctx, cfg.GoogleAPIKey, judgment.DefaultGeminiModel)
		if err != nil {
			closeProviders(providers)
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		providers = append(providers, gemini)
	}

	return providers, nil
}

func closeProviders(providers []judgment.Provider) {
	for _, p := range providers {
		if err := p.Close(); err != nil {
			log.Printf("[AMPLIFY] failed to close %s client: %v", p.Name(), err)
		}
	}
}
