package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amplifyai/amplify-backend/internal/config"
	"github.com/amplifyai/amplify-backend/internal/server"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a dashboard access token",
	Long:  `Mint a JWT for the internal dashboard routes, signed with the configured shared secret.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "ops", "Subject to embed in the token")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(cfg.JWTSecret, cfg.JWTExpirationHours).GenerateToken(tokenSubject)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
