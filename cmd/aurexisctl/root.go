package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"aurexis-backend/pkg/logger"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "aurexisctl",
	Short: "Operations CLI for the Aurexis content backend",
	Long: `aurexisctl bootstraps a local environment file, applies database
migrations, seeds the built-in site content and hashes the admin password.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// env init creates the file, everything else reads it when present
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
		}
		logger.Init(os.Getenv("APP_ENV"))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file to load")

	rootCmd.AddCommand(newEnvCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newHashPasswordCmd())
}
