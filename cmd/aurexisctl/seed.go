package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aurexis-backend/internal/config"
	"aurexis-backend/internal/defaults"
	pricingRepo "aurexis-backend/internal/domains/pricing/repository"
	serviceRepo "aurexis-backend/internal/domains/servicecontent/repository"
	siteRepo "aurexis-backend/internal/domains/sitecontent/repository"
	"aurexis-backend/internal/infrastructure/docstore"
	"aurexis-backend/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in site content into the database",
		Long: `seed stores the default homepage, social links, service pages and
pricing tiers. Records that already exist are left alone unless --force is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			catalog, err := defaults.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			db, _, err := connectDatabase(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			c, closeCache := connectCache(ctx, cfg.Redis)
			defer closeCache()

			store := docstore.NewPostgresStore(db.Pool, c, cfg.Content.CacheTTL)
			seeder := seed.NewSeeder(
				siteRepo.NewDocumentRepository(store),
				serviceRepo.NewDocumentRepository(store),
				pricingRepo.NewPostgresRepository(db.Pool, c, cfg.Content.CacheTTL),
				catalog,
			)

			report, err := seeder.Run(ctx, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range report.Written {
				fmt.Fprintf(out, "  wrote   %s\n", name)
			}
			for _, name := range report.Skipped {
				fmt.Fprintf(out, "  skipped %s (exists)\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite records that already exist")
	return cmd
}
