// Package seed writes the built-in catalog into an empty (or, with force,
// an existing) content store.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/defaults"
	pricingModel "aurexis-backend/internal/domains/pricing/model"
	pricingRepo "aurexis-backend/internal/domains/pricing/repository"
	serviceRepo "aurexis-backend/internal/domains/servicecontent/repository"
	siteRepo "aurexis-backend/internal/domains/sitecontent/repository"
)

type step struct {
	name string
	fn   func(ctx context.Context, force bool) (bool, error)
}

// Report counts what a run wrote and what it left alone
type Report struct {
	Written []string
	Skipped []string
}

type Seeder struct {
	site     siteRepo.RepositoryInterface
	services serviceRepo.RepositoryInterface
	pricing  pricingRepo.RepositoryInterface
	catalog  *defaults.Catalog
}

func NewSeeder(
	site siteRepo.RepositoryInterface,
	services serviceRepo.RepositoryInterface,
	pricing pricingRepo.RepositoryInterface,
	catalog *defaults.Catalog,
) *Seeder {
	return &Seeder{site: site, services: services, pricing: pricing, catalog: catalog}
}

// Run writes every catalog record. Existing records are kept unless force is set.
func (s *Seeder) Run(ctx context.Context, force bool) (*Report, error) {
	report := &Report{}

	steps := []step{
		{"homepage_settings", s.seedSettings},
		{"social_links", s.seedSocialLinks},
		{"homepage_content", s.seedHomepage},
	}
	for _, svc := range s.catalog.Services {
		svc := svc
		steps = append(steps, step{"service:" + svc.ID, func(ctx context.Context, force bool) (bool, error) {
			if !force {
				_, found, err := s.services.Load(ctx, svc.ID)
				if err != nil || found {
					return false, err
				}
			}
			copied, _ := s.catalog.Service(svc.ID)
			return true, s.services.Save(ctx, &copied)
		}})
	}

	for _, st := range steps {
		wrote, err := st.fn(ctx, force)
		if err != nil {
			return report, fmt.Errorf("seed %s: %w", st.name, err)
		}
		report.record(st.name, wrote)
	}

	if err := s.seedPricing(ctx, force, report); err != nil {
		return report, err
	}

	log.Info().
		Int("written", len(report.Written)).
		Int("skipped", len(report.Skipped)).
		Bool("force", force).
		Msg("[SEED] catalog applied")
	return report, nil
}

func (r *Report) record(name string, wrote bool) {
	if wrote {
		r.Written = append(r.Written, name)
	} else {
		r.Skipped = append(r.Skipped, name)
	}
}

func (s *Seeder) seedSettings(ctx context.Context, force bool) (bool, error) {
	if !force {
		_, found, err := s.site.LoadSettings(ctx)
		if err != nil || found {
			return false, err
		}
	}
	settings := s.catalog.HomepageSettings
	return true, s.site.SaveSettings(ctx, &settings)
}

func (s *Seeder) seedSocialLinks(ctx context.Context, force bool) (bool, error) {
	if !force {
		_, found, err := s.site.LoadSocialLinks(ctx)
		if err != nil || found {
			return false, err
		}
	}
	links := s.catalog.SocialLinks
	return true, s.site.SaveSocialLinks(ctx, &links)
}

func (s *Seeder) seedHomepage(ctx context.Context, force bool) (bool, error) {
	if !force {
		_, found, err := s.site.LoadHomepageContent(ctx)
		if err != nil || found {
			return false, err
		}
	}
	content := s.catalog.Homepage()
	return true, s.site.SaveHomepageContent(ctx, &content)
}

func (s *Seeder) seedPricing(ctx context.Context, force bool, report *Report) error {
	for i, tier := range s.catalog.PricingTiers {
		tier := tier
		tier.SortOrder = i
		name := "pricing:" + tier.ID

		_, err := s.pricing.GetByID(ctx, tier.ID)
		switch {
		case err == nil && !force:
			report.record(name, false)
			continue
		case err == nil:
			err = s.pricing.Update(ctx, &tier)
		case pricingModel.IsTierNotFound(err):
			err = s.pricing.Create(ctx, &tier)
		}
		if err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		report.record(name, true)
	}
	return nil
}
