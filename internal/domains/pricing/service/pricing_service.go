package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/defaults"
	"aurexis-backend/internal/domains/pricing/model"
	"aurexis-backend/internal/domains/pricing/repository"
	"aurexis-backend/internal/shared/utils"
)

type pricingService struct {
	repo    repository.RepositoryInterface
	catalog *defaults.Catalog
}

func NewPricingService(repo repository.RepositoryInterface, catalog *defaults.Catalog) ServiceInterface {
	return &pricingService{repo: repo, catalog: catalog}
}

// ListTiers falls back to the built-in tiers while the table is empty
func (s *pricingService) ListTiers(ctx context.Context) ([]model.PricingTier, error) {
	tiers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 && s.catalog != nil {
		return append([]model.PricingTier(nil), s.catalog.PricingTiers...), nil
	}
	return tiers, nil
}

// GetTier serves the built-in tier with the same id while the table is empty
func (s *pricingService) GetTier(ctx context.Context, id string) (*model.PricingTier, error) {
	tier, err := s.repo.GetByID(ctx, id)
	if err == nil || !model.IsTierNotFound(err) {
		return tier, err
	}

	stored, listErr := s.repo.List(ctx)
	if listErr != nil {
		return nil, listErr
	}
	if len(stored) == 0 {
		if builtin := s.catalogTier(id); builtin != nil {
			return builtin, nil
		}
	}
	return nil, err
}

func (s *pricingService) CreateTier(ctx context.Context, req *model.TierRequest) (*model.PricingTier, error) {
	// Step 1: validate
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidTier(err)
	}

	// Step 2: id from payload or name
	id := utils.GenerateSlug(req.ID)
	if id == "" {
		id = utils.GenerateSlug(req.Name)
	}
	if id == "" {
		return nil, model.NewInvalidTier(nil)
	}

	// Step 3: keep the built-in tiers listed alongside the new one
	if err := s.materializeCatalog(ctx); err != nil {
		return nil, err
	}

	// Step 4: append at the end
	next, err := s.repo.NextSortOrder(ctx)
	if err != nil {
		return nil, err
	}

	tier := req.ToTier(id, next)
	if err := s.repo.Create(ctx, tier); err != nil {
		return nil, err
	}

	log.Info().Str("tier_id", tier.ID).Msg("[PRICING] tier created")
	return tier, nil
}

func (s *pricingService) UpdateTier(ctx context.Context, id string, req *model.TierRequest) (*model.PricingTier, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidTier(err)
	}

	if err := s.materializeCatalog(ctx); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tier := req.ToTier(current.ID, current.SortOrder)
	if err := s.repo.Update(ctx, tier); err != nil {
		return nil, err
	}

	log.Info().Str("tier_id", tier.ID).Msg("[PRICING] tier updated")
	return tier, nil
}

func (s *pricingService) DeleteTier(ctx context.Context, id string) error {
	if err := s.materializeCatalog(ctx); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("tier_id", id).Msg("[PRICING] tier deleted")
	return nil
}

func (s *pricingService) catalogTier(id string) *model.PricingTier {
	if s.catalog == nil {
		return nil
	}
	for _, t := range s.catalog.PricingTiers {
		if t.ID == id {
			tier := t
			tier.Features = append(utils.LineList{}, t.Features...)
			return &tier
		}
	}
	return nil
}

// materializeCatalog stores the built-in tiers before the first write so the
// listed tiers stay addressable once the table is no longer empty
func (s *pricingService) materializeCatalog(ctx context.Context) error {
	if s.catalog == nil || len(s.catalog.PricingTiers) == 0 {
		return nil
	}

	stored, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(stored) > 0 {
		return nil
	}

	for i, t := range s.catalog.PricingTiers {
		tier := t
		tier.Features = append(utils.LineList{}, t.Features...)
		tier.SortOrder = i
		if err := s.repo.Create(ctx, &tier); err != nil && !model.IsTierAlreadyExists(err) {
			return err
		}
	}

	log.Info().Int("tiers", len(s.catalog.PricingTiers)).Msg("[PRICING] built-in tiers stored")
	return nil
}
