package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/defaults"
	"aurexis-backend/internal/domains/servicecontent/model"
	"aurexis-backend/internal/domains/servicecontent/repository"
)

type serviceContentService struct {
	repo    repository.RepositoryInterface
	catalog *defaults.Catalog
}

func NewServiceContentService(repo repository.RepositoryInterface, catalog *defaults.Catalog) ServiceInterface {
	return &serviceContentService{repo: repo, catalog: catalog}
}

func (s *serviceContentService) ListServices(ctx context.Context) ([]model.ServiceItem, error) {
	items := make([]model.ServiceItem, 0, len(model.ServiceIDs))
	for _, id := range model.ServiceIDs {
		content, err := s.GetServiceContent(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, content.ToItem())
	}
	return items, nil
}

func (s *serviceContentService) GetServiceContent(ctx context.Context, id string) (*model.ServiceDetailContent, error) {
	// Step 1: only the five verticals exist
	if !model.IsKnownService(id) {
		return nil, model.NewServiceNotFound(id)
	}

	// Step 2: stored record
	content, found, err := s.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if found {
		return content, nil
	}

	// Step 3: never saved, use the sample record
	sample, ok := s.catalog.Service(id)
	if !ok {
		return nil, model.NewServiceNotFound(id)
	}
	return &sample, nil
}

func (s *serviceContentService) UpdateServiceContent(ctx context.Context, id string, content *model.ServiceDetailContent) (*model.ServiceDetailContent, error) {
	if !model.IsKnownService(id) {
		return nil, model.NewServiceNotFound(id)
	}

	// The path decides which record is written
	content.ID = id
	if err := s.repo.Save(ctx, content); err != nil {
		return nil, err
	}

	log.Info().Str("service_id", id).Msg("[SERVICECONTENT] service content saved")
	return content, nil
}

func (s *serviceContentService) ResetServiceContent(ctx context.Context, id string) (*model.ServiceDetailContent, error) {
	if !model.IsKnownService(id) {
		return nil, model.NewServiceNotFound(id)
	}
	if err := s.repo.Reset(ctx, id); err != nil {
		return nil, err
	}

	log.Info().Str("service_id", id).Msg("[SERVICECONTENT] service content reset to sample")
	return s.GetServiceContent(ctx, id)
}

func (s *serviceContentService) GetPublicService(ctx context.Context, id string) (*model.ServiceDetailContent, error) {
	content, err := s.GetServiceContent(ctx, id)
	if err != nil {
		return nil, err
	}

	s.applyFallbacks(content)
	return content, nil
}

// applyFallbacks fills empty sections from the built-in content
func (s *serviceContentService) applyFallbacks(content *model.ServiceDetailContent) {
	if content.HeroContent.Title == "" {
		if sample, ok := s.catalog.Service(content.ID); ok {
			content.HeroContent = sample.HeroContent
		}
	}
	if len(content.ChallengeContent.Cards) == 0 {
		content.ChallengeContent.Cards = s.catalog.ChallengeCards()
	}
	if len(content.CTAContent.Cards) == 0 {
		content.CTAContent.Cards = s.catalog.CTACards()
	}
	if len(content.FAQItems) == 0 {
		content.FAQItems = s.catalog.FAQ()
	}
}
