package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/defaults"
	"aurexis-backend/internal/domains/sitecontent/model"
	"aurexis-backend/internal/domains/sitecontent/repository"
	"aurexis-backend/internal/shared/utils"
)

type siteContentService struct {
	repo    repository.RepositoryInterface
	catalog *defaults.Catalog
	newID   func() string
}

func NewSiteContentService(repo repository.RepositoryInterface, catalog *defaults.Catalog) ServiceInterface {
	return &siteContentService{
		repo:    repo,
		catalog: catalog,
		newID:   uuid.NewString,
	}
}

// ========== SETTINGS ==========

func (s *siteContentService) GetSettings(ctx context.Context) (*model.HomepageSettings, error) {
	settings, found, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		def := s.catalog.HomepageSettings
		return &def, nil
	}
	return settings, nil
}

func (s *siteContentService) UpdateSettings(ctx context.Context, settings *model.HomepageSettings) (*model.HomepageSettings, error) {
	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	log.Info().Msg("[SITECONTENT] homepage settings saved")
	return settings, nil
}

// ========== SOCIAL LINKS ==========

func (s *siteContentService) GetSocialLinks(ctx context.Context) (*model.SocialLinks, error) {
	links, found, err := s.repo.LoadSocialLinks(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		def := s.catalog.SocialLinks
		return &def, nil
	}
	return links, nil
}

func (s *siteContentService) UpdateSocialLinks(ctx context.Context, links *model.SocialLinks) (*model.SocialLinks, error) {
	if err := s.repo.SaveSocialLinks(ctx, links); err != nil {
		return nil, err
	}

	log.Info().Msg("[SITECONTENT] social links saved")
	return links, nil
}

// ========== HOMEPAGE CONTENT ==========

func (s *siteContentService) GetHomepageContent(ctx context.Context) (*model.HomepageContent, error) {
	content, found, err := s.repo.LoadHomepageContent(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		def := s.catalog.Homepage()
		return &def, nil
	}
	return content, nil
}

func (s *siteContentService) UpdateHomepageContent(ctx context.Context, content *model.HomepageContent) (*model.HomepageContent, error) {
	if err := s.repo.SaveHomepageContent(ctx, content); err != nil {
		return nil, err
	}

	log.Info().Int("problems", len(content.Problems)).Msg("[SITECONTENT] homepage content saved")
	return content, nil
}

// ========== PROBLEM CARDS ==========
// Each edit loads the current record, changes one index and saves the whole
// record back. Concurrent edits are last write wins.

func (s *siteContentService) AddProblem(ctx context.Context) (*model.HomepageContent, error) {
	content, err := s.GetHomepageContent(ctx)
	if err != nil {
		return nil, err
	}

	content.Problems = append(content.Problems, model.HomepageProblem{
		ID:      s.newID(),
		Impacts: utils.LineList{},
	})

	return s.UpdateHomepageContent(ctx, content)
}

func (s *siteContentService) UpdateProblem(ctx context.Context, index int, problem *model.HomepageProblem) (*model.HomepageContent, error) {
	content, err := s.GetHomepageContent(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(content.Problems) {
		return nil, model.NewInvalidProblemIndex(index, len(content.Problems))
	}

	updated := *problem
	if updated.ID == "" {
		updated.ID = content.Problems[index].ID
	}
	if updated.Impacts == nil {
		updated.Impacts = utils.LineList{}
	}
	content.Problems[index] = updated

	return s.UpdateHomepageContent(ctx, content)
}

func (s *siteContentService) RemoveProblem(ctx context.Context, index int) (*model.HomepageContent, error) {
	content, err := s.GetHomepageContent(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(content.Problems) {
		return nil, model.NewInvalidProblemIndex(index, len(content.Problems))
	}

	content.Problems = append(content.Problems[:index], content.Problems[index+1:]...)

	return s.UpdateHomepageContent(ctx, content)
}
