package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aurexis-backend/internal/domains/portfolio/model"
	"aurexis-backend/internal/domains/portfolio/repository"
)

type portfolioService struct {
	repo  repository.RepositoryInterface
	newID func() uuid.UUID
}

func NewPortfolioService(repo repository.RepositoryInterface) ServiceInterface {
	return &portfolioService{repo: repo, newID: uuid.New}
}

func (s *portfolioService) ListProjects(ctx context.Context, filter model.ListFilter) ([]model.Project, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, model.NewInvalidCategory(string(filter.Category))
	}
	return s.repo.List(ctx, filter)
}

func (s *portfolioService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *portfolioService) AddProject(ctx context.Context, req *model.ProjectRequest) (*model.Project, error) {
	// Step 1: validate
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidProject(err)
	}

	// Step 2: build entity; a requested order is ignored on add
	project := &model.Project{ID: s.newID()}
	req.Apply(project)

	// Step 3: order = number of projects before this one
	err := s.repo.Append(ctx, func(tx repository.AppendTx) error {
		count, err := tx.Count(ctx)
		if err != nil {
			return err
		}
		project.Order = count
		return tx.Insert(ctx, project)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("project_id", project.ID.String()).
		Int("order", project.Order).
		Msg("[PORTFOLIO] project added")
	return project, nil
}

func (s *portfolioService) UpdateProject(ctx context.Context, id uuid.UUID, req *model.ProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidProject(err)
	}

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(project)
	if req.Order != nil {
		project.Order = *req.Order
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	log.Info().Str("project_id", id.String()).Msg("[PORTFOLIO] project updated")
	return project, nil
}

func (s *portfolioService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("project_id", id.String()).Msg("[PORTFOLIO] project deleted")
	return nil
}
