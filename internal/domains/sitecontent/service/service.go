package service

import (
	"context"

	"aurexis-backend/internal/domains/sitecontent/model"
)

// ServiceInterface is the homepage content contract used by the public
// renderer and the admin console. Updates replace the whole record.
type ServiceInterface interface {
	GetSettings(ctx context.Context) (*model.HomepageSettings, error)
	UpdateSettings(ctx context.Context, settings *model.HomepageSettings) (*model.HomepageSettings, error)

	GetSocialLinks(ctx context.Context) (*model.SocialLinks, error)
	UpdateSocialLinks(ctx context.Context, links *model.SocialLinks) (*model.SocialLinks, error)

	GetHomepageContent(ctx context.Context) (*model.HomepageContent, error)
	UpdateHomepageContent(ctx context.Context, content *model.HomepageContent) (*model.HomepageContent, error)

	// AddProblem appends a blank problem card with a fresh id
	AddProblem(ctx context.Context) (*model.HomepageContent, error)
	// UpdateProblem replaces the card at index
	UpdateProblem(ctx context.Context, index int, problem *model.HomepageProblem) (*model.HomepageContent, error)
	// RemoveProblem splices the card at index
	RemoveProblem(ctx context.Context, index int) (*model.HomepageContent, error)
}
