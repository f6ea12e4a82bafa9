package repository

import (
	"context"

	"aurexis-backend/internal/domains/sitecontent/model"
)

// RepositoryInterface persists the homepage singletons.
// Load methods return found=false when nothing has been saved yet.
type RepositoryInterface interface {
	LoadSettings(ctx context.Context) (*model.HomepageSettings, bool, error)
	SaveSettings(ctx context.Context, settings *model.HomepageSettings) error

	LoadSocialLinks(ctx context.Context) (*model.SocialLinks, bool, error)
	SaveSocialLinks(ctx context.Context, links *model.SocialLinks) error

	LoadHomepageContent(ctx context.Context) (*model.HomepageContent, bool, error)
	SaveHomepageContent(ctx context.Context, content *model.HomepageContent) error
}
