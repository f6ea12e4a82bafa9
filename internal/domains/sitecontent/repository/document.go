package repository

import (
	"context"

	"aurexis-backend/internal/domains/sitecontent/model"
	"aurexis-backend/internal/infrastructure/docstore"
)

// documentRepository stores each singleton as one site_documents row
type documentRepository struct {
	store docstore.Store
}

func NewDocumentRepository(store docstore.Store) RepositoryInterface {
	return &documentRepository{store: store}
}

func (r *documentRepository) LoadSettings(ctx context.Context) (*model.HomepageSettings, bool, error) {
	var settings model.HomepageSettings
	found, err := r.store.Get(ctx, model.KeyHomepageSettings, &settings)
	if err != nil {
		return nil, false, model.NewLoadContentError(model.KeyHomepageSettings, err)
	}
	return &settings, found, nil
}

func (r *documentRepository) SaveSettings(ctx context.Context, settings *model.HomepageSettings) error {
	if err := r.store.Put(ctx, model.KeyHomepageSettings, settings); err != nil {
		return model.NewSaveContentError(model.KeyHomepageSettings, err)
	}
	return nil
}

func (r *documentRepository) LoadSocialLinks(ctx context.Context) (*model.SocialLinks, bool, error) {
	var links model.SocialLinks
	found, err := r.store.Get(ctx, model.KeySocialLinks, &links)
	if err != nil {
		return nil, false, model.NewLoadContentError(model.KeySocialLinks, err)
	}
	return &links, found, nil
}

func (r *documentRepository) SaveSocialLinks(ctx context.Context, links *model.SocialLinks) error {
	if err := r.store.Put(ctx, model.KeySocialLinks, links); err != nil {
		return model.NewSaveContentError(model.KeySocialLinks, err)
	}
	return nil
}

func (r *documentRepository) LoadHomepageContent(ctx context.Context) (*model.HomepageContent, bool, error) {
	var content model.HomepageContent
	found, err := r.store.Get(ctx, model.KeyHomepageContent, &content)
	if err != nil {
		return nil, false, model.NewLoadContentError(model.KeyHomepageContent, err)
	}
	content.Normalize()
	return &content, found, nil
}

func (r *documentRepository) SaveHomepageContent(ctx context.Context, content *model.HomepageContent) error {
	content.Normalize()
	if err := r.store.Put(ctx, model.KeyHomepageContent, content); err != nil {
		return model.NewSaveContentError(model.KeyHomepageContent, err)
	}
	return nil
}
