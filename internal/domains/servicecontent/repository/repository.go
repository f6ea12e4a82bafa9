package repository

import (
	"context"

	"aurexis-backend/internal/domains/servicecontent/model"
	"aurexis-backend/internal/infrastructure/docstore"
)

// RepositoryInterface persists one document per service vertical
type RepositoryInterface interface {
	// Load returns found=false when the vertical has never been saved
	Load(ctx context.Context, id string) (*model.ServiceDetailContent, bool, error)
	Save(ctx context.Context, content *model.ServiceDetailContent) error
	// Reset drops the saved record so the built-in sample applies again
	Reset(ctx context.Context, id string) error
}

type documentRepository struct {
	store docstore.Store
}

func NewDocumentRepository(store docstore.Store) RepositoryInterface {
	return &documentRepository{store: store}
}

func (r *documentRepository) Load(ctx context.Context, id string) (*model.ServiceDetailContent, bool, error) {
	var content model.ServiceDetailContent
	found, err := r.store.Get(ctx, model.DocumentKey(id), &content)
	if err != nil {
		return nil, false, model.NewLoadServiceError(id, err)
	}
	if !found {
		return nil, false, nil
	}
	content.ID = id
	content.Normalize()
	return &content, true, nil
}

func (r *documentRepository) Save(ctx context.Context, content *model.ServiceDetailContent) error {
	content.Normalize()
	if err := r.store.Put(ctx, model.DocumentKey(content.ID), content); err != nil {
		return model.NewSaveServiceError(content.ID, err)
	}
	return nil
}

func (r *documentRepository) Reset(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, model.DocumentKey(id)); err != nil {
		return model.NewSaveServiceError(id, err)
	}
	return nil
}
