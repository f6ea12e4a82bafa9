package service

import (
	"context"

	"aurexis-backend/internal/domains/servicecontent/model"
)

type ServiceInterface interface {
	// ListServices returns the five verticals in fixed order
	ListServices(ctx context.Context) ([]model.ServiceItem, error)

	// GetServiceContent returns the stored record or the built-in sample
	GetServiceContent(ctx context.Context, id string) (*model.ServiceDetailContent, error)

	// UpdateServiceContent saves the whole record atomically
	UpdateServiceContent(ctx context.Context, id string, content *model.ServiceDetailContent) (*model.ServiceDetailContent, error)

	// ResetServiceContent discards the saved record
	ResetServiceContent(ctx context.Context, id string) (*model.ServiceDetailContent, error)

	// GetPublicService is GetServiceContent with empty sections replaced by defaults
	GetPublicService(ctx context.Context, id string) (*model.ServiceDetailContent, error)
}
