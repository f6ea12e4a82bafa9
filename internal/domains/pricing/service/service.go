package service

import (
	"context"

	"aurexis-backend/internal/domains/pricing/model"
)

type ServiceInterface interface {
	ListTiers(ctx context.Context) ([]model.PricingTier, error)
	GetTier(ctx context.Context, id string) (*model.PricingTier, error)
	// CreateTier slugifies the id from the name when the payload has none
	CreateTier(ctx context.Context, req *model.TierRequest) (*model.PricingTier, error)
	UpdateTier(ctx context.Context, id string, req *model.TierRequest) (*model.PricingTier, error)
	DeleteTier(ctx context.Context, id string) error
}
