package repository

import (
	"context"

	"aurexis-backend/internal/domains/pricing/model"
)

// RepositoryInterface persists pricing tiers
type RepositoryInterface interface {
	// List returns every tier ordered by sort order, then name
	List(ctx context.Context) ([]model.PricingTier, error)

	// GetByID returns PRICING_TIER_NOT_FOUND when absent
	GetByID(ctx context.Context, id string) (*model.PricingTier, error)

	// Create returns PRICING_TIER_ALREADY_EXISTS on duplicate id
	Create(ctx context.Context, tier *model.PricingTier) error

	// Update replaces the whole tier
	Update(ctx context.Context, tier *model.PricingTier) error

	Delete(ctx context.Context, id string) error

	// NextSortOrder is max(sort_order)+1, or 0 for an empty table
	NextSortOrder(ctx context.Context) (int, error)
}
