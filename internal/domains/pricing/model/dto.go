package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"aurexis-backend/internal/shared/utils"
)

// TierRequest is the create/update payload. Updates replace the whole tier.
type TierRequest struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Price       string         `json:"price"`
	Note        string         `json:"note"`
	Features    utils.LineList `json:"features"`
	Recommended bool           `json:"recommended"`
	SortOrder   *int           `json:"sortOrder"`
}

func (r TierRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Price, validation.Length(0, 50)),
		validation.Field(&r.SortOrder, validation.Min(0)),
	)
}

// ToTier builds the entity. sortOrder keeps the fallback when not supplied.
func (r TierRequest) ToTier(id string, fallbackOrder int) *PricingTier {
	order := fallbackOrder
	if r.SortOrder != nil {
		order = *r.SortOrder
	}

	tier := &PricingTier{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Price:       strings.TrimSpace(r.Price),
		Note:        r.Note,
		Features:    r.Features,
		Recommended: r.Recommended,
		SortOrder:   order,
	}
	return tier.WithAmount()
}
