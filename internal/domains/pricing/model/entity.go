package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"aurexis-backend/internal/shared/utils"
)

// PricingTier is one card of the pricing table
type PricingTier struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Price       string           `json:"price" yaml:"price"`
	Note        string           `json:"note" yaml:"note"`
	Features    utils.LineList   `json:"features" yaml:"features"`
	Recommended bool             `json:"recommended" yaml:"recommended"`
	SortOrder   int              `json:"sortOrder" yaml:"sortOrder"`
	Amount      *decimal.Decimal `json:"amount,omitempty" yaml:"-"`
	UpdatedAt   time.Time        `json:"updatedAt,omitempty" yaml:"-"`
}

var amountPattern = regexp.MustCompile(`\d[\d,]*(\.\d+)?`)

// ParseAmount extracts the numeric part of a display price.
// "$1,499" → 1499, "499/mo" → 499, "Custom" → nil
func ParseAmount(price string) *decimal.Decimal {
	match := amountPattern.FindString(price)
	if match == "" {
		return nil
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return nil
	}
	return &d
}

// WithAmount fills the derived Amount from Price
func (t *PricingTier) WithAmount() *PricingTier {
	t.Amount = ParseAmount(t.Price)
	if t.Features == nil {
		t.Features = utils.LineList{}
	}
	return t
}
