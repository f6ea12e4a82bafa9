package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		price string
		want  string
	}{
		{"$1,499", "1499"},
		{"499/mo", "499"},
		{"From $2,500.50", "2500.5"},
		{"Custom", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.price, func(t *testing.T) {
			got := ParseAmount(tc.price)
			if tc.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestTierRequest_Validate(t *testing.T) {
	assert.Error(t, TierRequest{}.Validate())

	negative := -1
	assert.Error(t, TierRequest{Name: "Pro", SortOrder: &negative}.Validate())

	assert.NoError(t, TierRequest{Name: "Pro", Price: "$99"}.Validate())
}

func TestTierRequest_ToTier(t *testing.T) {
	order := 7
	tier := TierRequest{Name: " Pro ", Price: "$1,000", SortOrder: &order}.ToTier("pro", 2)
	assert.Equal(t, "Pro", tier.Name)
	assert.Equal(t, 7, tier.SortOrder)
	require.NotNil(t, tier.Amount)
	assert.Equal(t, "1000", tier.Amount.String())
	assert.NotNil(t, tier.Features)

	tier = TierRequest{Name: "Basic"}.ToTier("basic", 2)
	assert.Equal(t, 2, tier.SortOrder)
	assert.Nil(t, tier.Amount)
}
