package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serviceModel "aurexis-backend/internal/domains/servicecontent/model"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.DefaultCTACards, 3)
	assert.NotEmpty(t, c.DefaultChallengeCards)
	assert.NotEmpty(t, c.DefaultFAQ)
	assert.NotEmpty(t, c.HomepageSettings.HeroTitle)

	for _, id := range serviceModel.ServiceIDs {
		svc, ok := c.Service(id)
		require.True(t, ok, id)
		assert.Equal(t, id, svc.ID)
		assert.NotEmpty(t, svc.HeroContent.Title, id)
	}
}

func TestLoad_PricingAmounts(t *testing.T) {
	c := MustLoad()
	require.Len(t, c.PricingTiers, 3)

	byID := map[string]string{}
	for _, tier := range c.PricingTiers {
		if tier.Amount != nil {
			byID[tier.ID] = tier.Amount.String()
		} else {
			byID[tier.ID] = ""
		}
	}
	assert.Equal(t, "499", byID["starter"])
	assert.Equal(t, "1499", byID["growth"])
	assert.Equal(t, "", byID["enterprise"])
}

func TestCatalog_CopiesAreIndependent(t *testing.T) {
	c := MustLoad()

	cards := c.CTACards()
	cards[0].Title = "changed"
	assert.NotEqual(t, "changed", c.DefaultCTACards[0].Title)

	svc, _ := c.Service(serviceModel.ServiceCloud)
	svc.Features[0] = "changed"
	again, _ := c.Service(serviceModel.ServiceCloud)
	assert.NotEqual(t, "changed", again.Features[0])

	home := c.Homepage()
	home.Problems[0].Title = "changed"
	assert.NotEqual(t, "changed", c.HomepageContent.Problems[0].Title)
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse([]byte("defaultCtaCards: []\n"))
	assert.Error(t, err)

	_, err = Parse([]byte(`
defaultCtaCards:
  - title: a
services:
  - id: unknown
`))
	assert.ErrorContains(t, err, "unknown service id")

	_, err = Parse([]byte("services: [unterminated"))
	assert.Error(t, err)
}
