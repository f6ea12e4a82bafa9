// Package defaults holds the built-in content used when nothing has been
// saved yet and by the fallback policy of the public service pages.
package defaults

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	pricingModel "aurexis-backend/internal/domains/pricing/model"
	serviceModel "aurexis-backend/internal/domains/servicecontent/model"
	siteModel "aurexis-backend/internal/domains/sitecontent/model"
)

//go:embed content.yaml
var contentYAML []byte

// Catalog is the parsed default content
type Catalog struct {
	HomepageSettings      siteModel.HomepageSettings          `yaml:"homepageSettings"`
	SocialLinks           siteModel.SocialLinks               `yaml:"socialLinks"`
	HomepageContent       siteModel.HomepageContent           `yaml:"homepageContent"`
	DefaultChallengeCards []serviceModel.ChallengeCard        `yaml:"defaultChallengeCards"`
	DefaultCTACards       []serviceModel.CTACard              `yaml:"defaultCtaCards"`
	DefaultFAQ            []serviceModel.FAQItem              `yaml:"defaultFaq"`
	Services              []serviceModel.ServiceDetailContent `yaml:"services"`
	PricingTiers          []pricingModel.PricingTier          `yaml:"pricingTiers"`
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Parse decodes a catalog document and checks the invariants the
// fallback policy depends on.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse default content: %w", err)
	}

	if len(c.DefaultCTACards) == 0 {
		return nil, fmt.Errorf("default content: defaultCtaCards is empty")
	}

	seen := make(map[string]bool, len(c.Services))
	for i := range c.Services {
		svc := &c.Services[i]
		if !serviceModel.IsKnownService(svc.ID) {
			return nil, fmt.Errorf("default content: unknown service id %q", svc.ID)
		}
		if seen[svc.ID] {
			return nil, fmt.Errorf("default content: duplicate service id %q", svc.ID)
		}
		seen[svc.ID] = true
		svc.Normalize()
	}
	for _, id := range serviceModel.ServiceIDs {
		if !seen[id] {
			return nil, fmt.Errorf("default content: missing service %q", id)
		}
	}

	c.HomepageContent.Normalize()
	for i := range c.PricingTiers {
		c.PricingTiers[i].WithAmount()
	}

	return &c, nil
}

// Load returns the embedded catalog, parsed once
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(contentYAML)
	})
	return loaded, loadErr
}

// MustLoad panics when the embedded catalog is broken
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Service returns a copy of the sample record of a vertical
func (c *Catalog) Service(id string) (serviceModel.ServiceDetailContent, bool) {
	for _, svc := range c.Services {
		if svc.ID == id {
			return cloneService(svc), true
		}
	}
	return serviceModel.ServiceDetailContent{}, false
}

// CTACards returns a fresh copy of the default CTA card set
func (c *Catalog) CTACards() []serviceModel.CTACard {
	return append([]serviceModel.CTACard(nil), c.DefaultCTACards...)
}

func (c *Catalog) ChallengeCards() []serviceModel.ChallengeCard {
	return append([]serviceModel.ChallengeCard(nil), c.DefaultChallengeCards...)
}

func (c *Catalog) FAQ() []serviceModel.FAQItem {
	return append([]serviceModel.FAQItem(nil), c.DefaultFAQ...)
}

// Homepage returns a copy of the default homepage content
func (c *Catalog) Homepage() siteModel.HomepageContent {
	h := c.HomepageContent
	h.Problems = make([]siteModel.HomepageProblem, len(c.HomepageContent.Problems))
	for i, p := range c.HomepageContent.Problems {
		p.Impacts = append(p.Impacts[:0:0], p.Impacts...)
		h.Problems[i] = p
	}
	return h
}

func cloneService(s serviceModel.ServiceDetailContent) serviceModel.ServiceDetailContent {
	out := s
	out.Features = append(s.Features[:0:0], s.Features...)
	out.Technologies = append(s.Technologies[:0:0], s.Technologies...)
	out.Benefits = append(s.Benefits[:0:0], s.Benefits...)
	out.Process = append(s.Process[:0:0], s.Process...)
	out.HeroContent.Stats = append(s.HeroContent.Stats[:0:0], s.HeroContent.Stats...)
	out.ChallengeContent.Cards = append(s.ChallengeContent.Cards[:0:0], s.ChallengeContent.Cards...)
	out.CTAContent.Cards = append(s.CTAContent.Cards[:0:0], s.CTAContent.Cards...)
	out.FAQItems = append(s.FAQItems[:0:0], s.FAQItems...)
	return out
}
