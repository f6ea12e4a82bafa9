package model

import "aurexis-backend/internal/shared/utils"

// Document keys in site_documents
const (
	KeyHomepageSettings = "homepage_settings"
	KeySocialLinks      = "social_links"
	KeyHomepageContent  = "homepage_content"
)

// HomepageSettings holds hero copy, about copy and the site logo.
type HomepageSettings struct {
	HeroBadge       string `json:"heroBadge" yaml:"heroBadge"`
	HeroTitle       string `json:"heroTitle" yaml:"heroTitle"`
	HeroHighlight   string `json:"heroHighlight" yaml:"heroHighlight"`
	HeroSubtitle    string `json:"heroSubtitle" yaml:"heroSubtitle"`
	HeroDescription string `json:"heroDescription" yaml:"heroDescription"`
	AboutTitle      string `json:"aboutTitle" yaml:"aboutTitle"`
	AboutText       string `json:"aboutText" yaml:"aboutText"`
	LogoURL         string `json:"logoUrl" yaml:"logoUrl"`
}

// SocialLinks are footer/header profile URLs. Empty means hidden.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin" yaml:"linkedin"`
	Facebook  string `json:"facebook" yaml:"facebook"`
	Instagram string `json:"instagram" yaml:"instagram"`
	WhatsApp  string `json:"whatsapp" yaml:"whatsapp"`
	Twitter   string `json:"twitter" yaml:"twitter"`
	YouTube   string `json:"youtube" yaml:"youtube"`
}

// HomepageProblem is one problem-statement card
type HomepageProblem struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Impacts     utils.LineList `json:"impacts" yaml:"impacts"`
	Category    string         `json:"category" yaml:"category"`
}

// HomepageContent is the problem section plus the CTA banner.
// Problems are saved as a whole array.
type HomepageContent struct {
	ProblemEyebrow  string            `json:"problemEyebrow" yaml:"problemEyebrow"`
	ProblemTitle    string            `json:"problemTitle" yaml:"problemTitle"`
	ProblemSubtitle string            `json:"problemSubtitle" yaml:"problemSubtitle"`
	Problems        []HomepageProblem `json:"problems" yaml:"problems"`
	CTAPill         string            `json:"ctaPill" yaml:"ctaPill"`
	CTAHeadline     string            `json:"ctaHeadline" yaml:"ctaHeadline"`
	CTABody         string            `json:"ctaBody" yaml:"ctaBody"`
	CTAPrimaryLabel string            `json:"ctaPrimaryLabel" yaml:"ctaPrimaryLabel"`
	CTAPrimaryLink  string            `json:"ctaPrimaryLink" yaml:"ctaPrimaryLink"`
}

// Normalize replaces nil slices so the document always serialises arrays.
func (h *HomepageContent) Normalize() {
	if h.Problems == nil {
		h.Problems = []HomepageProblem{}
	}
	for i := range h.Problems {
		if h.Problems[i].Impacts == nil {
			h.Problems[i].Impacts = utils.LineList{}
		}
	}
}
