package model

import "aurexis-backend/internal/shared/utils"

// Service vertical ids, in listing order
const (
	ServiceAIAutomation   = "ai-automation"
	ServiceAppDevelopment = "app-development"
	ServiceCloud          = "cloud"
	ServiceDataAnalysis   = "data-analysis"
	ServiceWebDevelopment = "web-development"
)

// ServiceIDs is the fixed set of verticals the site renders
var ServiceIDs = []string{
	ServiceAIAutomation,
	ServiceAppDevelopment,
	ServiceCloud,
	ServiceDataAnalysis,
	ServiceWebDevelopment,
}

// IsKnownService reports whether id is one of ServiceIDs
func IsKnownService(id string) bool {
	for _, known := range ServiceIDs {
		if known == id {
			return true
		}
	}
	return false
}

// DocumentKey returns the site_documents key of a service record
func DocumentKey(id string) string {
	return "service:" + id
}

type ProcessStep struct {
	Step        string `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type HeroStat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type HeroContent struct {
	Badge       string     `json:"badge" yaml:"badge"`
	Title       string     `json:"title" yaml:"title"`
	Highlight   string     `json:"highlight" yaml:"highlight"`
	Subtitle    string     `json:"subtitle" yaml:"subtitle"`
	Description string     `json:"description" yaml:"description"`
	Stats       []HeroStat `json:"stats" yaml:"stats"`
}

type ChallengeCard struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

type ChallengeContent struct {
	Eyebrow  string          `json:"eyebrow" yaml:"eyebrow"`
	Title    string          `json:"title" yaml:"title"`
	Subtitle string          `json:"subtitle" yaml:"subtitle"`
	Cards    []ChallengeCard `json:"cards" yaml:"cards"`
}

type CTACard struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ButtonLabel string `json:"buttonLabel" yaml:"buttonLabel"`
	ButtonLink  string `json:"buttonLink" yaml:"buttonLink"`
}

type CTAContent struct {
	Title    string    `json:"title" yaml:"title"`
	Subtitle string    `json:"subtitle" yaml:"subtitle"`
	Cards    []CTACard `json:"cards" yaml:"cards"`
}

type FAQItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// ServiceDetailContent is the whole per-vertical page record.
// It is always saved as one document.
type ServiceDetailContent struct {
	ID               string           `json:"id" yaml:"id"`
	Title            string           `json:"title" yaml:"title"`
	Price            string           `json:"price" yaml:"price"`
	Description      string           `json:"description" yaml:"description"`
	Features         utils.LineList   `json:"features" yaml:"features"`
	Technologies     utils.LineList   `json:"technologies" yaml:"technologies"`
	Benefits         utils.LineList   `json:"benefits" yaml:"benefits"`
	Process          []ProcessStep    `json:"process" yaml:"process"`
	HeroContent      HeroContent      `json:"heroContent" yaml:"heroContent"`
	ChallengeContent ChallengeContent `json:"challengeContent" yaml:"challengeContent"`
	CTAContent       CTAContent       `json:"ctaContent" yaml:"ctaContent"`
	FAQItems         []FAQItem        `json:"faqItems" yaml:"faqItems"`
}

// ServiceItem is the listing projection of a ServiceDetailContent
type ServiceItem struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Price       string         `json:"price"`
	Description string         `json:"description"`
	Features    utils.LineList `json:"features"`
}

func (s *ServiceDetailContent) ToItem() ServiceItem {
	return ServiceItem{
		ID:          s.ID,
		Title:       s.Title,
		Price:       s.Price,
		Description: s.Description,
		Features:    s.Features,
	}
}

// Normalize replaces nil slices with empty ones
func (s *ServiceDetailContent) Normalize() {
	if s.Features == nil {
		s.Features = utils.LineList{}
	}
	if s.Technologies == nil {
		s.Technologies = utils.LineList{}
	}
	if s.Benefits == nil {
		s.Benefits = utils.LineList{}
	}
	if s.Process == nil {
		s.Process = []ProcessStep{}
	}
	if s.HeroContent.Stats == nil {
		s.HeroContent.Stats = []HeroStat{}
	}
	if s.ChallengeContent.Cards == nil {
		s.ChallengeContent.Cards = []ChallengeCard{}
	}
	if s.CTAContent.Cards == nil {
		s.CTAContent.Cards = []CTACard{}
	}
	if s.FAQItems == nil {
		s.FAQItems = []FAQItem{}
	}
}
