package model

import (
	"time"

	"github.com/google/uuid"

	"aurexis-backend/internal/shared/utils"
)

// Category is the service vertical a project belongs to
type Category string

const (
	CategoryAIAutomation   Category = "ai-automation"
	CategoryAppDevelopment Category = "app-development"
	CategoryCloud          Category = "cloud"
	CategoryDataAnalysis   Category = "data-analysis"
	CategoryWebDevelopment Category = "web-development"
)

var Categories = []Category{
	CategoryAIAutomation,
	CategoryAppDevelopment,
	CategoryCloud,
	CategoryDataAnalysis,
	CategoryWebDevelopment,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Project is a portfolio case study
type Project struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Summary      string         `json:"summary"`
	Category     Category       `json:"category"`
	Tech         utils.LineList `json:"tech"`
	DurationDays int            `json:"durationDays"`
	Link         string         `json:"link"`
	Image        string         `json:"image"`
	Order        int            `json:"order"`
	Featured     bool           `json:"featured"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// ListFilter narrows ListProjects. Zero value lists everything.
type ListFilter struct {
	Category     Category
	FeaturedOnly bool
}
