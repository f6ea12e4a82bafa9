package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"aurexis-backend/internal/shared/utils"
)

// ProjectRequest is the add/update payload
type ProjectRequest struct {
	Title        string         `json:"title"`
	Summary      string         `json:"summary"`
	Category     Category       `json:"category"`
	Tech         utils.LineList `json:"tech"`
	DurationDays int            `json:"durationDays"`
	Link         string         `json:"link"`
	Image        string         `json:"image"`
	Featured     bool           `json:"featured"`
	// Order is ignored on add
	Order *int `json:"order"`
}

func (r ProjectRequest) Validate() error {
	categories := make([]interface{}, len(Categories))
	for i, c := range Categories {
		categories[i] = c
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Category, validation.Required, validation.In(categories...)),
		validation.Field(&r.DurationDays, validation.Min(0)),
		validation.Field(&r.Link, is.URL),
		validation.Field(&r.Image, is.URL),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

// Apply copies the editable fields onto p
func (r ProjectRequest) Apply(p *Project) {
	p.Title = strings.TrimSpace(r.Title)
	p.Summary = r.Summary
	p.Category = r.Category
	p.Tech = r.Tech
	if p.Tech == nil {
		p.Tech = utils.LineList{}
	}
	p.DurationDays = r.DurationDays
	p.Link = strings.TrimSpace(r.Link)
	p.Image = strings.TrimSpace(r.Image)
	p.Featured = r.Featured
}
