package model

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRequest_Validate(t *testing.T) {
	valid := ProjectRequest{
		Title:        "Fleet dashboard",
		Category:     CategoryDataAnalysis,
		DurationDays: 30,
		Link:         "https://example.com/case",
	}
	require.NoError(t, valid.Validate())

	cases := map[string]struct {
		mutate func(r *ProjectRequest)
		field  string
	}{
		"missing title":     {func(r *ProjectRequest) { r.Title = "" }, "title"},
		"unknown category":  {func(r *ProjectRequest) { r.Category = "blockchain" }, "category"},
		"negative duration": {func(r *ProjectRequest) { r.DurationDays = -1 }, "durationDays"},
		"bad link":          {func(r *ProjectRequest) { r.Link = "not a url" }, "link"},
		"bad image":         {func(r *ProjectRequest) { r.Image = "also not a url" }, "image"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			err := r.Validate()
			require.Error(t, err)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestProjectRequest_EmptyOptionalURLs(t *testing.T) {
	r := ProjectRequest{Title: "x", Category: CategoryCloud}
	assert.NoError(t, r.Validate())
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid())
	}
	assert.False(t, Category("marketing").IsValid())
}
