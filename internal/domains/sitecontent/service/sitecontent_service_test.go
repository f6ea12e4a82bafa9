package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurexis-backend/internal/defaults"
	"aurexis-backend/internal/domains/sitecontent/model"
	"aurexis-backend/internal/shared/utils"
)

type MockRepository struct {
	Settings *model.HomepageSettings
	Links    *model.SocialLinks
	Content  *model.HomepageContent
	SaveErr  error
	Saves    int
}

func (m *MockRepository) LoadSettings(ctx context.Context) (*model.HomepageSettings, bool, error) {
	if m.Settings == nil {
		return &model.HomepageSettings{}, false, nil
	}
	cp := *m.Settings
	return &cp, true, nil
}

func (m *MockRepository) SaveSettings(ctx context.Context, s *model.HomepageSettings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *s
	m.Settings = &cp
	m.Saves++
	return nil
}

func (m *MockRepository) LoadSocialLinks(ctx context.Context) (*model.SocialLinks, bool, error) {
	if m.Links == nil {
		return &model.SocialLinks{}, false, nil
	}
	cp := *m.Links
	return &cp, true, nil
}

func (m *MockRepository) SaveSocialLinks(ctx context.Context, l *model.SocialLinks) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *l
	m.Links = &cp
	m.Saves++
	return nil
}

func (m *MockRepository) LoadHomepageContent(ctx context.Context) (*model.HomepageContent, bool, error) {
	if m.Content == nil {
		return &model.HomepageContent{}, false, nil
	}
	cp := *m.Content
	cp.Problems = append([]model.HomepageProblem(nil), m.Content.Problems...)
	return &cp, true, nil
}

func (m *MockRepository) SaveHomepageContent(ctx context.Context, c *model.HomepageContent) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	cp := *c
	cp.Problems = append([]model.HomepageProblem(nil), c.Problems...)
	m.Content = &cp
	m.Saves++
	return nil
}

func newTestService(repo *MockRepository) *siteContentService {
	svc := NewSiteContentService(repo, defaults.MustLoad()).(*siteContentService)
	n := 0
	svc.newID = func() string {
		n++
		return "generated-" + string(rune('0'+n))
	}
	return svc
}

func TestGetSettings_DefaultWhenMissing(t *testing.T) {
	svc := newTestService(&MockRepository{})

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults.MustLoad().HomepageSettings, *settings)
}

func TestUpdateSettings_ThenGetReturnsNewValue(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&MockRepository{})

	_, err := svc.UpdateSettings(ctx, &model.HomepageSettings{HeroTitle: "New hero"})
	require.NoError(t, err)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New hero", got.HeroTitle)
	assert.Empty(t, got.HeroBadge)
}

func TestUpdateSocialLinks_ErrorPropagates(t *testing.T) {
	repo := &MockRepository{SaveErr: model.NewSaveContentError(model.KeySocialLinks, errors.New("db down"))}
	svc := newTestService(repo)

	_, err := svc.UpdateSocialLinks(context.Background(), &model.SocialLinks{LinkedIn: "x"})
	require.Error(t, err)
	assert.Nil(t, repo.Links)
}

func TestAddProblem_AppendsBlankCardWithFreshID(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{Content: &model.HomepageContent{
		Problems: []model.HomepageProblem{{ID: "p1", Title: "One"}},
	}}
	svc := newTestService(repo)

	content, err := svc.AddProblem(ctx)
	require.NoError(t, err)
	require.Len(t, content.Problems, 2)
	assert.Equal(t, "generated-1", content.Problems[1].ID)
	assert.Empty(t, content.Problems[1].Title)
	assert.Len(t, repo.Content.Problems, 2)
}

func TestAddProblem_StartsFromDefaults(t *testing.T) {
	svc := newTestService(&MockRepository{})
	defaultCount := len(defaults.MustLoad().HomepageContent.Problems)

	content, err := svc.AddProblem(context.Background())
	require.NoError(t, err)
	assert.Len(t, content.Problems, defaultCount+1)
}

func TestUpdateProblem_EmptyTitleRoundTrips(t *testing.T) {
	ctx := context.Background()
	repo := &MockRepository{Content: &model.HomepageContent{
		Problems: []model.HomepageProblem{{ID: "p1", Title: "One", Impacts: utils.LineList{"a"}}},
	}}
	svc := newTestService(repo)

	_, err := svc.UpdateProblem(ctx, 0, &model.HomepageProblem{Title: "", Description: "d"})
	require.NoError(t, err)

	got, err := svc.GetHomepageContent(ctx)
	require.NoError(t, err)
	require.Len(t, got.Problems, 1)
	assert.Equal(t, "", got.Problems[0].Title)
	assert.Equal(t, "p1", got.Problems[0].ID, "id kept when payload omits it")
	assert.Equal(t, "d", got.Problems[0].Description)
	assert.NotNil(t, got.Problems[0].Impacts)
}

func TestUpdateProblem_InvalidIndex(t *testing.T) {
	repo := &MockRepository{Content: &model.HomepageContent{Problems: []model.HomepageProblem{{ID: "p1"}}}}
	svc := newTestService(repo)

	for _, idx := range []int{-1, 1, 5} {
		_, err := svc.UpdateProblem(context.Background(), idx, &model.HomepageProblem{})
		var scErr *model.SiteContentError
		require.ErrorAs(t, err, &scErr)
		assert.Equal(t, model.CodeInvalidProblemIndex, scErr.Code)
	}
	assert.Equal(t, 0, repo.Saves)
}

func TestRemoveProblem_Splices(t *testing.T) {
	repo := &MockRepository{Content: &model.HomepageContent{Problems: []model.HomepageProblem{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}}}
	svc := newTestService(repo)

	content, err := svc.RemoveProblem(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, content.Problems, 2)
	assert.Equal(t, "a", content.Problems[0].ID)
	assert.Equal(t, "c", content.Problems[1].ID)

	_, err = svc.RemoveProblem(context.Background(), 2)
	assert.Error(t, err)
}
