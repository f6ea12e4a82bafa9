package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurexis-backend/internal/defaults"
	"aurexis-backend/internal/domains/servicecontent/model"
)

type MockRepository struct {
	Data map[string]*model.ServiceDetailContent
}

func (m *MockRepository) Load(ctx context.Context, id string) (*model.ServiceDetailContent, bool, error) {
	v, ok := m.Data[id]
	if !ok {
		return nil, false, nil
	}
	cp := *v
	return &cp, true, nil
}

func (m *MockRepository) Save(ctx context.Context, content *model.ServiceDetailContent) error {
	content.Normalize()
	cp := *content
	m.Data[content.ID] = &cp
	return nil
}

func (m *MockRepository) Reset(ctx context.Context, id string) error {
	delete(m.Data, id)
	return nil
}

func newService() (ServiceInterface, *MockRepository) {
	repo := &MockRepository{Data: map[string]*model.ServiceDetailContent{}}
	return NewServiceContentService(repo, defaults.MustLoad()), repo
}

func TestListServices_FixedOrder(t *testing.T) {
	svc, repo := newService()
	repo.Data[model.ServiceCloud] = &model.ServiceDetailContent{ID: model.ServiceCloud, Title: "Custom Cloud"}

	items, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, items, len(model.ServiceIDs))
	for i, id := range model.ServiceIDs {
		assert.Equal(t, id, items[i].ID)
	}
	assert.Equal(t, "Custom Cloud", items[2].Title)
}

func TestGetServiceContent_UnknownID(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetServiceContent(context.Background(), "blockchain")
	require.Error(t, err)
	assert.True(t, model.IsServiceNotFound(err))
}

func TestGetServiceContent_SampleWhenNeverSaved(t *testing.T) {
	svc, _ := newService()

	content, err := svc.GetServiceContent(context.Background(), model.ServiceAIAutomation)
	require.NoError(t, err)
	sample, _ := defaults.MustLoad().Service(model.ServiceAIAutomation)
	assert.Equal(t, sample.Title, content.Title)
}

func TestUpdateServiceContent_PathIDWins(t *testing.T) {
	svc, repo := newService()

	saved, err := svc.UpdateServiceContent(context.Background(), model.ServiceCloud, &model.ServiceDetailContent{
		ID:    "web-development",
		Title: "Cloud v2",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ServiceCloud, saved.ID)
	assert.Contains(t, repo.Data, model.ServiceCloud)
	assert.NotContains(t, repo.Data, model.ServiceWebDevelopment)
}

func TestUpdateServiceContent_UnknownID(t *testing.T) {
	svc, repo := newService()

	_, err := svc.UpdateServiceContent(context.Background(), "nope", &model.ServiceDetailContent{})
	assert.True(t, model.IsServiceNotFound(err))
	assert.Empty(t, repo.Data)
}

func TestGetPublicService_Fallbacks(t *testing.T) {
	svc, repo := newService()
	catalog := defaults.MustLoad()

	repo.Data[model.ServiceWebDevelopment] = &model.ServiceDetailContent{
		ID:    model.ServiceWebDevelopment,
		Title: "Web",
		CTAContent: model.CTAContent{
			Title: "Talk to us",
			Cards: []model.CTACard{},
		},
	}

	content, err := svc.GetPublicService(context.Background(), model.ServiceWebDevelopment)
	require.NoError(t, err)

	sample, _ := catalog.Service(model.ServiceWebDevelopment)
	assert.Equal(t, sample.HeroContent.Title, content.HeroContent.Title)
	assert.Len(t, content.CTAContent.Cards, 3)
	assert.Equal(t, "Talk to us", content.CTAContent.Title)
	assert.Equal(t, len(catalog.DefaultChallengeCards), len(content.ChallengeContent.Cards))
	assert.Equal(t, len(catalog.DefaultFAQ), len(content.FAQItems))
}

func TestGetPublicService_KeepsSavedSections(t *testing.T) {
	svc, repo := newService()

	repo.Data[model.ServiceCloud] = &model.ServiceDetailContent{
		ID:               model.ServiceCloud,
		HeroContent:      model.HeroContent{Title: "Own hero"},
		ChallengeContent: model.ChallengeContent{Cards: []model.ChallengeCard{{Title: "c"}}},
		CTAContent:       model.CTAContent{Cards: []model.CTACard{{Title: "only one"}}},
		FAQItems:         []model.FAQItem{{Question: "q", Answer: "a"}},
	}

	content, err := svc.GetPublicService(context.Background(), model.ServiceCloud)
	require.NoError(t, err)
	assert.Equal(t, "Own hero", content.HeroContent.Title)
	assert.Len(t, content.ChallengeContent.Cards, 1)
	assert.Len(t, content.CTAContent.Cards, 1)
	assert.Len(t, content.FAQItems, 1)
}

func TestResetServiceContent(t *testing.T) {
	svc, repo := newService()
	repo.Data[model.ServiceCloud] = &model.ServiceDetailContent{ID: model.ServiceCloud, Title: "Edited"}

	content, err := svc.ResetServiceContent(context.Background(), model.ServiceCloud)
	require.NoError(t, err)
	sample, _ := defaults.MustLoad().Service(model.ServiceCloud)
	assert.Equal(t, sample.Title, content.Title)
	assert.Empty(t, repo.Data)
}
