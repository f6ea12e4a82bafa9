package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurexis-backend/internal/defaults"
	"aurexis-backend/internal/domains/sitecontent/model"
	"aurexis-backend/internal/domains/sitecontent/repository"
	"aurexis-backend/internal/domains/sitecontent/service"
)

// MockStore is a map-backed docstore.Store
type MockStore struct {
	Data map[string][]byte
}

func (m *MockStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.Data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *MockStore) Put(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.Data[key] = raw
	return nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	delete(m.Data, key)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter() (*gin.Engine, *MockStore) {
	gin.SetMode(gin.TestMode)
	store := &MockStore{Data: map[string][]byte{}}
	repo := repository.NewDocumentRepository(store)
	h := NewSiteContentHandler(service.NewSiteContentService(repo, defaults.MustLoad()))

	r := gin.New()
	r.GET("/settings", h.GetSettings)
	r.PUT("/settings", h.UpdateSettings)
	r.GET("/social-links", h.GetSocialLinks)
	r.PUT("/social-links", h.UpdateSocialLinks)
	r.GET("/homepage", h.GetHomepageContent)
	r.PUT("/homepage", h.UpdateHomepageContent)
	r.POST("/homepage/problems", h.AddProblem)
	r.PUT("/homepage/problems/:index", h.UpdateProblem)
	r.DELETE("/homepage/problems/:index", h.RemoveProblem)
	return r, store
}

func do(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestSiteContentHandler_Settings(t *testing.T) {
	r, _ := setupRouter()

	t.Run("defaults before first save", func(t *testing.T) {
		w, env := do(r, http.MethodGet, "/settings", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got model.HomepageSettings
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, defaults.MustLoad().HomepageSettings.HeroTitle, got.HeroTitle)
	})

	t.Run("save then read", func(t *testing.T) {
		w, _ := do(r, http.MethodPut, "/settings", model.HomepageSettings{HeroTitle: "Saved", LogoURL: "https://cdn/logo.png"})
		assert.Equal(t, http.StatusOK, w.Code)

		_, env := do(r, http.MethodGet, "/settings", nil)
		var got model.HomepageSettings
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Saved", got.HeroTitle)
		assert.Equal(t, "https://cdn/logo.png", got.LogoURL)
	})

	t.Run("malformed body", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPut, "/settings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSiteContentHandler_SocialLinks(t *testing.T) {
	r, store := setupRouter()

	w, _ := do(r, http.MethodPut, "/social-links", model.SocialLinks{LinkedIn: "https://linkedin.com/x"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, store.Data, model.KeySocialLinks)

	_, env := do(r, http.MethodGet, "/social-links", nil)
	var got model.SocialLinks
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "https://linkedin.com/x", got.LinkedIn)
}

func TestSiteContentHandler_ProblemEmptyTitleRoundTrip(t *testing.T) {
	r, _ := setupRouter()

	seed := model.HomepageContent{
		ProblemTitle: "Problems",
		Problems:     []model.HomepageProblem{{ID: "p1", Title: "Original", Impacts: []string{"x"}}},
	}
	w, _ := do(r, http.MethodPut, "/homepage", seed)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(r, http.MethodPut, "/homepage/problems/0", map[string]interface{}{
		"title":   "",
		"impacts": "first\n\n second ",
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, env := do(r, http.MethodGet, "/homepage", nil)
	var got model.HomepageContent
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Problems, 1)
	assert.Equal(t, "", got.Problems[0].Title)
	assert.Equal(t, "p1", got.Problems[0].ID)
	assert.Equal(t, []string{"first", "second"}, []string(got.Problems[0].Impacts))
}

func TestSiteContentHandler_ProblemIndexErrors(t *testing.T) {
	r, _ := setupRouter()

	w, env := do(r, http.MethodDelete, "/homepage/problems/99", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.CodeInvalidProblemIndex, env.Error.Code)

	w, _ = do(r, http.MethodPut, "/homepage/problems/abc", model.HomepageProblem{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSiteContentHandler_AddAndRemoveProblem(t *testing.T) {
	r, _ := setupRouter()
	w, _ := do(r, http.MethodPut, "/homepage", model.HomepageContent{})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := do(r, http.MethodPost, "/homepage/problems", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	var got model.HomepageContent
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Problems, 1)
	assert.NotEmpty(t, got.Problems[0].ID)

	w, env = do(r, http.MethodDelete, "/homepage/problems/0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got.Problems, 0)
}
