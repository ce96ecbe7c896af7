package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songzhibin97/coinlens/internal/models"
)

type stubService struct {
	summaries []models.TokenSummary
	insight   *models.TokenInsight
}

func (s *stubService) ListTokens(ctx context.Context) []models.TokenSummary {
	return s.summaries
}

func (s *stubService) GetToken(ctx context.Context, id string) *models.TokenInsight {
	return s.insight
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouter_ListTokens(t *testing.T) {
	router := NewRouter(&stubService{
		summaries: []models.TokenSummary{{ID: "bitcoin", Symbol: "BTC"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tokens", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "bitcoin", got[0]["id"])
	assert.Equal(t, "BTC", got[0]["symbol"])
}

func TestRouter_ListTokens_EmptyIsArray(t *testing.T) {
	router := NewRouter(&stubService{summaries: []models.TokenSummary{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tokens", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestRouter_GetToken(t *testing.T) {
	router := NewRouter(&stubService{
		insight: &models.TokenInsight{
			TokenDetail: models.TokenDetail{ID: "bitcoin", Symbol: "BTC", PriceHistory: []float64{}},
			AIInsight:   "Hold.",
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tokens/bitcoin", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "bitcoin", got["id"])
	assert.Equal(t, "Hold.", got["ai_insight"])
	assert.Contains(t, got, "price_history")
}

func TestRouter_GetToken_UnknownRendersNull(t *testing.T) {
	router := NewRouter(&stubService{insight: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tokens/doesnotexist", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
