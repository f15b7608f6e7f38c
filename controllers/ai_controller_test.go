package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DesaiVishal-16/Longevix/models"
	"github.com/DesaiVishal-16/Longevix/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAIRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	ac := NewAIController(services.NewAIService(upstreamURL, time.Second, testLogger()))

	r := gin.New()
	auth := r.Group("/ai", asUser(1, models.RoleProUser))
	auth.POST("/chat", ac.Chat)
	auth.POST("/generate-nutrients", ac.GenerateNutrients)
	return r
}

func TestChatEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"eat more fiber"}`))
	}))
	defer srv.Close()

	r := newAIRouter(t, srv.URL)

	w := doJSON(r, http.MethodPost, "/ai/chat", map[string]string{"message": "diet tips?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"eat more fiber","degraded":false}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/ai/chat", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpoint_DegradedWhenUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	w := doJSON(newAIRouter(t, srv.URL), http.MethodPost, "/ai/chat", map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, w.Code, "fallbacks are served with a 200")
	assert.Contains(t, w.Body.String(), "This is a fallback response to your question: hi")
	assert.Contains(t, w.Body.String(), `"degraded":true`)
}

func TestGenerateNutrientsEndpoint_ForwardsCallerRole(t *testing.T) {
	var sawRole string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body services.GenerateNutrientsRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		sawRole = body.Role
		assert.True(t, body.IsAuthenticated)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":{"calories":95,"fat":0,"protein":0,"carbohydrates":0,"micronutrients":{}},"items":[]}`))
	}))
	defer srv.Close()

	r := newAIRouter(t, srv.URL)
	w := doJSON(r, http.MethodPost, "/ai/generate-nutrients", map[string]interface{}{
		"food": []map[string]string{{"name": "Egg", "quantity": "2", "unit": "pcs"}},
		"time": "Breakfast",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleProUser, sawRole)
	assert.Contains(t, w.Body.String(), `"calories":95`)

	// food is mandatory
	w = doJSON(r, http.MethodPost, "/ai/generate-nutrients", map[string]interface{}{"time": "Lunch"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
