package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds a router with no database behind it, enough for the
// endpoints that never touch storage.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &Config{
		JWTSecret:            "test-secret",
		JWTAlgorithm:         "HS256",
		AccessTokenExpireMin: 30,
		AllowedOrigins:       "http://localhost:5173",
		CartTaxRate:          0.08,
	}
	srv := NewServer(nil, cfg)
	r := gin.New()
	srv.setupRoutes(r)
	return r
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Restaurant API")
}

func TestChatEndpoint(t *testing.T) {
	r := newTestRouter()

	body, _ := json.Marshal(map[string]any{"message": "what are your hours?"})
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/ai/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var reply struct {
		Response         string   `json:"response"`
		SuggestedActions []string `json:"suggested_actions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Contains(t, reply.Response, "open")
	assert.NotEmpty(t, reply.SuggestedActions)
}

func TestChatEndpoint_EmptyMessage(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/ai/chat", bytes.NewReader([]byte(`{"message":""}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAIHealth(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/ai/health", nil)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ai_enabled":false`)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/api/menu", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	// unknown origins get no CORS headers
	rec = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodOptions, "/api/menu", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthMiddleware_MissingAndBadTokens(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	rec = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
