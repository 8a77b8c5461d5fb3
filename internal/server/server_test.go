package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"main/internal/config"
	"main/internal/database"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTAlgorithm:       "HS256",
		JWTExpirationHours: 1,
		FrontendURL:        "http://localhost:5173",
	}
	// Mock stores: reads answer from static data, writes answer 503.
	return New(cfg, database.MockUserStore{}, database.MockReviewStore{}, nil)
}

func TestRoutes(t *testing.T) {
	srv := testServer()

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"home", http.MethodGet, "/", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"reviews from mock data", http.MethodGet, "/api/reviews", http.StatusOK},
		{"stats from mock data", http.MethodGet, "/api/reviews/stats", http.StatusOK},
		{"delete needs store", http.MethodDelete, "/api/reviews/1", http.StatusServiceUnavailable},
		{"google sign-in unconfigured", http.MethodGet, "/api/auth/google", http.StatusNotImplemented},
		{"me without token", http.MethodGet, "/api/auth/me", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			srv.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	srv.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	srv.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
