package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/progress-tracker/internal/core/services"
)

const (
	testSecret = "test-secret-middleware"
	testIssuer = "progress-tracker"
)

func protectedRouter(tokens TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(AuthMiddleware(tokens))
	router.GET("/protected", func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			c.String(http.StatusInternalServerError, "subject not found in context")
			return
		}
		c.String(http.StatusOK, "Hello "+subject)
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := services.NewTokenService(testSecret, testIssuer, time.Hour)
	token, err := tokens.GenerateToken("owner")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	protectedRouter(tokens).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello owner", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tokens := services.NewTokenService(testSecret, testIssuer, time.Hour)

	forged, err := services.NewTokenService("wrong-secret", testIssuer, time.Hour).GenerateToken("owner")
	require.NoError(t, err)
	expired, err := services.NewTokenService(testSecret, testIssuer, -time.Minute).GenerateToken("owner")
	require.NoError(t, err)
	otherIssuer, err := services.NewTokenService(testSecret, "someone-else", time.Hour).GenerateToken("owner")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantBody string
	}{
		{"Missing header", "", "authorization header required"},
		{"Scheme only", "Bearer", "invalid authorization header format"},
		{"Wrong scheme", "Token 12345", "invalid authorization header format"},
		{"No separator", "Bearer12345", "invalid authorization header format"},
		{"Extra fields", "Bearer a b", "invalid authorization header format"},
		{"Garbage token", "Bearer not-a-jwt", "invalid or expired token"},
		{"Forged signature", "Bearer " + forged, "invalid or expired token"},
		{"Expired", "Bearer " + expired, "invalid or expired token"},
		{"Foreign issuer", "Bearer " + otherIssuer, "invalid or expired token"},
	}

	router := protectedRouter(tokens)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
