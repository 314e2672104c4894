package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aemlabs/aemdash/internal/server/handlers"
	"github.com/aemlabs/aemdash/internal/server/jwt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := jwt.NewService("test-secret-key", time.Hour)
	token, err := tokens.Generate("user-123", "admin")
	require.NoError(t, err)

	var gotUserID, gotUsername any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(handlers.UserIDKey)
		gotUsername = r.Context().Value(handlers.UsernameKey)
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(testLogger(), tokens)(next)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", gotUserID)
	assert.Equal(t, "admin", gotUsername)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokens := jwt.NewService("test-secret-key", time.Hour)
	expired := jwt.NewService("test-secret-key", -time.Minute)
	expiredToken, err := expired.Generate("user-123", "admin")
	require.NoError(t, err)

	otherSecret := jwt.NewService("different-secret", time.Hour)
	foreignToken, err := otherSecret.Generate("user-123", "admin")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer"},
		{name: "garbage token", header: "Bearer garbage"},
		{name: "expired token", header: "Bearer " + expiredToken},
		{name: "wrong signature", header: "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("protected handler must not be reached")
			})

			handler := AuthMiddleware(testLogger(), tokens)(next)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_BearerCaseInsensitive(t *testing.T) {
	tokens := jwt.NewService("test-secret-key", time.Hour)
	token, err := tokens.Generate("user-123", "admin")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(testLogger(), tokens)(next)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
