package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"review-platform/internal/data/repository"
	"review-platform/pkg/token"
	"review-platform/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Tests below only exercise routing and the middleware chain; every
// request is rejected before a handler would touch the database.
func newTestApp(t *testing.T) (*App, token.Manager) {
	t.Helper()

	tokens, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	config := &utils.Config{}
	config.App.StaticDir = t.TempDir()

	app := Wiring(&repository.Repository{}, tokens, config, zap.NewNop())
	return app, tokens
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func TestRouter_Health(t *testing.T) {
	app, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_PutIsNotAllowed(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []string{
		"/api/v1/titles/1",
		"/api/v1/titles/1/reviews/2",
		"/api/v1/titles/1/reviews/2/comments/3",
		"/api/v1/users",
		"/api/v1/users/nemo",
		"/api/v1/users/me",
	}

	for _, path := range paths {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest("PUT", path, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		assert.Equal(t, `Method "PUT" not allowed.`, detailOf(t, rec), path)
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	app, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found.", detailOf(t, rec))
}

func TestRouter_WritesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/titles/1/reviews"},
		{"PATCH", "/api/v1/titles/1/reviews/2"},
		{"POST", "/api/v1/titles/1/reviews/2/comments"},
		{"POST", "/api/v1/categories"},
		{"POST", "/api/v1/titles"},
		{"GET", "/api/v1/users/me"},
		{"GET", "/api/v1/users"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, "Authentication credentials were not provided.", detailOf(t, rec))
	}
}

func TestRouter_AdminRoutesRejectPlainUsers(t *testing.T) {
	app, tokens := newTestApp(t)

	userToken, err := tokens.Generate(5, "nemo", "user")
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/categories"},
		{"DELETE", "/api/v1/genres/films"},
		{"POST", "/api/v1/titles"},
		{"GET", "/api/v1/users"},
		{"DELETE", "/api/v1/users/nemo"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		req.Header.Set("Authorization", "Bearer "+userToken)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, "Admin access required.", detailOf(t, rec))
	}
}

func TestRouter_MalformedAuthHeader(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Token abcdef")

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token header. Use: Bearer <token>", detailOf(t, rec))
}

func TestRouter_ExpiredToken(t *testing.T) {
	app, _ := newTestApp(t)

	expired, err := token.NewManager("test-secret", -time.Minute)
	require.NoError(t, err)
	stale, err := expired.Generate(5, "nemo", "user")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+stale)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is invalid or expired.", detailOf(t, rec))
}
