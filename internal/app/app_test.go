package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blogicum/blogicum/config"
	"github.com/blogicum/blogicum/internal/blog"
	"github.com/blogicum/blogicum/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// stubRepository serves an empty blog, other calls panic.
type stubRepository struct {
	blog.Repository
}

func (stubRepository) PublishedPosts(context.Context, time.Time, *int, int) ([]db.Post, error) {
	return nil, nil
}

// stubAdminRepository serves an empty post list, other calls panic.
type stubAdminRepository struct {
	blog.AdminRepository
}

func (stubAdminRepository) Posts(context.Context, db.PostSearch) ([]db.Post, error) {
	return nil, nil
}

func newTestRouter(token string) http.Handler {
	var cfg config.Config
	cfg.Admin.Token = token

	logger := noOpLogger()
	return newRouter(cfg,
		blog.NewManager(stubRepository{}, logger),
		blog.NewAdmin(stubAdminRepository{}, logger),
		logger,
	)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Public(t *testing.T) {
	h := newTestRouter("")

	t.Run("health", func(t *testing.T) {
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("index page", func(t *testing.T) {
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	})

	t.Run("posts api", func(t *testing.T) {
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rpc", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, rpcPath, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"blog.index"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := serve(h, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"result"`)
	})

	t.Run("admin api is not mounted without token", func(t *testing.T) {
		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/admin/posts", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_Admin(t *testing.T) {
	h := newTestRouter("secret")

	request := func(token string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/posts", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return req
	}

	t.Run("valid token", func(t *testing.T) {
		rec := serve(h, request("secret"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("wrong token", func(t *testing.T) {
		rec := serve(h, request("guess"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := serve(h, request(""))
		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("admin rpc requires token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, adminRPCPath, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"post.list"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer guess")

		rec := serve(h, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
