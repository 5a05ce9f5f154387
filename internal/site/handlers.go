// Package site serves the public blog pages as server-rendered HTML.
package site

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/blogicum/blogicum/internal/blog"
	"github.com/labstack/echo/v4"
	g "github.com/maragudk/gomponents"
)

// Reader is the part of blog.Manager used by the pages.
type Reader interface {
	Index(ctx context.Context) ([]blog.Post, error)
	PostByID(ctx context.Context, postID int) (*blog.Post, error)
	CategoryPosts(ctx context.Context, slug string) (*blog.Category, []blog.Post, error)
}

type Handler struct {
	blog Reader
	log  *slog.Logger
}

func NewHandler(reader Reader, log *slog.Logger) *Handler {
	return &Handler{
		blog: reader,
		log:  log,
	}
}

// RegisterRoutes mounts the pages on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/posts/:id/", h.PostDetail)
	e.GET("/category/:slug/", h.CategoryPosts)
}

func (h *Handler) render(c echo.Context, status int, node g.Node) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return h.handleError(c, err)
	}

	return c.HTMLBlob(status, buf.Bytes())
}

func (h *Handler) handleError(c echo.Context, err error) error {
	if errors.Is(err, blog.ErrNotFound) {
		return h.notFound(c)
	}

	h.log.ErrorContext(c.Request().Context(), "handleError", "error", err, "path", c.Request().URL.Path)

	var buf bytes.Buffer
	if rerr := ErrorPage().Render(&buf); rerr != nil {
		return c.String(http.StatusInternalServerError, "internal error")
	}
	return c.HTMLBlob(http.StatusInternalServerError, buf.Bytes())
}

func (h *Handler) notFound(c echo.Context) error {
	return h.render(c, http.StatusNotFound, NotFoundPage())
}

// Index handles GET /
func (h *Handler) Index(c echo.Context) error {
	posts, err := h.blog.Index(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, IndexPage(posts))
}

// PostDetail handles GET /posts/:id/
func (h *Handler) PostDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.notFound(c)
	}

	post, err := h.blog.PostByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	page, err := PostPage(*post)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, page)
}

// CategoryPosts handles GET /category/:slug/
func (h *Handler) CategoryPosts(c echo.Context) error {
	category, posts, err := h.blog.CategoryPosts(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, CategoryPage(*category, posts))
}
