package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/blogicum/blogicum/internal/blog"
	"github.com/labstack/echo/v4"
)

// Reader is the part of blog.Manager exposed by the public API.
type Reader interface {
	Index(ctx context.Context) ([]blog.Post, error)
	PostByID(ctx context.Context, postID int) (*blog.Post, error)
	CategoryPosts(ctx context.Context, slug string) (*blog.Category, []blog.Post, error)
}

// AdminReader is the part of blog.Admin exposed by the admin API.
type AdminReader interface {
	Posts(ctx context.Context, f blog.PostFilter) ([]blog.Post, error)
}

type BlogHandler struct {
	blog  Reader
	admin AdminReader
	log   *slog.Logger
}

func NewBlogHandler(reader Reader, admin AdminReader, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		blog:  reader,
		admin: admin,
		log:   log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// readError maps a blog error to a response.
func (h *BlogHandler) readError(c echo.Context, err error) error {
	if errors.Is(err, blog.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

// Posts handles GET /api/v1/posts
// Returns up to blog.PostsOnIndexPage visible posts, newest first.
func (h *BlogHandler) Posts(c echo.Context) error {
	posts, err := h.blog.Index(c.Request().Context())
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, NewPosts(posts))
}

// PostByID handles GET /api/v1/posts/:id
func (h *BlogHandler) PostByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.readError(c, blog.ErrNotFound)
	}

	post, err := h.blog.PostByID(c.Request().Context(), id)
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CategoryPosts handles GET /api/v1/categories/:slug/posts
func (h *BlogHandler) CategoryPosts(c echo.Context) error {
	category, posts, err := h.blog.CategoryPosts(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, CategoryPosts{
		Category: NewCategory(*category),
		Posts:    NewPosts(posts),
	})
}

// AdminPosts handles GET /api/v1/admin/posts
// Lists every post regardless of visibility, filtered by the query string.
func (h *BlogHandler) AdminPosts(c echo.Context) error {
	var req AdminPostsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	posts, err := h.admin.Posts(c.Request().Context(), req.ToModel())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewAdminPosts(posts))
}
