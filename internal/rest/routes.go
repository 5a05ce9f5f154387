package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	apiV1Prefix = "/api/v1"

	// AdminPrefix is the group the admin API is expected under.
	AdminPrefix = apiV1Prefix + "/admin"

	postsPath         = "/posts"
	postByIDPath      = "/posts/:id"
	categoryPostsPath = "/categories/:slug/posts"
	adminPostsPath    = "/posts"

	healthPath = "/health"
)

// RegisterRoutes mounts the public API and the health check on e.
func (h *BlogHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group(apiV1Prefix)
	api.GET(postsPath, h.Posts)
	api.GET(postByIDPath, h.PostByID)
	api.GET(categoryPostsPath, h.CategoryPosts)

	e.GET(healthPath, h.handleHealth)
}

// RegisterAdminRoutes mounts the admin API on g. Authentication is up to the caller.
func (h *BlogHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET(adminPostsPath, h.AdminPosts)
}

func (h *BlogHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
