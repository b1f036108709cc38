package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/blog-system/internal/api/metrics"
	"github.com/99minutos/blog-system/internal/core/domain"
	"github.com/99minutos/blog-system/internal/core/ports"
)

const (
	msgPostNotFound  = "Post not found"
	msgDeleteFailed  = "Error deleting post"
	msgUpdateFailed  = "Error updating post"
	msgFindFailed    = "Error finding post"
	postIDParam      = "postId"
	adminListingPath = "/admin"
)

// PostHandler handles the post listing and CRUD routes.
type PostHandler struct {
	service ports.PostService
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewPostHandler(service ports.PostService, m *metrics.Metrics, log zerolog.Logger) *PostHandler {
	return &PostHandler{service: service, metrics: m, log: log}
}

// Home lists every post in store order.
//
// @Summary      Home page
// @Tags         posts
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *PostHandler) Home(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context(), domain.OrderNatural)
	if err != nil {
		return err
	}

	page := newPage(c, "")
	page.Content = homeStartingContent
	page.Posts = posts
	return c.Render(http.StatusOK, "home", page)
}

// ComposeForm renders the editor for a new post.
//
// @Summary      Compose form
// @Tags         posts
// @Produce      html
// @Success      200
// @Success      302  "Redirect to /login when not signed in"
// @Router       /compose [get]
func (h *PostHandler) ComposeForm(c echo.Context) error {
	return c.Render(http.StatusOK, "compose", newPage(c, "Compose"))
}

// Compose publishes a post.
//
// @Summary      Create post
// @Tags         posts
// @Accept       x-www-form-urlencoded
// @Param        postTitle  formData  string  false  "Title"
// @Param        postBody   formData  string  false  "Body, markdown"
// @Success      302  "Redirect to /"
// @Router       /compose [post]
func (h *PostHandler) Compose(c echo.Context) error {
	var req postForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if _, err := h.service.CreatePost(c.Request().Context(), req.Title, req.Content); err != nil {
		return err
	}

	h.metrics.PostWritten(metrics.OpCreate)
	return c.Redirect(http.StatusFound, "/")
}

// Show renders a single post.
//
// @Summary      Show post
// @Tags         posts
// @Produce      html
// @Param        postId  path  string  true  "Post ID"
// @Success      200
// @Failure      404  {string}  string  "Post not found"
// @Router       /posts/{postId} [get]
func (h *PostHandler) Show(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param(postIDParam))
	if errors.Is(err, domain.ErrPostNotFound) {
		return c.String(http.StatusNotFound, msgPostNotFound)
	}
	if err != nil {
		return err
	}

	page := newPage(c, post.Title)
	page.Post = post
	return c.Render(http.StatusOK, "post", page)
}

// Admin lists every post, newest first, with moderation controls.
//
// @Summary      Admin listing
// @Tags         admin
// @Produce      html
// @Success      200
// @Success      302  "Redirect to /login unless signed in as admin"
// @Router       /admin [get]
func (h *PostHandler) Admin(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context(), domain.OrderNewestFirst)
	if err != nil {
		return err
	}

	page := newPage(c, "Admin")
	page.Posts = posts
	return c.Render(http.StatusOK, "admin", page)
}

// Delete removes a post permanently.
//
// @Summary      Delete post
// @Tags         admin
// @Param        postId  path  string  true  "Post ID"
// @Success      302  "Redirect to /admin"
// @Failure      404  {string}  string  "Post not found"
// @Failure      500  {string}  string  "Error deleting post"
// @Router       /posts/{postId}/delete [post]
func (h *PostHandler) Delete(c echo.Context) error {
	id := c.Param(postIDParam)
	err := h.service.DeletePost(c.Request().Context(), id)
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		return c.String(http.StatusNotFound, msgPostNotFound)
	case err != nil:
		h.log.Error().Err(err).Str("post_id", id).Msg("error deleting post")
		return c.String(http.StatusInternalServerError, msgDeleteFailed)
	}

	h.metrics.PostWritten(metrics.OpDelete)
	return c.Redirect(http.StatusFound, adminListingPath)
}

// EditForm renders the editor for an existing post.
//
// @Summary      Edit form
// @Tags         admin
// @Produce      html
// @Param        postId  path  string  true  "Post ID"
// @Success      200
// @Failure      404  {string}  string  "Post not found"
// @Failure      500  {string}  string  "Error finding post"
// @Router       /posts/{postId}/edit [get]
func (h *PostHandler) EditForm(c echo.Context) error {
	id := c.Param(postIDParam)
	post, err := h.service.GetPost(c.Request().Context(), id)
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		return c.String(http.StatusNotFound, msgPostNotFound)
	case err != nil:
		h.log.Error().Err(err).Str("post_id", id).Msg("error finding post")
		return c.String(http.StatusInternalServerError, msgFindFailed)
	}

	page := newPage(c, "Edit")
	page.Post = post
	return c.Render(http.StatusOK, "edit", page)
}

// Update replaces a post's title and body.
//
// @Summary      Update post
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Param        postId     path      string  true   "Post ID"
// @Param        postTitle  formData  string  false  "Title"
// @Param        postBody   formData  string  false  "Body, markdown"
// @Success      302  "Redirect to /admin"
// @Failure      404  {string}  string  "Post not found"
// @Failure      500  {string}  string  "Error updating post"
// @Router       /posts/{postId}/edit [post]
func (h *PostHandler) Update(c echo.Context) error {
	id := c.Param(postIDParam)

	var req postForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	_, err := h.service.UpdatePost(c.Request().Context(), id, req.Title, req.Content)
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		return c.String(http.StatusNotFound, msgPostNotFound)
	case err != nil:
		h.log.Error().Err(err).Str("post_id", id).Msg("error updating post")
		return c.String(http.StatusInternalServerError, msgUpdateFailed)
	}

	h.metrics.PostWritten(metrics.OpUpdate)
	return c.Redirect(http.StatusFound, adminListingPath)
}
