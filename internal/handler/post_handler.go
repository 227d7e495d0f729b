package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/service"
)

// PostHandler handles post CRUD and the popularity ranking.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest represents a post create or update payload. On update every
// field is optional; empty fields keep their stored values.
type PostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// postID resolves the :postId route param. Anything that is not a well-formed
// id cannot name an existing post, so it reads as not found.
func postID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("postId"))
}

func postNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"message": service.ErrPostNotFound.Error()})
}

// Add godoc
// @Summary Create a blog post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PostRequest true "Post payload"
// @Success 201 {object} model.Post
// @Failure 400 {object} map[string]string
// @Router /posts/addPost [post]
func (h *PostHandler) Add(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"auth": "Failed"})
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	post, err := h.postService.Create(c.Request().Context(), claims, req.Title, req.Content, req.ImageURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary List all blog posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 404 {object} map[string]string
// @Router /posts/getPosts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoPosts) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a single blog post
// @Tags posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} map[string]string
// @Router /posts/getPost/{postId} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return postNotFound(c)
	}
	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			return postNotFound(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary Update a blog post (author or admin)
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Param request body PostRequest true "Fields to merge"
// @Success 200 {object} model.Post
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/updatePost/{postId} [patch]
func (h *PostHandler) Update(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"auth": "Failed"})
	}
	id, err := postID(c)
	if err != nil {
		return postNotFound(c)
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	post, err := h.postService.Update(c.Request().Context(), claims, id, req.Title, req.Content, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			return postNotFound(c)
		case errors.Is(err, service.ErrUnauthorized):
			return c.JSON(http.StatusForbidden, echo.Map{"message": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a blog post (author or admin)
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/deletePost/{postId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"auth": "Failed"})
	}
	id, err := postID(c)
	if err != nil {
		return postNotFound(c)
	}

	if err := h.postService.Delete(c.Request().Context(), claims, id); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			return postNotFound(c)
		case errors.Is(err, service.ErrUnauthorized):
			return c.JSON(http.StatusForbidden, echo.Map{"message": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}

// Popular godoc
// @Summary Top posts ranked by comment count
// @Tags posts
// @Produce json
// @Success 200 {array} repository.PostStats
// @Router /posts/getPopularPosts [get]
func (h *PostHandler) Popular(c echo.Context) error {
	posts, err := h.postService.Popular(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}
