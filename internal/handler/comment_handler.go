package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest represents a comment payload. Username is only consulted
// when the request carries no authenticated identity.
type CommentRequest struct {
	Content  string `json:"content" validate:"required"`
	Username string `json:"username"`
}

// Add godoc
// @Summary Comment on a post as a logged-in user
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 201 {object} model.Comment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/addComment/{postId} [post]
func (h *CommentHandler) Add(c echo.Context) error {
	claims, _ := auth.ClaimsFromContext(c)
	id, err := postID(c)
	if err != nil {
		return postNotFound(c)
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Add(c.Request().Context(), claims, id, req.Content, req.Username)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			return postNotFound(c)
		}
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// AddGuest godoc
// @Summary Comment on a post as a guest
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body CommentRequest true "Comment payload"
// @Success 201 {object} model.Comment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/addGuestComment/{postId} [post]
func (h *CommentHandler) AddGuest(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return postNotFound(c)
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.AddGuest(c.Request().Context(), id, req.Content, req.Username)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			return postNotFound(c)
		}
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// List godoc
// @Summary List a post's comments, newest first
// @Tags comments
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {array} model.Comment
// @Failure 404 {object} map[string]string
// @Router /posts/getComments/{postId} [get]
func (h *CommentHandler) List(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return postNotFound(c)
	}
	comments, err := h.commentService.List(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete godoc
// @Summary Delete a comment (admin only)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /posts/deleteComment/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	claims, _ := auth.ClaimsFromContext(c)
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	if err := h.commentService.Delete(c.Request().Context(), claims, id); err != nil {
		if errors.Is(err, service.ErrAdminOnly) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted successfully"})
}
