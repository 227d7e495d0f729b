package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/service"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request. All field rules
// live in the service so their exact messages are preserved.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Email, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrShortPassword):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Registered Successfully"})
}

// Login godoc
// @Summary Authenticate and receive an access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case errors.Is(err, service.ErrEmailNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		case errors.Is(err, service.ErrIncorrectCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"access": token})
}

// Details godoc
// @Summary Retrieve the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/details [get]
func (h *AuthHandler) Details(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"auth": "Failed"})
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// a valid token whose subject no longer resolves answers 200
			// with this message, not 404; preserved quirk
			return c.JSON(http.StatusOK, echo.Map{"message": "invalid signature"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
