package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/config"
	apperrors "github.com/reyesrichjames/blogappAPI/internal/errors"
	"github.com/reyesrichjames/blogappAPI/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := auth.RequireAuth(tokens)
	requireAdmin := auth.RequireAdmin()

	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/details", authHandler.Details, requireAuth)

	posts := e.Group("/posts")
	posts.POST("/addPost", postHandler.Add, requireAuth)
	posts.PATCH("/updatePost/:postId", postHandler.Update, requireAuth)
	posts.DELETE("/deletePost/:postId", postHandler.Delete, requireAuth)
	posts.GET("/getPosts", postHandler.List)
	posts.GET("/getPost/:postId", postHandler.Get)
	posts.GET("/getPopularPosts", postHandler.Popular)

	posts.POST("/addComment/:postId", commentHandler.Add, requireAuth)
	posts.GET("/getComments/:postId", commentHandler.List)
	posts.DELETE("/deleteComment/:commentId", commentHandler.Delete, requireAuth, requireAdmin)
	posts.POST("/addGuestComment/:postId", commentHandler.AddGuest)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
