package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vespera/internal/config"
	"vespera/internal/handler"
	"vespera/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	diaryHandler *handler.DiaryHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Static pages (pre-built frontend; this service only routes to them)
	views := filepath.Join(cfg.WebDir, "views")
	e.File("/", filepath.Join(views, "home.html"))
	e.File("/login", filepath.Join(views, "login.html"))
	e.File("/registro", filepath.Join(views, "registro.html"))
	e.File("/diario", filepath.Join(views, "diario.html"))
	e.File("/artigos", filepath.Join(views, "artigos.html"))
	e.Static("/", filepath.Join(cfg.WebDir, "public"))

	// Auth flows
	e.POST("/registro", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/sair", authHandler.Logout)
	e.GET("/bemvindo", authHandler.Welcome, RequireSession(authService))

	// Contact form
	e.POST("/contato", contactHandler.Submit)

	// Diary API
	api := e.Group("/api")
	api.POST("/diario", diaryHandler.Create)
	api.GET("/diario", diaryHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
