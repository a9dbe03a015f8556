package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"authapi/internal/apperror"
	"authapi/internal/handler"
	"authapi/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	accountHandler *handler.AccountHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	apiInfoHandler *handler.APIInfoHandler,
) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = apperror.HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.POST("/ping", apiInfoHandler.Ping)
	api.POST("/version", apiInfoHandler.Version)

	account := api.Group("/account")
	account.POST("/register", accountHandler.Register)
	account.POST("/login", accountHandler.Login)

	users := api.Group("/users", authMiddleware.Authenticate)
	users.PUT("", userHandler.Update)
	users.DELETE("", userHandler.Delete)
	users.GET("/logout", userHandler.Logout)

	admin := api.Group("/admin", authMiddleware.Authenticate, authMiddleware.RequireAdmin)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
