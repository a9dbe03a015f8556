package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const appVersion = "1.0.0"

// APIInfoHandler serves liveness and version endpoints.
type APIInfoHandler struct{}

// NewAPIInfoHandler creates an API info handler.
func NewAPIInfoHandler() *APIInfoHandler {
	return &APIInfoHandler{}
}

// Ping godoc
// @Summary Liveness check
// @Tags info
// @Produce plain
// @Success 200 {string} string
// @Router /ping [post]
func (h *APIInfoHandler) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "Pong!")
}

// Version godoc
// @Summary API version
// @Tags info
// @Produce plain
// @Success 200 {string} string
// @Router /version [post]
func (h *APIInfoHandler) Version(c echo.Context) error {
	return c.String(http.StatusOK, "Authentication API v"+appVersion)
}
