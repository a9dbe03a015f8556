package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"authapi/internal/apperror"
	"authapi/internal/config"
	"authapi/internal/response"
	"authapi/internal/service"
)

// AccountHandler handles registration and login.
type AccountHandler struct {
	accounts     service.AccountService
	cookieKey    string
	cookieMaxAge int // seconds
}

// NewAccountHandler creates an account handler.
func NewAccountHandler(accounts service.AccountService, cfg *config.Config) *AccountHandler {
	return &AccountHandler{
		accounts:     accounts,
		cookieKey:    cfg.JWTCookieKey,
		cookieMaxAge: cfg.JWTExpireMinutes * 60,
	}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,min=5,max=255"`
	Password string `json:"password" validate:"required,min=6,max=32"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags account
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /account/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accounts.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}

	return response.Send(c, http.StatusOK, "Registration successful!")
}

// Login godoc
// @Summary Authenticate and open a session
// @Tags account
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /account/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieKey,
		Value:    token,
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Path:     "/",
	})

	return response.SendData(c, http.StatusOK, "Authentication successful!", echo.Map{
		"token": token,
	})
}

// bindAndValidate decodes the body into req and runs struct validation,
// converting both failure modes into the INVALID_BODY application error.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperror.NewBadRequest(
			apperror.CodeInvalidBody,
			"The request body could not be parsed.",
			"Validation failed.",
		)
	}
	if err := c.Validate(req); err != nil {
		return apperror.NewBadRequest(
			apperror.CodeInvalidBody,
			err.Error(),
			"Validation failed.",
		)
	}
	return nil
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
}
