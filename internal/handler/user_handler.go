package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"authapi/internal/apperror"
	"authapi/internal/middleware"
	"authapi/internal/response"
	"authapi/internal/service"
)

// UserHandler handles self-service operations on the authenticated user.
type UserHandler struct {
	users     service.UserService
	accounts  service.AccountService
	cookieKey string
}

// NewUserHandler creates a user handler.
func NewUserHandler(users service.UserService, accounts service.AccountService, cookieKey string) *UserHandler {
	return &UserHandler{users: users, accounts: accounts, cookieKey: cookieKey}
}

// UserUpdateRequest is the self-service update payload.
type UserUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,min=5,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=32"`
}

// Update godoc
// @Summary Update own email or password
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserUpdateRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req UserUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Email == nil && req.Password == nil {
		return apperror.NewBadRequest(
			apperror.CodeInvalidBody,
			"Validation failed: at least one of the following must be provided: email,password",
			"Validation failed.",
		)
	}

	identity, _ := middleware.GetIdentity(c)
	if err := h.users.Update(c.Request().Context(), identity.UserID, req.Email, req.Password); err != nil {
		return err
	}

	return response.Send(c, http.StatusOK, "Your user has been successfully updated!")
}

// Delete godoc
// @Summary Delete own account
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	identity, _ := middleware.GetIdentity(c)
	if err := h.users.Delete(c.Request().Context(), identity.UserID); err != nil {
		return err
	}

	clearSessionCookie(c, h.cookieKey)

	return response.Send(c, http.StatusOK, "Your user has been successfully deleted.")
}

// Logout godoc
// @Summary Close the current session
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /users/logout [get]
func (h *UserHandler) Logout(c echo.Context) error {
	identity, _ := middleware.GetIdentity(c)
	if err := h.accounts.Logout(c.Request().Context(), identity.RawToken); err != nil {
		return err
	}

	clearSessionCookie(c, h.cookieKey)

	return response.Send(c, http.StatusOK, "You have logged off.")
}
