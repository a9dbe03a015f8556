package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"authapi/internal/apperror"
	"authapi/internal/model"
	"authapi/internal/response"
	"authapi/internal/service"
)

// AdminHandler handles administrative user CRUD.
type AdminHandler struct {
	admin service.AdminService
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// AdminUserUpdateRequest is the admin update payload. The admin flag uses
// the camelCase key the API has always accepted.
type AdminUserUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,min=5,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=32"`
	IsAdmin  *bool   `json:"isAdmin"`
}

// adminUserView is the projection returned by admin reads.
type adminUserView struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func toAdminUserView(user *model.User) adminUserView {
	return adminUserView{ID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]adminUserView, 0, len(users))
	for i := range users {
		views = append(views, toAdminUserView(&users[i]))
	}

	return response.SendData(c, http.StatusOK, "Users successfully fetched.", echo.Map{
		"users": views,
	})
}

// GetUser godoc
// @Summary Get one user by id
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.admin.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.SendData(c, http.StatusOK, "User successfully fetched.", echo.Map{
		"user": toAdminUserView(user),
	})
}

// UpdateUser godoc
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body AdminUserUpdateRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var req AdminUserUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Email == nil && req.Password == nil && req.IsAdmin == nil {
		return apperror.NewBadRequest(
			apperror.CodeInvalidBody,
			"Validation failed: at least one of the following must be provided: email,password,isAdmin",
			"Validation failed.",
		)
	}

	if err := h.admin.UpdateUser(c.Request().Context(), id, req.Email, req.Password, req.IsAdmin); err != nil {
		return err
	}

	return response.Send(c, http.StatusOK, "User successfully updated.")
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	if err := h.admin.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Send(c, http.StatusOK, "User successfully deleted.")
}

func userIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, apperror.NewBadRequest(
			apperror.CodeInvalidBody,
			"The id parameter must be an integer.",
			"Validation failed.",
		)
	}
	return uint(id), nil
}
