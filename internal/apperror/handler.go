package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type wireError struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type wireResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
	Error     wireError `json:"error"`
}

// HTTPErrorHandler is the single terminal translator for errors escaping
// handlers and middleware. It logs the error and serializes the wire
// envelope; the serialized form never includes internals for unclassified
// errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := classify(err, c)

	c.Logger().Errorf("%s occurred: %v", appErr.Code, err)

	resp := wireResponse{
		Status:    appErr.Status,
		Message:   appErr.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Error: wireError{
			Code:    appErr.Code,
			Details: appErr.Details,
		},
	}

	if jsonErr := c.JSON(appErr.Status, resp); jsonErr != nil {
		c.Logger().Errorf("write error response: %v", jsonErr)
	}
}

func classify(err error, c echo.Context) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return NewNotFound(
				CodeRouteNotFound,
				fmt.Sprintf("The route %s does not exist.", c.Request().URL.Path),
				"Route not found.",
			)
		case http.StatusBadRequest:
			return NewBadRequest(
				CodeInvalidBody,
				fmt.Sprintf("%v", httpErr.Message),
				"Validation failed.",
			)
		}
	}

	return New(http.StatusInternalServerError, CodeUnknown, "An unknown error has occurred.", "Unknown error")
}
