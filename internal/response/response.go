package response

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Envelope is the success wire format shared by every endpoint.
type Envelope struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// Send writes a success envelope without a data payload.
func Send(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{
		Status:    status,
		Message:   message,
		Timestamp: timestamp(),
	})
}

// SendData writes a success envelope carrying a data payload.
func SendData(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{
		Status:    status,
		Message:   message,
		Timestamp: timestamp(),
		Data:      data,
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
