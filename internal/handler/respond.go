package handler // handler defines HTTP handlers for the JSON API and the pages

import (
	"time"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform JSON wrapper used by every API response.
type envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// respondSuccess writes a success envelope with the given HTTP status.
func respondSuccess(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{
		Status:    "success",
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	})
}

// respondError writes an error envelope carrying a stable error code.
func respondError(c echo.Context, status int, message, code string) error {
	return c.JSON(status, envelope{
		Status:    "error",
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		ErrorCode: code,
	})
}
