package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// RequireJSON rejects mutating requests whose Content-Type is not
// application/json.
func RequireJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m := c.Request().Method
			if m == http.MethodPost || m == http.MethodPut || m == http.MethodPatch {
				ct := c.Request().Header.Get(echo.HeaderContentType)
				if !strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
					return c.JSON(http.StatusBadRequest, map[string]any{
						"status":     "error",
						"message":    "Content-Type must be application/json",
						"timestamp":  time.Now().Format(time.RFC3339),
						"error_code": "INVALID_CONTENT_TYPE",
					})
				}
			}
			return next(c)
		}
	}
}
