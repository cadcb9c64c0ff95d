package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports that the API is up. Load balancers and monitoring
// systems poll it.
func Health(c echo.Context) error {
	return respondSuccess(c, http.StatusOK, "API is healthy", map[string]any{
		"version":   "1.0",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
