package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ambrose/movie-catalog/internal/utils"
)

// Flash is a one-shot message rendered on the next page view.
type Flash struct {
	Category string // "success" | "error"
	Message  string
}

// setFlash queues a flash message in a short-lived cookie.
func setFlash(c echo.Context, category, message string) {
	c.SetCookie(&http.Cookie{
		Name:     utils.FlashCookie,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(c echo.Context) []Flash {
	cookie, err := c.Cookie(utils.FlashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	// Clear regardless of whether the value parses.
	c.SetCookie(&http.Cookie{
		Name:     utils.FlashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	category, message, found := strings.Cut(raw, "|")
	if !found {
		return nil
	}
	return []Flash{{Category: category, Message: message}}
}
