package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ambrose/movie-catalog/internal/utils"
)

// RequireSession returns an Echo middleware that validates the session
// cookie and injects "user_id" and "full_name" into the request context.
// JSON callers without a valid session receive a 401 envelope with the
// AUTH_REQUIRED error code. The provided secret must match the one used
// when issuing session tokens.
func RequireSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := readSession(c, secret)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"status":     "error",
					"message":    "Authentication required",
					"timestamp":  time.Now().Format(time.RFC3339),
					"error_code": "AUTH_REQUIRED",
				})
			}
			c.Set("user_id", sess.UserID)
			c.Set("full_name", sess.FullName)
			return next(c)
		}
	}
}

// RequireSessionWeb is the page variant of RequireSession: instead of a
// JSON error it sets a flash message and redirects to the login page.
func RequireSessionWeb(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := readSession(c, secret)
			if !ok {
				c.SetCookie(&http.Cookie{
					Name:     utils.FlashCookie,
					Value:    url.QueryEscape("error|Please log in to continue."),
					Path:     "/",
					HttpOnly: true,
				})
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set("user_id", sess.UserID)
			c.Set("full_name", sess.FullName)
			return next(c)
		}
	}
}

// OptionalSession injects the identity when a valid session cookie is
// present and otherwise lets the request through anonymously. Pages such
// as movie details use it to decide whether to show owner controls.
func OptionalSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sess, ok := readSession(c, secret); ok {
				c.Set("user_id", sess.UserID)
				c.Set("full_name", sess.FullName)
			}
			return next(c)
		}
	}
}

func readSession(c echo.Context, secret string) (utils.Session, bool) {
	cookie, err := c.Cookie(utils.SessionCookie)
	if err != nil || cookie.Value == "" {
		return utils.Session{}, false
	}
	sess, err := utils.ParseSessionToken(secret, cookie.Value)
	if err != nil {
		return utils.Session{}, false
	}
	return sess, true
}
