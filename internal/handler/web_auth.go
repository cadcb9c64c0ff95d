package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ambrose/movie-catalog/internal/config"
	"github.com/ambrose/movie-catalog/internal/service"
)

// WebAuthHandler serves the signup/login/logout pages. It shares the
// session helpers of AuthHandler so both surfaces issue identical
// cookies.
type WebAuthHandler struct {
	*AuthHandler
}

func NewWebAuthHandler(cfg config.Config, auth *service.AuthService) *WebAuthHandler {
	return &WebAuthHandler{AuthHandler: NewAuthHandler(cfg, auth)}
}

// SignupPage renders the registration form.
func (h *WebAuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", map[string]any{
		"Flashes": popFlash(c),
	})
}

// Signup handles the registration form post. Success redirects to the
// login page; every failure re-renders via flash + redirect so a refresh
// never resubmits.
func (h *WebAuthHandler) Signup(c echo.Context) error {
	in := service.RegisterInput{
		FullName:        c.FormValue("full_name"),
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
		Phone:           c.FormValue("phone"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Auth.Register(ctx, in); err != nil {
		setFlash(c, "error", registerFlashMessage(err))
		return c.Redirect(http.StatusSeeOther, "/signup")
	}
	setFlash(c, "success", "Account created successfully. Please log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPage renders the login form.
func (h *WebAuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signin.html", map[string]any{
		"Flashes": popFlash(c),
	})
}

// Login handles the login form post and starts a session on success.
func (h *WebAuthHandler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.Login(ctx, email, password)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			setFlash(c, "error", ve.Message)
		} else if errors.Is(err, service.ErrInvalidCredentials) {
			setFlash(c, "error", "Invalid email or password.")
		} else {
			setFlash(c, "error", "Login failed. Please try again.")
		}
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	if err := h.startSession(c, u.UserID, u.FullName); err != nil {
		setFlash(c, "error", "Login failed. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	setFlash(c, "success", "Welcome back, "+u.FullName+"!")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session and returns to the home page.
func (h *WebAuthHandler) Logout(c echo.Context) error {
	h.clearSession(c)
	setFlash(c, "success", "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

func registerFlashMessage(err error) string {
	if ve, ok := service.AsValidation(err); ok {
		return ve.Message
	}
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, service.ErrUserExists):
		return "An account with this email already exists."
	default:
		return "Registration failed. Please try again."
	}
}
