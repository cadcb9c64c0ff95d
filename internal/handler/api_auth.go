package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ambrose/movie-catalog/internal/config"
	"github.com/ambrose/movie-catalog/internal/service"
	"github.com/ambrose/movie-catalog/internal/utils"
)

// AuthHandler bundles dependencies for the JSON auth endpoints.
type AuthHandler struct {
	Cfg  config.Config
	Auth *service.AuthService
}

func NewAuthHandler(cfg config.Config, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Auth: auth}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Auth.Register(ctx, req)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			return respondError(c, http.StatusBadRequest, ve.Message, ve.Code)
		}
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			return respondError(c, http.StatusBadRequest, "Passwords do not match", "PASSWORD_MISMATCH")
		case errors.Is(err, service.ErrUserExists):
			return respondError(c, http.StatusConflict, "User with this email already exists", "USER_EXISTS")
		default:
			return respondError(c, http.StatusInternalServerError, "Failed to register user", "REGISTRATION_FAILED")
		}
	}
	return respondSuccess(c, http.StatusCreated, "User registered successfully", map[string]any{
		"user_id": userID,
		"email":   req.Email,
	})
}

// Login handles POST /api/v1/auth/login: verifies credentials and sets
// the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			return respondError(c, http.StatusBadRequest, ve.Message, ve.Code)
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return respondError(c, http.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
		}
		return respondError(c, http.StatusInternalServerError, "Login failed", "LOGIN_FAILED")
	}

	if err := h.startSession(c, u.UserID, u.FullName); err != nil {
		return respondError(c, http.StatusInternalServerError, "Login failed", "LOGIN_FAILED")
	}
	return respondSuccess(c, http.StatusOK, "Login successful", map[string]any{
		"user_id":   u.UserID,
		"full_name": u.FullName,
		"email":     u.Email,
	})
}

// Logout handles POST /api/v1/auth/logout (session required).
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSession(c)
	return respondSuccess(c, http.StatusOK, "Logout successful", nil)
}

// startSession issues a signed session token and attaches it as an
// HttpOnly cookie.
func (h *AuthHandler) startSession(c echo.Context, userID, fullName string) error {
	token, exp, err := utils.NewSessionToken(h.Cfg.SessionSecret, userID, fullName, h.Cfg.SessionTTLMin)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *AuthHandler) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
