// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/response"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
)

// registerRequest carries the registration payload.
type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginRequest carries the login payload.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionResponse is the authenticated session the auth endpoints return.
type sessionResponse struct {
	AccessToken string `json:"accessToken"`
	User        any    `json:"user"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	registry *usecase.SessionRegistry
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(registry *usecase.SessionRegistry, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		registry: registry,
		logger:   logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, ok := h.registry.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if !ok {
		return response.Conflict(c, "REGISTRATION_FAILED", "Não foi possível criar a conta")
	}

	return response.Success(c, http.StatusCreated, sessionResponse{
		AccessToken: session.AccessToken(),
		User:        session.User(),
	}, "Account registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, ok := h.registry.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if !ok {
		return response.Unauthorized(c, "INVALID_CREDENTIALS", "E-mail ou senha incorretos")
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		AccessToken: session.AccessToken(),
		User:        session.User(),
	}, "Login successful")
}

// Logout handles the logout request for the authenticated session.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid, ok := c.Get(middleware.ContextKeyUID).(string)
	if !ok || uid == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid session identity")
	}

	if !h.registry.Logout(c.Request().Context(), uid) {
		return response.InternalServerError(c, "LOGOUT_FAILED", "Não foi possível encerrar a sessão")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "logged_out"}, "Logout successful")
}
