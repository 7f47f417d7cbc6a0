package handler

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// profilePatchRequest carries the typed partial update for the profile.
// Identity fields are deliberately unreachable from this payload.
type profilePatchRequest struct {
	Name        *string             `json:"name,omitempty"`
	Preferences *preferencesPayload `json:"preferences,omitempty"`
}

type preferencesPayload struct {
	Theme    string `json:"theme" validate:"omitempty,oneof=light dark"`
	Language string `json:"language"`
}

// SessionHandler serves the authenticated session surface.
type SessionHandler struct {
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(logger *slog.Logger) *SessionHandler {
	return &SessionHandler{logger: logger}
}

// Me returns the session's current profile.
func (h *SessionHandler) Me(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Nenhum usuário autenticado")
	}

	return response.Success(c, http.StatusOK, session.User(), "Profile retrieved successfully")
}

// UpdateProfile applies a partial update to the session's profile.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Nenhum usuário autenticado")
	}

	var req profilePatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile patch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := &entity.ProfilePatch{Name: req.Name}
	if req.Preferences != nil {
		prefs := entity.Preferences{
			Theme:    entity.Theme(req.Preferences.Theme),
			Language: req.Preferences.Language,
		}
		patch.Preferences = &prefs
	}
	if patch.IsZero() {
		return response.BadRequest(c, "EMPTY_PATCH", "Nada para atualizar")
	}

	if !session.UpdateUser(c.Request().Context(), patch) {
		return response.InternalServerError(c, "PROFILE_UPDATE_FAILED", "Falha ao atualizar o perfil")
	}

	return response.Success(c, http.StatusOK, session.User(), "Profile updated successfully")
}
