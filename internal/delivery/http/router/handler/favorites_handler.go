package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/response"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
)

// favoritesResponse is the session's favorites snapshot.
type favoritesResponse struct {
	FavoriteTeams   []int `json:"favoriteTeams"`
	FavoritePlayers []int `json:"favoritePlayers"`
}

// toggleResponse reports the outcome of a toggle.
type toggleResponse struct {
	Toggled  bool `json:"toggled"`
	Favorite bool `json:"favorite"`
}

// FavoritesHandler serves favorites queries and toggles.
type FavoritesHandler struct {
	coordinator *usecase.FavoritesCoordinator
	logger      *slog.Logger
}

// NewFavoritesHandler is the constructor for FavoritesHandler, injected by Fx.
func NewFavoritesHandler(coordinator *usecase.FavoritesCoordinator, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// List returns the session's favorite sets.
func (h *FavoritesHandler) List(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Nenhum usuário autenticado")
	}

	user := session.User()
	if user == nil {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Nenhum usuário autenticado")
	}

	return response.Success(c, http.StatusOK, favoritesResponse{
		FavoriteTeams:   user.FavoriteTeams,
		FavoritePlayers: user.FavoritePlayers,
	}, "Favorites retrieved successfully")
}

// TogglePlayer flips a player's favorite membership.
func (h *FavoritesHandler) TogglePlayer(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Nenhum usuário autenticado")
	}

	playerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid player id")
	}

	if !h.coordinator.TogglePlayer(c.Request().Context(), session, playerID) {
		return response.InternalServerError(c, "PROFILE_UPDATE_FAILED", "Falha ao atualizar o perfil")
	}

	return response.Success(c, http.StatusOK, toggleResponse{
		Toggled:  true,
		Favorite: h.coordinator.IsPlayerFavorite(session, playerID),
	}, "Favorite player toggled")
}

// ToggleTeam flips a team's favorite membership.
func (h *FavoritesHandler) ToggleTeam(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Nenhum usuário autenticado")
	}

	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid team id")
	}

	if !h.coordinator.ToggleTeam(c.Request().Context(), session, teamID) {
		return response.InternalServerError(c, "PROFILE_UPDATE_FAILED", "Falha ao atualizar o perfil")
	}

	return response.Success(c, http.StatusOK, toggleResponse{
		Toggled:  true,
		Favorite: h.coordinator.IsTeamFavorite(session, teamID),
	}, "Favorite team toggled")
}

// ToggleTeamForPlayer flips the favorite membership of the player's current
// team, resolved from the directory. Players without statistics have no
// resolvable team; the call reports toggled=false.
func (h *FavoritesHandler) ToggleTeamForPlayer(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Nenhum usuário autenticado")
	}

	playerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid player id")
	}

	toggled := h.coordinator.ToggleTeamForPlayer(c.Request().Context(), session, playerID)

	return response.Success(c, http.StatusOK, toggleResponse{Toggled: toggled}, "Favorite team toggle processed")
}
