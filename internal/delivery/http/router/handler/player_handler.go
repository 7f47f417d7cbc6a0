package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlayerHandler serves the player directory surface.
type PlayerHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewPlayerHandler is the constructor for PlayerHandler, injected by Fx.
func NewPlayerHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search returns players matching the query filters.
func (h *PlayerHandler) Search(c echo.Context) error {
	var filters entity.SearchFilters
	if err := c.Bind(&filters); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search filters")
	}

	players, err := h.uc.SearchPlayers(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, players, "Players retrieved successfully")
}

// Top returns the directory's featured players.
func (h *PlayerHandler) Top(c echo.Context) error {
	players, err := h.uc.GetTopPlayers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, players, "Top players retrieved successfully")
}

// Get returns one player by id.
func (h *PlayerHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid player id")
	}

	player, err := h.uc.GetPlayer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, player, "Player retrieved successfully")
}

// Statistics returns the player's season records.
func (h *PlayerHandler) Statistics(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid player id")
	}

	stats, err := h.uc.GetPlayerStatistics(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Player statistics retrieved successfully")
}

// Suggestions returns autocomplete candidates for the q query parameter.
func (h *PlayerHandler) Suggestions(c echo.Context) error {
	suggestions, err := h.uc.GetPlayerSuggestions(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}

// Rankings returns the ranking board named by the type parameter.
func (h *PlayerHandler) Rankings(c echo.Context) error {
	ranking, err := h.uc.GetRankings(c.Request().Context(), entity.RankingType(c.Param("type")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranking, "Ranking retrieved successfully")
}
