package usecase

import (
	"context"
	"log/slog"

	"scout/internal/domain/entity"
	"scout/internal/domain/service"
)

// FavoritesCoordinator exposes favorites as membership queries and toggles.
// It never persists anything itself: every toggle is a read-modify-write
// routed through the session context, so favorites obey the same
// write-through rules as any other profile mutation.
type FavoritesCoordinator struct {
	directory service.PlayerDirectory
	logger    *slog.Logger
}

// NewFavoritesCoordinator creates the coordinator.
func NewFavoritesCoordinator(directory service.PlayerDirectory, logger *slog.Logger) *FavoritesCoordinator {
	return &FavoritesCoordinator{
		directory: directory,
		logger:    logger,
	}
}

// IsPlayerFavorite reports membership in the session's favorite player set.
// Logged out reads as not-favorite.
func (f *FavoritesCoordinator) IsPlayerFavorite(sc *SessionContext, playerID int) bool {
	return sc.User().HasFavoritePlayer(playerID)
}

// IsTeamFavorite reports membership in the session's favorite team set.
func (f *FavoritesCoordinator) IsTeamFavorite(sc *SessionContext, teamID int) bool {
	return sc.User().HasFavoriteTeam(teamID)
}

// TogglePlayer flips the player's membership. The toggled set is computed
// from the latest profile under the session's mutation lock, so two rapid
// toggles on different players both survive.
func (f *FavoritesCoordinator) TogglePlayer(ctx context.Context, sc *SessionContext, playerID int) bool {
	return sc.Mutate(ctx, func(current *entity.UserProfile) *entity.ProfilePatch {
		if current == nil {
			return nil
		}
		toggled := entity.ToggleID(current.FavoritePlayers, playerID)

		return &entity.ProfilePatch{FavoritePlayers: &toggled}
	})
}

// ToggleTeam flips the team's membership.
func (f *FavoritesCoordinator) ToggleTeam(ctx context.Context, sc *SessionContext, teamID int) bool {
	return sc.Mutate(ctx, func(current *entity.UserProfile) *entity.ProfilePatch {
		if current == nil {
			return nil
		}
		toggled := entity.ToggleID(current.FavoriteTeams, teamID)

		return &entity.ProfilePatch{FavoriteTeams: &toggled}
	})
}

// ToggleTeamForPlayer flips the membership of the player's current team,
// resolved from the directory's newest statistics record. When the
// directory has no statistics for the player there is no team to toggle and
// the call is a no-op returning false.
func (f *FavoritesCoordinator) ToggleTeamForPlayer(ctx context.Context, sc *SessionContext, playerID int) bool {
	stats, err := f.directory.GetPlayerStatistics(ctx, playerID)
	if err != nil {
		f.logger.Warn("failed to resolve player statistics for team toggle",
			slog.Int("playerID", playerID), slog.Any("error", err))

		return false
	}
	if len(stats) == 0 {
		f.logger.Debug("player has no statistics, skipping team toggle", slog.Int("playerID", playerID))

		return false
	}

	return f.ToggleTeam(ctx, sc, stats[0].Team.ID)
}
