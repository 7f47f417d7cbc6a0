package service

import (
	"context"

	"scout/internal/domain/entity"
)

// PlayerDirectory is the read-only directory the presentation layer queries.
// The session core never calls it directly; only the favorites team toggle
// consults it to resolve a player's current team.
type PlayerDirectory interface {
	// SearchPlayers returns players matching the filters.
	SearchPlayers(ctx context.Context, filters entity.SearchFilters) ([]entity.Player, error)

	// GetPlayer returns one player, or entity.Player zero value with an
	// ErrPlayerNotFound domain error when the id is unknown.
	GetPlayer(ctx context.Context, id int) (*entity.Player, error)

	// GetPlayerStatistics returns the player's season records, newest first.
	GetPlayerStatistics(ctx context.Context, id int) ([]entity.PlayerStatistics, error)

	// GetTopPlayers returns the directory's featured players.
	GetTopPlayers(ctx context.Context) ([]entity.Player, error)

	// GetRankings returns the ranking board for the given metric.
	GetRankings(ctx context.Context, rankingType entity.RankingType) (*entity.Ranking, error)

	// GetPlayerSuggestions returns autocomplete candidates for a query.
	GetPlayerSuggestions(ctx context.Context, query string) ([]entity.Suggestion, error)
}
