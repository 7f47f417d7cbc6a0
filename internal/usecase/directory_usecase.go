// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// DirectoryUsecase exposes the player directory to the delivery layer.
type DirectoryUsecase interface {
	SearchPlayers(ctx context.Context, filters entity.SearchFilters) ([]entity.Player, error)
	GetPlayer(ctx context.Context, id int) (*entity.Player, error)
	GetPlayerStatistics(ctx context.Context, id int) ([]entity.PlayerStatistics, error)
	GetTopPlayers(ctx context.Context) ([]entity.Player, error)
	GetRankings(ctx context.Context, rankingType entity.RankingType) (*entity.Ranking, error)
	GetPlayerSuggestions(ctx context.Context, query string) ([]entity.Suggestion, error)
}
