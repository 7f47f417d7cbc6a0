package impl

import (
	"context"
	"log/slog"

	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface. It is a thin
// orchestration layer over the directory collaborator; its value is the
// seam, so the delivery layer never depends on infrastructure directly.
type directoryService struct {
	directory service.PlayerDirectory
	logger    *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	Directory service.PlayerDirectory
	Logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		directory: params.Directory,
		logger:    params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *directoryService) SearchPlayers(ctx context.Context, filters entity.SearchFilters) ([]entity.Player, error) {
	players, err := srv.directory.SearchPlayers(ctx, filters)
	if err != nil {
		srv.log(ctx).Error("Player search failed", slog.Any("error", err))

		return nil, err
	}

	return players, nil
}

func (srv *directoryService) GetPlayer(ctx context.Context, id int) (*entity.Player, error) {
	return srv.directory.GetPlayer(ctx, id)
}

func (srv *directoryService) GetPlayerStatistics(ctx context.Context, id int) ([]entity.PlayerStatistics, error) {
	return srv.directory.GetPlayerStatistics(ctx, id)
}

func (srv *directoryService) GetTopPlayers(ctx context.Context) ([]entity.Player, error) {
	return srv.directory.GetTopPlayers(ctx)
}

func (srv *directoryService) GetRankings(ctx context.Context, rankingType entity.RankingType) (*entity.Ranking, error) {
	return srv.directory.GetRankings(ctx, rankingType)
}

func (srv *directoryService) GetPlayerSuggestions(ctx context.Context, query string) ([]entity.Suggestion, error) {
	return srv.directory.GetPlayerSuggestions(ctx, query)
}
