package usecase

import (
	"context"
	"testing"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory serves a two-player catalogue: player 1 plays for team 10,
// player 2 is known but has no statistics.
type fakeDirectory struct{}

func (fakeDirectory) SearchPlayers(context.Context, entity.SearchFilters) ([]entity.Player, error) {
	return nil, nil
}

func (fakeDirectory) GetPlayer(_ context.Context, id int) (*entity.Player, error) {
	if id == 1 || id == 2 {
		return &entity.Player{ID: id}, nil
	}

	return nil, domainerrors.ErrPlayerNotFound
}

func (fakeDirectory) GetPlayerStatistics(_ context.Context, id int) ([]entity.PlayerStatistics, error) {
	switch id {
	case 1:
		return []entity.PlayerStatistics{{Team: entity.Team{ID: 10}}}, nil
	case 2:
		return []entity.PlayerStatistics{}, nil
	default:
		return nil, domainerrors.ErrPlayerNotFound
	}
}

func (fakeDirectory) GetTopPlayers(context.Context) ([]entity.Player, error) { return nil, nil }

func (fakeDirectory) GetRankings(context.Context, entity.RankingType) (*entity.Ranking, error) {
	return nil, domainerrors.ErrRankingNotFound
}

func (fakeDirectory) GetPlayerSuggestions(context.Context, string) ([]entity.Suggestion, error) {
	return nil, nil
}

func createCoordinatorFixtures(t *testing.T) (*FavoritesCoordinator, *SessionContext) {
	t.Helper()

	sc := NewSessionContext(newFakeSessionUsecase(), discardLogger())
	require.True(t, sc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "secret"}))

	return NewFavoritesCoordinator(fakeDirectory{}, discardLogger()), sc
}

func TestFavoritesCoordinator_TogglePlayer(t *testing.T) {
	coordinator, sc := createCoordinatorFixtures(t)
	ctx := context.Background()

	require.False(t, coordinator.IsPlayerFavorite(sc, 1))

	require.True(t, coordinator.TogglePlayer(ctx, sc, 1))
	assert.True(t, coordinator.IsPlayerFavorite(sc, 1))

	require.True(t, coordinator.TogglePlayer(ctx, sc, 1))
	assert.False(t, coordinator.IsPlayerFavorite(sc, 1))
}

func TestFavoritesCoordinator_ToggleNeverDuplicates(t *testing.T) {
	coordinator, sc := createCoordinatorFixtures(t)
	ctx := context.Background()

	require.True(t, coordinator.TogglePlayer(ctx, sc, 1))
	require.True(t, coordinator.TogglePlayer(ctx, sc, 2))
	require.True(t, coordinator.TogglePlayer(ctx, sc, 1))
	require.True(t, coordinator.TogglePlayer(ctx, sc, 1))

	assert.Equal(t, []int{2, 1}, sc.User().FavoritePlayers)
}

func TestFavoritesCoordinator_ToggleTeam(t *testing.T) {
	coordinator, sc := createCoordinatorFixtures(t)
	ctx := context.Background()

	require.True(t, coordinator.ToggleTeam(ctx, sc, 10))
	assert.True(t, coordinator.IsTeamFavorite(sc, 10))
}

func TestFavoritesCoordinator_ToggleTeamForPlayer(t *testing.T) {
	coordinator, sc := createCoordinatorFixtures(t)
	ctx := context.Background()

	require.True(t, coordinator.ToggleTeamForPlayer(ctx, sc, 1))
	assert.True(t, coordinator.IsTeamFavorite(sc, 10))

	require.True(t, coordinator.ToggleTeamForPlayer(ctx, sc, 1))
	assert.False(t, coordinator.IsTeamFavorite(sc, 10))
}

func TestFavoritesCoordinator_ToggleTeamForPlayerWithoutStats(t *testing.T) {
	coordinator, sc := createCoordinatorFixtures(t)
	ctx := context.Background()

	before := sc.User().FavoriteTeams

	assert.False(t, coordinator.ToggleTeamForPlayer(ctx, sc, 2))
	assert.Equal(t, before, sc.User().FavoriteTeams)
}

func TestFavoritesCoordinator_UnauthenticatedReadsAsNotFavorite(t *testing.T) {
	coordinator := NewFavoritesCoordinator(fakeDirectory{}, discardLogger())
	sc := NewSessionContext(newFakeSessionUsecase(), discardLogger())

	assert.False(t, coordinator.IsPlayerFavorite(sc, 1))
	assert.False(t, coordinator.TogglePlayer(context.Background(), sc, 1))
}
