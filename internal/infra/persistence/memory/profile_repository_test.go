package memory

import (
	"context"
	"testing"
	"time"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_SaveAndFind(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	profile := entity.NewUserProfile("uid-1", "ana@example.com", "Ana", time.Now())
	require.NoError(t, repo.Save(ctx, profile))

	byUID, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byUID.Email)
	assert.Equal(t, "uid-1", byUID.ID)

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", byEmail.UID)
}

func TestProfileRepository_FindMissing(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	_, err := repo.FindByUID(ctx, "uid-missing")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_SavePreservesCreatedAt(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := entity.NewUserProfile("uid-1", "ana@example.com", "Ana", created)
	require.NoError(t, repo.Save(ctx, first))

	second := entity.NewUserProfile("uid-1", "ana@example.com", "Ana Clara", time.Now())
	require.NoError(t, repo.Save(ctx, second))

	stored, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Clara", stored.Name)
	assert.Equal(t, created, stored.CreatedAt)
}

func TestProfileRepository_SaveRequiresUID(t *testing.T) {
	repo := NewProfileRepository()

	assert.Error(t, repo.Save(context.Background(), &entity.UserProfile{Email: "ana@example.com"}))
	assert.Error(t, repo.Save(context.Background(), nil))
}

func TestProfileRepository_SaveIsolatesCaller(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	profile := entity.NewUserProfile("uid-1", "ana@example.com", "Ana", time.Now())
	require.NoError(t, repo.Save(ctx, profile))

	// Mutating the caller's copy after Save must not leak into the store.
	profile.FavoritePlayers = append(profile.FavoritePlayers, 99)

	stored, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Empty(t, stored.FavoritePlayers)
}

func TestProfileRepository_Update(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	profile := entity.NewUserProfile("uid-1", "ana@example.com", "Ana", time.Now())
	require.NoError(t, repo.Save(ctx, profile))

	teams := []int{1, 2, 2}
	require.NoError(t, repo.Update(ctx, "uid-1", &entity.ProfilePatch{FavoriteTeams: &teams}))

	stored, err := repo.FindByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, stored.FavoriteTeams)
	assert.Equal(t, "Ana", stored.Name)
}

func TestProfileRepository_UpdateMissing(t *testing.T) {
	repo := NewProfileRepository()

	name := "Ana"
	err := repo.Update(context.Background(), "uid-missing", &entity.ProfilePatch{Name: &name})

	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_Delete(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	profile := entity.NewUserProfile("uid-1", "ana@example.com", "Ana", time.Now())
	require.NoError(t, repo.Save(ctx, profile))

	require.NoError(t, repo.Delete(ctx, "uid-1"))

	_, err := repo.FindByUID(ctx, "uid-1")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "uid-1"), repository.ErrProfileNotFound)
}
