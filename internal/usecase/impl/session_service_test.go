package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"scout/config"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"
	"scout/internal/infra/auth"
	"scout/internal/infra/cache"
	"scout/internal/infra/identity"
	"scout/internal/infra/persistence/memory"
	"scout/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu     sync.Mutex
	events []*service.ProfileEvent
}

func (p *capturingPublisher) PublishProfileEvent(_ context.Context, event *service.ProfileEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func (p *capturingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	kinds := make([]string, 0, len(p.events))
	for _, event := range p.events {
		kinds = append(kinds, event.Kind)
	}

	return kinds
}

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	identity  service.IdentityProvider
	repo      repository.ProfileRepository
	cache     repository.SessionCache
	publisher *capturingPublisher
	cfg       *config.Config
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.SecretKey.Access = "test-secret"
	cfg.Session.KeyPrefix = "session/"

	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	fixtures := sessionServiceFixtures{
		identity:  identity.NewMemoryProvider(hasher),
		repo:      memory.NewProfileRepository(),
		cache:     cache.NewWithBucket(bucket),
		publisher: &capturingPublisher{},
		cfg:       cfg,
	}
	fixtures.service = NewSessionService(SessionServiceParams{
		Identity:     fixtures.identity,
		ProfileRepo:  fixtures.repo,
		Cache:        fixtures.cache,
		TokenService: tokenService,
		Publisher:    fixtures.publisher,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixtures
}

func TestSessionService_Register_CreatesDefaultProfile(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, entity.ThemeLight, out.User.Preferences.Theme)
	assert.Equal(t, "pt", out.User.Preferences.Language)
	assert.Empty(t, out.User.FavoriteTeams)
	assert.Empty(t, out.User.FavoritePlayers)

	stored, err := fx.repo.FindByUID(ctx, out.User.UID)
	require.NoError(t, err)
	assert.Equal(t, out.User.Email, stored.Email)

	current, err := fx.service.CurrentUser(ctx, out.User.UID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, out.User.UID, current.UID)

	assert.Equal(t, []string{service.ProfileEventCreated}, fx.publisher.kinds())
}

func TestSessionService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"}
	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestSessionService_Login_WrongPasswordLeavesNoSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.NoError(t, fx.service.Logout(ctx, out.User.UID))

	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	assert.False(t, fx.service.IsAuthenticated(ctx, out.User.UID))
}

func TestSessionService_Login_SynthesizesMissingProfile(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	// Identity exists but no profile document was ever written.
	id, err := fx.identity.CreateAccount(ctx, "bruno@example.com", "secret123", "Bruno")
	require.NoError(t, err)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bruno@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, id.UID, out.User.UID)
	assert.Equal(t, "bruno", out.User.Name)
	assert.Equal(t, entity.ThemeLight, out.User.Preferences.Theme)

	stored, err := fx.repo.FindByUID(ctx, id.UID)
	require.NoError(t, err)
	assert.Equal(t, "bruno@example.com", stored.Email)
}

func TestSessionService_Logout_SweepsSessionNamespace(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.True(t, fx.service.IsAuthenticated(ctx, out.User.UID))

	require.NoError(t, fx.service.Logout(ctx, out.User.UID))

	assert.False(t, fx.service.IsAuthenticated(ctx, out.User.UID))
	keys, err := fx.cache.Keys(ctx, fx.cfg.Session.KeyPrefix+out.User.UID)
	require.NoError(t, err)
	assert.Empty(t, keys)

	// The profile store is untouched by logout.
	_, err = fx.repo.FindByUID(ctx, out.User.UID)
	require.NoError(t, err)
}

func TestSessionService_UpdateUser_WithoutSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	name := "Mallory"
	_, err := fx.service.UpdateUser(ctx, "ghost-uid", &entity.ProfilePatch{Name: &name})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestSessionService_UpdateUser_WritesThrough(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	uid := out.User.UID

	players := []int{7}
	updated, err := fx.service.UpdateUser(ctx, uid, &entity.ProfilePatch{FavoritePlayers: &players})
	require.NoError(t, err)
	assert.Equal(t, []int{7}, updated.FavoritePlayers)

	stored, err := fx.repo.FindByUID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, stored.FavoritePlayers)

	current, err := fx.service.CurrentUser(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, current.FavoritePlayers)

	assert.Equal(t,
		[]string{service.ProfileEventCreated, service.ProfileEventFavoritesChanged},
		fx.publisher.kinds(),
	)
}

func TestSessionService_UpdateUser_SequentialTogglesBothSurvive(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	uid := out.User.UID

	first := entity.ToggleID(out.User.FavoritePlayers, 7)
	updated, err := fx.service.UpdateUser(ctx, uid, &entity.ProfilePatch{FavoritePlayers: &first})
	require.NoError(t, err)

	second := entity.ToggleID(updated.FavoritePlayers, 3)
	updated, err = fx.service.UpdateUser(ctx, uid, &entity.ProfilePatch{FavoritePlayers: &second})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3}, updated.FavoritePlayers)

	third := entity.ToggleID(updated.FavoritePlayers, 7)
	updated, err = fx.service.UpdateUser(ctx, uid, &entity.ProfilePatch{FavoritePlayers: &third})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, updated.FavoritePlayers)
}

func TestSessionService_CurrentUser_CorruptMirrorReadsAsLoggedOut(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	uid := out.User.UID
	key := fx.cfg.Session.KeyPrefix + uid

	require.NoError(t, fx.cache.Set(ctx, key, "{not json"))

	current, err := fx.service.CurrentUser(ctx, uid)
	require.NoError(t, err)
	assert.Nil(t, current)

	// The corrupt entry was cleared, not left to fail again.
	_, err = fx.cache.Get(ctx, key)
	assert.True(t, errors.Is(err, repository.ErrCacheMiss))
}
