package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scout/config"
	"scout/internal/delivery/http/middleware"
	httpvalidator "scout/internal/delivery/http/validator"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
	"scout/internal/infra/auth"
	"scout/internal/infra/cache"
	"scout/internal/infra/directory"
	"scout/internal/infra/identity"
	"scout/internal/infra/persistence/memory"
	"scout/internal/usecase"
	"scout/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

type silentPublisher struct{}

func (silentPublisher) PublishProfileEvent(context.Context, *service.ProfileEvent) error {
	return nil
}

func (silentPublisher) Close() error { return nil }

type handlerFixtures struct {
	echo     *echo.Echo
	registry *usecase.SessionRegistry
	logger   *slog.Logger
}

func createHandlerFixtures(t *testing.T) handlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Session: config.SessionConfig{CacheURL: "mem://", KeyPrefix: "session/"},
	}
	cfg.SecretKey.Access = "test-secret"

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	sessionCache := cache.NewWithBucket(bucket)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	sessions := impl.NewSessionService(impl.SessionServiceParams{
		Identity:     identity.NewMemoryProvider(auth.NewBcryptHasher(cfg)),
		ProfileRepo:  memory.NewProfileRepository(),
		Cache:        sessionCache,
		TokenService: tokenSvc,
		Publisher:    silentPublisher{},
		Config:       cfg,
		Logger:       logger,
	})

	e := echo.New()
	e.Validator = httpvalidator.New()

	return handlerFixtures{
		echo:     e,
		registry: usecase.NewSessionRegistry(sessions, sessionCache, cfg, logger),
		logger:   logger,
	}
}

func (f handlerFixtures) jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func (f handlerFixtures) getContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func (f handlerFixtures) authenticatedSession(t *testing.T) *usecase.SessionContext {
	t.Helper()

	session, ok := f.registry.Register(context.Background(), usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.True(t, ok)

	return session
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAuthHandler_Register(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewAuthHandler(f.registry, f.logger)

	c, rec := f.jsonContext(http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"secret123"}`)

	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.NotEmpty(t, data["accessToken"])
	assert.Equal(t, "ana@example.com", data["user"].(map[string]any)["email"])
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewAuthHandler(f.registry, f.logger)

	c, _ := f.jsonContext(http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"not-an-email","password":"123"}`)

	err := h.Register(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewAuthHandler(f.registry, f.logger)
	f.authenticatedSession(t)

	c, rec := f.jsonContext(http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@example.com","password":"secret123"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewAuthHandler(f.registry, f.logger)
	f.authenticatedSession(t)

	c, rec := f.jsonContext(http.MethodPost, "/auth/login",
		`{"email":"ana@example.com","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewAuthHandler(f.registry, f.logger)
	f.authenticatedSession(t)

	c, rec := f.jsonContext(http.MethodPost, "/auth/login",
		`{"email":"ana@example.com","password":"wrong-password"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewAuthHandler(f.registry, f.logger)
	session := f.authenticatedSession(t)

	c, rec := f.jsonContext(http.MethodPost, "/auth/logout", "")
	c.Set(middleware.ContextKeyUID, session.UID())

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, resolved := f.registry.Resolve(context.Background(), session.UID())
	assert.False(t, resolved)
}

func TestSessionHandler_Me(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewSessionHandler(f.logger)
	session := f.authenticatedSession(t)

	c, rec := f.getContext("/session/me")
	c.Set(middleware.ContextKeySession, session)

	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Ana", envelope["data"].(map[string]any)["name"])
}

func TestSessionHandler_MeUnauthenticated(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewSessionHandler(f.logger)

	c, rec := f.getContext("/session/me")

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_UpdateProfile(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewSessionHandler(f.logger)
	session := f.authenticatedSession(t)

	c, rec := f.jsonContext(http.MethodPatch, "/session/profile",
		`{"name":"Ana Clara","preferences":{"theme":"dark","language":"en"}}`)
	c.Set(middleware.ContextKeySession, session)

	require.NoError(t, h.UpdateProfile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	user := session.User()
	assert.Equal(t, "Ana Clara", user.Name)
	assert.Equal(t, "dark", string(user.Preferences.Theme))
}

func TestSessionHandler_UpdateProfileEmptyPatch(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewSessionHandler(f.logger)
	session := f.authenticatedSession(t)

	c, rec := f.jsonContext(http.MethodPatch, "/session/profile", `{}`)
	c.Set(middleware.ContextKeySession, session)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandler_UpdateProfileInvalidTheme(t *testing.T) {
	f := createHandlerFixtures(t)
	h := NewSessionHandler(f.logger)
	session := f.authenticatedSession(t)

	c, _ := f.jsonContext(http.MethodPatch, "/session/profile",
		`{"preferences":{"theme":"solarized"}}`)
	c.Set(middleware.ContextKeySession, session)

	err := h.UpdateProfile(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func newFavoritesHandler(f handlerFixtures) *FavoritesHandler {
	coordinator := usecase.NewFavoritesCoordinator(directory.NewMemoryDirectory(), f.logger)

	return NewFavoritesHandler(coordinator, f.logger)
}

func TestFavoritesHandler_ToggleAndList(t *testing.T) {
	f := createHandlerFixtures(t)
	h := newFavoritesHandler(f)
	session := f.authenticatedSession(t)

	c, rec := f.jsonContext(http.MethodPost, "/favorites/players/1/toggle", "")
	c.Set(middleware.ContextKeySession, session)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.TogglePlayer(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, true, data["favorite"])

	c, rec = f.getContext("/favorites")
	c.Set(middleware.ContextKeySession, session)

	require.NoError(t, h.List(c))
	envelope = decodeEnvelope(t, rec)
	players := envelope["data"].(map[string]any)["favoritePlayers"].([]any)
	assert.Len(t, players, 1)
}

func TestFavoritesHandler_ToggleTeamForPlayerWithoutStats(t *testing.T) {
	f := createHandlerFixtures(t)
	h := newFavoritesHandler(f)
	session := f.authenticatedSession(t)

	// Player 3 carries no statistics, so there is no team to resolve.
	c, rec := f.jsonContext(http.MethodPost, "/favorites/players/3/toggle-team", "")
	c.Set(middleware.ContextKeySession, session)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.ToggleTeamForPlayer(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, false, envelope["data"].(map[string]any)["toggled"])
	assert.Empty(t, session.User().FavoriteTeams)
}

func TestFavoritesHandler_RequiresSession(t *testing.T) {
	f := createHandlerFixtures(t)
	h := newFavoritesHandler(f)

	c, rec := f.getContext("/favorites")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func newPlayerHandler(f handlerFixtures) *PlayerHandler {
	uc := impl.NewDirectoryService(impl.DirectoryServiceParams{
		Directory: directory.NewMemoryDirectory(),
		Logger:    f.logger,
	})

	return NewPlayerHandler(uc, f.logger)
}

func TestPlayerHandler_Search(t *testing.T) {
	f := createHandlerFixtures(t)
	h := newPlayerHandler(f)

	c, rec := f.getContext("/players?name=messi")

	require.NoError(t, h.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	players := envelope["data"].([]any)
	require.Len(t, players, 1)
	assert.Equal(t, "Lionel Messi", players[0].(map[string]any)["name"])
}

func TestPlayerHandler_GetUnknownPlayer(t *testing.T) {
	f := createHandlerFixtures(t)
	h := newPlayerHandler(f)

	c, _ := f.getContext("/players/99")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.Get(c)

	assert.ErrorIs(t, err, domainerrors.ErrPlayerNotFound)
}

func TestPlayerHandler_Rankings(t *testing.T) {
	f := createHandlerFixtures(t)
	h := newPlayerHandler(f)

	c, rec := f.getContext("/rankings/goals")
	c.SetParamNames("type")
	c.SetParamValues("goals")

	require.NoError(t, h.Rankings(c))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	entries := envelope["data"].(map[string]any)["entries"].([]any)
	require.Len(t, entries, 3)
	assert.Equal(t, "Cristiano Ronaldo", entries[0].(map[string]any)["player"].(map[string]any)["name"])
}

func TestPlayerHandler_RankingsUnknownType(t *testing.T) {
	f := createHandlerFixtures(t)
	h := newPlayerHandler(f)

	c, _ := f.getContext("/rankings/fouls")
	c.SetParamNames("type")
	c.SetParamValues("fouls")

	err := h.Rankings(c)

	assert.ErrorIs(t, err, domainerrors.ErrRankingNotFound)
}
