package usecase

import (
	"context"
	"testing"

	"scout/config"
	"scout/internal/infra/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func createRegistryFixtures(t *testing.T, resume bool) (*SessionRegistry, *fakeSessionUsecase) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	fake := newFakeSessionUsecase()
	cfg := &config.Config{Session: config.SessionConfig{
		CacheURL:      "mem://",
		KeyPrefix:     "session/",
		ResumeOnStart: resume,
	}}

	return NewSessionRegistry(fake, cache.NewWithBucket(bucket), cfg, discardLogger()), fake
}

func TestSessionRegistry_LoginRetainsContext(t *testing.T) {
	registry, _ := createRegistryFixtures(t, false)

	sc, ok := registry.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "secret"})

	require.True(t, ok)
	require.NotNil(t, sc)

	resolved, ok := registry.Resolve(context.Background(), sc.UID())
	require.True(t, ok)
	assert.Same(t, sc, resolved)
}

func TestSessionRegistry_LoginFailureRetainsNothing(t *testing.T) {
	registry, _ := createRegistryFixtures(t, false)

	sc, ok := registry.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong"})

	assert.False(t, ok)
	assert.Nil(t, sc)
}

func TestSessionRegistry_LogoutDropsContext(t *testing.T) {
	registry, _ := createRegistryFixtures(t, false)

	sc, ok := registry.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "secret"})
	require.True(t, ok)

	require.True(t, registry.Logout(context.Background(), sc.UID()))

	_, ok = registry.Resolve(context.Background(), sc.UID())
	assert.False(t, ok)
}

func TestSessionRegistry_ResolveResurrectsFromSession(t *testing.T) {
	registry, fake := createRegistryFixtures(t, true)

	// Simulate a session persisted by a previous process: the session
	// usecase still knows the profile but no context is held.
	_, err := fake.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)

	sc, ok := registry.Resolve(context.Background(), "uid-ana@example.com")

	require.True(t, ok)
	assert.True(t, sc.IsAuthenticated())
	assert.Equal(t, "ana@example.com", sc.User().Email)

	again, ok := registry.Resolve(context.Background(), "uid-ana@example.com")
	require.True(t, ok)
	assert.Same(t, sc, again)
}

func TestSessionRegistry_ResolveUnknownUID(t *testing.T) {
	registry, _ := createRegistryFixtures(t, false)

	_, ok := registry.Resolve(context.Background(), "uid-nobody")

	assert.False(t, ok)
}

func TestSessionRegistry_StartSweepsWithResumeDisabled(t *testing.T) {
	registry, _ := createRegistryFixtures(t, false)
	ctx := context.Background()

	require.NoError(t, registry.cache.Set(ctx, "session/uid-1", "{}"))
	require.NoError(t, registry.cache.Set(ctx, "session/uid-2", "{}"))
	require.NoError(t, registry.cache.Set(ctx, "directory/top", "[]"))

	require.NoError(t, registry.Start(ctx))

	keys, err := registry.cache.Keys(ctx, "session/")
	require.NoError(t, err)
	assert.Empty(t, keys)

	// Keys outside the session namespace survive the sweep.
	_, err = registry.cache.Get(ctx, "directory/top")
	assert.NoError(t, err)
}

func TestSessionRegistry_StartKeepsSessionsWithResumeEnabled(t *testing.T) {
	registry, _ := createRegistryFixtures(t, true)
	ctx := context.Background()

	require.NoError(t, registry.cache.Set(ctx, "session/uid-1", "{}"))

	require.NoError(t, registry.Start(ctx))

	keys, err := registry.cache.Keys(ctx, "session/")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
