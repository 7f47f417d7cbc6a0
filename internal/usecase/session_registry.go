package usecase

import (
	"context"
	"log/slog"
	"sync"

	"scout/config"
	"scout/internal/domain/repository"
)

// SessionRegistry owns one SessionContext per authenticated identity. The
// delivery layer resolves the context for a request by uid; mutations on
// the same session therefore always funnel through the same context and
// stay serialized.
type SessionRegistry struct {
	sessions SessionUsecase
	cache    repository.SessionCache
	cfg      config.SessionConfig
	logger   *slog.Logger

	mu       sync.RWMutex
	contexts map[string]*SessionContext
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry(sessions SessionUsecase, cache repository.SessionCache, cfg *config.Config, logger *slog.Logger) *SessionRegistry {
	return &SessionRegistry{
		sessions: sessions,
		cache:    cache,
		cfg:      cfg.Session,
		logger:   logger,
		contexts: make(map[string]*SessionContext),
	}
}

// Start applies the resume policy. With resume disabled, every persisted
// session key is swept so each identity re-authenticates explicitly after a
// restart. With resume enabled, persisted sessions are left in place and
// contexts are resurrected lazily on first request.
func (r *SessionRegistry) Start(ctx context.Context) error {
	if r.cfg.ResumeOnStart {
		r.logger.Info("session resume enabled, keeping persisted sessions")

		return nil
	}

	keys, err := r.cache.Keys(ctx, r.cfg.KeyPrefix)
	if err != nil {
		// The sweep is a hygiene pass; a failed listing must not block boot.
		r.logger.Error("failed to list persisted sessions for sweep", slog.Any("error", err))

		return nil
	}

	for _, key := range keys {
		if err := r.cache.Remove(ctx, key); err != nil {
			r.logger.Warn("failed to sweep persisted session", slog.String("key", key), slog.Any("error", err))
		}
	}
	if len(keys) > 0 {
		r.logger.Info("swept persisted sessions", slog.Int("count", len(keys)))
	}

	return nil
}

// Register runs a registration through a fresh context and retains it on
// success.
func (r *SessionRegistry) Register(ctx context.Context, input RegisterInput) (*SessionContext, bool) {
	sc := NewSessionContext(r.sessions, r.logger)
	if !sc.Register(ctx, input) {
		return nil, false
	}
	r.put(sc)

	return sc, true
}

// Login runs a login through a fresh context and retains it on success,
// replacing any context previously held for the same identity.
func (r *SessionRegistry) Login(ctx context.Context, input LoginInput) (*SessionContext, bool) {
	sc := NewSessionContext(r.sessions, r.logger)
	if !sc.Login(ctx, input) {
		return nil, false
	}
	r.put(sc)

	return sc, true
}

// Logout ends the identified session and drops its context.
func (r *SessionRegistry) Logout(ctx context.Context, uid string) bool {
	sc, ok := r.Resolve(ctx, uid)
	if !ok {
		return false
	}

	ok = sc.Logout(ctx)
	r.mu.Lock()
	delete(r.contexts, uid)
	r.mu.Unlock()

	return ok
}

// Resolve returns the context for uid. When no context is held but the
// session cache still carries the profile (resume after restart), a context
// is resurrected from it.
func (r *SessionRegistry) Resolve(ctx context.Context, uid string) (*SessionContext, bool) {
	r.mu.RLock()
	sc, ok := r.contexts[uid]
	r.mu.RUnlock()
	if ok {
		return sc, true
	}

	user, err := r.sessions.CurrentUser(ctx, uid)
	if err != nil || user == nil {
		return nil, false
	}

	sc = NewSessionContext(r.sessions, r.logger)
	sc.establish(&SessionOutput{User: user})

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another request may have resurrected the same session concurrently;
	// keep the first one so serialization holds.
	if existing, ok := r.contexts[uid]; ok {
		return existing, true
	}
	r.contexts[uid] = sc

	return sc, true
}

func (r *SessionRegistry) put(sc *SessionContext) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contexts[sc.UID()] = sc
}
