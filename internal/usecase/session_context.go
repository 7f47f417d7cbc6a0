package usecase

import (
	"context"
	"log/slog"
	"sync"

	"scout/internal/domain/entity"
)

// SessionContext is the per-session state holder consumed by the delivery
// layer. It exposes exactly two observable fields, the current profile and
// a loading flag, and converts every mutation outcome into a boolean so
// callers never branch on error taxonomies. Diagnostics go to the logger.
//
// All mutations on one context are serialized: mutation N+1 always starts
// from the profile produced by mutation N.
type SessionContext struct {
	sessions SessionUsecase
	logger   *slog.Logger

	// mu serializes mutations; stateMu guards the observable fields.
	mu      sync.Mutex
	stateMu sync.RWMutex

	uid         string
	accessToken string
	user        *entity.UserProfile
	isLoading   bool
}

// NewSessionContext creates an unauthenticated context bound to the session
// service.
func NewSessionContext(sessions SessionUsecase, logger *slog.Logger) *SessionContext {
	return &SessionContext{
		sessions: sessions,
		logger:   logger,
	}
}

// UID returns the session's identity, empty while unauthenticated.
func (sc *SessionContext) UID() string {
	sc.stateMu.RLock()
	defer sc.stateMu.RUnlock()

	return sc.uid
}

// AccessToken returns the token issued by the last successful login or
// registration.
func (sc *SessionContext) AccessToken() string {
	sc.stateMu.RLock()
	defer sc.stateMu.RUnlock()

	return sc.accessToken
}

// User returns a snapshot of the current profile, nil when logged out.
func (sc *SessionContext) User() *entity.UserProfile {
	sc.stateMu.RLock()
	defer sc.stateMu.RUnlock()

	return sc.user.Clone()
}

// IsLoading reports whether a mutation is in flight.
func (sc *SessionContext) IsLoading() bool {
	sc.stateMu.RLock()
	defer sc.stateMu.RUnlock()

	return sc.isLoading
}

// IsAuthenticated reports whether the context holds a profile.
func (sc *SessionContext) IsAuthenticated() bool {
	sc.stateMu.RLock()
	defer sc.stateMu.RUnlock()

	return sc.user != nil
}

// Register creates the account and establishes the session. Returns false
// on any failure; the failure itself is logged.
func (sc *SessionContext) Register(ctx context.Context, input RegisterInput) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.setLoading(true)
	defer sc.setLoading(false)

	out, err := sc.sessions.Register(ctx, input)
	if err != nil {
		sc.logger.Warn("registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return false
	}
	sc.establish(out)

	return true
}

// Login verifies credentials and establishes the session. Returns false on
// any failure; the profile is untouched on failure.
func (sc *SessionContext) Login(ctx context.Context, input LoginInput) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.setLoading(true)
	defer sc.setLoading(false)

	out, err := sc.sessions.Login(ctx, input)
	if err != nil {
		sc.logger.Warn("login failed", slog.String("email", input.Email), slog.Any("error", err))

		return false
	}
	sc.establish(out)

	return true
}

// Logout ends the session. Returns false when the remote invalidation
// fails; the local state is cleared regardless, matching the rule that a
// failed logout must not leave a half-authenticated context.
func (sc *SessionContext) Logout(ctx context.Context) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.setLoading(true)
	defer sc.setLoading(false)

	uid := sc.UID()
	err := sc.sessions.Logout(ctx, uid)
	sc.clear()
	if err != nil {
		sc.logger.Error("logout failed", slog.String("uid", uid), slog.Any("error", err))

		return false
	}

	return true
}

// UpdateUser applies the patch through the session service. Returns false
// when unauthenticated or when persistence fails.
func (sc *SessionContext) UpdateUser(ctx context.Context, patch *entity.ProfilePatch) bool {
	return sc.Mutate(ctx, func(*entity.UserProfile) *entity.ProfilePatch {
		return patch
	})
}

// Mutate runs build against the latest profile snapshot and applies the
// returned patch, all under the mutation lock. Read-modify-write callers
// (the favorites toggles) use this so two rapid mutations never overwrite
// each other. A nil patch from build aborts the mutation.
func (sc *SessionContext) Mutate(ctx context.Context, build func(current *entity.UserProfile) *entity.ProfilePatch) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.setLoading(true)
	defer sc.setLoading(false)

	current := sc.User()
	patch := build(current)
	if patch == nil {
		return false
	}

	updated, err := sc.sessions.UpdateUser(ctx, sc.UID(), patch)
	if err != nil {
		sc.logger.Warn("profile update failed", slog.String("uid", sc.UID()), slog.Any("error", err))

		return false
	}

	sc.stateMu.Lock()
	sc.user = updated
	sc.stateMu.Unlock()

	return true
}

func (sc *SessionContext) establish(out *SessionOutput) {
	sc.stateMu.Lock()
	defer sc.stateMu.Unlock()

	sc.uid = out.User.UID
	sc.accessToken = out.AccessToken
	sc.user = out.User
}

func (sc *SessionContext) clear() {
	sc.stateMu.Lock()
	defer sc.stateMu.Unlock()

	sc.uid = ""
	sc.accessToken = ""
	sc.user = nil
}

func (sc *SessionContext) setLoading(loading bool) {
	sc.stateMu.Lock()
	defer sc.stateMu.Unlock()

	sc.isLoading = loading
}
