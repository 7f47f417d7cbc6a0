// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput returns the authenticated profile and its access token.
type SessionOutput struct {
	AccessToken string
	User        *entity.UserProfile
}

// SessionUsecase is the single authority for turning credentials into a
// profile and for persisting profile mutations. Every caller, including the
// favorites flow, goes through it; nothing else writes the profile store or
// the session cache.
type SessionUsecase interface {
	// Register creates the account with the identity collaborator, persists
	// a fresh default profile and establishes the session.
	Register(ctx context.Context, input RegisterInput) (*SessionOutput, error)

	// Login verifies credentials, loads the stored profile (synthesizing a
	// default one when the identity exists but no document does) and
	// establishes the session.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Logout invalidates the remote session and sweeps the persisted auth
	// namespace. Cache-clear failures are logged, not returned.
	Logout(ctx context.Context, uid string) error

	// UpdateUser applies a partial profile update for an active session,
	// writing through to the store and the cache.
	UpdateUser(ctx context.Context, uid string, patch *entity.ProfilePatch) (*entity.UserProfile, error)

	// CurrentUser returns the cached session profile, or nil when the
	// session is absent or its cached payload is unreadable.
	CurrentUser(ctx context.Context, uid string) (*entity.UserProfile, error)

	// IsAuthenticated reports whether a session profile is present.
	IsAuthenticated(ctx context.Context, uid string) bool
}
