// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"scout/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// document exists for the given identity.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for user profile
// persistence. The application layer depends on this interface, never on a
// concrete backend.
type ProfileRepository interface {
	// FindByUID retrieves a single profile by its stable identifier.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// FindByEmail retrieves a single profile by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)

	// Save persists the profile with create-or-merge semantics: fields not
	// carried by the write must survive in the stored document.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// Update applies a partial update to an existing profile and advances
	// its updatedAt timestamp.
	Update(ctx context.Context, uid string, patch *entity.ProfilePatch) error

	// Delete removes the profile document. Not exercised by the favorites
	// flow; kept for explicit account deletion.
	Delete(ctx context.Context, uid string) error
}
