// Package memory provides an in-memory profile store for the mocked
// iteration and for tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
)

// profileRepository keeps profile documents in a mutex-guarded map.
type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entity.UserProfile // keyed by uid
}

// NewProfileRepository creates an empty in-memory profile repository.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{
		profiles: make(map[string]*entity.UserProfile),
	}
}

// FindByUID retrieves a single profile by its stable identifier.
func (r *profileRepository) FindByUID(_ context.Context, uid string) (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[uid]
	if !exists {
		return nil, repository.ErrProfileNotFound
	}

	return profile.Clone(), nil
}

// FindByEmail retrieves a single profile by its email address.
func (r *profileRepository) FindByEmail(_ context.Context, email string) (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, profile := range r.profiles {
		if profile.Email == email {
			return profile.Clone(), nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

// Save persists the profile with create-or-merge semantics. The in-memory
// document is replaced wholesale because the caller always writes a complete
// profile; createdAt of an existing document is preserved.
func (r *profileRepository) Save(_ context.Context, profile *entity.UserProfile) error {
	if profile == nil || profile.UID == "" {
		return errors.New("profile must carry a uid")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := profile.Clone()
	stored.ID = stored.UID
	if existing, exists := r.profiles[profile.UID]; exists && !existing.CreatedAt.IsZero() {
		stored.CreatedAt = existing.CreatedAt
	}
	r.profiles[stored.UID] = stored

	return nil
}

// Update applies a partial update to an existing profile.
func (r *profileRepository) Update(_ context.Context, uid string, patch *entity.ProfilePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, exists := r.profiles[uid]
	if !exists {
		return repository.ErrProfileNotFound
	}

	updated := profile.Clone()
	patch.Apply(updated, time.Now())
	r.profiles[uid] = updated

	return nil
}

// Delete removes the profile document.
func (r *profileRepository) Delete(_ context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[uid]; !exists {
		return repository.ErrProfileNotFound
	}
	delete(r.profiles, uid)

	return nil
}
