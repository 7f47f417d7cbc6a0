package postgres

import (
	"context"
	"time"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/postgres/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements repository.ProfileRepository using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a repository.ProfileRepository interface,
// adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUID retrieves a single profile by its stable identifier.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&profileM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by uid")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return profileM.ToProfile(), nil
}

// FindByEmail retrieves a single profile by its email address.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return profileM.ToProfile(), nil
}

// Save persists the profile with create-or-merge semantics: an upsert on the
// uid key that never clears columns the write does not carry, because the
// caller always writes a complete document and createdAt is excluded from
// the conflict update.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil || profile.UID == "" {
		return errors.New("profile must carry a uid")
	}

	profileM := model.FromProfile(profile)
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "name", "favorite_teams", "favorite_players",
				"theme", "language", "updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save profile")
	}

	return nil
}

// Update applies a partial update with read-modify-write so the patch merges
// into the latest stored document.
func (repo *profileRepository) Update(ctx context.Context, uid string, patch *entity.ProfilePatch) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profileM model.ProfileModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", uid).
			First(&profileM).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to load profile for update")
		}

		profile := profileM.ToProfile()
		patch.Apply(profile, time.Now())

		if err := tx.Save(model.FromProfile(profile)).Error; err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		return nil
	})
}

// Delete removes the profile document.
func (repo *profileRepository) Delete(ctx context.Context, uid string) error {
	result := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.ProfileModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}
