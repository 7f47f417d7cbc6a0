package firestore

import (
	"context"
	"time"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

// profileDocument is the Firestore shape of a profile. Field names match
// the documents written by earlier versions of the product, so both read
// the same collection.
type profileDocument struct {
	ID              string             `firestore:"id"`
	Email           string             `firestore:"email"`
	Name            string             `firestore:"name"`
	FavoriteTeams   []int              `firestore:"favoriteTeams"`
	FavoritePlayers []int              `firestore:"favoritePlayers"`
	Preferences     entity.Preferences `firestore:"preferences"`
	CreatedAt       time.Time          `firestore:"createdAt"`
	UpdatedAt       time.Time          `firestore:"updatedAt"`
}

// profileRepository implements repository.ProfileRepository on Firestore.
type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (repo *profileRepository) doc(uid string) *firestore.DocumentRef {
	return repo.client.Collection(usersCollection).Doc(uid)
}

// FindByUID retrieves a single profile document by its stable identifier.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := repo.doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by uid")
	}

	return snapshotToProfile(snap)
}

// FindByEmail retrieves a single profile by its email address. Email is
// unique per identity, so the first match is the document.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	iter := repo.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return snapshotToProfile(snap)
}

// Save persists the profile with create-or-merge semantics: a merge write
// on the uid document, so fields absent from the write survive.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil || profile.UID == "" {
		return errors.New("profile must carry a uid")
	}

	_, err := repo.doc(profile.UID).Set(ctx, profileToDocument(profile), firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to save profile")
	}

	return nil
}

// Update applies a partial update inside a transaction so the patch merges
// into the latest stored document.
func (repo *profileRepository) Update(ctx context.Context, uid string, patch *entity.ProfilePatch) error {
	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(repo.doc(uid))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return repository.ErrProfileNotFound
			}

			return err
		}

		profile, err := snapshotToProfile(snap)
		if err != nil {
			return err
		}
		patch.Apply(profile, time.Now())

		return tx.Set(repo.doc(uid), profileToDocument(profile), firestore.MergeAll)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// Delete removes the profile document.
func (repo *profileRepository) Delete(ctx context.Context, uid string) error {
	_, err := repo.doc(uid).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}

func profileToDocument(profile *entity.UserProfile) *profileDocument {
	return &profileDocument{
		ID:              profile.UID,
		Email:           profile.Email,
		Name:            profile.Name,
		FavoriteTeams:   profile.FavoriteTeams,
		FavoritePlayers: profile.FavoritePlayers,
		Preferences:     profile.Preferences,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func snapshotToProfile(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var doc profileDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	teams := doc.FavoriteTeams
	if teams == nil {
		teams = []int{}
	}
	players := doc.FavoritePlayers
	if players == nil {
		players = []int{}
	}

	return &entity.UserProfile{
		UID:             snap.Ref.ID,
		ID:              snap.Ref.ID,
		Email:           doc.Email,
		Name:            doc.Name,
		FavoriteTeams:   teams,
		FavoritePlayers: players,
		Preferences:     doc.Preferences,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}, nil
}
