// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"scout/config"
	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. It is the only
// writer of the profile store and the session cache: every successful
// mutation writes through to both, and the cache is never authoritative
// over the store.
type sessionService struct {
	identity     service.IdentityProvider
	profileRepo  repository.ProfileRepository
	cache        repository.SessionCache
	tokenService service.TokenService
	publisher    service.EventPublisher
	keyPrefix    string
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity     service.IdentityProvider
	ProfileRepo  repository.ProfileRepository
	Cache        repository.SessionCache
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all
// dependencies as interfaces.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identity:     params.Identity,
		profileRepo:  params.ProfileRepo,
		cache:        params.Cache,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		keyPrefix:    params.Config.Session.KeyPrefix,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// cacheKey is the session's auth namespace: every key written for one
// session carries this prefix, so logout can sweep by substring.
func (srv *sessionService) cacheKey(uid string) string {
	return srv.keyPrefix + uid
}

// Register orchestrates the complete registration process: account creation
// with the identity collaborator, a fresh default profile in the store, and
// the persisted session mirror.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	identity, err := srv.identity.CreateAccount(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	profile := entity.NewUserProfile(identity.UID, identity.Email, input.Name, time.Now())
	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to persist new profile", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist new profile")
	}

	if err := srv.writeSessionMirror(ctx, profile); err != nil {
		return nil, err
	}
	srv.publish(ctx, service.ProfileEventCreated, profile)

	token, err := srv.tokenService.GenerateToken(profile.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("uid", profile.UID))

	return &usecase.SessionOutput{AccessToken: token, User: profile}, nil
}

// Login verifies credentials and establishes the session. When the identity
// exists but no profile document does (first login on a pre-provisioned
// account, or a document lost server-side), a default profile is
// synthesized and persisted so the session always has a document.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	identity, err := srv.identity.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Authentication rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	profile, err := srv.profileRepo.FindByUID(ctx, identity.UID)
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		profile = entity.NewUserProfile(identity.UID, identity.Email, nameFromEmail(identity.Email), time.Now())
		if err := srv.profileRepo.Save(ctx, profile); err != nil {
			srv.log(ctx).Error("Failed to persist synthesized profile", slog.String("uid", identity.UID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to persist synthesized profile")
		}
		srv.log(ctx).Info("Synthesized default profile on login", slog.String("uid", identity.UID))
		srv.publish(ctx, service.ProfileEventCreated, profile)
	case err != nil:
		srv.log(ctx).Error("Failed to load profile", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, domainerrors.NewStoreExecuteError(err, "login profile load")
	}

	if err := srv.writeSessionMirror(ctx, profile); err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(profile.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Login completed", slog.String("uid", profile.UID))

	return &usecase.SessionOutput{AccessToken: token, User: profile}, nil
}

// Logout invalidates the remote session and sweeps the session's auth
// namespace from the cache. Identity invalidation failure is surfaced;
// cache-clear failures are logged and swallowed, because a stale mirror is
// recoverable while a live remote session is not.
func (srv *sessionService) Logout(ctx context.Context, uid string) error {
	namespace := srv.cacheKey(uid)
	keys, err := srv.cache.Keys(ctx, namespace)
	if err != nil {
		srv.log(ctx).Warn("Failed to enumerate session keys on logout", slog.String("uid", uid), slog.Any("error", err))
	}
	for _, key := range keys {
		if err := srv.cache.Remove(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to clear session key on logout", slog.String("key", key), slog.Any("error", err))
		}
	}

	if err := srv.identity.EndSession(ctx, uid); err != nil {
		srv.log(ctx).Error("Failed to end remote session", slog.String("uid", uid), slog.Any("error", err))

		return errors.Wrap(err, "failed to end remote session")
	}

	srv.log(ctx).Info("Logout completed", slog.String("uid", uid))

	return nil
}

// UpdateUser applies a partial update for an active session. Without an
// active session the call fails with ErrNotAuthenticated and mutates
// nothing, in the store or the cache.
func (srv *sessionService) UpdateUser(ctx context.Context, uid string, patch *entity.ProfilePatch) (*entity.UserProfile, error) {
	current, err := srv.CurrentUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if current == nil {
		srv.log(ctx).Warn("Profile update without active session", slog.String("uid", uid))

		return nil, domainerrors.ErrNotAuthenticated
	}

	if patch.IsZero() {
		return current, nil
	}

	if err := srv.profileRepo.Update(ctx, uid, patch); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.String("uid", uid), slog.Any("error", err))
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.ErrProfileUpdateFailed.WrapMessage(err.Error())
	}

	updated := current.Clone()
	patch.Apply(updated, time.Now())
	if err := srv.writeSessionMirror(ctx, updated); err != nil {
		return nil, err
	}

	kind := service.ProfileEventUpdated
	if patch.FavoritePlayers != nil || patch.FavoriteTeams != nil {
		kind = service.ProfileEventFavoritesChanged
	}
	srv.publish(ctx, kind, updated)

	return updated, nil
}

// CurrentUser reads the session mirror. A missing entry reads as logged
// out. A corrupt entry is cleared and also reads as logged out; the
// diagnostic is logged, never surfaced.
func (srv *sessionService) CurrentUser(ctx context.Context, uid string) (*entity.UserProfile, error) {
	raw, err := srv.cache.Get(ctx, srv.cacheKey(uid))
	if errors.Is(err, repository.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session mirror")
	}

	var profile entity.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		srv.log(ctx).Warn("Corrupt session mirror cleared",
			slog.String("uid", uid),
			slog.String("code", domainerrors.ErrStorageCorrupt.ErrorCode()),
			slog.Any("error", err),
		)
		if removeErr := srv.cache.Remove(ctx, srv.cacheKey(uid)); removeErr != nil {
			srv.log(ctx).Warn("Failed to clear corrupt session mirror", slog.String("uid", uid), slog.Any("error", removeErr))
		}

		return nil, nil
	}

	return &profile, nil
}

// IsAuthenticated reports whether a readable session mirror exists.
func (srv *sessionService) IsAuthenticated(ctx context.Context, uid string) bool {
	profile, err := srv.CurrentUser(ctx, uid)

	return err == nil && profile != nil
}

// writeSessionMirror persists the profile to the session cache.
func (srv *sessionService) writeSessionMirror(ctx context.Context, profile *entity.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "failed to encode session mirror")
	}
	if err := srv.cache.Set(ctx, srv.cacheKey(profile.UID), string(data)); err != nil {
		srv.log(ctx).Error("Failed to write session mirror", slog.String("uid", profile.UID), slog.Any("error", err))

		return errors.Wrap(err, "failed to write session mirror")
	}

	return nil
}

// publish emits a profile event; failures are logged, never surfaced.
func (srv *sessionService) publish(ctx context.Context, kind string, profile *entity.UserProfile) {
	event := &service.ProfileEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		Kind:            kind,
		UID:             profile.UID,
		Email:           profile.Email,
		FavoriteTeams:   len(profile.FavoriteTeams),
		FavoritePlayers: len(profile.FavoritePlayers),
		OccurredAt:      time.Now().UTC(),
	}
	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish profile event", slog.String("kind", kind), slog.String("uid", profile.UID), slog.Any("error", err))
	}
}

// nameFromEmail derives a display name for synthesized profiles.
func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}

	return email
}
