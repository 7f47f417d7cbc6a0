package main

import (
	"context"
	"log/slog"
	"os"

	"scout/config"
	"scout/internal/delivery"
	"scout/internal/delivery/http"
	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/router/handler"
	"scout/internal/domain/constants"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"
	"scout/internal/errors"
	"scout/internal/infra/auth"
	"scout/internal/infra/cache"
	"scout/internal/infra/directory"
	"scout/internal/infra/identity"
	logs "scout/internal/infra/log"
	fsstore "scout/internal/infra/persistence/firestore"
	"scout/internal/infra/persistence/memory"
	"scout/internal/infra/persistence/postgres"
	"scout/internal/infra/pubsub"
	"scout/internal/usecase"
	"scout/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Registry   *usecase.SessionRegistry
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newProfileRepository,
		),
	)
}

// newProfileRepository selects the profile store backend from config.
func newProfileRepository(params profileRepositoryParams) (repository.ProfileRepository, error) {
	switch params.Config.Store.Provider {
	case constants.StoreProviderMemory, "":
		return memory.NewProfileRepository(), nil
	case constants.StoreProviderFirestore:
		client, err := fsstore.NewClient(fsstore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return fsstore.NewProfileRepository(client), nil
	case constants.StoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewProfileRepository(db), nil
	default:
		return nil, errors.Errorf("unknown store provider: %s", params.Config.Store.Provider)
	}
}

type profileRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newIdentityProvider,
		),
		pubsub.Module,
	)
}

// newIdentityProvider selects the identity collaborator from config.
func newIdentityProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger, hasher service.PasswordHasher) (service.IdentityProvider, error) {
	provider := ""
	if cfg.Auth != nil {
		provider = cfg.Auth.Provider
	}

	switch provider {
	case constants.AuthProviderMemory, "":
		return identity.NewMemoryProvider(hasher), nil
	case constants.AuthProviderFirebase:
		return identity.NewFirebaseProvider(ctx, cfg.Firebase, logger)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			directory.NewMemoryDirectory,
			impl.NewSessionService,
			impl.NewDirectoryService,
			usecase.NewSessionRegistry,
			usecase.NewFavoritesCoordinator,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewFavoritesHandler,
			handler.NewPlayerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) error {
	// Apply the session resume policy before serving traffic.
	if err := params.Registry.Start(ctx); err != nil {
		return err
	}

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}

	return nil
}
