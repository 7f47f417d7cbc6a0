// Package firestore implements the profile store on Cloud Firestore,
// mirroring the document layout of the product's 'users' collection.
package firestore

import (
	"context"
	"log/slog"

	"scout/config"
	"scout/internal/domain/lifecycle"
	"scout/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Firestore client and ties its lifetime to the
// application lifecycle.
func NewClient(params Params) (*firestore.Client, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase config is required for the firestore profile store")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	client, err := firestore.NewClient(ctx, params.Config.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
