// Package cache implements the persisted session cache on a gocloud.dev
// blob bucket. The bucket plays the role a browser's local storage plays
// for the web client: a small key/value mirror that survives restarts and
// whose keys can be enumerated for the auth-namespace sweep.
package cache

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"scout/config"
	"scout/internal/domain/lifecycle"
	"scout/internal/domain/repository"
	"scout/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local persistence
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests and ephemeral runs
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobCache implements repository.SessionCache over a blob bucket, one
// object per key.
type blobCache struct {
	bucket *blob.Bucket
}

// New opens the bucket named by session.cacheURL and ties its lifetime to
// the application lifecycle.
func New(params Params) (repository.SessionCache, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Session.CacheURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session cache bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already-open bucket. Used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket) repository.SessionCache {
	return &blobCache{bucket: bucket}
}

// Get returns the value stored under key, or repository.ErrCacheMiss.
func (c *blobCache) Get(ctx context.Context, key string) (string, error) {
	reader, err := c.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrCacheMiss
		}

		return "", errors.Wrap(err, "failed to read cache entry")
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.Wrap(err, "failed to read cache entry")
	}

	return string(data), nil
}

// Set stores value under key, overwriting any previous value.
func (c *blobCache) Set(ctx context.Context, key, value string) error {
	if err := c.bucket.WriteAll(ctx, key, []byte(value), nil); err != nil {
		return errors.Wrap(err, "failed to write cache entry")
	}

	return nil
}

// Remove deletes the entry. Removing an absent key is not an error.
func (c *blobCache) Remove(ctx context.Context, key string) error {
	err := c.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to remove cache entry")
	}

	return nil
}

// Keys lists every stored key containing substr.
func (c *blobCache) Keys(ctx context.Context, substr string) ([]string, error) {
	var keys []string
	iter := c.bucket.List(nil)
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list cache keys")
		}
		if strings.Contains(obj.Key, substr) {
			keys = append(keys, obj.Key)
		}
	}

	return keys, nil
}
