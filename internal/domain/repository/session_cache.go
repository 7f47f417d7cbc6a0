// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned when no value is stored under the key.
var ErrCacheMiss = errors.New("cache miss")

// SessionCache is the local persisted mirror of session state. It exists
// only to survive a restart and is never authoritative over the profile
// store.
type SessionCache interface {
	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the entry. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists every stored key containing substr. Used to sweep the
	// auth namespace on logout and at startup.
	Keys(ctx context.Context, substr string) ([]string, error)
}
