// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import "context"

// Identity is the credential collaborator's view of an account. It carries
// no profile data; the profile store owns that.
type Identity struct {
	UID   string
	Email string
}

// IdentityProvider wraps the external credential service (Firebase Auth in
// production, an in-memory fake in the mocked iteration).
type IdentityProvider interface {
	// CreateAccount registers a new identity. Fails with
	// domainerrors.ErrDuplicateAccount when the email is already taken.
	CreateAccount(ctx context.Context, email, password, name string) (*Identity, error)

	// Authenticate verifies the credential pair. Fails with
	// domainerrors.ErrInvalidCredentials when the pair is rejected.
	Authenticate(ctx context.Context, email, password string) (*Identity, error)

	// EndSession invalidates the identity's backing session.
	EndSession(ctx context.Context, uid string) error
}
