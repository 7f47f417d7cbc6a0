package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
)

type memoryAccount struct {
	uid          string
	email        string
	passwordHash string
}

// memoryProvider is the mocked credential collaborator used in development
// and tests. Accounts live only for the process lifetime.
type memoryProvider struct {
	mu       sync.RWMutex
	accounts map[string]*memoryAccount // keyed by email
	hasher   service.PasswordHasher
}

// NewMemoryProvider creates an in-memory identity provider.
func NewMemoryProvider(hasher service.PasswordHasher) service.IdentityProvider {
	return &memoryProvider{
		accounts: make(map[string]*memoryAccount),
		hasher:   hasher,
	}
}

// CreateAccount registers a new in-memory identity.
func (p *memoryProvider) CreateAccount(_ context.Context, email, password, _ string) (*service.Identity, error) {
	email = strings.TrimSpace(email)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[email]; exists {
		return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "email already registered")
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &memoryAccount{
		uid:          uuid.NewString(),
		email:        email,
		passwordHash: hash,
	}
	p.accounts[email] = account

	return &service.Identity{UID: account.uid, Email: account.email}, nil
}

// Authenticate verifies the credential pair against the in-memory accounts.
func (p *memoryProvider) Authenticate(_ context.Context, email, password string) (*service.Identity, error) {
	p.mu.RLock()
	account, exists := p.accounts[strings.TrimSpace(email)]
	p.mu.RUnlock()

	if !exists || !p.hasher.Check(password, account.passwordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "credential pair rejected")
	}

	return &service.Identity{UID: account.uid, Email: account.email}, nil
}

// EndSession is a no-op for the in-memory provider; there is no backing
// session state to invalidate.
func (p *memoryProvider) EndSession(context.Context, string) error {
	return nil
}
