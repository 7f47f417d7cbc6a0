// Package identity provides concrete implementations of the credential
// collaborator wrapped by the session service.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"scout/config"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// firebaseProvider implements service.IdentityProvider on Firebase Auth.
// Account creation and session revocation go through the admin SDK;
// password verification goes through the Identity Toolkit REST endpoint
// because the admin SDK cannot check passwords.
type firebaseProvider struct {
	client     *fbauth.Client
	webAPIKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFirebaseProvider creates an identity provider backed by Firebase Auth.
func NewFirebaseProvider(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.IdentityProvider, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseProvider{
		client:    client,
		webAPIKey: cfg.WebAPIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}, nil
}

// CreateAccount registers a new Firebase Auth user.
func (p *firebaseProvider) CreateAccount(ctx context.Context, email, password, name string) (*service.Identity, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "email already registered")
		}

		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable.WrapMessage(err.Error()), "failed to create Firebase account")
	}

	return &service.Identity{UID: record.UID, Email: record.Email}, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

// Authenticate verifies the credential pair against the Identity Toolkit
// endpoint and resolves the identity's uid.
func (p *firebaseProvider) Authenticate(ctx context.Context, email, password string) (*service.Identity, error) {
	payload, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sign-in request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, identityToolkitURL+"?key="+p.webAPIKey, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sign-in request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "identity toolkit unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Wrap(domainerrors.ErrRemoteUnavailable, "identity toolkit error")
	default:
		// The endpoint answers 400 for EMAIL_NOT_FOUND and INVALID_PASSWORD
		// alike; both map to the same domain error.
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "credential pair rejected")
	}

	var body signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode sign-in response")
	}

	return &service.Identity{UID: body.LocalID, Email: body.Email}, nil
}

// EndSession revokes the identity's refresh tokens, invalidating its session.
func (p *firebaseProvider) EndSession(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke Firebase session")
	}
	p.logger.Debug("Firebase session revoked", slog.String("uid", uid))

	return nil
}
