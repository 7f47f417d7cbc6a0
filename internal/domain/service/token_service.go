package service

// TokenService issues and validates the access tokens the HTTP layer uses to
// associate requests with a session.
type TokenService interface {
	// GenerateToken creates a signed access token for the given uid.
	GenerateToken(uid string) (string, error)

	// ValidateToken checks the token and returns the uid it carries.
	ValidateToken(tokenString string) (string, error)
}
