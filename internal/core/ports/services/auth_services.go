package services

import "context"

// AuthService checks login attempts against the configured owner credential.
type AuthService interface {
	// Authenticate returns apperrors.ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, username, password string) error
}
