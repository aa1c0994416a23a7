package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/utils"
)

// authService checks logins against one static owner credential.
type authService struct {
	BaseService
	username     string
	passwordHash string
}

// NewAuthService builds an AuthService. When passwordHash is empty the
// plaintext password is hashed once here so it is never compared directly.
func NewAuthService(username, password, passwordHash string) (portssvc.AuthService, error) {
	if passwordHash == "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash configured password: %w", err)
		}
		passwordHash = hash
	}
	return &authService{username: username, passwordHash: passwordHash}, nil
}

var _ portssvc.AuthService = (*authService)(nil)

func (s *authService) Authenticate(ctx context.Context, username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// bcrypt NUL-terminates the key and reads at most 72 bytes of it, so
	// longer or NUL-carrying input could match a different password.
	passOK := len(password) <= utils.MaxPasswordBytes && !strings.ContainsRune(password, 0)
	// bcrypt runs even when the username is already wrong.
	passOK = utils.CheckPasswordHash(password, s.passwordHash) && passOK
	if !userOK || !passOK {
		s.LogInfo(ctx, "Login rejected", slog.String("username", username))
		return apperrors.ErrInvalidCredentials
	}
	s.LogInfo(ctx, "Login accepted", slog.String("username", username))
	return nil
}
