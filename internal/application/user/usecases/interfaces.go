package usecases

import (
	"context"

	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenPair carries the signed tokens issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenIssuer signs access and refresh tokens for an authenticated user.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
