package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/IYair/disclosure-page-uac-sub000/internal/application/user/dto"
	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/user"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/utils"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         *dto.UserDTO
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	users    user.Repository
	verifier PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	users user.Repository,
	verifier PasswordVerifier,
	tokens TokenIssuer,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		users:    users,
		verifier: verifier,
		tokens:   tokens,
		logger:   log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, appErrors.NewValidationError("email and password are required")
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		// Generic error so the response does not reveal whether the
		// email is registered.
		if appErrors.IsNotFoundError(err) {
			return nil, appErrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.verifier.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		return nil, appErrors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", existing.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in",
		"user_id", existing.ID(),
		"email", utils.MaskEmail(existing.Email()),
		"role", existing.Role().String(),
	)

	return &LoginResult{
		User:         dto.FromUser(existing),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
