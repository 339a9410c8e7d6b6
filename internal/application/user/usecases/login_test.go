package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IYair/disclosure-page-uac-sub000/internal/domain/user"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/authorization"
	appErrors "github.com/IYair/disclosure-page-uac-sub000/internal/shared/errors"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
)

type memUserRepo struct {
	byEmail map[string]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*user.User)}
}

func (r *memUserRepo) Save(ctx context.Context, u *user.User) error {
	r.byEmail[u.Email()] = u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range r.byEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, appErrors.NewNotFoundError("user not found")
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, appErrors.NewNotFoundError("user not found")
	}
	return u, nil
}

type stubVerifier struct {
	accept string
}

func (v *stubVerifier) Verify(password, hash string) error {
	if password != v.accept {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type stubIssuer struct {
	fail bool
}

func (i *stubIssuer) Generate(userID uint, role authorization.UserRole) (*TokenPair, error) {
	if i.fail {
		return nil, fmt.Errorf("signing failed")
	}
	return &TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", userID),
		RefreshToken: fmt.Sprintf("refresh-%d", userID),
		ExpiresIn:    900,
	}, nil
}

func loginFixture(t *testing.T) (*LoginUseCase, *memUserRepo) {
	t.Helper()

	repo := newMemUserRepo()
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	uc := NewLoginUseCase(repo, &stubVerifier{accept: "correct horse"}, &stubIssuer{}, log)

	u, err := user.NewUser("Ada", "ada@example.com", "$2a$12$hash", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, u.SetID(1))
	require.NoError(t, repo.Save(context.Background(), u))

	return uc, repo
}

func TestLoginUseCase_Success(t *testing.T) {
	uc, _ := loginFixture(t)

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "Ada@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-1", result.AccessToken)
	assert.Equal(t, "refresh-1", result.RefreshToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
	assert.Equal(t, "ada@example.com", result.User.Email)
	assert.Equal(t, "admin", result.User.Role)
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	uc, _ := loginFixture(t)

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginUseCase_UnknownEmailIsIndistinguishable(t *testing.T) {
	uc, _ := loginFixture(t)

	_, wrongPass := uc.Execute(context.Background(), LoginCommand{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	_, unknown := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "wrong",
	})

	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestLoginUseCase_Validation(t *testing.T) {
	uc, _ := loginFixture(t)

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: ""})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidationError(err))
}
