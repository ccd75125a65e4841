package services

import (
	"context"
	"testing"

	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/config"
	"careerhub/internal/core/domain"
	"careerhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	users := repositories.NewUserRepository(db)
	tokens := repositories.NewRefreshTokenRepository(db)
	return NewAuthService(users, tokens, cfg), NewUserService(users, tokens)
}

func registerInput() *RegisterInput {
	return &RegisterInput{
		Email:    "  Jane@Example.com ",
		Password: "correct-horse",
		Name:     "Jane Doe",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	resp, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, string(domain.RoleUser), resp.User.Role)
	assert.Equal(t, string(domain.UserTypeIndividual), resp.User.UserType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := auth.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = auth.Register(ctx, registerInput())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	login, err := auth.Login(ctx, &LoginInput{Email: "JANE@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = auth.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = auth.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register(context.Background(), &RegisterInput{
		Email:    "not-an-email",
		Password: "short",
		UserType: "corporate",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ElementsMatch(t, []string{"email", "password", "name", "company_name"}, fieldNames(err))
}

func TestRefreshToken_Rotates(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	resp, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)

	refreshed, err := auth.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	_, err = auth.RefreshToken(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = auth.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, auth.Logout(ctx, refreshed.RefreshToken))
	_, err = auth.RefreshToken(ctx, refreshed.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogin_InactiveUser(t *testing.T) {
	auth, users := newAuthService(t)
	ctx := context.Background()

	admin, err := auth.Register(ctx, &RegisterInput{Email: "admin@example.com", Password: "correct-horse", Name: "Admin"})
	require.NoError(t, err)
	user, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = users.UpdateUserByAdmin(ctx, user.User.ID, admin.User.ID, &UpdateUserByAdminInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrUserInactive)

	_, err = auth.RefreshToken(ctx, user.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}
