package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"luxestate/internal/auth"
	"luxestate/internal/config"
	"luxestate/internal/models"
)

func newTestAuthService(allowAdmin bool) (AuthService, *MockUserRepository, *MockTokenIssuer) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	cfg := &config.Config{AllowAdminRegistration: allowAdmin}

	return NewAuthService(users, auth.NewPasswordHasher(bcrypt.MinCost), tokens, cfg), users, tokens
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults role to client", func(t *testing.T) {
		svc, users, tokens := newTestAuthService(false)

		users.On("GetUserByEmail", ctx, "new@example.com").Return(nil, models.ErrNotFound)
		users.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "new@example.com" && u.Role == models.RoleClient && u.PasswordHash != "secret1"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = "u-1"
		}).Return(nil)
		tokens.On("Issue", "u-1").Return("token-1", nil)

		result, err := svc.Register(ctx, RegisterRequest{Email: " new@example.com ", Password: "secret1", Name: "New"})

		require.NoError(t, err)
		assert.Equal(t, "token-1", result.Token)
		assert.Equal(t, models.RoleClient, result.User.Role)
		assert.True(t, auth.NewPasswordHasher(bcrypt.MinCost).Verify("secret1", result.User.PasswordHash))
		users.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("seller role accepted", func(t *testing.T) {
		svc, users, tokens := newTestAuthService(false)

		users.On("GetUserByEmail", ctx, "s@example.com").Return(nil, models.ErrNotFound)
		users.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil)
		tokens.On("Issue", mock.Anything).Return("tok", nil)

		result, err := svc.Register(ctx, RegisterRequest{Email: "s@example.com", Password: "pw", Name: "S", Role: "Seller"})

		require.NoError(t, err)
		assert.Equal(t, models.RoleSeller, result.User.Role)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc, users, _ := newTestAuthService(false)

		users.On("GetUserByEmail", ctx, "taken@example.com").
			Return(&models.User{ID: "u-0", Email: "taken@example.com"}, nil)

		result, err := svc.Register(ctx, RegisterRequest{Email: "taken@example.com", Password: "pw", Name: "T"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, models.ErrConflict)
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("concurrent duplicate caught by store", func(t *testing.T) {
		svc, users, _ := newTestAuthService(false)

		users.On("GetUserByEmail", ctx, "race@example.com").Return(nil, models.ErrNotFound)
		users.On("CreateUser", ctx, mock.Anything).
			Return(fmt.Errorf("create user race@example.com: %w", models.ErrConflict))

		_, err := svc.Register(ctx, RegisterRequest{Email: "race@example.com", Password: "pw", Name: "R"})

		assert.ErrorIs(t, err, models.ErrConflict)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _, _ := newTestAuthService(false)

		_, err := svc.Register(ctx, RegisterRequest{Email: "a@example.com", Password: "pw", Name: "A", Role: "superuser"})

		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("admin self registration disabled", func(t *testing.T) {
		svc, users, _ := newTestAuthService(false)

		_, err := svc.Register(ctx, RegisterRequest{Email: "a@example.com", Password: "pw", Name: "A", Role: "admin"})

		assert.ErrorIs(t, err, models.ErrValidation)
		users.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("admin self registration enabled", func(t *testing.T) {
		svc, users, tokens := newTestAuthService(true)

		users.On("GetUserByEmail", ctx, "a@example.com").Return(nil, models.ErrNotFound)
		users.On("CreateUser", ctx, mock.Anything).Return(nil)
		tokens.On("Issue", mock.Anything).Return("tok", nil)

		result, err := svc.Register(ctx, RegisterRequest{Email: "a@example.com", Password: "pw", Name: "A", Role: "admin"})

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, result.User.Role)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _ := newTestAuthService(false)

		_, err := svc.Register(ctx, RegisterRequest{Email: "a@example.com", Name: "A"})

		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("password longer than bcrypt limit", func(t *testing.T) {
		svc, users, _ := newTestAuthService(false)

		_, err := svc.Register(ctx, RegisterRequest{Email: "long@example.com", Password: strings.Repeat("a", 73), Name: "L"})

		assert.ErrorIs(t, err, models.ErrValidation)
		users.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure is not a conflict", func(t *testing.T) {
		svc, users, _ := newTestAuthService(false)

		users.On("GetUserByEmail", ctx, "a@example.com").Return(nil, errors.New("db down"))

		_, err := svc.Register(ctx, RegisterRequest{Email: "a@example.com", Password: "pw", Name: "A"})

		require.Error(t, err)
		assert.False(t, errors.Is(err, models.ErrConflict))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("correct-horse")
	require.NoError(t, err)

	stored := &models.User{ID: "u-1", Email: "user@example.com", Role: models.RoleSeller, PasswordHash: hash}

	t.Run("valid credentials", func(t *testing.T) {
		svc, users, tokens := newTestAuthService(false)
		users.On("GetUserByEmail", ctx, "user@example.com").Return(stored, nil)
		tokens.On("Issue", "u-1").Return("tok", nil)

		result, err := svc.Login(ctx, "user@example.com", "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, "tok", result.Token)
		assert.Equal(t, "u-1", result.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, tokens := newTestAuthService(false)
		users.On("GetUserByEmail", ctx, "user@example.com").Return(stored, nil)

		result, err := svc.Login(ctx, "user@example.com", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, users, _ := newTestAuthService(false)
		users.On("GetUserByEmail", ctx, "ghost@example.com").Return(nil, models.ErrNotFound)

		_, err := svc.Login(ctx, "ghost@example.com", "correct-horse")

		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})

	t.Run("issue failure", func(t *testing.T) {
		svc, users, tokens := newTestAuthService(false)
		users.On("GetUserByEmail", ctx, "user@example.com").Return(stored, nil)
		tokens.On("Issue", "u-1").Return("", errors.New("boom"))

		_, err := svc.Login(ctx, "user@example.com", "correct-horse")

		require.Error(t, err)
		assert.False(t, errors.Is(err, models.ErrUnauthenticated))
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees users", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("ListUsers", ctx).Return([]models.User{{ID: "u-1"}, {ID: "u-2"}}, nil)

		list, err := NewUserService(users).List(ctx, &models.User{ID: "a", Role: models.RoleAdmin})

		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("seller forbidden", func(t *testing.T) {
		users := new(MockUserRepository)

		_, err := NewUserService(users).List(ctx, &models.User{ID: "s", Role: models.RoleSeller})

		assert.ErrorIs(t, err, models.ErrForbidden)
		users.AssertNotCalled(t, "ListUsers", mock.Anything)
	})

	t.Run("anonymous unauthenticated", func(t *testing.T) {
		_, err := NewUserService(new(MockUserRepository)).List(ctx, nil)

		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})
}
