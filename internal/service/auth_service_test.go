package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/planroom/teamplan-api/internal/config"
	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/service/auth"
	"github.com/planroom/teamplan-api/internal/store"
)

func newTestAuthService(t *testing.T, users store.UserStore) *AuthService {
	t.Helper()

	tokens, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	})
	require.NoError(t, err)

	return NewAuthService(users, auth.NewBcryptVerifier(), tokens, testLogger())
}

func seedUser(t *testing.T, users *mockUserStore, username, password string, role domain.Role) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:             uuid.New(),
		Email:          username + "@example.com",
		Username:       username,
		HashedPassword: string(hash),
		Role:           role,
	}
	users.users[user.ID] = user
	return user
}

func TestAuthService_SignUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("new accounts start as members with a token pair", func(t *testing.T) {
		t.Parallel()

		users := newMockUserStore()
		svc := newTestAuthService(t, users)

		result, err := svc.SignUp(ctx, "new@example.com", "newuser", "a-long-enough-password")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, result.User.Role)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
	})

	t.Run("duplicate email surfaces store error", func(t *testing.T) {
		t.Parallel()

		users := newMockUserStore()
		svc := newTestAuthService(t, users)

		_, err := svc.SignUp(ctx, "dup@example.com", "first", "a-long-enough-password")
		require.NoError(t, err)

		_, err = svc.SignUp(ctx, "dup@example.com", "second", "a-long-enough-password")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("short password rejected", func(t *testing.T) {
		t.Parallel()

		users := newMockUserStore()
		svc := newTestAuthService(t, users)

		_, err := svc.SignUp(ctx, "short@example.com", "shorty", "tiny")
		require.Error(t, err)
	})
}

func TestAuthService_LogIn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid credentials return tokens carrying the role", func(t *testing.T) {
		t.Parallel()

		users := newMockUserStore()
		svc := newTestAuthService(t, users)
		seedUser(t, users, "alice", "correct-horse-battery", domain.RoleManager)

		result, err := svc.LogIn(ctx, "alice", "correct-horse-battery")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, result.User.Role)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("email works as the login identifier", func(t *testing.T) {
		t.Parallel()

		users := newMockUserStore()
		svc := newTestAuthService(t, users)
		seedUser(t, users, "alice", "correct-horse-battery", domain.RoleMember)

		result, err := svc.LogIn(ctx, "alice@example.com", "correct-horse-battery")
		require.NoError(t, err)
		assert.Equal(t, "alice", result.User.Username)

		_, err = svc.LogIn(ctx, "nobody@example.com", "correct-horse-battery")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password and unknown username are indistinguishable", func(t *testing.T) {
		t.Parallel()

		users := newMockUserStore()
		svc := newTestAuthService(t, users)
		seedUser(t, users, "alice", "correct-horse-battery", domain.RoleMember)

		_, errWrongPassword := svc.LogIn(ctx, "alice", "wrong-password")
		_, errUnknownUser := svc.LogIn(ctx, "nobody", "whatever")

		assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword, errUnknownUser)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := newMockUserStore()
	svc := newTestAuthService(t, users)
	user := seedUser(t, users, "alice", "correct-horse-battery", domain.RoleMember)

	result, err := svc.LogIn(ctx, "alice", "correct-horse-battery")
	require.NoError(t, err)

	t.Run("refresh issues a new pair with the current role", func(t *testing.T) {
		// Promote between login and refresh; the new tokens carry the new role.
		require.NoError(t, users.UpdateRole(ctx, user.ID, domain.RoleManager))

		refreshed, err := svc.Refresh(ctx, result.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, refreshed.User.Role)
	})

	t.Run("garbage refresh token rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "garbage")
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, user.ID))

		_, err := svc.Refresh(ctx, result.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ChangeUserRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := newMockUserStore()
	svc := newTestAuthService(t, users)
	target := seedUser(t, users, "bob", "correct-horse-battery", domain.RoleMember)

	t.Run("non-admin denied", func(t *testing.T) {
		err := svc.ChangeUserRole(ctx, managerActor(), target.ID, domain.RoleManager)
		assert.ErrorIs(t, err, ErrPolicyDenied)
	})

	t.Run("admin may promote", func(t *testing.T) {
		err := svc.ChangeUserRole(ctx, adminActor(), target.ID, domain.RoleManager)
		require.NoError(t, err)

		got, err := users.GetByID(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, got.Role)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		err := svc.ChangeUserRole(ctx, adminActor(), target.ID, domain.Role("superuser"))
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestAuthService_DeleteUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := newMockUserStore()
	svc := newTestAuthService(t, users)
	target := seedUser(t, users, "bob", "correct-horse-battery", domain.RoleMember)

	t.Run("non-admin denied", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteUser(ctx, managerActor(), target.ID), ErrPolicyDenied)
		assert.ErrorIs(t, svc.DeleteUser(ctx, memberActor(), target.ID), ErrPolicyDenied)

		_, err := users.GetByID(ctx, target.ID)
		require.NoError(t, err, "denied deletion must not touch the store")
	})

	t.Run("admin cannot delete their own account", func(t *testing.T) {
		admin := adminActor()
		assert.ErrorIs(t, svc.DeleteUser(ctx, admin, admin.ID), ErrPolicyDenied)
	})

	t.Run("admin deletes another user", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, adminActor(), target.ID))

		_, err := users.GetByID(ctx, target.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("unknown user yields not found", func(t *testing.T) {
		err := svc.DeleteUser(ctx, adminActor(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
