package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/platform/logger"
	"github.com/planroom/teamplan-api/internal/service/auth"
	"github.com/planroom/teamplan-api/internal/store"
)

// AuthResult bundles a signed-in user with their token pair.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthService handles account creation and session management. Account and
// session operations are open to every caller, so no policy check runs here.
type AuthService struct {
	users    store.UserStore
	verifier auth.PasswordVerifier
	tokens   auth.JWTService
	logger   *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users store.UserStore,
	verifier auth.PasswordVerifier,
	tokens auth.JWTService,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		verifier: verifier,
		tokens:   tokens,
		logger:   log,
	}
}

// SignUp registers a new account. New accounts always start as members;
// roles are only raised afterwards by an admin.
func (s *AuthService) SignUp(ctx context.Context, email, username, password string) (*AuthResult, error) {
	user, err := domain.NewUser(email, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))

	return s.issueTokens(ctx, user)
}

// LogIn authenticates a user by username or email plus password. The
// password check is a constant-time bcrypt comparison; unknown identifiers
// and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) LogIn(ctx context.Context, identifier, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.lookupByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown identifier")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))

	return s.issueTokens(ctx, user)
}

// lookupByIdentifier resolves a login identifier to a user. Identifiers
// containing "@" are treated as email addresses with a username fallback,
// since usernames themselves cannot contain "@".
func (s *AuthService) lookupByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if strings.Contains(identifier, "@") {
		user, err := s.users.GetByEmail(ctx, identifier)
		if err == nil || !errors.Is(err, store.ErrUserNotFound) {
			return user, err
		}
	}
	return s.users.GetByUsername(ctx, identifier)
}

// Refresh exchanges a valid refresh token for a new token pair. The user is
// reloaded so a role change since the last sign-in takes effect here.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// ChangeUserRole sets another user's role. Admin only.
func (s *AuthService) ChangeUserRole(
	ctx context.Context,
	actor Actor,
	userID uuid.UUID,
	role domain.Role,
) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: role %q cannot change user roles", ErrPolicyDenied, actor.Role)
	}

	if !role.IsValid() {
		return domain.ErrInvalidRole
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("user role changed",
		slog.String("user_id", userID.String()),
		slog.String("new_role", string(role)),
		slog.String("changed_by", actor.ID.String()))

	return nil
}

// DeleteUser removes an account. Admin only, and admins cannot delete
// themselves so a deployment always keeps at least its acting admin.
func (s *AuthService) DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) error {
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: role %q cannot delete users", ErrPolicyDenied, actor.Role)
	}
	if actor.ID == userID {
		return fmt.Errorf("%w: admins cannot delete their own account", ErrPolicyDenied)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("user deleted",
		slog.String("user_id", userID.String()),
		slog.String("deleted_by", actor.ID.String()))

	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	access, err := s.tokens.GenerateToken(ctx, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(ctx, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResult{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
