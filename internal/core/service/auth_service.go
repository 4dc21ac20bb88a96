package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

// SessionStore abstracts the session tracking backend (Redis).
type SessionStore interface {
	Store(ctx context.Context, userID string) error
	Clear(ctx context.Context, userID string) error
}

// AuthService implements credential login and logout.
type AuthService struct {
	users     ports.UserRepository
	roles     ports.RoleRepository
	sessions  SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	sessions SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		roles:     roles,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Authenticate resolves a user by email or phone, verifies the password and
// matches the claimed role against the stored assignment.
func (s *AuthService) Authenticate(ctx context.Context, input ports.AuthenticateInput) (*ports.AuthResult, error) {
	s.log.Info().Str("identifier", input.Identifier).Msg("login attempt")

	user, err := s.users.FindByEmailOrPhone(ctx, input.Identifier)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// An absent assignment cannot match any claimed role.
	assignment, err := s.roles.FindAssignmentByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if assignment == nil || assignment.RoleID != input.ClaimedRoleID {
		return nil, domain.ErrRoleMismatch
	}

	token, err := s.generateToken(user, assignment.RoleID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Store(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record session")
	}

	return &ports.AuthResult{UserID: user.ID, Token: token}, nil
}

// Logout reports success unconditionally: it validates nothing and clears the
// session entry best-effort.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	if err := s.sessions.Clear(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to clear session")
	}
}

func (s *AuthService) generateToken(user *domain.User, roleID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role_id": roleID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
