package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

// UserService implements account creation, profile access and updates.
type UserService struct {
	users            ports.UserRepository
	roles            ports.RoleRepository
	openRegistration bool
	log              zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, openRegistration bool, log zerolog.Logger) *UserService {
	return &UserService{
		users:            users,
		roles:            roles,
		openRegistration: openRegistration,
		log:              log,
	}
}

// Register creates a new account with a hashed secret. The email must not be
// registered yet.
func (s *UserService) Register(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if input.RoleID != 0 {
		assignment := &domain.RoleAssignment{UserID: created.ID, RoleID: input.RoleID}
		if err := s.roles.Assign(ctx, assignment); err != nil {
			s.log.Warn().Err(err).Str("user_id", created.ID).Msg("failed to assign role")
		}
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// RegisterOpen is self-service registration, gated by configuration.
func (s *UserService) RegisterOpen(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !s.openRegistration {
		return nil, domain.ErrRegistrationClosed
	}
	input.RoleID = 0 // open sign-up never grants a role
	return s.Register(ctx, input)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Profile returns the user together with the resolved role display name.
func (s *UserService) Profile(ctx context.Context, userID string) (*ports.UserProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roleName := ""
	assignment, err := s.roles.FindAssignmentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assignment != nil {
		if role, ok := domain.RoleByID(assignment.RoleID); ok {
			roleName = role.Name
		}
	}

	return &ports.UserProfile{
		UserID:      user.ID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName,
		IsActive:    user.IsActive,
		Role:        roleName,
		CreatedAt:   user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// Update merges only the fields the changeset names into the stored record.
// Applying the same changeset twice yields the same final state.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	s.log.Info().Str("user_id", input.UserID).Msg("updating user")

	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	changes := ports.UserChangeset{
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		FullName:    input.FullName,
		IsActive:    input.IsActive,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		changes.PasswordHash = &hashed
	}

	return s.users.Update(ctx, input.UserID, changes)
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return s.users.List(ctx, skip, limit)
}
