package ports

import (
	"context"

	"github.com/one-health/user-service/internal/core/domain"
)

// CreateUserInput carries the data for a new account.
type CreateUserInput struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	RoleID      int // 0 = no assignment
}

// UpdateUserInput is the service-level changeset: nil fields are left alone.
type UpdateUserInput struct {
	UserID      string
	Email       *string
	PhoneNumber *string
	FullName    *string
	Password    *string
	IsActive    *bool
}

// UserProfile is the user view returned to callers, with the role display
// name resolved (empty when the user has no assignment).
type UserProfile struct {
	UserID      string
	Email       string
	PhoneNumber string
	FullName    string
	IsActive    bool
	Role        string
	CreatedAt   string
	UpdatedAt   string
}

// UserService defines account management use cases.
type UserService interface {
	// Register creates an account; fails with domain.ErrUserExists when the
	// email is already registered.
	Register(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// RegisterOpen is self-service registration, refused with
	// domain.ErrRegistrationClosed when disabled by configuration.
	RegisterOpen(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*UserProfile, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
}
