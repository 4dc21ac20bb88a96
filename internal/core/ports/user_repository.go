package ports

import (
	"context"

	"github.com/one-health/user-service/internal/core/domain"
)

// UserChangeset describes a partial update: nil fields are left untouched.
// PasswordHash, when set, carries an already-hashed secret.
type UserChangeset struct {
	Email        *string
	PhoneNumber  *string
	FullName     *string
	PasswordHash *string
	IsActive     *bool
}

// Empty reports whether the changeset names no fields at all.
func (c UserChangeset) Empty() bool {
	return c.Email == nil && c.PhoneNumber == nil && c.FullName == nil &&
		c.PasswordHash == nil && c.IsActive == nil
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailOrPhone tries the same value against both the email and the
	// phone number fields (logical OR).
	FindByEmailOrPhone(ctx context.Context, value string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies only the set fields of the changeset and returns the
	// updated record.
	Update(ctx context.Context, id string, changes UserChangeset) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
}

// RoleRepository resolves and stores user-to-role assignments.
// At most one assignment exists per user.
type RoleRepository interface {
	// FindAssignmentByUserID returns (nil, nil) when the user has no assignment.
	FindAssignmentByUserID(ctx context.Context, userID string) (*domain.RoleAssignment, error)
	Assign(ctx context.Context, assignment *domain.RoleAssignment) error
}
