package ports

import (
	"context"

	"github.com/one-health/user-service/internal/core/domain"
)

// CaseRepository defines persistence operations for doctor cases.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.DoctorCase) error
	FindByCaseID(ctx context.Context, caseID string) (*domain.DoctorCase, error)
	// ListByStatus returns up to limit cases with the given status, starting
	// at the skip offset, ordered by creation time.
	ListByStatus(ctx context.Context, status domain.CaseStatus, skip, limit int) ([]*domain.DoctorCase, error)
	CountByStatus(ctx context.Context, status domain.CaseStatus) (int64, error)
}
