package ports

import (
	"context"
	"time"

	"github.com/one-health/user-service/internal/core/domain"
)

// CreateCaseInput carries the data for a new doctor case.
type CreateCaseInput struct {
	DoctorUserID  string
	PatientUserID string
	Insights      string
	Status        string
}

// CaseResult is returned after creating a case.
type CaseResult struct {
	CaseID    string
	Status    string
	CreatedAt time.Time
}

// ListCasesInput carries the page-based window for the case listing.
// Page and Limit are 1-based; skip is derived as (Page-1)*Limit.
type ListCasesInput struct {
	Status domain.CaseStatus
	Page   int
	Limit  int
}

// PaginatedCases wraps one page of cases with its window metadata.
// Total is the number of items in this page, not the overall matching count.
type PaginatedCases struct {
	Total int                  `json:"total"`
	Items []*domain.DoctorCase `json:"items"`
	Skip  int                  `json:"skip"`
	Limit int                  `json:"limit"`
}

// CaseService defines doctor case use cases.
type CaseService interface {
	CreateCase(ctx context.Context, input CreateCaseInput) (*CaseResult, error)
	GetCase(ctx context.Context, caseID string) (*domain.DoctorCase, error)
	ListCases(ctx context.Context, input ListCasesInput) (*PaginatedCases, error)
}
