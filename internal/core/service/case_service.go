package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

// CaseService implements doctor case creation and paginated listing.
type CaseService struct {
	repo ports.CaseRepository
	log  zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, log zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, log: log}
}

// CreateCase persists a new doctor case with a generated case id.
func (s *CaseService) CreateCase(ctx context.Context, input ports.CreateCaseInput) (*ports.CaseResult, error) {
	status := domain.CaseStatus(input.Status)
	if status == "" {
		status = domain.CaseStatusOpen
	}

	now := time.Now().UTC()
	c := &domain.DoctorCase{
		CaseID:        primitive.NewObjectID().Hex(),
		DoctorUserID:  input.DoctorUserID,
		PatientUserID: input.PatientUserID,
		Insights:      input.Insights,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Msg("failed to create case")
		return nil, err
	}

	s.log.Info().Str("case_id", c.CaseID).Str("doctor_user_id", c.DoctorUserID).Msg("case created")

	return &ports.CaseResult{
		CaseID:    c.CaseID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}, nil
}

func (s *CaseService) GetCase(ctx context.Context, caseID string) (*domain.DoctorCase, error) {
	return s.repo.FindByCaseID(ctx, caseID)
}

// ListCases fetches one page of cases matching the status filter.
// The skip offset is computed from the 1-based page number; Total reflects the
// size of the returned page only.
func (s *CaseService) ListCases(ctx context.Context, input ports.ListCasesInput) (*ports.PaginatedCases, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	items, err := s.repo.ListByStatus(ctx, input.Status, skip, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.DoctorCase{}
	}

	return &ports.PaginatedCases{
		Total: len(items),
		Items: items,
		Skip:  skip,
		Limit: limit,
	}, nil
}
