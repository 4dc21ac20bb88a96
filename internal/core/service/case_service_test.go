package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubCaseRepo struct {
	cases     map[string]*domain.DoctorCase
	createErr error
}

func newStubCaseRepo() *stubCaseRepo {
	return &stubCaseRepo{cases: make(map[string]*domain.DoctorCase)}
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.DoctorCase) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *c
	r.cases[c.CaseID] = &clone
	return nil
}

func (r *stubCaseRepo) FindByCaseID(_ context.Context, caseID string) (*domain.DoctorCase, error) {
	c, ok := r.cases[caseID]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	clone := *c
	return &clone, nil
}

// ListByStatus applies the same filter and window the real Mongo repo would use.
func (r *stubCaseRepo) ListByStatus(_ context.Context, status domain.CaseStatus, skip, limit int) ([]*domain.DoctorCase, error) {
	var matched []*domain.DoctorCase
	for _, c := range r.cases {
		if c.Status != status {
			continue
		}
		clone := *c
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	if skip > len(matched) {
		return []*domain.DoctorCase{}, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (r *stubCaseRepo) CountByStatus(_ context.Context, status domain.CaseStatus) (int64, error) {
	var n int64
	for _, c := range r.cases {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func seedCases(t *testing.T, svc *CaseService, n int, status string) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := svc.CreateCase(context.Background(), ports.CreateCaseInput{
			DoctorUserID:  "doc_1",
			PatientUserID: "pat_1",
			Insights:      "follow-up required",
			Status:        status,
		}); err != nil {
			t.Fatalf("seed case: %v", err)
		}
		time.Sleep(time.Millisecond) // distinct CreatedAt for ordering
	}
}

// ---------------------------------------------------------------------------
// CreateCase tests
// ---------------------------------------------------------------------------

func TestCaseService_Create_Success(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)

	result, err := svc.CreateCase(context.Background(), ports.CreateCaseInput{
		DoctorUserID:  "doc_42",
		PatientUserID: "pat_7",
		Insights:      "elevated blood pressure",
		Status:        "open",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.CaseID == "" {
		t.Fatal("expected a generated case id")
	}
	if result.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}

	stored := repo.cases[result.CaseID]
	if stored.DoctorUserID != "doc_42" || stored.PatientUserID != "pat_7" {
		t.Errorf("unexpected stored case: %+v", stored)
	}
	if !stored.UpdatedAt.Equal(stored.CreatedAt) {
		t.Error("UpdatedAt must equal CreatedAt on creation")
	}
}

func TestCaseService_Create_UniqueIDs(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		result, err := svc.CreateCase(context.Background(), ports.CreateCaseInput{Status: "open"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[result.CaseID] {
			t.Fatalf("duplicate case id generated: %s", result.CaseID)
		}
		seen[result.CaseID] = true
	}
}

func TestCaseService_Create_DefaultStatus(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)

	result, err := svc.CreateCase(context.Background(), ports.CreateCaseInput{
		DoctorUserID: "doc_1", PatientUserID: "pat_1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.Status != string(domain.CaseStatusOpen) {
		t.Errorf("expected default status %q, got %q", domain.CaseStatusOpen, result.Status)
	}
}

func TestCaseService_Create_RepoError(t *testing.T) {
	repo := newStubCaseRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewCaseService(repo, discardLogger)

	if _, err := svc.CreateCase(context.Background(), ports.CreateCaseInput{Status: "open"}); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// GetCase tests
// ---------------------------------------------------------------------------

func TestCaseService_Get_NotFound(t *testing.T) {
	svc := NewCaseService(newStubCaseRepo(), discardLogger)

	if _, err := svc.GetCase(context.Background(), "missing"); !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListCases tests
// ---------------------------------------------------------------------------

func TestCaseService_List_FirstPageWindow(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)
	seedCases(t, svc, 15, "open")

	res, err := svc.ListCases(context.Background(), ports.ListCasesInput{
		Status: domain.CaseStatusOpen, Page: 1, Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Skip != 0 {
		t.Errorf("page 1: expected skip 0, got %d", res.Skip)
	}
	if res.Limit != 10 {
		t.Errorf("expected limit 10, got %d", res.Limit)
	}
	if len(res.Items) != 10 {
		t.Errorf("expected 10 items, got %d", len(res.Items))
	}
	if res.Total != len(res.Items) {
		t.Errorf("total must equal the page size returned: total=%d items=%d", res.Total, len(res.Items))
	}
}

func TestCaseService_List_SecondPageWindow(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)
	seedCases(t, svc, 15, "open")

	res, err := svc.ListCases(context.Background(), ports.ListCasesInput{
		Status: domain.CaseStatusOpen, Page: 2, Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Skip != 10 {
		t.Errorf("page 2: expected skip 10, got %d", res.Skip)
	}
	if len(res.Items) != 5 {
		t.Errorf("expected 5 items on the last page, got %d", len(res.Items))
	}
	if res.Total != 5 {
		t.Errorf("total reflects this page only: expected 5, got %d", res.Total)
	}
}

func TestCaseService_List_ItemCountNeverExceedsLimit(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)
	seedCases(t, svc, 7, "open")

	for page := 1; page <= 4; page++ {
		res, err := svc.ListCases(context.Background(), ports.ListCasesInput{
			Status: domain.CaseStatusOpen, Page: page, Limit: 3,
		})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if len(res.Items) > 3 {
			t.Errorf("page %d: item count %d exceeds limit", page, len(res.Items))
		}
	}
}

func TestCaseService_List_FiltersByStatus(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)
	seedCases(t, svc, 3, "open")
	seedCases(t, svc, 2, "closed")

	res, err := svc.ListCases(context.Background(), ports.ListCasesInput{
		Status: domain.CaseStatusClosed, Page: 1, Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 closed cases, got %d", len(res.Items))
	}
	for _, c := range res.Items {
		if c.Status != domain.CaseStatusClosed {
			t.Errorf("unexpected status %q in filtered result", c.Status)
		}
	}
}

func TestCaseService_List_NormalizesPageAndLimit(t *testing.T) {
	repo := newStubCaseRepo()
	svc := NewCaseService(repo, discardLogger)
	seedCases(t, svc, 1, "open")

	res, err := svc.ListCases(context.Background(), ports.ListCasesInput{
		Status: domain.CaseStatusOpen, Page: 0, Limit: 0,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Skip != 0 {
		t.Errorf("expected skip 0, got %d", res.Skip)
	}
	if res.Limit != 10 {
		t.Errorf("expected default limit 10, got %d", res.Limit)
	}
}

func TestCaseService_List_EmptyPageIsNotNil(t *testing.T) {
	svc := NewCaseService(newStubCaseRepo(), discardLogger)

	res, err := svc.ListCases(context.Background(), ports.ListCasesInput{
		Status: domain.CaseStatusOpen, Page: 3, Limit: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Items == nil {
		t.Fatal("items must be an empty slice, not nil")
	}
	if res.Total != 0 {
		t.Errorf("expected total 0, got %d", res.Total)
	}
}
