package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/one-health/user-service/internal/api/metrics"
	"github.com/one-health/user-service/internal/core/domain"
	"github.com/one-health/user-service/internal/core/ports"
)

// CaseHandler handles HTTP requests for doctor cases.
type CaseHandler struct {
	caseService ports.CaseService
}

func NewCaseHandler(caseService ports.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// Create registers a new doctor case.
//
// @Summary      Create a doctor case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCaseRequest  true  "Case details"
// @Success      201   {object}  createCaseResponse
// @Failure      422   {object}  errorResponse
// @Router       /cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.caseService.CreateCase(c.Request().Context(), ports.CreateCaseInput{
		DoctorUserID:  req.DoctorUserID,
		PatientUserID: req.PatientUserID,
		Insights:      req.Insights,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	metrics.CasesCreatedTotal.WithLabelValues(result.Status).Inc()

	return c.JSON(http.StatusCreated, createCaseResponse{
		CaseID:    result.CaseID,
		Status:    result.Status,
		CreatedAt: result.CreatedAt,
	})
}

// Get returns a doctor case by id.
//
// @Summary      Get a doctor case
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        case_id  path      string  true  "Case id"
// @Success      200      {object}  caseResponse
// @Failure      404      {object}  errorResponse
// @Router       /cases/{case_id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	dc, err := h.caseService.GetCase(c.Request().Context(), c.Param("case_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseResponse(dc))
}

// ListItems returns one page of cases matching a status filter.
//
// @Summary      List cases by status, paginated
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  true   "Case status filter"
// @Param        page    query     int     false  "1-based page number"  default(1)
// @Param        limit   query     int     false  "Page size"            default(10)
// @Success      200     {object}  paginatedItemsResponse
// @Router       /users/items/ [get]
func (h *CaseHandler) ListItems(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	start := time.Now()
	result, err := h.caseService.ListCases(c.Request().Context(), ports.ListCasesInput{
		Status: domain.CaseStatus(status),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	metrics.CaseListDuration.Observe(time.Since(start).Seconds())

	items := make([]caseResponse, 0, len(result.Items))
	for _, dc := range result.Items {
		items = append(items, toCaseResponse(dc))
	}

	return c.JSON(http.StatusOK, paginatedItemsResponse{
		Total: result.Total,
		Items: items,
		Skip:  result.Skip,
		Limit: result.Limit,
	})
}

func toCaseResponse(dc *domain.DoctorCase) caseResponse {
	return caseResponse{
		CaseID:        dc.CaseID,
		DoctorUserID:  dc.DoctorUserID,
		PatientUserID: dc.PatientUserID,
		Insights:      dc.Insights,
		Status:        string(dc.Status),
		CreatedAt:     dc.CreatedAt.UTC(),
		UpdatedAt:     dc.UpdatedAt.UTC(),
	}
}
