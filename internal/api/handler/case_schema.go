package handler

import "time"

type createCaseRequest struct {
	DoctorUserID  string `json:"doctor_user_id"  validate:"required"`
	PatientUserID string `json:"patient_user_id" validate:"required"`
	Insights      string `json:"insights"`
	Status        string `json:"status" validate:"omitempty,oneof=open reviewed closed"`
}

type createCaseResponse struct {
	CaseID    string    `json:"case_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type caseResponse struct {
	CaseID        string    `json:"case_id"`
	DoctorUserID  string    `json:"doctor_user_id"`
	PatientUserID string    `json:"patient_user_id"`
	Insights      string    `json:"insights"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// paginatedItemsResponse wraps one page of cases with its skip/limit window.
type paginatedItemsResponse struct {
	Total int            `json:"total"`
	Items []caseResponse `json:"items"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}
