package domain

import (
	"errors"
	"time"
)

var ErrCaseNotFound = errors.New("case not found")

// CaseStatus is the free-form status string stored on a doctor case.
type CaseStatus string

const (
	CaseStatusOpen     CaseStatus = "open"
	CaseStatusReviewed CaseStatus = "reviewed"
	CaseStatusClosed   CaseStatus = "closed"
)

// DoctorCase links a doctor to a patient with free-text insights.
// No lifecycle machine exists beyond creation and timestamp bookkeeping.
type DoctorCase struct {
	CaseID        string     `json:"case_id" bson:"_id,omitempty"`
	DoctorUserID  string     `json:"doctor_user_id" bson:"doctor_user_id"`
	PatientUserID string     `json:"patient_user_id" bson:"patient_user_id"`
	Insights      string     `json:"insights" bson:"insights"`
	Status        CaseStatus `json:"status" bson:"status"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" bson:"updated_at"`
}
