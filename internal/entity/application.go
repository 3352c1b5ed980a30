package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Application struct {
	Id                 uuid.UUID      `db:"id"`
	TenderId           uuid.UUID      `db:"tender_id"`
	ApplicantCompanyId uuid.UUID      `db:"applicant_company_id"`
	Proposal           string         `db:"proposal"`
	Status             string         `db:"status"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	Tender             TenderSummary  `db:"tenders"`
	Company            CompanySummary `db:"companies"`
}

// service + repo input model
type CreateApplicationInput struct {
	TenderId           uuid.UUID // given
	ApplicantCompanyId uuid.UUID // resolved from the caller's company
	Proposal           string    // given
	// Status is always "pending" on create
}

// controller model
type ApplicationOutputModel struct {
	Id                 string                     `json:"id"`
	TenderId           string                     `json:"tender_id"`
	ApplicantCompanyId string                     `json:"applicant_company_id"`
	Proposal           string                     `json:"proposal"`
	Status             string                     `json:"status"`
	CreatedAt          string                     `json:"created_at"`
	UpdatedAt          string                     `json:"updated_at"`
	Tender             *TenderSummaryOutputModel  `json:"tenders,omitempty"`
	Company            *CompanySummaryOutputModel `json:"companies,omitempty"`
}
