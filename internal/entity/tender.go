package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Tender struct {
	Id          uuid.UUID      `db:"id"`
	CompanyId   uuid.UUID      `db:"company_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Deadline    time.Time      `db:"deadline"`
	Budget      *float64       `db:"budget"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	Company     CompanySummary `db:"companies"`
}

// TenderSummary is the part of a tender joined onto applications.
type TenderSummary struct {
	Id        uuid.UUID      `db:"id"`
	CompanyId uuid.UUID      `db:"company_id"`
	Title     string         `db:"title"`
	Deadline  time.Time      `db:"deadline"`
	Budget    *float64       `db:"budget"`
	Status    string         `db:"status"`
	Company   CompanySummary `db:"companies"`
}

// service + repo input model
type TenderInput struct {
	CompanyId   uuid.UUID // resolved from the caller's company
	Title       string
	Description string
	Deadline    time.Time
	Budget      *float64
	// Status is always "active" on create
}

// controller model
type TenderOutputModel struct {
	Id          string                     `json:"id"`
	CompanyId   string                     `json:"company_id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Deadline    string                     `json:"deadline"`
	Budget      *float64                   `json:"budget"`
	Status      string                     `json:"status"`
	Expired     bool                       `json:"expired"`
	DaysLeft    int                        `json:"days_left"`
	CreatedAt   string                     `json:"created_at"`
	UpdatedAt   string                     `json:"updated_at"`
	Company     *CompanySummaryOutputModel `json:"companies,omitempty"`
}

type TenderSummaryOutputModel struct {
	Id       string                     `json:"id"`
	Title    string                     `json:"title"`
	Deadline string                     `json:"deadline"`
	Budget   *float64                   `json:"budget"`
	Status   string                     `json:"status"`
	Expired  bool                       `json:"expired"`
	Company  *CompanySummaryOutputModel `json:"companies,omitempty"`
}

type TenderPageOutputModel struct {
	Tenders     []TenderOutputModel `json:"tenders"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
	TotalCount  int                 `json:"totalCount"`
}
