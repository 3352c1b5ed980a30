package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Company struct {
	Id          uuid.UUID `db:"id"`
	UserId      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Industry    string    `db:"industry"`
	Description string    `db:"description"`
	LogoUrl     *string   `db:"logo_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CompanySummary is the public part of a company joined onto tenders and applications.
// Description is only selected where the caller asks for it.
type CompanySummary struct {
	Id          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Industry    string    `db:"industry"`
	Description string    `db:"description"`
	LogoUrl     *string   `db:"logo_url"`
}

// service + repo input model
type CompanyInput struct {
	UserId      uuid.UUID // set from identity
	Name        string
	Industry    string
	Description string
}

type LogoUpload struct {
	Data        []byte
	Size        int64
	ContentType string
	Filename    string
}

// controller model
type CompanyOutputModel struct {
	Id          string  `json:"id"`
	UserId      string  `json:"user_id"`
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Description string  `json:"description"`
	LogoUrl     *string `json:"logo_url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CompanySummaryOutputModel struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Description string  `json:"description,omitempty"`
	LogoUrl     *string `json:"logo_url"`
}

type CompanyDetailsOutputModel struct {
	Company       CompanyOutputModel        `json:"company"`
	GoodsServices []GoodsServiceOutputModel `json:"goods_services"`
}

type CompanyPageOutputModel struct {
	Companies   []CompanyOutputModel `json:"companies"`
	TotalPages  int                  `json:"totalPages"`
	CurrentPage int                  `json:"currentPage"`
	TotalCount  int                  `json:"totalCount"`
}

type LogoOutputModel struct {
	LogoUrl string             `json:"logoUrl"`
	Company CompanyOutputModel `json:"company"`
}
