package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type GoodsService struct {
	Id          uuid.UUID `db:"id"`
	CompanyId   uuid.UUID `db:"company_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// service + repo input model
type GoodsServiceInput struct {
	CompanyId   uuid.UUID // resolved from the caller's company
	Title       string
	Description string
}

// controller model
type GoodsServiceOutputModel struct {
	Id          string `json:"id"`
	CompanyId   string `json:"company_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
