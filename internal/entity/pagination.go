package entity

import (
	"math"

	"protender-api/internal/common"
)

type PaginationInput struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaginationInput falls back to the defaults for a page or limit below 1,
// caps the limit, and caps the page so the offset cannot overflow.
func NewPaginationInput(page int, limit int) *PaginationInput {
	if page < 1 {
		page = common.DefaultPage
	}
	if limit < 1 {
		limit = common.DefaultPageLimit
	}
	if limit > common.MaxPageLimit {
		limit = common.MaxPageLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return &PaginationInput{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// TotalPages is ceil(count/limit).
func (p *PaginationInput) TotalPages(count int) int {
	if count <= 0 {
		return 0
	}

	return (count + p.Limit - 1) / p.Limit
}
