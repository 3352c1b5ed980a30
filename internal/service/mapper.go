package service

import (
	"math"
	"time"

	"protender-api/internal/entity"
)

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func mapUser(u *entity.User) entity.UserOutputModel {
	return entity.UserOutputModel{
		Id:    u.Id.String(),
		Email: u.Email,
		Role:  u.Role,
	}
}

func mapIdentity(i *entity.Identity) entity.UserOutputModel {
	return entity.UserOutputModel{
		Id:    i.Id.String(),
		Email: i.Email,
		Role:  i.Role,
	}
}

func mapCompany(c *entity.Company) *entity.CompanyOutputModel {
	return &entity.CompanyOutputModel{
		Id:          c.Id.String(),
		UserId:      c.UserId.String(),
		Name:        c.Name,
		Industry:    c.Industry,
		Description: c.Description,
		LogoUrl:     c.LogoUrl,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func mapCompanies(c []entity.Company) []entity.CompanyOutputModel {
	s := make([]entity.CompanyOutputModel, 0, len(c))
	for i := range c {
		s = append(s, *mapCompany(&c[i]))
	}

	return s
}

func mapCompanySummary(c *entity.CompanySummary) *entity.CompanySummaryOutputModel {
	return &entity.CompanySummaryOutputModel{
		Id:          c.Id.String(),
		Name:        c.Name,
		Industry:    c.Industry,
		Description: c.Description,
		LogoUrl:     c.LogoUrl,
	}
}

func mapGoodsService(g *entity.GoodsService) *entity.GoodsServiceOutputModel {
	return &entity.GoodsServiceOutputModel{
		Id:          g.Id.String(),
		CompanyId:   g.CompanyId.String(),
		Title:       g.Title,
		Description: g.Description,
		CreatedAt:   formatTime(g.CreatedAt),
		UpdatedAt:   formatTime(g.UpdatedAt),
	}
}

func mapGoodsServices(g []entity.GoodsService) []entity.GoodsServiceOutputModel {
	s := make([]entity.GoodsServiceOutputModel, 0, len(g))
	for i := range g {
		s = append(s, *mapGoodsService(&g[i]))
	}

	return s
}

// expiry derives the read-time state of a deadline: expired once now is past it,
// otherwise the number of started days left.
func expiry(deadline, now time.Time) (bool, int) {
	if now.After(deadline) {
		return true, 0
	}

	return false, int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

func mapTender(t *entity.Tender, now time.Time) *entity.TenderOutputModel {
	expired, daysLeft := expiry(t.Deadline, now)

	return &entity.TenderOutputModel{
		Id:          t.Id.String(),
		CompanyId:   t.CompanyId.String(),
		Title:       t.Title,
		Description: t.Description,
		Deadline:    formatTime(t.Deadline),
		Budget:      t.Budget,
		Status:      t.Status,
		Expired:     expired,
		DaysLeft:    daysLeft,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
		Company:     mapCompanySummary(&t.Company),
	}
}

func mapTenders(t []entity.Tender, now time.Time) []entity.TenderOutputModel {
	s := make([]entity.TenderOutputModel, 0, len(t))
	for i := range t {
		s = append(s, *mapTender(&t[i], now))
	}

	return s
}

func mapTenderSummary(t *entity.TenderSummary, now time.Time) *entity.TenderSummaryOutputModel {
	expired, _ := expiry(t.Deadline, now)

	return &entity.TenderSummaryOutputModel{
		Id:       t.Id.String(),
		Title:    t.Title,
		Deadline: formatTime(t.Deadline),
		Budget:   t.Budget,
		Status:   t.Status,
		Expired:  expired,
		Company:  mapCompanySummary(&t.Company),
	}
}

func mapApplication(a *entity.Application, now time.Time) *entity.ApplicationOutputModel {
	return &entity.ApplicationOutputModel{
		Id:                 a.Id.String(),
		TenderId:           a.TenderId.String(),
		ApplicantCompanyId: a.ApplicantCompanyId.String(),
		Proposal:           a.Proposal,
		Status:             a.Status,
		CreatedAt:          formatTime(a.CreatedAt),
		UpdatedAt:          formatTime(a.UpdatedAt),
		Tender:             mapTenderSummary(&a.Tender, now),
		Company:            mapCompanySummary(&a.Company),
	}
}

func mapApplications(a []entity.Application, now time.Time) []entity.ApplicationOutputModel {
	s := make([]entity.ApplicationOutputModel, 0, len(a))
	for i := range a {
		s = append(s, *mapApplication(&a[i], now))
	}

	return s
}
