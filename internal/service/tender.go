package service

import (
	"context"
	"errors"
	"time"

	"protender-api/internal/entity"
	"protender-api/internal/metrics"
	"protender-api/internal/repo"
	"protender-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type TenderService struct {
	tenderRepo  repo.Tender
	companyRepo repo.Company
	now         func() time.Time
}

func NewTenderService(repos *repo.Repositories, now func() time.Time) *TenderService {
	return &TenderService{
		tenderRepo:  repos.Tender,
		companyRepo: repos.Company,
		now:         now,
	}
}

func (s *TenderService) GetTenders(ctx context.Context, search string, pg *entity.PaginationInput) (*entity.TenderPageOutputModel, error) {
	tenders, count, err := s.tenderRepo.GetActiveTenders(ctx, search, pg)
	if err != nil {
		return nil, err
	}

	return &entity.TenderPageOutputModel{
		Tenders:     mapTenders(tenders, s.now()),
		TotalPages:  pg.TotalPages(count),
		CurrentPage: pg.Page,
		TotalCount:  count,
	}, nil
}

func (s *TenderService) GetTender(ctx context.Context, id uuid.UUID) (*entity.TenderOutputModel, error) {
	tender, err := s.tenderRepo.GetTenderById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	return mapTender(tender, s.now()), nil
}

func (s *TenderService) CreateTender(ctx context.Context, identity *entity.Identity, input *entity.TenderInput) (*entity.TenderOutputModel, error) {
	company, err := callerCompany(ctx, s.companyRepo, identity, ErrCompanyRequiredForTender)
	if err != nil {
		return nil, err
	}

	input.CompanyId = company.Id
	id, err := s.tenderRepo.CreateTender(ctx, input)
	if err != nil {
		return nil, err
	}
	metrics.RecordTenderCreated()

	return s.GetTender(ctx, id)
}

func (s *TenderService) UpdateTender(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.TenderInput) (*entity.TenderOutputModel, error) {
	if _, err := s.getOwnedTender(ctx, identity, id); err != nil {
		return nil, err
	}

	if err := s.tenderRepo.UpdateTender(ctx, id, input); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotOwned
		}

		return nil, err
	}

	return s.GetTender(ctx, id)
}

func (s *TenderService) DeleteTender(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	if _, err := s.getOwnedTender(ctx, identity, id); err != nil {
		return err
	}

	if err := s.tenderRepo.DeleteTender(ctx, id); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrTenderNotOwned
		}

		return err
	}

	return nil
}

func (s *TenderService) GetCompanyTenders(ctx context.Context, companyId uuid.UUID) ([]entity.TenderOutputModel, error) {
	tenders, err := s.tenderRepo.GetTendersByCompanyId(ctx, companyId)
	if err != nil {
		return nil, err
	}

	return mapTenders(tenders, s.now()), nil
}

func (s *TenderService) getOwnedTender(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Tender, error) {
	company, err := callerCompany(ctx, s.companyRepo, identity, ErrNoCompanyProfile)
	if err != nil {
		return nil, err
	}

	return ownedTender(ctx, s.tenderRepo, company, id)
}

// ownedTender loads a tender, reporting a missing tender and one owned by
// another company the same way.
func ownedTender(ctx context.Context, tenderRepo repo.Tender, company *entity.Company, id uuid.UUID) (*entity.Tender, error) {
	tender, err := tenderRepo.GetTenderById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotOwned
		}

		return nil, err
	}
	if tender.CompanyId != company.Id {
		return nil, ErrTenderNotOwned
	}

	return tender, nil
}
