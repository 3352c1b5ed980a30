package service

import (
	"context"
	"errors"
	"time"

	"protender-api/internal/common"
	"protender-api/internal/entity"
	"protender-api/internal/metrics"
	"protender-api/internal/repo"
	"protender-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ApplicationService struct {
	applicationRepo repo.Application
	tenderRepo      repo.Tender
	companyRepo     repo.Company
	now             func() time.Time
}

func NewApplicationService(repos *repo.Repositories, now func() time.Time) *ApplicationService {
	return &ApplicationService{
		applicationRepo: repos.Application,
		tenderRepo:      repos.Tender,
		companyRepo:     repos.Company,
		now:             now,
	}
}

func (s *ApplicationService) Apply(ctx context.Context, identity *entity.Identity, input *entity.CreateApplicationInput) (*entity.ApplicationOutputModel, error) {
	company, err := callerCompany(ctx, s.companyRepo, identity, ErrCompanyRequiredForApplication)
	if err != nil {
		return nil, err
	}

	tender, err := s.tenderRepo.GetTenderById(ctx, input.TenderId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderInactive
		}

		return nil, err
	}
	if tender.Status != common.TenderActive {
		return nil, ErrTenderInactive
	}

	applied, err := s.applicationRepo.DoesApplicationExist(ctx, tender.Id, company.Id)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, ErrAlreadyApplied
	}

	input.ApplicantCompanyId = company.Id
	id, err := s.applicationRepo.CreateApplication(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrAlreadyApplied
		}

		return nil, err
	}
	metrics.RecordApplicationSubmitted()

	return s.getApplication(ctx, id)
}

// GetTenderApplications is restricted to the company owning the tender.
func (s *ApplicationService) GetTenderApplications(ctx context.Context, identity *entity.Identity, tenderId uuid.UUID) ([]entity.ApplicationOutputModel, error) {
	company, err := callerCompany(ctx, s.companyRepo, identity, ErrNoCompanyProfile)
	if err != nil {
		return nil, err
	}

	if _, err := ownedTender(ctx, s.tenderRepo, company, tenderId); err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.GetApplicationsByTenderId(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	return mapApplications(applications, s.now()), nil
}

// GetCompanyApplications is restricted to the applicant company itself.
func (s *ApplicationService) GetCompanyApplications(ctx context.Context, identity *entity.Identity, companyId uuid.UUID) ([]entity.ApplicationOutputModel, error) {
	company, err := callerCompany(ctx, s.companyRepo, identity, ErrNoCompanyProfile)
	if err != nil {
		return nil, err
	}
	if company.Id != companyId {
		return nil, ErrApplicationsNotOwned
	}

	applications, err := s.applicationRepo.GetApplicationsByCompanyId(ctx, companyId)
	if err != nil {
		return nil, err
	}

	return mapApplications(applications, s.now()), nil
}

// UpdateApplicationStatus lets the tender owner move an application between
// any of the known statuses.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, identity *entity.Identity, id uuid.UUID, status string) (*entity.ApplicationOutputModel, error) {
	if !common.IsApplicationStatus(status) {
		return nil, ErrInvalidApplicationStatus
	}

	company, err := callerCompany(ctx, s.companyRepo, identity, ErrNoCompanyProfile)
	if err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.GetApplicationById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}

		return nil, err
	}
	if application.Tender.CompanyId != company.Id {
		return nil, ErrApplicationNotOwned
	}

	if err := s.applicationRepo.UpdateApplicationStatus(ctx, id, status); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}

		return nil, err
	}
	metrics.RecordApplicationStatusChange(status)

	return s.getApplication(ctx, id)
}

func (s *ApplicationService) getApplication(ctx context.Context, id uuid.UUID) (*entity.ApplicationOutputModel, error) {
	application, err := s.applicationRepo.GetApplicationById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}

		return nil, err
	}

	return mapApplication(application, s.now()), nil
}
