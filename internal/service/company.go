package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"protender-api/internal/common"
	"protender-api/internal/entity"
	"protender-api/internal/metrics"
	"protender-api/internal/repo"
	"protender-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type CompanyService struct {
	companyRepo      repo.Company
	goodsServiceRepo repo.GoodsService
	storage          ObjectStore
	now              func() time.Time
}

func NewCompanyService(repos *repo.Repositories, storage ObjectStore, now func() time.Time) *CompanyService {
	return &CompanyService{
		companyRepo:      repos.Company,
		goodsServiceRepo: repos.GoodsService,
		storage:          storage,
		now:              now,
	}
}

func (s *CompanyService) GetCompanies(ctx context.Context, search string, pg *entity.PaginationInput) (*entity.CompanyPageOutputModel, error) {
	companies, count, err := s.companyRepo.GetCompanies(ctx, search, pg)
	if err != nil {
		return nil, err
	}

	return &entity.CompanyPageOutputModel{
		Companies:   mapCompanies(companies),
		TotalPages:  pg.TotalPages(count),
		CurrentPage: pg.Page,
		TotalCount:  count,
	}, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*entity.CompanyDetailsOutputModel, error) {
	company, err := s.companyRepo.GetCompanyById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}

		return nil, err
	}

	goodsServices, err := s.goodsServiceRepo.GetGoodsServicesByCompanyId(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entity.CompanyDetailsOutputModel{
		Company:       *mapCompany(company),
		GoodsServices: mapGoodsServices(goodsServices),
	}, nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, identity *entity.Identity, input *entity.CompanyInput) (*entity.CompanyOutputModel, error) {
	_, err := s.companyRepo.GetCompanyByUserId(ctx, identity.Id)
	if err == nil {
		return nil, ErrCompanyAlreadyExists
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return nil, err
	}

	input.UserId = identity.Id
	company, err := s.companyRepo.CreateCompany(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrCompanyAlreadyExists
		}

		return nil, err
	}

	return mapCompany(company), nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.CompanyInput) (*entity.CompanyOutputModel, error) {
	if _, err := s.getOwnedCompany(ctx, identity, id); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.UpdateCompany(ctx, id, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCompanyNotOwned
		}

		return nil, err
	}

	return mapCompany(company), nil
}

func (s *CompanyService) UploadLogo(ctx context.Context, identity *entity.Identity, id uuid.UUID, logo *entity.LogoUpload) (*entity.LogoOutputModel, error) {
	if logo == nil || len(logo.Data) == 0 {
		return nil, ErrNoFileUploaded
	}
	if !strings.HasPrefix(logo.ContentType, "image/") {
		return nil, ErrUnsupportedMediaType
	}
	if logo.Size > common.MaxLogoSize || int64(len(logo.Data)) > common.MaxLogoSize {
		return nil, ErrFileTooLarge
	}

	if _, err := s.getOwnedCompany(ctx, identity, id); err != nil {
		return nil, err
	}

	url, err := s.storage.Put(ctx, logoKey(id, s.now(), logo.Filename), logo.Data, logo.ContentType)
	if err != nil {
		metrics.RecordLogoUpload(false)
		return nil, fmt.Errorf("upload logo: %w", err)
	}
	metrics.RecordLogoUpload(true)

	company, err := s.companyRepo.UpdateCompanyLogo(ctx, id, url)
	if err != nil {
		return nil, err
	}

	return &entity.LogoOutputModel{LogoUrl: url, Company: *mapCompany(company)}, nil
}

// logoKey is {companyId}-{epochMillis}.{ext}, ext being everything after the
// last dot of the original filename, or the whole name when it has none.
func logoKey(companyId uuid.UUID, now time.Time, filename string) string {
	ext := filename[strings.LastIndex(filename, ".")+1:]

	return fmt.Sprintf("%s-%d.%s", companyId, now.UnixMilli(), ext)
}

func (s *CompanyService) AddGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error) {
	if _, err := s.getOwnedCompany(ctx, identity, id); err != nil {
		return nil, err
	}

	input.CompanyId = id
	goodsService, err := s.goodsServiceRepo.CreateGoodsService(ctx, input)
	if err != nil {
		return nil, err
	}

	return mapGoodsService(goodsService), nil
}

func (s *CompanyService) getOwnedCompany(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetCompanyById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCompanyNotOwned
		}

		return nil, err
	}
	if company.UserId != identity.Id {
		return nil, ErrCompanyNotOwned
	}

	return company, nil
}
