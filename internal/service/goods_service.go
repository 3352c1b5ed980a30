package service

import (
	"context"
	"errors"

	"protender-api/internal/entity"
	"protender-api/internal/repo"
	"protender-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type GoodsServiceService struct {
	goodsServiceRepo repo.GoodsService
	companyRepo      repo.Company
}

func NewGoodsServiceService(repos *repo.Repositories) *GoodsServiceService {
	return &GoodsServiceService{
		goodsServiceRepo: repos.GoodsService,
		companyRepo:      repos.Company,
	}
}

func (s *GoodsServiceService) GetGoodsServices(ctx context.Context, companyId uuid.UUID) ([]entity.GoodsServiceOutputModel, error) {
	goodsServices, err := s.goodsServiceRepo.GetGoodsServicesByCompanyId(ctx, companyId)
	if err != nil {
		return nil, err
	}

	return mapGoodsServices(goodsServices), nil
}

func (s *GoodsServiceService) CreateGoodsService(ctx context.Context, identity *entity.Identity, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error) {
	company, err := callerCompany(ctx, s.companyRepo, identity, ErrCompanyRequiredForGoodsService)
	if err != nil {
		return nil, err
	}

	input.CompanyId = company.Id
	goodsService, err := s.goodsServiceRepo.CreateGoodsService(ctx, input)
	if err != nil {
		return nil, err
	}

	return mapGoodsService(goodsService), nil
}

func (s *GoodsServiceService) UpdateGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error) {
	if err := s.checkOwnership(ctx, identity, id); err != nil {
		return nil, err
	}

	goodsService, err := s.goodsServiceRepo.UpdateGoodsService(ctx, id, input.Title, input.Description)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGoodsServiceNotOwned
		}

		return nil, err
	}

	return mapGoodsService(goodsService), nil
}

func (s *GoodsServiceService) DeleteGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	if err := s.checkOwnership(ctx, identity, id); err != nil {
		return err
	}

	if err := s.goodsServiceRepo.DeleteGoodsService(ctx, id); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrGoodsServiceNotOwned
		}

		return err
	}

	return nil
}

func (s *GoodsServiceService) checkOwnership(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	company, err := callerCompany(ctx, s.companyRepo, identity, ErrNoCompanyProfile)
	if err != nil {
		return err
	}

	goodsService, err := s.goodsServiceRepo.GetGoodsServiceById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrGoodsServiceNotOwned
		}

		return err
	}
	if goodsService.CompanyId != company.Id {
		return ErrGoodsServiceNotOwned
	}

	return nil
}

// callerCompany resolves the company owned by identity, reporting missing as
// the given error.
func callerCompany(ctx context.Context, companyRepo repo.Company, identity *entity.Identity, missing error) (*entity.Company, error) {
	company, err := companyRepo.GetCompanyByUserId(ctx, identity.Id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, missing
		}

		return nil, err
	}

	return company, nil
}
