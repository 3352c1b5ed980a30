package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"protender-api/internal/entity"
	"protender-api/internal/repo/repo_errors"
	"protender-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const goodsServiceColumns = "id, company_id, title, description, created_at, updated_at"

type GoodsServiceRepo struct {
	*postgres.Postgres
}

func NewGoodsServiceRepo(pgdb *postgres.Postgres) *GoodsServiceRepo {
	return &GoodsServiceRepo{pgdb}
}

func (r *GoodsServiceRepo) CreateGoodsService(ctx context.Context, input *entity.GoodsServiceInput) (*entity.GoodsService, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Insert("goods_services").
		Columns("company_id", "title", "description").
		Values(input.CompanyId, input.Title, input.Description).
		Suffix("RETURNING " + goodsServiceColumns).
		ToSql()

	var goodsService entity.GoodsService
	if err := r.Database.GetContext(ctx, &goodsService, sqlReq, args...); err != nil {
		return nil, err
	}

	return &goodsService, nil
}

func (r *GoodsServiceRepo) GetGoodsServiceById(ctx context.Context, id uuid.UUID) (*entity.GoodsService, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(goodsServiceColumns).
		From("goods_services").
		Where("id = ?", id).
		ToSql()

	var goodsService entity.GoodsService
	if err := r.Database.GetContext(ctx, &goodsService, sqlReq, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &goodsService, nil
}

func (r *GoodsServiceRepo) UpdateGoodsService(ctx context.Context, id uuid.UUID, title string, description string) (*entity.GoodsService, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Update("goods_services").
		Set("title", title).
		Set("description", description).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		Suffix("RETURNING " + goodsServiceColumns).
		ToSql()

	var goodsService entity.GoodsService
	if err := r.Database.GetContext(ctx, &goodsService, sqlReq, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &goodsService, nil
}

func (r *GoodsServiceRepo) DeleteGoodsService(ctx context.Context, id uuid.UUID) error {
	sqlReq, args, _ := r.SqlBuilder.
		Delete("goods_services").
		Where("id = ?", id).
		ToSql()

	res, err := r.Database.ExecContext(ctx, sqlReq, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *GoodsServiceRepo) GetGoodsServicesByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.GoodsService, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(goodsServiceColumns).
		From("goods_services").
		Where("company_id = ?", companyId).
		OrderBy("created_at DESC").
		ToSql()

	goodsServices := make([]entity.GoodsService, 0)
	if err := r.Database.SelectContext(ctx, &goodsServices, sqlReq, args...); err != nil {
		return nil, err
	}

	return goodsServices, nil
}
