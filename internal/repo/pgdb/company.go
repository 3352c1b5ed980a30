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

const companyColumns = "id, user_id, name, industry, description, logo_url, created_at, updated_at"

type CompanyRepo struct {
	*postgres.Postgres
}

func NewCompanyRepo(pgdb *postgres.Postgres) *CompanyRepo {
	return &CompanyRepo{pgdb}
}

func (r *CompanyRepo) CreateCompany(ctx context.Context, input *entity.CompanyInput) (*entity.Company, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Insert("companies").
		Columns("user_id", "name", "industry", "description").
		Values(input.UserId, input.Name, input.Industry, input.Description).
		Suffix("RETURNING " + companyColumns).
		ToSql()

	var company entity.Company
	if err := r.Database.GetContext(ctx, &company, sqlReq, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, repo_errors.ErrAlreadyExists
		}

		return nil, err
	}

	return &company, nil
}

func (r *CompanyRepo) GetCompanyById(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	return r.getCompany(ctx, "id", id)
}

func (r *CompanyRepo) GetCompanyByUserId(ctx context.Context, userId uuid.UUID) (*entity.Company, error) {
	return r.getCompany(ctx, "user_id", userId)
}

func (r *CompanyRepo) getCompany(ctx context.Context, column string, value uuid.UUID) (*entity.Company, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(companyColumns).
		From("companies").
		Where(column+" = ?", value).
		ToSql()

	var company entity.Company
	if err := r.Database.GetContext(ctx, &company, sqlReq, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &company, nil
}

func (r *CompanyRepo) UpdateCompany(ctx context.Context, id uuid.UUID, input *entity.CompanyInput) (*entity.Company, error) {
	return r.updateCompany(ctx, id, map[string]interface{}{
		"name":        input.Name,
		"industry":    input.Industry,
		"description": input.Description,
	})
}

func (r *CompanyRepo) UpdateCompanyLogo(ctx context.Context, id uuid.UUID, logoUrl string) (*entity.Company, error) {
	return r.updateCompany(ctx, id, map[string]interface{}{"logo_url": logoUrl})
}

func (r *CompanyRepo) updateCompany(ctx context.Context, id uuid.UUID, values map[string]interface{}) (*entity.Company, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Update("companies").
		SetMap(values).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		Suffix("RETURNING " + companyColumns).
		ToSql()

	var company entity.Company
	if err := r.Database.GetContext(ctx, &company, sqlReq, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &company, nil
}

func (r *CompanyRepo) GetCompanies(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Company, int, error) {
	countBuilder := r.SqlBuilder.Select("count(*)").From("companies")
	listBuilder := r.SqlBuilder.Select(companyColumns).From("companies")
	if search != "" {
		filter := searchFilter(search, "name", "industry")
		countBuilder = countBuilder.Where(filter)
		listBuilder = listBuilder.Where(filter)
	}

	countSql, args, _ := countBuilder.ToSql()
	var count int
	if err := r.Database.GetContext(ctx, &count, countSql, args...); err != nil {
		return nil, 0, err
	}

	listSql, args, _ := listBuilder.
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	companies := make([]entity.Company, 0)
	if err := r.Database.SelectContext(ctx, &companies, listSql, args...); err != nil {
		return nil, 0, err
	}

	return companies, count, nil
}
