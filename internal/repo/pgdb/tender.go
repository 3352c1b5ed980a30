package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"protender-api/internal/common"
	"protender-api/internal/entity"
	"protender-api/internal/repo/repo_errors"
	"protender-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var tenderColumns = []string{
	"t.id", "t.company_id", "t.title", "t.description", "t.deadline", "t.budget", "t.status", "t.created_at", "t.updated_at",
	`c.id AS "companies.id"`, `c.name AS "companies.name"`, `c.industry AS "companies.industry"`, `c.logo_url AS "companies.logo_url"`,
}

type TenderRepo struct {
	*postgres.Postgres
}

func NewTenderRepo(pgdb *postgres.Postgres) *TenderRepo {
	return &TenderRepo{pgdb}
}

func (r *TenderRepo) selectTenders(columns ...string) squirrel.SelectBuilder {
	return r.SqlBuilder.
		Select(append(tenderColumns, columns...)...).
		From("tenders t").
		InnerJoin("companies c ON c.id = t.company_id")
}

func (r *TenderRepo) CreateTender(ctx context.Context, input *entity.TenderInput) (uuid.UUID, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Insert("tenders").
		Columns("company_id", "title", "description", "deadline", "budget", "status").
		Values(input.CompanyId, input.Title, input.Description, input.Deadline, input.Budget, common.TenderActive).
		Suffix("RETURNING id").
		ToSql()

	var id uuid.UUID
	if err := r.Database.QueryRowxContext(ctx, sqlReq, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *TenderRepo) GetTenderById(ctx context.Context, id uuid.UUID) (*entity.Tender, error) {
	sqlReq, args, _ := r.selectTenders(`c.description AS "companies.description"`).
		Where("t.id = ?", id).
		ToSql()

	var tender entity.Tender
	if err := r.Database.GetContext(ctx, &tender, sqlReq, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &tender, nil
}

func (r *TenderRepo) UpdateTender(ctx context.Context, id uuid.UUID, input *entity.TenderInput) error {
	sqlReq, args, _ := r.SqlBuilder.
		Update("tenders").
		Set("title", input.Title).
		Set("description", input.Description).
		Set("deadline", input.Deadline).
		Set("budget", input.Budget).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		ToSql()

	return r.execAffectingOne(ctx, sqlReq, args)
}

func (r *TenderRepo) DeleteTender(ctx context.Context, id uuid.UUID) error {
	sqlReq, args, _ := r.SqlBuilder.
		Delete("tenders").
		Where("id = ?", id).
		ToSql()

	return r.execAffectingOne(ctx, sqlReq, args)
}

func (r *TenderRepo) execAffectingOne(ctx context.Context, sqlReq string, args []interface{}) error {
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

func (r *TenderRepo) GetActiveTenders(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Tender, int, error) {
	countBuilder := r.SqlBuilder.Select("count(*)").From("tenders t").Where("t.status = ?", common.TenderActive)
	listBuilder := r.selectTenders().Where("t.status = ?", common.TenderActive)
	if search != "" {
		filter := searchFilter(search, "t.title", "t.description")
		countBuilder = countBuilder.Where(filter)
		listBuilder = listBuilder.Where(filter)
	}

	countSql, args, _ := countBuilder.ToSql()
	var count int
	if err := r.Database.GetContext(ctx, &count, countSql, args...); err != nil {
		return nil, 0, err
	}

	listSql, args, _ := listBuilder.
		OrderBy("t.created_at DESC", "t.id DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	tenders := make([]entity.Tender, 0)
	if err := r.Database.SelectContext(ctx, &tenders, listSql, args...); err != nil {
		return nil, 0, err
	}

	return tenders, count, nil
}

func (r *TenderRepo) GetTendersByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.Tender, error) {
	sqlReq, args, _ := r.selectTenders().
		Where("t.company_id = ?", companyId).
		OrderBy("t.created_at DESC").
		ToSql()

	tenders := make([]entity.Tender, 0)
	if err := r.Database.SelectContext(ctx, &tenders, sqlReq, args...); err != nil {
		return nil, err
	}

	return tenders, nil
}
