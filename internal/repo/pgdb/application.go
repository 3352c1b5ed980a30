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

type ApplicationRepo struct {
	*postgres.Postgres
}

func NewApplicationRepo(pgdb *postgres.Postgres) *ApplicationRepo {
	return &ApplicationRepo{pgdb}
}

// selectApplications joins the tender (with its owner) and the applicant company.
func (r *ApplicationRepo) selectApplications() squirrel.SelectBuilder {
	return r.SqlBuilder.
		Select(
			"a.id", "a.tender_id", "a.applicant_company_id", "a.proposal", "a.status", "a.created_at", "a.updated_at",
			`t.id AS "tenders.id"`, `t.company_id AS "tenders.company_id"`, `t.title AS "tenders.title"`,
			`t.deadline AS "tenders.deadline"`, `t.budget AS "tenders.budget"`, `t.status AS "tenders.status"`,
			`tc.id AS "tenders.companies.id"`, `tc.name AS "tenders.companies.name"`,
			`tc.industry AS "tenders.companies.industry"`, `tc.logo_url AS "tenders.companies.logo_url"`,
			`c.id AS "companies.id"`, `c.name AS "companies.name"`,
			`c.industry AS "companies.industry"`, `c.logo_url AS "companies.logo_url"`,
		).
		From("applications a").
		InnerJoin("tenders t ON t.id = a.tender_id").
		InnerJoin("companies tc ON tc.id = t.company_id").
		InnerJoin("companies c ON c.id = a.applicant_company_id")
}

func (r *ApplicationRepo) CreateApplication(ctx context.Context, input *entity.CreateApplicationInput) (uuid.UUID, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Insert("applications").
		Columns("tender_id", "applicant_company_id", "proposal", "status").
		Values(input.TenderId, input.ApplicantCompanyId, input.Proposal, common.ApplicationPending).
		Suffix("RETURNING id").
		ToSql()

	var id uuid.UUID
	if err := r.Database.QueryRowxContext(ctx, sqlReq, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}

		return uuid.Nil, err
	}

	return id, nil
}

func (r *ApplicationRepo) GetApplicationById(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	sqlReq, args, _ := r.selectApplications().
		Where("a.id = ?", id).
		ToSql()

	var application entity.Application
	if err := r.Database.GetContext(ctx, &application, sqlReq, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &application, nil
}

func (r *ApplicationRepo) DoesApplicationExist(ctx context.Context, tenderId uuid.UUID, companyId uuid.UUID) (bool, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("id").
		From("applications").
		Where("tender_id = ?", tenderId).
		Where("applicant_company_id = ?", companyId).
		ToSql()

	var id string
	err := r.Database.QueryRowxContext(ctx, sqlReq, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *ApplicationRepo) GetApplicationsByTenderId(ctx context.Context, tenderId uuid.UUID) ([]entity.Application, error) {
	return r.getApplications(ctx, "a.tender_id", tenderId)
}

func (r *ApplicationRepo) GetApplicationsByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.Application, error) {
	return r.getApplications(ctx, "a.applicant_company_id", companyId)
}

func (r *ApplicationRepo) getApplications(ctx context.Context, column string, value uuid.UUID) ([]entity.Application, error) {
	sqlReq, args, _ := r.selectApplications().
		Where(column+" = ?", value).
		OrderBy("a.created_at DESC").
		ToSql()

	applications := make([]entity.Application, 0)
	if err := r.Database.SelectContext(ctx, &applications, sqlReq, args...); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *ApplicationRepo) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	sqlReq, args, _ := r.SqlBuilder.
		Update("applications").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
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
