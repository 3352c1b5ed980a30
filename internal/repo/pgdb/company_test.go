package pgdb

import (
	"context"
	"testing"
	"time"

	"protender-api/internal/entity"
	"protender-api/internal/repo/repo_errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var companyRowColumns = []string{"id", "user_id", "name", "industry", "description", "logo_url", "created_at", "updated_at"}

func TestCompanyRepo_GetCompanies_Search(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewCompanyRepo(pg)

	now := time.Now()
	mock.ExpectQuery(`SELECT count\(\*\) FROM companies WHERE \(name ILIKE \$1 OR industry ILIKE \$2\)`).
		WithArgs(`%te\_ch%`, `%te\_ch%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`SELECT (.+) FROM companies WHERE \(name ILIKE \$1 OR industry ILIKE \$2\) ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 10`).
		WithArgs(`%te\_ch%`, `%te\_ch%`).
		WillReturnRows(sqlmock.NewRows(companyRowColumns).
			AddRow(uuid.NewString(), uuid.NewString(), "TechCorp", "IT", "", nil, now, now))

	companies, count, err := repo.GetCompanies(context.Background(), "te_ch", entity.NewPaginationInput(2, 10))
	require.NoError(t, err)
	assert.Equal(t, 11, count)
	require.Len(t, companies, 1)
	assert.Equal(t, "TechCorp", companies[0].Name)
	assert.Nil(t, companies[0].LogoUrl)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepo_GetCompanies_NoSearch(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewCompanyRepo(pg)

	mock.ExpectQuery(`SELECT count\(\*\) FROM companies$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT (.+) FROM companies ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows(companyRowColumns))

	companies, count, err := repo.GetCompanies(context.Background(), "", entity.NewPaginationInput(1, 10))
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, companies)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepo_CreateCompany_AlreadyExists(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewCompanyRepo(pg)

	userId := uuid.New()
	mock.ExpectQuery(`INSERT INTO companies \(user_id,name,industry,description\)`).
		WithArgs(userId.String(), "Acme", "Construction", "").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.CreateCompany(context.Background(), &entity.CompanyInput{UserId: userId, Name: "Acme", Industry: "Construction"})
	assert.ErrorIs(t, err, repo_errors.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepo_UpdateCompanyLogo(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewCompanyRepo(pg)

	id := uuid.New()
	now := time.Now()
	url := "https://cdn.example.com/logo.png"
	mock.ExpectQuery(`UPDATE companies SET logo_url = \$1, updated_at = now\(\) WHERE id = \$2 RETURNING`).
		WithArgs(url, id.String()).
		WillReturnRows(sqlmock.NewRows(companyRowColumns).
			AddRow(id.String(), uuid.NewString(), "Acme", "Construction", "", url, now, now))

	company, err := repo.UpdateCompanyLogo(context.Background(), id, url)
	require.NoError(t, err)
	require.NotNil(t, company.LogoUrl)
	assert.Equal(t, url, *company.LogoUrl)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepo_GetCompanyByUserId_NotFound(t *testing.T) {
	pg, mock := newMockDB(t)
	repo := NewCompanyRepo(pg)

	userId := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM companies WHERE user_id = \$1`).
		WithArgs(userId.String()).
		WillReturnRows(sqlmock.NewRows(companyRowColumns))

	_, err := repo.GetCompanyByUserId(context.Background(), userId)
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
