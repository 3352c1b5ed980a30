package repo

import (
	"context"

	"protender-api/internal/entity"
	"protender-api/internal/repo/pgdb"
	"protender-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	DoesUserExistByEmail(ctx context.Context, email string) (bool, error)
}

type Company interface {
	CreateCompany(ctx context.Context, input *entity.CompanyInput) (*entity.Company, error)
	GetCompanyById(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetCompanyByUserId(ctx context.Context, userId uuid.UUID) (*entity.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, input *entity.CompanyInput) (*entity.Company, error)
	UpdateCompanyLogo(ctx context.Context, id uuid.UUID, logoUrl string) (*entity.Company, error)
	GetCompanies(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Company, int, error)
}

type GoodsService interface {
	CreateGoodsService(ctx context.Context, input *entity.GoodsServiceInput) (*entity.GoodsService, error)
	GetGoodsServiceById(ctx context.Context, id uuid.UUID) (*entity.GoodsService, error)
	UpdateGoodsService(ctx context.Context, id uuid.UUID, title string, description string) (*entity.GoodsService, error)
	DeleteGoodsService(ctx context.Context, id uuid.UUID) error
	GetGoodsServicesByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.GoodsService, error)
}

type Tender interface {
	CreateTender(ctx context.Context, input *entity.TenderInput) (uuid.UUID, error)
	GetTenderById(ctx context.Context, id uuid.UUID) (*entity.Tender, error)
	UpdateTender(ctx context.Context, id uuid.UUID, input *entity.TenderInput) error
	DeleteTender(ctx context.Context, id uuid.UUID) error
	GetActiveTenders(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Tender, int, error)
	GetTendersByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.Tender, error)
}

type Application interface {
	CreateApplication(ctx context.Context, input *entity.CreateApplicationInput) (uuid.UUID, error)
	GetApplicationById(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	DoesApplicationExist(ctx context.Context, tenderId uuid.UUID, companyId uuid.UUID) (bool, error)
	GetApplicationsByTenderId(ctx context.Context, tenderId uuid.UUID) ([]entity.Application, error)
	GetApplicationsByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error
}

type Repositories struct {
	Diagnostics
	User
	Company
	GoodsService
	Tender
	Application
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics:  pgdb.NewDiagnosticsRepo(p),
		User:         pgdb.NewUserRepo(p),
		Company:      pgdb.NewCompanyRepo(p),
		GoodsService: pgdb.NewGoodsServiceRepo(p),
		Tender:       pgdb.NewTenderRepo(p),
		Application:  pgdb.NewApplicationRepo(p),
	}
}
