package service

import (
	"context"
	"time"

	"protender-api/internal/entity"
	"protender-api/internal/repo"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Auth interface {
	Register(ctx context.Context, email, password string) (*entity.AuthOutputModel, error)
	Login(ctx context.Context, email, password string) (*entity.AuthOutputModel, error)
	Authenticate(token string) (*entity.Identity, error)
	GetCurrentUser(ctx context.Context, identity *entity.Identity) (*entity.CurrentUserOutputModel, error)
}

type Company interface {
	GetCompanies(ctx context.Context, search string, pg *entity.PaginationInput) (*entity.CompanyPageOutputModel, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*entity.CompanyDetailsOutputModel, error)
	CreateCompany(ctx context.Context, identity *entity.Identity, input *entity.CompanyInput) (*entity.CompanyOutputModel, error)
	UpdateCompany(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.CompanyInput) (*entity.CompanyOutputModel, error)
	UploadLogo(ctx context.Context, identity *entity.Identity, id uuid.UUID, logo *entity.LogoUpload) (*entity.LogoOutputModel, error)
	AddGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error)
}

type GoodsService interface {
	GetGoodsServices(ctx context.Context, companyId uuid.UUID) ([]entity.GoodsServiceOutputModel, error)
	CreateGoodsService(ctx context.Context, identity *entity.Identity, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error)
	UpdateGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error)
	DeleteGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID) error
}

type Tender interface {
	GetTenders(ctx context.Context, search string, pg *entity.PaginationInput) (*entity.TenderPageOutputModel, error)
	GetTender(ctx context.Context, id uuid.UUID) (*entity.TenderOutputModel, error)
	CreateTender(ctx context.Context, identity *entity.Identity, input *entity.TenderInput) (*entity.TenderOutputModel, error)
	UpdateTender(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.TenderInput) (*entity.TenderOutputModel, error)
	DeleteTender(ctx context.Context, identity *entity.Identity, id uuid.UUID) error
	GetCompanyTenders(ctx context.Context, companyId uuid.UUID) ([]entity.TenderOutputModel, error)
}

type Application interface {
	Apply(ctx context.Context, identity *entity.Identity, input *entity.CreateApplicationInput) (*entity.ApplicationOutputModel, error)
	GetTenderApplications(ctx context.Context, identity *entity.Identity, tenderId uuid.UUID) ([]entity.ApplicationOutputModel, error)
	GetCompanyApplications(ctx context.Context, identity *entity.Identity, companyId uuid.UUID) ([]entity.ApplicationOutputModel, error)
	UpdateApplicationStatus(ctx context.Context, identity *entity.Identity, id uuid.UUID, status string) (*entity.ApplicationOutputModel, error)
}

// ObjectStore keeps uploaded files and hands back their public URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Services struct {
	Diagnostics  Diagnostics
	Auth         Auth
	Company      Company
	GoodsService GoodsService
	Tender       Tender
	Application  Application
}

type Dependencies struct {
	Repos   *repo.Repositories
	Tokens  TokenManager
	Hasher  PasswordHasher
	Storage ObjectStore
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func NewServices(deps Dependencies) *Services {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	return &Services{
		Diagnostics:  NewDiagnosticsService(deps.Repos),
		Auth:         NewAuthService(deps.Repos, deps.Tokens, deps.Hasher),
		Company:      NewCompanyService(deps.Repos, deps.Storage, deps.Clock),
		GoodsService: NewGoodsServiceService(deps.Repos),
		Tender:       NewTenderService(deps.Repos, deps.Clock),
		Application:  NewApplicationService(deps.Repos, deps.Clock),
	}
}
