package controller

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"time"

	"protender-api/internal/entity"
	"protender-api/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

const goodToken = "good-token"

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// Each stub embeds its interface; calling a method the test did not set up panics.

type stubDiagnostics struct {
	err error
}

func (s *stubDiagnostics) Ping(ctx context.Context) error {
	return s.err
}

type stubAuth struct {
	service.Auth
	identity *entity.Identity
	register func(email, password string) (*entity.AuthOutputModel, error)
	login    func(email, password string) (*entity.AuthOutputModel, error)
}

func (s *stubAuth) Authenticate(token string) (*entity.Identity, error) {
	if token != goodToken {
		return nil, service.ErrInvalidToken
	}

	return s.identity, nil
}

func (s *stubAuth) Register(ctx context.Context, email, password string) (*entity.AuthOutputModel, error) {
	return s.register(email, password)
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*entity.AuthOutputModel, error) {
	return s.login(email, password)
}

func (s *stubAuth) GetCurrentUser(ctx context.Context, identity *entity.Identity) (*entity.CurrentUserOutputModel, error) {
	return &entity.CurrentUserOutputModel{User: entity.UserOutputModel{Id: identity.Id.String(), Email: identity.Email, Role: identity.Role}}, nil
}

type stubCompany struct {
	service.Company
	getCompanies    func(search string, pg *entity.PaginationInput) (*entity.CompanyPageOutputModel, error)
	updateCompany   func(id uuid.UUID, input *entity.CompanyInput) (*entity.CompanyOutputModel, error)
	uploadLogo      func(id uuid.UUID, logo *entity.LogoUpload) (*entity.LogoOutputModel, error)
	addGoodsService func(id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error)
}

func (s *stubCompany) GetCompanies(ctx context.Context, search string, pg *entity.PaginationInput) (*entity.CompanyPageOutputModel, error) {
	return s.getCompanies(search, pg)
}

func (s *stubCompany) UpdateCompany(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.CompanyInput) (*entity.CompanyOutputModel, error) {
	return s.updateCompany(id, input)
}

func (s *stubCompany) AddGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error) {
	return s.addGoodsService(id, input)
}

func (s *stubCompany) UploadLogo(ctx context.Context, identity *entity.Identity, id uuid.UUID, logo *entity.LogoUpload) (*entity.LogoOutputModel, error) {
	return s.uploadLogo(id, logo)
}

type stubTender struct {
	service.Tender
	getTenders        func(search string, pg *entity.PaginationInput) (*entity.TenderPageOutputModel, error)
	getTender         func(id uuid.UUID) (*entity.TenderOutputModel, error)
	createTender      func(input *entity.TenderInput) (*entity.TenderOutputModel, error)
	deleteTender      func(id uuid.UUID) error
	getCompanyTenders func(companyId uuid.UUID) ([]entity.TenderOutputModel, error)
}

func (s *stubTender) GetTenders(ctx context.Context, search string, pg *entity.PaginationInput) (*entity.TenderPageOutputModel, error) {
	return s.getTenders(search, pg)
}

func (s *stubTender) GetCompanyTenders(ctx context.Context, companyId uuid.UUID) ([]entity.TenderOutputModel, error) {
	return s.getCompanyTenders(companyId)
}

func (s *stubTender) GetTender(ctx context.Context, id uuid.UUID) (*entity.TenderOutputModel, error) {
	return s.getTender(id)
}

func (s *stubTender) CreateTender(ctx context.Context, identity *entity.Identity, input *entity.TenderInput) (*entity.TenderOutputModel, error) {
	return s.createTender(input)
}

func (s *stubTender) DeleteTender(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	return s.deleteTender(id)
}

type stubApplication struct {
	service.Application
	apply               func(input *entity.CreateApplicationInput) (*entity.ApplicationOutputModel, error)
	updateStatus        func(id uuid.UUID, status string) (*entity.ApplicationOutputModel, error)
	tenderApplications  func(identity *entity.Identity, tenderId uuid.UUID) ([]entity.ApplicationOutputModel, error)
	companyApplications func(identity *entity.Identity, companyId uuid.UUID) ([]entity.ApplicationOutputModel, error)
}

func (s *stubApplication) GetTenderApplications(ctx context.Context, identity *entity.Identity, tenderId uuid.UUID) ([]entity.ApplicationOutputModel, error) {
	return s.tenderApplications(identity, tenderId)
}

func (s *stubApplication) GetCompanyApplications(ctx context.Context, identity *entity.Identity, companyId uuid.UUID) ([]entity.ApplicationOutputModel, error) {
	return s.companyApplications(identity, companyId)
}

func (s *stubApplication) Apply(ctx context.Context, identity *entity.Identity, input *entity.CreateApplicationInput) (*entity.ApplicationOutputModel, error) {
	return s.apply(input)
}

func (s *stubApplication) UpdateApplicationStatus(ctx context.Context, identity *entity.Identity, id uuid.UUID, status string) (*entity.ApplicationOutputModel, error) {
	return s.updateStatus(id, status)
}

type stubGoodsService struct {
	service.GoodsService
	list   func(companyId uuid.UUID) ([]entity.GoodsServiceOutputModel, error)
	create func(input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error)
	update func(id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error)
	delete func(id uuid.UUID) error
}

func (s *stubGoodsService) GetGoodsServices(ctx context.Context, companyId uuid.UUID) ([]entity.GoodsServiceOutputModel, error) {
	return s.list(companyId)
}

func (s *stubGoodsService) CreateGoodsService(ctx context.Context, identity *entity.Identity, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error) {
	return s.create(input)
}

func (s *stubGoodsService) UpdateGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *entity.GoodsServiceInput) (*entity.GoodsServiceOutputModel, error) {
	return s.update(id, input)
}

func (s *stubGoodsService) DeleteGoodsService(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	return s.delete(id)
}

type testServer struct {
	echo         *echo.Echo
	auth         *stubAuth
	company      *stubCompany
	goodsService *stubGoodsService
	tender       *stubTender
	application  *stubApplication
	diagnostics  *stubDiagnostics
}

func newTestServer() *testServer {
	s := &testServer{
		echo:         echo.New(),
		auth:         &stubAuth{identity: &entity.Identity{Id: uuid.New(), Email: "owner@example.com", Role: "company"}},
		company:      &stubCompany{},
		goodsService: &stubGoodsService{},
		tender:       &stubTender{},
		application:  &stubApplication{},
		diagnostics:  &stubDiagnostics{},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	services := &service.Services{
		Diagnostics:  s.diagnostics,
		Auth:         s.auth,
		Company:      s.company,
		GoodsService: s.goodsService,
		Tender:       s.tender,
		Application:  s.application,
	}
	SetupRoutesHandlers(s.echo, services, Options{Logger: logger, Clock: func() time.Time { return testNow }})

	return s
}

func (s *testServer) do(method, path string, body []byte, contentType string, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) doJSON(method, path, body string, token string) *httptest.ResponseRecorder {
	return s.do(method, path, []byte(body), echo.MIMEApplicationJSON, token)
}
