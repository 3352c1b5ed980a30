package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"protender-api/internal/entity"
	"protender-api/internal/repo"
	"protender-api/internal/repo/repo_errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// fakeStore is an in-memory implementation of every repository interface.
type fakeStore struct {
	mu           sync.Mutex
	clock        *fakeClock
	seq          int
	users        map[uuid.UUID]*entity.User
	companies    map[uuid.UUID]*entity.Company
	goods        map[uuid.UUID]*entity.GoodsService
	tenders      map[uuid.UUID]*entity.Tender
	applications map[uuid.UUID]*entity.Application
	pingErr      error
}

func newFakeStore(clock *fakeClock) *fakeStore {
	return &fakeStore{
		clock:        clock,
		users:        make(map[uuid.UUID]*entity.User),
		companies:    make(map[uuid.UUID]*entity.Company),
		goods:        make(map[uuid.UUID]*entity.GoodsService),
		tenders:      make(map[uuid.UUID]*entity.Tender),
		applications: make(map[uuid.UUID]*entity.Application),
	}
}

func (s *fakeStore) repositories() *repo.Repositories {
	return &repo.Repositories{
		Diagnostics:  s,
		User:         s,
		Company:      s,
		GoodsService: s,
		Tender:       s,
		Application:  s,
	}
}

// stamp returns strictly increasing creation times so newest-first ordering is stable.
func (s *fakeStore) stamp() time.Time {
	s.seq++
	return s.clock.Now().Add(time.Duration(s.seq) * time.Millisecond)
}

func (s *fakeStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *fakeStore) CreateUser(ctx context.Context, input *entity.CreateUserInput) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == input.Email {
			return nil, repo_errors.ErrAlreadyExists
		}
	}
	now := s.stamp()
	user := &entity.User{Id: uuid.New(), Email: input.Email, PasswordDigest: input.PasswordDigest, Role: input.Role, CreatedAt: now, UpdatedAt: now}
	s.users[user.Id] = user
	copied := *user

	return &copied, nil
}

func (s *fakeStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (s *fakeStore) DoesUserExistByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return false, nil
	}

	return true, nil
}

func (s *fakeStore) CreateCompany(ctx context.Context, input *entity.CompanyInput) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.companies {
		if c.UserId == input.UserId {
			return nil, repo_errors.ErrAlreadyExists
		}
	}
	now := s.stamp()
	company := &entity.Company{
		Id: uuid.New(), UserId: input.UserId, Name: input.Name, Industry: input.Industry,
		Description: input.Description, CreatedAt: now, UpdatedAt: now,
	}
	s.companies[company.Id] = company
	copied := *company

	return &copied, nil
}

func (s *fakeStore) GetCompanyById(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := *c

	return &copied, nil
}

func (s *fakeStore) GetCompanyByUserId(ctx context.Context, userId uuid.UUID) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.companies {
		if c.UserId == userId {
			copied := *c
			return &copied, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (s *fakeStore) UpdateCompany(ctx context.Context, id uuid.UUID, input *entity.CompanyInput) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	c.Name, c.Industry, c.Description = input.Name, input.Industry, input.Description
	c.UpdatedAt = s.clock.Now()
	copied := *c

	return &copied, nil
}

func (s *fakeStore) UpdateCompanyLogo(ctx context.Context, id uuid.UUID, logoUrl string) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	c.LogoUrl = &logoUrl
	copied := *c

	return &copied, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (s *fakeStore) GetCompanies(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Company, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]entity.Company, 0)
	for _, c := range s.companies {
		if search == "" || containsFold(c.Name, search) || containsFold(c.Industry, search) {
			matched = append(matched, *c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return paginate(matched, pg), len(matched), nil
}

func paginate[T any](rows []T, pg *entity.PaginationInput) []T {
	if pg.Offset >= len(rows) {
		return []T{}
	}
	end := pg.Offset + pg.Limit
	if end > len(rows) {
		end = len(rows)
	}

	return rows[pg.Offset:end]
}

func (s *fakeStore) CreateGoodsService(ctx context.Context, input *entity.GoodsServiceInput) (*entity.GoodsService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	g := &entity.GoodsService{Id: uuid.New(), CompanyId: input.CompanyId, Title: input.Title, Description: input.Description, CreatedAt: now, UpdatedAt: now}
	s.goods[g.Id] = g
	copied := *g

	return &copied, nil
}

func (s *fakeStore) GetGoodsServiceById(ctx context.Context, id uuid.UUID) (*entity.GoodsService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goods[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	copied := *g

	return &copied, nil
}

func (s *fakeStore) UpdateGoodsService(ctx context.Context, id uuid.UUID, title string, description string) (*entity.GoodsService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goods[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	g.Title, g.Description = title, description
	copied := *g

	return &copied, nil
}

func (s *fakeStore) DeleteGoodsService(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goods[id]; !ok {
		return repo_errors.ErrNotFound
	}
	delete(s.goods, id)

	return nil
}

func (s *fakeStore) GetGoodsServicesByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.GoodsService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]entity.GoodsService, 0)
	for _, g := range s.goods {
		if g.CompanyId == companyId {
			result = append(result, *g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })

	return result, nil
}

func (s *fakeStore) summary(companyId uuid.UUID) entity.CompanySummary {
	c, ok := s.companies[companyId]
	if !ok {
		return entity.CompanySummary{}
	}

	return entity.CompanySummary{Id: c.Id, Name: c.Name, Industry: c.Industry, Description: c.Description, LogoUrl: c.LogoUrl}
}

func (s *fakeStore) joinedTender(t *entity.Tender) entity.Tender {
	copied := *t
	copied.Company = s.summary(t.CompanyId)

	return copied
}

func (s *fakeStore) CreateTender(ctx context.Context, input *entity.TenderInput) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	t := &entity.Tender{
		Id: uuid.New(), CompanyId: input.CompanyId, Title: input.Title, Description: input.Description,
		Deadline: input.Deadline, Budget: input.Budget, Status: "active", CreatedAt: now, UpdatedAt: now,
	}
	s.tenders[t.Id] = t

	return t.Id, nil
}

func (s *fakeStore) GetTenderById(ctx context.Context, id uuid.UUID) (*entity.Tender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenders[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	joined := s.joinedTender(t)

	return &joined, nil
}

func (s *fakeStore) UpdateTender(ctx context.Context, id uuid.UUID, input *entity.TenderInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenders[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	t.Title, t.Description, t.Deadline, t.Budget = input.Title, input.Description, input.Deadline, input.Budget

	return nil
}

func (s *fakeStore) DeleteTender(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tenders[id]; !ok {
		return repo_errors.ErrNotFound
	}
	delete(s.tenders, id)
	for appId, a := range s.applications {
		if a.TenderId == id {
			delete(s.applications, appId)
		}
	}

	return nil
}

func (s *fakeStore) GetActiveTenders(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Tender, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]entity.Tender, 0)
	for _, t := range s.tenders {
		if t.Status != "active" {
			continue
		}
		if search == "" || containsFold(t.Title, search) || containsFold(t.Description, search) {
			matched = append(matched, s.joinedTender(t))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	return paginate(matched, pg), len(matched), nil
}

func (s *fakeStore) GetTendersByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.Tender, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]entity.Tender, 0)
	for _, t := range s.tenders {
		if t.CompanyId == companyId {
			result = append(result, s.joinedTender(t))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })

	return result, nil
}

func (s *fakeStore) joinedApplication(a *entity.Application) entity.Application {
	copied := *a
	if t, ok := s.tenders[a.TenderId]; ok {
		copied.Tender = entity.TenderSummary{
			Id: t.Id, CompanyId: t.CompanyId, Title: t.Title, Deadline: t.Deadline,
			Budget: t.Budget, Status: t.Status, Company: s.summary(t.CompanyId),
		}
	}
	copied.Company = s.summary(a.ApplicantCompanyId)

	return copied
}

func (s *fakeStore) CreateApplication(ctx context.Context, input *entity.CreateApplicationInput) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.applications {
		if a.TenderId == input.TenderId && a.ApplicantCompanyId == input.ApplicantCompanyId {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}
	}
	now := s.stamp()
	a := &entity.Application{
		Id: uuid.New(), TenderId: input.TenderId, ApplicantCompanyId: input.ApplicantCompanyId,
		Proposal: input.Proposal, Status: "pending", CreatedAt: now, UpdatedAt: now,
	}
	s.applications[a.Id] = a

	return a.Id, nil
}

func (s *fakeStore) GetApplicationById(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	joined := s.joinedApplication(a)

	return &joined, nil
}

func (s *fakeStore) DoesApplicationExist(ctx context.Context, tenderId uuid.UUID, companyId uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.applications {
		if a.TenderId == tenderId && a.ApplicantCompanyId == companyId {
			return true, nil
		}
	}

	return false, nil
}

func (s *fakeStore) listApplications(match func(a *entity.Application) bool) []entity.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]entity.Application, 0)
	for _, a := range s.applications {
		if match(a) {
			result = append(result, s.joinedApplication(a))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })

	return result
}

func (s *fakeStore) GetApplicationsByTenderId(ctx context.Context, tenderId uuid.UUID) ([]entity.Application, error) {
	return s.listApplications(func(a *entity.Application) bool { return a.TenderId == tenderId }), nil
}

func (s *fakeStore) GetApplicationsByCompanyId(ctx context.Context, companyId uuid.UUID) ([]entity.Application, error) {
	return s.listApplications(func(a *entity.Application) bool { return a.ApplicantCompanyId == companyId }), nil
}

func (s *fakeStore) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = s.clock.Now()

	return nil
}

type fakeObjectStore struct {
	keys []string
	err  error
}

func (s *fakeObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, key)

	return "https://cdn.test/" + key, nil
}

type testEnv struct {
	clock    *fakeClock
	store    *fakeStore
	objects  *fakeObjectStore
	services *Services
}

func newTestEnv() *testEnv {
	clock := newFakeClock()
	store := newFakeStore(clock)
	objects := &fakeObjectStore{}
	tokens := NewJWTManager("test-secret", 7*24*time.Hour)
	tokens.now = clock.Now

	return &testEnv{
		clock:   clock,
		store:   store,
		objects: objects,
		services: NewServices(Dependencies{
			Repos:   store.repositories(),
			Tokens:  tokens,
			Hasher:  NewBcryptHasher(bcrypt.MinCost),
			Storage: objects,
			Clock:   clock.Now,
		}),
	}
}

// companyOwner registers a user and gives them a company.
func (e *testEnv) companyOwner(ctx context.Context, email, name string) (*entity.Identity, *entity.CompanyOutputModel) {
	auth, err := e.services.Auth.Register(ctx, email, "secret1")
	if err != nil {
		panic(err)
	}
	identity, err := e.services.Auth.Authenticate(auth.Token)
	if err != nil {
		panic(err)
	}
	company, err := e.services.Company.CreateCompany(ctx, identity, &entity.CompanyInput{Name: name, Industry: "Construction"})
	if err != nil {
		panic(err)
	}

	return identity, company
}
