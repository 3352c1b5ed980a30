package service

import (
	"context"
	"testing"
	"time"

	"protender-api/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenderInput(title string, deadline time.Time) *entity.TenderInput {
	budget := 15000.5

	return &entity.TenderInput{Title: title, Description: "Supply of " + title, Deadline: deadline, Budget: &budget}
}

func TestTenderService_CreateRequiresCompany(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	auth, err := env.services.Auth.Register(ctx, "solo@example.com", "secret1")
	require.NoError(t, err)
	identity, err := env.services.Auth.Authenticate(auth.Token)
	require.NoError(t, err)

	_, err = env.services.Tender.CreateTender(ctx, identity, tenderInput("Steel", env.clock.Now().Add(24*time.Hour)))
	assert.ErrorIs(t, err, ErrCompanyRequiredForTender)
}

func TestTenderService_CreateAndDerivedExpiry(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner, company := env.companyOwner(ctx, "owner@example.com", "Acme")

	created, err := env.services.Tender.CreateTender(ctx, owner, tenderInput("Steel", env.clock.Now().Add(7*24*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, company.Id, created.CompanyId)
	assert.False(t, created.Expired)
	assert.Equal(t, 7, created.DaysLeft)
	require.NotNil(t, created.Company)
	assert.Equal(t, "Acme", created.Company.Name)
	require.NotNil(t, created.Budget)
	assert.Equal(t, 15000.5, *created.Budget)

	id := uuid.MustParse(created.Id)

	env.clock.Advance(6*24*time.Hour + time.Hour)
	got, err := env.services.Tender.GetTender(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Expired)
	assert.Equal(t, 1, got.DaysLeft)

	env.clock.Advance(24 * time.Hour)
	got, err = env.services.Tender.GetTender(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Expired)
	assert.Equal(t, 0, got.DaysLeft)
	assert.Equal(t, "active", got.Status)

	again, err := env.services.Tender.GetTender(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestTenderService_GetUnknown(t *testing.T) {
	env := newTestEnv()

	_, err := env.services.Tender.GetTender(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrTenderNotFound)
}

func TestTenderService_OwnerOnlyMutations(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner, _ := env.companyOwner(ctx, "owner@example.com", "Acme")
	intruder, _ := env.companyOwner(ctx, "intruder@example.com", "Other")

	created, err := env.services.Tender.CreateTender(ctx, owner, tenderInput("Steel", env.clock.Now().Add(48*time.Hour)))
	require.NoError(t, err)
	id := uuid.MustParse(created.Id)

	_, err = env.services.Tender.UpdateTender(ctx, intruder, id, tenderInput("Hijack", env.clock.Now().Add(48*time.Hour)))
	assert.ErrorIs(t, err, ErrTenderNotOwned)
	assert.ErrorIs(t, env.services.Tender.DeleteTender(ctx, intruder, id), ErrTenderNotOwned)
	_, err = env.services.Tender.UpdateTender(ctx, owner, uuid.New(), tenderInput("Ghost", env.clock.Now().Add(48*time.Hour)))
	assert.ErrorIs(t, err, ErrTenderNotOwned)

	updated, err := env.services.Tender.UpdateTender(ctx, owner, id, tenderInput("Rebar", env.clock.Now().Add(72*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "Rebar", updated.Title)
	assert.Equal(t, 3, updated.DaysLeft)

	require.NoError(t, env.services.Tender.DeleteTender(ctx, owner, id))
	_, err = env.services.Tender.GetTender(ctx, id)
	assert.ErrorIs(t, err, ErrTenderNotFound)
}

func TestTenderService_ListingAndSearch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	owner, company := env.companyOwner(ctx, "owner@example.com", "Acme")
	deadline := env.clock.Now().Add(10 * 24 * time.Hour)

	for _, title := range []string{"Road works", "Office furniture", "Roof repair"} {
		_, err := env.services.Tender.CreateTender(ctx, owner, tenderInput(title, deadline))
		require.NoError(t, err)
	}

	page, err := env.services.Tender.GetTenders(ctx, "ro", entity.NewPaginationInput(1, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Tenders, 2)
	assert.Equal(t, "Roof repair", page.Tenders[0].Title)

	page, err = env.services.Tender.GetTenders(ctx, "", entity.NewPaginationInput(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Tenders, 1)
	assert.Equal(t, "Road works", page.Tenders[0].Title)

	mine, err := env.services.Tender.GetCompanyTenders(ctx, uuid.MustParse(company.Id))
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	none, err := env.services.Tender.GetCompanyTenders(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
