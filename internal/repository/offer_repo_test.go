package repository

import (
	"context"
	"testing"

	"estateoffice/internal/database"
	"estateoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.InvestmentOffer{}))
	return db
}

func sampleOffer(key string) *domain.InvestmentOffer {
	return &domain.InvestmentOffer{
		IdempotencyKey:  key,
		AmountRequested: 150000,
		Participation:   domain.ParticipationPassive,
		FirstName:       "Yassine",
		LastName:        "El Amrani",
		Email:           "yassine@example.com",
		Phone:           "+212612345678",
		CountryISO2:     "MA",
		Nationality:     "Marocaine",
		Address:         "Rabat",
		PaymentMethod:   domain.PaymentBankTransfer,
		Status:          domain.LeadNew,
	}
}

func TestOfferCreateAndGetByIdempotencyKey(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	o := sampleOffer("key-1")
	require.NoError(t, repo.Create(ctx, o))
	assert.NotZero(t, o.ID)

	got, err := repo.GetByIdempotencyKey(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, "yassine@example.com", got.Email)
}

func TestOfferCreateDuplicateKey(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleOffer("key-1")))

	err := repo.Create(ctx, sampleOffer("key-1"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestOfferListFiltersByStatus(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	a := sampleOffer("key-a")
	require.NoError(t, repo.Create(ctx, a))
	b := sampleOffer("key-b")
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.UpdateStatus(ctx, b.ID, domain.LeadContacted))

	all, err := repo.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	contacted, err := repo.List(ctx, domain.LeadContacted, 10, 0)
	require.NoError(t, err)
	require.Len(t, contacted, 1)
	assert.Equal(t, b.ID, contacted[0].ID)
}

func TestOfferUpdateStatus(t *testing.T) {
	repo := NewOfferRepository(newTestDB(t))
	ctx := context.Background()

	o := sampleOffer("key-1")
	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.UpdateStatus(ctx, o.ID, domain.LeadQualified))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadQualified, got.Status)
}
