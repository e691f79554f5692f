package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListing() *domain.Listing {
	return &domain.Listing{
		ID:          uuid.New(),
		SellerID:    uuid.New(),
		Title:       "Vintage armchair",
		Description: "Teak, 1960s",
		PriceAmount: 150000,
		Currency:    "dkk",
		Images:      []string{"https://img.example/1.jpg"},
		Status:      domain.ListingStatusActive,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func listingColumns() []string {
	return []string{"id", "seller_id", "title", "description", "price_amount", "currency", "images", "status", "created_at"}
}

func listingRow(l *domain.Listing) *pgxmock.Rows {
	return pgxmock.NewRows(listingColumns()).AddRow(
		l.ID, l.SellerID, l.Title, l.Description,
		l.PriceAmount, l.Currency, l.Images, l.Status, l.CreatedAt,
	)
}

func TestListingRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	l := newTestListing()

	mock.ExpectQuery("SELECT .+ FROM listings WHERE id").
		WithArgs(l.ID).
		WillReturnRows(listingRow(l))

	result, err := repo.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, l.ID, result.ID)
	assert.Equal(t, int64(150000), result.PriceAmount)
	assert.Equal(t, domain.ListingStatusActive, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM listings WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(listingColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE listings SET status").
		WithArgs(domain.ListingStatusSold, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.ListingStatusSold))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_CountByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)

	mock.ExpectQuery("SELECT").
		WillReturnRows(pgxmock.NewRows([]string{"active", "sold", "hidden"}).
			AddRow(int64(10), int64(6), int64(2)))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), counts.Active)
	assert.Equal(t, int64(6), counts.Sold)
	assert.Equal(t, int64(2), counts.Hidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}
