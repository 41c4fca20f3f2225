package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/services/business"
)

var (
	businessCols = []string{"id", "owner_id", "path", "name", "description", "logo", "created_at", "updated_at"}
	linkCols     = []string{"id", "business_id", "title", "url", "icon_type", "sort_order"}
)

func setupBusinessRepoTest(t *testing.T) (*BusinessRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewBusinessRepo(&models.Config{}, sqlxDB), mock
}

func TestBusinessRepo_GetByPath(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now()

	t.Run("with ordered links", func(t *testing.T) {
		// Arrange
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM businesses WHERE path = \\$1").
			WithArgs("coffee-house").
			WillReturnRows(sqlmock.NewRows(businessCols).
				AddRow(int64(3), ownerID.String(), "coffee-house", "Coffee House", "", nil, now, now))
		mock.ExpectQuery("^SELECT (.+) FROM links WHERE business_id = \\$1 ORDER BY sort_order, id").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(linkCols).
				AddRow(int64(11), int64(3), "Call", "tel:+998901234567", "phone", 0).
				AddRow(int64(10), int64(3), "Site", "https://coffee.uz", "website", 1))

		// Act
		b, err := repo.GetByPath(context.Background(), "coffee-house")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, ownerID, b.OwnerID)
		assert.Nil(t, b.Logo)
		require.Len(t, b.Links, 2)
		assert.Equal(t, "tel:+998901234567", b.Links[0].URL)
		assert.Equal(t, 1, b.Links[1].Order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM businesses").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		b, err := repo.GetByPath(context.Background(), "missing")

		assert.Nil(t, b)
		assert.ErrorIs(t, err, business.ErrBusinessNotFound)
	})
}

func TestBusinessRepo_ListByOwner(t *testing.T) {
	ownerID := uuid.New()
	now := time.Now()

	t.Run("attaches links to their business", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM businesses WHERE owner_id = \\$1").
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows(businessCols).
				AddRow(int64(2), ownerID.String(), "second", "Second", "", "logos/2.png", now, now).
				AddRow(int64(1), ownerID.String(), "first", "First", "", nil, now, now))
		mock.ExpectQuery("^SELECT (.+) FROM links WHERE business_id IN \\(\\?, \\?\\)").
			WithArgs(int64(2), int64(1)).
			WillReturnRows(sqlmock.NewRows(linkCols).
				AddRow(int64(5), int64(1), "A", "https://a.uz", "website", 0).
				AddRow(int64(6), int64(2), "B", "https://b.uz", "website", 0))

		list, err := repo.ListByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "logos/2.png", *list[0].Logo)
		require.Len(t, list[0].Links, 1)
		assert.Equal(t, "B", list[0].Links[0].Title)
		require.Len(t, list[1].Links, 1)
		assert.Equal(t, "A", list[1].Links[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no businesses", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM businesses").
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows(businessCols))

		list, err := repo.ListByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBusinessRepo_Create(t *testing.T) {
	ownerID := uuid.New()
	newBusiness := func() *models.Business {
		return &models.Business{
			OwnerID: ownerID,
			Path:    "coffee-house",
			Name:    "Coffee House",
			Links: []models.Link{
				{Title: "Site", URL: "https://coffee.uz", IconType: "website", Order: 0},
			},
		}
	}

	t.Run("inserts business and links in one transaction", func(t *testing.T) {
		// Arrange
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery("^INSERT INTO businesses (.+) RETURNING id").
			WithArgs(ownerID, "coffee-house", "Coffee House", "", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
		mock.ExpectQuery("^INSERT INTO links (.+) RETURNING id").
			WithArgs(int64(42), "Site", "https://coffee.uz", "website", 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100)))
		mock.ExpectCommit()

		b := newBusiness()

		// Act
		err := repo.Create(context.Background(), b)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(42), b.ID)
		assert.Equal(t, int64(100), b.Links[0].ID)
		assert.Equal(t, int64(42), b.Links[0].BusinessID)
		assert.False(t, b.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate path", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery("^INSERT INTO businesses").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "businesses_path_key"})
		mock.ExpectRollback()

		err := repo.Create(context.Background(), newBusiness())

		assert.ErrorIs(t, err, business.ErrPathTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("link insert failure rolls back", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectQuery("^INSERT INTO businesses").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
		mock.ExpectQuery("^INSERT INTO links").
			WillReturnError(errors.New("value too long"))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), newBusiness())

		assert.ErrorContains(t, err, "failed to insert link")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBusinessRepo_Update(t *testing.T) {
	b := &models.Business{
		ID:   7,
		Path: "renamed",
		Name: "Renamed",
		Links: []models.Link{
			{Title: "One", URL: "https://1.uz", IconType: "website", Order: 0},
			{Title: "Two", URL: "https://2.uz", IconType: "x", Order: 1},
		},
	}

	t.Run("replaces links", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec("^UPDATE businesses SET path = \\$1, name = \\$2, description = \\$3, logo = \\$4, updated_at = \\$5 WHERE id = \\$6").
			WithArgs("renamed", "Renamed", "", nil, sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("^DELETE FROM links WHERE business_id = \\$1").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectQuery("^INSERT INTO links").
			WithArgs(int64(7), "One", "https://1.uz", "website", 0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(20)))
		mock.ExpectQuery("^INSERT INTO links").
			WithArgs(int64(7), "Two", "https://2.uz", "x", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))
		mock.ExpectCommit()

		err := repo.Update(context.Background(), b, true)

		require.NoError(t, err)
		assert.Equal(t, int64(21), b.Links[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps links", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec("^UPDATE businesses").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Update(context.Background(), b, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("path taken", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec("^UPDATE businesses").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Update(context.Background(), b, true), business.ErrPathTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBusinessRepo_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectExec("^DELETE FROM businesses WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 7))
	})

	t.Run("already gone", func(t *testing.T) {
		repo, mock := setupBusinessRepoTest(t)
		mock.ExpectExec("^DELETE FROM businesses").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 7), business.ErrBusinessNotFound)
	})
}
