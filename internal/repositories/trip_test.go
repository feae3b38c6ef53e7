package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/daehyun-b/tripwise/internal/models"
)

var tripColumns = []string{"id", "title", "start_date", "end_date", "owner_id"}

func TestTripReadRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("returns owner's trips", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("FROM trips").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(tripColumns).
				AddRow(int64(1), "Jeju", "2024-05-01", "2024-05-03", int64(7)).
				AddRow(int64(2), "Busan", nil, nil, int64(7)))

		repo := NewTripReadRepository(db)
		trips, err := repo.ListByOwner(ctx, 7)

		assert.NoError(t, err)
		assert.Len(t, trips, 2)
		assert.Equal(t, "2024-05-01", trips[0].StartDate.String())
		assert.Nil(t, trips[1].StartDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no trips yields empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("FROM trips").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(tripColumns))

		repo := NewTripReadRepository(db)
		trips, err := repo.ListByOwner(ctx, 7)

		assert.NoError(t, err)
		assert.NotNil(t, trips)
		assert.Empty(t, trips)
	})
}

func TestTripReadRepository_GetByIDForOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("FROM trips").
			WithArgs(int64(1), int64(7)).
			WillReturnRows(sqlmock.NewRows(tripColumns).
				AddRow(int64(1), "Jeju", "2024-05-01", "2024-05-03", int64(7)))

		repo := NewTripReadRepository(db)
		trip, err := repo.GetByIDForOwner(ctx, 1, 7)

		assert.NoError(t, err)
		assert.Equal(t, "Jeju", trip.Title)
	})

	t.Run("wrong owner yields nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery("FROM trips").
			WithArgs(int64(1), int64(8)).
			WillReturnRows(sqlmock.NewRows(tripColumns))

		repo := NewTripReadRepository(db)
		trip, err := repo.GetByIDForOwner(ctx, 1, 8)

		assert.NoError(t, err)
		assert.Nil(t, trip)
	})
}

func TestTripWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)

	start := models.NewDate(2024, 5, 1)
	end := models.NewDate(2024, 5, 3)

	mock.ExpectQuery("INSERT INTO trips").
		WithArgs("Jeju", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7)).
		WillReturnRows(sqlmock.NewRows(tripColumns).
			AddRow(int64(1), "Jeju", "2024-05-01", "2024-05-03", int64(7)))

	repo := NewTripWriteRepository(db)
	trip, err := repo.Save(context.Background(), "Jeju", &start, &end, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), trip.ID)
	assert.Equal(t, int64(7), trip.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE trips").
		WithArgs("Jeju 2024", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTripWriteRepository(db)
	err := repo.Update(context.Background(), &models.TripDB{ID: 1, Title: "Jeju 2024", OwnerID: 7})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripWriteRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("row deleted", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM trips").
			WithArgs(int64(1), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewTripWriteRepository(db)
		deleted, err := repo.Delete(ctx, 1, 7)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("no row matched", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec("DELETE FROM trips").
			WithArgs(int64(1), int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewTripWriteRepository(db)
		deleted, err := repo.Delete(ctx, 1, 8)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
