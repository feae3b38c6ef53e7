package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/models"
)

// TripReadRepository reads trips. Every query is parameterized by the owning
// user id; there is no lookup by trip id alone.
type TripReadRepository struct {
	db *sqlx.DB
}

func NewTripReadRepository(db *sqlx.DB) *TripReadRepository {
	return &TripReadRepository{db: db}
}

// ListByOwner returns all trips owned by the given user.
func (r *TripReadRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.TripDB, error) {
	const query = `
		SELECT id, title, start_date, end_date, owner_id
		FROM trips
		WHERE owner_id = $1
		ORDER BY id
	`

	trips := []models.TripDB{}
	err := r.db.SelectContext(ctx, &trips, query, ownerID)

	logger.Log.Infow("trip query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return trips, nil
}

// GetByIDForOwner returns the trip with the given id if it is owned by the
// given user, or nil when the trip is absent or owned by someone else.
func (r *TripReadRepository) GetByIDForOwner(ctx context.Context, tripID, ownerID int64) (*models.TripDB, error) {
	const query = `
		SELECT id, title, start_date, end_date, owner_id
		FROM trips
		WHERE id = $1 AND owner_id = $2
	`

	var trip models.TripDB
	err := r.db.GetContext(ctx, &trip, query, tripID, ownerID)

	logger.Log.Infow("trip query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tripID, ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

type TripWriteRepository struct {
	db *sqlx.DB
}

func NewTripWriteRepository(db *sqlx.DB) *TripWriteRepository {
	return &TripWriteRepository{db: db}
}

// Save inserts a new trip for the given owner and returns the stored record.
func (r *TripWriteRepository) Save(ctx context.Context, title string, startDate, endDate *models.Date, ownerID int64) (*models.TripDB, error) {
	const query = `
		INSERT INTO trips (title, start_date, end_date, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, start_date, end_date, owner_id
	`
	args := []any{title, startDate, endDate, ownerID}

	var trip models.TripDB
	err := r.db.GetContext(ctx, &trip, query, args...)

	logger.Log.Infow("trip insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// Update writes the trip's mutable fields. The owner id is part of the WHERE
// clause so a stale or foreign trip row is never touched.
func (r *TripWriteRepository) Update(ctx context.Context, trip *models.TripDB) error {
	const query = `
		UPDATE trips
		SET title = $1, start_date = $2, end_date = $3
		WHERE id = $4 AND owner_id = $5
	`
	args := []any{trip.Title, trip.StartDate, trip.EndDate, trip.ID, trip.OwnerID}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("trip update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes the trip if it is owned by the given user. Itinerary items
// ride the ON DELETE CASCADE foreign key. Returns false when no row matched.
func (r *TripWriteRepository) Delete(ctx context.Context, tripID, ownerID int64) (bool, error) {
	const query = `
		DELETE FROM trips
		WHERE id = $1 AND owner_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, tripID, ownerID)

	logger.Log.Infow("trip delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tripID, ownerID},
		"error", err,
	)

	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
