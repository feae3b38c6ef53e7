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

// ItemReadRepository reads itinerary items. Lookups by item id join onto
// trips so the caller always sees the owning user alongside the item.
type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// ListByTrip returns all items of a trip ordered by day and order_sequence.
// Items sharing a sequence come back in an unspecified relative order.
func (r *ItemReadRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.ItineraryItemDB, error) {
	const query = `
		SELECT id, day, order_sequence, place_name, address, memo, latitude, longitude, trip_id
		FROM itinerary_items
		WHERE trip_id = $1
		ORDER BY day, order_sequence
	`

	items := []models.ItineraryItemDB{}
	err := r.db.SelectContext(ctx, &items, query, tripID)

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tripID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetOwnedByID returns the item with the owner of its trip, or nil when the
// item does not exist.
func (r *ItemReadRepository) GetOwnedByID(ctx context.Context, itemID int64) (*models.ItemOwned, error) {
	const query = `
		SELECT i.id, i.day, i.order_sequence, i.place_name, i.address, i.memo,
		       i.latitude, i.longitude, i.trip_id, t.owner_id
		FROM itinerary_items i
		JOIN trips t ON t.id = i.trip_id
		WHERE i.id = $1
	`

	var item models.ItemOwned
	err := r.db.GetContext(ctx, &item, query, itemID)

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindOwnedByIDs returns the items whose ids appear in ids, each joined with
// its trip's owner. Missing ids are simply absent from the result.
func (r *ItemReadRepository) FindOwnedByIDs(ctx context.Context, ids []int64) ([]models.ItemOwned, error) {
	if len(ids) == 0 {
		return []models.ItemOwned{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT i.id, i.day, i.order_sequence, i.place_name, i.address, i.memo,
		       i.latitude, i.longitude, i.trip_id, t.owner_id
		FROM itinerary_items i
		JOIN trips t ON t.id = i.trip_id
		WHERE i.id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	items := []models.ItemOwned{}
	err = r.db.SelectContext(ctx, &items, query, args...)

	logger.Log.Infow("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

type ItemWriteRepository struct {
	db *sqlx.DB
}

func NewItemWriteRepository(db *sqlx.DB) *ItemWriteRepository {
	return &ItemWriteRepository{db: db}
}

// Save inserts a new itinerary item and returns the stored record.
func (r *ItemWriteRepository) Save(ctx context.Context, tripID int64, fields models.ItemCreate) (*models.ItineraryItemDB, error) {
	const query = `
		INSERT INTO itinerary_items (day, order_sequence, place_name, address, memo, latitude, longitude, trip_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, day, order_sequence, place_name, address, memo, latitude, longitude, trip_id
	`
	args := []any{fields.Day, fields.OrderSequence, fields.PlaceName, fields.Address, fields.Memo, fields.Latitude, fields.Longitude, tripID}

	var item models.ItineraryItemDB
	err := r.db.GetContext(ctx, &item, query, args...)

	logger.Log.Infow("item insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update writes the item's mutable fields.
func (r *ItemWriteRepository) Update(ctx context.Context, item *models.ItineraryItemDB) error {
	const query = `
		UPDATE itinerary_items
		SET day = $1, order_sequence = $2, memo = $3
		WHERE id = $4
	`
	args := []any{item.Day, item.OrderSequence, item.Memo, item.ID}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("item update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes a single item. This is a leaf delete, nothing cascades.
func (r *ItemWriteRepository) Delete(ctx context.Context, itemID int64) error {
	const query = `
		DELETE FROM itinerary_items
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, itemID)

	logger.Log.Infow("item delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"error", err,
	)

	return err
}

// UpdateOrderSequences applies all order updates inside one transaction.
// Either every row is written or none is.
func (r *ItemWriteRepository) UpdateOrderSequences(ctx context.Context, updates []models.OrderUpdate) error {
	const query = `
		UPDATE itinerary_items
		SET order_sequence = $1
		WHERE id = $2
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin reorder transaction", "error", err)
		return err
	}

	for _, u := range updates {
		if _, err := tx.ExecContext(ctx, query, u.OrderSequence, u.ID); err != nil {
			tx.Rollback()
			logger.Log.Errorw("reorder update failed",
				"item_id", u.ID,
				"order_sequence", u.OrderSequence,
				"error", err,
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit reorder transaction", "error", err)
		return err
	}

	logger.Log.Infow("reorder committed", "count", len(updates))
	return nil
}
