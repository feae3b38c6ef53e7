package services

import (
	"context"
	"errors"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/models"
)

// Error variables
var (
	ErrItemNotFound      = errors.New("itinerary item not found")
	ErrNotItemOwner      = errors.New("item belongs to another user's trip")
	ErrInvalidDay        = errors.New("day must be at least 1")
	ErrPlaceNameRequired = errors.New("place_name is required")
)

// OwnedItemReader reads items joined with their trip's owner.
type OwnedItemReader interface {
	GetOwnedByID(ctx context.Context, itemID int64) (*models.ItemOwned, error)
	FindOwnedByIDs(ctx context.Context, ids []int64) ([]models.ItemOwned, error)
}

// ItemWriter defines write operations for itinerary items.
type ItemWriter interface {
	Save(ctx context.Context, tripID int64, fields models.ItemCreate) (*models.ItineraryItemDB, error)
	Update(ctx context.Context, item *models.ItineraryItemDB) error
	Delete(ctx context.Context, itemID int64) error
	UpdateOrderSequences(ctx context.Context, updates []models.OrderUpdate) error
}

// ItemService orchestrates itinerary item CRUD and the batch reorder.
//
// Trip-level operations hide foreign trips behind not-found, but item
// operations look the item up by id first, so ownership failures surface as
// a distinct forbidden error: the id's existence is already implied by the
// lookup and there is nothing left to leak.
type ItemService struct {
	trips  TripReader
	reader OwnedItemReader
	writer ItemWriter
}

// NewItemService creates a new ItemService instance.
func NewItemService(trips TripReader, reader OwnedItemReader, writer ItemWriter) *ItemService {
	return &ItemService{
		trips:  trips,
		reader: reader,
		writer: writer,
	}
}

// Create persists a new item under the given trip. The trip must be owned by
// ownerID; a foreign or absent trip is reported as not found.
func (svc *ItemService) Create(ctx context.Context, tripID, ownerID int64, fields models.ItemCreate) (*models.ItineraryItemDB, error) {
	trip, err := svc.trips.GetByIDForOwner(ctx, tripID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get trip", "err", err)
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	if fields.Day < 1 {
		return nil, ErrInvalidDay
	}
	if fields.PlaceName == "" {
		return nil, ErrPlaceNameRequired
	}

	item, err := svc.writer.Save(ctx, trip.ID, fields)
	if err != nil {
		logger.Log.Errorw("failed to save item", "err", err)
		return nil, err
	}
	return item, nil
}

// Update merges the patch onto the stored item after verifying that the
// item's trip belongs to ownerID.
func (svc *ItemService) Update(ctx context.Context, itemID, ownerID int64, patch models.ItemPatch) (*models.ItineraryItemDB, error) {
	owned, err := svc.reader.GetOwnedByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to get item", "err", err)
		return nil, err
	}
	if owned == nil {
		return nil, ErrItemNotFound
	}
	if owned.OwnerID != ownerID {
		logger.Log.Infow("item ownership mismatch", "item_id", itemID, "user_id", ownerID)
		return nil, ErrNotItemOwner
	}

	if patch.Day != nil {
		if *patch.Day < 1 {
			return nil, ErrInvalidDay
		}
		owned.Day = *patch.Day
	}
	if patch.OrderSequence != nil {
		owned.OrderSequence = *patch.OrderSequence
	}
	if patch.Memo != nil {
		owned.Memo = patch.Memo
	}

	item := owned.ItineraryItemDB
	if err := svc.writer.Update(ctx, &item); err != nil {
		logger.Log.Errorw("failed to update item", "err", err)
		return nil, err
	}
	return &item, nil
}

// Delete removes a single item after the same lookup-then-ownership check as
// Update.
func (svc *ItemService) Delete(ctx context.Context, itemID, ownerID int64) error {
	owned, err := svc.reader.GetOwnedByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to get item", "err", err)
		return err
	}
	if owned == nil {
		return ErrItemNotFound
	}
	if owned.OwnerID != ownerID {
		logger.Log.Infow("item ownership mismatch", "item_id", itemID, "user_id", ownerID)
		return ErrNotItemOwner
	}

	if err := svc.writer.Delete(ctx, itemID); err != nil {
		logger.Log.Errorw("failed to delete item", "err", err)
		return err
	}
	return nil
}

// Reorder applies a batch of order_sequence updates with all-or-nothing
// semantics. The sequence is fetch all, verify all, then commit once: no
// mutation happens until every requested id has been found and every item's
// trip has been verified against ownerID.
func (svc *ItemService) Reorder(ctx context.Context, ownerID int64, updates []models.OrderUpdate) ([]models.ItineraryItemDB, error) {
	ids := make([]int64, len(updates))
	for i, u := range updates {
		ids[i] = u.ID
	}

	owned, err := svc.reader.FindOwnedByIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to fetch items for reorder", "err", err)
		return nil, err
	}
	if len(owned) != len(updates) {
		logger.Log.Infow("reorder aborted, missing items",
			"requested", len(updates),
			"found", len(owned),
		)
		return nil, ErrItemNotFound
	}

	byID := make(map[int64]*models.ItemOwned, len(owned))
	for i := range owned {
		if owned[i].OwnerID != ownerID {
			logger.Log.Infow("reorder aborted, ownership mismatch",
				"item_id", owned[i].ID,
				"user_id", ownerID,
			)
			return nil, ErrNotItemOwner
		}
		byID[owned[i].ID] = &owned[i]
	}

	if err := svc.writer.UpdateOrderSequences(ctx, updates); err != nil {
		logger.Log.Errorw("failed to apply reorder", "err", err)
		return nil, err
	}

	result := make([]models.ItineraryItemDB, len(updates))
	for i, u := range updates {
		item := byID[u.ID].ItineraryItemDB
		item.OrderSequence = u.OrderSequence
		result[i] = item
	}
	return result, nil
}
