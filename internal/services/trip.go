package services

import (
	"context"
	"errors"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/models"
)

// Error variables
var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)

// TripReader defines owner-scoped read operations for trips.
type TripReader interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.TripDB, error)
	GetByIDForOwner(ctx context.Context, tripID, ownerID int64) (*models.TripDB, error)
}

// TripWriter defines write operations for trips.
type TripWriter interface {
	Save(ctx context.Context, title string, startDate, endDate *models.Date, ownerID int64) (*models.TripDB, error)
	Update(ctx context.Context, trip *models.TripDB) error
	Delete(ctx context.Context, tripID, ownerID int64) (bool, error)
}

// TripItemLister reads the items belonging to a trip.
type TripItemLister interface {
	ListByTrip(ctx context.Context, tripID int64) ([]models.ItineraryItemDB, error)
}

// TripService orchestrates trip CRUD for the authenticated owner.
type TripService struct {
	reader TripReader
	writer TripWriter
	items  TripItemLister
}

// NewTripService creates a new TripService instance.
func NewTripService(reader TripReader, writer TripWriter, items TripItemLister) *TripService {
	return &TripService{
		reader: reader,
		writer: writer,
		items:  items,
	}
}

// validateDates rejects a date pair where the end precedes the start. Either
// date may be absent.
func validateDates(start, end *models.Date) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Create persists a new trip owned by ownerID.
func (svc *TripService) Create(ctx context.Context, ownerID int64, title string, startDate, endDate *models.Date) (*models.TripDB, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	trip, err := svc.writer.Save(ctx, title, startDate, endDate, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to save trip", "err", err)
		return nil, err
	}
	return trip, nil
}

// List returns all trips owned by ownerID.
func (svc *TripService) List(ctx context.Context, ownerID int64) ([]models.TripDB, error) {
	trips, err := svc.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list trips", "err", err)
		return nil, err
	}
	return trips, nil
}

// Get returns a trip with its items. A trip that is absent or owned by
// someone else is reported as not found either way, so callers cannot probe
// for other users' trip ids.
func (svc *TripService) Get(ctx context.Context, tripID, ownerID int64) (*models.TripWithItems, error) {
	trip, err := svc.reader.GetByIDForOwner(ctx, tripID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get trip", "err", err)
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	items, err := svc.items.ListByTrip(ctx, trip.ID)
	if err != nil {
		logger.Log.Errorw("failed to list trip items", "err", err)
		return nil, err
	}

	return &models.TripWithItems{TripDB: *trip, Items: items}, nil
}

// Update merges the patch onto the stored trip and re-validates the merged
// date pair before anything is written. A field omitted from the patch keeps
// its stored value for the purpose of the check.
func (svc *TripService) Update(ctx context.Context, tripID, ownerID int64, patch models.TripPatch) (*models.TripDB, error) {
	trip, err := svc.reader.GetByIDForOwner(ctx, tripID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get trip", "err", err)
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, ErrTitleRequired
		}
		trip.Title = *patch.Title
	}
	if patch.StartDate != nil {
		trip.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		trip.EndDate = patch.EndDate
	}

	if err := validateDates(trip.StartDate, trip.EndDate); err != nil {
		return nil, err
	}

	if err := svc.writer.Update(ctx, trip); err != nil {
		logger.Log.Errorw("failed to update trip", "err", err)
		return nil, err
	}
	return trip, nil
}

// Delete removes the trip and, through the cascade, all of its items.
func (svc *TripService) Delete(ctx context.Context, tripID, ownerID int64) error {
	deleted, err := svc.writer.Delete(ctx, tripID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete trip", "err", err)
		return err
	}
	if !deleted {
		return ErrTripNotFound
	}
	return nil
}
