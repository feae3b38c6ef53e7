package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/daehyun-b/tripwise/internal/models"
	"github.com/daehyun-b/tripwise/internal/services"
)

func intPtr(i int) *int { return &i }

func ownedItem(id, tripID, ownerID int64, day, seq int) models.ItemOwned {
	return models.ItemOwned{
		ItineraryItemDB: models.ItineraryItemDB{
			ID:            id,
			Day:           day,
			OrderSequence: seq,
			PlaceName:     "Somewhere",
			TripID:        tripID,
		},
		OwnerID: ownerID,
	}
}

func TestItemService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fields := models.ItemCreate{Day: 1, OrderSequence: 1, PlaceName: "Hallasan"}

	tests := []struct {
		name      string
		fields    models.ItemCreate
		mockSetup func(trips *services.MockTripReader, writer *services.MockItemWriter)
		wantErr   error
	}{
		{
			name:   "success",
			fields: fields,
			mockSetup: func(trips *services.MockTripReader, writer *services.MockItemWriter) {
				trips.EXPECT().GetByIDForOwner(gomock.Any(), int64(1), int64(7)).
					Return(&models.TripDB{ID: 1, OwnerID: 7}, nil)
				writer.EXPECT().Save(gomock.Any(), int64(1), fields).
					Return(&models.ItineraryItemDB{ID: 10, Day: 1, OrderSequence: 1, PlaceName: "Hallasan", TripID: 1}, nil)
			},
		},
		{
			// A trip owned by another user looks absent here as well.
			name:   "trip not owned",
			fields: fields,
			mockSetup: func(trips *services.MockTripReader, writer *services.MockItemWriter) {
				trips.EXPECT().GetByIDForOwner(gomock.Any(), int64(1), int64(7)).Return(nil, nil)
			},
			wantErr: services.ErrTripNotFound,
		},
		{
			name:   "day below one",
			fields: models.ItemCreate{Day: 0, PlaceName: "Hallasan"},
			mockSetup: func(trips *services.MockTripReader, writer *services.MockItemWriter) {
				trips.EXPECT().GetByIDForOwner(gomock.Any(), int64(1), int64(7)).
					Return(&models.TripDB{ID: 1, OwnerID: 7}, nil)
			},
			wantErr: services.ErrInvalidDay,
		},
		{
			name:   "missing place name",
			fields: models.ItemCreate{Day: 1},
			mockSetup: func(trips *services.MockTripReader, writer *services.MockItemWriter) {
				trips.EXPECT().GetByIDForOwner(gomock.Any(), int64(1), int64(7)).
					Return(&models.TripDB{ID: 1, OwnerID: 7}, nil)
			},
			wantErr: services.ErrPlaceNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := services.NewMockTripReader(ctrl)
			reader := services.NewMockOwnedItemReader(ctrl)
			writer := services.NewMockItemWriter(ctrl)
			tt.mockSetup(trips, writer)

			svc := services.NewItemService(trips, reader, writer)
			item, err := svc.Create(context.Background(), 1, 7, tt.fields)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), item.TripID)
			}
		})
	}
}

func TestItemService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		patch     models.ItemPatch
		mockSetup func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter)
		check     func(t *testing.T, item *models.ItineraryItemDB)
		wantErr   error
	}{
		{
			name:  "memo only",
			patch: models.ItemPatch{Memo: strPtr("bring water")},
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				owned := ownedItem(10, 1, 7, 2, 3)
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(&owned, nil)
				writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, item *models.ItineraryItemDB) {
				assert.Equal(t, "bring water", *item.Memo)
				// Omitted fields keep their stored values.
				assert.Equal(t, 2, item.Day)
				assert.Equal(t, 3, item.OrderSequence)
			},
		},
		{
			name:  "move to another day",
			patch: models.ItemPatch{Day: intPtr(3), OrderSequence: intPtr(1)},
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				owned := ownedItem(10, 1, 7, 2, 3)
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(&owned, nil)
				writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, item *models.ItineraryItemDB) {
				assert.Equal(t, 3, item.Day)
				assert.Equal(t, 1, item.OrderSequence)
			},
		},
		{
			name:  "item absent",
			patch: models.ItemPatch{Memo: strPtr("x")},
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(nil, nil)
			},
			wantErr: services.ErrItemNotFound,
		},
		{
			name:  "item owned by another user",
			patch: models.ItemPatch{Memo: strPtr("x")},
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				owned := ownedItem(10, 1, 99, 2, 3)
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(&owned, nil)
			},
			wantErr: services.ErrNotItemOwner,
		},
		{
			name:  "day below one",
			patch: models.ItemPatch{Day: intPtr(0)},
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				owned := ownedItem(10, 1, 7, 2, 3)
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(&owned, nil)
			},
			wantErr: services.ErrInvalidDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := services.NewMockTripReader(ctrl)
			reader := services.NewMockOwnedItemReader(ctrl)
			writer := services.NewMockItemWriter(ctrl)
			tt.mockSetup(reader, writer)

			svc := services.NewItemService(trips, reader, writer)
			item, err := svc.Update(context.Background(), 10, 7, tt.patch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				tt.check(t, item)
			}
		})
	}
}

func TestItemService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		mockSetup func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter)
		wantErr   error
	}{
		{
			name: "success",
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				owned := ownedItem(10, 1, 7, 1, 1)
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(&owned, nil)
				writer.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)
			},
		},
		{
			name: "item absent",
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(nil, nil)
			},
			wantErr: services.ErrItemNotFound,
		},
		{
			name: "item owned by another user",
			mockSetup: func(reader *services.MockOwnedItemReader, writer *services.MockItemWriter) {
				owned := ownedItem(10, 1, 99, 1, 1)
				reader.EXPECT().GetOwnedByID(gomock.Any(), int64(10)).Return(&owned, nil)
			},
			wantErr: services.ErrNotItemOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := services.NewMockTripReader(ctrl)
			reader := services.NewMockOwnedItemReader(ctrl)
			writer := services.NewMockItemWriter(ctrl)
			tt.mockSetup(reader, writer)

			svc := services.NewItemService(trips, reader, writer)
			err := svc.Delete(context.Background(), 10, 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemService_Reorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updates := []models.OrderUpdate{
		{ID: 10, OrderSequence: 2},
		{ID: 11, OrderSequence: 1},
	}

	t.Run("applies all updates and returns items in request order", func(t *testing.T) {
		trips := services.NewMockTripReader(ctrl)
		reader := services.NewMockOwnedItemReader(ctrl)
		writer := services.NewMockItemWriter(ctrl)

		reader.EXPECT().FindOwnedByIDs(gomock.Any(), []int64{10, 11}).
			Return([]models.ItemOwned{ownedItem(11, 1, 7, 1, 2), ownedItem(10, 1, 7, 1, 1)}, nil)
		writer.EXPECT().UpdateOrderSequences(gomock.Any(), updates).Return(nil)

		svc := services.NewItemService(trips, reader, writer)
		items, err := svc.Reorder(context.Background(), 7, updates)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(10), items[0].ID)
		assert.Equal(t, 2, items[0].OrderSequence)
		assert.Equal(t, int64(11), items[1].ID)
		assert.Equal(t, 1, items[1].OrderSequence)
	})

	t.Run("missing id aborts the whole batch", func(t *testing.T) {
		trips := services.NewMockTripReader(ctrl)
		reader := services.NewMockOwnedItemReader(ctrl)
		writer := services.NewMockItemWriter(ctrl)

		// Only one of the two requested ids exists; no write may happen.
		reader.EXPECT().FindOwnedByIDs(gomock.Any(), []int64{10, 11}).
			Return([]models.ItemOwned{ownedItem(10, 1, 7, 1, 1)}, nil)

		svc := services.NewItemService(trips, reader, writer)
		items, err := svc.Reorder(context.Background(), 7, updates)
		assert.ErrorIs(t, err, services.ErrItemNotFound)
		assert.Nil(t, items)
	})

	t.Run("foreign item aborts the whole batch before any write", func(t *testing.T) {
		trips := services.NewMockTripReader(ctrl)
		reader := services.NewMockOwnedItemReader(ctrl)
		writer := services.NewMockItemWriter(ctrl)

		reader.EXPECT().FindOwnedByIDs(gomock.Any(), []int64{10, 11}).
			Return([]models.ItemOwned{ownedItem(10, 1, 7, 1, 1), ownedItem(11, 2, 99, 1, 2)}, nil)

		svc := services.NewItemService(trips, reader, writer)
		items, err := svc.Reorder(context.Background(), 7, updates)
		assert.ErrorIs(t, err, services.ErrNotItemOwner)
		assert.Nil(t, items)
	})

	t.Run("duplicate ids in the request abort the batch", func(t *testing.T) {
		trips := services.NewMockTripReader(ctrl)
		reader := services.NewMockOwnedItemReader(ctrl)
		writer := services.NewMockItemWriter(ctrl)

		dup := []models.OrderUpdate{{ID: 10, OrderSequence: 1}, {ID: 10, OrderSequence: 2}}
		reader.EXPECT().FindOwnedByIDs(gomock.Any(), []int64{10, 10}).
			Return([]models.ItemOwned{ownedItem(10, 1, 7, 1, 1)}, nil)

		svc := services.NewItemService(trips, reader, writer)
		_, err := svc.Reorder(context.Background(), 7, dup)
		assert.ErrorIs(t, err, services.ErrItemNotFound)
	})

	t.Run("ties on order_sequence are accepted", func(t *testing.T) {
		trips := services.NewMockTripReader(ctrl)
		reader := services.NewMockOwnedItemReader(ctrl)
		writer := services.NewMockItemWriter(ctrl)

		tied := []models.OrderUpdate{{ID: 10, OrderSequence: 1}, {ID: 11, OrderSequence: 1}}
		reader.EXPECT().FindOwnedByIDs(gomock.Any(), []int64{10, 11}).
			Return([]models.ItemOwned{ownedItem(10, 1, 7, 1, 1), ownedItem(11, 1, 7, 1, 2)}, nil)
		writer.EXPECT().UpdateOrderSequences(gomock.Any(), tied).Return(nil)

		svc := services.NewItemService(trips, reader, writer)
		items, err := svc.Reorder(context.Background(), 7, tied)
		assert.NoError(t, err)
		assert.Equal(t, 1, items[0].OrderSequence)
		assert.Equal(t, 1, items[1].OrderSequence)
	})

	t.Run("store error propagates", func(t *testing.T) {
		trips := services.NewMockTripReader(ctrl)
		reader := services.NewMockOwnedItemReader(ctrl)
		writer := services.NewMockItemWriter(ctrl)

		reader.EXPECT().FindOwnedByIDs(gomock.Any(), []int64{10, 11}).
			Return([]models.ItemOwned{ownedItem(10, 1, 7, 1, 1), ownedItem(11, 1, 7, 1, 2)}, nil)
		writer.EXPECT().UpdateOrderSequences(gomock.Any(), updates).Return(errors.New("db error"))

		svc := services.NewItemService(trips, reader, writer)
		_, err := svc.Reorder(context.Background(), 7, updates)
		assert.EqualError(t, err, "db error")
	})
}
