package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/middlewares"
	"github.com/daehyun-b/tripwise/internal/models"
	"github.com/daehyun-b/tripwise/internal/services"
)

// ItemUpdater defines the interface that the item update service must implement.
type ItemUpdater interface {
	Update(ctx context.Context, itemID, ownerID int64, patch models.ItemPatch) (*models.ItineraryItemDB, error)
}

// NewUpdateItemHandler returns an HTTP handler for partial item updates.
// Unlike trip lookups, the item is found by id first, so an ownership
// mismatch surfaces as 403 rather than 404.
// @Summary Update an itinerary item
// @Description Applies a partial update to an item of one of the user's trips
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param itemPatch body models.ItemPatch true "Fields to update"
// @Success 200 {object} models.ItineraryItemDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Item belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Router /api/items/{id} [put]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		itemID, err := parseIDParam(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid item id"})
			return
		}

		var patch models.ItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Update(r.Context(), itemID, user.ID, patch)
		if err != nil {
			writeItemError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(item)
	}
}

// writeItemError maps item service failures onto HTTP statuses.
func writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotItemOwner):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidDay):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
	}
}
