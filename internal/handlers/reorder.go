package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/daehyun-b/tripwise/internal/middlewares"
	"github.com/daehyun-b/tripwise/internal/models"
)

// ItemReorderer defines the interface that the batch reorder service must implement.
type ItemReorderer interface {
	Reorder(ctx context.Context, ownerID int64, updates []models.OrderUpdate) ([]models.ItineraryItemDB, error)
}

// NewReorderItemsHandler returns an HTTP handler for the batch reorder. The
// body is a bare JSON array of {id, order_sequence}. The batch is
// all-or-nothing: one missing id or one foreign item aborts it entirely.
// @Summary Reorder itinerary items
// @Description Applies a batch of order_sequence updates atomically
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderUpdates body []models.OrderUpdate true "New order sequences"
// @Success 200 {array} models.ItineraryItemDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "An item belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "An item does not exist"
// @Router /api/items/reorder [post]
func NewReorderItemsHandler(svc ItemReorderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		var updates []models.OrderUpdate
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		items, err := svc.Reorder(r.Context(), user.ID, updates)
		if err != nil {
			writeItemError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
