package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/daehyun-b/tripwise/internal/middlewares"
)

// ItemDeleter defines the interface that the item deletion service must implement.
type ItemDeleter interface {
	Delete(ctx context.Context, itemID, ownerID int64) error
}

// NewDeleteItemHandler returns an HTTP handler for item deletion.
// @Summary Delete an itinerary item
// @Description Deletes a single item of one of the user's trips
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 403 {object} handlers.ErrorResponse "Item belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Router /api/items/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), itemID, user.ID); err != nil {
			writeItemError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
