package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/middlewares"
	"github.com/daehyun-b/tripwise/internal/services"
)

// TripDeleter defines the interface that the trip deletion service must implement.
type TripDeleter interface {
	Delete(ctx context.Context, tripID, ownerID int64) error
}

// NewDeleteTripHandler returns an HTTP handler for trip deletion. Deleting a
// trip removes all of its itinerary items.
// @Summary Delete a trip
// @Description Deletes one of the user's trips together with its items
// @Tags trips
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /api/trips/{id} [delete]
func NewDeleteTripHandler(svc TripDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		tripID, err := parseIDParam(r, "id")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid trip id"})
			return
		}

		if err := svc.Delete(r.Context(), tripID, user.ID); err != nil {
			switch {
			case errors.Is(err, services.ErrTripNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
