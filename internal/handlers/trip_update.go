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

// TripUpdater defines the interface that the trip update service must implement.
type TripUpdater interface {
	Update(ctx context.Context, tripID, ownerID int64, patch models.TripPatch) (*models.TripDB, error)
}

// NewUpdateTripHandler returns an HTTP handler for partial trip updates.
// Omitted fields keep their stored values; the date-pair rule is checked on
// the merged result.
// @Summary Update a trip
// @Description Applies a partial update to one of the user's trips
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Param tripPatch body models.TripPatch true "Fields to update"
// @Success 200 {object} models.TripDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /api/trips/{id} [put]
func NewUpdateTripHandler(svc TripUpdater) http.HandlerFunc {
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

		var patch models.TripPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		trip, err := svc.Update(r.Context(), tripID, user.ID, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTripNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrTitleRequired),
				errors.Is(err, services.ErrInvalidDateRange):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trip)
	}
}
