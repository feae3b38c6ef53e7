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

// TripGetter defines the interface that the trip detail service must implement.
type TripGetter interface {
	Get(ctx context.Context, tripID, ownerID int64) (*models.TripWithItems, error)
}

// NewGetTripHandler returns an HTTP handler for the trip detail endpoint.
// A trip owned by another user is reported as not found.
// @Summary Get a trip
// @Description Returns one of the user's trips with all of its itinerary items
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Success 200 {object} models.TripWithItems
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /api/trips/{id} [get]
func NewGetTripHandler(svc TripGetter) http.HandlerFunc {
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

		trip, err := svc.Get(r.Context(), tripID, user.ID)
		if err != nil {
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trip)
	}
}
