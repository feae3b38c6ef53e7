package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/middlewares"
	"github.com/daehyun-b/tripwise/internal/models"
)

// TripLister defines the interface that the trip listing service must implement.
type TripLister interface {
	List(ctx context.Context, ownerID int64) ([]models.TripDB, error)
}

// NewListTripsHandler returns an HTTP handler listing the user's trips.
// @Summary List trips
// @Description Returns all trips owned by the authenticated user
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TripDB
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /api/trips [get]
func NewListTripsHandler(svc TripLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		trips, err := svc.List(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trips)
	}
}
