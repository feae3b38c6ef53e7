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

// TripCreator defines the interface that the trip creation service must implement.
type TripCreator interface {
	Create(ctx context.Context, ownerID int64, title string, startDate, endDate *models.Date) (*models.TripDB, error)
}

// CreateTripRequest represents the JSON body for trip creation
// swagger:model CreateTripRequest
type CreateTripRequest struct {
	// Title
	// required: true
	// example: Jeju
	Title string `json:"title"`

	// First day of the trip
	// example: 2024-05-01
	StartDate *models.Date `json:"start_date"`

	// Last day of the trip
	// example: 2024-05-03
	EndDate *models.Date `json:"end_date"`
}

// NewCreateTripHandler returns an HTTP handler for trip creation.
// @Summary Create a trip
// @Description Creates a trip owned by the authenticated user. When both dates are given, end_date must not precede start_date.
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createTripRequest body handlers.CreateTripRequest true "Trip creation request"
// @Success 201 {object} models.TripDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /api/trips [post]
func NewCreateTripHandler(svc TripCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authenticated"})
			return
		}

		var req CreateTripRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		trip, err := svc.Create(r.Context(), user.ID, req.Title, req.StartDate, req.EndDate)
		if err != nil {
			switch {
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(trip)
	}
}
