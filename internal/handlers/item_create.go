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

// ItemCreator defines the interface that the item creation service must implement.
type ItemCreator interface {
	Create(ctx context.Context, tripID, ownerID int64, fields models.ItemCreate) (*models.ItineraryItemDB, error)
}

// NewCreateItemHandler returns an HTTP handler for adding an item to a trip.
// @Summary Create an itinerary item
// @Description Adds an item to one of the user's trips. Day must be at least 1.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip ID"
// @Param itemCreate body models.ItemCreate true "Item fields"
// @Success 201 {object} models.ItineraryItemDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /api/trips/{id}/items [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
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

		var fields models.ItemCreate
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Create(r.Context(), tripID, user.ID, fields)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTripNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrInvalidDay),
				errors.Is(err, services.ErrPlaceNameRequired):
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
		json.NewEncoder(w).Encode(item)
	}
}
