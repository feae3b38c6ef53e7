package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/daehyun-b/tripwise/internal/logger"
	"github.com/daehyun-b/tripwise/internal/middlewares"
	"github.com/daehyun-b/tripwise/internal/models"
)

// MeResponse represents the current user together with their trips
// swagger:model MeResponse
type MeResponse struct {
	ID       int64           `json:"id"`
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Trips    []models.TripDB `json:"trips"`
}

// NewMeHandler returns an HTTP handler for the current-user endpoint.
// @Summary Current user
// @Description Returns the authenticated user and the trips they own
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MeResponse
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /api/users/me [get]
func NewMeHandler(svc TripLister) http.HandlerFunc {
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
		json.NewEncoder(w).Encode(MeResponse{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			Trips:    trips,
		})
	}
}
