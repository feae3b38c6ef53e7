package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/daehyun-b/tripwise/internal/models"
	"github.com/daehyun-b/tripwise/internal/services"
)

func TestUpdateTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Email: "alice@example.com", Username: "alice"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockTripUpdater)
		expectedCode int
	}{
		{
			name: "title only",
			body: `{"title":"Jeju 2024"}`,
			mockSetup: func(m *MockTripUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(1), int64(7), gomock.Any()).
					DoAndReturn(func(_ any, _, _ int64, patch models.TripPatch) (*models.TripDB, error) {
						assert.NotNil(t, patch.Title)
						assert.Equal(t, "Jeju 2024", *patch.Title)
						assert.Nil(t, patch.StartDate)
						assert.Nil(t, patch.EndDate)
						return &models.TripDB{ID: 1, Title: "Jeju 2024", OwnerID: 7}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "merged dates invalid",
			body: `{"end_date":"2024-04-30"}`,
			mockSetup: func(m *MockTripUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(1), int64(7), gomock.Any()).
					Return(nil, services.ErrInvalidDateRange)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "trip not found",
			body: `{"title":"anything"}`,
			mockSetup: func(m *MockTripUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(1), int64(7), gomock.Any()).
					Return(nil, services.ErrTripNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockTripUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockTripUpdater(ctrl)
			tt.mockSetup(m)

			r := chi.NewRouter()
			r.Put("/api/trips/{id}", NewUpdateTripHandler(m))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, authedRequest(http.MethodPut, "/api/trips/1", bytes.NewBufferString(tt.body), user))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Email: "alice@example.com", Username: "alice"}

	newRouter := func(m *MockTripDeleter) *chi.Mux {
		r := chi.NewRouter()
		r.Delete("/api/trips/{id}", NewDeleteTripHandler(m))
		return r
	}

	t.Run("deleted", func(t *testing.T) {
		m := NewMockTripDeleter(ctrl)
		m.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(nil)

		rr := httptest.NewRecorder()
		newRouter(m).ServeHTTP(rr, authedRequest(http.MethodDelete, "/api/trips/1", nil, user))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		m := NewMockTripDeleter(ctrl)
		m.EXPECT().Delete(gomock.Any(), int64(99), int64(7)).Return(services.ErrTripNotFound)

		rr := httptest.NewRecorder()
		newRouter(m).ServeHTTP(rr, authedRequest(http.MethodDelete, "/api/trips/99", nil, user))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
