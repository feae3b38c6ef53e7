package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/daehyun-b/tripwise/internal/models"
	"github.com/daehyun-b/tripwise/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","username":"alice","password":"longpw1234"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alice", "longpw1234").
					Return(&models.UserDB{ID: 1, Email: "alice@example.com", Username: "alice"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: `{"email":"alice@example.com","username":"alice","password":"longpw1234"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alice", "longpw1234").
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "password too short",
			body: `{"email":"alice@example.com","username":"alice","password":"short"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alice", "short").
					Return(nil, services.ErrPasswordLength)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing email",
			body:         `{"username":"alice","password":"longpw1234"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			body: `{"email":"alice@example.com","username":"alice","password":"longpw1234"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "alice", "longpw1234").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockRegisterer(ctrl)
			tt.mockSetup(m)

			handler := NewRegisterHandler(m)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

// The stored password hash must never leak through the response body.
func TestRegisterHandler_OmitsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockRegisterer(ctrl)
	m.EXPECT().
		Register(gomock.Any(), "alice@example.com", "alice", "longpw1234").
		Return(&models.UserDB{ID: 1, Email: "alice@example.com", Username: "alice", PasswordHash: "$2a$10$secret"}, nil)

	handler := NewRegisterHandler(m)

	body := `{"email":"alice@example.com","username":"alice","password":"longpw1234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")

	var got map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "alice@example.com", got["email"])
	assert.Equal(t, "alice", got["username"])
}
