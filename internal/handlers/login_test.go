package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/daehyun-b/tripwise/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		form            url.Values
		mockSetup       func(m *MockLoginer)
		expectedCode    int
		expectChallenge bool
	}{
		{
			name: "success",
			form: url.Values{"username": {"alice@example.com"}, "password": {"longpw1234"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "longpw1234").
					Return("signed-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			form: url.Values{"username": {"alice@example.com"}, "password": {"wrongpass"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "wrongpass").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name:         "missing password",
			form:         url.Values{"username": {"alice@example.com"}},
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			form: url.Values{"username": {"alice@example.com"}, "password": {"longpw1234"}},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "longpw1234").
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockLoginer(ctrl)
			tt.mockSetup(m)

			handler := NewLoginHandler(m)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestLoginHandler_TokenResponseShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockLoginer(ctrl)
	m.EXPECT().
		Login(gomock.Any(), "alice@example.com", "longpw1234").
		Return("signed-token", nil)

	handler := NewLoginHandler(m)

	form := url.Values{"username": {"alice@example.com"}, "password": {"longpw1234"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp TokenResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}
