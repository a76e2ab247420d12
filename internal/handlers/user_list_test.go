package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/task-manager-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "+15551234567"
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		mockSetup    func(m *MockUserLister)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any()).Return([]models.UserDB{
					{Username: "johndoe", Email: "john@example.com", CreatedAt: created},
					{Username: "janedoe", Email: "jane@example.com", PhoneNumber: &phone, CreatedAt: created},
				}, nil)
			},
			expectedCode: 200,
			check: func(t *testing.T, body []byte) {
				var users []map[string]any
				assert.NoError(t, json.Unmarshal(body, &users))
				assert.Len(t, users, 2)
				assert.Equal(t, "johndoe", users[0]["username"])
				assert.Nil(t, users[0]["phone_number"])
				assert.Equal(t, "2025-06-01T12:00:00Z", users[0]["created_at"])
				assert.Equal(t, phone, users[1]["phone_number"])
			},
		},
		{
			name: "empty store returns empty array",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedCode: 200,
			check: func(t *testing.T, body []byte) {
				var users []map[string]any
				assert.NoError(t, json.Unmarshal(body, &users))
				assert.NotNil(t, users)
				assert.Len(t, users, 0)
			},
		},
		{
			name: "service error",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: 500,
			check: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Failed to retrieve users", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListUsersHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.check(t, rr.Body.Bytes())
		})
	}
}
