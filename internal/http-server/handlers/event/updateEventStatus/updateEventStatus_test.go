package updateEventStatus

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCheckout/internal/http-server/handlers/event/updateEventStatus/mocks"
	"eventCheckout/internal/lib/logger/handlers/slogdiscard"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateEventStatusHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		body           string
		mockSetup      func(m *mocks.EventStatusSetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Close event",
			eventID: "e1",
			body:    `{"status":"closed"}`,
			mockSetup: func(m *mocks.EventStatusSetter) {
				m.On("SetEventStatus", mock.Anything, "e1", models.EventStatusClosed).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Reopen event",
			eventID: "e1",
			body:    `{"status":"open"}`,
			mockSetup: func(m *mocks.EventStatusSetter) {
				m.On("SetEventStatus", mock.Anything, "e1", models.EventStatusOpen).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Unknown status",
			eventID:        "e1",
			body:           `{"status":"archived"}`,
			mockSetup:      func(m *mocks.EventStatusSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Status must be one of: open closed canceled"}`,
		},
		{
			name:           "Missing status",
			eventID:        "e1",
			body:           `{}`,
			mockSetup:      func(m *mocks.EventStatusSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Status is a required field"}`,
		},
		{
			name:    "Event not found",
			eventID: "missing",
			body:    `{"status":"closed"}`,
			mockSetup: func(m *mocks.EventStatusSetter) {
				m.On("SetEventStatus", mock.Anything, "missing", models.EventStatusClosed).
					Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Storage error",
			eventID: "e1",
			body:    `{"status":"canceled"}`,
			mockSetup: func(m *mocks.EventStatusSetter) {
				m.On("SetEventStatus", mock.Anything, "e1", models.EventStatusCanceled).
					Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event status"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSetter := mocks.NewEventStatusSetter(t)
			tc.mockSetup(mockSetter)

			handler := New(logger, mockSetter)

			router := chi.NewRouter()
			router.Patch("/api/events/{id}/status", handler)

			req, err := http.NewRequest(
				"PATCH",
				"/api/events/"+tc.eventID+"/status",
				bytes.NewBufferString(tc.body),
			)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
