package createEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCheckout/internal/http-server/handlers/event/createEvent/mocks"
	"eventCheckout/internal/lib/logger/handlers/slogdiscard"
	"eventCheckout/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"id": "congresso-2026",
		"title": "Congresso 2026",
		"date": "2026-03-10T09:00:00Z",
		"max_participants": 300,
		"price_tiers": [
			{"min_quantity": 1, "price_in_cents": 50000},
			{"min_quantity": 4, "price_in_cents": 40000}
		]
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
					return e.ID == "congresso-2026" &&
						e.Status == models.EventStatusOpen &&
						len(e.PriceTiers) == 2
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","event_id":"congresso-2026"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"id":"e1","date":"2026-03-10T09:00:00Z","max_participants":10,"price_tiers":[{"min_quantity":1,"price_in_cents":100}]}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:           "First tier not one",
			requestBody:    `{"id":"e1","title":"X","date":"2026-03-10T09:00:00Z","max_participants":10,"price_tiers":[{"min_quantity":2,"price_in_cents":100}]}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "first price tier")
			},
		},
		{
			name:           "Tiers not increasing",
			requestBody:    `{"id":"e1","title":"X","date":"2026-03-10T09:00:00Z","max_participants":10,"price_tiers":[{"min_quantity":1,"price_in_cents":100},{"min_quantity":1,"price_in_cents":90}]}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "strictly increasing")
			},
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/api/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
