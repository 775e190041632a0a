package createRegistration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCheckout/internal/http-server/handlers/registration/createRegistration/mocks"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/handlers/slogdiscard"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	buyer := auth.Identity{UserID: "u1", Name: "Maria Silva"}
	attendee := auth.Identity{UserID: "u9", Name: "João Souza"}

	activeCheckout := &models.Checkout{
		ID:      "e1_u1",
		EventID: "e1",
		UserID:  "u1",
		Status:  models.CheckoutStatusPaid,
	}

	deletedCheckout := &models.Checkout{
		ID:      "e1_u1",
		EventID: "e1",
		UserID:  "u1",
		Status:  models.CheckoutStatusDeleted,
	}

	body := `{
		"checkout_id": "e1_u1",
		"attendee": {
			"name": "João Souza",
			"cpf": "98765432100",
			"email": "joao@example.com",
			"consent_image_use": true
		}
	}`

	testCases := []struct {
		name           string
		identity       auth.Identity
		body           string
		mockSetup      func(m *mocks.RegistrationCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:     "Attendee registers",
			identity: attendee,
			body:     body,
			mockSetup: func(m *mocks.RegistrationCreator) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(activeCheckout, nil)
				m.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg *models.Registration) bool {
					return reg.CheckoutID == "e1_u1" &&
						reg.EventID == "e1" &&
						reg.CreatedBy == models.CreatorAttendee &&
						reg.Status == models.RegistrationStatusPending &&
						reg.Attendee.CPF == "98765432100"
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp RegistrationResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.NotEmpty(t, resp.Registration.ID)
				assert.Equal(t, models.RegistrationStatusPending, resp.Registration.Status)
			},
		},
		{
			name:     "Buyer role is recorded",
			identity: buyer,
			body:     body,
			mockSetup: func(m *mocks.RegistrationCreator) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(activeCheckout, nil)
				m.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg *models.Registration) bool {
					return reg.CreatedBy == models.CreatorBuyer
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody:      func(t *testing.T, body string) {},
		},
		{
			name:     "Deleted checkout rejected",
			identity: attendee,
			body:     body,
			mockSetup: func(m *mocks.RegistrationCreator) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(deletedCheckout, nil)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"checkout is not active"}`, body)
			},
		},
		{
			name:     "Duplicate CPF",
			identity: attendee,
			body:     body,
			mockSetup: func(m *mocks.RegistrationCreator) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(activeCheckout, nil)
				m.On("CreateRegistration", mock.Anything, mock.Anything).
					Return(storage.ErrAlreadyRegistered)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"attendee is already registered for this event"}`, body)
			},
		},
		{
			name:     "Checkout not found",
			identity: attendee,
			body:     body,
			mockSetup: func(m *mocks.RegistrationCreator) {
				m.On("GetCheckout", mock.Anything, "e1_u1").
					Return(nil, storage.ErrCheckoutNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"checkout not found"}`, body)
			},
		},
		{
			name:     "Missing attendee email",
			identity: attendee,
			body: `{
				"checkout_id": "e1_u1",
				"attendee": {"name": "João Souza", "cpf": "98765432100"}
			}`,
			mockSetup:      func(m *mocks.RegistrationCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Email")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewRegistrationCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/api/registrations", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req = req.WithContext(auth.ToContext(req.Context(), tc.identity))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
