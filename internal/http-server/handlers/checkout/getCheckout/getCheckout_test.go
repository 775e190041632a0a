package getCheckout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCheckout/internal/http-server/handlers/checkout/getCheckout/mocks"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/handlers/slogdiscard"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCheckoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	owner := auth.Identity{UserID: "u1", Name: "Maria Silva"}
	stranger := auth.Identity{UserID: "u2", Name: "Outro"}
	admin := auth.Identity{UserID: "adm", Admin: true}

	checkout := &models.Checkout{
		ID:       "e1_u1",
		EventID:  "e1",
		UserID:   "u1",
		Type:     models.CheckoutTypeAcquire,
		Quantity: 2,
		Status:   models.CheckoutStatusPending,
	}

	regs := []models.Registration{
		{ID: "r1", CheckoutID: "e1_u1", Status: models.RegistrationStatusPending},
	}

	testCases := []struct {
		name           string
		identity       auth.Identity
		checkoutID     string
		mockSetup      func(m *mocks.CheckoutGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Owner reads own checkout",
			identity:   owner,
			checkoutID: "e1_u1",
			mockSetup: func(m *mocks.CheckoutGetter) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(checkout, nil)
				m.On("ListRegistrationsByCheckout", mock.Anything, "e1_u1").Return(regs, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp CheckoutResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "e1_u1", resp.Checkout.ID)
				require.Len(t, resp.Registrations, 1)
				assert.Equal(t, "r1", resp.Registrations[0].ID)
			},
		},
		{
			name:       "Admin reads any checkout",
			identity:   admin,
			checkoutID: "e1_u1",
			mockSetup: func(m *mocks.CheckoutGetter) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(checkout, nil)
				m.On("ListRegistrationsByCheckout", mock.Anything, "e1_u1").Return(regs, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody:      func(t *testing.T, body string) {},
		},
		{
			name:       "Stranger is forbidden",
			identity:   stranger,
			checkoutID: "e1_u1",
			mockSetup: func(m *mocks.CheckoutGetter) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(checkout, nil)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"forbidden"}`, body)
			},
		},
		{
			name:       "Checkout not found",
			identity:   owner,
			checkoutID: "missing",
			mockSetup: func(m *mocks.CheckoutGetter) {
				m.On("GetCheckout", mock.Anything, "missing").Return(nil, storage.ErrCheckoutNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"checkout not found"}`, body)
			},
		},
		{
			name:       "Storage error",
			identity:   owner,
			checkoutID: "e1_u1",
			mockSetup: func(m *mocks.CheckoutGetter) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get checkout"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewCheckoutGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/api/checkouts/{id}", handler)

			req, err := http.NewRequest("GET", "/api/checkouts/"+tc.checkoutID, nil)
			require.NoError(t, err)
			req = req.WithContext(auth.ToContext(req.Context(), tc.identity))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
