package updateCheckout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCheckout/internal/http-server/handlers/checkout/updateCheckout/mocks"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/handlers/slogdiscard"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCheckoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	owner := auth.Identity{UserID: "u1", Name: "Maria Silva"}
	admin := auth.Identity{UserID: "adm", Admin: true}

	event := &models.Event{
		ID: "e1",
		PriceTiers: []models.PriceTier{
			{MinQuantity: 1, PriceInCents: 50000},
			{MinQuantity: 4, PriceInCents: 40000},
		},
		Status: models.EventStatusOpen,
	}

	pendingCheckout := func() *models.Checkout {
		return &models.Checkout{
			ID:            "e1_u1",
			EventID:       "e1",
			UserID:        "u1",
			Type:          models.CheckoutTypeAcquire,
			LegalEntity:   models.LegalEntityPerson,
			Quantity:      2,
			AmountInCents: 100000,
			Payment: &models.Payment{
				Method: models.PaymentMethodTransfer,
				Status: models.PaymentStatusPending,
			},
			Status: models.CheckoutStatusPending,
		}
	}

	paidCheckout := func() *models.Checkout {
		c := pendingCheckout()
		c.Status = models.CheckoutStatusPaid
		return c
	}

	body := `{
		"legal_entity": "pf",
		"billing_details": {"name":"Maria Silva","cpf":"12345678901","email":"maria@example.com"},
		"quantity": 5,
		"payment_method": "commitment"
	}`

	testCases := []struct {
		name           string
		identity       auth.Identity
		checkoutID     string
		body           string
		mockSetup      func(m *mocks.CheckoutUpdater)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Owner reprices pending checkout",
			identity:   owner,
			checkoutID: "e1_u1",
			body:       body,
			mockSetup: func(m *mocks.CheckoutUpdater) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(pendingCheckout(), nil)
				m.On("GetEvent", mock.Anything, "e1").Return(event, nil)
				m.On("UpdateCheckout", mock.Anything, mock.MatchedBy(func(c *models.Checkout) bool {
					return c.Quantity == 5 &&
						c.AmountInCents == 200000 &&
						c.Payment.Method == models.PaymentMethodCommitment
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp UpdateResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, int64(200000), resp.Checkout.AmountInCents)
			},
		},
		{
			name:       "Owner cannot edit paid checkout",
			identity:   owner,
			checkoutID: "e1_u1",
			body:       body,
			mockSetup: func(m *mocks.CheckoutUpdater) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(paidCheckout(), nil)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"only a pending checkout can be edited"}`, body)
			},
		},
		{
			name:       "Admin edits paid checkout",
			identity:   admin,
			checkoutID: "e1_u1",
			body:       body,
			mockSetup: func(m *mocks.CheckoutUpdater) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(paidCheckout(), nil)
				m.On("GetEvent", mock.Anything, "e1").Return(event, nil)
				m.On("UpdateCheckout", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody:      func(t *testing.T, body string) {},
		},
		{
			name:       "Stranger is forbidden",
			identity:   auth.Identity{UserID: "u2"},
			checkoutID: "e1_u1",
			body:       body,
			mockSetup: func(m *mocks.CheckoutUpdater) {
				m.On("GetCheckout", mock.Anything, "e1_u1").Return(pendingCheckout(), nil)
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
			body:       body,
			mockSetup: func(m *mocks.CheckoutUpdater) {
				m.On("GetCheckout", mock.Anything, "missing").Return(nil, storage.ErrCheckoutNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"checkout not found"}`, body)
			},
		},
		{
			name:       "Missing billing email",
			identity:   owner,
			checkoutID: "e1_u1",
			body: `{
				"legal_entity": "pf",
				"billing_details": {"name":"Maria Silva","cpf":"12345678901"},
				"quantity": 5,
				"payment_method": "transfer"
			}`,
			mockSetup:      func(m *mocks.CheckoutUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"informe o e-mail"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewCheckoutUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			router := chi.NewRouter()
			router.Put("/api/checkouts/{id}", handler)

			req, err := http.NewRequest(
				"PUT",
				"/api/checkouts/"+tc.checkoutID,
				bytes.NewBufferString(tc.body),
			)
			require.NoError(t, err)
			req = req.WithContext(auth.ToContext(req.Context(), tc.identity))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
