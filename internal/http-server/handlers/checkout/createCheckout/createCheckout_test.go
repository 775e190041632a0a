package createCheckout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventCheckout/internal/http-server/handlers/checkout/createCheckout/mocks"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/handlers/slogdiscard"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	buyer := auth.Identity{UserID: "u1", Name: "Maria Silva", Email: "maria@example.com"}
	admin := auth.Identity{UserID: "adm", Name: "Admin", Email: "admin@example.com", Admin: true}

	openEvent := &models.Event{
		ID:              "e1",
		Title:           "Congresso 2026",
		MaxParticipants: 100,
		PriceTiers: []models.PriceTier{
			{MinQuantity: 1, PriceInCents: 50000},
			{MinQuantity: 4, PriceInCents: 40000},
		},
		Status: models.EventStatusOpen,
	}

	closedEvent := &models.Event{
		ID:         "e2",
		Title:      "Encerrado",
		PriceTiers: []models.PriceTier{{MinQuantity: 1, PriceInCents: 50000}},
		Status:     models.EventStatusClosed,
	}

	validBody := func(overrides map[string]any) string {
		base := map[string]any{
			"event_id":      "e1",
			"checkout_type": "acquire",
			"legal_entity":  "pf",
			"billing_details": map[string]any{
				"name":  "Maria Silva",
				"cpf":   "12345678901",
				"email": "maria@example.com",
			},
			"quantity":       3,
			"payment_method": "transfer",
		}
		for k, v := range overrides {
			base[k] = v
		}
		b, err := json.Marshal(base)
		require.NoError(t, err)
		return string(b)
	}

	testCases := []struct {
		name           string
		identity       auth.Identity
		body           string
		mockSetup      func(c *mocks.CheckoutCreator, n *mocks.Notifier)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:     "Acquire checkout",
			identity: buyer,
			body:     validBody(nil),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e1").Return(openEvent, nil)
				c.On("UpsertCheckout", mock.Anything, mock.MatchedBy(func(co *models.Checkout) bool {
					return co.ID == "e1_u1" &&
						co.UserID == "u1" &&
						co.AmountInCents == 150000 &&
						co.Status == models.CheckoutStatusPending &&
						co.Payment != nil &&
						co.Payment.Status == models.PaymentStatusPending
				})).Return(nil)
				n.On("NotifyCheckoutCreated", mock.Anything).Return()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp CheckoutResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "e1_u1", resp.DocumentID)
				require.NotNil(t, resp.Checkout)
				assert.Equal(t, int64(150000), resp.Checkout.AmountInCents)
			},
		},
		{
			name:     "Tier price break",
			identity: buyer,
			body:     validBody(map[string]any{"quantity": 5}),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e1").Return(openEvent, nil)
				c.On("UpsertCheckout", mock.Anything, mock.MatchedBy(func(co *models.Checkout) bool {
					return co.AmountInCents == 200000
				})).Return(nil)
				n.On("NotifyCheckoutCreated", mock.Anything).Return()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp CheckoutResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, int64(200000), resp.Checkout.AmountInCents)
			},
		},
		{
			name:     "Voucher checkout creates voucher",
			identity: buyer,
			body:     validBody(map[string]any{"checkout_type": "voucher"}),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e1").Return(openEvent, nil)
				c.On("UpsertCheckout", mock.Anything, mock.MatchedBy(func(co *models.Checkout) bool {
					return co.VoucherCode != ""
				})).Return(nil)
				c.On("CreateVoucher", mock.Anything, mock.MatchedBy(func(v *models.Voucher) bool {
					return v.CheckoutID == "e1_u1" && v.EventID == "e1" && !v.Active
				})).Return(nil)
				n.On("NotifyCheckoutCreated", mock.Anything).Return()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp CheckoutResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.NotEmpty(t, resp.Checkout.VoucherCode)
			},
		},
		{
			name:     "Buyer self-registration",
			identity: buyer,
			body:     validBody(map[string]any{"register_myself": true}),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e1").Return(openEvent, nil)
				c.On("UpsertCheckout", mock.Anything, mock.Anything).Return(nil)
				c.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg *models.Registration) bool {
					return reg.ID == "e1_u1" &&
						reg.CheckoutID == "e1_u1" &&
						reg.CreatedBy == models.CreatorBuyer &&
						reg.Status == models.RegistrationStatusPending &&
						reg.Attendee.Name == "Maria Silva"
				})).Return(nil)
				n.On("NotifyCheckoutCreated", mock.Anything).Return()
			},
			expectedStatus: http.StatusCreated,
			checkBody:      func(t *testing.T, body string) {},
		},
		{
			name:     "Retried self-registration does not duplicate",
			identity: buyer,
			body:     validBody(map[string]any{"register_myself": true}),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e1").Return(openEvent, nil)
				c.On("UpsertCheckout", mock.Anything, mock.Anything).Return(nil)
				c.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg *models.Registration) bool {
					return reg.ID == "e1_u1"
				})).Return(storage.ErrAlreadyRegistered)
				n.On("NotifyCheckoutCreated", mock.Anything).Return()
			},
			expectedStatus: http.StatusCreated,
			checkBody:      func(t *testing.T, body string) {},
		},
		{
			name:     "Admin checkout with complimentary slots",
			identity: admin,
			body: validBody(map[string]any{
				"checkout_type":       "admin",
				"complimentary_slots": 10,
			}),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e1").Return(openEvent, nil)
				c.On("UpsertCheckout", mock.Anything, mock.MatchedBy(func(co *models.Checkout) bool {
					return co.ComplimentarySlots == 10 && co.TotalSlots() == 13
				})).Return(nil)
				n.On("NotifyCheckoutCreated", mock.Anything).Return()
			},
			expectedStatus: http.StatusCreated,
			checkBody:      func(t *testing.T, body string) {},
		},
		{
			name:           "Non-admin cannot create admin checkout",
			identity:       buyer,
			body:           validBody(map[string]any{"checkout_type": "admin"}),
			mockSetup:      func(c *mocks.CheckoutCreator, n *mocks.Notifier) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"forbidden"}`, body)
			},
		},
		{
			name:           "Non-admin cannot grant complimentary slots",
			identity:       buyer,
			body:           validBody(map[string]any{"complimentary_slots": 5}),
			mockSetup:      func(c *mocks.CheckoutCreator, n *mocks.Notifier) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"forbidden"}`, body)
			},
		},
		{
			name:     "Missing CPF for pf",
			identity: buyer,
			body: validBody(map[string]any{
				"billing_details": map[string]any{
					"name":  "Maria Silva",
					"email": "maria@example.com",
				},
			}),
			mockSetup:      func(c *mocks.CheckoutCreator, n *mocks.Notifier) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"informe o CPF"}`, body)
			},
		},
		{
			name:     "Missing CNPJ for pj",
			identity: buyer,
			body: validBody(map[string]any{
				"legal_entity": "pj",
				"billing_details": map[string]any{
					"company_name": "ACME Ltda",
					"email":        "financeiro@acme.com",
				},
			}),
			mockSetup:      func(c *mocks.CheckoutCreator, n *mocks.Notifier) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"informe o CNPJ"}`, body)
			},
		},
		{
			name:     "Event not found",
			identity: buyer,
			body:     validBody(map[string]any{"event_id": "missing"}),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "missing").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"event not found"}`, body)
			},
		},
		{
			name:     "Event closed",
			identity: buyer,
			body:     validBody(map[string]any{"event_id": "e2"}),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e2").Return(closedEvent, nil)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"event is not open for registration"}`, body)
			},
		},
		{
			name:           "Zero quantity",
			identity:       buyer,
			body:           validBody(map[string]any{"quantity": 0}),
			mockSetup:      func(c *mocks.CheckoutCreator, n *mocks.Notifier) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Quantity")
			},
		},
		{
			name:     "Storage failure",
			identity: buyer,
			body:     validBody(nil),
			mockSetup: func(c *mocks.CheckoutCreator, n *mocks.Notifier) {
				c.On("GetEvent", mock.Anything, "e1").Return(openEvent, nil)
				c.On("UpsertCheckout", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to create checkout"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewCheckoutCreator(t)
			mockNotifier := mocks.NewNotifier(t)
			tc.mockSetup(mockCreator, mockNotifier)

			handler := New(logger, mockCreator, mockNotifier)

			req, err := http.NewRequest("POST", "/api/checkouts", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req = req.WithContext(auth.ToContext(req.Context(), tc.identity))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}

func TestCreateCheckoutHandler_NoIdentity(t *testing.T) {
	t.Parallel()

	handler := New(
		slogdiscard.NewDiscardLogger(),
		mocks.NewCheckoutCreator(t),
		mocks.NewNotifier(t),
	)

	req := httptest.NewRequest("POST", "/api/checkouts", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
