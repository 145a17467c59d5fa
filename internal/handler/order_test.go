package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pizza-shop-backend/internal/dto"
	"pizza-shop-backend/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckoutService struct {
	deferredErr error
	paidErr     error
	order       *model.Order
	getErr      error
}

func (s *fakeCheckoutService) SubmitDeferredOrder(context.Context, *dto.OrderRequest) (string, error) {
	if s.deferredErr != nil {
		return "", s.deferredErr
	}
	return "order-1", nil
}

func (s *fakeCheckoutService) SubmitPaidOrder(context.Context, *dto.PaymentOrderRequest) (string, error) {
	if s.paidErr != nil {
		return "", s.paidErr
	}
	return "order-1", nil
}

func (s *fakeCheckoutService) GetOrder(context.Context, string) (*model.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.order, nil
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, dto.SubmitOrderResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))

	var resp dto.SubmitOrderResponse
	if rec.Body.Len() > 0 {
		json.Unmarshal(rec.Body.Bytes(), &resp)
	}
	return rec, resp
}

const orderBody = `{
	"fullName": "Jane Doe",
	"email": "jane@example.com",
	"address": "1 Main St",
	"phoneNumber": "555-0100",
	"paymentMethod": "cash",
	"pizzas": [{"id": "margherita", "name": "Margherita", "price": "12.99", "quantity": 2}],
	"totalAmount": "25.98"
}`

func TestCreateOrderSuccess(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{})

	rec, resp := doRequest(t, h.CreateOrder, http.MethodPost, "/api/orders", orderBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "order-1", resp.OrderID)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{
		deferredErr: model.NewValidationError("cart is empty"),
	})

	rec, resp := doRequest(t, h.CreateOrder, http.MethodPost, "/api/orders", orderBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "cart is empty", resp.Message)
}

func TestCreateSquarePaymentUnconfigured(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{
		paidErr: model.ErrGatewayNotConfigured,
	})

	rec, resp := doRequest(t, h.CreateSquarePayment, http.MethodPost, "/api/orders/square-payment", orderBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "administrator")
}

func TestCreateSquarePaymentDecline(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{
		paidErr: &model.PaymentError{Detail: "Card declined."},
	})

	rec, resp := doRequest(t, h.CreateSquarePayment, http.MethodPost, "/api/orders/square-payment", orderBody)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "Card declined.", resp.Message)
}

func TestCreateSquarePaymentDeclineWithoutDetail(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{
		paidErr: &model.PaymentError{},
	})

	rec, resp := doRequest(t, h.CreateSquarePayment, http.MethodPost, "/api/orders/square-payment", orderBody)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "Payment failed. Please try again.", resp.Message)
}

func TestCreateSquarePaymentChargedNotRecorded(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{
		paidErr: &model.PaymentError{Charged: true, PaymentID: "P9"},
	})

	rec, resp := doRequest(t, h.CreateSquarePayment, http.MethodPost, "/api/orders/square-payment", orderBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, resp.Message, "contact support")
	// no internal detail leaks
	assert.NotContains(t, resp.Message, "P9")
}

func TestGetOrderFound(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{
		order: &model.Order{
			OrderID:       "order-1",
			FullName:      "Jane Doe",
			PaymentMethod: model.PaymentMethodOnline,
			TotalAmount:   decimal.RequireFromString("25.98"),
			Status:        model.OrderStatusPaid,
			PaymentID:     "P1",
			PaymentStatus: "COMPLETED",
			CreatedAt:     time.Now().UTC(),
			Items: []model.OrderItem{
				{PizzaID: "margherita", Name: "Margherita", UnitPrice: decimal.RequireFromString("12.99"), Quantity: 2},
			},
		},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order-1", resp.OrderID)
	assert.Equal(t, "paid", resp.Status)
	assert.Equal(t, "P1", resp.PaymentID)
	require.Len(t, resp.Pizzas, 1)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("25.98")))
}

func TestGetOrderNotFound(t *testing.T) {
	h := NewOrderHandler(&fakeCheckoutService{getErr: model.ErrOrderNotFound})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
