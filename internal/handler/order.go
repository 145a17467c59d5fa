package handler

import (
	"errors"
	"net/http"

	"pizza-shop-backend/internal/dto"
	"pizza-shop-backend/internal/model"
	"pizza-shop-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	checkoutService service.CheckoutService
}

func NewOrderHandler(checkoutService service.CheckoutService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
	}
}

// CreateOrder places a cash or pickup order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.SubmitOrderResponse{
			Success: false,
			Message: "Invalid request body.",
		})
	}

	orderID, err := h.checkoutService.SubmitDeferredOrder(ctx, &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SubmitOrderResponse{
		Success: true,
		Message: "Order placed successfully!",
		OrderID: orderID,
	})
}

// CreateSquarePayment charges the card and places the order.
func (h *OrderHandler) CreateSquarePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.SubmitOrderResponse{
			Success: false,
			Message: "Invalid request body.",
		})
	}

	orderID, err := h.checkoutService.SubmitPaidOrder(ctx, &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SubmitOrderResponse{
		Success: true,
		Message: "Payment successful! Order placed.",
		OrderID: orderID,
	})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("id")

	order, err := h.checkoutService.GetOrder(ctx, orderID)
	if errors.Is(err, model.ErrOrderNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Order not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching order"})
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// respondError maps the error taxonomy to status codes and safe messages.
// Internal detail never reaches the response body.
func (h *OrderHandler) respondError(c echo.Context, err error) error {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, dto.SubmitOrderResponse{
			Success: false,
			Message: ve.Message,
		})
	}

	if errors.Is(err, model.ErrGatewayNotConfigured) {
		return c.JSON(http.StatusInternalServerError, dto.SubmitOrderResponse{
			Success: false,
			Message: "Card payment is not configured. Please contact the administrator.",
		})
	}

	var pe *model.PaymentError
	if errors.As(err, &pe) {
		if pe.Charged {
			return c.JSON(http.StatusInternalServerError, dto.SubmitOrderResponse{
				Success: false,
				Message: "Your payment was received but the order could not be recorded. Please contact support.",
			})
		}
		message := pe.Detail
		if message == "" {
			message = "Payment failed. Please try again."
		}
		return c.JSON(http.StatusPaymentRequired, dto.SubmitOrderResponse{
			Success: false,
			Message: message,
		})
	}

	return c.JSON(http.StatusInternalServerError, dto.SubmitOrderResponse{
		Success: false,
		Message: "Failed to place order. Please try again.",
	})
}

func toOrderResponse(order *model.Order) *dto.OrderResponse {
	items := make([]*dto.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &dto.OrderItem{
			ID:       item.PizzaID,
			Name:     item.Name,
			Price:    item.UnitPrice,
			Quantity: item.Quantity,
		})
	}

	return &dto.OrderResponse{
		OrderID:       order.OrderID,
		FullName:      order.FullName,
		Email:         order.Email,
		Address:       order.Address,
		PhoneNumber:   order.PhoneNumber,
		PaymentMethod: string(order.PaymentMethod),
		Pizzas:        items,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentID:     order.PaymentID,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
	}
}
