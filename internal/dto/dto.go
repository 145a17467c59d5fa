package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
}

type OrderRequest struct {
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	PhoneNumber   string          `json:"phoneNumber"`
	PaymentMethod string          `json:"paymentMethod"`
	Pizzas        []*OrderItem    `json:"pizzas"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

type PaymentOrderRequest struct {
	OrderRequest
	PaymentToken string `json:"paymentToken"`
	// AttemptID, when set by the client, makes the charge's idempotency
	// key stable across retries of the same logical submission.
	AttemptID string `json:"attemptId,omitempty"`
}

type SubmitOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}

type OrderResponse struct {
	OrderID       string          `json:"orderId"`
	FullName      string          `json:"fullName"`
	Email         string          `json:"email"`
	Address       string          `json:"address,omitempty"`
	PhoneNumber   string          `json:"phoneNumber"`
	PaymentMethod string          `json:"paymentMethod"`
	Pizzas        []*OrderItem    `json:"pizzas"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	PaymentID     string          `json:"paymentId,omitempty"`
	PaymentStatus string          `json:"paymentStatus,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
