package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodPickup PaymentMethod = "pickup"
	PaymentMethodOnline PaymentMethod = "online"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

type Pizza struct {
	ID          string          `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string          `gorm:"size:128;not null" json:"name"`
	Description string          `gorm:"size:256" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `gorm:"size:256" json:"image"`
}

// Order is an immutable purchase record snapshotted from the cart at
// submission time. PaymentID and PaymentStatus are set only when the order
// was created through the card-payment path, atomically with the insert.
type Order struct {
	OrderID       string          `gorm:"primaryKey;size:64;not null"`
	FullName      string          `gorm:"size:128;not null"`
	Email         string          `gorm:"size:128;not null"`
	Address       string          `gorm:"size:256"`
	PhoneNumber   string          `gorm:"size:32;not null"`
	PaymentMethod PaymentMethod   `gorm:"size:16;index;not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        OrderStatus     `gorm:"size:16;index;not null"`
	PaymentID     string          `gorm:"size:64"`
	PaymentStatus string          `gorm:"size:32"`
	CreatedAt     time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID;references:OrderID"`
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.order_id
	OrderID   string          `gorm:"size:64;index;not null"`
	PizzaID   string          `gorm:"size:64;not null"`
	Name      string          `gorm:"size:128;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int32           `gorm:"not null"`
	CreatedAt time.Time
}
