package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             string
	CustomerID     string
	Status         string
	SubTotalAmount decimal.Decimal
	ShippingAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	OrderItems     []OrderItem
	CreatedAt      time.Time
}

type OrderItem struct {
	ID              string
	OrderID         string
	ProductID       string
	Name            string
	UnitAmount      decimal.Decimal
	Quantity        int
	LineTotalAmount decimal.Decimal
}

type CreateOrderRequest struct {
	CustomerID     string
	Status         string
	ShippingAmount decimal.Decimal
	Items          []OrderItemRequest
	PlacedAt       time.Time
}

type OrderItemRequest struct {
	ProductID  string
	Name       string
	UnitAmount decimal.Decimal
	Quantity   int
}

type OrderResponse struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
