package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Receipt struct {
	CustomerID   string
	CustomerName string
	Lines        []ReceiptLine
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
	// Balance left after the total was deducted.
	RemainingBalance decimal.Decimal
	CheckedOutAt     time.Time
}
