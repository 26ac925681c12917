package app

import (
	"context"

	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	shipping "github.com/dwikikusuma/shoping-checkout/internal/shipping/domain"
	"github.com/shopspring/decimal"
)

type Shipping interface {
	CalculateShippingCost(items []catalog.Shippable) decimal.Decimal
	ShipItems(ctx context.Context, items []catalog.Shippable) (shipping.Manifest, error)
}

type ReceiptReporter interface {
	ReportReceipt(ctx context.Context, r domain.Receipt) error
}

type Recorder interface {
	CheckoutCompleted(total decimal.Decimal, shippedUnits int)
	CheckoutFailed(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) CheckoutCompleted(decimal.Decimal, int) {}
func (nopRecorder) CheckoutFailed(string)                  {}
