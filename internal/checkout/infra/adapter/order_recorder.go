package adapter

import (
	"context"

	checkout "github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/shoping-checkout/internal/order/app"
	order "github.com/dwikikusuma/shoping-checkout/internal/order/domain"
)

// OrderRecorder stores every receipt in the order ledger as a paid order.
type OrderRecorder struct {
	svc *orderapp.Service
}

func NewOrderRecorder(svc *orderapp.Service) *OrderRecorder {
	return &OrderRecorder{svc: svc}
}

func (r *OrderRecorder) ReportReceipt(ctx context.Context, rc checkout.Receipt) error {
	items := make([]order.OrderItemRequest, 0, len(rc.Lines))
	for _, l := range rc.Lines {
		items = append(items, order.OrderItemRequest{
			ProductID:  l.ProductID,
			Name:       l.Name,
			UnitAmount: l.UnitPrice,
			Quantity:   l.Quantity,
		})
	}

	_, err := r.svc.CreateOrder(ctx, order.CreateOrderRequest{
		CustomerID:     rc.CustomerID,
		Status:         orderapp.OrderStatusPaid,
		ShippingAmount: rc.ShippingCost,
		Items:          items,
		PlacedAt:       rc.CheckedOutAt,
	})
	return err
}
