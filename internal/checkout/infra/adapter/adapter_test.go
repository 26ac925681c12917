package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	checkout "github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/shoping-checkout/internal/order/app"
	"github.com/dwikikusuma/shoping-checkout/internal/order/infra/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reporterFunc func(ctx context.Context, r checkout.Receipt) error

func (f reporterFunc) ReportReceipt(ctx context.Context, r checkout.Receipt) error { return f(ctx, r) }

func sampleReceipt() checkout.Receipt {
	return checkout.Receipt{
		CustomerID:   "cust-1",
		CustomerName: "John Doe",
		Lines: []checkout.ReceiptLine{
			{ProductID: "p1", Name: "Cheese 400g", Quantity: 2, UnitPrice: decimal.NewFromInt(100), LineTotal: decimal.NewFromInt(200)},
			{ProductID: "p2", Name: "Smart TV", Quantity: 1, UnitPrice: decimal.NewFromInt(1200), LineTotal: decimal.NewFromInt(1200)},
		},
		Subtotal:         decimal.NewFromInt(1400),
		ShippingCost:     decimal.RequireFromString("79"),
		Total:            decimal.RequireFromString("1479"),
		RemainingBalance: decimal.RequireFromString("521"),
		CheckedOutAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderRecorder(t *testing.T) {
	ctx := context.Background()
	orders := orderapp.NewService(memory.NewOrderRepo())
	rec := NewOrderRecorder(orders)

	rc := sampleReceipt()
	require.NoError(t, rec.ReportReceipt(ctx, rc))

	got, err := orders.ListOrders(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, orderapp.OrderStatusPaid, got[0].Status)
	assert.True(t, rc.Total.Equal(got[0].TotalAmount), got[0].TotalAmount.String())
	assert.True(t, rc.CheckedOutAt.Equal(got[0].CreatedAt))
	assert.Len(t, got[0].OrderItems, 2)
}

func TestMultiReporter(t *testing.T) {
	var calls []string
	boom := errors.New("boom")

	m := NewMultiReporter(
		reporterFunc(func(context.Context, checkout.Receipt) error {
			calls = append(calls, "first")
			return boom
		}),
		nil,
		reporterFunc(func(context.Context, checkout.Receipt) error {
			calls = append(calls, "second")
			return nil
		}),
	)

	err := m.ReportReceipt(context.Background(), sampleReceipt())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second"}, calls)

	assert.NoError(t, NewMultiReporter().ReportReceipt(context.Background(), sampleReceipt()))
}
