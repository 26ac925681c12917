package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	customer "github.com/dwikikusuma/shoping-checkout/internal/customer/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductExpired      = errors.New("product expired")
	ErrOutOfStock          = errors.New("out of stock")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrReportFailed is returned together with a valid receipt: the
	// checkout was committed but a reporter failed afterwards.
	ErrReportFailed = errors.New("checkout report failed")
)

type Service struct {
	shipping Shipping
	receipts ReceiptReporter
	recorder Recorder
	log      *slog.Logger
	now      func() time.Time
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(shipping Shipping, receipts ReceiptReporter, opts ...Option) *Service {
	s := &Service{
		shipping: shipping,
		receipts: receipts,
		recorder: nopRecorder{},
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessCheckout validates the customer's cart, charges the customer and
// reduces stock, reports the receipt and shipment, then empties the cart.
//
// Any error wrapping apperror.ErrInvalidState means nothing was changed.
// An error wrapping ErrReportFailed comes with the committed receipt.
func (s *Service) ProcessCheckout(ctx context.Context, c *customer.Customer) (domain.Receipt, error) {
	if c == nil {
		return domain.Receipt{}, apperror.InvalidArgument("customer is required")
	}
	log := s.log.With(slog.String("customer_id", c.ID()))

	p, err := s.plan(c)
	if err != nil {
		s.recorder.CheckoutFailed(outcome(err))
		log.Warn("checkout rejected", slog.Any("err", err))
		return domain.Receipt{}, err
	}

	if err := s.commit(c, p); err != nil {
		s.recorder.CheckoutFailed("commit_failed")
		log.Error("checkout commit failed", slog.Any("err", err))
		return domain.Receipt{}, err
	}

	receipt := p.receipt(c, s.now())

	var reportErrs []error
	if s.receipts != nil {
		if err := s.receipts.ReportReceipt(ctx, receipt); err != nil {
			reportErrs = append(reportErrs, fmt.Errorf("receipt: %w", err))
		}
	}
	if len(p.shipments) > 0 {
		if _, err := s.shipping.ShipItems(ctx, p.shipments); err != nil {
			reportErrs = append(reportErrs, fmt.Errorf("shipment: %w", err))
		}
	}

	c.Cart().Clear()

	s.recorder.CheckoutCompleted(receipt.Total, len(p.shipments))
	log.Info("checkout completed",
		slog.Int("lines", len(receipt.Lines)),
		slog.String("subtotal", receipt.Subtotal.String()),
		slog.String("shipping", receipt.ShippingCost.String()),
		slog.String("total", receipt.Total.String()),
		slog.Int("shipped_units", len(p.shipments)),
	)

	if len(reportErrs) > 0 {
		err := fmt.Errorf("%w: %w", ErrReportFailed, errors.Join(reportErrs...))
		log.Error("checkout report failed", slog.Any("err", err))
		return receipt, err
	}
	return receipt, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, ErrProductExpired):
		return "expired"
	case errors.Is(err, ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	default:
		return "error"
	}
}
