package app

import (
	"fmt"
	"time"

	cart "github.com/dwikikusuma/shoping-checkout/internal/cart/domain"
	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-checkout/internal/checkout/domain"
	customer "github.com/dwikikusuma/shoping-checkout/internal/customer/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
)

// commitPlan is everything the commit phase needs. Building it never
// mutates the customer, the cart or any product.
type commitPlan struct {
	items     []cart.CartItem
	lines     []domain.ReceiptLine
	shipments []catalog.Shippable
	subtotal  decimal.Decimal
	shipping  decimal.Decimal
	total     decimal.Decimal
}

func (s *Service) plan(c *customer.Customer) (commitPlan, error) {
	items := c.Cart().Items()
	if len(items) == 0 {
		return commitPlan{}, stateErr(ErrEmptyCart, "cannot checkout with an empty cart")
	}

	p := commitPlan{
		items:    items,
		lines:    make([]domain.ReceiptLine, 0, len(items)),
		subtotal: decimal.Zero,
	}

	for _, it := range items {
		prod := it.Product

		if exp, ok := prod.(catalog.Expirable); ok && exp.IsExpired() {
			return commitPlan{}, stateErr(ErrProductExpired, "product %q is expired", prod.Name())
		}

		if it.Quantity > prod.Quantity() {
			return commitPlan{}, stateErr(ErrOutOfStock, "product %q is out of stock: requested %d, available %d",
				prod.Name(), it.Quantity, prod.Quantity())
		}

		if sh, ok := prod.(catalog.Shippable); ok {
			for i := 0; i < it.Quantity; i++ {
				p.shipments = append(p.shipments, sh)
			}
		}

		lineTotal := it.LineTotal()
		p.subtotal = p.subtotal.Add(lineTotal)
		p.lines = append(p.lines, domain.ReceiptLine{
			ProductID: prod.ID(),
			Name:      prod.Name(),
			Quantity:  it.Quantity,
			UnitPrice: prod.Price(),
			LineTotal: lineTotal,
		})
	}

	p.shipping = s.shipping.CalculateShippingCost(p.shipments)
	p.total = p.subtotal.Add(p.shipping)

	if c.Balance().LessThan(p.total) {
		return commitPlan{}, stateErr(ErrInsufficientBalance, "required %s, available %s",
			p.total.StringFixed(2), c.Balance().StringFixed(2))
	}

	return p, nil
}

// commit applies the plan. Stock is reduced first, then the balance; if the
// deduction is refused the stock changes are reverted.
func (s *Service) commit(c *customer.Customer, p commitPlan) error {
	reduced := make([]cart.CartItem, 0, len(p.items))
	for _, it := range p.items {
		if err := it.Product.ReduceQuantity(it.Quantity); err != nil {
			revert(reduced)
			return fmt.Errorf("reduce stock of %q: %w", it.Product.Name(), err)
		}
		reduced = append(reduced, it)
	}

	if err := c.DeductBalance(p.total); err != nil {
		revert(reduced)
		return fmt.Errorf("deduct balance: %w", err)
	}
	return nil
}

func revert(items []cart.CartItem) {
	for _, it := range items {
		_ = it.Product.IncreaseQuantity(it.Quantity) // quantities are positive here
	}
}

func (p commitPlan) receipt(c *customer.Customer, at time.Time) domain.Receipt {
	return domain.Receipt{
		CustomerID:       c.ID(),
		CustomerName:     c.Name(),
		Lines:            p.lines,
		Subtotal:         p.subtotal,
		ShippingCost:     p.shipping,
		Total:            p.total,
		RemainingBalance: c.Balance(),
		CheckedOutAt:     at,
	}
}

func stateErr(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidState, kind, fmt.Sprintf(format, args...))
}
