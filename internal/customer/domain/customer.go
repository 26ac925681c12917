package domain

import (
	"strings"

	cart "github.com/dwikikusuma/shoping-checkout/internal/cart/domain"
	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer owns a balance and exactly one cart for its whole lifetime.
// The balance only ever goes down.
type Customer struct {
	id      string
	name    string
	balance decimal.Decimal
	cart    *cart.Cart
}

func New(name string, balance decimal.Decimal) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.InvalidArgument("customer name cannot be empty")
	}
	if balance.IsNegative() {
		return nil, apperror.InvalidArgument("initial balance cannot be negative: %s", balance)
	}

	return &Customer{
		id:      uuid.NewString(),
		name:    name,
		balance: balance,
		cart:    cart.NewCart(),
	}, nil
}

func (c *Customer) ID() string               { return c.id }
func (c *Customer) Name() string             { return c.name }
func (c *Customer) Balance() decimal.Decimal { return c.balance }
func (c *Customer) Cart() *cart.Cart         { return c.cart }

func (c *Customer) AddToCart(p catalog.Product, quantity int) error {
	return c.cart.AddProduct(p, quantity)
}

func (c *Customer) DeductBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperror.InvalidArgument("deduction cannot be negative: %s", amount)
	}
	if amount.GreaterThan(c.balance) {
		return apperror.InvalidArgument("insufficient balance: required %s, available %s", amount, c.balance)
	}
	c.balance = c.balance.Sub(amount)
	return nil
}
