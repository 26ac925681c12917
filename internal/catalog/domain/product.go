package domain

import (
	"fmt"
	"strings"

	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindDigital Kind = iota + 1
	KindElectronics
	KindGrocery
)

func (k Kind) String() string {
	switch k {
	case KindDigital:
		return "digital"
	case KindElectronics:
		return "electronics"
	case KindGrocery:
		return "grocery"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "digital":
		return KindDigital, nil
	case "electronics":
		return KindElectronics, nil
	case "grocery":
		return KindGrocery, nil
	default:
		return 0, apperror.InvalidArgument("unknown product kind %q", s)
	}
}

// Product is the behaviour shared by every catalog variant. Optional
// capabilities are exposed through Shippable and Expirable.
type Product interface {
	ID() string
	Name() string
	Price() decimal.Decimal
	Quantity() int
	Kind() Kind

	SetName(name string) error
	SetPrice(price decimal.Decimal) error
	SetQuantity(quantity int) error
	ReduceQuantity(n int) error
	IncreaseQuantity(n int) error

	HasSameBusinessKey(other Product) bool
	SameIdentity(other Product) bool
}

// base carries the fields common to all variants. The id never changes
// after construction.
type base struct {
	id       string
	name     string
	price    decimal.Decimal
	quantity int
}

func newBase(name string, price decimal.Decimal, quantity int) (base, error) {
	if err := validateName(name); err != nil {
		return base{}, err
	}
	if err := validatePrice(price); err != nil {
		return base{}, err
	}
	if err := validateQuantity(quantity); err != nil {
		return base{}, err
	}

	return base{
		id:       uuid.NewString(),
		name:     name,
		price:    price,
		quantity: quantity,
	}, nil
}

func (b *base) ID() string             { return b.id }
func (b *base) Name() string           { return b.name }
func (b *base) Price() decimal.Decimal { return b.price }
func (b *base) Quantity() int          { return b.quantity }

func (b *base) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	b.name = name
	return nil
}

func (b *base) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	b.price = price
	return nil
}

func (b *base) SetQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	b.quantity = quantity
	return nil
}

// ReduceQuantity does not guard against underflow; callers compare n with
// the current stock first.
func (b *base) ReduceQuantity(n int) error {
	if err := validateQuantity(n); err != nil {
		return err
	}
	b.quantity -= n
	return nil
}

func (b *base) IncreaseQuantity(n int) error {
	if err := validateQuantity(n); err != nil {
		return err
	}
	b.quantity += n
	return nil
}

// HasSameBusinessKey reports whether other has the same name and price.
// Identity is ignored.
func (b *base) HasSameBusinessKey(other Product) bool {
	if isNil(other) {
		return false
	}
	return b.name == other.Name() && b.price.Equal(other.Price())
}

// SameIdentity reports whether other is the same catalog entry.
func (b *base) SameIdentity(other Product) bool {
	if isNil(other) {
		return false
	}
	return b.id == other.ID()
}

func (b *base) String() string {
	return fmt.Sprintf("Product{id=%s, name=%q, price=%s, quantity=%d}", b.id, b.name, b.price, b.quantity)
}

func isNil(p Product) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *Digital:
		return v == nil
	case *Electronics:
		return v == nil
	case *Grocery:
		return v == nil
	default:
		return false
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.InvalidArgument("product name cannot be empty")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return apperror.InvalidArgument("product price cannot be negative: %s", price)
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return apperror.InvalidArgument("quantity cannot be negative: %d", quantity)
	}
	return nil
}
