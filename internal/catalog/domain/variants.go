package domain

import (
	"time"

	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
)

// Shippable is implemented by products that travel in a parcel.
type Shippable interface {
	Name() string
	// Weight in kilograms, always positive.
	Weight() decimal.Decimal
}

// Expirable is implemented by products with a best-before date.
type Expirable interface {
	ExpirationDate() time.Time
	IsExpired() bool
}

const dateLayout = "2006-01-02"

var (
	_ Product   = (*Digital)(nil)
	_ Product   = (*Electronics)(nil)
	_ Product   = (*Grocery)(nil)
	_ Shippable = (*Electronics)(nil)
	_ Shippable = (*Grocery)(nil)
	_ Expirable = (*Grocery)(nil)
)

// Digital products have no weight and never expire (scratch cards, e-books).
type Digital struct {
	base
}

func NewDigital(name string, price decimal.Decimal, quantity int) (*Digital, error) {
	b, err := newBase(name, price, quantity)
	if err != nil {
		return nil, err
	}
	return &Digital{base: b}, nil
}

func (d *Digital) Kind() Kind { return KindDigital }

type Electronics struct {
	base
	weight decimal.Decimal
}

func NewElectronics(name string, price decimal.Decimal, quantity int, weight decimal.Decimal) (*Electronics, error) {
	b, err := newBase(name, price, quantity)
	if err != nil {
		return nil, err
	}
	if err := validateWeight(weight); err != nil {
		return nil, err
	}
	return &Electronics{base: b, weight: weight}, nil
}

func (e *Electronics) Kind() Kind              { return KindElectronics }
func (e *Electronics) Weight() decimal.Decimal { return e.weight }

type Grocery struct {
	base
	weight    decimal.Decimal
	expiresOn time.Time
	now       func() time.Time
}

type GroceryOption func(*Grocery)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) GroceryOption {
	return func(g *Grocery) {
		if now != nil {
			g.now = now
		}
	}
}

func NewGrocery(name string, price decimal.Decimal, quantity int, weight decimal.Decimal, expiresOn time.Time, opts ...GroceryOption) (*Grocery, error) {
	b, err := newBase(name, price, quantity)
	if err != nil {
		return nil, err
	}
	if err := validateWeight(weight); err != nil {
		return nil, err
	}
	if expiresOn.IsZero() {
		return nil, apperror.InvalidArgument("expiration date is required for grocery product %q", name)
	}

	g := &Grocery{
		base:      b,
		weight:    weight,
		expiresOn: dateOf(expiresOn),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Grocery) Kind() Kind                { return KindGrocery }
func (g *Grocery) Weight() decimal.Decimal   { return g.weight }
func (g *Grocery) ExpirationDate() time.Time { return g.expiresOn }

func (g *Grocery) ExpirationDateString() string {
	return g.expiresOn.Format(dateLayout)
}

// IsExpired compares calendar days: a product expiring today is still
// sellable. The clock is read on every call.
func (g *Grocery) IsExpired() bool {
	return g.expiresOn.Before(dateOf(g.now()))
}

// ParseDate parses an ISO calendar date such as 2025-12-31.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, apperror.InvalidArgument("bad date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return apperror.InvalidArgument("weight must be positive for a shippable product: %s", weight)
	}
	return nil
}
