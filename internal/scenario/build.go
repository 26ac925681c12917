package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	catalogapp "github.com/dwikikusuma/shoping-checkout/internal/catalog/app"
	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	customer "github.com/dwikikusuma/shoping-checkout/internal/customer/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
)

type Catalog interface {
	CreateProduct(ctx context.Context, in catalogapp.NewProduct) (catalog.Product, error)
}

type Customers interface {
	Register(ctx context.Context, name string, balance decimal.Decimal) (*customer.Customer, error)
}

type Carts interface {
	AddItemToCart(ctx context.Context, customerID, productID string, quantity int) error
}

type Deps struct {
	Catalog   Catalog
	Customers Customers
	Carts     Carts
	// Now anchors expires_in_days. Defaults to time.Now.
	Now func() time.Time
}

// Build creates the scenario's products and customer through the services and
// fills the customer's cart.
func Build(ctx context.Context, s Scenario, deps Deps) (*customer.Customer, error) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	byName := make(map[string]string, len(s.Products))
	for _, sp := range s.Products {
		in, err := sp.newProduct(now())
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", sp.Name, err)
		}
		p, err := deps.Catalog.CreateProduct(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("create product %q: %w", sp.Name, err)
		}
		byName[p.Name()] = p.ID()
	}

	balance, err := amount("balance", s.Customer.Balance)
	if err != nil {
		return nil, err
	}
	c, err := deps.Customers.Register(ctx, s.Customer.Name, balance)
	if err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}

	for _, l := range s.Cart {
		id, ok := byName[strings.TrimSpace(l.Product)]
		if !ok {
			return nil, apperror.InvalidArgument("cart refers to unknown product %q", l.Product)
		}
		if err := deps.Carts.AddItemToCart(ctx, c.ID(), id, l.Quantity); err != nil {
			return nil, fmt.Errorf("add %q to cart: %w", l.Product, err)
		}
	}

	return c, nil
}

func (p Product) newProduct(now time.Time) (catalogapp.NewProduct, error) {
	kind, err := catalog.ParseKind(p.Kind)
	if err != nil {
		return catalogapp.NewProduct{}, err
	}
	price, err := amount("price", p.Price)
	if err != nil {
		return catalogapp.NewProduct{}, err
	}

	in := catalogapp.NewProduct{
		Kind:     kind,
		Name:     p.Name,
		Price:    price,
		Quantity: p.Quantity,
	}

	if kind == catalog.KindDigital {
		return in, nil
	}

	if in.Weight, err = amount("weight", p.Weight); err != nil {
		return catalogapp.NewProduct{}, err
	}

	if kind == catalog.KindGrocery {
		switch {
		case p.ExpiresOn != "":
			if in.ExpiresOn, err = catalog.ParseDate(p.ExpiresOn); err != nil {
				return catalogapp.NewProduct{}, err
			}
		case p.ExpiresInDays != nil:
			in.ExpiresOn = now.AddDate(0, 0, *p.ExpiresInDays)
		default:
			return catalogapp.NewProduct{}, apperror.InvalidArgument("grocery needs expires_on or expires_in_days")
		}
	}
	return in, nil
}

func amount(field, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero, apperror.InvalidArgument("%s %q is not a decimal", field, v)
	}
	return d, nil
}
