package domain

import (
	"slices"

	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
)

// CartItem references a catalog product; the cart never copies product state.
type CartItem struct {
	Product  catalog.Product
	Quantity int
}

// LineTotal uses the product's current price.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds at most one item per business key (name, price), in the order
// the keys were first added.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddProduct adds quantity units of p, merging into an existing item with the
// same business key. The combined quantity is checked against p's current
// stock; on failure the cart is unchanged.
func (c *Cart) AddProduct(p catalog.Product, quantity int) error {
	if p == nil {
		return apperror.InvalidArgument("product cannot be nil")
	}
	if quantity <= 0 {
		return apperror.InvalidArgument("quantity must be positive: %d", quantity)
	}
	if quantity > p.Quantity() {
		return apperror.InvalidArgument("requested quantity %d of %q exceeds available stock %d", quantity, p.Name(), p.Quantity())
	}

	for i := range c.items {
		if !c.items[i].Product.HasSameBusinessKey(p) {
			continue
		}
		merged := c.items[i].Quantity + quantity
		if merged > p.Quantity() {
			return apperror.InvalidArgument("requested quantity %d of %q exceeds available stock %d", merged, p.Name(), p.Quantity())
		}
		c.items[i].Quantity = merged
		return nil
	}

	c.items = append(c.items, CartItem{Product: p, Quantity: quantity})
	return nil
}

// Items returns a copy; changing it does not affect the cart.
func (c *Cart) Items() []CartItem {
	return slices.Clone(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal is recomputed from live prices on every call.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range c.items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	return subtotal
}

func (c *Cart) Clear() {
	c.items = nil
}
