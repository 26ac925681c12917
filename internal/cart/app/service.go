package app

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/shoping-checkout/internal/cart/domain"
	"github.com/shopspring/decimal"
)

// Service resolves customers and products by id and drives the customer's
// own cart.
type Service struct {
	customers CustomerReader
	products  ProductReader
}

func NewService(customers CustomerReader, products ProductReader) *Service {
	return &Service{
		customers: customers,
		products:  products,
	}
}

func (s *Service) GetCart(ctx context.Context, customerID string) ([]domain.CartItem, error) {
	c, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return c.Cart().Items(), nil
}

func (s *Service) AddItemToCart(ctx context.Context, customerID, productID string, quantity int) error {
	c, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	return c.AddToCart(p, quantity)
}

func (s *Service) Subtotal(ctx context.Context, customerID string) (decimal.Decimal, error) {
	c, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Cart().Subtotal(), nil
}

func (s *Service) ClearCart(ctx context.Context, customerID string) error {
	c, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	c.Cart().Clear()
	return nil
}
