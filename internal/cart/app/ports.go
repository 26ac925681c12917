package app

import (
	"context"

	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	customer "github.com/dwikikusuma/shoping-checkout/internal/customer/domain"
)

type CustomerReader interface {
	GetCustomer(ctx context.Context, id string) (*customer.Customer, error)
}

type ProductReader interface {
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
}
