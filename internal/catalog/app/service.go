package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// NewProduct describes a catalog entry to create. Weight is required for
// electronics and grocery, ExpiresOn for grocery only.
type NewProduct struct {
	Kind      domain.Kind
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Weight    decimal.Decimal
	ExpiresOn time.Time
}

type Service struct {
	repo        ProductRepo
	groceryOpts []domain.GroceryOption
}

func NewService(repo ProductRepo, groceryOpts ...domain.GroceryOption) *Service {
	return &Service{
		repo:        repo,
		groceryOpts: groceryOpts,
	}
}

func (s *Service) CreateProduct(ctx context.Context, in NewProduct) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)

	var (
		p   domain.Product
		err error
	)
	switch in.Kind {
	case domain.KindDigital:
		p, err = domain.NewDigital(name, in.Price, in.Quantity)
	case domain.KindElectronics:
		p, err = domain.NewElectronics(name, in.Price, in.Quantity, in.Weight)
	case domain.KindGrocery:
		p, err = domain.NewGrocery(name, in.Price, in.Quantity, in.Weight, in.ExpiresOn, s.groceryOpts...)
	default:
		return nil, apperror.InvalidArgument("unknown product kind %s", in.Kind)
	}
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.InvalidArgument("product id is required")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) FindByName(ctx context.Context, name string) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.InvalidArgument("product name is required")
	}
	return s.repo.FindByName(ctx, name)
}

func (s *Service) ListProducts(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, strings.TrimSpace(query), limit)
}

// Restock adds n units to the stock of product id.
func (s *Service) Restock(ctx context.Context, id string, n int) (domain.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.IncreaseQuantity(n); err != nil {
		return nil, err
	}
	return p, nil
}
