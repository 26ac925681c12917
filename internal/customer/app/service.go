package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/shoping-checkout/internal/customer/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("customer not found")

type Service struct {
	repo CustomerRepo
}

func NewService(repo CustomerRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, name string, balance decimal.Decimal) (*domain.Customer, error) {
	c, err := domain.New(strings.TrimSpace(name), balance)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.InvalidArgument("customer id is required")
	}
	return s.repo.Get(ctx, id)
}
