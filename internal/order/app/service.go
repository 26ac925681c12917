package app

import (
	"context"
	"strings"

	"github.com/dwikikusuma/shoping-checkout/internal/order/domain"
	"github.com/dwikikusuma/shoping-checkout/pkg/apperror"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo OrderRepo
}

const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
)

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if strings.TrimSpace(req.CustomerID) == "" {
		return domain.OrderResponse{}, apperror.InvalidArgument("customer id is required")
	}
	if req.ShippingAmount.IsNegative() {
		return domain.OrderResponse{}, apperror.InvalidArgument("shipping amount cannot be negative, got %s", req.ShippingAmount)
	}
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, apperror.InvalidArgument("order has no items")
	}

	orderItem := make([]domain.OrderItem, 0, len(req.Items))
	subTotalAmount := decimal.Zero

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.OrderResponse{}, apperror.InvalidArgument("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		if item.UnitAmount.IsNegative() {
			return domain.OrderResponse{}, apperror.InvalidArgument("item %d: unit amount cannot be negative, got %s", i, item.UnitAmount)
		}

		lineTotal := item.UnitAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))
		orderItem = append(orderItem, domain.OrderItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: lineTotal,
		})

		subTotalAmount = subTotalAmount.Add(lineTotal)
	}

	status := req.Status
	if status == "" {
		status = OrderStatusPending
	}

	order := domain.Order{
		CustomerID:     req.CustomerID,
		Status:         status,
		ShippingAmount: req.ShippingAmount,
		SubTotalAmount: subTotalAmount,
		TotalAmount:    subTotalAmount.Add(req.ShippingAmount),
		OrderItems:     orderItem,
		CreatedAt:      req.PlacedAt,
	}

	createdOrder, err := s.repo.CreateOrderTx(ctx, order)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	return domain.OrderResponse{
		ID:          createdOrder.ID,
		Status:      createdOrder.Status,
		TotalAmount: createdOrder.TotalAmount,
		CreatedAt:   createdOrder.CreatedAt,
	}, nil
}

func (s *Service) ListOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, apperror.InvalidArgument("customer id is required")
	}
	return s.repo.ListByCustomer(ctx, customerID)
}
