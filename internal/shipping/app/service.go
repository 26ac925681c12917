package app

import (
	"context"

	catalog "github.com/dwikikusuma/shoping-checkout/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-checkout/internal/shipping/domain"
	"github.com/shopspring/decimal"
)

type ShipmentReporter interface {
	ReportShipment(ctx context.Context, m domain.Manifest) error
}

// Service prices and reports shipments. It never touches stock or carts.
type Service struct {
	reporter ShipmentReporter
}

func NewService(reporter ShipmentReporter) *Service {
	return &Service{reporter: reporter}
}

// CalculateShippingCost expects one entry per shipped unit.
func (s *Service) CalculateShippingCost(items []catalog.Shippable) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Weight())
	}
	return total.Mul(domain.RatePerKg)
}

// Group collapses per-unit entries by (name, weight), keeping first-seen order.
func (s *Service) Group(items []catalog.Shippable) domain.Manifest {
	type key struct {
		name   string
		weight string
	}

	m := domain.Manifest{TotalWeight: decimal.Zero}
	index := make(map[key]int)
	for _, it := range items {
		k := key{name: it.Name(), weight: it.Weight().String()}
		if i, ok := index[k]; ok {
			m.Lines[i].Count++
		} else {
			index[k] = len(m.Lines)
			m.Lines = append(m.Lines, domain.ManifestLine{Name: it.Name(), UnitWeight: it.Weight(), Count: 1})
		}
		m.TotalWeight = m.TotalWeight.Add(it.Weight())
	}
	return m
}

// ShipItems groups items and hands the manifest to the reporter.
func (s *Service) ShipItems(ctx context.Context, items []catalog.Shippable) (domain.Manifest, error) {
	m := s.Group(items)
	if s.reporter == nil {
		return m, nil
	}
	if err := s.reporter.ReportShipment(ctx, m); err != nil {
		return m, err
	}
	return m, nil
}
