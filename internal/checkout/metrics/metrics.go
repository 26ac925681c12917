package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const OutcomeCompleted = "completed"

// Metrics holds the Prometheus collectors for checkout.
type Metrics struct {
	Checkouts    *prometheus.CounterVec
	Revenue      prometheus.Counter
	ShippedUnits prometheus.Counter
	OrderTotal   prometheus.Histogram
}

// New registers the collectors on reg. Tests pass prometheus.NewRegistry()
// so repeated calls do not clash on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Checkouts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_checkouts_total",
			Help: "Checkout attempts by outcome",
		}, []string{"outcome"}),
		Revenue: f.NewCounter(prometheus.CounterOpts{
			Name: "shop_checkout_revenue_total",
			Help: "Sum of charged checkout totals",
		}),
		ShippedUnits: f.NewCounter(prometheus.CounterOpts{
			Name: "shop_shipped_units_total",
			Help: "Units handed to shipping",
		}),
		OrderTotal: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "shop_checkout_total_amount",
			Help:    "Distribution of charged checkout totals",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000},
		}),
	}
}

func (m *Metrics) CheckoutCompleted(total decimal.Decimal, shippedUnits int) {
	amount := total.InexactFloat64()
	m.Checkouts.WithLabelValues(OutcomeCompleted).Inc()
	m.Revenue.Add(amount)
	m.ShippedUnits.Add(float64(shippedUnits))
	m.OrderTotal.Observe(amount)
}

func (m *Metrics) CheckoutFailed(outcome string) {
	m.Checkouts.WithLabelValues(outcome).Inc()
}
