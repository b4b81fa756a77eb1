package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart activity and order composition outcomes.
type StorefrontMetrics struct {
	cartMutations   *prometheus.CounterVec
	ordersComposed  prometheus.Counter
	composeDuration prometheus.Histogram
}

// NewStorefrontMetrics registers the storefront metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	ordersComposed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_composed_total",
		Help: "Orders successfully composed for dispatch.",
	})
	composeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_compose_duration_seconds",
		Help:    "Duration of order composition in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(cartMutations, ordersComposed, composeDuration)
	return &StorefrontMetrics{
		cartMutations:   cartMutations,
		ordersComposed:  ordersComposed,
		composeDuration: composeDuration,
	}
}

// IncCartMutation increments the mutation counter for the named operation.
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncOrderComposed increments the composed-orders counter.
func (m *StorefrontMetrics) IncOrderComposed() {
	if m == nil || m.ordersComposed == nil {
		return
	}
	m.ordersComposed.Inc()
}

// ObserveComposeDuration records the time spent composing an order.
func (m *StorefrontMetrics) ObserveComposeDuration(duration time.Duration) {
	if m == nil || m.composeDuration == nil {
		return
	}
	m.composeDuration.Observe(duration.Seconds())
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
