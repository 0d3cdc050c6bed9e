package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics counts cart mutations and checkout outcomes.
type StorefrontMetrics struct {
	cartAdds      prometheus.Counter
	cartRemovals  prometheus.Counter
	cartClears    prometheus.Counter
	ordersPlaced  prometheus.Counter
	checkoutFails prometheus.Counter
}

func NewStorefrontMetrics() *StorefrontMetrics {
	return newStorefrontMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newStorefrontMetricsWithRegisterer(registerer prometheus.Registerer) *StorefrontMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StorefrontMetrics{
		cartAdds: registerCounter(registerer, prometheus.CounterOpts{
			Name: "apnadairy_cart_adds_total",
			Help: "Total number of add-to-cart operations",
		}),
		cartRemovals: registerCounter(registerer, prometheus.CounterOpts{
			Name: "apnadairy_cart_removals_total",
			Help: "Total number of remove-from-cart operations",
		}),
		cartClears: registerCounter(registerer, prometheus.CounterOpts{
			Name: "apnadairy_cart_clears_total",
			Help: "Total number of cart clears",
		}),
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "apnadairy_orders_placed_total",
			Help: "Total number of orders placed successfully",
		}),
		checkoutFails: registerCounter(registerer, prometheus.CounterOpts{
			Name: "apnadairy_checkout_failures_total",
			Help: "Total number of failed checkout attempts",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func (m *StorefrontMetrics) RecordCartAdd() {
	m.cartAdds.Inc()
}

func (m *StorefrontMetrics) RecordCartRemoval() {
	m.cartRemovals.Inc()
}

func (m *StorefrontMetrics) RecordCartClear() {
	m.cartClears.Inc()
}

func (m *StorefrontMetrics) RecordOrderPlaced() {
	m.ordersPlaced.Inc()
}

func (m *StorefrontMetrics) RecordCheckoutFailure() {
	m.checkoutFails.Inc()
}
