// Package metrics exposes Prometheus instrumentation for the supply chain
// service. Collectors are registered once; constructing the metrics twice
// against the same registerer reuses the existing collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SupplyChainMetrics holds the counters and histograms recorded by the
// command handlers and scheduled jobs.
type SupplyChainMetrics struct {
	ordersPlaced        prometheus.Counter
	ordersFulfilled     prometheus.Counter
	fulfillmentFailures prometheus.Counter
	deliveriesScheduled prometheus.Counter
	reportRuns          prometheus.Counter

	fulfillmentDuration prometheus.Histogram

	pendingOrders prometheus.Gauge
}

// NewSupplyChainMetrics registers the collectors on the default registerer.
func NewSupplyChainMetrics() *SupplyChainMetrics {
	return newSupplyChainMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newSupplyChainMetricsWithRegisterer(registerer prometheus.Registerer) *SupplyChainMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &SupplyChainMetrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "supplychain_orders_placed_total",
			Help: "Total number of orders placed",
		}),
		ordersFulfilled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "supplychain_orders_fulfilled_total",
			Help: "Total number of orders fulfilled successfully",
		}),
		fulfillmentFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "supplychain_fulfillment_failures_total",
			Help: "Total number of fulfillment attempts that ran out of stock",
		}),
		deliveriesScheduled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "supplychain_deliveries_scheduled_total",
			Help: "Total number of deliveries scheduled",
		}),
		reportRuns: registerCounter(registerer, prometheus.CounterOpts{
			Name: "supplychain_report_runs_total",
			Help: "Total number of inventory report job runs",
		}),
		fulfillmentDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "supplychain_fulfillment_duration_seconds",
			Help:    "Duration of order fulfillment in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		pendingOrders: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "supplychain_pending_orders",
			Help: "Number of orders placed but not yet fulfilled",
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

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderPlaced increments the placed counter and the pending gauge.
func (m *SupplyChainMetrics) RecordOrderPlaced() {
	m.ordersPlaced.Inc()
	m.pendingOrders.Inc()
}

// RecordOrderFulfilled increments the fulfilled counter and decrements
// the pending gauge.
func (m *SupplyChainMetrics) RecordOrderFulfilled() {
	m.ordersFulfilled.Inc()
	m.pendingOrders.Dec()
}

// RecordFulfillmentFailure increments the out-of-stock counter. The order
// stays pending, so the gauge is left alone.
func (m *SupplyChainMetrics) RecordFulfillmentFailure() {
	m.fulfillmentFailures.Inc()
}

// RecordDeliveryScheduled increments the scheduled deliveries counter.
func (m *SupplyChainMetrics) RecordDeliveryScheduled() {
	m.deliveriesScheduled.Inc()
}

// RecordReportRun increments the inventory report job counter.
func (m *SupplyChainMetrics) RecordReportRun() {
	m.reportRuns.Inc()
}

// RecordFulfillmentDuration records how long a fulfillment attempt took.
func (m *SupplyChainMetrics) RecordFulfillmentDuration(duration time.Duration) {
	m.fulfillmentDuration.Observe(duration.Seconds())
}
