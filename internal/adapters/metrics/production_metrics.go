package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

// ProductionMetricsCollector records unit and order outcomes of production runs
type ProductionMetricsCollector struct {
	unitsTotal        *prometheus.CounterVec
	ordersTotal       *prometheus.CounterVec
	producedCostTotal *prometheus.CounterVec
	producedWeightKg  *prometheus.CounterVec
	orderUnits        *prometheus.GaugeVec
}

// NewProductionMetricsCollector creates a new production metrics collector
func NewProductionMetricsCollector() *ProductionMetricsCollector {
	return &ProductionMetricsCollector{
		unitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "units_total",
				Help:      "Units that reached a terminal state, by state and failure reason",
			},
			[]string{"product_id", "state", "reason"},
		),

		ordersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_total",
				Help:      "Production orders run to completion",
			},
			[]string{"product_id"},
		),

		producedCostTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "produced_cost_total",
				Help:      "Total cost of successfully produced units",
			},
			[]string{"product_id"},
		),

		producedWeightKg: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "produced_weight_kg_total",
				Help:      "Total weight of successfully produced units in kilograms",
			},
			[]string{"product_id"},
		),

		orderUnits: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_order_units",
				Help:      "Units of the most recent order per product, by result",
			},
			[]string{"product_id", "result"},
		),
	}
}

// Register registers all production metrics with the global registry
func (c *ProductionMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.unitsTotal,
		c.ordersTotal,
		c.producedCostTotal,
		c.producedWeightKg,
		c.orderUnits,
	}
	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordUnit counts one unit reaching a terminal state
func (c *ProductionMetricsCollector) RecordUnit(productID string, state manufacturing.State, reason manufacturing.FailureReason) {
	label := string(reason)
	if label == "" {
		label = "none"
	}
	c.unitsTotal.WithLabelValues(productID, string(state), label).Inc()
}

// RecordOrder records the totals of one finished order
func (c *ProductionMetricsCollector) RecordOrder(productID string, stats manufacturing.ProductionStats) {
	c.ordersTotal.WithLabelValues(productID).Inc()
	c.producedCostTotal.WithLabelValues(productID).Add(stats.TotalCost().InexactFloat64())
	c.producedWeightKg.WithLabelValues(productID).Add(stats.TotalWeight().InexactFloat64())

	c.orderUnits.WithLabelValues(productID, "requested").Set(float64(stats.Requested))
	c.orderUnits.WithLabelValues(productID, "succeeded").Set(float64(stats.Succeeded))
	c.orderUnits.WithLabelValues(productID, "failed").Set(float64(stats.Failed()))
}
