package production

import (
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

// MetricsRecorder receives production outcomes. Implemented by the
// Prometheus adapter; NoOpMetrics is used when metrics are disabled.
type MetricsRecorder interface {
	RecordUnit(productID string, state manufacturing.State, reason manufacturing.FailureReason)
	RecordOrder(productID string, stats manufacturing.ProductionStats)
}

// NoOpMetrics discards everything
type NoOpMetrics struct{}

func (NoOpMetrics) RecordUnit(string, manufacturing.State, manufacturing.FailureReason) {}
func (NoOpMetrics) RecordOrder(string, manufacturing.ProductionStats)                   {}

// UnitLogSampling limits per-unit log lines: the first First units of an
// order are logged, then one in every Every
type UnitLogSampling struct {
	First int
	Every int
}
