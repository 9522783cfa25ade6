package helpers

import (
	"github.com/andrescamacho/factorysim-go/internal/application/production"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

// UnitRecord is one RecordUnit call
type UnitRecord struct {
	ProductID string
	State     manufacturing.State
	Reason    manufacturing.FailureReason
}

// MockMetricsRecorder records every call for assertions
type MockMetricsRecorder struct {
	Units  []UnitRecord
	Orders []manufacturing.ProductionStats
}

// NewMockMetricsRecorder creates an empty recorder
func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{}
}

func (m *MockMetricsRecorder) RecordUnit(productID string, state manufacturing.State, reason manufacturing.FailureReason) {
	m.Units = append(m.Units, UnitRecord{ProductID: productID, State: state, Reason: reason})
}

func (m *MockMetricsRecorder) RecordOrder(productID string, stats manufacturing.ProductionStats) {
	m.Orders = append(m.Orders, stats)
}

// Ensure MockMetricsRecorder implements the production.MetricsRecorder interface
var _ production.MetricsRecorder = (*MockMetricsRecorder)(nil)
