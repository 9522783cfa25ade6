package helpers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/andrescamacho/factorysim-go/internal/application/mediator"
	"github.com/andrescamacho/factorysim-go/internal/application/production/commands"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

// MockMediator is a test double for the Mediator interface. By default it
// answers RunProductionOrderCommand with an all-successful result without
// touching stock.
type MockMediator struct {
	sendFunc func(ctx context.Context, request mediator.Request) (mediator.Response, error)
	callLog  []string // Track which commands were called
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	// Use custom function if provided
	if m.sendFunc != nil {
		return m.sendFunc(ctx, request)
	}

	switch req := request.(type) {
	case *commands.RunProductionOrderCommand:
		m.callLog = append(m.callLog, fmt.Sprintf("RunProductionOrder:%s", req.Order.ID()))
		return &commands.RunProductionOrderResponse{
			OrderID: req.Order.ID(),
			Stats: manufacturing.ProductionStats{
				ProductID:   req.Order.Product().ID(),
				ProductName: req.Order.Product().Name(),
				Requested:   req.Order.Quantity(),
				Succeeded:   req.Order.Quantity(),
				UnitCost:    req.Order.Product().Cost(),
				UnitWeight:  req.Order.Product().Weight(),
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported request type: %T", request)
	}
}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request mediator.Request) (mediator.Response, error)) {
	m.sendFunc = fn
}

// GetCallLog returns the list of commands that were called
func (m *MockMediator) GetCallLog() []string {
	return append([]string{}, m.callLog...)
}

// Register implements the Mediator interface (no-op for tests)
func (m *MockMediator) Register(requestType reflect.Type, handler mediator.RequestHandler) error {
	return nil // No-op for tests
}

// Use implements the Mediator interface (no-op for tests)
func (m *MockMediator) Use(middleware mediator.Middleware) {
	// No-op for tests
}

// Ensure MockMediator implements the mediator.Mediator interface
var _ mediator.Mediator = (*MockMediator)(nil)
