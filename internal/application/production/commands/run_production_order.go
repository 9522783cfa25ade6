package commands

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/application/mediator"
	"github.com/andrescamacho/factorysim-go/internal/application/production"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
)

// RunProductionOrderCommand runs every unit of one production order
type RunProductionOrderCommand struct {
	Order     *manufacturing.ProductionOrder
	Generator manufacturing.OutcomeGenerator
}

// RunProductionOrderResponse contains the outcome of the order
type RunProductionOrderResponse struct {
	OrderID string
	Stats   manufacturing.ProductionStats
	Units   []manufacturing.UnitResult
	Report  string
}

// RunProductionOrderHandler drives a ManufacturingProcess for one order,
// logging sampled unit transitions and recording metrics
type RunProductionOrderHandler struct {
	metrics  production.MetricsRecorder
	sampling production.UnitLogSampling
	clock    shared.Clock
}

// NewRunProductionOrderHandler creates a new run production order handler
func NewRunProductionOrderHandler(
	metrics production.MetricsRecorder,
	sampling production.UnitLogSampling,
	clock shared.Clock,
) *RunProductionOrderHandler {
	if metrics == nil {
		metrics = production.NoOpMetrics{}
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &RunProductionOrderHandler{
		metrics:  metrics,
		sampling: sampling,
		clock:    clock,
	}
}

// Handle executes the run production order command
func (h *RunProductionOrderHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RunProductionOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.Order == nil {
		return nil, shared.NewValidationError("order", "must not be nil")
	}
	if cmd.Generator == nil {
		return nil, shared.NewValidationError("generator", "must not be nil")
	}

	logger := logging.LoggerFromContext(ctx)
	order := cmd.Order

	logger.Log(logging.LevelInfo, "production order started", map[string]interface{}{
		"order_id":   order.ID(),
		"product_id": order.Product().ID(),
		"quantity":   order.Quantity(),
	})

	process, err := manufacturing.NewProductionRun(order, cmd.Generator,
		manufacturing.WithObserver(h.observer(logger, order.ID())),
		manufacturing.WithClock(h.clock),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create production run: %w", err)
	}

	if err := process.Run(); err != nil {
		return nil, fmt.Errorf("failed to run production order %s: %w", order.ID(), err)
	}
	order.MarkCompleted()

	stats := process.Stats()
	h.metrics.RecordOrder(stats.ProductID, stats)

	logger.Log(logging.LevelInfo, "production order completed", map[string]interface{}{
		"order_id":           order.ID(),
		"product_id":         stats.ProductID,
		"requested":          stats.Requested,
		"succeeded":          stats.Succeeded,
		"system_errors":      stats.SystemErrors,
		"damaged_components": stats.DamagedComponents,
		"stock_shortages":    stats.StockShortages,
		"total_cost":         stats.TotalCost().StringFixed(2),
	})

	return &RunProductionOrderResponse{
		OrderID: order.ID(),
		Stats:   stats,
		Units:   process.Units(),
		Report:  process.GenerateReport(),
	}, nil
}

// observer logs terminal transitions (sampled) and records unit metrics.
// Invariant violations bypass sampling.
func (h *RunProductionOrderHandler) observer(logger logging.Logger, orderID string) manufacturing.TransitionObserver {
	sometimes := &rate.Sometimes{First: h.sampling.First, Every: h.sampling.Every}

	return func(t manufacturing.Transition) {
		if t.InvariantViolated() {
			logger.Log(logging.LevelError, "stock invariant violated", map[string]interface{}{
				"order_id":   orderID,
				"product_id": t.ProductID,
				"unit":       t.Unit,
				"error":      t.Err.Error(),
			})
		}

		if !t.To.IsTerminal() {
			return
		}
		h.metrics.RecordUnit(t.ProductID, t.To, t.Reason)

		sometimes.Do(func() {
			metadata := map[string]interface{}{
				"order_id":   orderID,
				"product_id": t.ProductID,
				"unit":       t.Unit,
				"from":       string(t.From),
				"to":         string(t.To),
			}
			if t.Reason != manufacturing.ReasonNone {
				metadata["reason"] = string(t.Reason)
			}
			if t.Err != nil {
				metadata["error"] = t.Err.Error()
			}
			logger.Log(logging.LevelDebug, "unit finished", metadata)
		})
	}
}
