package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/application/mediator"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

// RunProductionBatchCommand runs several orders strictly in sequence. Later
// orders see the stock left behind by earlier ones.
type RunProductionBatchCommand struct {
	Orders    []*manufacturing.ProductionOrder
	Generator manufacturing.OutcomeGenerator
}

// RunProductionBatchResponse contains per-order results and the summary
type RunProductionBatchResponse struct {
	Results       []*RunProductionOrderResponse
	Summary       *manufacturing.Summary
	SummaryReport string
}

// RunProductionBatchHandler sends one RunProductionOrderCommand per order
type RunProductionBatchHandler struct {
	mediator mediator.Mediator
}

// NewRunProductionBatchHandler creates a new run production batch handler
func NewRunProductionBatchHandler(m mediator.Mediator) *RunProductionBatchHandler {
	return &RunProductionBatchHandler{mediator: m}
}

// Handle executes the run production batch command
func (h *RunProductionBatchHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RunProductionBatchCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	logger := logging.LoggerFromContext(ctx)
	summary := manufacturing.NewSummary()
	response := &RunProductionBatchResponse{
		Results: make([]*RunProductionOrderResponse, 0, len(cmd.Orders)),
		Summary: summary,
	}

	for i, order := range cmd.Orders {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("production batch interrupted after %d of %d orders: %w", i, len(cmd.Orders), err)
		}

		resp, err := h.mediator.Send(ctx, &RunProductionOrderCommand{
			Order:     order,
			Generator: cmd.Generator,
		})
		if err != nil {
			return nil, err
		}
		result, ok := resp.(*RunProductionOrderResponse)
		if !ok {
			return nil, fmt.Errorf("unexpected response type %T", resp)
		}

		summary.Add(result.Stats)
		response.Results = append(response.Results, result)
	}

	response.SummaryReport = summary.GenerateSummaryReport()

	logger.Log(logging.LevelInfo, "production batch completed", map[string]interface{}{
		"orders":     len(cmd.Orders),
		"succeeded":  summary.Succeeded(),
		"failed":     summary.Failed(),
		"total_cost": summary.TotalCost().StringFixed(2),
	})

	return response, nil
}
