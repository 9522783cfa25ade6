package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/application/mediator"
	"github.com/andrescamacho/factorysim-go/internal/application/production"
	"github.com/andrescamacho/factorysim-go/internal/application/production/commands"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
	"github.com/andrescamacho/factorysim-go/pkg/utils"
	"github.com/andrescamacho/factorysim-go/test/helpers"
)

type productionCommandContext struct {
	shared *sharedCatalogContext

	clock    *shared.MockClock
	sampling production.UnitLogSampling
	orders   []*manufacturing.ProductionOrder
	logger   *helpers.RecordingLogger
	metrics  *helpers.MockMetricsRecorder
	response *commands.RunProductionBatchResponse
	err      error
}

func (c *productionCommandContext) reset() {
	c.clock = shared.NewMockClock(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))
	c.sampling = production.UnitLogSampling{First: 10, Every: 100}
	c.orders = nil
	c.logger = helpers.NewRecordingLogger()
	c.metrics = helpers.NewMockMetricsRecorder()
	c.response = nil
	c.err = nil
}

// Given steps

func (c *productionCommandContext) aProductionOrderForUnitsOf(quantity int, ref string) error {
	product, err := c.shared.product(ref)
	if err != nil {
		return err
	}
	order, err := manufacturing.NewProductionOrder(utils.GenerateOrderID(product.ID()), product, quantity, c.clock)
	if err != nil {
		return err
	}
	c.orders = append(c.orders, order)
	return nil
}

func (c *productionCommandContext) unitLogsAreSampled(first, every int) error {
	c.sampling = production.UnitLogSampling{First: first, Every: every}
	return nil
}

// When steps

func (c *productionCommandContext) iRunTheProductionBatch() error {
	m := mediator.NewMediator()
	m.Use(mediator.LoggingMiddleware)

	orderHandler := commands.NewRunProductionOrderHandler(c.metrics, c.sampling, c.clock)
	if err := mediator.RegisterHandler[*commands.RunProductionOrderCommand](m, orderHandler); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*commands.RunProductionBatchCommand](m, commands.NewRunProductionBatchHandler(m)); err != nil {
		return err
	}

	ctx := logging.WithLogger(context.Background(), c.logger)
	resp, err := m.Send(ctx, &commands.RunProductionBatchCommand{
		Orders:    c.orders,
		Generator: c.shared.newGenerator(),
	})
	c.err = err
	if err == nil {
		c.response = resp.(*commands.RunProductionBatchResponse)
	}
	return nil
}

// Then steps

func (c *productionCommandContext) theBatchShouldSucceed() error {
	if c.err != nil {
		return fmt.Errorf("expected batch to succeed, got: %v", c.err)
	}
	return nil
}

func (c *productionCommandContext) theSummaryShouldReport(succeeded, failed int) error {
	if c.response == nil {
		return fmt.Errorf("no batch response available: %v", c.err)
	}
	summary := c.response.Summary
	if summary.Succeeded() != succeeded || summary.Failed() != failed {
		return fmt.Errorf("expected %d successful and %d failed units, got %d and %d",
			succeeded, failed, summary.Succeeded(), summary.Failed())
	}
	return nil
}

func (c *productionCommandContext) theSummaryTotalCostShouldBe(expected string) error {
	if c.response == nil {
		return fmt.Errorf("no batch response available: %v", c.err)
	}
	if got := c.response.Summary.TotalCost().StringFixed(2); got != expected {
		return fmt.Errorf("expected total cost %s, got %s", expected, got)
	}
	return nil
}

func (c *productionCommandContext) orderShouldHaveSuccessfulUnits(index, expected int) error {
	if c.response == nil {
		return fmt.Errorf("no batch response available: %v", c.err)
	}
	if index < 1 || index > len(c.response.Results) {
		return fmt.Errorf("order %d not in results (%d orders)", index, len(c.response.Results))
	}
	if got := c.response.Results[index-1].Stats.Succeeded; got != expected {
		return fmt.Errorf("expected order %d to have %d successful units, got %d", index, expected, got)
	}
	return nil
}

func (c *productionCommandContext) everyOrderShouldBeCompleted() error {
	for _, order := range c.orders {
		if !order.IsCompleted() {
			return fmt.Errorf("order %s is not completed", order.ID())
		}
	}
	return nil
}

func (c *productionCommandContext) metricsShouldRecord(orders, units int) error {
	if len(c.metrics.Orders) != orders {
		return fmt.Errorf("expected %d recorded orders, got %d", orders, len(c.metrics.Orders))
	}
	if len(c.metrics.Units) != units {
		return fmt.Errorf("expected %d recorded units, got %d", units, len(c.metrics.Units))
	}
	return nil
}

func (c *productionCommandContext) logEntriesShouldBeRecorded(expected int, message string) error {
	if got := c.logger.Count(message); got != expected {
		return fmt.Errorf("expected %d %q log entries, got %d", expected, message, got)
	}
	return nil
}

func InitializeProductionCommandScenario(ctx *godog.ScenarioContext) {
	c := &productionCommandContext{shared: globalCatalogContext}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a production order for (\d+) units? of "([^"]*)"$`, c.aProductionOrderForUnitsOf)
	ctx.Step(`^unit logs are sampled with first (\d+) and every (\d+)$`, c.unitLogsAreSampled)

	// When steps
	ctx.Step(`^I run the production batch$`, c.iRunTheProductionBatch)

	// Then steps
	ctx.Step(`^the batch should succeed$`, c.theBatchShouldSucceed)
	ctx.Step(`^the summary should report (\d+) successful and (\d+) failed units$`, c.theSummaryShouldReport)
	ctx.Step(`^the summary total cost should be "([^"]*)"$`, c.theSummaryTotalCostShouldBe)
	ctx.Step(`^order (\d+) should have (\d+) successful units?$`, c.orderShouldHaveSuccessfulUnits)
	ctx.Step(`^every order should be completed$`, c.everyOrderShouldBeCompleted)
	ctx.Step(`^metrics should record (\d+) orders? and (\d+) units?$`, c.metricsShouldRecord)
	ctx.Step(`^(\d+) "([^"]*)" log entries should be recorded$`, c.logEntriesShouldBeRecorded)
}
