package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/application/mediator"
	"github.com/andrescamacho/factorysim-go/internal/application/production"
	"github.com/andrescamacho/factorysim-go/internal/application/production/commands"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
	"github.com/andrescamacho/factorysim-go/test/helpers"
)

func newProductionMediator(t *testing.T) mediator.Mediator {
	t.Helper()
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*commands.RunProductionOrderCommand](m,
		commands.NewRunProductionOrderHandler(nil, production.UnitLogSampling{}, nil)))
	require.NoError(t, mediator.RegisterHandler[*commands.RunProductionBatchCommand](m,
		commands.NewRunProductionBatchHandler(m)))
	return m
}

func TestRunProductionBatch_OrdersShareStockInSequence(t *testing.T) {
	// Arrange: two products drawing on the same raw material
	fixture := helpers.NewWidgetFixture(t, 6, 10)
	gizmo := inventory.NewProduct("gizmo", "Gizmo")
	require.NoError(t, gizmo.AddPart(fixture.Raw, 1))
	m := newProductionMediator(t)

	// Act: widgets take 4 raw, leaving 2 gizmos out of 3
	resp, err := m.Send(context.Background(), &commands.RunProductionBatchCommand{
		Orders: []*manufacturing.ProductionOrder{
			newOrder(t, fixture.Widget, 2),
			newOrder(t, gizmo, 3),
		},
		Generator: manufacturing.AlwaysSucceed(),
	})

	// Assert
	require.NoError(t, err)
	batch := resp.(*commands.RunProductionBatchResponse)
	require.Len(t, batch.Results, 2)
	assert.Equal(t, 2, batch.Results[0].Stats.Succeeded)
	assert.Equal(t, 2, batch.Results[1].Stats.Succeeded)
	assert.Equal(t, 1, batch.Results[1].Stats.StockShortages)
	assert.Equal(t, 4, batch.Summary.Succeeded())
	assert.Equal(t, 1, batch.Summary.Failed())
	assert.Contains(t, batch.SummaryReport, "Orders: 2\n")
	assert.Contains(t, batch.SummaryReport, "  - Total Cost: 12.00\n")
}

func TestRunProductionBatch_UsesMediatorPerOrder(t *testing.T) {
	fixture := helpers.NewWidgetFixture(t, 1, 1)
	mock := helpers.NewMockMediator()
	handler := commands.NewRunProductionBatchHandler(mock)
	first := newOrder(t, fixture.Widget, 4)

	resp, err := handler.Handle(context.Background(), &commands.RunProductionBatchCommand{
		Orders:    []*manufacturing.ProductionOrder{first},
		Generator: manufacturing.AlwaysSucceed(),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"RunProductionOrder:" + first.ID()}, mock.GetCallLog())
	assert.Equal(t, 4, resp.(*commands.RunProductionBatchResponse).Summary.Succeeded())
}

func TestRunProductionBatch_PropagatesOrderErrors(t *testing.T) {
	fixture := helpers.NewWidgetFixture(t, 1, 1)
	mock := helpers.NewMockMediator()
	mock.SetSendFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("boom")
	})
	handler := commands.NewRunProductionBatchHandler(mock)

	_, err := handler.Handle(context.Background(), &commands.RunProductionBatchCommand{
		Orders:    []*manufacturing.ProductionOrder{newOrder(t, fixture.Widget, 1)},
		Generator: manufacturing.AlwaysSucceed(),
	})

	assert.EqualError(t, err, "boom")
}

func TestRunProductionBatch_StopsWhenContextCancelled(t *testing.T) {
	fixture := helpers.NewWidgetFixture(t, 10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newProductionMediator(t).Send(ctx, &commands.RunProductionBatchCommand{
		Orders:    []*manufacturing.ProductionOrder{newOrder(t, fixture.Widget, 1)},
		Generator: manufacturing.AlwaysSucceed(),
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, fixture.Raw.Stock(), "nothing ran")
}
