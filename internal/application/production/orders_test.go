package production_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/application/production"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
	"github.com/andrescamacho/factorysim-go/test/helpers"
)

func TestPlanOrders_ResolvesByIDOrName(t *testing.T) {
	fixture := helpers.NewWidgetFixture(t, 5, 2)
	clock := shared.NewMockClock(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

	orders, err := production.PlanOrders(fixture.Catalog, []inventory.PlannedOrder{
		{ProductID: "widget", Quantity: 2},
		{ProductID: "Widget", Quantity: 0},
	}, clock)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Same(t, fixture.Widget, orders[0].Product())
	assert.Same(t, fixture.Widget, orders[1].Product())
	assert.Equal(t, 2, orders[0].Quantity())
	assert.Regexp(t, `^order-widget-[0-9a-f]{8}$`, orders[0].ID())
	assert.NotEqual(t, orders[0].ID(), orders[1].ID())
	assert.Equal(t, clock.Now(), orders[0].CreatedAt())
}

func TestPlanOrders_UnknownProduct(t *testing.T) {
	fixture := helpers.NewWidgetFixture(t, 5, 2)

	_, err := production.PlanOrders(fixture.Catalog, []inventory.PlannedOrder{{ProductID: "ghost", Quantity: 1}}, nil)

	assert.ErrorContains(t, err, "failed to plan order")
}
