package manufacturing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
)

func TestProductionOrder_Lifecycle(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	w := newWidget(t, 5, 2)

	// Act
	order, err := manufacturing.NewProductionOrder("order-1", w.product, 2, clock)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "order-1", order.ID())
	assert.Equal(t, 2, order.Quantity())
	assert.False(t, order.IsCompleted())
	assert.Nil(t, order.CompletedAt())
	assert.Equal(t, clock.Now(), order.CreatedAt())

	clock.Advance(time.Minute)
	order.MarkCompleted()
	first := *order.CompletedAt()
	clock.Advance(time.Minute)
	order.MarkCompleted()

	assert.True(t, order.IsCompleted())
	assert.Equal(t, first, *order.CompletedAt(), "completion time is kept")
}

func TestProductionOrder_String(t *testing.T) {
	w := newWidget(t, 5, 2)
	order, err := manufacturing.NewProductionOrder("order-1", w.product, 2, nil)
	require.NoError(t, err)

	assert.Equal(t,
		"Production Order: Widget - 2 units, Unit Cost: 5.00, Unit Weight: 2.00, Total Cost: 10.00, Total Weight: 4.00, Status: Pending",
		order.String())

	order.MarkCompleted()
	assert.Contains(t, order.String(), "Status: Completed")
}

func TestNewProductionOrder_Validation(t *testing.T) {
	w := newWidget(t, 1, 1)

	_, err := manufacturing.NewProductionOrder("o", nil, 1, nil)
	assert.Error(t, err)

	_, err = manufacturing.NewProductionOrder("o", w.product, -1, nil)
	assert.Error(t, err)

	_, err = manufacturing.NewProductionOrder("o", w.product, 0, nil)
	assert.NoError(t, err, "an empty order is legal")
}

func TestNewProductionRun_UsesOrderQuantity(t *testing.T) {
	w := newWidget(t, 10, 10)
	order, err := manufacturing.NewProductionOrder("o", w.product, 3, nil)
	require.NoError(t, err)

	p, err := manufacturing.NewProductionRun(order, manufacturing.AlwaysSucceed())
	require.NoError(t, err)
	require.NoError(t, p.Run())

	assert.Equal(t, 3, p.Quantity())
	assert.Equal(t, 3, p.SuccessCount())
}
