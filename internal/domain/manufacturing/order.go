package manufacturing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
)

// ProductionOrder is a request to build a product a number of times.
// Product and quantity never change; only the completed flag does.
type ProductionOrder struct {
	id          string
	product     *inventory.Product
	quantity    int
	completed   bool
	createdAt   time.Time
	completedAt *time.Time
	clock       shared.Clock
}

// NewProductionOrder creates a pending order.
// If clock is nil, uses RealClock (production behavior)
func NewProductionOrder(id string, product *inventory.Product, quantity int, clock shared.Clock) (*ProductionOrder, error) {
	if product == nil {
		return nil, shared.NewValidationError("product", "must not be nil")
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("quantity", fmt.Sprintf("must be non-negative, got %d", quantity))
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &ProductionOrder{
		id:        id,
		product:   product,
		quantity:  quantity,
		createdAt: clock.Now(),
		clock:     clock,
	}, nil
}

// Getters

func (o *ProductionOrder) ID() string                  { return o.id }
func (o *ProductionOrder) Product() *inventory.Product { return o.product }
func (o *ProductionOrder) Quantity() int               { return o.quantity }
func (o *ProductionOrder) IsCompleted() bool           { return o.completed }
func (o *ProductionOrder) CreatedAt() time.Time        { return o.createdAt }
func (o *ProductionOrder) CompletedAt() *time.Time     { return o.completedAt }

// MarkCompleted flags the order as done once its batch has run. Repeated calls keep the first timestamp.
func (o *ProductionOrder) MarkCompleted() {
	if o.completed {
		return
	}
	now := o.clock.Now()
	o.completed = true
	o.completedAt = &now
}

// TotalCost is the product's unit cost times the requested quantity
func (o *ProductionOrder) TotalCost() decimal.Decimal {
	return o.product.Cost().Mul(decimal.NewFromInt(int64(o.quantity)))
}

// TotalWeight is the product's unit weight times the requested quantity
func (o *ProductionOrder) TotalWeight() decimal.Decimal {
	return o.product.Weight().Mul(decimal.NewFromInt(int64(o.quantity)))
}

func (o *ProductionOrder) String() string {
	status := "Pending"
	if o.completed {
		status = "Completed"
	}
	return fmt.Sprintf("Production Order: %s - %d units, Unit Cost: %s, Unit Weight: %s, "+
		"Total Cost: %s, Total Weight: %s, Status: %s",
		o.product.Name(), o.quantity,
		o.product.Cost().StringFixed(2), o.product.Weight().StringFixed(2),
		o.TotalCost().StringFixed(2), o.TotalWeight().StringFixed(2), status)
}
