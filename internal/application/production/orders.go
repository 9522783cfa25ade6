package production

import (
	"fmt"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
	"github.com/andrescamacho/factorysim-go/pkg/utils"
)

// PlanOrders turns planned orders into production orders, in the given order.
// Each planned product reference is resolved by id, then by name.
func PlanOrders(catalog *inventory.Catalog, planned []inventory.PlannedOrder, clock shared.Clock) ([]*manufacturing.ProductionOrder, error) {
	orders := make([]*manufacturing.ProductionOrder, 0, len(planned))
	for _, p := range planned {
		product, err := catalog.ResolveProduct(p.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to plan order: %w", err)
		}
		order, err := manufacturing.NewProductionOrder(utils.GenerateOrderID(product.ID()), product, p.Quantity, clock)
		if err != nil {
			return nil, fmt.Errorf("failed to plan order for %s: %w", product.ID(), err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
