package filesource

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// Product file columns. Every other column is named after a component.
const (
	ColumnProductName = "Product Name"
	ColumnQuantity    = "Quantity"
)

// LoadProducts parses the products file against the components already in
// the catalog. A non-empty, non-zero cell under a component column adds that
// component with the cell value rounded up per unit. The Quantity column
// becomes the planned order for the product.
func LoadProducts(ctx context.Context, r io.Reader, catalog *inventory.Catalog) ([]inventory.PlannedOrder, int, int, error) {
	logger := logging.LoggerFromContext(ctx)

	records, err := ParseCSV(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to parse products file: %w", err)
	}
	if len(records) == 0 {
		logger.Log(logging.LevelWarn, "products file is empty", nil)
		return nil, 0, 0, nil
	}

	var (
		orders          []inventory.PlannedOrder
		loaded, skipped int
	)
	for i, record := range records {
		product, quantity, err := parseProduct(record, catalog, logger)
		if err == nil {
			err = catalog.AddProduct(product)
		}
		if err != nil {
			logger.Log(logging.LevelWarn, "product row skipped", map[string]interface{}{
				"row":   i + 2,
				"error": err.Error(),
			})
			skipped++
			continue
		}

		orders = append(orders, inventory.PlannedOrder{ProductID: product.ID(), Quantity: quantity})
		loaded++
		logger.Log(logging.LevelDebug, "product loaded", map[string]interface{}{
			"product_id":   product.ID(),
			"parts":        len(product.Parts()),
			"unit_cost":    product.Cost().StringFixed(2),
			"unit_weight":  product.Weight().StringFixed(2),
			"order_amount": quantity,
		})
	}

	logger.Log(logging.LevelInfo, "products loaded", map[string]interface{}{
		"loaded":  loaded,
		"skipped": skipped,
	})
	return orders, loaded, skipped, nil
}

func parseProduct(record Record, catalog *inventory.Catalog, logger logging.Logger) (*inventory.Product, int, error) {
	name := record.Get(ColumnProductName)
	if name == "" {
		return nil, 0, fmt.Errorf("product name is missing")
	}

	quantity := 0
	if s := record.Get(ColumnQuantity); s != "" {
		q, err := strconv.Atoi(s)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid quantity %q for %s", s, name)
		}
		if q < 0 {
			return nil, 0, fmt.Errorf("negative quantity %d for %s", q, name)
		}
		quantity = q
	}

	product := inventory.NewProduct(inventory.ComponentID(name), name)
	for _, component := range catalog.Components() {
		cell := record.Get(component.Name())
		if cell == "" || cell == "0" {
			continue
		}
		amount, err := decimal.NewFromString(cell)
		if err != nil {
			logger.Log(logging.LevelWarn, "invalid component quantity ignored", map[string]interface{}{
				"product":   name,
				"component": component.Name(),
				"value":     cell,
			})
			continue
		}
		perUnit := int(amount.Ceil().IntPart())
		if perUnit <= 0 {
			continue
		}
		if err := product.AddPart(component, perUnit); err != nil {
			return nil, 0, err
		}
	}
	return product, quantity, nil
}
