package filesource

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/factorysim-go/internal/application/logging"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// Component file columns
const (
	ColumnComponent = "Component"
	ColumnUnitCost  = "Unit Cost (TL)"
	ColumnWeight    = "Unit Weight (kg)"
	ColumnType      = "Type"
	ColumnStock     = "Stock Quantity"
)

// LoadComponents parses the components file into the catalog. Rows with a
// missing name or type, an unknown type, an unparsable number or a duplicate
// id are skipped and counted. Missing numbers default to zero.
func LoadComponents(ctx context.Context, r io.Reader, catalog *inventory.Catalog) (loaded, skipped int, err error) {
	logger := logging.LoggerFromContext(ctx)

	records, err := ParseCSV(r)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse components file: %w", err)
	}
	if len(records) == 0 {
		logger.Log(logging.LevelWarn, "components file is empty", nil)
		return 0, 0, nil
	}

	for i, record := range records {
		component, err := parseComponent(record)
		if err == nil {
			err = catalog.AddComponent(component)
		}
		if err != nil {
			logger.Log(logging.LevelWarn, "component row skipped", map[string]interface{}{
				"row":   i + 2,
				"error": err.Error(),
			})
			skipped++
			continue
		}
		loaded++
	}

	logger.Log(logging.LevelInfo, "components loaded", map[string]interface{}{
		"loaded":  loaded,
		"skipped": skipped,
	})
	return loaded, skipped, nil
}

func parseComponent(record Record) (*inventory.LeafComponent, error) {
	name := record.Get(ColumnComponent)
	if name == "" {
		return nil, fmt.Errorf("component name is missing")
	}
	typ := record.Get(ColumnType)
	if typ == "" {
		return nil, fmt.Errorf("component type is missing for %s", name)
	}

	cost, err := parseDecimal(record.Get(ColumnUnitCost))
	if err != nil {
		return nil, fmt.Errorf("invalid cost for %s: %w", name, err)
	}
	weight, err := parseDecimal(record.Get(ColumnWeight))
	if err != nil {
		return nil, fmt.Errorf("invalid weight for %s: %w", name, err)
	}
	stock, err := parseStock(record.Get(ColumnStock))
	if err != nil {
		return nil, fmt.Errorf("invalid stock for %s: %w", name, err)
	}
	kind, err := inventory.ParseKind(typ)
	if err != nil {
		return nil, err
	}

	return inventory.NewLeafComponent(inventory.ComponentID(name), name, cost, weight, stock, kind)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseStock reads the leading integer of a stock cell ("1000 m2" -> 1000)
func parseStock(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, nil
	}
	return strconv.Atoi(fields[0])
}
