package steps

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

// sharedCatalogContext holds the catalog built by the Given steps so that
// domain, application and adapter steps work on the same components
type sharedCatalogContext struct {
	mu        sync.RWMutex
	catalog   *inventory.Catalog
	outcomes  []manufacturing.Outcome
	shortages []bool
}

var (
	// Global shared catalog for all scenarios
	globalCatalogContext = &sharedCatalogContext{
		catalog: inventory.NewCatalog(),
	}
)

// reset clears all shared state (called in Before hooks)
func (ctx *sharedCatalogContext) reset() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.catalog = inventory.NewCatalog()
	ctx.outcomes = nil
	ctx.shortages = nil
}

func (ctx *sharedCatalogContext) getCatalog() *inventory.Catalog {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.catalog
}

func (ctx *sharedCatalogContext) setCatalog(catalog *inventory.Catalog) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.catalog = catalog
}

// setScripts replaces the outcome and forced shortage sequences
func (ctx *sharedCatalogContext) setScripts(outcomes []manufacturing.Outcome, shortages []bool) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	if outcomes != nil {
		ctx.outcomes = outcomes
	}
	if shortages != nil {
		ctx.shortages = shortages
	}
}

// newGenerator returns a fresh generator replaying the scripts from the start
func (ctx *sharedCatalogContext) newGenerator() *manufacturing.ScriptedOutcomes {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return manufacturing.NewScriptedOutcomes(ctx.outcomes, ctx.shortages)
}

func (ctx *sharedCatalogContext) component(id string) (inventory.Component, error) {
	c, err := ctx.getCatalog().ComponentByID(id)
	if err != nil {
		return nil, fmt.Errorf("component %q not in catalog: %w", id, err)
	}
	return c, nil
}

func (ctx *sharedCatalogContext) product(ref string) (*inventory.Product, error) {
	p, err := ctx.getCatalog().ResolveProduct(ref)
	if err != nil {
		return nil, fmt.Errorf("product %q not in catalog: %w", ref, err)
	}
	return p, nil
}

// ============================================================================
// Helper Functions
// ============================================================================

// getCellValueFromTable gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}

// parseOutcomes reads "SUCCESS, DAMAGED_COMPONENT" style lists
func parseOutcomes(list string) ([]manufacturing.Outcome, error) {
	var outcomes []manufacturing.Outcome
	for _, name := range splitList(list) {
		switch name {
		case "SUCCESS":
			outcomes = append(outcomes, manufacturing.OutcomeSuccess)
		case "SYSTEM_ERROR":
			outcomes = append(outcomes, manufacturing.OutcomeSystemError)
		case "DAMAGED_COMPONENT":
			outcomes = append(outcomes, manufacturing.OutcomeDamagedComponent)
		default:
			return nil, fmt.Errorf("unknown outcome %q", name)
		}
	}
	return outcomes, nil
}

// parseBools reads "false, true" style lists
func parseBools(list string) ([]bool, error) {
	var values []bool
	for _, item := range splitList(list) {
		b, err := strconv.ParseBool(item)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q", item)
		}
		values = append(values, b)
	}
	return values, nil
}

func splitList(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getIntCell(table *godog.Table, row *messages.PickleTableRow, columnName string) (int, error) {
	value := getCellValueFromTable(table, row, columnName)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", columnName, value)
	}
	return n, nil
}
