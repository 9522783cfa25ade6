package filesource

import (
	"context"
	"fmt"
	"os"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// CSVCatalogSource loads the catalog from a components file, a products file
// and, optionally, an orders manifest that replaces the product quantities
type CSVCatalogSource struct {
	componentsPath string
	productsPath   string
	ordersPath     string

	lastResult LoadResult
}

// NewCSVCatalogSource creates a catalog source over the given files.
// ordersPath may be empty.
func NewCSVCatalogSource(componentsPath, productsPath, ordersPath string) *CSVCatalogSource {
	return &CSVCatalogSource{
		componentsPath: componentsPath,
		productsPath:   productsPath,
		ordersPath:     ordersPath,
	}
}

// LastResult returns the counts of the most recent Load
func (s *CSVCatalogSource) LastResult() LoadResult {
	return s.lastResult
}

// Load implements inventory.CatalogSource
func (s *CSVCatalogSource) Load(ctx context.Context) (*inventory.Catalog, []inventory.PlannedOrder, error) {
	catalog := inventory.NewCatalog()
	var result LoadResult

	componentsFile, err := os.Open(s.componentsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open components file: %w", err)
	}
	defer componentsFile.Close()

	result.ComponentsLoaded, result.ComponentsSkipped, err = LoadComponents(ctx, componentsFile, catalog)
	if err != nil {
		return nil, nil, err
	}

	productsFile, err := os.Open(s.productsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open products file: %w", err)
	}
	defer productsFile.Close()

	orders, loaded, skipped, err := LoadProducts(ctx, productsFile, catalog)
	if err != nil {
		return nil, nil, err
	}
	result.ProductsLoaded, result.ProductsSkipped = loaded, skipped

	if s.ordersPath != "" {
		manifestFile, err := os.Open(s.ordersPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open orders manifest: %w", err)
		}
		defer manifestFile.Close()

		orders, err = LoadOrdersManifest(manifestFile)
		if err != nil {
			return nil, nil, err
		}
		result.OrdersFromFile = true
	}

	s.lastResult = result
	return catalog, orders, nil
}
