package filesource

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// OrdersManifest is the YAML document listing the orders of a run:
//
//	orders:
//	  - product: widget
//	    quantity: 10
type OrdersManifest struct {
	Orders []ManifestOrder `yaml:"orders"`
}

// ManifestOrder references a product by id or name
type ManifestOrder struct {
	Product  string `yaml:"product"`
	Quantity int    `yaml:"quantity"`
}

// LoadOrdersManifest decodes an orders manifest. Product references are
// resolved later against the catalog.
func LoadOrdersManifest(r io.Reader) ([]inventory.PlannedOrder, error) {
	var manifest OrdersManifest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode orders manifest: %w", err)
	}

	orders := make([]inventory.PlannedOrder, 0, len(manifest.Orders))
	for i, o := range manifest.Orders {
		if o.Product == "" {
			return nil, fmt.Errorf("order %d: product is required", i+1)
		}
		if o.Quantity < 0 {
			return nil, fmt.Errorf("order %d (%s): quantity must be non-negative", i+1, o.Product)
		}
		orders = append(orders, inventory.PlannedOrder{ProductID: o.Product, Quantity: o.Quantity})
	}
	return orders, nil
}
