package inventory

import "context"

// PlannedOrder is a "build this product N times" request stored with the catalog
type PlannedOrder struct {
	ProductID string
	Quantity  int
}

// CatalogSource loads catalog definitions together with the planned orders
type CatalogSource interface {
	Load(ctx context.Context) (*Catalog, []PlannedOrder, error)
}

// CatalogRepository persists catalog definitions (initial stock and bills of
// materials). Production results are never written back.
type CatalogRepository interface {
	CatalogSource
	Save(ctx context.Context, catalog *Catalog, orders []PlannedOrder) error
}
