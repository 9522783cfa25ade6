package filesource

import "fmt"

// LoadResult counts what a catalog load accepted and rejected
type LoadResult struct {
	ComponentsLoaded  int
	ComponentsSkipped int
	ProductsLoaded    int
	ProductsSkipped   int
	OrdersFromFile    bool
}

func (r LoadResult) String() string {
	return fmt.Sprintf("components: %d loaded, %d skipped; products: %d loaded, %d skipped",
		r.ComponentsLoaded, r.ComponentsSkipped, r.ProductsLoaded, r.ProductsSkipped)
}
