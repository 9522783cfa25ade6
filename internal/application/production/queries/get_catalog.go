package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factorysim-go/internal/application/mediator"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// GetCatalogQuery loads the catalog from the configured source
type GetCatalogQuery struct{}

// GetCatalogResponse contains the catalog, its planned orders and reports
type GetCatalogResponse struct {
	Catalog          *inventory.Catalog
	Orders           []inventory.PlannedOrder
	ComponentReports []string
	ProductReports   []string
}

// GetCatalogHandler handles the get catalog query
type GetCatalogHandler struct {
	source inventory.CatalogSource
}

// NewGetCatalogHandler creates a new get catalog handler
func NewGetCatalogHandler(source inventory.CatalogSource) *GetCatalogHandler {
	return &GetCatalogHandler{source: source}
}

// Handle executes the get catalog query
func (h *GetCatalogHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetCatalogQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	catalog, orders, err := h.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	response := &GetCatalogResponse{
		Catalog: catalog,
		Orders:  orders,
	}
	for _, c := range catalog.Components() {
		response.ComponentReports = append(response.ComponentReports, c.Report())
	}
	for _, p := range catalog.Products() {
		response.ProductReports = append(response.ProductReports, p.Report())
	}
	return response, nil
}
