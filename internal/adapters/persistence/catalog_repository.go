package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// GormCatalogRepository implements inventory.CatalogRepository using GORM.
// Save replaces the stored catalog as a whole.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Save persists components, products (with finished-goods stock), their parts
// and planned order quantities
func (r *GormCatalogRepository) Save(ctx context.Context, catalog *inventory.Catalog, orders []inventory.PlannedOrder) error {
	components, products, err := r.catalogToModels(catalog, orders)
	if err != nil {
		return fmt.Errorf("failed to convert catalog to models: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearCatalog(tx); err != nil {
			return err
		}
		if len(components) > 0 {
			if err := tx.Create(&components).Error; err != nil {
				return fmt.Errorf("failed to save components: %w", err)
			}
		}
		if len(products) > 0 {
			// Parts are created through the association
			if err := tx.Create(&products).Error; err != nil {
				return fmt.Errorf("failed to save products: %w", err)
			}
		}
		return nil
	})
}

func clearCatalog(tx *gorm.DB) error {
	for _, model := range []interface{}{&ProductPartModel{}, &ProductModel{}, &ComponentModel{}} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// Load rebuilds the catalog in the order it was saved, with the planned orders
func (r *GormCatalogRepository) Load(ctx context.Context) (*inventory.Catalog, []inventory.PlannedOrder, error) {
	var componentModels []ComponentModel
	if err := r.db.WithContext(ctx).Order("position").Find(&componentModels).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load components: %w", err)
	}

	var productModels []ProductModel
	err := r.db.WithContext(ctx).
		Preload("Parts", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("position").
		Find(&productModels).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load products: %w", err)
	}

	return r.modelsToCatalog(componentModels, productModels)
}

func (r *GormCatalogRepository) catalogToModels(
	catalog *inventory.Catalog,
	orders []inventory.PlannedOrder,
) ([]ComponentModel, []ProductModel, error) {
	// One planned quantity per product; repeated orders add up
	planned := make(map[string]int, len(orders))
	for _, o := range orders {
		planned[o.ProductID] += o.Quantity
	}

	components := make([]ComponentModel, 0, len(catalog.Components()))
	for i, c := range catalog.Components() {
		leaf, ok := c.(*inventory.LeafComponent)
		if !ok {
			return nil, nil, fmt.Errorf("component %s: only leaf components can be stored, got %T", c.ID(), c)
		}
		components = append(components, ComponentModel{
			ID:       leaf.ID(),
			Name:     leaf.Name(),
			Kind:     string(leaf.Kind()),
			Cost:     leaf.Cost(),
			Weight:   leaf.Weight(),
			Stock:    leaf.Stock(),
			Position: i,
		})
	}

	products := make([]ProductModel, 0, len(catalog.Products()))
	for i, p := range catalog.Products() {
		model := ProductModel{
			ID:       p.ID(),
			Name:     p.Name(),
			Stock:    p.Stock(),
			Position: i,
		}
		if qty, ok := planned[p.ID()]; ok {
			q := qty
			model.PlannedQuantity = &q
		}
		for j, part := range p.Parts() {
			model.Parts = append(model.Parts, ProductPartModel{
				ProductID:   p.ID(),
				ComponentID: part.Component().ID(),
				Quantity:    part.Quantity(),
				Position:    j,
			})
		}
		products = append(products, model)
	}

	return components, products, nil
}

func (r *GormCatalogRepository) modelsToCatalog(
	componentModels []ComponentModel,
	productModels []ProductModel,
) (*inventory.Catalog, []inventory.PlannedOrder, error) {
	catalog := inventory.NewCatalog()

	for _, m := range componentModels {
		leaf, err := inventory.NewLeafComponent(m.ID, m.Name, m.Cost, m.Weight, m.Stock, inventory.Kind(m.Kind))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid stored component %s: %w", m.ID, err)
		}
		if err := catalog.AddComponent(leaf); err != nil {
			return nil, nil, err
		}
	}

	var orders []inventory.PlannedOrder
	for _, m := range productModels {
		product, err := inventory.ReconstructProduct(m.ID, m.Name, m.Stock)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid stored product %s: %w", m.ID, err)
		}
		for _, part := range m.Parts {
			component, err := catalog.ComponentByID(part.ComponentID)
			if err != nil {
				return nil, nil, fmt.Errorf("product %s: %w", m.ID, err)
			}
			if err := product.AddPart(component, part.Quantity); err != nil {
				return nil, nil, fmt.Errorf("product %s: %w", m.ID, err)
			}
		}
		if err := catalog.AddProduct(product); err != nil {
			return nil, nil, err
		}
		if m.PlannedQuantity != nil {
			orders = append(orders, inventory.PlannedOrder{ProductID: m.ID, Quantity: *m.PlannedQuantity})
		}
	}

	return catalog, orders, nil
}
