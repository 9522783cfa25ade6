package inventory

import (
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
)

// Catalog is the ready-to-query inventory handed to the production core.
// Components and products keep their registration order.
type Catalog struct {
	components     []Component
	componentsByID map[string]Component
	products       []*Product
	productsByID   map[string]*Product
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		componentsByID: make(map[string]Component),
		productsByID:   make(map[string]*Product),
	}
}

// AddComponent registers a component under its id
func (c *Catalog) AddComponent(component Component) error {
	if component == nil {
		return shared.NewValidationError("component", "must not be nil")
	}
	if _, exists := c.componentsByID[component.ID()]; exists {
		return &ErrDuplicateID{Kind: "component", ID: component.ID()}
	}
	c.componentsByID[component.ID()] = component
	c.components = append(c.components, component)
	return nil
}

// AddProduct registers a product under its id
func (c *Catalog) AddProduct(product *Product) error {
	if product == nil {
		return shared.NewValidationError("product", "must not be nil")
	}
	if _, exists := c.productsByID[product.ID()]; exists {
		return &ErrDuplicateID{Kind: "product", ID: product.ID()}
	}
	c.productsByID[product.ID()] = product
	c.products = append(c.products, product)
	return nil
}

// Components returns all components in registration order
func (c *Catalog) Components() []Component {
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

// Products returns all products in registration order
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// ComponentByID returns the component with the given id
func (c *Catalog) ComponentByID(id string) (Component, error) {
	if component, ok := c.componentsByID[id]; ok {
		return component, nil
	}
	return nil, shared.NewNotFoundError("component", id)
}

// ComponentByName returns the first component with the given display name
func (c *Catalog) ComponentByName(name string) (Component, error) {
	for _, component := range c.components {
		if component.Name() == name {
			return component, nil
		}
	}
	return nil, shared.NewNotFoundError("component", name)
}

// ProductByID returns the product with the given id
func (c *Catalog) ProductByID(id string) (*Product, error) {
	if product, ok := c.productsByID[id]; ok {
		return product, nil
	}
	return nil, shared.NewNotFoundError("product", id)
}

// ProductByName returns the first product with the given display name
func (c *Catalog) ProductByName(name string) (*Product, error) {
	for _, product := range c.products {
		if product.Name() == name {
			return product, nil
		}
	}
	return nil, shared.NewNotFoundError("product", name)
}

// ResolveProduct looks a product up by id first, then by name
func (c *Catalog) ResolveProduct(ref string) (*Product, error) {
	if product, err := c.ProductByID(ref); err == nil {
		return product, nil
	}
	if product, err := c.ProductByName(ref); err == nil {
		return product, nil
	}
	return c.ProductByID(ComponentID(ref))
}
