package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
)

// Part is one line of a product's bill of materials
type Part struct {
	component Component
	quantity  int
}

func (p Part) Component() Component { return p.component }
func (p Part) Quantity() int        { return p.quantity }

// Cost returns unit cost multiplied by quantity per unit
func (p Part) Cost() decimal.Decimal {
	return p.component.Cost().Mul(decimal.NewFromInt(int64(p.quantity)))
}

// Weight returns unit weight multiplied by quantity per unit
func (p Part) Weight() decimal.Decimal {
	return p.component.Weight().Mul(decimal.NewFromInt(int64(p.quantity)))
}

func (p Part) String() string {
	return fmt.Sprintf("%dx %s", p.quantity, p.component.Name())
}

// Shortage describes a component that cannot cover one unit of production
type Shortage struct {
	ComponentID string
	Name        string
	Required    int
	Available   int
}

func (s Shortage) String() string {
	return fmt.Sprintf("%s: need %d, have %d", s.Name, s.Required, s.Available)
}

// Product is a composite component built from leaf components.
// Components are shared, so consuming them here is visible to every other
// product that references the same component.
//
// Invariants:
// - every part has quantity >= 1
// - parts are leaves; products never nest
// - ConsumeComponentsStock checks every part before it decrements any part
type Product struct {
	id    string
	name  string
	stock int
	parts []Part
}

// NewProduct creates an empty product with no output stock
func NewProduct(id, name string) *Product {
	return &Product{
		id:    id,
		name:  name,
		parts: make([]Part, 0),
	}
}

// ReconstructProduct rebuilds a stored product with its finished-goods stock.
// Parts are added afterwards with AddPart.
func ReconstructProduct(id, name string, stock int) (*Product, error) {
	if stock < 0 {
		return nil, shared.NewValidationError("stock", fmt.Sprintf("must be non-negative, got %d", stock))
	}
	p := NewProduct(id, name)
	p.stock = stock
	return p, nil
}

// Getters

func (p *Product) ID() string   { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Stock() int   { return p.stock }

// Parts returns a copy of the bill of materials in insertion order
func (p *Product) Parts() []Part {
	parts := make([]Part, len(p.parts))
	copy(parts, p.parts)
	return parts
}

// AddPart appends a component line. Listing a component twice is legal and
// the two lines add up; they are never merged.
func (p *Product) AddPart(component Component, quantity int) error {
	if component == nil {
		return shared.NewValidationError("component", "must not be nil")
	}
	if quantity < 1 {
		return shared.NewValidationError("quantity", fmt.Sprintf("must be at least 1, got %d", quantity))
	}
	if nested, ok := component.(*Product); ok {
		return &ErrNestedProduct{ProductID: p.id, PartID: nested.ID()}
	}

	p.parts = append(p.parts, Part{component: component, quantity: quantity})
	return nil
}

// Cost returns the sum of unit cost * quantity over all parts
func (p *Product) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, part := range p.parts {
		total = total.Add(part.Cost())
	}
	return total
}

// Weight returns the sum of unit weight * quantity over all parts
func (p *Product) Weight() decimal.Decimal {
	total := decimal.Zero
	for _, part := range p.parts {
		total = total.Add(part.Weight())
	}
	return total
}

// CheckStock reports whether quantity finished units are on hand
func (p *Product) CheckStock(quantity int) bool {
	return quantity >= 0 && p.stock >= quantity
}

// Consume removes finished units from the product's own stock
func (p *Product) Consume(quantity int) bool {
	if !p.CheckStock(quantity) {
		return false
	}
	p.stock -= quantity
	return true
}

// requirement is the total demand one unit places on a single component
type requirement struct {
	component Component
	quantity  int
}

// requirements folds duplicate lines so a component listed twice is checked
// against its combined demand. Order follows first appearance.
func (p *Product) requirements() []requirement {
	index := make(map[Component]int, len(p.parts))
	reqs := make([]requirement, 0, len(p.parts))
	for _, part := range p.parts {
		if i, ok := index[part.component]; ok {
			reqs[i].quantity += part.quantity
			continue
		}
		index[part.component] = len(reqs)
		reqs = append(reqs, requirement{component: part.component, quantity: part.quantity})
	}
	return reqs
}

// Shortages lists every component that cannot cover one unit. Read-only.
func (p *Product) Shortages() []Shortage {
	var shortages []Shortage
	for _, req := range p.requirements() {
		if !req.component.CheckStock(req.quantity) {
			shortages = append(shortages, Shortage{
				ComponentID: req.component.ID(),
				Name:        req.component.Name(),
				Required:    req.quantity,
				Available:   req.component.Stock(),
			})
		}
	}
	return shortages
}

// CheckComponentsStock reports whether one unit can be built. It never mutates.
func (p *Product) CheckComponentsStock() bool {
	return len(p.Shortages()) == 0
}

// ConsumeComponentsStock takes one unit's worth of every part and adds one
// finished unit to the product's stock.
//
// Returns *InsufficientStockError (nothing consumed) when the pre-check fails,
// or *InvariantViolationError when a part refuses consumption after the
// pre-check passed. In that case earlier parts stay consumed.
func (p *Product) ConsumeComponentsStock() error {
	if shortages := p.Shortages(); len(shortages) > 0 {
		return &InsufficientStockError{ProductID: p.id, Shortages: shortages}
	}

	var consumed []PartConsumption
	for _, part := range p.parts {
		if !part.component.Consume(part.quantity) {
			return &InvariantViolationError{
				ProductID:   p.id,
				ComponentID: part.component.ID(),
				Required:    part.quantity,
				Available:   part.component.Stock(),
				Consumed:    consumed,
			}
		}
		consumed = append(consumed, PartConsumption{ComponentID: part.component.ID(), Quantity: part.quantity})
	}

	p.stock++
	return nil
}

// Report renders the product totals followed by its parts
func (p *Product) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s (ID: %s) - Total Cost: %s, Total Weight: %s, Stock: %d\n",
		p.name, p.id, p.Cost().StringFixed(2), p.Weight().StringFixed(2), p.stock)
	b.WriteString("Components:\n")
	for _, part := range p.parts {
		b.WriteString("  - ")
		b.WriteString(part.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (p *Product) String() string {
	return p.name
}
