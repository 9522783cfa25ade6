package inventory

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
)

// Component is any priced, weighted entity that holds stock.
// It is implemented by leaf components and by composite products.
type Component interface {
	ID() string
	Name() string

	// Cost and Weight are per unit. For a product they are the sum over its parts.
	Cost() decimal.Decimal
	Weight() decimal.Decimal

	Stock() int

	// CheckStock reports whether quantity units could be consumed. It never mutates.
	CheckStock(quantity int) bool

	// Consume removes quantity units from stock. On failure nothing changes.
	Consume(quantity int) bool

	Report() string
}

// Kind tags a leaf component. It only affects how the component is displayed.
type Kind string

const (
	KindRawMaterial Kind = "RAW_MATERIAL"
	KindPaint       Kind = "PAINT"
	KindHardware    Kind = "HARDWARE"
)

// Label returns the display name of the kind
func (k Kind) Label() string {
	switch k {
	case KindRawMaterial:
		return "Raw Material"
	case KindPaint:
		return "Paint"
	case KindHardware:
		return "Hardware"
	default:
		return string(k)
	}
}

// IsValid reports whether k is one of the known kinds
func (k Kind) IsValid() bool {
	return k == KindRawMaterial || k == KindPaint || k == KindHardware
}

// ParseKind accepts the type spellings found in catalog files
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rawmaterial", "raw material", "raw_material", "raw-material":
		return KindRawMaterial, nil
	case "paint":
		return KindPaint, nil
	case "hardware":
		return KindHardware, nil
	}
	return "", &ErrUnknownKind{Value: s}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ComponentID derives a stable identifier from a display name.
// "Steel Sheet" -> "steel_sheet"
func ComponentID(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_"))
}

// LeafComponent is a raw material, paint or hardware item that owns its own stock.
//
// Invariants:
// - cost and weight are never negative
// - stock never goes negative; Consume is all-or-nothing
type LeafComponent struct {
	id     string
	name   string
	cost   decimal.Decimal
	weight decimal.Decimal
	stock  int
	kind   Kind
}

// NewLeafComponent creates a leaf component after validating its attributes
func NewLeafComponent(id, name string, cost, weight decimal.Decimal, stock int, kind Kind) (*LeafComponent, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "must not be empty")
	}
	if cost.IsNegative() {
		return nil, shared.NewValidationError("cost", fmt.Sprintf("must be non-negative, got %s", cost))
	}
	if weight.IsNegative() {
		return nil, shared.NewValidationError("weight", fmt.Sprintf("must be non-negative, got %s", weight))
	}
	if stock < 0 {
		return nil, shared.NewValidationError("stock", fmt.Sprintf("must be non-negative, got %d", stock))
	}
	if !kind.IsValid() {
		return nil, &ErrUnknownKind{Value: string(kind)}
	}

	return &LeafComponent{
		id:     id,
		name:   name,
		cost:   cost,
		weight: weight,
		stock:  stock,
		kind:   kind,
	}, nil
}

// Getters

func (c *LeafComponent) ID() string              { return c.id }
func (c *LeafComponent) Name() string            { return c.name }
func (c *LeafComponent) Cost() decimal.Decimal   { return c.cost }
func (c *LeafComponent) Weight() decimal.Decimal { return c.weight }
func (c *LeafComponent) Stock() int              { return c.stock }
func (c *LeafComponent) Kind() Kind              { return c.kind }

// CheckStock reports whether quantity units are on hand
func (c *LeafComponent) CheckStock(quantity int) bool {
	return quantity >= 0 && c.stock >= quantity
}

// Consume decrements stock by quantity if enough is on hand
func (c *LeafComponent) Consume(quantity int) bool {
	if !c.CheckStock(quantity) {
		return false
	}
	c.stock -= quantity
	return true
}

// Report renders a one-line description of the component
func (c *LeafComponent) Report() string {
	return fmt.Sprintf("%s: %s (ID: %s) - Cost: %s, Weight: %s, Stock: %d",
		c.kind.Label(), c.name, c.id, c.cost.StringFixed(2), c.weight.StringFixed(2), c.stock)
}

func (c *LeafComponent) String() string {
	return c.Report()
}
