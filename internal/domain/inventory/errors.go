package inventory

import (
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a component type that is not raw material, paint or hardware
type ErrUnknownKind struct {
	Value string
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown component kind: %q", e.Value)
}

// ErrNestedProduct indicates an attempt to add a product as a part of another product
type ErrNestedProduct struct {
	ProductID string
	PartID    string
}

func (e *ErrNestedProduct) Error() string {
	return fmt.Sprintf("product %s cannot contain product %s: products hold leaf components only",
		e.ProductID, e.PartID)
}

// ErrDuplicateID indicates a catalog entry whose id is already registered
type ErrDuplicateID struct {
	Kind string
	ID   string
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("duplicate %s id: %s", e.Kind, e.ID)
}

// InsufficientStockError indicates one unit of a product cannot be built.
// No stock was consumed.
type InsufficientStockError struct {
	ProductID string
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		parts[i] = s.String()
	}
	return fmt.Sprintf("insufficient stock for product %s: %s", e.ProductID, strings.Join(parts, "; "))
}

// InvariantViolationError indicates a part refused consumption after the
// availability pre-check passed. This is a defect, not a normal outcome.
// Consumption is not rolled back: Consumed lists the parts decremented
// before the refusal.
type InvariantViolationError struct {
	ProductID   string
	ComponentID string
	Required    int
	Available   int
	Consumed    []PartConsumption
}

// PartConsumption records units taken from one component
type PartConsumption struct {
	ComponentID string
	Quantity    int
}

func (e *InvariantViolationError) Error() string {
	msg := fmt.Sprintf("stock invariant violated for product %s: component %s refused %d units (available %d) after passing check",
		e.ProductID, e.ComponentID, e.Required, e.Available)
	if len(e.Consumed) == 0 {
		return msg
	}
	parts := make([]string, 0, len(e.Consumed))
	for _, c := range e.Consumed {
		parts = append(parts, fmt.Sprintf("%s x%d", c.ComponentID, c.Quantity))
	}
	return msg + "; already consumed: " + strings.Join(parts, ", ")
}
