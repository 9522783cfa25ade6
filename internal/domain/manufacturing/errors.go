package manufacturing

import "fmt"

// ErrInvalidStateTransition indicates a unit tried to leave a state it cannot leave
type ErrInvalidStateTransition struct {
	ProductID   string
	Unit        int
	From        State
	To          State
	Description string
}

func (e *ErrInvalidStateTransition) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("invalid state transition for %s unit %d: %s -> %s: %s",
			e.ProductID, e.Unit, e.From, e.To, e.Description)
	}
	return fmt.Sprintf("invalid state transition for %s unit %d: %s -> %s",
		e.ProductID, e.Unit, e.From, e.To)
}

// ErrQuantityExhausted indicates every requested unit has already been attempted
type ErrQuantityExhausted struct {
	ProductID string
	Quantity  int
}

func (e *ErrQuantityExhausted) Error() string {
	return fmt.Sprintf("all %d requested units of %s have already been attempted", e.Quantity, e.ProductID)
}

// ErrProcessAlreadyRun indicates Run was called twice on the same process
type ErrProcessAlreadyRun struct {
	ProductID string
}

func (e *ErrProcessAlreadyRun) Error() string {
	return fmt.Sprintf("manufacturing process for %s has already run", e.ProductID)
}

// ErrForcedStockShortage records that the outcome generator injected a
// shortage while real stock was sufficient
type ErrForcedStockShortage struct {
	ProductID string
	Unit      int
}

func (e *ErrForcedStockShortage) Error() string {
	return fmt.Sprintf("simulated stock shortage for %s unit %d", e.ProductID, e.Unit)
}
