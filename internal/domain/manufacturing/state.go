package manufacturing

// State is the position of one unit of production in its lifecycle
type State string

const (
	// StateStockCheck verifies parts are available (initial state)
	StateStockCheck State = "STOCK_CHECK"

	// StateManufacturing consumes parts and attempts the build
	StateManufacturing State = "MANUFACTURING"

	// StateCompleted means the unit was built (terminal)
	StateCompleted State = "COMPLETED"

	// StateFailed means the unit was not built (terminal)
	StateFailed State = "FAILED"
)

var allowedTransitions = map[State][]State{
	StateStockCheck:    {StateManufacturing, StateFailed},
	StateManufacturing: {StateCompleted, StateFailed},
}

// maxTransitionsPerUnit bounds a unit's run: StockCheck -> Manufacturing -> terminal
const maxTransitionsPerUnit = 2

// IsTerminal reports whether the state ends a unit's run
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// CanTransitionTo reports whether next is a legal successor of s
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// FailureReason is the human-readable cause recorded when a unit fails
type FailureReason string

const (
	ReasonNone                 FailureReason = ""
	ReasonInsufficientStock    FailureReason = "Insufficient Stock"
	ReasonUnexpectedStockError FailureReason = "Unexpected Stock Error"
	ReasonSystemError          FailureReason = "System Error"
	ReasonDamagedComponent     FailureReason = "Damaged Component"
)
