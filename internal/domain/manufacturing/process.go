package manufacturing

import (
	"errors"
	"time"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/internal/domain/shared"
)

// Transition describes one state change of one unit
type Transition struct {
	ProductID string
	Unit      int
	From      State
	To        State
	Reason    FailureReason

	// Outcome is set when the Manufacturing state drew an outcome
	Outcome Outcome

	// Shortages lists real shortages found by the stock check
	Shortages []inventory.Shortage

	// Err carries the underlying cause of a failure, if any
	Err error
}

// InvariantViolated reports whether the transition was caused by parts
// refusing consumption after a passing stock check
func (t Transition) InvariantViolated() bool {
	var violation *inventory.InvariantViolationError
	return errors.As(t.Err, &violation)
}

// TransitionObserver is notified after every transition
type TransitionObserver func(t Transition)

// UnitResult is the terminal record of one unit of production
type UnitResult struct {
	Unit   int
	State  State
	Reason FailureReason
	Path   []State
}

// ProcessOption configures a ManufacturingProcess
type ProcessOption func(*ManufacturingProcess)

// WithObserver registers a callback for every state transition
func WithObserver(observer TransitionObserver) ProcessOption {
	return func(p *ManufacturingProcess) {
		p.observer = observer
	}
}

// WithClock injects the clock used for run timestamps
func WithClock(clock shared.Clock) ProcessOption {
	return func(p *ManufacturingProcess) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// ManufacturingProcess drives units of one product through
// STOCK_CHECK -> MANUFACTURING -> COMPLETED | FAILED, one unit at a time.
//
// Invariants:
// - units run strictly in sequence; each sees the stock left by the previous one
// - every attempted unit ends in exactly one terminal state and one counter
// - at most requested units are attempted
type ManufacturingProcess struct {
	product   *inventory.Product
	quantity  int
	generator OutcomeGenerator
	observer  TransitionObserver
	clock     shared.Clock

	state         State
	unit          int
	unitOpen      bool
	path          []State
	failureReason FailureReason

	successCount          int
	systemErrorCount      int
	damagedComponentCount int
	stockShortageCount    int

	units      []UnitResult
	ran        bool
	startedAt  *time.Time
	finishedAt *time.Time
}

// NewManufacturingProcess creates a process for quantity units of product
func NewManufacturingProcess(
	product *inventory.Product,
	quantity int,
	generator OutcomeGenerator,
	opts ...ProcessOption,
) (*ManufacturingProcess, error) {
	if product == nil {
		return nil, shared.NewValidationError("product", "must not be nil")
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("quantity", "must be non-negative")
	}
	if generator == nil {
		return nil, shared.NewValidationError("generator", "must not be nil")
	}

	p := &ManufacturingProcess{
		product:   product,
		quantity:  quantity,
		generator: generator,
		clock:     shared.NewRealClock(),
		state:     StateStockCheck,
		units:     make([]UnitResult, 0, quantity),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewProductionRun creates a process for a production order
func NewProductionRun(order *ProductionOrder, generator OutcomeGenerator, opts ...ProcessOption) (*ManufacturingProcess, error) {
	if order == nil {
		return nil, shared.NewValidationError("order", "must not be nil")
	}
	return NewManufacturingProcess(order.Product(), order.Quantity(), generator, opts...)
}

// Getters

func (p *ManufacturingProcess) Product() *inventory.Product  { return p.product }
func (p *ManufacturingProcess) Quantity() int                { return p.quantity }
func (p *ManufacturingProcess) CurrentState() State          { return p.state }
func (p *ManufacturingProcess) FailureReason() FailureReason { return p.failureReason }
func (p *ManufacturingProcess) SuccessCount() int            { return p.successCount }
func (p *ManufacturingProcess) SystemErrorCount() int        { return p.systemErrorCount }
func (p *ManufacturingProcess) DamagedComponentCount() int   { return p.damagedComponentCount }
func (p *ManufacturingProcess) StockShortageCount() int      { return p.stockShortageCount }
func (p *ManufacturingProcess) StartedAt() *time.Time        { return p.startedAt }
func (p *ManufacturingProcess) FinishedAt() *time.Time       { return p.finishedAt }

// FailedCount counts units that ended in FAILED
func (p *ManufacturingProcess) FailedCount() int {
	return p.systemErrorCount + p.damagedComponentCount + p.stockShortageCount
}

// TotalProcessedCount counts units that reached a terminal state
func (p *ManufacturingProcess) TotalProcessedCount() int {
	return p.successCount + p.FailedCount()
}

// Units returns the terminal record of every attempted unit
func (p *ManufacturingProcess) Units() []UnitResult {
	out := make([]UnitResult, len(p.units))
	copy(out, p.units)
	return out
}

// Stats returns a snapshot of the counters
func (p *ManufacturingProcess) Stats() ProductionStats {
	return ProductionStats{
		ProductID:         p.product.ID(),
		ProductName:       p.product.Name(),
		Requested:         p.quantity,
		Succeeded:         p.successCount,
		SystemErrors:      p.systemErrorCount,
		DamagedComponents: p.damagedComponentCount,
		StockShortages:    p.stockShortageCount,
		UnitCost:          p.product.Cost(),
		UnitWeight:        p.product.Weight(),
	}
}

// Run attempts every requested unit that has not been attempted yet, in order
func (p *ManufacturingProcess) Run() error {
	if p.ran {
		return &ErrProcessAlreadyRun{ProductID: p.product.ID()}
	}
	p.ran = true

	started := p.clock.Now()
	p.startedAt = &started

	for len(p.units) < p.quantity {
		if _, err := p.RunUnit(); err != nil {
			return err
		}
	}

	finished := p.clock.Now()
	p.finishedAt = &finished
	return nil
}

// RunUnit re-seeds the state to STOCK_CHECK and applies transitions until
// the unit reaches a terminal state
func (p *ManufacturingProcess) RunUnit() (UnitResult, error) {
	if p.state.IsTerminal() {
		p.state = StateStockCheck
	}

	for steps := 0; steps < maxTransitionsPerUnit; steps++ {
		if _, err := p.Step(); err != nil {
			return UnitResult{}, err
		}
		if p.state.IsTerminal() {
			return p.units[len(p.units)-1], nil
		}
	}

	return UnitResult{}, &ErrInvalidStateTransition{
		ProductID:   p.product.ID(),
		Unit:        p.unit,
		From:        p.state,
		Description: "unit did not reach a terminal state",
	}
}

// Step applies the handler of the current state once and returns the new state.
// Terminal states have no outgoing transitions.
func (p *ManufacturingProcess) Step() (State, error) {
	if p.state.IsTerminal() {
		return p.state, &ErrInvalidStateTransition{
			ProductID:   p.product.ID(),
			Unit:        p.unit,
			From:        p.state,
			Description: "terminal state has no outgoing transitions",
		}
	}

	if !p.unitOpen {
		if len(p.units) >= p.quantity {
			return p.state, &ErrQuantityExhausted{ProductID: p.product.ID(), Quantity: p.quantity}
		}
		p.unit++
		p.unitOpen = true
		p.path = []State{p.state}
	}

	from := p.state
	t := p.handle(from)
	if !from.CanTransitionTo(t.To) {
		return p.state, &ErrInvalidStateTransition{
			ProductID: p.product.ID(),
			Unit:      p.unit,
			From:      from,
			To:        t.To,
		}
	}

	p.state = t.To
	p.path = append(p.path, t.To)
	if t.To == StateFailed {
		p.failureReason = t.Reason
	}
	if p.state.IsTerminal() {
		p.closeUnit(t.Reason)
	}

	if p.observer != nil {
		p.observer(t)
	}
	return p.state, nil
}

func (p *ManufacturingProcess) closeUnit(reason FailureReason) {
	p.units = append(p.units, UnitResult{
		Unit:   p.unit,
		State:  p.state,
		Reason: reason,
		Path:   p.path,
	})
	p.unitOpen = false
	p.path = nil
}

// handle is the transition function: it runs the current state's logic,
// updates counters and returns the transition to apply
func (p *ManufacturingProcess) handle(from State) Transition {
	t := Transition{ProductID: p.product.ID(), Unit: p.unit, From: from}

	switch from {
	case StateStockCheck:
		p.handleStockCheck(&t)
	case StateManufacturing:
		p.handleManufacturing(&t)
	default:
		t.To = from
	}
	return t
}

// handleStockCheck fails the unit on a real shortage or an injected one.
// An injected shortage consumes nothing.
func (p *ManufacturingProcess) handleStockCheck(t *Transition) {
	forced := p.generator.ShouldForceStockShortage()
	t.Shortages = p.product.Shortages()

	if !forced && len(t.Shortages) == 0 {
		t.To = StateManufacturing
		return
	}

	if len(t.Shortages) > 0 {
		t.Err = &inventory.InsufficientStockError{ProductID: p.product.ID(), Shortages: t.Shortages}
	} else {
		t.Err = &ErrForcedStockShortage{ProductID: p.product.ID(), Unit: p.unit}
	}
	t.To = StateFailed
	t.Reason = ReasonInsufficientStock
	p.stockShortageCount++
}

func (p *ManufacturingProcess) handleManufacturing(t *Transition) {
	if err := p.product.ConsumeComponentsStock(); err != nil {
		t.To = StateFailed
		t.Reason = ReasonUnexpectedStockError
		t.Err = err
		p.systemErrorCount++
		return
	}

	t.Outcome = p.generator.NextOutcome()
	switch t.Outcome {
	case OutcomeSuccess:
		t.To = StateCompleted
		p.successCount++
	case OutcomeDamagedComponent:
		t.To = StateFailed
		t.Reason = ReasonDamagedComponent
		p.damagedComponentCount++
	default:
		t.To = StateFailed
		t.Reason = ReasonSystemError
		p.systemErrorCount++
	}
}
