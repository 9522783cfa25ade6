package manufacturing

// Outcome is the result of a manufacturing attempt once parts are consumed
type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeSystemError
	OutcomeDamagedComponent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "SUCCESS"
	case OutcomeSystemError:
		return "SYSTEM_ERROR"
	case OutcomeDamagedComponent:
		return "DAMAGED_COMPONENT"
	default:
		return "UNKNOWN"
	}
}

// OutcomeGenerator is the source of randomness for a production run.
// It is passed explicitly so runs can be reproduced.
type OutcomeGenerator interface {
	// NextOutcome draws the result of one manufacturing attempt
	NextOutcome() Outcome

	// ShouldForceStockShortage draws the injected-fault flag for one stock check
	ShouldForceStockShortage() bool
}

// ScriptedOutcomes replays fixed sequences. Once a sequence runs out its last
// value repeats; an empty outcome script always succeeds and an empty
// shortage script never forces a shortage.
type ScriptedOutcomes struct {
	outcomes  []Outcome
	shortages []bool

	outcomeCalls  int
	shortageCalls int
}

// NewScriptedOutcomes creates a generator that replays the given sequences
func NewScriptedOutcomes(outcomes []Outcome, shortages []bool) *ScriptedOutcomes {
	return &ScriptedOutcomes{
		outcomes:  append([]Outcome(nil), outcomes...),
		shortages: append([]bool(nil), shortages...),
	}
}

// AlwaysSucceed returns a generator that never fails and never forces a shortage
func AlwaysSucceed() *ScriptedOutcomes {
	return NewScriptedOutcomes(nil, nil)
}

func (s *ScriptedOutcomes) NextOutcome() Outcome {
	defer func() { s.outcomeCalls++ }()
	if len(s.outcomes) == 0 {
		return OutcomeSuccess
	}
	if s.outcomeCalls < len(s.outcomes) {
		return s.outcomes[s.outcomeCalls]
	}
	return s.outcomes[len(s.outcomes)-1]
}

func (s *ScriptedOutcomes) ShouldForceStockShortage() bool {
	defer func() { s.shortageCalls++ }()
	if len(s.shortages) == 0 {
		return false
	}
	if s.shortageCalls < len(s.shortages) {
		return s.shortages[s.shortageCalls]
	}
	return s.shortages[len(s.shortages)-1]
}

// OutcomeCalls returns how many outcomes have been drawn
func (s *ScriptedOutcomes) OutcomeCalls() int { return s.outcomeCalls }

// ShortageCalls returns how many shortage flags have been drawn
func (s *ScriptedOutcomes) ShortageCalls() int { return s.shortageCalls }
