package random

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

// DefaultStockShortageProbability is the chance that a stock check is failed
// on purpose to simulate lost or miscounted goods
const DefaultStockShortageProbability = 0.15

// Stream selectors keep outcomes and shortage flags on independent sequences,
// so drawing one never shifts the other
const (
	outcomeStream  uint64 = 0x6f7574636f6d65
	shortageStream uint64 = 0x73686f7274616765
)

// Generator is the production OutcomeGenerator. Outcomes are uniform over
// success, system error and damaged component.
type Generator struct {
	seed                uint64
	shortageProbability float64
	outcomes            *rand.Rand
	shortages           *rand.Rand
}

// NewGenerator creates a generator that replays the same sequence for the same seed
func NewGenerator(seed uint64, shortageProbability float64) (*Generator, error) {
	if shortageProbability < 0 || shortageProbability > 1 {
		return nil, fmt.Errorf("shortage probability must be within [0, 1], got %v", shortageProbability)
	}

	return &Generator{
		seed:                seed,
		shortageProbability: shortageProbability,
		outcomes:            rand.New(rand.NewPCG(seed, outcomeStream)),
		shortages:           rand.New(rand.NewPCG(seed, shortageStream)),
	}, nil
}

// NewTimeSeededGenerator creates a generator seeded from the wall clock
func NewTimeSeededGenerator(shortageProbability float64) (*Generator, error) {
	return NewGenerator(uint64(time.Now().UnixNano()), shortageProbability)
}

// Seed returns the seed the generator was created with, for reproducing a run
func (g *Generator) Seed() uint64 {
	return g.seed
}

// NextOutcome draws one of the three outcomes with equal probability
func (g *Generator) NextOutcome() manufacturing.Outcome {
	switch g.outcomes.IntN(3) {
	case 0:
		return manufacturing.OutcomeSuccess
	case 1:
		return manufacturing.OutcomeSystemError
	default:
		return manufacturing.OutcomeDamagedComponent
	}
}

// ShouldForceStockShortage returns true with the configured probability
func (g *Generator) ShouldForceStockShortage() bool {
	return g.shortages.Float64() < g.shortageProbability
}
