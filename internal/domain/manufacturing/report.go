package manufacturing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GenerateReport renders the outcome of the process. Failure causes with a
// zero count are omitted.
func (p *ManufacturingProcess) GenerateReport() string {
	return renderStats(p.Stats())
}

func renderStats(s ProductionStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n==== %s Production Report ====\n", s.ProductName)
	fmt.Fprintf(&b, "Requested: %d units\n", s.Requested)
	fmt.Fprintf(&b, "Successful: %d units\n", s.Succeeded)

	if s.Succeeded > 0 {
		fmt.Fprintf(&b, "  - Unit Cost: %s\n", s.UnitCost.StringFixed(2))
		fmt.Fprintf(&b, "  - Unit Weight: %s\n", s.UnitWeight.StringFixed(2))
		fmt.Fprintf(&b, "  - Total Cost: %s\n", s.TotalCost().StringFixed(2))
		fmt.Fprintf(&b, "  - Total Weight: %s\n", s.TotalWeight().StringFixed(2))
	}

	fmt.Fprintf(&b, "Failed: %d units\n", s.Failed())
	writeCause(&b, ReasonSystemError, s.SystemErrors, false)
	writeCause(&b, ReasonDamagedComponent, s.DamagedComponents, false)
	writeCause(&b, ReasonInsufficientStock, s.StockShortages, false)

	return b.String()
}

func writeCause(b *strings.Builder, reason FailureReason, count int, includeZero bool) {
	if count == 0 && !includeZero {
		return
	}
	fmt.Fprintf(b, "  - %s: %d units\n", reason, count)
}

// Summary aggregates the stats of every order in a batch
type Summary struct {
	orders            []ProductionStats
	succeeded         int
	systemErrors      int
	damagedComponents int
	stockShortages    int
	totalCost         decimal.Decimal
	totalWeight       decimal.Decimal
}

// NewSummary creates an empty summary
func NewSummary() *Summary {
	return &Summary{
		totalCost:   decimal.Zero,
		totalWeight: decimal.Zero,
	}
}

// Add folds one order's stats into the summary
func (s *Summary) Add(stats ProductionStats) {
	s.orders = append(s.orders, stats)
	s.succeeded += stats.Succeeded
	s.systemErrors += stats.SystemErrors
	s.damagedComponents += stats.DamagedComponents
	s.stockShortages += stats.StockShortages
	s.totalCost = s.totalCost.Add(stats.TotalCost())
	s.totalWeight = s.totalWeight.Add(stats.TotalWeight())
}

// Getters

func (s *Summary) Orders() []ProductionStats {
	out := make([]ProductionStats, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Summary) Succeeded() int               { return s.succeeded }
func (s *Summary) SystemErrors() int            { return s.systemErrors }
func (s *Summary) DamagedComponents() int       { return s.damagedComponents }
func (s *Summary) StockShortages() int          { return s.stockShortages }
func (s *Summary) Failed() int                  { return s.systemErrors + s.damagedComponents + s.stockShortages }
func (s *Summary) TotalCost() decimal.Decimal   { return s.totalCost }
func (s *Summary) TotalWeight() decimal.Decimal { return s.totalWeight }

// GenerateSummaryReport renders batch totals. Every failure cause is listed,
// including those with a zero count.
func (s *Summary) GenerateSummaryReport() string {
	var b strings.Builder
	b.WriteString("\n====== SUMMARY REPORT ======\n")
	fmt.Fprintf(&b, "Orders: %d\n", len(s.orders))
	fmt.Fprintf(&b, "Total Successful: %d units\n", s.succeeded)
	fmt.Fprintf(&b, "  - Total Cost: %s\n", s.totalCost.StringFixed(2))
	fmt.Fprintf(&b, "  - Total Weight: %s\n", s.totalWeight.StringFixed(2))
	fmt.Fprintf(&b, "Total Failed: %d units\n", s.Failed())
	writeCause(&b, ReasonSystemError, s.systemErrors, true)
	writeCause(&b, ReasonDamagedComponent, s.damagedComponents, true)
	writeCause(&b, ReasonInsufficientStock, s.stockShortages, true)
	return b.String()
}
