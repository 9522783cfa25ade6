package manufacturing

import "github.com/shopspring/decimal"

// ProductionStats is a snapshot of a process's counters
type ProductionStats struct {
	ProductID         string
	ProductName       string
	Requested         int
	Succeeded         int
	SystemErrors      int
	DamagedComponents int
	StockShortages    int
	UnitCost          decimal.Decimal
	UnitWeight        decimal.Decimal
}

// Failed counts units that ended in FAILED for any reason
func (s ProductionStats) Failed() int {
	return s.SystemErrors + s.DamagedComponents + s.StockShortages
}

// Processed counts units that reached a terminal state
func (s ProductionStats) Processed() int {
	return s.Succeeded + s.Failed()
}

// TotalCost is the cost of the successfully built units
func (s ProductionStats) TotalCost() decimal.Decimal {
	return s.UnitCost.Mul(decimal.NewFromInt(int64(s.Succeeded)))
}

// TotalWeight is the weight of the successfully built units
func (s ProductionStats) TotalWeight() decimal.Decimal {
	return s.UnitWeight.Mul(decimal.NewFromInt(int64(s.Succeeded)))
}
