package commands_test

import "github.com/shopspring/decimal"

// refusingComponent passes every stock check but refuses consumption
type refusingComponent struct{}

func (*refusingComponent) ID() string              { return "refusing" }
func (*refusingComponent) Name() string            { return "Refusing" }
func (*refusingComponent) Cost() decimal.Decimal   { return decimal.Zero }
func (*refusingComponent) Weight() decimal.Decimal { return decimal.Zero }
func (*refusingComponent) Stock() int              { return 1 }
func (*refusingComponent) CheckStock(int) bool     { return true }
func (*refusingComponent) Consume(int) bool        { return false }
func (*refusingComponent) Report() string          { return "refusing" }
