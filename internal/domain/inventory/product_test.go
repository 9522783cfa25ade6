package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// stubbornComponent passes every stock check but refuses consumption
type stubbornComponent struct {
	id    string
	stock int
}

func (c *stubbornComponent) ID() string                   { return c.id }
func (c *stubbornComponent) Name() string                 { return c.id }
func (c *stubbornComponent) Cost() decimal.Decimal        { return decimal.Zero }
func (c *stubbornComponent) Weight() decimal.Decimal      { return decimal.Zero }
func (c *stubbornComponent) Stock() int                   { return c.stock }
func (c *stubbornComponent) CheckStock(quantity int) bool { return true }
func (c *stubbornComponent) Consume(quantity int) bool    { return false }
func (c *stubbornComponent) Report() string               { return c.id }

func TestProduct_CostAndWeightAreSumsOverParts(t *testing.T) {
	// Arrange
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1.0", "0.5", 5)
	hardware := newLeaf(t, "hardware", inventory.KindHardware, "3.0", "1.0", 1)
	widget := inventory.NewProduct("widget", "Widget")

	// Act
	require.NoError(t, widget.AddPart(raw, 2))
	require.NoError(t, widget.AddPart(hardware, 1))

	// Assert
	assert.True(t, widget.Cost().Equal(dec("5.0")))
	assert.True(t, widget.Weight().Equal(dec("2.0")))
}

func TestProduct_DuplicatePartsAddUp(t *testing.T) {
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1.25", "0.5", 10)
	p := inventory.NewProduct("p", "P")

	require.NoError(t, p.AddPart(raw, 2))
	require.NoError(t, p.AddPart(raw, 3))

	assert.Len(t, p.Parts(), 2, "duplicate lines are kept")
	assert.True(t, p.Cost().Equal(dec("6.25")), "totals add, never replace")
	assert.True(t, p.Weight().Equal(dec("2.5")))
}

func TestProduct_AddPartValidation(t *testing.T) {
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1", "1", 1)
	p := inventory.NewProduct("p", "P")

	assert.Error(t, p.AddPart(nil, 1))
	assert.Error(t, p.AddPart(raw, 0))
	assert.Error(t, p.AddPart(raw, -2))

	err := p.AddPart(inventory.NewProduct("q", "Q"), 1)
	var nested *inventory.ErrNestedProduct
	assert.True(t, errors.As(err, &nested))
	assert.Empty(t, p.Parts())
}

func TestProduct_CheckComponentsStockIsReadOnly(t *testing.T) {
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1", "1", 4)
	p := inventory.NewProduct("p", "P")
	require.NoError(t, p.AddPart(raw, 2))

	for i := 0; i < 3; i++ {
		assert.True(t, p.CheckComponentsStock())
	}
	assert.Equal(t, 4, raw.Stock())
}

func TestProduct_ConsumeComponentsStock(t *testing.T) {
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1", "1", 5)
	hardware := newLeaf(t, "hardware", inventory.KindHardware, "3", "1", 2)
	p := inventory.NewProduct("widget", "Widget")
	require.NoError(t, p.AddPart(raw, 2))
	require.NoError(t, p.AddPart(hardware, 1))

	require.NoError(t, p.ConsumeComponentsStock())

	assert.Equal(t, 3, raw.Stock())
	assert.Equal(t, 1, hardware.Stock())
	assert.Equal(t, 1, p.Stock(), "one finished unit is added")
}

func TestProduct_ConsumeComponentsStockIsAllOrNothing(t *testing.T) {
	// Arrange: raw has plenty, hardware has none
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1", "1", 5)
	hardware := newLeaf(t, "hardware", inventory.KindHardware, "3", "1", 0)
	p := inventory.NewProduct("widget", "Widget")
	require.NoError(t, p.AddPart(raw, 2))
	require.NoError(t, p.AddPart(hardware, 1))

	// Act
	err := p.ConsumeComponentsStock()

	// Assert
	var insufficient *inventory.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	require.Len(t, insufficient.Shortages, 1)
	assert.Equal(t, "hardware", insufficient.Shortages[0].ComponentID)
	assert.Equal(t, 1, insufficient.Shortages[0].Required)
	assert.Equal(t, 0, insufficient.Shortages[0].Available)
	assert.Equal(t, 5, raw.Stock(), "no part's stock changes")
	assert.Equal(t, 0, p.Stock())
}

func TestProduct_DuplicateLinesAreCheckedAgainstCombinedDemand(t *testing.T) {
	// 3 on hand, two lines of 2 each: every line alone fits, together they do not
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1", "1", 3)
	p := inventory.NewProduct("p", "P")
	require.NoError(t, p.AddPart(raw, 2))
	require.NoError(t, p.AddPart(raw, 2))

	assert.False(t, p.CheckComponentsStock())
	assert.Error(t, p.ConsumeComponentsStock())
	assert.Equal(t, 3, raw.Stock(), "nothing consumed")

	shortages := p.Shortages()
	require.Len(t, shortages, 1)
	assert.Equal(t, 4, shortages[0].Required)
}

func TestProduct_ConsumeReportsInvariantViolation(t *testing.T) {
	p := inventory.NewProduct("p", "P")
	require.NoError(t, p.AddPart(&stubbornComponent{id: "stubborn", stock: 1}, 1))

	err := p.ConsumeComponentsStock()

	var violation *inventory.InvariantViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "stubborn", violation.ComponentID)
	assert.Empty(t, violation.Consumed)
	assert.Equal(t, 0, p.Stock())
}

func TestProduct_InvariantViolationListsPartsAlreadyConsumed(t *testing.T) {
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1", "1", 5)
	p := inventory.NewProduct("p", "P")
	require.NoError(t, p.AddPart(raw, 2))
	require.NoError(t, p.AddPart(&stubbornComponent{id: "stubborn", stock: 1}, 1))

	err := p.ConsumeComponentsStock()

	var violation *inventory.InvariantViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, []inventory.PartConsumption{{ComponentID: "raw", Quantity: 2}}, violation.Consumed)
	assert.Equal(t, 3, raw.Stock(), "consumption is not rolled back")
	assert.Contains(t, err.Error(), "already consumed: raw x2")
	assert.Equal(t, 0, p.Stock())
}

func TestProduct_OwnStock(t *testing.T) {
	raw := newLeaf(t, "raw", inventory.KindRawMaterial, "1", "1", 10)
	p := inventory.NewProduct("p", "P")
	require.NoError(t, p.AddPart(raw, 1))
	require.NoError(t, p.ConsumeComponentsStock())
	require.NoError(t, p.ConsumeComponentsStock())

	assert.True(t, p.CheckStock(2))
	assert.False(t, p.Consume(3))
	assert.True(t, p.Consume(2))
	assert.Equal(t, 0, p.Stock())
	assert.Equal(t, 8, raw.Stock(), "consuming finished units leaves parts alone")
}

func TestReconstructProduct(t *testing.T) {
	p, err := inventory.ReconstructProduct("p", "P", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Stock())
	assert.Empty(t, p.Parts())

	_, err = inventory.ReconstructProduct("p", "P", -1)
	assert.Error(t, err)
}

func TestProduct_Report(t *testing.T) {
	raw, err := inventory.NewLeafComponent("steel", "Steel", dec("1"), dec("0.5"), 5, inventory.KindRawMaterial)
	require.NoError(t, err)
	p := inventory.NewProduct("widget", "Widget")
	require.NoError(t, p.AddPart(raw, 2))

	want := "Product: Widget (ID: widget) - Total Cost: 2.00, Total Weight: 1.00, Stock: 0\n" +
		"Components:\n" +
		"  - 2x Steel\n"
	assert.Equal(t, want, p.Report())
	assert.Equal(t, "Widget", p.String())
}
