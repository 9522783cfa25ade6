package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

// Dec parses a decimal literal, panicking on malformed input
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewLeaf creates a leaf component or fails the test
func NewLeaf(t testing.TB, id string, kind inventory.Kind, cost, weight string, stock int) *inventory.LeafComponent {
	t.Helper()
	c, err := inventory.NewLeafComponent(id, id, Dec(cost), Dec(weight), stock, kind)
	require.NoError(t, err)
	return c
}

// WidgetFixture is a product needing 2x raw material (cost 1.0, weight 0.5)
// and 1x hardware (cost 3.0, weight 1.0) per unit
type WidgetFixture struct {
	Catalog  *inventory.Catalog
	Raw      *inventory.LeafComponent
	Hardware *inventory.LeafComponent
	Widget   *inventory.Product
}

// NewWidgetFixture builds the widget catalog with the given stock levels
func NewWidgetFixture(t testing.TB, rawStock, hardwareStock int) *WidgetFixture {
	t.Helper()
	f := &WidgetFixture{
		Catalog:  inventory.NewCatalog(),
		Raw:      NewLeaf(t, "raw", inventory.KindRawMaterial, "1.0", "0.5", rawStock),
		Hardware: NewLeaf(t, "hardware", inventory.KindHardware, "3.0", "1.0", hardwareStock),
		Widget:   inventory.NewProduct("widget", "Widget"),
	}
	require.NoError(t, f.Widget.AddPart(f.Raw, 2))
	require.NoError(t, f.Widget.AddPart(f.Hardware, 1))
	require.NoError(t, f.Catalog.AddComponent(f.Raw))
	require.NoError(t, f.Catalog.AddComponent(f.Hardware))
	require.NoError(t, f.Catalog.AddProduct(f.Widget))
	return f
}
