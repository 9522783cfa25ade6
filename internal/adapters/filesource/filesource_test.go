package filesource_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/adapters/filesource"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

const componentsCSV = `Component;Unit Cost (TL);Unit Weight (kg);Type;Stock Quantity
Steel Sheet;2,50;1,2;Raw Material;1000 m²
Red Paint;1;0.1;Paint;50
Bolt;0,05;0,01;Hardware;
;1;1;Paint;5
Mystery;1;1;Plasma;5
Broken;abc;1;Paint;5
`

const productsCSV = `Product Name;Quantity;Steel Sheet;Red Paint;Bolt
Widget;10;2;0,5;0
Gadget;;1;;4
;3;1;1;1
Bad;ten;1;1;1
`

func loadCatalog(t *testing.T) (*inventory.Catalog, []inventory.PlannedOrder) {
	t.Helper()
	catalog := inventory.NewCatalog()
	_, _, err := filesource.LoadComponents(context.Background(), strings.NewReader(componentsCSV), catalog)
	require.NoError(t, err)
	orders, _, _, err := filesource.LoadProducts(context.Background(), strings.NewReader(productsCSV), catalog)
	require.NoError(t, err)
	return catalog, orders
}

func TestParseCSV_NormalizesCells(t *testing.T) {
	records, err := filesource.ParseCSV(strings.NewReader("\ufeffA; B ;C\n 1,5 ;x\n"))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1.5", records[0].Get("A"))
	assert.Equal(t, "x", records[0].Get("B"))
	assert.Equal(t, "", records[0].Get("C"), "missing trailing cell reads as empty")
}

func TestParseCSV_EmptyInput(t *testing.T) {
	records, err := filesource.ParseCSV(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadComponents(t *testing.T) {
	catalog := inventory.NewCatalog()

	loaded, skipped, err := filesource.LoadComponents(context.Background(), strings.NewReader(componentsCSV), catalog)

	require.NoError(t, err)
	assert.Equal(t, 3, loaded)
	assert.Equal(t, 3, skipped, "missing name, unknown type and bad number are skipped")

	steel, err := catalog.ComponentByID("steel_sheet")
	require.NoError(t, err)
	assert.Equal(t, "2.50", steel.Cost().StringFixed(2))
	assert.Equal(t, "1.20", steel.Weight().StringFixed(2))
	assert.Equal(t, 1000, steel.Stock(), "unit suffix is ignored")
	assert.Equal(t, inventory.KindRawMaterial, steel.(*inventory.LeafComponent).Kind())

	bolt, err := catalog.ComponentByName("Bolt")
	require.NoError(t, err)
	assert.Equal(t, 0, bolt.Stock(), "missing stock defaults to zero")
}

func TestLoadProducts(t *testing.T) {
	catalog, orders := loadCatalog(t)

	widget, err := catalog.ProductByID("widget")
	require.NoError(t, err)
	parts := widget.Parts()
	require.Len(t, parts, 2, "zero cells add no part")
	assert.Equal(t, "steel_sheet", parts[0].Component().ID())
	assert.Equal(t, 2, parts[0].Quantity())
	assert.Equal(t, "red_paint", parts[1].Component().ID())
	assert.Equal(t, 1, parts[1].Quantity(), "fractional quantities round up")

	gadget, err := catalog.ProductByName("Gadget")
	require.NoError(t, err)
	assert.Len(t, gadget.Parts(), 2)

	assert.Equal(t, []inventory.PlannedOrder{
		{ProductID: "widget", Quantity: 10},
		{ProductID: "gadget", Quantity: 0},
	}, orders)
	assert.Len(t, catalog.Products(), 2, "rows without a name or with a bad quantity are skipped")
}

func TestLoadOrdersManifest(t *testing.T) {
	orders, err := filesource.LoadOrdersManifest(strings.NewReader(`
orders:
  - product: widget
    quantity: 3
  - product: Gadget
    quantity: 0
`))

	require.NoError(t, err)
	assert.Equal(t, []inventory.PlannedOrder{
		{ProductID: "widget", Quantity: 3},
		{ProductID: "Gadget", Quantity: 0},
	}, orders)
}

func TestLoadOrdersManifest_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing product", "orders:\n  - quantity: 3\n"},
		{"negative quantity", "orders:\n  - product: widget\n    quantity: -1\n"},
		{"unknown field", "orders:\n  - product: widget\n    qty: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filesource.LoadOrdersManifest(strings.NewReader(tt.content))
			assert.Error(t, err)
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCSVCatalogSource_Load(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	source := filesource.NewCSVCatalogSource(
		writeFile(t, dir, "components.csv", componentsCSV),
		writeFile(t, dir, "products.csv", productsCSV),
		writeFile(t, dir, "orders.yaml", "orders:\n  - product: Gadget\n    quantity: 2\n"),
	)

	// Act
	catalog, orders, err := source.Load(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Len(t, catalog.Components(), 3)
	assert.Len(t, catalog.Products(), 2)
	assert.Equal(t, []inventory.PlannedOrder{{ProductID: "Gadget", Quantity: 2}}, orders, "manifest replaces file quantities")

	result := source.LastResult()
	assert.Equal(t, 3, result.ComponentsLoaded)
	assert.Equal(t, 3, result.ComponentsSkipped)
	assert.Equal(t, 2, result.ProductsLoaded)
	assert.Equal(t, 2, result.ProductsSkipped)
	assert.True(t, result.OrdersFromFile)
}

func TestCSVCatalogSource_MissingFile(t *testing.T) {
	source := filesource.NewCSVCatalogSource(filepath.Join(t.TempDir(), "nope.csv"), "", "")

	_, _, err := source.Load(context.Background())

	assert.ErrorContains(t, err, "failed to open components file")
}
