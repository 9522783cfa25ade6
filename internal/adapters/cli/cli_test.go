package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/adapters/metrics"
	"github.com/andrescamacho/factorysim-go/internal/infrastructure/config"
)

const testComponentsCSV = `Component;Unit Cost (TL);Unit Weight (kg);Type;Stock Quantity
Steel Sheet;1;0,5;Raw Material;10
Bolt;3;1;Hardware;2
`

const testProductsCSV = `Product Name;Quantity;Steel Sheet;Bolt
Widget;2;2;1
`

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	components := filepath.Join(dir, "components.csv")
	products := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(components, []byte(testComponentsCSV), 0o644))
	require.NoError(t, os.WriteFile(products, []byte(testProductsCSV), 0o644))

	cfg := config.DefaultConfig()
	cfg.Simulation.Seed = 42
	cfg.Simulation.StockShortageProbability = 0
	cfg.Catalog.ComponentsPath = components
	cfg.Catalog.ProductsPath = products
	cfg.Database.Path = filepath.Join(dir, "catalog.db")
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = filepath.Join(dir, "factorysim.log")
	require.NoError(t, config.ValidateConfig(cfg))
	return cfg
}

func TestRunProduction_PrintsOrderReportsAndSummary(t *testing.T) {
	cfg := newTestConfig(t)
	var out bytes.Buffer

	err := runProduction(context.Background(), &out, cfg)

	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "Production Order: Widget - 2 units")
	assert.Contains(t, output, "==== Widget Production Report ====")
	assert.Contains(t, output, "Requested: 2 units")
	assert.Contains(t, output, "====== SUMMARY REPORT ======")
	assert.Contains(t, output, "Orders: 1")
}

func TestRunProduction_WritesMetricsTextfile(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Metrics.Enabled = true
	cfg.Metrics.TextfilePath = filepath.Join(t.TempDir(), "factorysim.prom")
	t.Cleanup(func() { metrics.Registry = nil })

	err := runProduction(context.Background(), &bytes.Buffer{}, cfg)

	require.NoError(t, err)
	data, err := os.ReadFile(cfg.Metrics.TextfilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "factorysim_production_orders_total")
}

func TestRunProduction_UnknownProductInManifest(t *testing.T) {
	cfg := newTestConfig(t)
	manifest := filepath.Join(t.TempDir(), "orders.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("orders:\n  - product: Gizmo\n    quantity: 1\n"), 0o644))
	cfg.Catalog.OrdersPath = manifest

	err := runProduction(context.Background(), &bytes.Buffer{}, cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to plan order")
}

func TestImportThenListFromDatabase(t *testing.T) {
	cfg := newTestConfig(t)
	var importOut bytes.Buffer

	require.NoError(t, importCatalog(context.Background(), &importOut, cfg))
	assert.Contains(t, importOut.String(), "Imported 2 components and 1 products into sqlite database")

	cfg.Catalog.Source = "database"
	var listOut bytes.Buffer
	require.NoError(t, listCatalog(context.Background(), &listOut, cfg))

	output := listOut.String()
	assert.Contains(t, output, "Raw Material: Steel Sheet (ID: steel_sheet)")
	assert.Contains(t, output, "Hardware: Bolt (ID: bolt)")
	assert.Contains(t, output, "widget")
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"with password", "postgresql://factory:secret@db:5432/factorysim", "postgresql://factory:****@db:5432/factorysim"},
		{"escaped password", "postgresql://factory:p%40ss@db:5432/factorysim?sslmode=disable", "postgresql://factory:****@db:5432/factorysim?sslmode=disable"},
		{"no password", "postgresql://factory@db:5432/factorysim", "postgresql://factory@db:5432/factorysim"},
		{"no user info", "postgresql://db:5432/factorysim", "postgresql://db:5432/factorysim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskPassword(tt.in))
		})
	}
}

func TestPrintConfig_MasksPassword(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database.Type = "postgres"
	cfg.Database.URL = "postgresql://factory:secret@db:5432/factorysim"
	var out bytes.Buffer

	printConfig(&out, cfg)

	assert.Contains(t, out.String(), "postgresql://factory:****@db:5432/factorysim")
	assert.NotContains(t, out.String(), "secret")
}
