package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factorysim-go/internal/adapters/persistence"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/test/helpers"
)

func TestCatalogRepository_SaveAndLoad(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)
	fixture := helpers.NewWidgetFixture(t, 5, 2)
	orders := []inventory.PlannedOrder{{ProductID: "widget", Quantity: 2}}

	// Act - Save
	err := repo.Save(context.Background(), fixture.Catalog, orders)

	// Assert
	require.NoError(t, err)

	// Act - Load
	catalog, loadedOrders, err := repo.Load(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, catalog.Components(), 2)
	assert.Equal(t, "raw", catalog.Components()[0].ID(), "components keep their saved order")
	assert.Equal(t, "hardware", catalog.Components()[1].ID())

	raw, err := catalog.ComponentByID("raw")
	require.NoError(t, err)
	assert.True(t, raw.Cost().Equal(helpers.Dec("1.0")))
	assert.True(t, raw.Weight().Equal(helpers.Dec("0.5")))
	assert.Equal(t, 5, raw.Stock())
	assert.Equal(t, inventory.KindRawMaterial, raw.(*inventory.LeafComponent).Kind())

	widget, err := catalog.ProductByID("widget")
	require.NoError(t, err)
	require.Len(t, widget.Parts(), 2)
	assert.Equal(t, 2, widget.Parts()[0].Quantity())
	assert.Same(t, raw, widget.Parts()[0].Component(), "parts point at the catalog components")
	assert.Equal(t, "5.00", widget.Cost().StringFixed(2))

	assert.Equal(t, orders, loadedOrders)
}

func TestCatalogRepository_SaveReplacesPreviousCatalog(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	require.NoError(t, repo.Save(context.Background(), helpers.NewWidgetFixture(t, 5, 2).Catalog, nil))

	replacement := inventory.NewCatalog()
	require.NoError(t, replacement.AddComponent(helpers.NewLeaf(t, "paint", inventory.KindPaint, "0.25", "0.10", 7)))
	require.NoError(t, repo.Save(context.Background(), replacement, nil))

	catalog, orders, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog.Components(), 1)
	assert.Equal(t, "paint", catalog.Components()[0].ID())
	assert.Empty(t, catalog.Products())
	assert.Empty(t, orders)
}

func TestCatalogRepository_ProductsWithoutPlannedOrder(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)

	require.NoError(t, repo.Save(context.Background(), helpers.NewWidgetFixture(t, 1, 1).Catalog, nil))

	catalog, orders, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, catalog.Products(), 1)
	assert.Empty(t, orders, "no planned quantity was stored")
}

func TestCatalogRepository_KeepsFinishedGoodsStock(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)
	fixture := helpers.NewWidgetFixture(t, 10, 5)
	require.NoError(t, fixture.Widget.ConsumeComponentsStock())
	require.NoError(t, fixture.Widget.ConsumeComponentsStock())

	require.NoError(t, repo.Save(context.Background(), fixture.Catalog, nil))
	catalog, _, err := repo.Load(context.Background())

	require.NoError(t, err)
	widget, err := catalog.ProductByID("widget")
	require.NoError(t, err)
	assert.Equal(t, 2, widget.Stock())
	raw, err := catalog.ComponentByID("raw")
	require.NoError(t, err)
	assert.Equal(t, 6, raw.Stock())
}

func TestCatalogRepository_RepeatedPlannedOrdersAddUp(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)
	orders := []inventory.PlannedOrder{
		{ProductID: "widget", Quantity: 2},
		{ProductID: "widget", Quantity: 3},
	}

	require.NoError(t, repo.Save(context.Background(), helpers.NewWidgetFixture(t, 1, 1).Catalog, orders))
	_, loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []inventory.PlannedOrder{{ProductID: "widget", Quantity: 5}}, loaded)
}

func TestCatalogRepository_EmptyDatabase(t *testing.T) {
	repo := persistence.NewGormCatalogRepository(helpers.NewTestDB(t))

	catalog, orders, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, catalog.Components())
	assert.Empty(t, catalog.Products())
	assert.Empty(t, orders)
}
