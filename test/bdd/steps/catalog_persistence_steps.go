package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factorysim-go/internal/adapters/persistence"
	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
	"github.com/andrescamacho/factorysim-go/test/helpers"
)

type catalogPersistenceContext struct {
	shared *sharedCatalogContext

	repo    *persistence.GormCatalogRepository
	planned []inventory.PlannedOrder
	loaded  []inventory.PlannedOrder
	err     error
}

func (c *catalogPersistenceContext) reset() error {
	c.repo = persistence.NewGormCatalogRepository(helpers.SharedTestDB)
	c.planned = nil
	c.loaded = nil
	c.err = nil
	return helpers.TruncateAllTables()
}

// Given steps

func (c *catalogPersistenceContext) theCatalogPlansUnitsOf(quantity int, ref string) error {
	product, err := c.shared.product(ref)
	if err != nil {
		return err
	}
	c.planned = append(c.planned, inventory.PlannedOrder{ProductID: product.ID(), Quantity: quantity})
	return nil
}

// When steps

func (c *catalogPersistenceContext) iSaveTheCatalog() error {
	c.err = c.repo.Save(context.Background(), c.shared.getCatalog(), c.planned)
	return c.err
}

// iReloadTheCatalog replaces the shared catalog with the stored one, so the
// inventory steps assert against what came back from the database
func (c *catalogPersistenceContext) iReloadTheCatalog() error {
	catalog, orders, err := c.repo.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	c.shared.setCatalog(catalog)
	c.loaded = orders
	return nil
}

// Then steps

func (c *catalogPersistenceContext) theCatalogShouldHave(components, products int) error {
	catalog := c.shared.getCatalog()
	if got := len(catalog.Components()); got != components {
		return fmt.Errorf("expected %d components, got %d", components, got)
	}
	if got := len(catalog.Products()); got != products {
		return fmt.Errorf("expected %d products, got %d", products, got)
	}
	return nil
}

func (c *catalogPersistenceContext) theLoadedOrdersShouldPlan(quantity int, productID string) error {
	for _, order := range c.loaded {
		if order.ProductID == productID {
			if order.Quantity != quantity {
				return fmt.Errorf("expected %d planned units of %s, got %d", quantity, productID, order.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("no planned order for %s in %v", productID, c.loaded)
}

func (c *catalogPersistenceContext) theLoadedOrdersShouldBeEmpty() error {
	if len(c.loaded) != 0 {
		return fmt.Errorf("expected no planned orders, got %v", c.loaded)
	}
	return nil
}

func InitializeCatalogPersistenceScenario(ctx *godog.ScenarioContext) {
	c := &catalogPersistenceContext{shared: globalCatalogContext}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, c.reset()
	})

	// Given steps
	ctx.Step(`^the catalog plans (\d+) units? of "([^"]*)"$`, c.theCatalogPlansUnitsOf)

	// When steps
	ctx.Step(`^I save the catalog to the database$`, c.iSaveTheCatalog)
	ctx.Step(`^I reload the catalog from the database$`, c.iReloadTheCatalog)

	// Then steps
	ctx.Step(`^the catalog should have (\d+) components and (\d+) products$`, c.theCatalogShouldHave)
	ctx.Step(`^the loaded orders should plan (\d+) units of "([^"]*)"$`, c.theLoadedOrdersShouldPlan)
	ctx.Step(`^the loaded orders should be empty$`, c.theLoadedOrdersShouldBeEmpty)
}
