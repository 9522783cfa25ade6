package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/andrescamacho/factorysim-go/internal/domain/inventory"
)

type inventoryContext struct {
	shared *sharedCatalogContext

	buildable bool
	consumed  bool
	err       error
	report    string
}

func (ic *inventoryContext) reset() {
	ic.shared.reset()
	ic.buildable = false
	ic.consumed = false
	ic.err = nil
	ic.report = ""
}

// Given steps

func (ic *inventoryContext) theFollowingComponents(table *godog.Table) error {
	catalog := ic.shared.getCatalog()
	for _, row := range table.Rows[1:] { // Skip header
		kind, err := inventory.ParseKind(getCellValueFromTable(table, row, "kind"))
		if err != nil {
			return err
		}
		cost, err := decimal.NewFromString(getCellValueFromTable(table, row, "cost"))
		if err != nil {
			return fmt.Errorf("invalid cost: %w", err)
		}
		weight, err := decimal.NewFromString(getCellValueFromTable(table, row, "weight"))
		if err != nil {
			return fmt.Errorf("invalid weight: %w", err)
		}
		stock, err := getIntCell(table, row, "stock")
		if err != nil {
			return err
		}

		name := getCellValueFromTable(table, row, "name")
		component, err := inventory.NewLeafComponent(inventory.ComponentID(name), name, cost, weight, stock, kind)
		if err != nil {
			return err
		}
		if err := catalog.AddComponent(component); err != nil {
			return err
		}
	}
	return nil
}

func (ic *inventoryContext) aProductMadeOf(name string, table *godog.Table) error {
	product := inventory.NewProduct(inventory.ComponentID(name), name)
	for _, row := range table.Rows[1:] { // Skip header
		component, err := ic.shared.component(getCellValueFromTable(table, row, "component"))
		if err != nil {
			return err
		}
		quantity, err := getIntCell(table, row, "quantity")
		if err != nil {
			return err
		}
		if err := product.AddPart(component, quantity); err != nil {
			return err
		}
	}
	return ic.shared.getCatalog().AddProduct(product)
}

// When steps

func (ic *inventoryContext) iCheckTheComponentsOf(ref string) error {
	product, err := ic.shared.product(ref)
	if err != nil {
		return err
	}
	ic.buildable = product.CheckComponentsStock()
	return nil
}

func (ic *inventoryContext) iConsumeTheComponentsOf(ref string) error {
	product, err := ic.shared.product(ref)
	if err != nil {
		return err
	}
	ic.err = product.ConsumeComponentsStock()
	return nil
}

func (ic *inventoryContext) iConsumeFinishedUnitsOf(quantity int, ref string) error {
	product, err := ic.shared.product(ref)
	if err != nil {
		return err
	}
	ic.consumed = product.Consume(quantity)
	return nil
}

func (ic *inventoryContext) iRenderTheReportOf(ref string) error {
	product, err := ic.shared.product(ref)
	if err != nil {
		return err
	}
	ic.report = product.Report()
	return nil
}

// Then steps

func (ic *inventoryContext) theProductShouldBeBuildable() error {
	if !ic.buildable {
		return fmt.Errorf("expected the product to be buildable, but it was not")
	}
	return nil
}

func (ic *inventoryContext) theProductShouldNotBeBuildable() error {
	if ic.buildable {
		return fmt.Errorf("expected the product not to be buildable, but it was")
	}
	return nil
}

func (ic *inventoryContext) theConsumptionShouldSucceed() error {
	if ic.err != nil {
		return fmt.Errorf("expected consumption to succeed, got: %v", ic.err)
	}
	return nil
}

func (ic *inventoryContext) theConsumptionShouldFailWithShortagesOf(list string) error {
	var stockErr *inventory.InsufficientStockError
	if !errors.As(ic.err, &stockErr) {
		return fmt.Errorf("expected an insufficient stock error, got: %v", ic.err)
	}

	var got []string
	for _, s := range stockErr.Shortages {
		got = append(got, s.ComponentID)
	}
	if strings.Join(got, ", ") != strings.Join(splitList(list), ", ") {
		return fmt.Errorf("expected shortages of %s, got %s", list, strings.Join(got, ", "))
	}
	return nil
}

func (ic *inventoryContext) finishedUnitsShouldHaveBeenConsumed() error {
	if !ic.consumed {
		return fmt.Errorf("expected finished units to be consumed, but they were not")
	}
	return nil
}

func (ic *inventoryContext) finishedUnitsShouldNotHaveBeenConsumed() error {
	if ic.consumed {
		return fmt.Errorf("expected finished units not to be consumed, but they were")
	}
	return nil
}

func (ic *inventoryContext) componentShouldHaveStock(id string, expected int) error {
	component, err := ic.shared.component(id)
	if err != nil {
		return err
	}
	if component.Stock() != expected {
		return fmt.Errorf("expected %s stock %d, got %d", id, expected, component.Stock())
	}
	return nil
}

func (ic *inventoryContext) productShouldHaveStock(ref string, expected int) error {
	product, err := ic.shared.product(ref)
	if err != nil {
		return err
	}
	if product.Stock() != expected {
		return fmt.Errorf("expected %s stock %d, got %d", ref, expected, product.Stock())
	}
	return nil
}

func (ic *inventoryContext) productShouldCostAndWeigh(ref, cost, weight string) error {
	product, err := ic.shared.product(ref)
	if err != nil {
		return err
	}
	if got := product.Cost().StringFixed(2); got != cost {
		return fmt.Errorf("expected %s cost %s, got %s", ref, cost, got)
	}
	if got := product.Weight().StringFixed(2); got != weight {
		return fmt.Errorf("expected %s weight %s, got %s", ref, weight, got)
	}
	return nil
}

func (ic *inventoryContext) theProductReportShouldContain(expected string) error {
	if !strings.Contains(ic.report, expected) {
		return fmt.Errorf("expected report to contain %q, got:\n%s", expected, ic.report)
	}
	return nil
}

func InitializeInventoryScenario(ctx *godog.ScenarioContext) {
	ic := &inventoryContext{shared: globalCatalogContext}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		ic.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the following components:$`, ic.theFollowingComponents)
	ctx.Step(`^a product "([^"]*)" made of:$`, ic.aProductMadeOf)

	// When steps
	ctx.Step(`^I check the components of "([^"]*)"$`, ic.iCheckTheComponentsOf)
	ctx.Step(`^I consume the components of "([^"]*)"$`, ic.iConsumeTheComponentsOf)
	ctx.Step(`^I consume (\d+) finished units? of "([^"]*)"$`, ic.iConsumeFinishedUnitsOf)
	ctx.Step(`^I render the report of "([^"]*)"$`, ic.iRenderTheReportOf)

	// Then steps
	ctx.Step(`^the product should be buildable$`, ic.theProductShouldBeBuildable)
	ctx.Step(`^the product should not be buildable$`, ic.theProductShouldNotBeBuildable)
	ctx.Step(`^the consumption should succeed$`, ic.theConsumptionShouldSucceed)
	ctx.Step(`^the consumption should fail with shortages of "([^"]*)"$`, ic.theConsumptionShouldFailWithShortagesOf)
	ctx.Step(`^the finished units should have been consumed$`, ic.finishedUnitsShouldHaveBeenConsumed)
	ctx.Step(`^the finished units should not have been consumed$`, ic.finishedUnitsShouldNotHaveBeenConsumed)
	ctx.Step(`^component "([^"]*)" should have stock (\d+)$`, ic.componentShouldHaveStock)
	ctx.Step(`^product "([^"]*)" should have stock (\d+)$`, ic.productShouldHaveStock)
	ctx.Step(`^product "([^"]*)" should cost "([^"]*)" and weigh "([^"]*)"$`, ic.productShouldCostAndWeigh)
	ctx.Step(`^the product report should contain "([^"]*)"$`, ic.theProductReportShouldContain)
}
