package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factorysim-go/internal/domain/manufacturing"
)

type productionContext struct {
	shared *sharedCatalogContext

	process     *manufacturing.ManufacturingProcess
	transitions []manufacturing.Transition
	report      string
	err         error
}

func (pc *productionContext) reset() {
	pc.process = nil
	pc.transitions = nil
	pc.report = ""
	pc.err = nil
}

// Given steps

func (pc *productionContext) theOutcomeScript(list string) error {
	outcomes, err := parseOutcomes(list)
	if err != nil {
		return err
	}
	pc.shared.setScripts(outcomes, nil)
	return nil
}

func (pc *productionContext) theForcedShortageScript(list string) error {
	shortages, err := parseBools(list)
	if err != nil {
		return err
	}
	pc.shared.setScripts(nil, shortages)
	return nil
}

// When steps

func (pc *productionContext) iProduceUnitsOf(quantity int, ref string) error {
	product, err := pc.shared.product(ref)
	if err != nil {
		return err
	}

	pc.process, err = manufacturing.NewManufacturingProcess(product, quantity, pc.shared.newGenerator(),
		manufacturing.WithObserver(func(t manufacturing.Transition) {
			pc.transitions = append(pc.transitions, t)
		}))
	if err != nil {
		return err
	}

	pc.err = pc.process.Run()
	pc.report = pc.process.GenerateReport()
	return nil
}

func (pc *productionContext) iRunTheSameProcessAgain() error {
	if pc.process == nil {
		return fmt.Errorf("no production process available")
	}
	pc.err = pc.process.Run()
	return nil
}

// Then steps

func (pc *productionContext) unitsShouldSucceed(expected int) error {
	if pc.err != nil {
		return fmt.Errorf("production run failed: %v", pc.err)
	}
	if got := pc.process.SuccessCount(); got != expected {
		return fmt.Errorf("expected %d successful units, got %d", expected, got)
	}
	return nil
}

func (pc *productionContext) unitsShouldFailWith(expected int, reason string) error {
	var got int
	switch manufacturing.FailureReason(reason) {
	case manufacturing.ReasonInsufficientStock:
		got = pc.process.StockShortageCount()
	case manufacturing.ReasonDamagedComponent:
		got = pc.process.DamagedComponentCount()
	case manufacturing.ReasonSystemError, manufacturing.ReasonUnexpectedStockError:
		got = pc.process.SystemErrorCount()
	default:
		return fmt.Errorf("unknown failure reason %q", reason)
	}
	if got != expected {
		return fmt.Errorf("expected %d units failed with %s, got %d", expected, reason, got)
	}
	return nil
}

func (pc *productionContext) theProcessedTotalShouldEqualTheRequestedQuantity() error {
	if pc.process.TotalProcessedCount() != pc.process.Quantity() {
		return fmt.Errorf("processed %d units, requested %d", pc.process.TotalProcessedCount(), pc.process.Quantity())
	}
	return nil
}

func (pc *productionContext) theLastFailureReasonShouldBe(expected string) error {
	if got := string(pc.process.FailureReason()); got != expected {
		return fmt.Errorf("expected last failure reason %q, got %q", expected, got)
	}
	return nil
}

func (pc *productionContext) unitShouldHavePath(unit int, path string) error {
	units := pc.process.Units()
	if unit < 1 || unit > len(units) {
		return fmt.Errorf("unit %d was not attempted (%d units)", unit, len(units))
	}

	var states []string
	for _, s := range units[unit-1].Path {
		states = append(states, string(s))
	}
	if got := strings.Join(states, " -> "); got != path {
		return fmt.Errorf("expected unit %d path %q, got %q", unit, path, got)
	}
	return nil
}

func (pc *productionContext) transitionsShouldHaveBeenObserved(expected int) error {
	if len(pc.transitions) != expected {
		return fmt.Errorf("expected %d transitions, observed %d", expected, len(pc.transitions))
	}
	return nil
}

func (pc *productionContext) theRunShouldBeRejected() error {
	if pc.err == nil {
		return fmt.Errorf("expected the run to be rejected, but it succeeded")
	}
	return nil
}

func (pc *productionContext) theProductionReportShouldContain(expected string) error {
	if !strings.Contains(pc.report, expected) {
		return fmt.Errorf("expected report to contain %q, got:\n%s", expected, pc.report)
	}
	return nil
}

func (pc *productionContext) theProductionReportShouldNotContain(unexpected string) error {
	if strings.Contains(pc.report, unexpected) {
		return fmt.Errorf("expected report not to contain %q, got:\n%s", unexpected, pc.report)
	}
	return nil
}

func InitializeProductionScenario(ctx *godog.ScenarioContext) {
	pc := &productionContext{shared: globalCatalogContext}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the outcome script "([^"]*)"$`, pc.theOutcomeScript)
	ctx.Step(`^the forced shortage script "([^"]*)"$`, pc.theForcedShortageScript)

	// When steps
	ctx.Step(`^I produce (\d+) units? of "([^"]*)"$`, pc.iProduceUnitsOf)
	ctx.Step(`^I run the same process again$`, pc.iRunTheSameProcessAgain)

	// Then steps
	ctx.Step(`^(\d+) units? should succeed$`, pc.unitsShouldSucceed)
	ctx.Step(`^(\d+) units? should fail with "([^"]*)"$`, pc.unitsShouldFailWith)
	ctx.Step(`^every requested unit should reach a terminal state$`, pc.theProcessedTotalShouldEqualTheRequestedQuantity)
	ctx.Step(`^the last failure reason should be "([^"]*)"$`, pc.theLastFailureReasonShouldBe)
	ctx.Step(`^unit (\d+) should follow "([^"]*)"$`, pc.unitShouldHavePath)
	ctx.Step(`^(\d+) transitions should have been observed$`, pc.transitionsShouldHaveBeenObserved)
	ctx.Step(`^the run should be rejected$`, pc.theRunShouldBeRejected)
	ctx.Step(`^the production report should contain "([^"]*)"$`, pc.theProductionReportShouldContain)
	ctx.Step(`^the production report should not contain "([^"]*)"$`, pc.theProductionReportShouldNotContain)
}
