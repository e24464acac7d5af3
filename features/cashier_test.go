package features

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"go.uber.org/zap"

	"kasir-terminal/models"
	"kasir-terminal/services"
	"kasir-terminal/terminal"
)

type cashierTestContext struct {
	items  []models.MenuItem
	output string
}

func (c *cashierTestContext) reset() {
	c.items = nil
	c.output = ""
}

// Given steps

func (c *cashierTestContext) theBuiltInMenu() error {
	c.items = []models.MenuItem{
		{ID: 1, Category: models.CategoryFood, Name: "Nasi Goreng", Price: 25000},
		{ID: 2, Category: models.CategoryFood, Name: "Mie Goreng", Price: 23000},
		{ID: 3, Category: models.CategoryFood, Name: "Ayam Bakar", Price: 30000},
		{ID: 4, Category: models.CategoryFood, Name: "Sate Ayam", Price: 28000},
		{ID: 5, Category: models.CategoryFood, Name: "Soto Ayam", Price: 26000},
		{ID: 6, Category: models.CategorySnack, Name: "Pisang Goreng", Price: 12000},
		{ID: 7, Category: models.CategorySnack, Name: "Roti Bakar", Price: 15000},
		{ID: 8, Category: models.CategorySnack, Name: "Tempe Mendoan", Price: 10000},
		{ID: 9, Category: models.CategoryDrink, Name: "Teh Manis", Price: 8000},
		{ID: 10, Category: models.CategoryDrink, Name: "Kopi Tubruk", Price: 12000},
	}
	return nil
}

func (c *cashierTestContext) aMenuWith(table *godog.Table) error {
	c.items = nil
	// Skip header row
	for _, row := range table.Rows[1:] {
		id, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return fmt.Errorf("bad id %q: %w", row.Cells[0].Value, err)
		}
		price, err := strconv.ParseInt(row.Cells[3].Value, 10, 64)
		if err != nil {
			return fmt.Errorf("bad price %q: %w", row.Cells[3].Value, err)
		}
		c.items = append(c.items, models.MenuItem{
			ID:       id,
			Category: row.Cells[1].Value,
			Name:     row.Cells[2].Value,
			Price:    price,
		})
	}
	return nil
}

// When steps

func (c *cashierTestContext) theOperatorEnters(table *godog.Table) error {
	var inputs []string
	for _, row := range table.Rows {
		inputs = append(inputs, row.Cells[0].Value)
	}
	catalog, err := services.NewCatalog(c.items)
	if err != nil {
		return err
	}
	in := strings.NewReader(strings.Join(inputs, "\n") + "\n")
	var out bytes.Buffer
	s := terminal.New(catalog, services.NewFormatter("Rp"), in, &out, zap.NewNop())
	if err := s.Run(); err != nil {
		return err
	}
	c.output = out.String()
	return nil
}

// Then steps

func (c *cashierTestContext) billSection() string {
	idx := strings.Index(c.output, "=== Itemized Bill ===")
	if idx < 0 {
		return ""
	}
	return c.output[idx:]
}

func (c *cashierTestContext) theOutputContains(substring string) error {
	if !strings.Contains(c.output, substring) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", substring, c.output)
	}
	return nil
}

func (c *cashierTestContext) theBillShows(name string, qty int, subtotal string) error {
	bill := c.billSection()
	if bill == "" {
		return errors.New("no bill was printed")
	}
	for _, line := range strings.Split(bill, "\n") {
		if len(line) != 46 || strings.TrimRight(line[:15], " ") != name {
			continue
		}
		fields := strings.Fields(line[15:])
		// fields: qty, prefix, unit price, prefix, subtotal
		if len(fields) != 5 {
			return fmt.Errorf("unexpected bill row layout: %q", line)
		}
		if fields[0] != strconv.Itoa(qty) {
			return fmt.Errorf("expected quantity %d for %q, got %s", qty, name, fields[0])
		}
		if got := fields[3] + " " + fields[4]; got != subtotal {
			return fmt.Errorf("expected subtotal %q for %q, got %q", subtotal, name, got)
		}
		return nil
	}
	return fmt.Errorf("no bill row for %q in:\n%s", name, bill)
}

func (c *cashierTestContext) theBillDoesNotShow(name string) error {
	bill := c.billSection()
	if bill == "" {
		return errors.New("no bill was printed")
	}
	if strings.Contains(bill, name) {
		return fmt.Errorf("expected no bill row for %q, got:\n%s", name, bill)
	}
	return nil
}

func (c *cashierTestContext) appearsBeforeInBill(first, second string) error {
	bill := c.billSection()
	i, j := strings.Index(bill, first), strings.Index(bill, second)
	if i < 0 || j < 0 {
		return fmt.Errorf("bill lacks %q or %q:\n%s", first, second, bill)
	}
	if i > j {
		return fmt.Errorf("expected %q before %q in:\n%s", first, second, bill)
	}
	return nil
}

func (c *cashierTestContext) theBillTotalIs(total string) error {
	bill := c.billSection()
	if bill == "" {
		return errors.New("no bill was printed")
	}
	for _, line := range strings.Split(bill, "\n") {
		if strings.HasPrefix(line, "Total") {
			if got := strings.TrimSpace(strings.TrimPrefix(line, "Total")); got != total {
				return fmt.Errorf("expected total %q, got %q", total, got)
			}
			return nil
		}
	}
	return errors.New("no total row in the bill")
}

func (c *cashierTestContext) noBillIsPrinted() error {
	if strings.Contains(c.output, "=== Itemized Bill ===") {
		return errors.New("expected no bill, but one was printed")
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cashierTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the built-in menu$`, tc.theBuiltInMenu)
	ctx.Step(`^a menu with:$`, tc.aMenuWith)

	// When steps
	ctx.Step(`^the operator enters:$`, tc.theOperatorEnters)

	// Then steps
	ctx.Step(`^the output contains "([^"]*)"$`, tc.theOutputContains)
	ctx.Step(`^the bill shows "([^"]*)" with quantity (\d+) and subtotal "([^"]*)"$`, tc.theBillShows)
	ctx.Step(`^the bill does not show "([^"]*)"$`, tc.theBillDoesNotShow)
	ctx.Step(`^"([^"]*)" appears before "([^"]*)" in the bill$`, tc.appearsBeforeInBill)
	ctx.Step(`^the bill total is "([^"]*)"$`, tc.theBillTotalIs)
	ctx.Step(`^no bill is printed$`, tc.noBillIsPrinted)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cashier.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
