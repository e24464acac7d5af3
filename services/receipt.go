package services

import (
	"fmt"
	"strings"
)

// BuildMenu returns the menu block: header, one numbered row per item in
// ascending ID order, a rule, and the operator instructions.
func BuildMenu(f Formatter, catalog *Catalog) []string {
	lines := []string{"=== Menu ==="}
	for _, it := range catalog.Items() {
		lines = append(lines, fmt.Sprintf("%d. %-12s %s", it.ID, it.Name, f.Currency(it.Price)))
	}
	return append(lines,
		"--------------",
		"Enter an item number to add to cart.",
		"Type 'c' to checkout or 'q' to quit without checkout.",
	)
}

// BuildReceipt returns the itemized bill block: header, column headings, one
// row per cart line in ascending ID order, and the total aligned under the
// subtotal column. For an empty cart it returns the single empty-cart line.
func BuildReceipt(f Formatter, cart *Cart) []string {
	if cart.IsEmpty() {
		return []string{"Your cart is empty. Nothing to checkout."}
	}
	rule := strings.Repeat("-", 46)
	lines := []string{
		"=== Itemized Bill ===",
		fmt.Sprintf("%-15s%5s%12s%14s", "Item", "Qty", "Price", "Subtotal"),
		rule,
	}
	for _, line := range cart.Entries() {
		lines = append(lines, fmt.Sprintf("%-15s%5d%12s%14s",
			clip(line.Item.Name, 15),
			line.Qty,
			f.Currency(line.Item.Price),
			f.Currency(line.Subtotal()),
		))
	}
	return append(lines,
		rule,
		fmt.Sprintf("%-32s%14s", "Total", f.Currency(cart.Total())),
	)
}

// clip keeps the item name inside its receipt column.
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
