package services

import (
	"errors"
	"math"
	"sort"

	"kasir-terminal/models"
)

var (
	ErrNonPositiveQuantity = errors.New("quantity must be a positive whole number")
	ErrTotalOverflow       = errors.New("cart total overflow")
)

// Cart accumulates one session's selections. At most one line per menu item:
// adding an item that is already present increases that line's quantity.
type Cart struct {
	lines map[int]*models.CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[int]*models.CartLine)}
}

// Add puts qty more of item into the cart. The mutation is atomic: on any
// error the cart is unchanged.
func (c *Cart) Add(item models.MenuItem, qty int) error {
	if qty <= 0 {
		return ErrNonPositiveQuantity
	}
	prev := 0
	if line, ok := c.lines[item.ID]; ok {
		prev = line.Qty
	}
	newQty := prev + qty
	if newQty < prev {
		return ErrTotalOverflow
	}
	if item.Price > 0 && int64(newQty) > math.MaxInt64/item.Price {
		return ErrTotalOverflow
	}
	lineSub := item.Price * int64(newQty)
	rest := c.Total() - item.Price*int64(prev)
	if lineSub > math.MaxInt64-rest {
		return ErrTotalOverflow
	}

	if line, ok := c.lines[item.ID]; ok {
		line.Qty = newQty
	} else {
		c.lines[item.ID] = &models.CartLine{Item: item, Qty: qty}
	}
	return nil
}

// Subtotal reports the line subtotal for a menu item ID.
func (c *Cart) Subtotal(id int) (int64, bool) {
	line, ok := c.lines[id]
	if !ok {
		return 0, false
	}
	return line.Subtotal(), true
}

// Total sums the line subtotals on demand. Add guarantees the sum fits in
// int64, so Total cannot fail.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Entries returns the cart lines as values in ascending menu item ID order.
func (c *Cart) Entries() []models.CartLine {
	out := make([]models.CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Len() int { return len(c.lines) }
