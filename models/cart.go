package models

// CartLine is one line of a cart: a menu item and its accumulated quantity.
type CartLine struct {
	Item MenuItem
	Qty  int
}

func (l CartLine) Subtotal() int64 {
	return l.Item.Price * int64(l.Qty)
}
