package models

type MenuItem struct {
	ID       int    `json:"id"`
	Category string `json:"category"` // "food", "snack", "drink"
	Name     string `json:"name"`
	Price    int64  `json:"price"` // whole rupiah, no fractional unit
}

const (
	CategoryFood  = "food"
	CategorySnack = "snack"
	CategoryDrink = "drink"
)
