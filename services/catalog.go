package services

import (
	"encoding/json"
	"fmt"
	"sort"

	"kasir-terminal/models"
)

// Catalog is the menu for one run: items keyed by ID, display order
// ascending by ID. It is fixed at construction and never mutated.
type Catalog struct {
	items map[int]models.MenuItem
	ids   []int
}

func NewCatalog(items []models.MenuItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("menu is empty")
	}
	c := &Catalog{items: make(map[int]models.MenuItem, len(items))}
	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("menu item %q: id must be positive", it.Name)
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("duplicate menu item id %d", it.ID)
		}
		if it.Category != models.CategoryFood && it.Category != models.CategorySnack && it.Category != models.CategoryDrink {
			return nil, fmt.Errorf("menu item %d: invalid category: %s", it.ID, it.Category)
		}
		if it.Name == "" {
			return nil, fmt.Errorf("menu item %d: name is required", it.ID)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("menu item %d: price must be >= 0", it.ID)
		}
		c.items[it.ID] = it
		c.ids = append(c.ids, it.ID)
	}
	sort.Ints(c.ids)
	return c, nil
}

func (c *Catalog) Get(id int) (models.MenuItem, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Items returns every menu item in ascending ID order.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Catalog) Len() int { return len(c.ids) }

// ParseMenu decodes a JSON menu document (the embedded default or an
// operator-supplied MENU_FILE).
func ParseMenu(data []byte) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu: %w", err)
	}
	return items, nil
}
