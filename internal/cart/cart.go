package cart

import (
	"sort"

	"github.com/quickbite/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// Entry is a menu item selected for order together with its quantity.
// Quantity is always >= 1; an entry that would reach zero is removed instead.
type Entry struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Cart holds the items accumulated while browsing one restaurant's menu.
// It lives for the duration of the browsing session and is discarded with it.
// A Cart is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	entries map[string]*Entry
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{entries: make(map[string]*Entry)}
}

// AddItem adds one unit of the item, creating the entry on first add.
// It returns the item's new quantity.
func (c *Cart) AddItem(item models.MenuItem) int {
	if e, ok := c.entries[item.ID]; ok {
		e.Quantity++
		return e.Quantity
	}
	c.entries[item.ID] = &Entry{Item: item, Quantity: 1}
	return 1
}

// RemoveItem removes one unit of the item. Removing the last unit deletes
// the entry; removing an absent item is a no-op. It returns the remaining
// quantity.
func (c *Cart) RemoveItem(itemID string) int {
	e, ok := c.entries[itemID]
	if !ok {
		return 0
	}
	if e.Quantity > 1 {
		e.Quantity--
		return e.Quantity
	}
	delete(c.entries, itemID)
	return 0
}

// QuantityOf returns the quantity for the item, or 0 if it is not in the cart.
func (c *Cart) QuantityOf(itemID string) int {
	if e, ok := c.entries[itemID]; ok {
		return e.Quantity
	}
	return 0
}

// TotalItemCount returns the sum of all quantities in the cart.
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// TotalPrice returns the exact sum of price x quantity across all entries.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total
}

// Entries returns the cart contents sorted by item id for deterministic output.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out
}

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool {
	return len(c.entries) == 0
}
