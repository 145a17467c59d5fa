package cart

import "github.com/shopspring/decimal"

// LineItem is one cart line. ID is unique within a cart.
type LineItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

// Cart aggregates line items for a single checkout session. Lines keep
// insertion order for display; totals do not depend on it. Not safe for
// concurrent use; a cart belongs to one session.
type Cart struct {
	lines []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line with the same id by one,
// or appends a new line with quantity 1.
func (c *Cart) Add(item LineItem) {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.lines = append(c.lines, item)
}

// Remove deletes the line with the given id. Missing id is a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of the line with the given id.
// n <= 0 removes the line; a missing id is a no-op.
func (c *Cart) SetQuantity(id string, n int32) {
	if n <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = n
			return
		}
	}
}

// Line returns the line with the given id, if present.
func (c *Cart) Line(id string) (LineItem, bool) {
	for _, l := range c.lines {
		if l.ID == id {
			return l, true
		}
	}
	return LineItem{}, false
}

// Total recomputes sum(unitPrice × quantity) over all lines on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity)))
	}
	return total
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}
