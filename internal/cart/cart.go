package cart

import (
	"tulynx-storefront/internal/domain"
)

// Cart holds one session's line items and derived subtotal. All intents
// keep the subtotal equal to the sum of unitPrice*quantity and are no-ops
// when their target line is absent. Cart is not safe for concurrent use;
// the owning Store serializes access.
type Cart struct {
	id     string
	lines  []domain.CartLine
	isOpen bool
}

// DisplaySnapshot carries the denormalized product fields copied onto a
// line when it is added. Lines are never repriced from the catalog.
type DisplaySnapshot struct {
	Name           string
	UnitPriceCents int64
	Image          string
}

// AddItem appends a new line with quantity 1, or increments the quantity
// of the existing line for the same product.
func (c *Cart) AddItem(productID string, snap DisplaySnapshot) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ProductID:      productID,
		Name:           snap.Name,
		UnitPriceCents: snap.UnitPriceCents,
		Image:          snap.Image,
		Quantity:       1,
	})
}

// UpdateQuantity sets the matching line's quantity. Requests with a
// non-positive quantity are ignored; removal is a separate intent so a
// decrement cannot silently delete a line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the matching line, no-op when absent.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful order submission.
func (c *Cart) Clear() {
	c.lines = nil
}

// ToggleVisibility flips the UI open flag. Lines and subtotal are untouched.
func (c *Cart) ToggleVisibility() {
	c.isOpen = !c.isOpen
}

// SubtotalCents derives the cart subtotal from its lines.
func (c *Cart) SubtotalCents() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.UnitPriceCents * int64(l.Quantity)
	}
	return sum
}

// Snapshot returns a copy of the observable cart state.
func (c *Cart) Snapshot() domain.CartSnapshot {
	lines := make([]domain.CartLine, len(c.lines))
	copy(lines, c.lines)
	return domain.CartSnapshot{
		ID:            c.id,
		Lines:         lines,
		IsOpen:        c.isOpen,
		SubtotalCents: c.SubtotalCents(),
	}
}
