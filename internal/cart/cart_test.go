package cart

import (
	"testing"

	"tulynx-storefront/internal/domain"
)

func checkSubtotal(t *testing.T, c *Cart) {
	t.Helper()
	var want int64
	for _, l := range c.Snapshot().Lines {
		want += l.UnitPriceCents * int64(l.Quantity)
	}
	if got := c.SubtotalCents(); got != want {
		t.Fatalf("subtotal invariant broken: got %d want %d", got, want)
	}
}

func TestAddItemMergesByProduct(t *testing.T) {
	c := &Cart{}
	c.AddItem("p1", DisplaySnapshot{Name: "Midnight Elegance", UnitPriceCents: 29900})
	c.AddItem("p1", DisplaySnapshot{Name: "Midnight Elegance", UnitPriceCents: 29900})

	snap := c.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", snap.Lines[0].Quantity)
	}
	if snap.SubtotalCents != 59800 {
		t.Fatalf("expected subtotal 59800, got %d", snap.SubtotalCents)
	}
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	c := &Cart{}
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 100})
	c.AddItem("p2", DisplaySnapshot{UnitPriceCents: 200})
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 100})

	snap := c.Snapshot()
	if snap.Lines[0].ProductID != "p1" || snap.Lines[1].ProductID != "p2" {
		t.Fatalf("unexpected line order: %+v", snap.Lines)
	}
	checkSubtotal(t, c)
}

func TestAddItemDoesNotReprice(t *testing.T) {
	c := &Cart{}
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 100})
	// A later add carries a changed catalog price; the existing line keeps
	// its add-time snapshot.
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 999})

	snap := c.Snapshot()
	if snap.Lines[0].UnitPriceCents != 100 {
		t.Fatalf("line was repriced: %+v", snap.Lines[0])
	}
	if snap.SubtotalCents != 200 {
		t.Fatalf("expected subtotal 200, got %d", snap.SubtotalCents)
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := &Cart{}
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 100})

	c.UpdateQuantity("p1", 5)
	if got := c.Snapshot().Lines[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
	checkSubtotal(t, c)

	// Non-positive quantities are ignored, not treated as removal.
	c.UpdateQuantity("p1", 0)
	c.UpdateQuantity("p1", -5)
	if got := c.Snapshot().Lines[0].Quantity; got != 5 {
		t.Fatalf("non-positive update changed quantity to %d", got)
	}

	// Unknown product is a no-op.
	c.UpdateQuantity("missing", 3)
	if len(c.Snapshot().Lines) != 1 {
		t.Fatalf("update on missing product changed lines")
	}
}

func TestRemoveItem(t *testing.T) {
	c := &Cart{}
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 100})
	c.AddItem("p2", DisplaySnapshot{UnitPriceCents: 200})

	c.RemoveItem("p1")
	snap := c.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].ProductID != "p2" {
		t.Fatalf("unexpected lines after removal: %+v", snap.Lines)
	}
	if snap.SubtotalCents != 200 {
		t.Fatalf("expected subtotal 200, got %d", snap.SubtotalCents)
	}

	// Removing an absent product is idempotent.
	c.RemoveItem("p1")
	if len(c.Snapshot().Lines) != 1 {
		t.Fatalf("repeat removal changed lines")
	}
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 100})
	c.AddItem("p2", DisplaySnapshot{UnitPriceCents: 200})

	c.Clear()
	snap := c.Snapshot()
	if len(snap.Lines) != 0 || snap.SubtotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}
}

func TestToggleVisibility(t *testing.T) {
	c := &Cart{}
	c.AddItem("p1", DisplaySnapshot{UnitPriceCents: 100})

	c.ToggleVisibility()
	if snap := c.Snapshot(); !snap.IsOpen || snap.SubtotalCents != 100 {
		t.Fatalf("toggle affected business state: %+v", snap)
	}
	c.ToggleVisibility()
	if c.Snapshot().IsOpen {
		t.Fatalf("expected isOpen false after second toggle")
	}
}

func TestSubtotalInvariantUnderIntentSequences(t *testing.T) {
	c := &Cart{}
	steps := []func(){
		func() { c.AddItem("a", DisplaySnapshot{UnitPriceCents: 10000}) },
		func() { c.AddItem("b", DisplaySnapshot{UnitPriceCents: 5000}) },
		func() { c.AddItem("a", DisplaySnapshot{UnitPriceCents: 10000}) },
		func() { c.UpdateQuantity("b", 4) },
		func() { c.UpdateQuantity("a", 0) },
		func() { c.RemoveItem("b") },
		func() { c.AddItem("c", DisplaySnapshot{UnitPriceCents: 2500}) },
		func() { c.RemoveItem("missing") },
		func() { c.Clear() },
		func() { c.AddItem("a", DisplaySnapshot{UnitPriceCents: 10000}) },
	}
	for i, step := range steps {
		step()
		var want int64
		for _, l := range c.Snapshot().Lines {
			want += l.UnitPriceCents * int64(l.Quantity)
		}
		if got := c.SubtotalCents(); got != want {
			t.Fatalf("step %d: subtotal %d, want %d", i, got, want)
		}
	}
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	created := store.Create()
	if created.ID == "" {
		t.Fatalf("expected cart id")
	}
	if len(created.Lines) != 0 || created.SubtotalCents != 0 {
		t.Fatalf("new cart not empty: %+v", created)
	}

	snap, err := store.Apply(created.ID, func(c *Cart) {
		c.AddItem("p1", DisplaySnapshot{Name: "Velvet Orchid", UnitPriceCents: 37900})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.SubtotalCents != 37900 {
		t.Fatalf("expected subtotal 37900, got %d", snap.SubtotalCents)
	}

	got, err := store.Snapshot(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Lines) != 1 {
		t.Fatalf("expected one line, got %+v", got.Lines)
	}

	if _, err := store.Snapshot("missing"); err != domain.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.Apply("missing", func(c *Cart) {}); err != domain.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
