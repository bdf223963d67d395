package catalog

import "testing"

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestLoadDataset(t *testing.T) {
	c := mustLoad(t)
	if len(c.products) == 0 {
		t.Fatalf("expected products in embedded dataset")
	}
	for _, p := range c.products {
		if p.ID == "" || p.Name == "" || p.PriceCents <= 0 {
			t.Fatalf("incomplete product record: %+v", p)
		}
	}
}

func TestListFilters(t *testing.T) {
	c := mustLoad(t)

	all := c.List(Filter{Category: "All", Gender: "All"})
	if len(all) != len(c.products) {
		t.Fatalf("expected %d products, got %d", len(c.products), len(all))
	}

	for _, p := range c.List(Filter{Category: "Oriental"}) {
		if p.Category != "Oriental" {
			t.Fatalf("category filter leaked %+v", p)
		}
	}

	for _, p := range c.List(Filter{Gender: "Women"}) {
		if p.Gender != "Women" {
			t.Fatalf("gender filter leaked %+v", p)
		}
	}

	for _, p := range c.List(Filter{MinPriceCents: 30000, MaxPriceCents: 35000}) {
		if p.PriceCents < 30000 || p.PriceCents > 35000 {
			t.Fatalf("price filter leaked %+v", p)
		}
	}
}

func TestListSearchMatchesNameAndDescription(t *testing.T) {
	c := mustLoad(t)

	byName := c.List(Filter{Search: "midnight"})
	if len(byName) == 0 {
		t.Fatalf("expected case-insensitive name match")
	}
	for _, p := range byName {
		if p.Name != "Midnight Elegance" {
			t.Fatalf("unexpected match %+v", p)
		}
	}

	if got := c.List(Filter{Search: "no-such-perfume"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestBestSellers(t *testing.T) {
	c := mustLoad(t)
	best := c.BestSellers()
	if len(best) == 0 {
		t.Fatalf("expected best sellers in dataset")
	}
	for _, p := range best {
		if !p.BestSeller {
			t.Fatalf("non-bestseller returned: %+v", p)
		}
	}
}

func TestGet(t *testing.T) {
	c := mustLoad(t)
	p, err := c.Get("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name == "" {
		t.Fatalf("empty product returned")
	}

	if _, err := c.Get("does-not-exist"); err == nil {
		t.Fatalf("expected not found error")
	}
}
