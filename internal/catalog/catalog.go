package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"tulynx-storefront/internal/domain"
)

//go:embed perfumes.json
var dataFS embed.FS

// Catalog serves the static perfume list. Products are loaded once at
// startup and never mutated, so concurrent reads need no locking.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// Load parses the embedded product dataset.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("perfumes.json")
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Filter narrows a product listing. Zero values mean "no constraint";
// the literal value "All" on category/gender is treated the same way.
type Filter struct {
	Category      string
	Gender        string
	MinPriceCents int64
	MaxPriceCents int64
	Search        string
}

// List returns the products matching the filter, in dataset order.
func (c *Catalog) List(f Filter) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if f.Gender != "" && f.Gender != "All" && p.Gender != f.Gender {
			continue
		}
		if f.MinPriceCents > 0 && p.PriceCents < f.MinPriceCents {
			continue
		}
		if f.MaxPriceCents > 0 && p.PriceCents > f.MaxPriceCents {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// BestSellers returns the products flagged as best sellers.
func (c *Catalog) BestSellers() []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if p.BestSeller {
			out = append(out, p)
		}
	}
	return out
}

// Get returns one product by id.
func (c *Catalog) Get(id string) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}
