package httpserver

import (
	"net/http"
	"testing"

	"tulynx-storefront/internal/domain"
)

func TestListPerfumes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/perfumes", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var products []domain.Product
	decodeJSON(t, rec, &products)
	if len(products) != 20 {
		t.Fatalf("expected 20 products, got %d", len(products))
	}
}

func TestListPerfumesFiltered(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/perfumes?search=midnight", nil, nil)
	var products []domain.Product
	decodeJSON(t, rec, &products)
	if len(products) == 0 {
		t.Fatal("expected at least one match for midnight")
	}
	for _, p := range products {
		if p.ID == "" {
			t.Fatal("product missing id")
		}
	}

	rec = env.do(t, http.MethodGet, "/api/perfumes?minPrice=300", nil, nil)
	decodeJSON(t, rec, &products)
	for _, p := range products {
		if p.PriceCents < 30000 {
			t.Fatalf("product %s below min price: %d", p.ID, p.PriceCents)
		}
	}
}

func TestListPerfumesBadPrice(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/perfumes?minPrice=abc", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBestSellers(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/perfumes/bestsellers", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var products []domain.Product
	decodeJSON(t, rec, &products)
	if len(products) == 0 {
		t.Fatal("expected best sellers")
	}
	for _, p := range products {
		if !p.BestSeller {
			t.Fatalf("product %s is not a best seller", p.ID)
		}
	}
}

func TestGetPerfume(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/perfumes/1", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var p domain.Product
	decodeJSON(t, rec, &p)
	if p.Name != "Midnight Elegance" {
		t.Fatalf("unexpected product: %q", p.Name)
	}

	rec = env.do(t, http.MethodGet, "/api/perfumes/999", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
