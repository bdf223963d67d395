package domain

// CartLine is one product's presence in a cart. Display fields are a
// snapshot captured when the product was added; a catalog price change
// mid-session must not reprice lines already in the cart.
type CartLine struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Image          string `json:"image"`
	Quantity       int    `json:"quantity"`
}

// CartSnapshot is the observable state of a cart. Lines keep insertion
// order and SubtotalCents always equals the sum of unitPrice*quantity.
type CartSnapshot struct {
	ID            string     `json:"id"`
	Lines         []CartLine `json:"lines"`
	IsOpen        bool       `json:"isOpen"`
	SubtotalCents int64      `json:"subtotalCents"`
}
