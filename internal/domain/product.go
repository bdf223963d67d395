package domain

// FragranceNotes describes the scent pyramid of a perfume.
type FragranceNotes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	PriceCents  int64          `json:"priceCents"`
	Category    string         `json:"category"`
	Gender      string         `json:"gender"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Notes       FragranceNotes `json:"fragranceNotes"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	BestSeller  bool           `json:"bestSeller"`
}
