package entities

// MenuItem is a catalog entry managed through the admin area.
//
// Identity:
//   - ID is assigned by the service at creation time.
//
// Availability only controls storefront visibility; unavailable items stay in
// the catalog and keep their id.

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}
