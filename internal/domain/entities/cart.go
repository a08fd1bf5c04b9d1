package entities

// CartLine is a single line of the shopping cart.
//
// MenuItem is a copy of the catalog entry taken when the line was created, not
// a reference into the catalog. Later edits or deletions of the catalog entry
// must not change lines already in the cart or in past orders.

type CartLine struct {
	ID           string   `json:"id"`
	MenuItem     MenuItem `json:"menu_item"`
	Quantity     int      `json:"quantity"`
	Observations string   `json:"observations,omitempty"`
}

func (l CartLine) Subtotal() float64 {
	return l.MenuItem.Price * float64(l.Quantity)
}
