package request

// AddCartItemRequest puts a menu item into the cart. Re-adding an item the
// cart already holds raises the quantity of its line.
type AddCartItemRequest struct {
	MenuItemID   string `json:"menu_item_id" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	Observations string `json:"observations"`
}

// UpdateCartQuantityRequest sets a line quantity. Quantity is a pointer so
// that zero (which removes the line) survives binding.
type UpdateCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
