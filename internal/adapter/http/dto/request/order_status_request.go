package request

// UpdateOrderStatusRequest overwrites an order status. Any of the six known
// statuses is accepted regardless of the current one.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
