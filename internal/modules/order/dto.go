package order

type OrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gte=0"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerEmail   string             `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string             `json:"customerPhone" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64            `json:"totalAmount" binding:"required,gte=0"`
	ShippingAddress string             `json:"shippingAddress" binding:"required"`
}

// UpdateStatusRequest restricts the target status to the enumerated set at
// the schema level; the transition itself is deliberately unrestricted.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}
