package domain

type OrderItemInput struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName string           `json:"customer_name"`
	TableNumber  int              `json:"table_number"`
	Items        []OrderItemInput `json:"items"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CartItemInput struct {
	ID       int64   `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// SettleRequest carries the client's cart snapshot alongside the order id.
// Prices here are recorded verbatim as price_at_sale; the cart is trusted as
// supplied and is not reconciled against the order's stored items.
type SettleRequest struct {
	OrderID      int64           `json:"order_id"`
	Cart         []CartItemInput `json:"cart"`
	CustomerName string          `json:"customer_name"`
	TableNumber  int             `json:"table_number"`
	Subtotal     float64         `json:"subtotal"`
	Tax          float64         `json:"tax"`
	Total        float64         `json:"total"`
}

type SettleResponse struct {
	TransactionCode string `json:"transaction_uid"`
}

type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Available   int     `json:"available"`
	CategoryID  int64   `json:"category_id"`
}

type NotificationRequest struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
