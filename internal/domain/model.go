package domain

import "time"

// Order statuses. The lifecycle is Waiting -> Preparing -> Ready -> Completed,
// with Canceled reachable from any non-terminal state. Transitions are not
// enforced at write time; the live-orders filter is what retires terminal orders.
const (
	StatusWaiting   = "Waiting"
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusCompleted = "Completed"
	StatusCanceled  = "Canceled"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MenuItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Available    int     `json:"available"`
	Sold         int     `json:"sold"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
}

type Order struct {
	ID           int64       `json:"id"`
	Code         string      `json:"order_uid"`
	CustomerName string      `json:"customer_name"`
	TableNumber  int         `json:"table_number"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderLine `json:"items,omitempty"`
}

type OrderLine struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Quantity   int     `json:"quantity"`
}

// Transaction is the immutable ledger entry produced by settlement. Its line
// items carry the price charged at sale time, decoupled from later menu edits.
type Transaction struct {
	ID           int64             `json:"id"`
	Code         string            `json:"transaction_uid"`
	OrderCode    string            `json:"order_uid"`
	CustomerName string            `json:"customer_name"`
	TableNumber  int               `json:"table_number"`
	Subtotal     float64           `json:"subtotal"`
	Tax          float64           `json:"tax"`
	Total        float64           `json:"total"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []TransactionLine `json:"items"`
}

type TransactionLine struct {
	MenuItemID  int64   `json:"menu_item_id"`
	Name        string  `json:"name,omitempty"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"price_at_sale"`
}

// Notification severity levels.
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

type Notification struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
