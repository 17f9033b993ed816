package domain

import "time"

// Status possíveis de um pedido
const (
	OrderCompleted = "Completed"
	OrderCancelled = "Cancelled"
	OrderRefunded  = "Refunded"
)

type Order struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
	ItemsCount  int       `json:"items_count"`
	Status      string    `json:"status"`
}
