package model

import "time"

type OrderStatus string

const (
	OrderOrdered  OrderStatus = "ordered"
	OrderReceived OrderStatus = "received"
	OrderReturned OrderStatus = "returned"
)

// StockDelta maps an order status to the change it applies to the SKU's
// stock at recording time: placing an order earmarks units out of stock,
// a return puts them back, a receipt confirmation moves nothing.
func (s OrderStatus) StockDelta(quantity int) int {
	switch s {
	case OrderOrdered:
		return -quantity
	case OrderReturned:
		return quantity
	default:
		return 0
	}
}

// Order is a purchase or return event. OrderID is an opaque caller-supplied
// label with no uniqueness contract; the auto-assigned row ID is the real
// identity. Rows are append-only.
type Order struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	OrderID  string      `gorm:"type:varchar(100)" json:"order_id"`
	SKUID    string      `gorm:"type:varchar(64);not null;index" json:"sku_id" validate:"required"`
	Quantity int         `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Platform string      `gorm:"type:varchar(100)" json:"platform"`
	Status   OrderStatus `gorm:"type:varchar(20);not null" json:"status" validate:"required,oneof=ordered received returned"`
	Date     time.Time   `json:"date"`
}

func (Order) TableName() string {
	return "orders"
}
