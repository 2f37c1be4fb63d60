package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one completed sale line. Rows are append-only: a sale is never
// updated or deleted, and recording one does not touch the SKU's stock
// (sales are fulfilled outside this system).
type Sale struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	SKUID        string          `gorm:"type:varchar(64);not null;index" json:"sku_id" validate:"required"`
	Quantity     int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Platform     string          `gorm:"type:varchar(100)" json:"platform"`
	SellingPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"selling_price" validate:"decimal_gte_zero"`
	CostPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"cost_price" validate:"decimal_gte_zero"`
	Date         time.Time       `json:"date"`
}

func (Sale) TableName() string {
	return "sales"
}

// UnitProfit is selling price minus cost price, per unit.
func (s *Sale) UnitProfit() decimal.Decimal {
	return s.SellingPrice.Sub(s.CostPrice)
}

// Profit is the total profit contribution of this line.
func (s *Sale) Profit() decimal.Decimal {
	return s.UnitProfit().Mul(decimal.NewFromInt(int64(s.Quantity)))
}
