package model

import "time"

// SKU is one stock-keeping unit. The caller-chosen SKUID is the primary key
// and is immutable after creation; CurrentStock only moves through order
// side effects and is allowed to go negative.
type SKU struct {
	SKUID            string    `gorm:"type:varchar(64);primaryKey" json:"sku_id" validate:"required"`
	ProductName      string    `gorm:"type:varchar(255);not null" json:"product_name" validate:"required"`
	CurrentStock     int       `gorm:"not null;default:0" json:"current_stock"`
	ReorderThreshold int       `gorm:"not null;default:0" json:"reorder_threshold"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (SKU) TableName() string {
	return "skus"
}

// NeedsReorder reports whether stock has fallen below the reorder threshold.
// Strictly below: a SKU sitting exactly at its threshold is not flagged.
func (s *SKU) NeedsReorder() bool {
	return s.CurrentStock < s.ReorderThreshold
}
