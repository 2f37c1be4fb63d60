package repository

import (
	"github.com/Takumi1421/Easyreplenish-backend/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order, stockDelta int) error
	FindAll() ([]model.Order, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// Create inserts the order and applies stockDelta to the referenced SKU as
// one database transaction. The stock adjustment is a single atomic
// increment, so concurrent orders against the same SKU cannot lose updates.
// Returns gorm.ErrRecordNotFound when the SKU row does not exist.
func (r *orderRepo) Create(order *model.Order, stockDelta int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if stockDelta == 0 {
			return nil
		}

		result := tx.Model(&model.SKU{}).
			Where("sku_id = ?", order.SKUID).
			Update("current_stock", gorm.Expr("current_stock + ?", stockDelta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("date DESC").Find(&orders).Error
	return orders, err
}
