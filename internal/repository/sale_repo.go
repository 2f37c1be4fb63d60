package repository

import (
	"github.com/Takumi1421/Easyreplenish-backend/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindBySKU(skuID string) ([]model.Sale, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) FindBySKU(skuID string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Where("sku_id = ?", skuID).Find(&sales).Error
	return sales, err
}
