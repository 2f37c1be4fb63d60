package repository

import (
	"github.com/Takumi1421/Easyreplenish-backend/internal/model"

	"gorm.io/gorm"
)

type SKURepository interface {
	Create(sku *model.SKU) error
	FindAll() ([]model.SKU, error)
	FindByID(skuID string) (*model.SKU, error)
	Delete(skuID string) error
	GetInventoryStats() (*InventoryStats, error)
}

// InventoryStats for the dashboard overview
type InventoryStats struct {
	TotalSKUs     int64 `json:"total_skus"`
	LowStockCount int64 `json:"low_stock_count"`
	TotalUnits    int64 `json:"total_units"`
}

type skuRepo struct {
	db *gorm.DB
}

func NewSKURepo(db *gorm.DB) SKURepository {
	return &skuRepo{db}
}

func (r *skuRepo) Create(sku *model.SKU) error {
	return r.db.Create(sku).Error
}

func (r *skuRepo) FindAll() ([]model.SKU, error) {
	var skus []model.SKU
	err := r.db.Find(&skus).Error
	return skus, err
}

func (r *skuRepo) FindByID(skuID string) (*model.SKU, error) {
	var sku model.SKU
	err := r.db.First(&sku, "sku_id = ?", skuID).Error
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

func (r *skuRepo) Delete(skuID string) error {
	result := r.db.Delete(&model.SKU{}, "sku_id = ?", skuID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *skuRepo) GetInventoryStats() (*InventoryStats, error) {
	var stats InventoryStats

	if err := r.db.Model(&model.SKU{}).Count(&stats.TotalSKUs).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.SKU{}).
		Where("current_stock < reorder_threshold").
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.SKU{}).
		Select("COALESCE(SUM(current_stock), 0)").
		Scan(&stats.TotalUnits).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
