package service

import (
	"github.com/Takumi1421/Easyreplenish-backend/internal/model"
	"github.com/Takumi1421/Easyreplenish-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService computes derived read-only views. It is a pure consumer of
// the repositories' query surface; nothing here writes or caches.
type ReportService interface {
	GetReorderAlerts() ([]model.SKU, error)
	GetProfitForSKU(skuID string) (decimal.Decimal, error)
	GetInventoryStats() (*repository.InventoryStats, error)
}

type reportService struct {
	skuRepo  repository.SKURepository
	saleRepo repository.SaleRepository
}

func NewReportService(skuRepo repository.SKURepository, saleRepo repository.SaleRepository) ReportService {
	return &reportService{
		skuRepo:  skuRepo,
		saleRepo: saleRepo,
	}
}

// GetReorderAlerts returns every SKU whose stock sits strictly below its
// reorder threshold.
func (s *reportService) GetReorderAlerts() ([]model.SKU, error) {
	skus, err := s.skuRepo.FindAll()
	if err != nil {
		return nil, err
	}

	alerts := make([]model.SKU, 0)
	for _, sku := range skus {
		if sku.NeedsReorder() {
			alerts = append(alerts, sku)
		}
	}
	return alerts, nil
}

// GetProfitForSKU sums (selling_price - cost_price) * quantity over the
// SKU's sales. A SKU with no sales (or an unknown SKU) yields zero rather
// than an error, keeping the operation total.
func (s *reportService) GetProfitForSKU(skuID string) (decimal.Decimal, error) {
	sales, err := s.saleRepo.FindBySKU(skuID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range sales {
		total = total.Add(sales[i].Profit())
	}
	return total, nil
}

func (s *reportService) GetInventoryStats() (*repository.InventoryStats, error) {
	return s.skuRepo.GetInventoryStats()
}
