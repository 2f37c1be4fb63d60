package service

import (
	"testing"

	"github.com/Takumi1421/Easyreplenish-backend/internal/model"

	"github.com/shopspring/decimal"
)

func newTestReportService(skus ...model.SKU) (ReportService, InventoryService) {
	skuRepo := newMockSKURepo(skus...)
	saleRepo := &mockSaleRepo{}
	orderRepo := &mockOrderRepo{skus: skuRepo}
	inv := NewInventoryService(skuRepo, saleRepo, orderRepo, nil)
	return NewReportService(skuRepo, saleRepo), inv
}

func TestReorderAlerts_StrictInequality(t *testing.T) {
	reports, _ := newTestReportService(
		model.SKU{SKUID: "BELOW", ProductName: "A", CurrentStock: 4, ReorderThreshold: 5},
		model.SKU{SKUID: "AT", ProductName: "B", CurrentStock: 5, ReorderThreshold: 5},
		model.SKU{SKUID: "ABOVE", ProductName: "C", CurrentStock: 6, ReorderThreshold: 5},
	)

	alerts, err := reports.GetReorderAlerts()
	if err != nil {
		t.Fatalf("GetReorderAlerts failed: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected exactly 1 alert, got %d", len(alerts))
	}
	if alerts[0].SKUID != "BELOW" {
		t.Errorf("expected BELOW to be alerted, got %s", alerts[0].SKUID)
	}
}

func TestReorderAlerts_Empty(t *testing.T) {
	reports, _ := newTestReportService(
		model.SKU{SKUID: "SKU-1", ProductName: "A", CurrentStock: 10, ReorderThreshold: 5},
	)

	alerts, err := reports.GetReorderAlerts()
	if err != nil {
		t.Fatalf("GetReorderAlerts failed: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("expected no alerts, got %d", len(alerts))
	}
}

func TestProfit_NoSales(t *testing.T) {
	reports, _ := newTestReportService(
		model.SKU{SKUID: "SKU-1", ProductName: "A"},
	)

	profit, err := reports.GetProfitForSKU("SKU-1")
	if err != nil {
		t.Fatalf("GetProfitForSKU failed: %v", err)
	}
	if !profit.IsZero() {
		t.Errorf("expected zero profit with no sales, got %s", profit)
	}
}

func TestProfit_UnknownSKU(t *testing.T) {
	reports, _ := newTestReportService()

	// Profit of an unknown SKU is zero, never an error
	profit, err := reports.GetProfitForSKU("GHOST")
	if err != nil {
		t.Fatalf("GetProfitForSKU failed: %v", err)
	}
	if !profit.IsZero() {
		t.Errorf("expected zero profit for unknown SKU, got %s", profit)
	}
}

func TestProfit_Additive(t *testing.T) {
	reports, inv := newTestReportService(
		model.SKU{SKUID: "SKU-1", ProductName: "A", CurrentStock: 100},
	)

	sale := &model.Sale{
		SKUID:        "SKU-1",
		Quantity:     3,
		SellingPrice: decimal.NewFromFloat(12.50),
		CostPrice:    decimal.NewFromFloat(4.25),
	}
	if err := inv.RecordSale(sale); err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}

	before, err := reports.GetProfitForSKU("SKU-1")
	if err != nil {
		t.Fatalf("GetProfitForSKU failed: %v", err)
	}

	extra := &model.Sale{
		SKUID:        "SKU-1",
		Quantity:     2,
		SellingPrice: decimal.NewFromFloat(20.00),
		CostPrice:    decimal.NewFromFloat(11.00),
	}
	if err := inv.RecordSale(extra); err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}

	after, err := reports.GetProfitForSKU("SKU-1")
	if err != nil {
		t.Fatalf("GetProfitForSKU failed: %v", err)
	}

	// (20.00 - 11.00) * 2 = 18.00
	want := before.Add(decimal.NewFromFloat(18.00))
	if !after.Equal(want) {
		t.Errorf("expected profit %s after extra sale, got %s", want, after)
	}
}

func TestInventoryStats(t *testing.T) {
	reports, _ := newTestReportService(
		model.SKU{SKUID: "SKU-1", ProductName: "A", CurrentStock: 4, ReorderThreshold: 5},
		model.SKU{SKUID: "SKU-2", ProductName: "B", CurrentStock: 20, ReorderThreshold: 5},
	)

	stats, err := reports.GetInventoryStats()
	if err != nil {
		t.Fatalf("GetInventoryStats failed: %v", err)
	}
	if stats.TotalSKUs != 2 {
		t.Errorf("expected 2 SKUs, got %d", stats.TotalSKUs)
	}
	if stats.LowStockCount != 1 {
		t.Errorf("expected 1 low-stock SKU, got %d", stats.LowStockCount)
	}
	if stats.TotalUnits != 24 {
		t.Errorf("expected 24 total units, got %d", stats.TotalUnits)
	}
}
