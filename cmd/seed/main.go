package main

import (
	"log"
	"time"

	"github.com/Takumi1421/Easyreplenish-backend/internal/model"
	"github.com/Takumi1421/Easyreplenish-backend/internal/repository"
	"github.com/Takumi1421/Easyreplenish-backend/internal/service"
	"github.com/Takumi1421/Easyreplenish-backend/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Seeds a handful of demo SKUs, sales, and orders for local development.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.SKU{}, &model.Sale{}, &model.Order{})

	skuRepo := repository.NewSKURepo(db)
	saleRepo := repository.NewSaleRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	invService := service.NewInventoryService(skuRepo, saleRepo, orderRepo, nil)

	skus := []model.SKU{
		{SKUID: "SKU-RED-MUG", ProductName: "Red Ceramic Mug", CurrentStock: 40, ReorderThreshold: 10},
		{SKUID: "SKU-BLU-TEE", ProductName: "Blue Cotton T-Shirt", CurrentStock: 8, ReorderThreshold: 15},
		{SKUID: "SKU-GRN-CAP", ProductName: "Green Baseball Cap", CurrentStock: 25, ReorderThreshold: 5},
	}
	for i := range skus {
		if err := invService.CreateSKU(&skus[i]); err != nil {
			log.Printf("Skipping SKU %s: %v", skus[i].SKUID, err)
		}
	}

	sales := []model.Sale{
		{SKUID: "SKU-RED-MUG", Quantity: 3, Platform: "etsy", SellingPrice: decimal.NewFromFloat(12.50), CostPrice: decimal.NewFromFloat(4.00)},
		{SKUID: "SKU-RED-MUG", Quantity: 1, Platform: "shopify", SellingPrice: decimal.NewFromFloat(13.00), CostPrice: decimal.NewFromFloat(4.00)},
		{SKUID: "SKU-BLU-TEE", Quantity: 5, Platform: "amazon", SellingPrice: decimal.NewFromFloat(19.99), CostPrice: decimal.NewFromFloat(7.25)},
	}
	for i := range sales {
		if err := invService.RecordSale(&sales[i]); err != nil {
			log.Printf("Skipping sale for %s: %v", sales[i].SKUID, err)
		}
	}

	orders := []model.Order{
		{OrderID: "PO-1001", SKUID: "SKU-RED-MUG", Quantity: 10, Platform: "supplier-direct", Status: model.OrderOrdered, Date: time.Now().AddDate(0, 0, -2)},
		{OrderID: "PO-1002", SKUID: "SKU-BLU-TEE", Quantity: 20, Platform: "supplier-direct", Status: model.OrderReceived, Date: time.Now().AddDate(0, 0, -1)},
	}
	for i := range orders {
		if err := invService.RecordOrder(&orders[i]); err != nil {
			log.Printf("Skipping order %s: %v", orders[i].OrderID, err)
		}
	}

	log.Println("Seeding complete")
}
