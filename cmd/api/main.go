package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Takumi1421/Easyreplenish-backend/internal/handler"
	"github.com/Takumi1421/Easyreplenish-backend/internal/model"
	"github.com/Takumi1421/Easyreplenish-backend/internal/repository"
	"github.com/Takumi1421/Easyreplenish-backend/internal/service"
	"github.com/Takumi1421/Easyreplenish-backend/internal/ws"
	"github.com/Takumi1421/Easyreplenish-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.SKU{}, &model.Sale{}, &model.Order{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	skuRepo := repository.NewSKURepo(db)
	saleRepo := repository.NewSaleRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	invService := service.NewInventoryService(skuRepo, saleRepo, orderRepo, wsHub)
	reportService := service.NewReportService(skuRepo, saleRepo)

	invHandler := handler.NewInventoryHandler(invService)
	reportHandler := handler.NewReportHandler(reportService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "EasyReplenish API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "https://easyreplenish-frontend.vercel.app"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))

	// 6. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "EasyReplenish API is live!"})
	})

	api := app.Group("/api/v1")

	// SKU Routes
	api.Get("/inventory", invHandler.GetInventory)
	api.Post("/sku", invHandler.CreateSKU)
	api.Delete("/sku/:sku_id", invHandler.DeleteSKU)

	// Sale Routes
	api.Post("/sales", invHandler.RecordSale)
	api.Get("/sales/:sku_id", invHandler.GetSalesForSKU)

	// Order Routes
	api.Post("/orders", invHandler.RecordOrder)
	api.Get("/orders", invHandler.GetOrders)

	// Report Routes
	api.Get("/reorder-alerts", reportHandler.GetReorderAlerts)
	api.Get("/profit/:sku_id", reportHandler.GetProfitForSKU)
	api.Get("/dashboard/stats", reportHandler.GetInventoryStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
