package handler

import (
	"github.com/Takumi1421/Easyreplenish-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetReorderAlerts returns every SKU below its reorder threshold
func (h *ReportHandler) GetReorderAlerts(c *fiber.Ctx) error {
	skus, err := h.service.GetReorderAlerts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reorder alerts"})
	}
	return c.JSON(skus)
}

// GetProfitForSKU returns the profit total for one SKU; zero when the SKU
// has no sales
func (h *ReportHandler) GetProfitForSKU(c *fiber.Ctx) error {
	skuID := c.Params("sku_id")

	profit, err := h.service.GetProfitForSKU(skuID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute profit"})
	}

	return c.JSON(fiber.Map{
		"sku_id": skuID,
		"profit": profit,
	})
}

// GetInventoryStats returns overview statistics
func (h *ReportHandler) GetInventoryStats(c *fiber.Ctx) error {
	stats, err := h.service.GetInventoryStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory stats"})
	}
	return c.JSON(stats)
}
